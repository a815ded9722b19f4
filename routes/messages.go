package routes

const (
	MsgFetched       = "获取成功"
	MsgQueried       = "查询成功"
	MsgBadRequest    = "请求参数错误"
	MsgRouteNotFound = "资源未找到"

	MsgSurveyNotFound = "问卷未找到"
	MsgSurveyCreated  = "问卷创建成功"
	MsgSurveyUpdated  = "问卷更新成功"
	MsgSurveyDeleted  = "问卷删除成功"

	MsgOnlineNotFound = "在线问卷未找到"
	MsgOnlineCreated  = "在线问卷创建成功"
	MsgOnlineUpdated  = "在线问卷更新成功"

	MsgUploaded     = "文件上传成功！"
	MsgNoFile       = "没有文件被上传。"
	MsgFileTooLarge = "文件大小超过限制。"

	MsgHealthy = "服务正常"
)
