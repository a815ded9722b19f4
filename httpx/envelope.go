package httpx

import (
	"net/http"

	"github.com/go-chi/render"
)

const MsgInternalError = "服务器内部错误"

// Envelope wraps every JSON response.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func Respond(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	render.Status(r, status)
	render.JSON(w, r, Envelope{
		Code:    status,
		Message: message,
		Data:    data,
	})
}

func OK(w http.ResponseWriter, r *http.Request, message string, data any) {
	Respond(w, r, http.StatusOK, message, data)
}
