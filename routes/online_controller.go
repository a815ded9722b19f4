package routes

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/mbolis/survey-backend/app"
	"github.com/mbolis/survey-backend/httpx"
	"github.com/mbolis/survey-backend/log"
	"github.com/mbolis/survey-backend/model"
)

func CreateOnlineSurvey(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, ok := decodeFields[model.OnlineSurveyFields](w, r, "create_online_survey")
		if !ok {
			return
		}

		online, err := app.CreateOnlineSurvey(r.Context(), fields)
		if err != nil {
			storeError(w, r, "create_online_survey", err)
			return
		}
		if online == nil {
			// the insert succeeded but the row could not be read back
			log.Warn("create_online_survey.reread: inserted row not found")
			httpx.OK(w, r, MsgOnlineCreated, nil)
			return
		}
		httpx.OK(w, r, MsgOnlineCreated, online)
	}
}

func UpdateOnlineSurvey(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyNo := surveyNoParam(r)
		fields, ok := decodeFields[model.OnlineSurveyFields](w, r, "update_online_survey")
		if !ok {
			return
		}

		updated, err := app.UpdateOnlineSurvey(r.Context(), surveyNo, fields)
		if err != nil {
			storeError(w, r, "update_online_survey", err)
			return
		}
		if !updated {
			httpx.LogNotFound(w, r, "update_online_survey", surveyNo, MsgOnlineNotFound)
			return
		}
		httpx.OK(w, r, MsgOnlineUpdated, nil)
	}
}

func GetSurveyAndOnlineSurvey(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyNo := surveyNoParam(r)

		rows, err := app.GetSurveyAndOnlineSurveyBySurveyNo(r.Context(), surveyNo)
		if err != nil {
			httpx.LogInternalError(w, r, "get_survey_online", err)
			return
		}
		httpx.OK(w, r, MsgQueried, rows)
	}
}

func surveyNoParam(r *http.Request) string {
	param := chi.URLParam(r, "surveyNo")
	if unescaped, err := url.PathUnescape(param); err == nil {
		return unescaped
	}
	return param
}
