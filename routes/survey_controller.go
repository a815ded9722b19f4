package routes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mbolis/survey-backend/app"
	"github.com/mbolis/survey-backend/httpx"
	"github.com/mbolis/survey-backend/log"
	"github.com/mbolis/survey-backend/model"
)

func ListSurveys(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveys, err := app.ListSurveys(r.Context())
		if err != nil {
			httpx.LogInternalError(w, r, "list_surveys", err)
			return
		}
		httpx.OK(w, r, MsgFetched, surveys)
	}
}

func GetSurveyById(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyId, ok := surveyIdParam(w, r)
		if !ok {
			return
		}

		survey, err := app.GetSurvey(r.Context(), surveyId)
		if err != nil {
			httpx.LogInternalError(w, r, "get_survey", err)
			return
		}
		if survey == nil {
			httpx.LogNotFound(w, r, "get_survey", surveyId, MsgSurveyNotFound)
			return
		}
		httpx.OK(w, r, MsgFetched, survey)
	}
}

func CreateSurvey(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, ok := decodeFields[model.SurveyFields](w, r, "create_survey")
		if !ok {
			return
		}

		surveyId, err := app.CreateSurvey(r.Context(), fields)
		if err != nil {
			storeError(w, r, "create_survey", err)
			return
		}
		httpx.OK(w, r, MsgSurveyCreated, map[string]any{
			"id": surveyId,
		})
	}
}

func UpdateSurvey(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyId, ok := surveyIdParam(w, r)
		if !ok {
			return
		}
		fields, ok := decodeFields[model.SurveyFields](w, r, "update_survey")
		if !ok {
			return
		}

		updated, err := app.UpdateSurvey(r.Context(), surveyId, fields)
		if err != nil {
			storeError(w, r, "update_survey", err)
			return
		}
		if !updated {
			httpx.LogNotFound(w, r, "update_survey", surveyId, MsgSurveyNotFound)
			return
		}
		httpx.OK(w, r, MsgSurveyUpdated, nil)
	}
}

func DeleteSurvey(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyId, ok := surveyIdParam(w, r)
		if !ok {
			return
		}

		deleted, err := app.DeleteSurvey(r.Context(), surveyId)
		if err != nil {
			httpx.LogInternalError(w, r, "delete_survey", err)
			return
		}
		if !deleted {
			httpx.LogNotFound(w, r, "delete_survey", surveyId, MsgSurveyNotFound)
			return
		}
		httpx.OK(w, r, MsgSurveyDeleted, nil)
	}
}

// An id too large for int64 cannot match any row.
func surveyIdParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	param := chi.URLParam(r, "id")
	surveyId, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		httpx.LogNotFound(w, r, "request.get_url_param.id", param, MsgSurveyNotFound)
		return 0, false
	}
	return surveyId, true
}

type fieldSet interface {
	model.SurveyFields | model.OnlineSurveyFields
	Columns() []model.Column
}

// decodeFields reads and validates a field set from the request body.
func decodeFields[F fieldSet](w http.ResponseWriter, r *http.Request, code string) (F, bool) {
	var fields F
	body := http.MaxBytesReader(w, r.Body, httpx.MaxJSONBody)
	if err := httpx.DecodeJSON(body, &fields); err != nil {
		httpx.LogStatusMsg(w, r, http.StatusBadRequest, log.DebugLevel, code+".parse_body", err, MsgBadRequest)
		return fields, false
	}
	if err := model.Validate(fields); err != nil {
		httpx.LogStatusMsg(w, r, http.StatusBadRequest, log.DebugLevel, code+".validate", err, MsgBadRequest)
		return fields, false
	}
	return fields, true
}

func storeError(w http.ResponseWriter, r *http.Request, code string, err error) {
	if errors.Is(err, model.ErrNoFields) {
		httpx.LogStatusMsg(w, r, http.StatusBadRequest, log.DebugLevel, code, err, MsgBadRequest)
		return
	}
	httpx.LogInternalError(w, r, code, err)
}
