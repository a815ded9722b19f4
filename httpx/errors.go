package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/mbolis/survey-backend/log"
)

// Will log an error, and send an enveloped response with status 500.
// The cause never reaches the client.
func LogInternalError(w http.ResponseWriter, r *http.Request, code string, err error) {
	log.WithFields(log.Fields{
		"request_id": middleware.GetReqID(r.Context()),
		"code":       code,
	}).Errorf("%+v", err)
	Respond(w, r, http.StatusInternalServerError, MsgInternalError, nil)
}

// Will log a debug message, and send an enveloped response with status 404
func LogNotFound(w http.ResponseWriter, r *http.Request, code string, id any, msg string) {
	log.Debugf("%s: not found (%v)", code, id)
	Respond(w, r, http.StatusNotFound, msg, nil)
}

// Will log an error code and cause at the given level, and send
// an enveloped response with the given status and message
func LogStatusMsg(w http.ResponseWriter, r *http.Request, status int, level log.Level, code string, err error, msg string) {
	if err != nil {
		log.Log(level, code+":", err)
	} else {
		log.Log(level, code)
	}
	Respond(w, r, status, msg, nil)
}
