package routes

import (
	"errors"
	"net/http"

	"github.com/mbolis/survey-backend/app"
	"github.com/mbolis/survey-backend/httpx"
	"github.com/mbolis/survey-backend/log"
	"github.com/mbolis/survey-backend/routes/middlewares"
	"github.com/mbolis/survey-backend/upload"
)

func Upload(app app.App, metrics *middlewares.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageUrl, n, err := app.Receive(w, r)
		switch {
		case errors.Is(err, upload.ErrNoFile):
			httpx.LogStatusMsg(w, r, http.StatusBadRequest, log.DebugLevel, "upload.no_file", nil, MsgNoFile)
			return
		case errors.Is(err, upload.ErrTooLarge):
			httpx.LogStatusMsg(w, r, http.StatusBadRequest, log.InfoLevel, "upload.too_large", nil, MsgFileTooLarge)
			return
		case err != nil:
			httpx.LogInternalError(w, r, "upload", err)
			return
		}

		metrics.UploadBytes.Add(float64(n))
		httpx.OK(w, r, MsgUploaded, map[string]any{
			"imageUrl": imageUrl,
		})
	}
}
