package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/mbolis/survey-backend/app"
	"github.com/mbolis/survey-backend/httpx"
)

func Health(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := app.Ping(ctx); err != nil {
			httpx.LogInternalError(w, r, "healthz", err)
			return
		}
		httpx.OK(w, r, MsgHealthy, nil)
	}
}
