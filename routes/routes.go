package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mbolis/survey-backend/app"
	"github.com/mbolis/survey-backend/httpx"
	"github.com/mbolis/survey-backend/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middlewares.NewMetrics(reg)

	root := chi.NewRouter()
	root.Use(
		middleware.RequestID,
		middleware.RealIP,
		middlewares.Logger,
		middleware.Recoverer,
		metrics.Instrument,
		cors.Handler(cors.Options{
			AllowedOrigins: app.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "Authorization", "X-Requested-With"},
			MaxAge:         300,
		}),
	)
	root.NotFound(notFound)
	root.MethodNotAllowed(methodNotAllowed)

	// CRUD survey
	root.Get("/surveys", ListSurveys(app))
	root.Post("/surveys", CreateSurvey(app))
	root.Get(`/surveys/{id:^\d+$}`, GetSurveyById(app))
	root.Put(`/surveys/{id:^\d+$}`, UpdateSurvey(app))
	root.Delete(`/surveys/{id:^\d+$}`, DeleteSurvey(app))

	root.Post("/online", CreateOnlineSurvey(app))
	root.Put("/online/{surveyNo}", UpdateOnlineSurvey(app))
	root.Get("/online/{surveyNo}", GetSurveyAndOnlineSurvey(app))

	root.Mount("/api", apiRouter(app, metrics))
	root.Handle("/uploads/*", http.StripPrefix("/uploads", app.FileServer()))

	root.Get("/healthz", Health(app))
	root.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return root
}

func apiRouter(app app.App, metrics *middlewares.Metrics) http.Handler {
	api := chi.NewRouter()
	api.NotFound(notFound)
	api.MethodNotAllowed(methodNotAllowed)

	api.Post("/upload", Upload(app, metrics))

	return api
}

func notFound(w http.ResponseWriter, r *http.Request) {
	httpx.Respond(w, r, http.StatusNotFound, MsgRouteNotFound, nil)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	httpx.Respond(w, r, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed), nil)
}
