package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mbolis/survey-backend/app"
	"github.com/mbolis/survey-backend/config"
	"github.com/mbolis/survey-backend/database"
	"github.com/mbolis/survey-backend/log"
	"github.com/mbolis/survey-backend/routes"
	"github.com/mbolis/survey-backend/store"
	"github.com/mbolis/survey-backend/upload"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	gateway, err := upload.New(cfg.UploadDir, upload.WithMaxSize(cfg.MaxUploadSize))
	if err != nil {
		log.Fatal("main.upload:", err)
	}
	log.Infof("Storing uploads in %s (max %d bytes)", gateway.Dir(), gateway.MaxSize())

	app := app.App{
		Store:   store.New(db, store.WithDateLayout(cfg.DateLayout)),
		Gateway: gateway,
		Config:  cfg,
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Error("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	idle := make(chan struct{})
	go func() {
		defer close(idle)
		<-ctx.Done()
		log.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("main.server.shutdown:", err)
		}
	}()

	log.Info("Listening on " + cfg.Url())
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		<-idle
	}
	return err
}
