package app

import (
	"github.com/mbolis/survey-backend/config"
	"github.com/mbolis/survey-backend/store"
	"github.com/mbolis/survey-backend/upload"
)

type App struct {
	*store.Store
	*upload.Gateway
	config.Config
}
