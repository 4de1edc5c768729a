package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/csorodrigo/projeto-rh-sub003/internal/app"
	"github.com/csorodrigo/projeto-rh-sub003/internal/shared/apperror"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if err := app.RunWorker(); err != nil {
		logger.Fatal("run worker failed", zap.Error(err))
	}
}
