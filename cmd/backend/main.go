package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"artisan-backend/internal/api"
)

// @title Artisan Onboarding API
// @version 1.0
// @description Онбординг ремесленников для экспорта: товары, рыночная аналитика, схемы поддержки и отправка товаров.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	logrus.Info("App start")
	if err := api.StartServer(context.Background()); err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("App terminated")
}
