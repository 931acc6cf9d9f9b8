package main

import (
	"hotie/config"
	"hotie/di"
	"hotie/shared/logger"
)

// @title Hotie API
// @version 1.0
// @description Hotel operations API for rooms, bookings, guests, payments, and housekeeping.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
