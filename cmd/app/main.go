package main

import (
	"atithi/config"
	"atithi/di"
	"atithi/helper"
	"atithi/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Atithi Booking API
// @version 1.0
// @description Resource booking service for hotel rooms and marriage gardens.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
