// Package main is the entry point for the tour-service application.
//
// @title           Tour Service API
// @version         1.0.0
// @description     Pricing API for the two-day Bangkok - Ayutthaya guided tour.
//
//	Serves the package catalog, the comparison table, the itinerary and per-person quotes.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/tour-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Pricing
// @tag.description Quote calculation
//
// @tag.name        Packages
// @tag.description Package catalog and comparison table
//
// @tag.name        Itinerary
// @tag.description Static two-day schedule
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	_ "github.com/guttosm/tour-service/docs" // swagger docs

	"github.com/guttosm/tour-service/config"
	"github.com/guttosm/tour-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server.Port)
	server.OnShutdown(application.Close)

	if err := server.Run(context.Background()); err != nil {
		application.Close(context.Background())
		log.Fatal().Err(err).Msg("Server error")
	}
}
