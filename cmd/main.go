// Package main is the entry point for the quantity-service application.
//
// @title           Quantity Service API
// @version         1.0.0
// @description     API for converting customer measurements into purchasable product quantities.
//
//	Supports roll, package, branch, square meter, tile, and length based products. Discrete
//	modes round up so the purchased amount always covers the measured need.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/decorline/quantity-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Calculation
// @tag.description Quantity calculation operations
//
// @tag.name        Products
// @tag.description Product calculator parameter management
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/rs/zerolog/log"

	_ "github.com/decorline/quantity-service/docs" // swagger docs

	"github.com/decorline/quantity-service/config"
	"github.com/decorline/quantity-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
