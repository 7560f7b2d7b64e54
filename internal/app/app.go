// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/decorline/quantity-service/config"
	"github.com/decorline/quantity-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Logger first, everything else logs through it.
	InitializeLogger()

	serviceComponents := InitializeServices(cfg.Calculator)

	// MongoDB-backed catalog and audit trail; nil when the database is
	// disabled, in which case only inline calculations are served.
	dbComponents := InitializeDatabase(cfg.Database)

	routerComponents := InitializeRouter(serviceComponents.Calculator, dbComponents, cfg)

	return http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)
}
