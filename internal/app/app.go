// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/tour-service/config"
	"github.com/guttosm/tour-service/internal/http"
	"github.com/rs/zerolog/log"
)

// App is the wired application.
type App struct {
	Router   *gin.Engine
	Services *ServiceComponents
	Database *DatabaseComponents

	stopRouter func()
	router     *RouterComponents
	closeOnce  sync.Once
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Logging)

	dbComponents := InitializeDatabase(cfg.Database)

	serviceComponents, err := InitializeServices(cfg.Pricing, dbComponents)
	if err != nil {
		if closeErr := dbComponents.Close(context.Background()); closeErr != nil {
			log.Warn().Err(closeErr).Msg("Failed to close MongoDB connection")
		}
		return nil, err
	}

	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)
	engine, stop := http.NewRouter(routerComponents.HealthHandler, routerComponents.Config, routerComponents.Groups...)

	return &App{
		Router:     engine,
		Services:   serviceComponents,
		Database:   dbComponents,
		stopRouter: stop,
		router:     routerComponents,
	}, nil
}

// Close stops background workers, flushes pending logs and disconnects from
// MongoDB. It is safe to call more than once.
func (a *App) Close(ctx context.Context) {
	a.closeOnce.Do(func() {
		if a.stopRouter != nil {
			a.stopRouter()
		}
		if a.router != nil {
			a.router.AsyncLogger.Stop()
		}
		if err := a.Database.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to close MongoDB connection")
		}
	})
}
