// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/xslt-messages/catalog"
	"github.com/guttosm/xslt-messages/config"
	"github.com/guttosm/xslt-messages/internal/http"
)

// Application is the wired service: its router and the resources that must
// be released on shutdown.
type Application struct {
	Router  *gin.Engine
	Bundle  *catalog.Bundle
	closers []func(ctx context.Context) error
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) (*Application, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	bundle, err := InitializeCatalog(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	// Nil when MongoDB is disabled or unreachable
	dbComponents := InitializeDatabase(cfg.Database)

	serviceComponents := InitializeServices(bundle, cfg.Cache, dbComponents)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, bundle, cfg)

	app := &Application{
		Router: http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		Bundle: bundle,
	}

	// Closed in order: stop accepting work, drain queued events, then disconnect.
	if limiter := routerComponents.Config.RateLimiter; limiter != nil {
		app.closers = append(app.closers, func(context.Context) error {
			limiter.Stop()
			return nil
		})
	}
	app.closers = append(app.closers, func(context.Context) error {
		serviceComponents.Close()
		return nil
	})
	if dbComponents != nil {
		app.closers = append(app.closers, dbComponents.Close)
	}

	return app, nil
}

// Close releases every resource acquired by InitializeApp.
func (a *Application) Close(ctx context.Context) error {
	var errs []error
	for _, closeFn := range a.closers {
		if err := closeFn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
