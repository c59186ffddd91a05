// Package main provides the composer-trigger HTTP server.
package main

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"

	"github.com/Harshshah2306/composer-trigger/pkg/composer"
	"github.com/Harshshah2306/composer-trigger/pkg/config"
	"github.com/Harshshah2306/composer-trigger/pkg/gcp"
	"github.com/Harshshah2306/composer-trigger/pkg/otelhelper"
	"github.com/Harshshah2306/composer-trigger/pkg/web"
)

type API struct {
	cfg    *config.Config
	creds  *gcp.Credentials
	logger *slog.Logger
}

func NewAPI(cfg *config.Config, creds *gcp.Credentials, logger *slog.Logger) *API {
	return &API{
		cfg:    cfg,
		creds:  creds,
		logger: logger,
	}
}

func (a *API) App() *fiber.App {
	client := composer.NewClient(a.cfg.WebServerURL, a.creds.TokenSource(), composer.WithLogger(a.logger))
	handlers := web.NewHandlers(client, a.cfg.DAGID, a.logger)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())
	app.Get("/health", handlers.HealthCheck)

	// The trigger endpoint accepts any method: POST carries an optional
	// JSON body, everything else reads query parameters.
	app.All("/", handlers.TriggerDAG)

	app.Use(web.NotFoundHandler)

	return app
}

func (a *API) Start(ctx context.Context) error {
	if a.cfg.TracingEnabled {
		tp, err := otelhelper.NewTracerProvider(ctx, "composer-trigger")
		if err != nil {
			return err
		}

		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				a.logger.Error("Failed to shut down tracer provider", "error", err)
			}
		}()
	}

	return a.App().Listen(":" + strconv.Itoa(a.cfg.Port))
}
