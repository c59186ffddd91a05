package main

import (
	"context"
	"os"

	"github.com/Harshshah2306/composer-trigger/pkg/config"
	"github.com/Harshshah2306/composer-trigger/pkg/gcp"
	"github.com/Harshshah2306/composer-trigger/pkg/log"
	cli "github.com/urfave/cli/v3"
)

const defaultPort = 8080

func main() {
	logger := log.WithModule("composer-trigger")

	cmd := &cli.Command{
		Name:                  "composer-trigger",
		Usage:                 "Trigger Cloud Composer 2 DAG runs over HTTP",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the trigger server on",
				Value:   defaultPort,
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:     "web-server-url",
				Usage:    "Base URL of the Composer 2 Airflow web server",
				Required: true,
				Sources:  cli.EnvVars("AIRFLOW_WEB_SERVER_URL"),
			},
			&cli.StringFlag{
				Name:     "dag-id",
				Usage:    "ID of the DAG to trigger",
				Required: true,
				Sources:  cli.EnvVars("DAG_ID"),
			},
			&cli.StringFlag{
				Name:    "auth-scope",
				Usage:   "OAuth scope requested for the ambient credentials",
				Value:   gcp.DefaultAuthScope,
				Sources: cli.EnvVars("AUTH_SCOPE"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.BoolFlag{
				Name:    "tracing-enabled",
				Usage:   "Export trigger spans over OTLP/HTTP",
				Sources: cli.EnvVars("TRACING_ENABLED"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			cfg := &config.Config{
				Port:           command.Int("port"),
				WebServerURL:   command.String("web-server-url"),
				DAGID:          command.String("dag-id"),
				AuthScope:      command.String("auth-scope"),
				TracingEnabled: command.Bool("tracing-enabled"),
			}

			err := cfg.Validate()
			if err != nil {
				return err
			}

			logger.InfoContext(ctx, "Initializing composer-trigger", "dag_id", cfg.DAGID)

			// Resolved once at startup and reused for the process
			// lifetime.
			creds, err := gcp.NewCredentials(ctx, cfg.AuthScope)
			if err != nil {
				return err
			}

			api := NewAPI(cfg, creds, logger)

			return api.Start(ctx)
		},
	}

	err := cmd.Run(context.Background(), os.Args)
	if err != nil {
		logger.Error("composer-trigger failed", "error", err)
		os.Exit(1)
	}
}
