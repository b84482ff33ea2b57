package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ordertracker/cmd"
	"ordertracker/internal/adapters/out/postgres"
	"ordertracker/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	app := &cli.App{
		Name:  "ordertracker",
		Usage: "order lifecycle time tracker",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "optional dotenv file loaded before reading the environment",
				Value: ".env",
			},
		},
		Before: func(c *cli.Context) error {
			// The file is optional; real environment variables take precedence.
			if err := godotenv.Load(c.String("env-file")); err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("load %s: %w", c.String("env-file"), err)
			}
			return nil
		},
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "apply migrations and run the HTTP API",
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "apply database migrations",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "down", Usage: "roll back every migration instead"},
				},
				Action: migrate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func setup() (cmd.Config, *slog.Logger, error) {
	config, err := cmd.LoadConfig()
	if err != nil {
		return cmd.Config{}, nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.SlogLevel()}))
	slog.SetDefault(logger)
	return config, logger, nil
}

func migrate(c *cli.Context) error {
	config, logger, err := setup()
	if err != nil {
		return err
	}

	if c.Bool("down") {
		if err = postgres.MigrateDown(config.DatabaseURL()); err != nil {
			return err
		}
		logger.Info("Migrations rolled back")
		return nil
	}

	if err = postgres.Migrate(config.DatabaseURL()); err != nil {
		return err
	}
	logger.Info("Migrations applied")
	return nil
}

func serve(c *cli.Context) error {
	config, logger, err := setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = postgres.Migrate(config.DatabaseURL()); err != nil {
		return err
	}

	db, err := postgres.Open(ctx, config.DatabaseURL())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := postgres.Close(db); closeErr != nil {
			logger.Error("Failed to close database", "error", closeErr)
		}
	}()

	root := cmd.NewCompositionRoot(config, db, kernel.NewSystemClock(), logger)
	router, err := root.CreateRouter()
	if err != nil {
		return err
	}
	jobManager := root.CreateJobManager()

	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		logger.Info("HTTP server listening", "addr", addr)
		if startErr := router.Start(addr); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", startErr)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")

		root.Hub().Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return router.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
