package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"sellerops/cmd"
	"sellerops/internal/adapters/out/postgres"
	"sellerops/internal/pkg/logger"
)

const serviceName = "sellerops"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		ServiceName: serviceName,
		Level:       logger.ParseLevel(configs.LogLevel),
		Format:      configs.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, postgres.DBConfig{
		Driver:          configs.DBDriver,
		DSN:             configs.DSN(),
		MaxOpenConns:    configs.DBMaxOpenConns,
		MaxIdleConns:    configs.DBMaxIdleConns,
		ConnMaxLifetime: configs.DBConnLifetime,
	}, log)
	if err != nil {
		return err
	}
	if configs.AutoMigrate {
		if err = postgres.Migrate(ctx, db, configs.DBDriver); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	app, err := cmd.NewCompositionRoot(configs, db, log)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(context.Background()); closeErr != nil {
			log.Warn(context.Background(), "closing resources", closeErr)
		}
	}()

	jobManager := app.NewJobManager()
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	e := app.NewHTTPServer()
	serverErr := make(chan error, 1)
	go func() {
		address := fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)
		log.With("address", address).Info(ctx, "http server started")
		if startErr := e.Start(address); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			serverErr <- startErr
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		log.Info(context.Background(), "shutdown signal received")
	case err = <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
