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

	"sourcing/cmd"
	httpin "sourcing/internal/adapters/in/http"
	"sourcing/internal/adapters/out/cloudinary"
	"sourcing/internal/adapters/out/postgres"
	"sourcing/internal/pkg/tracing"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()

	level, err := configs.Level()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, configs, logger); err != nil {
		log.Fatalf("service stopped: %v", err)
	}
}

func getConfigs() cmd.Config {
	// A missing .env is fine: containers receive plain environment variables.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	return cmd.Config{
		HTTPPort:             os.Getenv("HTTP_PORT"),
		DBHost:               os.Getenv("DB_HOST"),
		DBPort:               os.Getenv("DB_PORT"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               os.Getenv("DB_NAME"),
		DBSslMode:            os.Getenv("DB_SSLMODE"),
		CloudinaryCloudName:  os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:     os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret:  os.Getenv("CLOUDINARY_API_SECRET"),
		CORSOrigins:          os.Getenv("CORS_ORIGINS"),
		OtelExporterEndpoint: os.Getenv("OTEL_EXPORTER_ENDPOINT"),
		OtelServiceName:      os.Getenv("OTEL_SERVICE_NAME"),
		OtelSampleRate:       os.Getenv("OTEL_SAMPLE_RATE"),
		ReconcileSchedule:    os.Getenv("RECONCILE_SCHEDULE"),
		LogLevel:             os.Getenv("LOG_LEVEL"),
	}
}

func run(ctx context.Context, configs cmd.Config, logger *slog.Logger) error {
	sampleRate, err := configs.SampleRate()
	if err != nil {
		return err
	}
	shutdownTracer, err := tracing.InitTracer(ctx, tracing.Config{
		ExporterEndpoint: configs.OtelExporterEndpoint,
		ServiceName:      configs.OtelServiceName,
		SampleRate:       sampleRate,
	})
	if err != nil {
		return err
	}
	defer func() {
		if shutdownErr := shutdownTracer(context.Background()); shutdownErr != nil {
			logger.Error("failed to shut down tracer", "error", shutdownErr)
		}
	}()

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return err
	}

	storage, err := cloudinary.NewStorage(
		configs.CloudinaryCloudName, configs.CloudinaryAPIKey, configs.CloudinaryAPISecret, logger)
	if err != nil {
		return err
	}

	app := cmd.NewCompositionRoot(configs, gormDB, storage, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, configs, logger)
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) error {
	router, err := httpin.NewRouter(
		httpin.NewServer(app.HTTPHandlers(), logger),
		httpin.RouterConfig{AllowOrigins: configs.AllowOrigins()},
		logger,
	)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort),
		Handler:           tracing.WrapHTTPHandler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server started", "addr", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
