package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bluzora/crop-price-api/infrastructure/database/postgres"
	"github.com/bluzora/crop-price-api/infrastructure/modelstore"
	"github.com/bluzora/crop-price-api/infrastructure/repository"
	"github.com/bluzora/crop-price-api/internal/api"
	"github.com/bluzora/crop-price-api/internal/config"
	"github.com/bluzora/crop-price-api/internal/scheduler"
	"github.com/bluzora/crop-price-api/internal/usecases/analyzing"
	"github.com/bluzora/crop-price-api/internal/usecases/cataloging"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	cropRepo := repository.NewCropRepository(pgConn)
	priceRepo := repository.NewCropPriceRepository(pgConn)
	predictedRepo := repository.NewPredictedPriceRepository(pgConn)
	bindingRepo := repository.NewModelBindingRepository(pgConn)

	modelStore := modelstore.New(cfg.Models.Dir)

	catalogService := cataloging.NewService(cropRepo, priceRepo)
	analyzerService := analyzing.NewService(cropRepo, priceRepo, predictedRepo)

	forecastSyncService := scheduler.NewForecastSyncService(
		pgConn,
		bindingRepo,
		priceRepo,
		predictedRepo,
		modelStore,
		cfg,
	)

	if err := forecastSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start forecast sync scheduler")
	} else {
		logrus.Info("forecast sync scheduler started")
	}

	server, err := api.New(
		cfg,
		catalogService,
		analyzerService,
		priceRepo,
		predictedRepo,
		forecastSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
