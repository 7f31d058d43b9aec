package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/bluzora/crop-price-api/infrastructure/repository"
	"github.com/bluzora/crop-price-api/internal/api/handler"
	"github.com/bluzora/crop-price-api/internal/api/handler/router"
	"github.com/bluzora/crop-price-api/internal/config"
	"github.com/bluzora/crop-price-api/internal/scheduler"
	"github.com/bluzora/crop-price-api/internal/usecases/analyzing"
	"github.com/bluzora/crop-price-api/internal/usecases/cataloging"
	"github.com/bluzora/crop-price-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	catalogService cataloging.CatalogService,
	analyzerService analyzing.Analyzer,
	priceRepo repository.CropPriceRepository,
	predictedRepo repository.PredictedPriceRepository,
	forecastSyncService *scheduler.ForecastSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		ForecastSyncService: forecastSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Crops(catalogService)...),
		router.WithRoutes(handler.Prices(catalogService, priceRepo, predictedRepo)...),
		router.WithRoutes(handler.Reports(analyzerService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server stopped with error")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("http server shut down")
	return nil
}
