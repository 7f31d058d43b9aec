package scheduler

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/bluzora/crop-price-api/infrastructure/database/postgres"
	"github.com/bluzora/crop-price-api/infrastructure/repository"
	"github.com/bluzora/crop-price-api/internal/config"
	"github.com/bluzora/crop-price-api/internal/domain"
	"github.com/bluzora/crop-price-api/internal/usecases/forecasting"
)

// ForecastSyncConfig holds the batch forecast scheduling knobs.
type ForecastSyncConfig struct {
	CronSchedule   string
	HorizonDays    int
	PredictTimeout time.Duration
	SyncEnabled    bool
}

// ForecastSyncService runs the recursive price forecast for every crop
// with an enabled model binding and persists the forward path.
//
// The whole batch shares one transaction: a failed write rolls every
// crop's forecast back. Computation problems (missing artifact, too little
// data) only skip the affected crop and are reported in the run result.
type ForecastSyncService struct {
	scheduler           *gocron.Scheduler
	config              ForecastSyncConfig
	conn                postgres.Conn
	bindingRepo         repository.ModelBindingRepository
	priceRepo           repository.CropPriceRepository
	predictedRepo       repository.PredictedPriceRepository
	models              forecasting.ModelLoader
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunResult       *domain.ForecastRunResult
}

func NewForecastSyncService(
	conn postgres.Conn,
	bindingRepo repository.ModelBindingRepository,
	priceRepo repository.CropPriceRepository,
	predictedRepo repository.PredictedPriceRepository,
	models forecasting.ModelLoader,
	appConfig *config.Config,
) *ForecastSyncService {
	syncConfig := ForecastSyncConfig{
		CronSchedule:   appConfig.ForecastSync.CronSchedule,
		HorizonDays:    appConfig.ForecastSync.HorizonDays,
		PredictTimeout: time.Duration(appConfig.ForecastSync.PredictTimeoutSeconds) * time.Second,
		SyncEnabled:    appConfig.ForecastSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   syncConfig.CronSchedule,
		"horizon_days":    syncConfig.HorizonDays,
		"predict_timeout": syncConfig.PredictTimeout.String(),
		"sync_enabled":    syncConfig.SyncEnabled,
	}).Info("forecast sync scheduler configured")

	return &ForecastSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		conn:          conn,
		bindingRepo:   bindingRepo,
		priceRepo:     priceRepo,
		predictedRepo: predictedRepo,
		models:        models,
	}
}

// Start registers the cron job and runs the scheduler in the background
// until the context is cancelled.
func (s *ForecastSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("forecast sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting forecast sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllForecasts(context.Background())
	})
	if err != nil {
		return fmt.Errorf("scheduling forecast sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping forecast sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ForecastSyncService) syncAllForecasts(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("forecast sync already running, skipping")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("starting forecast batch for all bound crops")

	result, err := s.runForecastBatch(ctx)
	if err != nil {
		logrus.WithError(err).Error("forecast batch failed, all forecasts rolled back")
		return
	}

	s.lastRunResult = result
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration":   result.Duration,
		"forecasted": len(result.Forecasted),
		"skipped":    len(result.Skipped),
	}).Info("forecast batch finished")
}

// runForecastBatch forecasts every bound crop inside one transaction and
// reports which crops were forecasted and which were skipped, with
// reasons.
func (s *ForecastSyncService) runForecastBatch(ctx context.Context) (*domain.ForecastRunResult, error) {
	startTime := time.Now()

	bindings, err := s.bindingRepo.ListEnabled()
	if err != nil {
		return nil, errors.Wrap(err, "listing model bindings")
	}

	result := &domain.ForecastRunResult{
		StartedAt:   startTime,
		HorizonDays: s.config.HorizonDays,
		Forecasted:  make([]string, 0, len(bindings)),
		Skipped:     make([]domain.SkippedCrop, 0),
	}

	if len(bindings) == 0 {
		logrus.Info("no crops bound to a model, nothing to forecast")
		result.Duration = time.Since(startTime).String()
		return result, nil
	}

	err = s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, binding := range bindings {
			points, skipReason := s.forecastCrop(ctx, binding)
			if skipReason != "" {
				logrus.WithFields(logrus.Fields{
					"crop_id":   binding.CropID,
					"crop_name": binding.CropName,
					"reason":    skipReason,
				}).Warn("crop skipped in forecast batch")

				result.Skipped = append(result.Skipped, domain.SkippedCrop{
					CropID:   binding.CropID,
					CropName: binding.CropName,
					Reason:   skipReason,
				})
				continue
			}

			for i := range points {
				if err := s.predictedRepo.SaveOrUpdate(tx, binding.CropID, &points[i]); err != nil {
					return errors.Wrapf(err, "persisting forecast for crop %s", binding.CropID)
				}
			}

			logrus.WithFields(logrus.Fields{
				"crop_id":   binding.CropID,
				"crop_name": binding.CropName,
				"points":    len(points),
			}).Info("forecast persisted for crop")

			result.Forecasted = append(result.Forecasted, binding.CropName)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Duration = time.Since(startTime).String()
	return result, nil
}

// forecastCrop computes the forward path of one crop. A non-empty skip
// reason means the crop produced nothing but the batch goes on.
func (s *ForecastSyncService) forecastCrop(ctx context.Context, binding *domain.ModelBinding) ([]domain.ForecastPoint, string) {
	model, err := s.models.Load(binding.ArtifactPath)
	if err != nil {
		return nil, fmt.Sprintf("model artifact unavailable: %v", err)
	}

	series, err := s.priceRepo.GetSeriesByCropID(binding.CropID)
	if err != nil {
		return nil, fmt.Sprintf("loading price history: %v", err)
	}

	features := forecasting.BuildFeatures(series)
	if len(features) == 0 {
		return nil, "insufficient data"
	}

	// One slow or hanging artifact must not stall the whole batch.
	forecastCtx, cancel := context.WithTimeout(ctx, s.config.PredictTimeout)
	defer cancel()

	points, err := forecasting.Forecast(forecastCtx, features, model, s.config.HorizonDays)
	if err != nil {
		if errors.Is(err, forecasting.ErrInsufficientData) {
			return nil, "insufficient data"
		}
		return nil, fmt.Sprintf("forecast failed: %v", err)
	}

	return points, ""
}

// TriggerManualSync starts a forecast batch outside the cron schedule.
func (s *ForecastSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("forecast sync already running, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("starting manual forecast sync")
	go s.syncAllForecasts(context.Background())
}

// GetStatus reports the scheduler state and the outcome of the last run.
func (s *ForecastSyncService) GetStatus() map[string]any {
	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"horizon_days":           s.config.HorizonDays,
		"predict_timeout":        s.config.PredictTimeout.String(),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastRunResult != nil {
		status["last_run"] = s.lastRunResult
	}

	return status
}
