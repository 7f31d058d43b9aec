package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/bluzora/crop-price-api/internal/scheduler"
	"github.com/bluzora/crop-price-api/pkg/apiErrors"
)

const (
	CronJobTypeForecast = "forecast"
	CronJobTypeAll      = "all"
)

// CronJobServices holds the schedulers that can be triggered manually.
type CronJobServices struct {
	ForecastSyncService *scheduler.ForecastSyncService
}

// RunCronJob triggers one cron job outside its schedule.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "cron job type not specified", nil)
			return
		}

		switch cronType {
		case CronJobTypeForecast, CronJobTypeAll:
			if services.ForecastSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "forecast sync service unavailable", nil)
				return
			}
			services.ForecastSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid cron job type, accepted values: forecast, all", nil)
			return
		}

		response := map[string]any{
			"message": "cron job started",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus reports each cron job's scheduling state and last run.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"forecast": services.ForecastSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
