package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/bluzora/crop-price-api/internal/usecases/analyzing"
	"github.com/bluzora/crop-price-api/pkg/apiErrors"
	"github.com/bluzora/crop-price-api/pkg/log"
	"github.com/bluzora/crop-price-api/pkg/utils"
)

// GetPriceReport returns the merged historical and forecast view of one
// crop: the tagged per-day results, the combined chart series and the
// window summary.
func GetPriceReport(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cropID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		start, end, err := dateRangeFromQuery(r)
		if err != nil {
			logger.WithError(err).WithField("crop_id", cropID).Warn("report: invalid date range")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"crop_id":    cropID,
			"start_date": utils.FormatDate(start),
			"end_date":   utils.FormatDate(end),
		}).Debug("report: building price report")

		report, err := service.GetPriceReport(cropID, start, end)
		if err != nil {
			if errors.Is(err, analyzing.ErrCropNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrCropNotFound, "crop not found", nil)
				return
			}

			logger.WithError(err).WithField("crop_id", cropID).Error("report: failed to build price report")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to build price report", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("report: failed to encode price report")
		}
	})
}

func GetPeriodSummary(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cropID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		start, end, err := dateRangeFromQuery(r)
		if err != nil {
			logger.WithError(err).WithField("crop_id", cropID).Warn("summary: invalid date range")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		summary, err := service.GetPeriodSummary(cropID, start, end)
		if err != nil {
			if errors.Is(err, analyzing.ErrCropNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrCropNotFound, "crop not found", nil)
				return
			}

			logger.WithError(err).WithField("crop_id", cropID).Error("summary: failed to build period summary")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to build period summary", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("summary: failed to encode period summary")
		}
	})
}

// GetForecastAccuracy compares the stored forecast of a crop against its
// recorded prices on overlapping dates.
func GetForecastAccuracy(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cropID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		accuracy, err := service.GetForecastAccuracy(cropID)
		if err != nil {
			if errors.Is(err, analyzing.ErrCropNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrCropNotFound, "crop not found", nil)
				return
			}

			logger.WithError(err).WithField("crop_id", cropID).Error("accuracy: failed to evaluate forecast")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to evaluate forecast", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(accuracy); err != nil {
			logger.WithError(err).Error("accuracy: failed to encode forecast accuracy")
		}
	})
}
