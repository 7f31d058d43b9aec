package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/bluzora/crop-price-api/infrastructure/repository"
	"github.com/bluzora/crop-price-api/internal/domain"
	"github.com/bluzora/crop-price-api/internal/usecases/cataloging"
	"github.com/bluzora/crop-price-api/pkg/apiErrors"
	"github.com/bluzora/crop-price-api/pkg/log"
	"github.com/bluzora/crop-price-api/pkg/utils"
)

// defaultWindowDays is the report window used when the caller does not
// pass an explicit date range.
const defaultWindowDays = 30

type upsertPricesRequest struct {
	Prices []pricePointPayload `json:"prices"`
}

type pricePointPayload struct {
	Date         string  `json:"date"`
	AveragePrice float64 `json:"average_price"`
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
}

// dateRangeFromQuery reads start_date/end_date query parameters, falling
// back to the last defaultWindowDays ending today.
func dateRangeFromQuery(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now()
	start := now.AddDate(0, 0, -defaultWindowDays)
	end := now

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, errors.Wrap(err, "invalid start_date")
		}
		start = parsed
	}

	if raw := r.URL.Query().Get("end_date"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, errors.Wrap(err, "invalid end_date")
		}
		end = parsed
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end_date before start_date")
	}

	return start, end, nil
}

func GetCropPrices(service cataloging.CatalogService, priceRepo repository.CropPriceRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cropID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		start, end, err := dateRangeFromQuery(r)
		if err != nil {
			logger.WithError(err).WithField("crop_id", cropID).Warn("prices: invalid date range")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		if _, err := service.GetCrop(cropID); err != nil {
			writeCropLookupError(w, logger, cropID, err)
			return
		}

		series, err := priceRepo.GetByDateRange(cropID, start, end)
		if err != nil {
			logger.WithError(err).WithField("crop_id", cropID).Error("prices: failed to load price history")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to load price history", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(series); err != nil {
			logger.WithError(err).Error("prices: failed to encode price history")
		}
	})
}

// UpsertCropPrices ingests a batch of daily price points for one crop.
// Points are keyed by date, so re-sending a day overwrites it.
func UpsertCropPrices(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cropID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req upsertPricesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("prices: malformed upsert request")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "malformed request body", nil)
			return
		}

		if len(req.Prices) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "prices list is empty", nil)
			return
		}

		points := make([]domain.PricePoint, 0, len(req.Prices))
		for _, payload := range req.Prices {
			date, err := utils.ParseDate(payload.Date)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid date: "+payload.Date, nil)
				return
			}
			points = append(points, domain.PricePoint{
				Date:         date,
				AveragePrice: payload.AveragePrice,
				MinPrice:     payload.MinPrice,
				MaxPrice:     payload.MaxPrice,
			})
		}

		count, err := service.UpsertPrices(cropID, points)
		if err != nil {
			if errors.Is(err, cataloging.ErrCropNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrCropNotFound, "crop not found", nil)
				return
			}

			logger.WithError(err).WithField("crop_id", cropID).Error("prices: failed to upsert prices")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to save prices", nil)
			return
		}

		logger.WithFields(log.Fields{
			"crop_id": cropID,
			"count":   count,
		}).Info("prices: price points upserted")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"upserted": count})
	})
}

func GetCropPredictions(service cataloging.CatalogService, predictedRepo repository.PredictedPriceRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cropID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		start, end, err := dateRangeFromQuery(r)
		if err != nil {
			logger.WithError(err).WithField("crop_id", cropID).Warn("predictions: invalid date range")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		if _, err := service.GetCrop(cropID); err != nil {
			writeCropLookupError(w, logger, cropID, err)
			return
		}

		points, err := predictedRepo.GetByDateRange(cropID, start, end)
		if err != nil {
			logger.WithError(err).WithField("crop_id", cropID).Error("predictions: failed to load forecast")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to load forecast", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(points); err != nil {
			logger.WithError(err).Error("predictions: failed to encode forecast")
		}
	})
}

func writeCropLookupError(w http.ResponseWriter, logger log.Logger, cropID string, err error) {
	if errors.Is(err, cataloging.ErrCropNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrCropNotFound, "crop not found", nil)
		return
	}

	logger.WithError(err).WithField("crop_id", cropID).Error("failed to load crop")
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to load crop", nil)
}
