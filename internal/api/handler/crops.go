package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/bluzora/crop-price-api/internal/usecases/cataloging"
	"github.com/bluzora/crop-price-api/pkg/apiErrors"
	"github.com/bluzora/crop-price-api/pkg/log"
)

type createCropRequest struct {
	Name             string  `json:"name"`
	Unit             string  `json:"unit"`
	GrowDurationDays int     `json:"grow_duration_days"`
	ImageURL         *string `json:"image_url"`
}

// ListCrops returns every crop with its latest price band and the
// day-over-day movement.
func ListCrops(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		overviews, err := service.ListCropOverviews()
		if err != nil {
			logger.WithError(err).Error("crops: failed to list crop overviews")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to list crops", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(overviews); err != nil {
			logger.WithError(err).Error("crops: failed to encode crop list")
		}
	})
}

func CreateCrop(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req createCropRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("crops: malformed create request")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "malformed request body", nil)
			return
		}

		if req.Name == "" || req.Unit == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "name and unit are required", nil)
			return
		}

		crop, err := service.CreateCrop(req.Name, req.Unit, req.GrowDurationDays, req.ImageURL)
		if err != nil {
			if errors.Is(err, cataloging.ErrCropAlreadyExists) {
				apiErrors.WriteError(w, apiErrors.ErrCropAlreadyExists, "crop name already registered", nil)
				return
			}

			logger.WithError(err).WithField("crop_name", req.Name).Error("crops: failed to create crop")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to create crop", nil)
			return
		}

		logger.WithFields(log.Fields{
			"crop_id":   crop.ID,
			"crop_name": crop.Name,
		}).Info("crops: crop created")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(crop); err != nil {
			logger.WithError(err).Error("crops: failed to encode created crop")
		}
	})
}
