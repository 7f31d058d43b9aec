package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Standardized API error codes.
const (
	// Validation errors
	ErrInvalidRequest      = "VAL_001" // Malformed request
	ErrMissingRequiredData = "VAL_002" // Missing required parameters
	ErrInvalidFormat       = "VAL_003" // Invalid data format (dates, numbers)

	// Domain errors
	ErrCropNotFound      = "CROP_001" // Unknown crop
	ErrCropAlreadyExists = "CROP_002" // Crop name already registered
	ErrInsufficientData  = "CROP_003" // Not enough observations to compute

	// Server errors
	ErrInternalServer    = "SRV_001" // Internal server error
	ErrDatabaseOperation = "SRV_002" // Database operation failed
	ErrForecastRun       = "SRV_003" // Forecast batch failed
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrCropNotFound:        http.StatusNotFound,
	ErrCropAlreadyExists:   http.StatusConflict,
	ErrInsufficientData:    http.StatusUnprocessableEntity,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrForecastRun:         http.StatusInternalServerError,
}

// APIError is the standardized error payload.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error to the HTTP response.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps a Go error into an API error.
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
