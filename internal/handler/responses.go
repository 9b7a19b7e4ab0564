package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/LoadoutCalc_Go/internal/domain"
	"github.com/osse101/LoadoutCalc_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err against the request and writes the mapped
// user-facing status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgMaterialNotFoundErr = "Material not found"
	ErrMsgUnknownCategoryErr  = "Unknown category. Valid options: weapons, augments, shields, quick_use, ammo, modifications, materials"
	ErrMsgCatalogNotLoadedErr = "Catalog is not loaded yet. Please try again later."
	ErrMsgInvalidQuantityErr  = "Quantity must be between 1 and 100000"
	ErrMsgInvalidIndexErr     = "Entry index out of range"
	ErrMsgInvalidOwnedErr     = "Owned amounts cannot be negative"
	ErrMsgInvalidModeErr      = "Invalid cost mode. Valid options: total, upgrade"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// errors.Is walks wrapped chains, so wrapped domain errors resolve too.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrMaterialNotFound):
		return http.StatusNotFound, ErrMsgMaterialNotFoundErr
	case errors.Is(err, domain.ErrUnknownCategory):
		return http.StatusNotFound, ErrMsgUnknownCategoryErr
	case errors.Is(err, domain.ErrCatalogNotLoaded):
		return http.StatusServiceUnavailable, ErrMsgCatalogNotLoadedErr
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrMsgInvalidQuantityErr
	case errors.Is(err, domain.ErrInvalidIndex):
		return http.StatusBadRequest, ErrMsgInvalidIndexErr
	case errors.Is(err, domain.ErrInvalidOwned):
		return http.StatusBadRequest, ErrMsgInvalidOwnedErr
	case errors.Is(err, domain.ErrInvalidMode):
		return http.StatusBadRequest, ErrMsgInvalidModeErr
	}

	// Anything unrecognised stays generic so internal details do not leak
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
