// Package respond writes the JSON bodies shared by all controllers.
package respond

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"servicecenter/internal/dto"
	apperrors "servicecenter/internal/errors"
)

// MaxBodyBytes caps the size of decoded request bodies.
const MaxBodyBytes = 1 << 20

func JSON(w http.ResponseWriter, status int, data interface{}, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// Error maps application errors to status codes. Unknown errors are logged and
// reported as a generic 500.
func Error(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		write(w, traceID, http.StatusBadRequest, "VALIDATION_ERROR", ve.Message, ve.Details, logger)
		return
	}

	if ue, ok := apperrors.IsUnauthorizedError(err); ok {
		write(w, traceID, http.StatusUnauthorized, "UNAUTHORIZED", ue.Message, nil, logger)
		return
	}

	if fe, ok := apperrors.IsForbiddenError(err); ok {
		write(w, traceID, http.StatusForbidden, "FORBIDDEN", fe.Message, nil, logger)
		return
	}

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		write(w, traceID, http.StatusNotFound, "NOT_FOUND", nfe.Message, nil, logger)
		return
	}

	logger.Error("unexpected error", zap.String("traceId", traceID), zap.Error(err))
	write(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred", nil, logger)
}

func write(w http.ResponseWriter, traceID string, status int, code, message string, details []apperrors.ValidationDetail, logger *zap.Logger) {
	JSON(w, status, dto.ErrorResponse{
		TraceID:   traceID,
		Status:    status,
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}, logger)
}
