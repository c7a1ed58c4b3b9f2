package ingestion

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	v1 "github.com/aevon-lab/rental-analytics/internal/api/v1"
	httperr "github.com/aevon-lab/rental-analytics/internal/core/errors"
	"github.com/aevon-lab/rental-analytics/internal/core/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgReadBodyFailed  = "Failed to read request body"
	msgInvalidJSON     = "Invalid JSON body"
	msgPersistFailed   = "Failed to persist record"
	msgDuplicateRecord = "Record already exists"
)

// ingestionError carries the structured HTTP error shape from a helper back to the orchestrator.
// Helpers return this instead of writing to gin.Context directly, keeping them decoupled from HTTP.
type ingestionError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *ingestionError) Error() string {
	return e.message
}

// IngestBookingHandler handles POST /v1/bookings.
func (s *Service) IngestBookingHandler(c *gin.Context) {
	var booking v1.Booking
	s.ingest(c, "booking", &booking, &booking.ID, booking.Validate, func(ctx context.Context) error {
		return s.store.SaveBooking(ctx, &booking)
	})
}

// IngestVehicleHandler handles POST /v1/vehicles.
func (s *Service) IngestVehicleHandler(c *gin.Context) {
	var vehicle v1.Vehicle
	s.ingest(c, "vehicle", &vehicle, &vehicle.ID, vehicle.Validate, func(ctx context.Context) error {
		return s.store.SaveVehicle(ctx, &vehicle)
	})
}

// IngestUserHandler handles POST /v1/users.
func (s *Service) IngestUserHandler(c *gin.Context) {
	var user v1.User
	s.ingest(c, "user", &user, &user.ID, user.Validate, func(ctx context.Context) error {
		return s.store.SaveUser(ctx, &user)
	})
}

// ingest binds the body into dst, fills a missing id, validates and saves.
// A record accepted here is visible to the next snapshot run.
func (s *Service) ingest(
	c *gin.Context,
	kind string,
	dst interface{},
	id *string,
	validate func() error,
	save func(ctx context.Context) error,
) {
	payloadSize, err := s.parseBody(c, dst)
	if err != nil {
		writeError(c, err)
		return
	}

	if *id == "" {
		*id = uuid.NewString()
	}

	if err := validate(); err != nil {
		slog.Warn("Record validation failed", "kind", kind, "id", *id, "error", err)
		writeError(c, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidRecordError,
			message:    err.Error(),
			details:    map[string]interface{}{"kind": kind},
		})
		return
	}

	slog.Info("Received record", "kind", kind, "id", *id, "payload_size", payloadSize)

	if err := persist(c.Request.Context(), kind, *id, save); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted", "id": *id})
}

// parseBody reads the raw request body and binds it into dst.
// Returns the raw payload size (used for structured logging upstream).
func (s *Service) parseBody(c *gin.Context, dst interface{}) (int, *ingestionError) {
	// Enforce maximum body size to prevent OOM attacks
	maxBytes := int64(s.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	bodyBytes, err := io.ReadAll(limitedBody)
	if err != nil {
		slog.Error("Failed to read request body", "error", err)
		return 0, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("Request body exceeds maximum size", "size", len(bodyBytes), "max", maxBytes)
		return len(bodyBytes), &ingestionError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpPayloadTooLargeError,
			message:    "Request body exceeds maximum allowed size",
			details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	if err := c.ShouldBindJSON(dst); err != nil {
		slog.Warn("Invalid JSON body received", "error", err, "payload_size", len(bodyBytes))
		return len(bodyBytes), &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
		}
	}

	return len(bodyBytes), nil
}

// persist saves the record to the backing store.
func persist(ctx context.Context, kind, id string, save func(ctx context.Context) error) *ingestionError {
	if err := save(ctx); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			slog.Info("Duplicate record rejected", "kind", kind, "id", id)
			return &ingestionError{
				statusCode: http.StatusConflict,
				errorType:  httperr.HttpDuplicateRecordError,
				message:    msgDuplicateRecord,
			}
		}

		slog.Error("Failed to persist record", "kind", kind, "id", id, "error", err)
		return &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgPersistFailed,
		}
	}

	return nil
}

// writeError serializes an ingestionError as the JSON HTTP response.
func writeError(c *gin.Context, err *ingestionError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
