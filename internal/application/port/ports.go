// Package port contains the port interfaces (driven ports) for the application layer.
// Ports define what the application needs from the outside world (logging,
// metrics, the shipment-creation backend); adapters in infrastructure
// implement them.
package port

import (
	"context"
	"errors"
	"time"

	"github.com/hapkiduki/shipping-console/internal/domain/entity"
)

// Logger defines the interface for structured logging.
//
// Example usage:
//
//	logger.Info("Piece added", "draft_id", draftID, "piece_id", pieceID)
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keysAndValues ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keysAndValues ...interface{})

	// With return a logger with additional context fields.
	With(keysAndValues ...interface{}) Logger

	// WithContext return a logger with context information (e.g., request ID).
	WithContext(ctx context.Context) Logger
}

// PieceOperation names a piece collection mutation for metrics.
type PieceOperation string

const (
	PieceOperationAdd    PieceOperation = "add"
	PieceOperationUpdate PieceOperation = "update"
	PieceOperationRemove PieceOperation = "remove"
	PieceOperationNoop   PieceOperation = "noop"
)

// Metrics defines the interface for recording application metrics.
type Metrics interface {
	// RecordHTTPRequest records one served request.
	RecordHTTPRequest(method, route string, status int, duration time.Duration)

	// HTTPRequestStarted and HTTPRequestFinished track in-flight requests.
	HTTPRequestStarted()
	HTTPRequestFinished()

	// RecordDraftStarted counts a new shipment draft.
	RecordDraftStarted()

	// RecordPieceMutation counts a piece collection mutation.
	RecordPieceMutation(op PieceOperation)

	// RecordShipmentSubmitted counts a submitted shipment and observes its
	// chargeable weight.
	RecordShipmentSubmitted(service entity.ServiceType, chargeableWeight float64)
}

// SubmissionReceipt is returned by the shipment-creation backend.
type SubmissionReceipt struct {
	// ConfirmationID identifies the created shipment.
	ConfirmationID string

	// AcceptedAt is when the backend accepted the shipment.
	AcceptedAt time.Time
}

// ErrSubmitterUnavailable is returned by a ShipmentSubmitter that is
// refusing calls, e.g. while its circuit breaker is open.
var ErrSubmitterUnavailable = errors.New("shipment backend unavailable")

// ShipmentSubmitter hands a submitted draft to the shipment-creation backend.
type ShipmentSubmitter interface {
	Submit(ctx context.Context, submission entity.ShipmentSubmission) (SubmissionReceipt, error)
}
