// Package submitter contains ShipmentSubmitter adapters.
package submitter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hapkiduki/shipping-console/internal/application/port"
	"github.com/hapkiduki/shipping-console/internal/domain/entity"
)

// LogSubmitter accepts every shipment, logs its payload and issues a
// confirmation number. It stands in for the shipment-creation backend.
type LogSubmitter struct {
	logger port.Logger
	now    func() time.Time
}

// NewLogSubmitter creates a LogSubmitter writing to logger.
func NewLogSubmitter(logger port.Logger) *LogSubmitter {
	return &LogSubmitter{
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

var _ port.ShipmentSubmitter = (*LogSubmitter)(nil)

// Submit implements port.ShipmentSubmitter.
func (s *LogSubmitter) Submit(ctx context.Context, submission entity.ShipmentSubmission) (port.SubmissionReceipt, error) {
	if err := ctx.Err(); err != nil {
		return port.SubmissionReceipt{}, err
	}

	receipt := port.SubmissionReceipt{
		ConfirmationID: confirmationID(),
		AcceptedAt:     s.now(),
	}

	s.logger.WithContext(ctx).Info("Shipment accepted",
		"confirmation_id", receipt.ConfirmationID,
		"reference", submission.Reference,
		"service", submission.Service,
		"pieces", len(submission.Pieces),
		"sender", submission.SenderAddress.Summary(),
		"recipient", submission.RecipientAddress.Summary(),
	)
	return receipt, nil
}

// confirmationID returns an id of the form "SHP-1A2B3C4D5E6F".
func confirmationID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("SHP-%s", strings.ToUpper(raw[:12]))
}
