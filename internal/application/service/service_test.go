package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hapkiduki/shipping-console/internal/application/port"
	"github.com/hapkiduki/shipping-console/internal/domain/entity"
	"github.com/hapkiduki/shipping-console/internal/infrastructure/logging"
	"github.com/hapkiduki/shipping-console/internal/infrastructure/persistance/memory"
	"github.com/hapkiduki/shipping-console/pkg/validation"
)

const (
	ownerA = "token-a"
	ownerB = "token-b"
)

// fakeSubmitter records submissions and can be told to fail.
type fakeSubmitter struct {
	mu          sync.Mutex
	submissions []entity.ShipmentSubmission
	err         error
}

func (f *fakeSubmitter) Submit(_ context.Context, sub entity.ShipmentSubmission) (port.SubmissionReceipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return port.SubmissionReceipt{}, f.err
	}
	f.submissions = append(f.submissions, sub)
	return port.SubmissionReceipt{
		ConfirmationID: fmt.Sprintf("SHP-%d", len(f.submissions)),
		AcceptedAt:     time.Now().UTC(),
	}, nil
}

// recordingMetrics counts what the services record.
type recordingMetrics struct {
	mu             sync.Mutex
	draftsStarted  int
	pieceMutations map[port.PieceOperation]int
	submitted      map[entity.ServiceType]float64
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		pieceMutations: make(map[port.PieceOperation]int),
		submitted:      make(map[entity.ServiceType]float64),
	}
}

func (m *recordingMetrics) RecordHTTPRequest(string, string, int, time.Duration) {}
func (m *recordingMetrics) HTTPRequestStarted()                                  {}
func (m *recordingMetrics) HTTPRequestFinished()                                 {}

func (m *recordingMetrics) RecordDraftStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draftsStarted++
}

func (m *recordingMetrics) RecordPieceMutation(op port.PieceOperation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pieceMutations[op]++
}

func (m *recordingMetrics) RecordShipmentSubmitted(service entity.ServiceType, weight float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitted[service] += weight
}

type draftFixture struct {
	svc       *DraftService
	drafts    *memory.DraftRepository
	submitter *fakeSubmitter
	metrics   *recordingMetrics
}

func sequentialIDs() entity.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("piece-%d", n)
	}
}

func newDraftFixture(opts ...DraftServiceOption) *draftFixture {
	f := &draftFixture{
		drafts:    memory.NewDraftRepository(),
		submitter: &fakeSubmitter{},
		metrics:   newRecordingMetrics(),
	}
	opts = append([]DraftServiceOption{WithPieceIDGenerator(sequentialIDs())}, opts...)
	f.svc = NewDraftService(f.drafts, f.submitter, validation.New(), f.metrics, logging.Nop(), opts...)
	return f
}

func ptr[T any](v T) *T {
	return &v
}
