package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hapkiduki/shipping-console/internal/application/port"
	"github.com/hapkiduki/shipping-console/internal/domain/entity"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheus_Records(t *testing.T) {
	m := NewPrometheus("test")

	m.RecordDraftStarted()
	m.RecordPieceMutation(port.PieceOperationAdd)
	m.RecordPieceMutation(port.PieceOperationAdd)
	m.RecordPieceMutation(port.PieceOperationRemove)
	m.RecordShipmentSubmitted(entity.ServiceTypeExpress, 12.5)
	m.RecordHTTPRequest(http.MethodGet, "/health", http.StatusOK, 3*time.Millisecond)
	m.HTTPRequestStarted()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.draftsStarted))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.pieceMutations.WithLabelValues("add")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.pieceMutations.WithLabelValues("remove")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.shipmentsSubmited.WithLabelValues("express")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/health", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsInFlight))

	m.HTTPRequestFinished()
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpRequestsInFlight))
}

func TestPrometheus_Handler(t *testing.T) {
	m := NewPrometheus("test")
	m.RecordDraftStarted()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_drafts_started_total 1")
}
