package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/leadbridge/whatsapp-leads-api/internal/metrics"
)

func TestFailureCounterByReason(t *testing.T) {
	before := testutil.ToFloat64(metrics.LeadInsertFailures.WithLabelValues(metrics.ReasonValidation))

	metrics.LeadInsertFailures.WithLabelValues(metrics.ReasonValidation).Inc()

	after := testutil.ToFloat64(metrics.LeadInsertFailures.WithLabelValues(metrics.ReasonValidation))
	if after != before+1 {
		t.Errorf("expected counter to advance by 1, got %v -> %v", before, after)
	}
}

func TestInsertedCounter(t *testing.T) {
	before := testutil.ToFloat64(metrics.LeadsInserted)
	metrics.LeadsInserted.Inc()
	if got := testutil.ToFloat64(metrics.LeadsInserted); got != before+1 {
		t.Errorf("expected counter to advance by 1, got %v -> %v", before, got)
	}
}
