// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LeadsInserted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "leads_inserted_total",
		Help: "Leads successfully written to whatsapp_leads.",
	})

	LeadInsertFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lead_insert_failures_total",
		Help: "Rejected or failed insert requests, partitioned by reason.",
	}, []string{"reason"})
)

// Failure reasons. Kept as constants so dashboards never chase typos.
const (
	ReasonValidation   = "validation"
	ReasonUnauthorized = "unauthorized"
	ReasonStorage      = "storage"
)
