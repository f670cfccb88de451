// internal/service/lead_service.go
package service

import (
	"context"

	"github.com/rs/zerolog"

	appErrors "github.com/leadbridge/whatsapp-leads-api/internal/errors"
	"github.com/leadbridge/whatsapp-leads-api/internal/metrics"
	"github.com/leadbridge/whatsapp-leads-api/internal/model"
	"github.com/leadbridge/whatsapp-leads-api/internal/queue"
	"github.com/leadbridge/whatsapp-leads-api/internal/repository"
	"github.com/leadbridge/whatsapp-leads-api/internal/validation"
)

// LeadService orchestrates validation, date resolution and the insert.
// Publisher may be nil; events are best effort either way.
type LeadService struct {
	LeadRepo  repository.LeadRepositoryInterface
	Publisher queue.Publisher
	Logger    zerolog.Logger
}

// Insert runs the full pipeline for one lead. Field violations and a
// malformed FECHA_HORA both come back as *appErrors.ValidationError with
// the offending rules spelled out; any other error is a storage failure.
// The database is never touched once a violation is found.
func (s *LeadService) Insert(ctx context.Context, in model.LeadInput) (*model.Lead, error) {
	lead, violations := validation.Normalize(in)
	if len(violations) > 0 {
		metrics.LeadInsertFailures.WithLabelValues(metrics.ReasonValidation).Inc()
		return nil, &appErrors.ValidationError{Details: violations}
	}

	fecha, err := validation.ParseFechaHora(validation.CoerceString(in.FechaHora))
	if err != nil {
		metrics.LeadInsertFailures.WithLabelValues(metrics.ReasonValidation).Inc()
		return nil, appErrors.NewValidationError(err.Error())
	}
	lead.FechaHora = fecha

	if err := s.LeadRepo.Insert(ctx, lead); err != nil {
		metrics.LeadInsertFailures.WithLabelValues(metrics.ReasonStorage).Inc()
		return nil, err
	}

	metrics.LeadsInserted.Inc()

	if s.Publisher != nil {
		if err := s.Publisher.LeadCreated(lead); err != nil {
			s.Logger.Warn().Err(err).Int64("lead_id", lead.ID).Msg("⚠️ failed to publish lead event")
		}
	}

	return lead, nil
}
