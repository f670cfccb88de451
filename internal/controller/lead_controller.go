// internal/controller/lead_controller.go
package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/leadbridge/whatsapp-leads-api/internal/config"
	appErrors "github.com/leadbridge/whatsapp-leads-api/internal/errors"
	"github.com/leadbridge/whatsapp-leads-api/internal/model"
	"github.com/leadbridge/whatsapp-leads-api/internal/service"
)

// HealthChecker is the slice of the connection manager the controller needs.
type HealthChecker interface {
	Health(ctx context.Context) error
}

type LeadController struct {
	LeadService *service.LeadService
	DB          HealthChecker
	Logger      zerolog.Logger
}

func (c *LeadController) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "WhatsApp leads API. POST /whatsapp/leads/insert with a JSON lead. Diagnostics: /health, /db-health, /env-check.")
}

func (c *LeadController) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"service": config.ServiceName,
	})
}

// DBHealth reports reachability with the underlying error text. Unlike the
// insert path this is a diagnostics endpoint, so the detail is the point.
func (c *LeadController) DBHealth(w http.ResponseWriter, r *http.Request) {
	if err := c.DB.Health(r.Context()); err != nil {
		c.Logger.Error().Err(err).Msg("database health check failed")
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"ok":    false,
			"error": err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "db": true})
}

func (c *LeadController) EnvCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, config.EnvReport())
}

func (c *LeadController) Insert(w http.ResponseWriter, r *http.Request) {
	var in model.LeadInput
	dec := json.NewDecoder(r.Body)
	// Numbers keep their literal form so a phone sent as a JSON number
	// does not collapse into scientific notation.
	dec.UseNumber()
	if err := dec.Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"ok":    false,
			"error": "invalid body",
		})
		return
	}

	lead, err := c.LeadService.Insert(r.Context(), in)
	if err != nil {
		var verr *appErrors.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"ok":      false,
				"error":   "validation",
				"details": verr.Details,
			})
			return
		}

		// Storage errors stay in the server log; clients get a fixed message.
		c.Logger.Error().Err(err).Msg("lead insert failed")
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"ok":    false,
			"error": "internal error",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":       true,
		"insertId": lead.ID,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
