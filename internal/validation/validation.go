// internal/validation/validation.go

// Package validation coerces the loosely typed insert payload into clean
// strings and checks them against the column bounds of whatsapp_leads.
// Every violation is collected; callers see the complete list, not the
// first failure.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/leadbridge/whatsapp-leads-api/internal/model"
)

// normalizedLead mirrors the writable columns. Bounds here must match the
// schema in seed/schema.sql.
type normalizedLead struct {
	NumeroTelefono string `json:"NUMERO_TELEFONO" validate:"required,max=26"`
	PushName       string `json:"PUSH_NAME" validate:"required,max=510"`
	NombreUsuario  string `json:"NOMBRE_USUARIO" validate:"required,max=255"`
	TipoSaludo     string `json:"TIPO_SALUDO" validate:"omitempty,max=100"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Violations name fields the way clients sent them.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if tag := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]; tag != "" {
			return tag
		}
		return fld.Name
	})
	return v
}

// CoerceString flattens any JSON value into a trimmed string. Absent and
// null both become the empty string. Numbers keep their literal form, so a
// phone number sent as a JSON number survives unmangled.
func CoerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}

// Normalize coerces the raw payload and checks every field rule. It returns
// either a lead ready for the date step and persistence, or the ordered
// violation list. FechaHora is left zero here; ParseFechaHora owns it.
func Normalize(in model.LeadInput) (*model.Lead, []string) {
	n := normalizedLead{
		NumeroTelefono: CoerceString(in.NumeroTelefono),
		PushName:       CoerceString(in.PushName),
		NombreUsuario:  CoerceString(in.NombreUsuario),
		TipoSaludo:     CoerceString(in.TipoSaludo),
	}

	if err := validate.Struct(&n); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, []string{err.Error()}
		}
		details := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, violationMessage(fe))
		}
		return nil, details
	}

	lead := &model.Lead{
		NumeroTelefono: n.NumeroTelefono,
		PushName:       n.PushName,
		NombreUsuario:  n.NombreUsuario,
	}
	// Empty greeting is stored as NULL, never "".
	if n.TipoSaludo != "" {
		lead.TipoSaludo = &n.TipoSaludo
	}
	return lead, nil
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}
