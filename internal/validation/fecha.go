// internal/validation/fecha.go
package validation

import (
	"fmt"
	"strings"
	"time"
)

const fechaLayout = "2006-01-02T15:04:05"

const fechaShapes = `"YYYY-MM-DD HH:MM:SS" or "YYYY-MM-DDTHH:MM:SS"`

// ParseFechaHora resolves the optional FECHA_HORA string. Empty input means
// the client sent nothing and yields the current time. A space separator is
// folded into the combined "T" form before parsing, so both accepted shapes
// land on the same instant; a combined form with an explicit zone offset is
// taken as-is. Anything else is rejected with a message naming the accepted
// shapes.
func ParseFechaHora(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}

	normalized := strings.Replace(s, " ", "T", 1)
	if t, err := time.ParseInLocation(fechaLayout, normalized, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, normalized); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("FECHA_HORA must match %s", fechaShapes)
}
