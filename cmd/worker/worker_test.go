package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/leadbridge/whatsapp-leads-api/internal/model"
)

func TestHandleDelivery(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	body, _ := json.Marshal(map[string]any{
		"event": "lead.created",
		"lead": model.Lead{
			ID:             42,
			NumeroTelefono: "+34600123456",
			FechaHora:      time.Date(2025, time.September, 12, 15, 30, 0, 0, time.UTC),
			PushName:       "Maria",
			NombreUsuario:  "maria.garcia",
		},
	})

	if err := handleDelivery(logger, body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line := buf.String()
	for _, want := range []string{`"event":"lead.created"`, `"lead_id":42`, `"numero_telefono":"+34600123456"`} {
		if !strings.Contains(line, want) {
			t.Errorf("expected log line to contain %s, got %s", want, line)
		}
	}
}

func TestHandleDeliveryMalformed(t *testing.T) {
	if err := handleDelivery(zerolog.Nop(), []byte("{not json")); err == nil {
		t.Error("expected error for malformed body")
	}
}
