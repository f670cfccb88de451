package validation_test

import (
	"strings"
	"testing"
	"time"

	"github.com/leadbridge/whatsapp-leads-api/internal/validation"
)

func TestParseFechaHoraBothShapes(t *testing.T) {
	spaced, err := validation.ParseFechaHora("2025-09-12 15:30:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	combined, err := validation.ParseFechaHora("2025-09-12T15:30:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !spaced.Equal(combined) {
		t.Errorf("expected both shapes to yield the same instant, got %v and %v", spaced, combined)
	}
	if spaced.Year() != 2025 || spaced.Month() != time.September || spaced.Day() != 12 {
		t.Errorf("unexpected date: %v", spaced)
	}
	if spaced.Hour() != 15 || spaced.Minute() != 30 || spaced.Second() != 0 {
		t.Errorf("unexpected time of day: %v", spaced)
	}
}

func TestParseFechaHoraAcceptsExplicitZone(t *testing.T) {
	got, err := validation.ParseFechaHora("2025-09-12T15:30:00+02:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, time.September, 12, 13, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseFechaHoraRejectsGarbage(t *testing.T) {
	for _, in := range []string{"not-a-date", "2025-13-45 99:99:99", "12/09/2025"} {
		_, err := validation.ParseFechaHora(in)
		if err == nil {
			t.Errorf("expected %q to fail", in)
			continue
		}
		if !strings.Contains(err.Error(), "YYYY-MM-DD HH:MM:SS") || !strings.Contains(err.Error(), "YYYY-MM-DDTHH:MM:SS") {
			t.Errorf("error must name both accepted shapes, got %q", err.Error())
		}
	}
}

func TestParseFechaHoraDefaultsToNow(t *testing.T) {
	got, err := validation.ParseFechaHora("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d := time.Since(got); d < 0 || d > 5*time.Second {
		t.Errorf("expected a timestamp close to now, got %v (drift %v)", got, d)
	}
}
