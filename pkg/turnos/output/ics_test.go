package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ukaji3/turnos-go/pkg/turnos/models"
)

func TestToICS(t *testing.T) {
	appts := []models.Appointment{
		{Name: "Juan Pérez", Timestamp: "2025-01-06 09:00:00", OriginalName: "Juan Pérez - 11 1234-5678", Kind: models.KindSurgery},
		{Name: "Ana Diaz", Timestamp: "Semana 2025 09:30:00", OriginalName: "Ana Diaz"},
		{Name: "Rosa Diaz", Timestamp: "2025-01-07 10:00:00", OriginalName: "Rosa Diaz"},
	}

	data, skipped, err := ToICS(appts, CalendarOptions{Duration: 30 * time.Minute})
	if err != nil {
		t.Fatalf("ToICS failed: %v", err)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}

	s := string(data)
	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"DTSTART:20250106T090000",
		"DTEND:20250106T093000",
		"SUMMARY:Juan Pérez",
		"CATEGORIES:cirugia",
		"DTSTART:20250107T100000",
		"SUMMARY:Rosa Diaz",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("ToICS() missing %q", want)
		}
	}
	if strings.Count(s, "BEGIN:VEVENT") != 2 {
		t.Errorf("expected 2 events, got %d", strings.Count(s, "BEGIN:VEVENT"))
	}

	again, _, _ := ToICS(appts, CalendarOptions{Duration: 30 * time.Minute})
	if !bytes.Equal(data, again) {
		t.Error("ToICS output differs between runs")
	}
}

func TestToICSInvalidDuration(t *testing.T) {
	if _, _, err := ToICS(nil, CalendarOptions{}); err == nil {
		t.Error("expected error for zero duration")
	}
}
