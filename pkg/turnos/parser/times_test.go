package parser

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"09:00:00", "09:00:00", false},
		{"9:30", "09:30:00", false},
		{" 14:05 ", "14:05:00", false},
		{"23:59:59", "23:59:59", false},
		{"25:00", "", true},
		{"nueve", "", true},
		{"0.375", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		c, err := ParseClock(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseClock(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && c.String() != tt.want {
			t.Errorf("ParseClock(%q) = %s, want %s", tt.input, c, tt.want)
		}
	}
}

func TestClockAdd(t *testing.T) {
	c, _ := ParseClock("23:45")
	next, wrapped := c.Add(30 * time.Minute)
	if next.String() != "00:15:00" || !wrapped {
		t.Errorf("Add past midnight = %s, wrapped=%v", next, wrapped)
	}

	next, wrapped = c.Add(10 * time.Minute)
	if next.String() != "23:55:00" || wrapped {
		t.Errorf("Add = %s, wrapped=%v", next, wrapped)
	}
}

func TestTimeTrackResolve(t *testing.T) {
	track := NewTimeTrack(30 * time.Minute)

	tests := []struct {
		cell          string
		wantTime      string
		wantSource    SlotSource
		wantMalformed bool
	}{
		{"", "", SlotNone, false},
		{"hora", "", SlotNone, true},
		{"09:00", "09:00:00", SlotParsed, false},
		{"", "09:30:00", SlotSynthesized, false},
		{"  ", "10:00:00", SlotSynthesized, false},
		{"10:15:00", "10:15:00", SlotParsed, false},
		{"almuerzo", "10:45:00", SlotSynthesized, true},
		{"", "11:15:00", SlotSynthesized, false},
	}

	for i, tt := range tests {
		slot := track.Resolve(tt.cell)
		if slot.Source != tt.wantSource || slot.Malformed != tt.wantMalformed {
			t.Errorf("row %d: Resolve(%q) = %+v, want source %s malformed %v",
				i, tt.cell, slot, tt.wantSource, tt.wantMalformed)
			continue
		}
		if slot.OK() && slot.Clock.String() != tt.wantTime {
			t.Errorf("row %d: Resolve(%q) time = %s, want %s", i, tt.cell, slot.Clock, tt.wantTime)
		}
	}
}

func TestTimeTrackSynthesisSequence(t *testing.T) {
	track := NewTimeTrack(0) // falls back to the default interval
	track.Resolve("08:00:00")

	want := []string{"08:30:00", "09:00:00", "09:30:00", "10:00:00"}
	for i, w := range want {
		slot := track.Resolve("")
		if slot.Source != SlotSynthesized || slot.Clock.String() != w {
			t.Errorf("step %d: got %s (%s), want %s", i+1, slot.Clock, slot.Source, w)
		}
	}
}

func TestTimeTrackWrap(t *testing.T) {
	track := NewTimeTrack(30 * time.Minute)
	track.Resolve("23:30")
	slot := track.Resolve("")
	if !slot.Wrapped || slot.Clock.String() != "00:00:00" {
		t.Errorf("Resolve after 23:30 = %+v", slot)
	}
}
