package parser

import (
	"fmt"
	"strings"
	"time"
)

// DefaultSlotInterval is the gap assumed between consecutive rows without a time.
const DefaultSlotInterval = 30 * time.Minute

const day = 24 * time.Hour

// Accepted layouts, tried in order.
var clockLayouts = []string{"15:04:05", "15:04"}

// Clock is a time of day as an offset from midnight.
type Clock time.Duration

// ParseClock parses "HH:MM:SS" or "HH:MM" (24-hour).
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	var firstErr error
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			h, m, sec := t.Clock()
			return Clock(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return 0, fmt.Errorf("invalid time %q: %w", s, firstErr)
}

// Add advances the clock by d, wrapping at midnight. wrapped reports whether
// midnight was crossed.
func (c Clock) Add(d time.Duration) (next Clock, wrapped bool) {
	v := time.Duration(c) + d
	wrapped = v >= day || v < 0
	v %= day
	if v < 0 {
		v += day
	}
	return Clock(v), wrapped
}

// String formats the clock as "HH:MM:SS".
func (c Clock) String() string {
	d := time.Duration(c)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// SlotSource tells where a row's time came from.
type SlotSource int

const (
	// SlotNone means the row has no time and must be skipped.
	SlotNone SlotSource = iota
	// SlotParsed means the time cell held a valid time.
	SlotParsed
	// SlotSynthesized means the time was derived from the previous row.
	SlotSynthesized
)

func (s SlotSource) String() string {
	switch s {
	case SlotParsed:
		return "parsed"
	case SlotSynthesized:
		return "synthesized"
	default:
		return "none"
	}
}

// Slot is the resolved time of one row.
type Slot struct {
	Clock  Clock
	Source SlotSource
	// Malformed is set when the time cell held text that is not a time.
	// Such rows are handled like rows with an empty time cell.
	Malformed bool
	// Wrapped is set when synthesis crossed midnight.
	Wrapped bool
}

// OK reports whether the row has a usable time.
func (s Slot) OK() bool {
	return s.Source != SlotNone
}

// TimeTrack carries the last known time down the rows of one sheet. A new
// TimeTrack must be used for every sheet.
type TimeTrack struct {
	interval time.Duration
	cursor   Clock
	started  bool
}

// NewTimeTrack returns a track that synthesizes missing times by adding
// interval to the previous row's time.
func NewTimeTrack(interval time.Duration) *TimeTrack {
	if interval <= 0 {
		interval = DefaultSlotInterval
	}
	return &TimeTrack{interval: interval}
}

// Resolve returns the time for a row given the text of its time cell.
func (t *TimeTrack) Resolve(cell string) Slot {
	var malformed bool
	if !IsBlank(cell) {
		c, err := ParseClock(cell)
		if err == nil {
			t.cursor = c
			t.started = true
			return Slot{Clock: c, Source: SlotParsed}
		}
		malformed = true
	}

	if !t.started {
		return Slot{Source: SlotNone, Malformed: malformed}
	}

	next, wrapped := t.cursor.Add(t.interval)
	t.cursor = next
	return Slot{Clock: next, Source: SlotSynthesized, Malformed: malformed, Wrapped: wrapped}
}
