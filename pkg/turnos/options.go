// Package turnos extracts patient appointments from weekly spreadsheet grids.
package turnos

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/turnos-go/pkg/turnos/parser"
)

// Options configures extraction behavior.
type Options struct {
	// Year is the target year. Header cells must contain it to be dated.
	Year int `yaml:"year"`
	// SheetPrefix is prepended to the sheet number to build sheet names.
	SheetPrefix string `yaml:"sheet_prefix"`
	// StartSheet and EndSheet bound the sheet numbers visited (inclusive).
	StartSheet int `yaml:"start_sheet"`
	EndSheet   int `yaml:"end_sheet"`
	// SlotInterval is added to the previous time for rows without one.
	SlotInterval time.Duration `yaml:"slot_interval"`
	// StrictDates drops columns whose header has the year but no parseable date.
	// When false the raw header text is used as the date.
	StrictDates bool `yaml:"strict_dates"`
	// DetectKinds classifies appointments by cell fill colour.
	DetectKinds bool `yaml:"detect_kinds"`
	// Logger receives diagnostics. If nil, the logrus standard logger is used.
	Logger logrus.FieldLogger `yaml:"-"`
}

// DefaultOptions returns default extraction options: sheets Hoja1..Hoja52 of
// 2025 with 30 minute slots.
func DefaultOptions() Options {
	return Options{
		Year:         2025,
		SheetPrefix:  "Hoja",
		StartSheet:   1,
		EndSheet:     52,
		SlotInterval: parser.DefaultSlotInterval,
	}
}

// LoadOptions reads options from a YAML file on top of DefaultOptions.
// Keys missing from the file keep their defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse %s: %w", path, err)
	}
	return opts, nil
}

// Validate checks that the options describe a usable scan.
func (o Options) Validate() error {
	if o.Year < 1 || o.Year > 9999 {
		return fmt.Errorf("invalid year %d (must be 1..9999)", o.Year)
	}
	if o.StartSheet < 1 {
		return errors.New("start sheet must be at least 1")
	}
	if o.EndSheet < o.StartSheet {
		return fmt.Errorf("end sheet %d is before start sheet %d", o.EndSheet, o.StartSheet)
	}
	if o.SlotInterval <= 0 || o.SlotInterval >= 24*time.Hour {
		return fmt.Errorf("invalid slot interval %s", o.SlotInterval)
	}
	return nil
}

// SheetNames returns the sheet names to visit, in order.
func (o Options) SheetNames() []string {
	if o.EndSheet < o.StartSheet {
		return nil
	}
	names := make([]string, 0, o.EndSheet-o.StartSheet+1)
	for i := o.StartSheet; i <= o.EndSheet; i++ {
		names = append(names, o.SheetPrefix+strconv.Itoa(i))
	}
	return names
}

func (o Options) dateParams() parser.DateParams {
	return parser.DateParams{Year: o.Year, Strict: o.StrictDates}
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}
