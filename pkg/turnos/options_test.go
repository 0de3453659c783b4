package turnos

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if err := opts.Validate(); err != nil {
		t.Fatalf("default options invalid: %v", err)
	}
	names := opts.SheetNames()
	if len(names) != 52 || names[0] != "Hoja1" || names[51] != "Hoja52" {
		t.Errorf("SheetNames() = %v", names)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
	}{
		{"defaults", func(o *Options) {}, false},
		{"zero year", func(o *Options) { o.Year = 0 }, true},
		{"five digit year", func(o *Options) { o.Year = 20250 }, true},
		{"start sheet zero", func(o *Options) { o.StartSheet = 0 }, true},
		{"end before start", func(o *Options) { o.StartSheet = 5; o.EndSheet = 4 }, true},
		{"single sheet", func(o *Options) { o.StartSheet = 3; o.EndSheet = 3 }, false},
		{"zero interval", func(o *Options) { o.SlotInterval = 0 }, true},
		{"day interval", func(o *Options) { o.SlotInterval = 24 * time.Hour }, true},
		{"empty prefix", func(o *Options) { o.SheetPrefix = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSheetNames(t *testing.T) {
	opts := DefaultOptions()
	opts.SheetPrefix = "Semana "
	opts.StartSheet = 3
	opts.EndSheet = 5

	want := []string{"Semana 3", "Semana 4", "Semana 5"}
	if got := opts.SheetNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("SheetNames() = %v, want %v", got, want)
	}
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turnos.yaml")
	content := `year: 2026
sheet_prefix: Semana
end_sheet: 10
slot_interval: 15m
strict_dates: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions failed: %v", err)
	}
	if opts.Year != 2026 || opts.SheetPrefix != "Semana" || opts.EndSheet != 10 {
		t.Errorf("LoadOptions() = %+v", opts)
	}
	if opts.StartSheet != 1 {
		t.Errorf("StartSheet = %d, want default 1", opts.StartSheet)
	}
	if opts.SlotInterval != 15*time.Minute {
		t.Errorf("SlotInterval = %s, want 15m", opts.SlotInterval)
	}
	if !opts.StrictDates || opts.DetectKinds {
		t.Errorf("flags = strict %v kinds %v", opts.StrictDates, opts.DetectKinds)
	}
}

func TestLoadOptionsErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadOptions(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("year: [not a number"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOptions(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
