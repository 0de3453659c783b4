package parser

import "testing"

func TestCleanName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"phone after hyphen", "Juan Pérez - 11 1234-5678", "Juan Pérez"},
		{"leading DNI", "DNI: 12345678 Maria Lopez", "Maria Lopez"},
		{"lower case DNI", "dni 23456789 pedro", "Pedro"},
		{"trailing DNI marker", "12345678 (DNI) Ana Diaz", "Ana Diaz"},
		{"local phone", "Carlos Gomez 1151234567", "Carlos Gomez"},
		{"area code phone", "Rosa (011) 45678901", "Rosa"},
		{"standalone number", "Luis 1234567", "Luis"},
		{"number glued to accented letter", "José1234567", "José1234567"},
		{"surrounding punctuation", "(Ana Ruiz).", "Ana Ruiz"},
		{"capitalize words", "  ana   maría    gómez ", "Ana María Gómez"},
		{"rest of word untouched", "mARIA", "MARIA"},
		{"spanish initial", "ñandú", "Ñandú"},
		{"decomposed accent", "Jose\u0301 Perez", "Jos\u00e9 Perez"},
		{"only digits", "12345678", ""},
		{"only punctuation", "-- ??", ""},
		{"blank", "   ", ""},
		{"invalid utf8", "\xff\xfeAna", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanName(tt.input)
			if got != tt.want {
				t.Errorf("CleanName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanNameIdempotent(t *testing.T) {
	inputs := []string{
		"Juan Pérez - 11 1234-5678",
		"DNI: 12345678 Maria Lopez",
		"12345678 (DNI) Ana Diaz",
		"Carlos Gomez 1151234567",
		"(Ana Ruiz).",
		"  ana   maría    gómez ",
		"mARIA",
		"José1234567",
		"Rosa (011) 45678901",
		"Sr. Pablo O'Neil",
	}

	for _, in := range inputs {
		once := CleanName(in)
		twice := CleanName(once)
		if once != twice {
			t.Errorf("CleanName not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestCleanValue(t *testing.T) {
	tests := []struct {
		input interface{}
		want  string
	}{
		{"maria lopez", "Maria Lopez"},
		{42, ""},
		{3.5, ""},
		{nil, ""},
	}

	for _, tt := range tests {
		if got := CleanValue(tt.input); got != tt.want {
			t.Errorf("CleanValue(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsPlausibleName(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"Al", false},
		{"Ñu", false},
		{"Ana", true},
		{"Ñoa", true},
	}

	for _, tt := range tests {
		if got := IsPlausibleName(tt.input); got != tt.want {
			t.Errorf("IsPlausibleName(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
