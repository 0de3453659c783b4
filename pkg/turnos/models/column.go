package models

// ColumnDate associates a grid column with the date found in its header.
type ColumnDate struct {
	// Column is the 0-based grid column index (always >= 1).
	Column int `json:"column"`
	// Date is "YYYY-MM-DD", or the raw header text when Normalized is false.
	Date string `json:"date"`
	// Normalized reports whether Date was parsed from a date pattern.
	Normalized bool `json:"normalized"`
}

// ColumnDates is the per-sheet column to date map, ordered by column.
type ColumnDates []ColumnDate

// Lookup returns the date for a column.
func (cd ColumnDates) Lookup(col int) (string, bool) {
	for _, c := range cd {
		if c.Column == col {
			return c.Date, true
		}
	}
	return "", false
}
