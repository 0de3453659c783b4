package models

// SheetStatus describes how a sheet was handled.
type SheetStatus string

const (
	SheetProcessed  SheetStatus = "processed"
	SheetMissing    SheetStatus = "missing"
	SheetEmpty      SheetStatus = "empty"
	SheetUndated    SheetStatus = "undated"
	SheetUnreadable SheetStatus = "unreadable"
)

// SheetReport summarises the scan of one sheet.
type SheetReport struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Status is the outcome for the sheet.
	Status SheetStatus `json:"status"`
	// DatedColumns is the number of columns with a header date.
	DatedColumns int `json:"dated_columns"`
	// Rows is the number of data rows visited.
	Rows int `json:"rows"`
	// UntimedRows counts rows skipped because no time resolved.
	UntimedRows int `json:"untimed_rows"`
	// Appointments is the number of records emitted.
	Appointments int `json:"appointments"`
	// CellErrors counts cells skipped because the record could not be built.
	CellErrors int `json:"cell_errors"`
}

// Result is the outcome of scanning a workbook.
type Result struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Appointments is the output sequence in sheet, row, column order.
	Appointments []Appointment `json:"appointments"`
	// Sheets holds one report per configured sheet, in scan order.
	Sheets []SheetReport `json:"sheets"`
}

// Count returns the number of sheets with the given status.
func (r *Result) Count(status SheetStatus) int {
	n := 0
	for _, s := range r.Sheets {
		if s.Status == status {
			n++
		}
	}
	return n
}
