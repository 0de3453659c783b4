// Package parser reads weekly appointment grids and interprets their cells.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the workbook has no sheet with the requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// Book is a workbook opened with excelize.
type Book struct {
	f        *excelize.File
	date1904 bool
}

// OpenBook opens an xlsx file.
func OpenBook(path string) (*Book, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return NewBook(f), nil
}

// NewBook wraps an already opened file. The caller keeps ownership of f
// unless Close is called on the Book.
func NewBook(f *excelize.File) *Book {
	b := &Book{f: f}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		b.date1904 = *props.Date1904
	}
	return b
}

// Close closes the underlying file.
func (b *Book) Close() error {
	return b.f.Close()
}

// SheetList returns the sheet names in workbook order.
func (b *Book) SheetList() []string {
	return b.f.GetSheetList()
}

// SheetRows returns the cell text of a sheet as a ragged grid (0-based rows
// and columns). Numeric cells with a date or time number format are rendered
// as "2006-01-02 15:04:05", or "15:04:05" when the serial has no day part.
func (b *Book) SheetRows(sheet string) ([][]string, error) {
	idx, err := b.f.GetSheetIndex(sheet)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}

	rows, err := b.f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	raw, err := b.f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	for rowIdx, row := range rows {
		if rowIdx >= len(raw) {
			break
		}
		for colIdx, cellValue := range row {
			if colIdx >= len(raw[rowIdx]) {
				break
			}
			rawValue := raw[rowIdx][colIdx]
			// Only cells with a number format applied can be dates.
			if rawValue == cellValue {
				continue
			}
			if text, ok := b.dateCell(sheet, rowIdx, colIdx, rawValue); ok {
				row[colIdx] = text
			}
		}
	}

	return rows, nil
}

func (b *Book) dateCell(sheet string, rowIdx, colIdx int, rawValue string) (string, bool) {
	serial, ok := parseSerial(rawValue)
	if !ok || serial < 0 {
		return "", false
	}
	style, err := b.cellStyle(sheet, rowIdx, colIdx)
	if err != nil || !isDateFormat(style) {
		return "", false
	}
	t, err := excelize.ExcelDateToTime(serial, b.date1904)
	if err != nil {
		return "", false
	}
	if serial < 1 {
		return t.Format("15:04:05"), true
	}
	return t.Format("2006-01-02 15:04:05"), true
}

func (b *Book) cellStyle(sheet string, rowIdx, colIdx int) (*excelize.Style, error) {
	cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
	if err != nil {
		return nil, err
	}
	styleID, err := b.f.GetCellStyle(sheet, cellName)
	if err != nil {
		return nil, err
	}
	return b.f.GetStyle(styleID)
}

// Built-in number formats that render dates or times.
var dateNumFmts = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

func isDateFormat(style *excelize.Style) bool {
	if style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return isDateFormatCode(*style.CustomNumFmt)
	}
	return dateNumFmts[style.NumFmt]
}

// isDateFormatCode reports whether a custom format code contains date or time
// tokens outside quoted literals and bracketed sections.
func isDateFormatCode(code string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false
	for _, r := range code {
		switch {
		case r == '"':
			inQuote = !inQuote
		case inQuote:
		case r == '[':
			inBracket = true
		case r == ']':
			inBracket = false
		case inBracket:
		default:
			b.WriteRune(r)
		}
	}
	return strings.ContainsAny(strings.ToLower(b.String()), "ymdhs")
}

// parseSerial parses a raw numeric cell value.
func parseSerial(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
