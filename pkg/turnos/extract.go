package turnos

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/turnos-go/pkg/turnos/models"
	"github.com/ukaji3/turnos-go/pkg/turnos/parser"
)

// Workbook yields the cell grid of a named sheet. A sheet that does not
// exist is reported with an error wrapping parser.ErrSheetNotFound.
type Workbook interface {
	SheetRows(name string) ([][]string, error)
}

// FillReader is implemented by workbooks that can report cell fill colours.
type FillReader interface {
	FillColor(sheet string, row, col int) (string, error)
}

// Extract opens the workbook at path and scans it. A missing or unreadable
// file is the only fatal condition; sheet and cell problems are logged and
// recorded in the result.
func Extract(path string, opts Options) (*models.Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	book, err := parser.OpenBook(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer book.Close()

	res, err := Scan(book, opts)
	if err != nil {
		return nil, err
	}
	res.BookName = filepath.Base(path)
	return res, nil
}

// Scan visits the configured sheets of wb in order and collects every
// appointment found. Appointments are ordered by sheet, then row, then column.
func Scan(wb Workbook, opts Options) (*models.Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := opts.logger()

	var fills FillReader
	if opts.DetectKinds {
		if fr, ok := wb.(FillReader); ok {
			fills = fr
		} else {
			log.Warn("workbook cannot report cell fills, kinds will be empty")
		}
	}

	res := &models.Result{Appointments: []models.Appointment{}}
	for _, name := range opts.SheetNames() {
		s := &sheetScan{
			wb:    wb,
			fills: fills,
			name:  name,
			opts:  opts,
			log:   log.WithField("sheet", name),
		}
		s.run()
		res.Sheets = append(res.Sheets, s.report)
		res.Appointments = append(res.Appointments, s.out...)
	}

	log.WithFields(logrus.Fields{
		"appointments": len(res.Appointments),
		"processed":    res.Count(models.SheetProcessed),
		"missing":      res.Count(models.SheetMissing),
	}).Info("scan complete")
	return res, nil
}

// sheetScan holds the state of scanning one sheet. The time track lives here
// and is discarded with it.
type sheetScan struct {
	wb    Workbook
	fills FillReader
	name  string
	opts  Options
	log   logrus.FieldLogger

	report models.SheetReport
	out    []models.Appointment
}

func (s *sheetScan) run() {
	s.report = models.SheetReport{Name: s.name}

	rows, err := s.wb.SheetRows(s.name)
	if err != nil {
		if errors.Is(err, parser.ErrSheetNotFound) {
			s.report.Status = models.SheetMissing
			s.log.Debug("sheet not found, skipping")
			return
		}
		s.report.Status = models.SheetUnreadable
		s.log.WithError(NewExtractionError(s.name, "sheet", "", err)).Warn("cannot read sheet, skipping")
		return
	}

	if len(rows) == 0 {
		s.report.Status = models.SheetEmpty
		s.log.Info("sheet is empty, skipping")
		return
	}

	dates, rejected := parser.LocateDates(rows[0], s.opts.dateParams())
	for _, cd := range rejected {
		s.log.WithFields(logrus.Fields{
			"cell":   cellName(0, cd.Column),
			"header": cd.Date,
		}).Warn("header has the year but no date, column dropped")
	}
	for _, cd := range dates {
		if !cd.Normalized {
			s.log.WithFields(logrus.Fields{
				"cell":   cellName(0, cd.Column),
				"header": cd.Date,
			}).Warn("header has the year but no date, using header text")
		}
	}
	if len(dates) == 0 {
		s.report.Status = models.SheetUndated
		s.log.Info("no dated columns, skipping")
		return
	}

	s.report.Status = models.SheetProcessed
	s.report.DatedColumns = len(dates)
	s.scanRows(rows, dates)
	s.report.Appointments = len(s.out)

	s.log.WithFields(logrus.Fields{
		"dated_columns": s.report.DatedColumns,
		"rows":          s.report.Rows,
		"appointments":  s.report.Appointments,
	}).Info("sheet processed")
}

func (s *sheetScan) scanRows(rows [][]string, dates models.ColumnDates) {
	track := parser.NewTimeTrack(s.opts.SlotInterval)

	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		s.report.Rows++

		timeCell := cellAt(row, parser.TimeColumn)
		slot := track.Resolve(timeCell)
		if slot.Malformed {
			s.log.WithFields(logrus.Fields{
				"cell":  cellName(rowIdx, parser.TimeColumn),
				"value": timeCell,
			}).Debug("time cell is not a time")
		}
		if !slot.OK() {
			s.report.UntimedRows++
			continue
		}
		if slot.Wrapped {
			s.log.WithFields(logrus.Fields{
				"cell": cellName(rowIdx, parser.TimeColumn),
				"time": slot.Clock.String(),
			}).Warn("synthesized time crossed midnight")
		}

		for _, cd := range dates {
			appt, ok, err := buildAppointment(cellAt(row, cd.Column), cd.Date, slot.Clock)
			if err != nil {
				s.report.CellErrors++
				ref := cellName(rowIdx, cd.Column)
				s.log.WithError(NewExtractionError(s.name, "cell", ref, err)).Warn("skipping cell")
				continue
			}
			if !ok {
				continue
			}
			if s.fills != nil {
				appt.Kind = s.kind(rowIdx, cd.Column)
			}
			s.out = append(s.out, appt)
		}
	}
}

func (s *sheetScan) kind(row, col int) models.Kind {
	hex, err := s.fills.FillColor(s.name, row, col)
	if err != nil {
		s.log.WithError(err).WithField("cell", cellName(row, col)).Debug("cannot read cell fill")
		return models.KindNone
	}
	return parser.ClassifyFill(hex)
}

// buildAppointment turns the text of a grid cell into an appointment. ok is
// false when the cell holds no plausible patient name.
func buildAppointment(raw, date string, clock parser.Clock) (appt models.Appointment, ok bool, err error) {
	text := strings.TrimSpace(raw)
	if isMissing(text) {
		return appt, false, nil
	}
	if !utf8.ValidString(text) {
		return appt, false, errInvalidText
	}

	name := parser.CleanName(text)
	if !parser.IsPlausibleName(name) {
		return appt, false, nil
	}

	return models.Appointment{
		Name:         name,
		Timestamp:    date + " " + clock.String(),
		OriginalName: text,
	}, true, nil
}

// isMissing reports whether trimmed cell text stands for an absent value.
func isMissing(text string) bool {
	return text == "" || strings.EqualFold(text, "nan") || strings.EqualFold(text, "none")
}

func cellAt(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}

// cellName returns the A1 reference of a 0-based cell.
func cellName(row, col int) string {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return fmt.Sprintf("R%dC%d", row+1, col+1)
	}
	return name
}
