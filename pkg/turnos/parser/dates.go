package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/turnos-go/pkg/turnos/models"
)

// TimeColumn is the grid column holding slot times; dates start after it.
const TimeColumn = 0

// Patterns are tried in order; the group with four digits is the year.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{4})`),
	regexp.MustCompile(`(\d{4})[/-](\d{1,2})[/-](\d{1,2})`),
}

// DateParams controls header date detection.
type DateParams struct {
	// Year is the target year; its decimal form is the marker a header must contain.
	Year int
	// Strict drops columns whose header has the marker but no date pattern.
	Strict bool
}

// Marker returns the literal year marker searched for in header text.
func (p DateParams) Marker() string {
	return strconv.Itoa(p.Year)
}

// ExtractDate finds a calendar date in header text. It returns the date as
// "YYYY-MM-DD" with normalized=true when a D/M/YYYY or YYYY/M/D pattern is
// present. When only the year marker is present the trimmed text itself is
// returned with normalized=false. ok is false when the marker is absent.
func ExtractDate(text, marker string) (date string, normalized, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" || marker == "" || !strings.Contains(text, marker) {
		return "", false, false
	}

	for _, re := range datePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m[1]) == 4 {
			return formatDate(m[1], m[2], m[3]), true, true
		}
		return formatDate(m[3], m[2], m[1]), true, true
	}

	return text, false, true
}

func formatDate(year, month, day string) string {
	return fmt.Sprintf("%s-%s-%s", year, zeroPad(month), zeroPad(day))
}

func zeroPad(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

// LocateDates maps the columns of a header row to dates. Column 0 is the time
// column and is never considered. Both results are ordered by column index;
// rejected holds the best-effort columns dropped by strict mode.
func LocateDates(header []string, params DateParams) (dates, rejected models.ColumnDates) {
	marker := params.Marker()
	for col := TimeColumn + 1; col < len(header); col++ {
		if IsBlank(header[col]) {
			continue
		}
		date, normalized, ok := ExtractDate(header[col], marker)
		if !ok {
			continue
		}
		cd := models.ColumnDate{
			Column:     col,
			Date:       date,
			Normalized: normalized,
		}
		if !normalized && params.Strict {
			rejected = append(rejected, cd)
			continue
		}
		dates = append(dates, cd)
	}
	return dates, rejected
}

// IsBlank reports whether a cell holds no value.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
