package output

import (
	"fmt"
	"hash/fnv"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/ukaji3/turnos-go/pkg/turnos/models"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	// Floating local time, no zone designator.
	icalLocalLayout = "20060102T150405"
	productID       = "-//turnos-go//appointments//ES"
)

// CalendarOptions configures iCalendar output.
type CalendarOptions struct {
	// Duration is the length given to every event.
	Duration time.Duration
}

// ToICS renders appointments as an iCalendar document with one event per
// appointment. Times are floating (no time zone). Appointments whose
// timestamp is not "YYYY-MM-DD HH:MM:SS" cannot be placed on a calendar and
// are skipped; their count is returned.
func ToICS(appts []models.Appointment, opts CalendarOptions) (data []byte, skipped int, err error) {
	if opts.Duration <= 0 {
		return nil, 0, fmt.Errorf("invalid event duration %s", opts.Duration)
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for i, a := range appts {
		start, perr := time.Parse(timestampLayout, a.Timestamp)
		if perr != nil {
			skipped++
			continue
		}

		ev := cal.AddEvent(eventUID(i, a))
		// DTSTAMP is pinned to the start so repeated runs are identical.
		ev.SetDtStampTime(start)
		ev.SetProperty(ical.ComponentPropertyDtStart, start.Format(icalLocalLayout))
		ev.SetProperty(ical.ComponentPropertyDtEnd, start.Add(opts.Duration).Format(icalLocalLayout))
		ev.SetSummary(a.Name)
		ev.SetDescription(a.OriginalName)
		if a.Kind != models.KindNone {
			ev.SetProperty(ical.ComponentPropertyCategories, string(a.Kind))
		}
	}

	return []byte(cal.Serialize()), skipped, nil
}

func eventUID(i int, a models.Appointment) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%s|%s", i, a.Timestamp, a.OriginalName)
	return fmt.Sprintf("%016x@turnos-go", h.Sum64())
}
