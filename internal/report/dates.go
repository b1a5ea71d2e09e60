// Package report assembles the three email sections (planning, stock,
// shopping list) in plain text and HTML, and wraps them in the Planif-Tchop
// envelope. Section formatters are deterministic; only the envelope footer
// reads the clock.
package report

import (
	"fmt"
	"time"
)

// ISODate is the storage format of meal plan dates.
const ISODate = "2006-01-02"

var frenchDays = [...]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}

var frenchMonths = [...]string{"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre"}

// FormatLongDate renders an ISO date as "lundi 31 août 2026". Dates that fail
// to parse are returned verbatim — a garbled line beats a dropped one.
func FormatLongDate(isoDate string) string {
	d, err := time.Parse(ISODate, isoDate)
	if err != nil {
		return isoDate
	}
	return fmt.Sprintf("%s %02d %s %d", frenchDays[d.Weekday()], d.Day(), frenchMonths[d.Month()-1], d.Year())
}

// WeekRange returns the Monday and Sunday of the week containing now, as ISO
// dates. Weeks start on Monday, the French convention the calendar uses.
func WeekRange(now time.Time) (start, end string) {
	offset := (int(now.Weekday()) + 6) % 7 // Monday=0 … Sunday=6
	monday := now.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	return monday.Format(ISODate), sunday.Format(ISODate)
}
