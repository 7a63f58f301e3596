package mood

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// CycleLength is the modeled cycle length in days.
const CycleLength = 28

// CyclePhase is a stage of the modeled cycle.
type CyclePhase string

const (
	Menstrual  CyclePhase = "Menstrual"
	Follicular CyclePhase = "Follicular"
	Ovulation  CyclePhase = "Ovulation"
	Luteal     CyclePhase = "Luteal"
	Unknown    CyclePhase = "Unknown"
)

// ErrInvalidDay is returned when a day-of-month is not valid for last month.
var ErrInvalidDay = errors.New("invalid day of month")

// String returns the phase label.
func (p CyclePhase) String() string {
	return string(p)
}

// CycleDay returns the number of whole days between periodStart and now,
// reduced modulo CycleLength into [0, CycleLength).
//
// Days are counted on wall-clock time, so a DST transition between the two
// instants does not shift the result. The count is exact for any pair of
// dates time.Time can represent.
func CycleDay(periodStart, now time.Time) int {
	days := daysBetween(wallClock(periodStart), wallClock(now))
	return int(((days % CycleLength) + CycleLength) % CycleLength)
}

// daysBetween returns the whole days from a to b, floored.
// It works on Unix seconds rather than time.Duration, which saturates
// beyond about 292 years.
func daysBetween(a, b time.Time) int64 {
	const secondsPerDay = 24 * 60 * 60

	secs := b.Unix() - a.Unix()
	if b.Nanosecond() < a.Nanosecond() {
		secs--
	}

	days := secs / secondsPerDay
	if secs%secondsPerDay < 0 {
		days--
	}
	return days
}

// wallClock re-anchors t's calendar fields in UTC.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// PhaseForDay maps a cycle day to its phase.
//
// Bands are 1-based while CycleDay is 0-based, so day 0 matches no band and
// yields Unknown.
// TODO: confirm with product whether day 0 should belong to Luteal.
func PhaseForDay(day int) CyclePhase {
	switch {
	case day >= 1 && day <= 5:
		return Menstrual
	case day >= 6 && day <= 13:
		return Follicular
	case day >= 14 && day <= 16:
		return Ovulation
	case day >= 17 && day <= 28:
		return Luteal
	default:
		return Unknown
	}
}

// PhaseAt returns the cycle phase at now for a period that started at periodStart.
func PhaseAt(periodStart, now time.Time) CyclePhase {
	return PhaseForDay(CycleDay(periodStart, now))
}

// PhaseMood maps a cycle phase to a mood. Unknown or unmapped phases are Chill.
func PhaseMood(p CyclePhase) Mood {
	switch p {
	case Menstrual:
		return Relaxing
	case Follicular:
		return Happy
	case Ovulation:
		return Romantic
	case Luteal:
		return Melancholy
	default:
		return Chill
	}
}

// PeriodStart resolves a day-of-month in the month before now to local
// midnight of that date in now's location. January resolves to December of
// the previous year.
func PeriodStart(day string, now time.Time) (time.Time, error) {
	day = strings.TrimSpace(day)

	year, month := now.Year(), now.Month()-1
	if month < time.January {
		month = time.December
		year--
	}

	// Layout "2" accepts one or two digits and rejects days past month end.
	start, err := time.ParseInLocation("2006-1-2", fmt.Sprintf("%d-%d-%s", year, int(month), day), now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q for %s %d", ErrInvalidDay, day, month, year)
	}
	return start, nil
}
