package calendar

import (
	"fmt"
	"time"
)

// DaysBetween returns the absolute whole-day count between two standard
// dates, counted on civil day numbers so spans of thousands of years do not
// overflow. Symmetric in its arguments.
func DaysBetween(a, b time.Time) int {
	d := daysSinceReference(b) - daysSinceReference(a)
	if d < 0 {
		d = -d
	}
	return d
}

// YearsBetween returns the approximate year span between two standard dates
// using a fixed 365.25-day divisor. Not calendar-aware.
func YearsBetween(a, b time.Time) float64 {
	return float64(DaysBetween(a, b)) / 365.25
}

// Age returns the age in completed years as of now. See AgeAt.
func Age(birth time.Time) int {
	return AgeAt(birth, time.Now())
}

// AgeAt returns the age in completed years at the given date: the year
// difference, minus one if the (month, day) of current falls before the
// birthday. Never negative.
func AgeAt(birth, current time.Time) int {
	age := current.Year() - birth.Year()
	if beforeAnniversary(int(current.Month()), current.Day(), int(birth.Month()), birth.Day()) {
		age--
	}
	return max(0, age)
}

// CustomDaysBetween returns the absolute day difference between two dates
// expressed in a custom calendar. Assumes every year is exactly
// def.DaysPerYear days long, whether or not the month lengths sum to that.
func CustomDaysBetween(year1, month1, day1, year2, month2, day2 int, def Definition) int {
	d1 := daysFromEpoch(year1, month1, day1, def)
	d2 := daysFromEpoch(year2, month2, day2, def)
	if d2 < d1 {
		return d1 - d2
	}
	return d2 - d1
}

// daysFromEpoch converts a custom calendar date to an absolute day count:
// whole years at def.DaysPerYear each, plus the lengths of the months before
// the given month, plus the day. Shared by CustomDaysBetween and the
// custom-to-standard converter.
func daysFromEpoch(year, month, day int, def Definition) int {
	days := year * def.DaysPerYear
	for i := 0; i < month-1 && i < len(def.Months); i++ {
		days += def.Months[i].Days
	}
	return days + day
}

// CustomAge returns the age in completed years between two custom calendar
// dates, with the same pre-anniversary decrement rule as AgeAt. The month
// and day comparison is positional, so the calendar argument only documents
// which reckoning the inputs belong to. Never negative.
func CustomAge(birthYear, birthMonth, birthDay, currentYear, currentMonth, currentDay int, def Definition) int {
	_ = def
	age := currentYear - birthYear
	if beforeAnniversary(currentMonth, currentDay, birthMonth, birthDay) {
		age--
	}
	return max(0, age)
}

// beforeAnniversary reports whether (month, day) orders strictly before
// (refMonth, refDay).
func beforeAnniversary(month, day, refMonth, refDay int) bool {
	if month != refMonth {
		return month < refMonth
	}
	return day < refDay
}

// FormatDuration renders a day count as a rough human-readable duration:
// days under a week, whole weeks under 30 days, whole 30-day months under a
// year, then years with a month remainder when the leftover exceeds 30 days.
// A display convenience, not a calendrical decomposition.
func FormatDuration(days int) string {
	switch {
	case days < 7:
		return fmt.Sprintf("%d %s", days, plural("day", days))
	case days < 30:
		weeks := days / 7
		return fmt.Sprintf("%d %s", weeks, plural("week", weeks))
	case days < 365:
		months := days / 30
		return fmt.Sprintf("%d %s", months, plural("month", months))
	default:
		years := days / 365
		remaining := days % 365
		if remaining > 30 {
			months := remaining / 30
			return fmt.Sprintf("%d %s, %d %s",
				years, plural("year", years), months, plural("month", months))
		}
		return fmt.Sprintf("%d %s", years, plural("year", years))
	}
}

// plural appends "s" when n is anything other than 1.
func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
