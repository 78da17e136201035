package calendar

import "time"

// referenceDate is the anchor shared by both conversion directions:
// year 1, month 1, day 1 of the standard proleptic calendar.
var referenceDate = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

// maxStandardYear bounds CustomToStandard results. Dates that would land
// outside [year 1, year 9999] clamp to the reference date instead.
const maxStandardYear = 9999

const secondsPerDay = 86400

// daysSinceReference returns the signed whole-day offset of a standard date
// from referenceDate, counted on civil day numbers. A time.Duration
// subtraction would saturate around 292 years, far short of the multi-
// millennia spans calendars routinely cover.
func daysSinceReference(t time.Time) int {
	return int(floorDiv(t.Unix(), secondsPerDay) - floorDiv(referenceDate.Unix(), secondsPerDay))
}

// floorDiv divides rounding toward negative infinity. Go's / truncates
// toward zero, which is wrong for offsets before the reference date.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod is the remainder paired with floorDiv. Always in [0, b) for b > 0.
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// StandardToCustom converts a standard date to a (year, month, day) position
// within a custom calendar. The year comes from floor-dividing the day offset
// by def.DaysPerYear; the month and day come from walking the actual month
// lengths with the remainder. Floor semantics keep the remainder non-negative
// for dates before the reference, which land in year 0 and below. If the
// remainder does not land inside any defined month, the position falls back
// to day 1 of the last month.
//
// Note this direction walks real month lengths while CustomToStandard
// assumes uniform def.DaysPerYear-length years, so the two are not exact
// inverses when a calendar's month lengths do not sum to DaysPerYear. The
// built-in presets agree on both numbers, which masks the drift; the
// behavior is kept as-is because exactness is not relied on anywhere and
// changing it would alter observable results for user-authored calendars.
func StandardToCustom(standard time.Time, def Definition) (year, month, day int) {
	daysSinceRef := int64(daysSinceReference(standard))
	perYear := int64(def.DaysPerYear)

	year = int(floorDiv(daysSinceRef, perYear)) + 1
	remaining := int(floorMod(daysSinceRef, perYear))

	for i, m := range def.Months {
		if remaining < m.Days {
			return year, i + 1, remaining + 1
		}
		remaining -= m.Days
	}

	// Remainder exhausted every defined month.
	return year, len(def.Months), 1
}

// CustomToStandard converts a custom calendar date to a standard date by
// adding its days-from-epoch total to the reference date. Results outside
// the standard date range clamp to the reference date rather than failing.
func CustomToStandard(year, month, day int, def Definition) time.Time {
	totalDays := daysFromEpoch(year, month, day, def)

	standard := referenceDate.AddDate(0, 0, totalDays)
	if standard.Year() < 1 || standard.Year() > maxStandardYear {
		return referenceDate
	}
	return standard
}
