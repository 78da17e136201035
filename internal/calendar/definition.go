// Package calendar implements custom calendar systems for fictional
// universes: configurable month/week structure, era markers, conversion
// against the standard proleptic calendar, and age/duration arithmetic.
// Everything in this package is pure computation over value objects:
// no I/O, no shared state. Persistence lives in the calendars plugin.
//
// Lookups never fail. Out-of-range month numbers degrade to documented
// fallback values (synthesized name, 30-day default) so partially
// configured calendars stay usable in exploratory workflows.
package calendar

import "fmt"

// MonthDef is one named month and its day count. Slice order is calendar order.
type MonthDef struct {
	Name string `json:"name"`
	Days int    `json:"days"`
}

// Definition describes the structure of one fictional calendar.
// ID and UniverseID are opaque foreign identifiers; this package does not
// validate them. DaysPerYear is an informational total and is not required
// to equal the sum of month lengths (see the converter notes).
type Definition struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	UniverseID string `json:"universe_id"`

	DaysPerWeek   int `json:"days_per_week"`
	MonthsPerYear int `json:"months_per_year"`
	DaysPerYear   int `json:"days_per_year"`

	Months   []MonthDef `json:"month_definitions"`
	Weekdays []string   `json:"weekday_names"`

	EpochName               string `json:"epoch_name"`
	EpochAbbreviation       string `json:"epoch_abbreviation"`
	BeforeEpochAbbreviation string `json:"before_epoch_abbreviation"`
	AllowNegativeYears      bool   `json:"allow_negative_years"`

	// Optional "now" bookmark for timeline display. Caller-supplied; no
	// relationship to the structural fields is enforced.
	CurrentYear  *int `json:"current_date_year"`
	CurrentMonth *int `json:"current_date_month"`
	CurrentDay   *int `json:"current_date_day"`
}

// defaultMonths returns the Gregorian month set. No leap-year adjustment
// is modeled, so the second month is always 28 days.
func defaultMonths() []MonthDef {
	return []MonthDef{
		{"January", 31}, {"February", 28}, {"March", 31}, {"April", 30},
		{"May", 31}, {"June", 30}, {"July", 31}, {"August", 31},
		{"September", 30}, {"October", 31}, {"November", 30}, {"December", 31},
	}
}

// defaultWeekdays returns the Gregorian weekday names.
func defaultWeekdays() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday",
		"Friday", "Saturday", "Sunday"}
}

// New creates a Definition with Gregorian defaults for every structural field.
func New(id, name, universeID string) Definition {
	def := Definition{
		ID:         id,
		Name:       name,
		UniverseID: universeID,
	}
	def.applyDefaults()
	return def
}

// applyDefaults fills zero-valued structural fields with Gregorian defaults.
func (d *Definition) applyDefaults() {
	if d.DaysPerWeek == 0 {
		d.DaysPerWeek = 7
	}
	if d.MonthsPerYear == 0 {
		d.MonthsPerYear = 12
	}
	if d.DaysPerYear == 0 {
		d.DaysPerYear = 365
	}
	if len(d.Months) == 0 {
		d.Months = defaultMonths()
	}
	if len(d.Weekdays) == 0 {
		d.Weekdays = defaultWeekdays()
	}
	if d.EpochName == "" {
		d.EpochName = "Common Era"
	}
	if d.EpochAbbreviation == "" {
		d.EpochAbbreviation = "CE"
	}
	if d.BeforeEpochAbbreviation == "" {
		d.BeforeEpochAbbreviation = "BCE"
	}
}

// MonthName returns the name of a month by 1-based number. Out-of-range
// numbers (including zero and negatives) get a synthesized "Month N" name
// rather than an error.
func (d Definition) MonthName(monthNumber int) string {
	if monthNumber >= 1 && monthNumber <= len(d.Months) {
		return d.Months[monthNumber-1].Name
	}
	return fmt.Sprintf("Month %d", monthNumber)
}

// DaysInMonth returns the day count of a month by 1-based number, or 30 for
// out-of-range numbers. The year parameter is accepted for a future
// leap-year extension and is currently unused.
func (d Definition) DaysInMonth(monthNumber, year int) int {
	_ = year
	if monthNumber >= 1 && monthNumber <= len(d.Months) {
		return d.Months[monthNumber-1].Days
	}
	return 30
}

// FormatDate renders a date as "{day} {MonthName} {year} {era}". Pass 0 for
// month or day to omit that segment. A negative year renders as its absolute
// value with the before-epoch marker when AllowNegativeYears is set;
// otherwise the year is rendered as-is with the epoch marker. Formatting
// only; day-of-month bounds are not validated.
func (d Definition) FormatDate(year, month, day int) string {
	var s string
	if day != 0 && month != 0 {
		s = fmt.Sprintf("%d %s ", day, d.MonthName(month))
	} else if month != 0 {
		s = d.MonthName(month) + " "
	}

	if year < 0 && d.AllowNegativeYears {
		return s + fmt.Sprintf("%d %s", -year, d.BeforeEpochAbbreviation)
	}
	return s + fmt.Sprintf("%d %s", year, d.EpochAbbreviation)
}

// ToMap converts the definition to a flat key-value form for persistence.
// Month definitions and weekday names keep their order. The inverse is
// FromMap; the round trip reproduces every field.
func (d Definition) ToMap() map[string]any {
	months := make([]MonthDef, len(d.Months))
	copy(months, d.Months)
	weekdays := make([]string, len(d.Weekdays))
	copy(weekdays, d.Weekdays)

	return map[string]any{
		"id":                        d.ID,
		"name":                      d.Name,
		"universe_id":               d.UniverseID,
		"days_per_week":             d.DaysPerWeek,
		"months_per_year":           d.MonthsPerYear,
		"days_per_year":             d.DaysPerYear,
		"month_definitions":         months,
		"weekday_names":             weekdays,
		"epoch_name":                d.EpochName,
		"epoch_abbreviation":        d.EpochAbbreviation,
		"before_epoch_abbreviation": d.BeforeEpochAbbreviation,
		"allow_negative_years":      d.AllowNegativeYears,
		"current_date_year":         d.CurrentYear,
		"current_date_month":        d.CurrentMonth,
		"current_date_day":          d.CurrentDay,
	}
}

// FromMap reconstructs a Definition from the ToMap form. Numeric values are
// accepted as int or float64 so maps that passed through encoding/json decode
// cleanly. Missing structural fields fall back to the Gregorian defaults.
func FromMap(data map[string]any) Definition {
	def := Definition{
		ID:                      asString(data["id"]),
		Name:                    asString(data["name"]),
		UniverseID:              asString(data["universe_id"]),
		DaysPerWeek:             asInt(data["days_per_week"]),
		MonthsPerYear:           asInt(data["months_per_year"]),
		DaysPerYear:             asInt(data["days_per_year"]),
		Months:                  asMonths(data["month_definitions"]),
		Weekdays:                asStrings(data["weekday_names"]),
		EpochName:               asString(data["epoch_name"]),
		EpochAbbreviation:       asString(data["epoch_abbreviation"]),
		BeforeEpochAbbreviation: asString(data["before_epoch_abbreviation"]),
		AllowNegativeYears:      asBool(data["allow_negative_years"]),
		CurrentYear:             asIntPtr(data["current_date_year"]),
		CurrentMonth:            asIntPtr(data["current_date_month"]),
		CurrentDay:              asIntPtr(data["current_date_day"]),
	}
	def.applyDefaults()
	return def
}

// --- loose-typed map accessors ---

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func asIntPtr(v any) *int {
	switch n := v.(type) {
	case nil:
		return nil
	case *int:
		if n == nil {
			return nil
		}
		val := *n
		return &val
	}
	val := asInt(v)
	return &val
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asStrings(v any) []string {
	switch s := v.(type) {
	case []string:
		out := make([]string, len(s))
		copy(out, s)
		return out
	case []any:
		out := make([]string, 0, len(s))
		for _, e := range s {
			out = append(out, asString(e))
		}
		return out
	}
	return nil
}

func asMonths(v any) []MonthDef {
	switch m := v.(type) {
	case []MonthDef:
		out := make([]MonthDef, len(m))
		copy(out, m)
		return out
	case []any:
		out := make([]MonthDef, 0, len(m))
		for _, e := range m {
			if entry, ok := e.(map[string]any); ok {
				out = append(out, MonthDef{
					Name: asString(entry["name"]),
					Days: asInt(entry["days"]),
				})
			}
		}
		return out
	}
	return nil
}
