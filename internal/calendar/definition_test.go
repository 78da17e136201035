package calendar

import (
	"strings"
	"testing"
)

func TestNew_AppliesGregorianDefaults(t *testing.T) {
	def := New("cal-1", "Test Calendar", "uni-1")

	if def.DaysPerWeek != 7 {
		t.Errorf("expected 7 days per week, got %d", def.DaysPerWeek)
	}
	if def.MonthsPerYear != 12 {
		t.Errorf("expected 12 months per year, got %d", def.MonthsPerYear)
	}
	if def.DaysPerYear != 365 {
		t.Errorf("expected 365 days per year, got %d", def.DaysPerYear)
	}
	if len(def.Months) != 12 {
		t.Fatalf("expected 12 default months, got %d", len(def.Months))
	}
	if def.Months[0].Name != "January" || def.Months[0].Days != 31 {
		t.Errorf("expected January/31 first, got %s/%d", def.Months[0].Name, def.Months[0].Days)
	}
	if def.Months[1].Days != 28 {
		t.Errorf("expected 28-day February (no leap modeling), got %d", def.Months[1].Days)
	}
	if len(def.Weekdays) != 7 {
		t.Fatalf("expected 7 default weekdays, got %d", len(def.Weekdays))
	}
	if def.Weekdays[0] != "Monday" {
		t.Errorf("expected Monday first, got %q", def.Weekdays[0])
	}
	if def.EpochAbbreviation != "CE" || def.BeforeEpochAbbreviation != "BCE" {
		t.Errorf("expected CE/BCE era markers, got %q/%q",
			def.EpochAbbreviation, def.BeforeEpochAbbreviation)
	}
}

func TestNew_KeepsProvidedStructure(t *testing.T) {
	def := Definition{
		ID:         "cal-1",
		UniverseID: "uni-1",
		Months:     []MonthDef{{"Frostfall", 40}, {"Embertide", 45}},
		Weekdays:   []string{"Oneday", "Twoday"},
	}
	def.applyDefaults()

	if len(def.Months) != 2 {
		t.Fatalf("expected provided months to survive defaults, got %d", len(def.Months))
	}
	if def.Months[0].Name != "Frostfall" {
		t.Errorf("expected Frostfall, got %q", def.Months[0].Name)
	}
	if len(def.Weekdays) != 2 {
		t.Errorf("expected provided weekdays to survive defaults, got %d", len(def.Weekdays))
	}
}

func TestMonthName_NeverFails(t *testing.T) {
	def := New("cal-1", "Test", "uni-1")

	tests := []struct {
		name   string
		number int
		want   string
	}{
		{"first month", 1, "January"},
		{"last month", 12, "December"},
		{"zero", 0, "Month 0"},
		{"negative", -3, "Month -3"},
		{"beyond range", 13, "Month 13"},
		{"far beyond range", 9000, "Month 9000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := def.MonthName(tt.number); got != tt.want {
				t.Errorf("MonthName(%d) = %q, want %q", tt.number, got, tt.want)
			}
		})
	}
}

func TestDaysInMonth_NeverFails(t *testing.T) {
	def := New("cal-1", "Test", "uni-1")

	tests := []struct {
		name   string
		number int
		want   int
	}{
		{"january", 1, 31},
		{"february", 2, 28},
		{"december", 12, 31},
		{"zero falls back to 30", 0, 30},
		{"negative falls back to 30", -1, 30},
		{"out of range falls back to 30", 99, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := def.DaysInMonth(tt.number, 0); got != tt.want {
				t.Errorf("DaysInMonth(%d) = %d, want %d", tt.number, got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	def := New("cal-1", "Test", "uni-1")

	tests := []struct {
		name              string
		year, month, day  int
		want              string
	}{
		{"full date", 1420, 6, 15, "15 June 1420 CE"},
		{"month and year only", 1420, 6, 0, "June 1420 CE"},
		{"year only", 1420, 0, 0, "1420 CE"},
		{"day without month is dropped", 1420, 0, 15, "1420 CE"},
		{"out-of-range month synthesized", 1420, 14, 1, "1 Month 14 1420 CE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := def.FormatDate(tt.year, tt.month, tt.day); got != tt.want {
				t.Errorf("FormatDate(%d, %d, %d) = %q, want %q",
					tt.year, tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestFormatDate_NegativeYears(t *testing.T) {
	def := New("cal-1", "Test", "uni-1")
	def.AllowNegativeYears = true

	got := def.FormatDate(-500, 1, 1)
	if !strings.Contains(got, "500") || !strings.Contains(got, "BCE") {
		t.Errorf("expected absolute year with BCE marker, got %q", got)
	}
	if strings.Contains(got, "-500") {
		t.Errorf("negative sign should not render with the before-epoch marker, got %q", got)
	}
}

func TestFormatDate_NegativeYearsDisallowed(t *testing.T) {
	def := New("cal-1", "Test", "uni-1")
	def.AllowNegativeYears = false

	got := def.FormatDate(-500, 0, 0)
	if got != "-500 CE" {
		t.Errorf("expected raw negative year with epoch marker, got %q", got)
	}
}

func TestMapRoundTrip(t *testing.T) {
	year, month, day := 1420, 3, 25
	def := NewFromPreset(PresetTolkien, "uni-1", "cal-1")
	def.CurrentYear = &year
	def.CurrentMonth = &month
	def.CurrentDay = &day

	got := FromMap(def.ToMap())

	if got.ID != def.ID || got.Name != def.Name || got.UniverseID != def.UniverseID {
		t.Errorf("identity fields lost in round trip: %+v", got)
	}
	if got.DaysPerWeek != def.DaysPerWeek || got.MonthsPerYear != def.MonthsPerYear ||
		got.DaysPerYear != def.DaysPerYear {
		t.Errorf("structural counts lost in round trip: %+v", got)
	}
	if len(got.Months) != len(def.Months) {
		t.Fatalf("expected %d months, got %d", len(def.Months), len(got.Months))
	}
	for i := range def.Months {
		if got.Months[i] != def.Months[i] {
			t.Errorf("month %d: got %+v, want %+v (order must be preserved)",
				i, got.Months[i], def.Months[i])
		}
	}
	for i := range def.Weekdays {
		if got.Weekdays[i] != def.Weekdays[i] {
			t.Errorf("weekday %d: got %q, want %q", i, got.Weekdays[i], def.Weekdays[i])
		}
	}
	if got.EpochName != def.EpochName || got.EpochAbbreviation != def.EpochAbbreviation ||
		got.BeforeEpochAbbreviation != def.BeforeEpochAbbreviation {
		t.Errorf("era metadata lost in round trip: %+v", got)
	}
	if got.AllowNegativeYears != def.AllowNegativeYears {
		t.Error("allow_negative_years lost in round trip")
	}
	if got.CurrentYear == nil || *got.CurrentYear != year {
		t.Errorf("current_date_year lost in round trip: %v", got.CurrentYear)
	}
	if got.CurrentMonth == nil || *got.CurrentMonth != month {
		t.Errorf("current_date_month lost in round trip: %v", got.CurrentMonth)
	}
	if got.CurrentDay == nil || *got.CurrentDay != day {
		t.Errorf("current_date_day lost in round trip: %v", got.CurrentDay)
	}
}

func TestMapRoundTrip_NilCurrentDate(t *testing.T) {
	def := New("cal-1", "Test", "uni-1")

	got := FromMap(def.ToMap())

	if got.CurrentYear != nil || got.CurrentMonth != nil || got.CurrentDay != nil {
		t.Errorf("expected nil current date to stay nil, got %v/%v/%v",
			got.CurrentYear, got.CurrentMonth, got.CurrentDay)
	}
}

func TestFromMap_JSONDecodedNumbers(t *testing.T) {
	// encoding/json decodes numbers into float64 and month definitions into
	// []any of map[string]any; FromMap must accept that shape.
	data := map[string]any{
		"id":              "cal-1",
		"name":            "Test",
		"universe_id":     "uni-1",
		"days_per_week":   float64(7),
		"months_per_year": float64(2),
		"days_per_year":   float64(80),
		"month_definitions": []any{
			map[string]any{"name": "Frostfall", "days": float64(40)},
			map[string]any{"name": "Embertide", "days": float64(40)},
		},
		"weekday_names":             []any{"Oneday", "Twoday"},
		"epoch_name":                "After Ruin",
		"epoch_abbreviation":        "AR",
		"before_epoch_abbreviation": "BR",
		"allow_negative_years":      true,
		"current_date_year":         float64(12),
		"current_date_month":        nil,
		"current_date_day":          nil,
	}

	def := FromMap(data)

	if def.DaysPerYear != 80 {
		t.Errorf("expected days_per_year 80, got %d", def.DaysPerYear)
	}
	if len(def.Months) != 2 || def.Months[0] != (MonthDef{"Frostfall", 40}) {
		t.Errorf("month definitions not decoded: %+v", def.Months)
	}
	if len(def.Weekdays) != 2 || def.Weekdays[1] != "Twoday" {
		t.Errorf("weekday names not decoded: %+v", def.Weekdays)
	}
	if def.CurrentYear == nil || *def.CurrentYear != 12 {
		t.Errorf("current_date_year not decoded: %v", def.CurrentYear)
	}
	if def.CurrentMonth != nil {
		t.Errorf("expected nil current_date_month, got %v", def.CurrentMonth)
	}
}
