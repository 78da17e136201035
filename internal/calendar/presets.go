package calendar

// Preset is a built-in calendar template. Presets carry every structural
// field of a Definition except the identity fields, which are supplied when
// a calendar is instantiated from the preset.
type Preset struct {
	Name                    string
	DaysPerWeek             int
	MonthsPerYear           int
	DaysPerYear             int
	Months                  []MonthDef
	Weekdays                []string
	EpochName               string
	EpochAbbreviation       string
	BeforeEpochAbbreviation string
	AllowNegativeYears      bool
}

// Preset keys.
const (
	PresetGregorian = "gregorian"
	PresetTolkien   = "tolkien"
	PresetFantasy13 = "fantasy_13"
)

// presets is the process-lifetime preset registry. Read-only after init.
var presets = map[string]Preset{
	PresetGregorian: {
		Name:                    "Gregorian Calendar",
		DaysPerWeek:             7,
		MonthsPerYear:           12,
		DaysPerYear:             365,
		Months:                  defaultMonths(),
		Weekdays:                defaultWeekdays(),
		EpochName:               "Common Era",
		EpochAbbreviation:       "CE",
		BeforeEpochAbbreviation: "BCE",
		AllowNegativeYears:      true,
	},
	PresetTolkien: {
		Name:          "Shire Calendar",
		DaysPerWeek:   7,
		MonthsPerYear: 12,
		DaysPerYear:   365,
		Months: []MonthDef{
			{"Afteryule", 30}, {"Solmath", 30}, {"Rethe", 30}, {"Astron", 30},
			{"Thrimidge", 30}, {"Forelithe", 30}, {"Afterlithe", 30}, {"Wedmath", 30},
			{"Halimath", 30}, {"Winterfilth", 30}, {"Blotmath", 30}, {"Foreyule", 30},
		},
		Weekdays: []string{"Sterday", "Sunday", "Monday", "Trewsday",
			"Hevensday", "Mersday", "Highday"},
		EpochName:               "Shire Reckoning",
		EpochAbbreviation:       "SR",
		BeforeEpochAbbreviation: "BSR",
		AllowNegativeYears:      true,
	},
	PresetFantasy13: {
		Name:          "13-Month Calendar",
		DaysPerWeek:   7,
		MonthsPerYear: 13,
		DaysPerYear:   364,
		Months: []MonthDef{
			{"Primus", 28}, {"Secundus", 28}, {"Tertius", 28}, {"Quartus", 28},
			{"Quintus", 28}, {"Sextus", 28}, {"Septimus", 28}, {"Octavus", 28},
			{"Nonus", 28}, {"Decimus", 28}, {"Undecimus", 28}, {"Duodecimus", 28},
			{"Ultimus", 28},
		},
		Weekdays: []string{"Firstday", "Seconday", "Thirday", "Fourthday",
			"Fifthday", "Sixthday", "Restday"},
		EpochName:               "Age of Heroes",
		EpochAbbreviation:       "AH",
		BeforeEpochAbbreviation: "BAH",
		AllowNegativeYears:      true,
	},
}

// PresetNames returns the available preset keys.
func PresetNames() []string {
	return []string{PresetGregorian, PresetTolkien, PresetFantasy13}
}

// NewFromPreset builds a Definition from a named preset, stamped with the
// given identity. An unknown preset name silently substitutes the Gregorian
// preset; callers cannot distinguish the fallback from an explicit request.
func NewFromPreset(presetName, universeID, calendarID string) Definition {
	p, ok := presets[presetName]
	if !ok {
		p = presets[PresetGregorian]
	}

	months := make([]MonthDef, len(p.Months))
	copy(months, p.Months)
	weekdays := make([]string, len(p.Weekdays))
	copy(weekdays, p.Weekdays)

	return Definition{
		ID:                      calendarID,
		Name:                    p.Name,
		UniverseID:              universeID,
		DaysPerWeek:             p.DaysPerWeek,
		MonthsPerYear:           p.MonthsPerYear,
		DaysPerYear:             p.DaysPerYear,
		Months:                  months,
		Weekdays:                weekdays,
		EpochName:               p.EpochName,
		EpochAbbreviation:       p.EpochAbbreviation,
		BeforeEpochAbbreviation: p.BeforeEpochAbbreviation,
		AllowNegativeYears:      p.AllowNegativeYears,
	}
}
