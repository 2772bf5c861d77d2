package convert

// moonPhaseLabels maps export moon-phase codes to display labels.
// Unrecognized codes produce no frontmatter key.
var moonPhaseLabels = map[string]string{
	"new":             "New Moon",
	"waxing-crescent": "Waxing Crescent",
	"first-quarter":   "First Quarter",
	"waxing-gibbous":  "Waxing Gibbous",
	"full":            "Full Moon",
	"waning-gibbous":  "Waning Gibbous",
	"last-quarter":    "Last Quarter",
	"waning-crescent": "Waning Crescent",
}

// weatherConditionLabels maps export weather codes to display labels, used
// only when the record carries no conditions description of its own.
var weatherConditionLabels = map[string]string{
	"clear":         "Clear",
	"mostly-clear":  "Mostly Clear",
	"partly-cloudy": "Partly Cloudy",
	"mostly-cloudy": "Mostly Cloudy",
	"cloudy":        "Cloudy",
	"fog":           "Fog",
	"hazy":          "Hazy",
	"drizzle":       "Drizzle",
	"light-rain":    "Light Rain",
	"rain":          "Rain",
	"heavy-rain":    "Heavy Rain",
	"showers":       "Showers",
	"flurries":      "Flurries",
	"light-snow":    "Light Snow",
	"snow":          "Snow",
	"heavy-snow":    "Heavy Snow",
	"sleet":         "Sleet",
	"hail":          "Hail",
	"thunderstorm":  "Thunderstorm",
	"windy":         "Windy",
	"breezy":        "Breezy",
	"smoke":         "Smoke",
	"dust":          "Dust",
	"tornado":       "Tornado",
	"hurricane":     "Hurricane",
}
