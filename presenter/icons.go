package presenter

// Icon is a Font Awesome class list, e.g. "fas fa-sun"
type Icon string

// DefaultIcon is used when neither the icon code nor the condition is known
const DefaultIcon Icon = "fas fa-cloud"

// conditionIcons maps the coarse condition reported by the provider
var conditionIcons = map[string]Icon{
	"Clear":        "fas fa-sun",
	"Clouds":       "fas fa-cloud",
	"Rain":         "fas fa-cloud-rain",
	"Drizzle":      "fas fa-cloud-drizzle",
	"Thunderstorm": "fas fa-bolt",
	"Snow":         "fas fa-snowflake",
	"Mist":         "fas fa-smog",
	"Fog":          "fas fa-smog",
	"Haze":         "fas fa-smog",
	"Dust":         "fas fa-smog",
	"Sand":         "fas fa-smog",
	"Ash":          "fas fa-smog",
	"Squall":       "fas fa-wind",
	"Tornado":      "fas fa-tornado",
}

// codeIcons maps provider icon codes; "d"/"n" suffixes are day and night variants
var codeIcons = map[string]Icon{
	"01d": "fas fa-sun", // clear sky
	"01n": "fas fa-moon",
	"02d": "fas fa-cloud-sun", // few clouds
	"02n": "fas fa-cloud-moon",
	"03d": "fas fa-cloud", // scattered clouds
	"03n": "fas fa-cloud",
	"04d": "fas fa-cloud", // broken clouds
	"04n": "fas fa-cloud",
	"09d": "fas fa-cloud-rain", // shower rain
	"09n": "fas fa-cloud-rain",
	"10d": "fas fa-cloud-rain", // rain
	"10n": "fas fa-cloud-rain",
	"11d": "fas fa-bolt", // thunderstorm
	"11n": "fas fa-bolt",
	"13d": "fas fa-snowflake", // snow
	"13n": "fas fa-snowflake",
	"50d": "fas fa-smog", // mist
	"50n": "fas fa-smog",
}

// IconFor resolves the icon for a condition. A known iconCode wins over the
// condition; pass "" when no code is available.
func IconFor(conditionMain, iconCode string) Icon {
	if iconCode != "" {
		if icon, ok := codeIcons[iconCode]; ok {
			return icon
		}
	}
	if icon, ok := conditionIcons[conditionMain]; ok {
		return icon
	}
	return DefaultIcon
}
