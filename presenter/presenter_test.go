package presenter

import (
	"testing"
	"time"

	"weather-app/models"
)

func TestIconForCodeWinsOverCondition(t *testing.T) {
	cases := []struct {
		cond, code string
		want       Icon
	}{
		{"Clear", "01n", "fas fa-moon"},
		{"Clouds", "02d", "fas fa-cloud-sun"},
		{"Clouds", "02n", "fas fa-cloud-moon"},
		{"Rain", "10n", "fas fa-cloud-rain"},
		{"Mist", "50d", "fas fa-smog"},
		{"Thunderstorm", "11d", "fas fa-bolt"},
	}
	for _, tc := range cases {
		if got := IconFor(tc.cond, tc.code); got != tc.want {
			t.Errorf("IconFor(%q, %q) = %q, want %q", tc.cond, tc.code, got, tc.want)
		}
	}
}

func TestIconForFallsBackToCondition(t *testing.T) {
	cases := []struct {
		cond, code string
		want       Icon
	}{
		{"Clear", "", "fas fa-sun"},
		{"Drizzle", "", "fas fa-cloud-drizzle"},
		{"Snow", "99x", "fas fa-snowflake"},
		{"Squall", "", "fas fa-wind"},
		{"Tornado", "", "fas fa-tornado"},
		{"Haze", "", "fas fa-smog"},
		{"Volcano", "", DefaultIcon},
		{"", "", DefaultIcon},
	}
	for _, tc := range cases {
		if got := IconFor(tc.cond, tc.code); got != tc.want {
			t.Errorf("IconFor(%q, %q) = %q, want %q", tc.cond, tc.code, got, tc.want)
		}
	}
}

func TestIconTablesAreComplete(t *testing.T) {
	if len(codeIcons) != 18 {
		t.Errorf("expected 18 icon codes, got %d", len(codeIcons))
	}
	if len(conditionIcons) != 14 {
		t.Errorf("expected 14 conditions, got %d", len(conditionIcons))
	}
}

func TestFormatLongDate(t *testing.T) {
	d := time.Date(2024, time.March, 1, 15, 4, 0, 0, time.UTC)
	if got := FormatLongDate(d); got != "Friday, March 1, 2024" {
		t.Errorf("unexpected long date: %q", got)
	}
}

func TestFormatCardDate(t *testing.T) {
	got := FormatCardDate(models.Date{Year: 2024, Month: time.December, Day: 25})
	if got.ShortWeekday != "Wed" || got.MonthDay != "Dec 25" {
		t.Errorf("unexpected card date: %+v", got)
	}
	if got.String() != "Wed, Dec 25" {
		t.Errorf("unexpected label: %q", got.String())
	}
}

func TestCurrent(t *testing.T) {
	w := models.CurrentWeather{
		CityName:             "Paris",
		TemperatureC:         21.5,
		FeelsLikeC:           19.4,
		HumidityPct:          65,
		WindSpeedMs:          4.6,
		VisibilityMeters:     9500,
		ConditionMain:        "Clear",
		ConditionDescription: "clear sky",
		IconCode:             "01n",
	}
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	v := Current(w, now)

	want := CurrentView{
		City:        "Paris",
		Date:        "Friday, March 1, 2024",
		Temperature: "22",
		Description: "clear sky",
		Icon:        "fas fa-moon",
		Visibility:  "10 km",
		Humidity:    "65%",
		WindSpeed:   "5 m/s",
		FeelsLike:   "19°C",
	}
	if v != want {
		t.Errorf("unexpected view:\n got %+v\nwant %+v", v, want)
	}
}

func TestCards(t *testing.T) {
	summaries := []models.DailyForecastSummary{
		{Date: models.Date{Year: 2024, Month: time.March, Day: 1}, AverageTemperatureC: 15, DominantCondition: "Rain"},
		{Date: models.Date{Year: 2024, Month: time.March, Day: 2}, AverageTemperatureC: -3, DominantCondition: "Snow"},
	}

	cards := Cards(summaries)
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if cards[0].Label != "Fri, Mar 1" || cards[0].Temperature != "15°C" || cards[0].Description != "rain" || cards[0].Icon != "fas fa-cloud-rain" {
		t.Errorf("unexpected first card: %+v", cards[0])
	}
	if cards[1].Label != "Sat, Mar 2" || cards[1].Temperature != "-3°C" || cards[1].Description != "snow" {
		t.Errorf("unexpected second card: %+v", cards[1])
	}
}

func TestTheme(t *testing.T) {
	for cond, want := range map[string]string{"Clear": "clear", "Thunderstorm": "thunderstorm", "": ""} {
		if got := Theme(cond); got != want {
			t.Errorf("Theme(%q) = %q, want %q", cond, got, want)
		}
	}
}
