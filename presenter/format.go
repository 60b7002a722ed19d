// Package presenter turns weather data into display-ready strings.
// Everything here is a pure function of its arguments.
package presenter

import (
	"strconv"
	"time"

	"weather-app/aggregator"
	"weather-app/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	longDateLayout = "Monday, January 2, 2006"
	weekdayLayout  = "Mon"
	monthDayLayout = "Jan 2"
)

// FormatLongDate formats t as e.g. "Friday, March 1, 2024"
func FormatLongDate(t time.Time) string {
	return t.Format(longDateLayout)
}

// CardDate is the two-part date shown on a forecast card
type CardDate struct {
	ShortWeekday string `json:"shortWeekday"` // "Fri"
	MonthDay     string `json:"monthDay"`     // "Mar 1"
}

func (c CardDate) String() string {
	return c.ShortWeekday + ", " + c.MonthDay
}

// FormatCardDate formats a calendar date for a forecast card
func FormatCardDate(d models.Date) CardDate {
	t := d.Time(time.UTC)
	return CardDate{
		ShortWeekday: t.Format(weekdayLayout),
		MonthDay:     t.Format(monthDayLayout),
	}
}

// CurrentView is the render model of the current-weather panel
type CurrentView struct {
	City        string `json:"city"`
	Date        string `json:"date"`
	Temperature string `json:"temperature"` // whole degrees, no unit
	Description string `json:"description"`
	Icon        Icon   `json:"icon"`
	Visibility  string `json:"visibility"`
	Humidity    string `json:"humidity"`
	WindSpeed   string `json:"windSpeed"`
	FeelsLike   string `json:"feelsLike"`
}

// Current builds the current-weather panel; now supplies the displayed date
func Current(w models.CurrentWeather, now time.Time) CurrentView {
	return CurrentView{
		City:        w.CityName,
		Date:        FormatLongDate(now),
		Temperature: round(w.TemperatureC),
		Description: w.ConditionDescription,
		Icon:        IconFor(w.ConditionMain, w.IconCode),
		Visibility:  round(float64(w.VisibilityMeters)/1000) + " km",
		Humidity:    strconv.Itoa(w.HumidityPct) + "%",
		WindSpeed:   round(w.WindSpeedMs) + " m/s",
		FeelsLike:   round(w.FeelsLikeC) + "°C",
	}
}

// ForecastCard is the render model of one forecast day
type ForecastCard struct {
	Date        CardDate `json:"date"`
	Label       string   `json:"label"` // "Fri, Mar 1"
	Icon        Icon     `json:"icon"`
	Temperature string   `json:"temperature"`
	Description string   `json:"description"`
}

// Cards builds one forecast card per daily summary, keeping their order
func Cards(summaries []models.DailyForecastSummary) []ForecastCard {
	cards := make([]ForecastCard, 0, len(summaries))
	for _, s := range summaries {
		date := FormatCardDate(s.Date)
		cards = append(cards, ForecastCard{
			Date:        date,
			Label:       date.String(),
			Icon:        IconFor(s.DominantCondition, ""),
			Temperature: round(s.AverageTemperatureC) + "°C",
			Description: lower(s.DominantCondition),
		})
	}
	return cards
}

// Theme returns the background theme key for a condition, e.g. "rain"
func Theme(conditionMain string) string {
	return lower(conditionMain)
}

func lower(s string) string {
	// Casers keep state and must not be shared across goroutines.
	return cases.Lower(language.AmericanEnglish).String(s)
}

func round(x float64) string {
	return strconv.Itoa(int(aggregator.RoundHalfUp(x)))
}
