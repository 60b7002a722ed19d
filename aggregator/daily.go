// Package aggregator reduces 3-hour forecast samples to per-day summaries.
package aggregator

import (
	"math"
	"time"

	"weather-app/models"
)

// MaxDays is the number of daily summaries produced per forecast
const MaxDays = 5

// DayGroup is the samples of one calendar day, in their original order
type DayGroup struct {
	Date    models.Date
	Samples []models.ForecastSample
}

// GroupByDay buckets samples by calendar date in loc (local time when nil).
// Groups are ordered by the first time their date is seen while scanning samples.
func GroupByDay(samples []models.ForecastSample, loc *time.Location) []DayGroup {
	var groups []DayGroup
	index := make(map[models.Date]int)

	for _, s := range samples {
		date := models.DateOf(s.Time(loc), loc)
		i, ok := index[date]
		if !ok {
			i = len(groups)
			index[date] = i
			groups = append(groups, DayGroup{Date: date})
		}
		groups[i].Samples = append(groups[i].Samples, s)
	}

	return groups
}

// AverageTemperature returns the mean temperature rounded half-up to a whole degree.
// An empty list averages to 0.
func AverageTemperature(samples []models.ForecastSample) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += s.TemperatureC
	}
	return RoundHalfUp(sum / float64(len(samples)))
}

// DominantCondition returns the most frequent condition. On a tie the condition
// seen first wins. An empty list yields "".
func DominantCondition(samples []models.ForecastSample) string {
	counts := make(map[string]int)
	var order []string
	for _, s := range samples {
		if counts[s.ConditionMain] == 0 {
			order = append(order, s.ConditionMain)
		}
		counts[s.ConditionMain]++
	}

	best := ""
	bestCount := 0
	for _, cond := range order {
		if counts[cond] > bestCount {
			best = cond
			bestCount = counts[cond]
		}
	}
	return best
}

// Summarize builds one summary for each of the first MaxDays days in samples
func Summarize(samples []models.ForecastSample, loc *time.Location) []models.DailyForecastSummary {
	groups := GroupByDay(samples, loc)
	if len(groups) > MaxDays {
		groups = groups[:MaxDays]
	}

	summaries := make([]models.DailyForecastSummary, 0, len(groups))
	for _, g := range groups {
		summaries = append(summaries, models.DailyForecastSummary{
			Date:                g.Date,
			AverageTemperatureC: AverageTemperature(g.Samples),
			DominantCondition:   DominantCondition(g.Samples),
		})
	}
	return summaries
}

// RoundHalfUp rounds to the nearest integer with halves going up (-2.5 -> -2)
func RoundHalfUp(x float64) float64 {
	f := math.Floor(x)
	if x-f >= 0.5 {
		f++
	}
	return f
}
