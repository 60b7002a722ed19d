package models

import (
	"fmt"
	"time"
)

// ForecastSample is a single 3-hour forecast point
type ForecastSample struct {
	Timestamp     int64   `json:"timestamp"`    // unix seconds, UTC
	TemperatureC  float64 `json:"temperatureC"` // in Celsius
	ConditionMain string  `json:"conditionMain"`
}

// Time returns the sample timestamp in the given location
func (s ForecastSample) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(s.Timestamp, 0).In(loc)
}

// Date is a calendar date without a time component
type Date struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// DateOf returns the calendar date of t as observed in loc (local time when nil)
func DateOf(t time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight of the date in loc
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Before reports whether d is an earlier calendar date than other
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DailyForecastSummary is the per-day aggregate of forecast samples
type DailyForecastSummary struct {
	Date                Date    `json:"date"`
	AverageTemperatureC float64 `json:"averageTemperatureC"` // rounded to whole degrees
	DominantCondition   string  `json:"dominantCondition"`
}
