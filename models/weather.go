package models

// CurrentWeather is a snapshot of one current-weather response
type CurrentWeather struct {
	CityName             string  `json:"cityName"`
	TemperatureC         float64 `json:"temperatureC"`
	FeelsLikeC           float64 `json:"feelsLikeC"`
	HumidityPct          int     `json:"humidityPct"`
	WindSpeedMs          float64 `json:"windSpeedMs"`      // in m/s
	VisibilityMeters     int     `json:"visibilityMeters"` // in meters
	ConditionMain        string  `json:"conditionMain"`    // coarse category, e.g. "Rain"
	ConditionDescription string  `json:"conditionDescription"`
	IconCode             string  `json:"iconCode"` // provider icon code, e.g. "10d"
}
