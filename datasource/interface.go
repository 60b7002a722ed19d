package datasource

// WeatherClient is the combined view of a provider that serves both
// current conditions and the 5-day/3-hour forecast for a city.
type WeatherClient interface {
	WeatherProvider
	ForecastSource
}
