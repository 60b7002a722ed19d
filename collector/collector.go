package collector

import (
	"context"
	"fmt"

	"weather-app/datasource"
	"weather-app/models"

	"golang.org/x/sync/errgroup"
)

// Result holds both halves of a search; it is only produced when both fetches succeed
type Result struct {
	City     string
	Current  models.CurrentWeather
	Forecast []models.ForecastSample
}

// Collect fetches current weather and forecast for city concurrently.
// The first failure cancels the other fetch and no partial result is returned.
func Collect(ctx context.Context, client datasource.WeatherClient, city string) (Result, error) {
	g, gctx := errgroup.WithContext(ctx)

	var (
		current  models.CurrentWeather
		forecast []models.ForecastSample
	)

	g.Go(func() error {
		data, err := client.FetchCurrent(gctx, city)
		if err != nil {
			return fmt.Errorf("current weather from %s: %w", client.Name(), err)
		}
		current = data
		return nil
	})

	g.Go(func() error {
		data, err := client.FetchForecast(gctx, city)
		if err != nil {
			return fmt.Errorf("forecast from %s: %w", client.Name(), err)
		}
		forecast = data
		return nil
	})

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	return Result{City: city, Current: current, Forecast: forecast}, nil
}
