package datasource

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"weather-app/models"
)

// WeatherProvider is an interface for services that can fetch current weather data
type WeatherProvider interface {
	// FetchCurrent fetches current weather for a city
	FetchCurrent(ctx context.Context, city string) (models.CurrentWeather, error)

	// Name returns the provider's name
	Name() string
}

// ForecastSource is an interface for services that can fetch weather forecasts
type ForecastSource interface {
	// FetchForecast fetches the 3-hour forecast samples for a city
	FetchForecast(ctx context.Context, city string) ([]models.ForecastSample, error)

	// Name returns the source's name
	Name() string
}

const (
	// PlaceholderAPIKey is the value shipped in sample configs
	PlaceholderAPIKey = "YOUR_API_KEY_HERE"

	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
	DefaultPort    = 8080
	DefaultTimeout = 10 * time.Second
)

// Config represents the application configuration
type Config struct {
	OpenWeatherMap struct {
		APIKey  string `json:"apiKey"`
		BaseURL string `json:"baseURL"`
	} `json:"openWeatherMap"`

	Port int `json:"port"`

	// Timeout bounds each provider request, e.g. "10s"
	Timeout string `json:"timeout"`
}

// LoadConfig loads configuration from a JSON file and applies environment
// overrides. A missing file is not an error; the defaults are used instead.
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()

	if filename != "" {
		file, err := os.Open(filename)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			defer file.Close()
			if err := json.NewDecoder(file).Decode(config); err != nil {
				return nil, err
			}
		}
	}

	config.OpenWeatherMap.APIKey = getEnv("OPENWEATHERMAP_API_KEY", config.OpenWeatherMap.APIKey)
	config.OpenWeatherMap.BaseURL = getEnv("OPENWEATHERMAP_BASE_URL", config.OpenWeatherMap.BaseURL)
	config.Port = getEnvAsInt("PORT", config.Port)
	config.Timeout = getEnv("HTTP_TIMEOUT", config.Timeout)

	return config, nil
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	config := &Config{}
	config.OpenWeatherMap.APIKey = PlaceholderAPIKey
	config.OpenWeatherMap.BaseURL = DefaultBaseURL
	config.Port = DefaultPort
	config.Timeout = DefaultTimeout.String()
	return config
}

// Validate reports a ConfigurationError when the API key is missing or still
// the placeholder. The caller decides whether that is fatal.
func (c *Config) Validate() error {
	key := strings.TrimSpace(c.OpenWeatherMap.APIKey)
	if key == "" {
		return &ConfigurationError{Field: "openWeatherMap.apiKey", Reason: "is not set"}
	}
	if key == PlaceholderAPIKey {
		return &ConfigurationError{Field: "openWeatherMap.apiKey", Reason: "is still the placeholder value"}
	}
	return nil
}

// RequestTimeout returns the parsed request timeout, falling back to DefaultTimeout
func (c *Config) RequestTimeout() time.Duration {
	if d, err := time.ParseDuration(c.Timeout); err == nil && d > 0 {
		return d
	}
	return DefaultTimeout
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
