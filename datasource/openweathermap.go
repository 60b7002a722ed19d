package datasource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weather-app/models"
)

// OpenWeatherMapProvider implements both WeatherProvider and ForecastSource interfaces
type OpenWeatherMapProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewOpenWeatherMapProvider creates a new OpenWeatherMap provider.
// A non-positive timeout falls back to DefaultTimeout.
func NewOpenWeatherMapProvider(apiKey string, timeout time.Duration) *OpenWeatherMapProvider {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &OpenWeatherMapProvider{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetBaseURL points the provider at another API root, e.g. a test server
func (p *OpenWeatherMapProvider) SetBaseURL(baseURL string) {
	p.baseURL = strings.TrimRight(baseURL, "/")
}

// Name returns the provider name
func (p *OpenWeatherMapProvider) Name() string {
	return "OpenWeatherMap"
}

type owmCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type owmCurrentResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Visibility int            `json:"visibility"`
	Weather    []owmCondition `json:"weather"`
}

type owmForecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []owmCondition `json:"weather"`
	} `json:"list"`
}

var errMissingCondition = errors.New("response has no weather condition")

// FetchCurrent fetches current weather for a city
func (p *OpenWeatherMapProvider) FetchCurrent(ctx context.Context, city string) (models.CurrentWeather, error) {
	var response owmCurrentResponse
	if err := p.get(ctx, "weather", city, &response); err != nil {
		return models.CurrentWeather{}, err
	}

	if len(response.Weather) == 0 {
		return models.CurrentWeather{}, &NotFoundError{Endpoint: "weather", City: city, Err: errMissingCondition}
	}
	condition := response.Weather[0]

	return models.CurrentWeather{
		CityName:             response.Name,
		TemperatureC:         response.Main.Temp,
		FeelsLikeC:           response.Main.FeelsLike,
		HumidityPct:          response.Main.Humidity,
		WindSpeedMs:          response.Wind.Speed,
		VisibilityMeters:     response.Visibility,
		ConditionMain:        condition.Main,
		ConditionDescription: condition.Description,
		IconCode:             condition.Icon,
	}, nil
}

// FetchForecast fetches the 5-day forecast in 3-hour steps for a city
func (p *OpenWeatherMapProvider) FetchForecast(ctx context.Context, city string) ([]models.ForecastSample, error) {
	var response owmForecastResponse
	if err := p.get(ctx, "forecast", city, &response); err != nil {
		return nil, err
	}

	samples := make([]models.ForecastSample, 0, len(response.List))
	for i, item := range response.List {
		if len(item.Weather) == 0 {
			return nil, &NotFoundError{
				Endpoint: "forecast",
				City:     city,
				Err:      fmt.Errorf("entry %d: %w", i, errMissingCondition),
			}
		}
		samples = append(samples, models.ForecastSample{
			Timestamp:     item.Dt,
			TemperatureC:  item.Main.Temp,
			ConditionMain: item.Weather[0].Main,
		})
	}

	return samples, nil
}

// get issues a single GET against endpoint and decodes the body into out.
// Every failure is reported as a NotFoundError.
func (p *OpenWeatherMapProvider) get(ctx context.Context, endpoint, city string, out any) error {
	notFound := func(status int, err error) error {
		return &NotFoundError{Endpoint: endpoint, City: city, StatusCode: status, Err: err}
	}

	params := url.Values{}
	params.Add("q", city)
	params.Add("appid", p.apiKey)
	params.Add("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/"+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return notFound(0, fmt.Errorf("failed to create request: %w", withoutURL(err)))
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return notFound(0, fmt.Errorf("failed to execute request: %w", withoutURL(err)))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return notFound(resp.StatusCode, fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return notFound(resp.StatusCode, fmt.Errorf("API error: %s", apiMessage(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return notFound(resp.StatusCode, fmt.Errorf("failed to parse response: %w", err))
	}

	return nil
}

// withoutURL drops the request URL from a *url.Error; it carries the API key
func withoutURL(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}

// apiMessage extracts the "message" field of an error body, or the raw body
func apiMessage(body []byte) string {
	var apiErr struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}
	return strings.TrimSpace(string(body))
}

// Ensure OpenWeatherMapProvider implements WeatherClient
var _ WeatherClient = (*OpenWeatherMapProvider)(nil)
