// Package controller drives a search from submission to a finished view.
// It owns the display state; everything it calls is stateless.
package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"weather-app/aggregator"
	"weather-app/collector"
	"weather-app/datasource"
	"weather-app/presenter"

	"github.com/google/uuid"
)

// State is the position of the controller in the search cycle
type State string

const (
	Idle    State = "idle"
	Loading State = "loading"
	Success State = "success"
	Error   State = "error"
)

// Messages shown to the user
const (
	ValidationMessage = "Please enter a city name"
	NotFoundMessage   = "City not found. Please try again."
)

// ValidationError is recorded when a search is submitted without a city
type ValidationError struct {
	Input string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid city %q: name is empty", e.Input)
}

// View is the complete display state handed to the UI
type View struct {
	State     State                    `json:"state"`
	Loading   bool                     `json:"loading"`
	Query     string                   `json:"query,omitempty"`
	RequestID string                   `json:"requestId,omitempty"`
	Message   string                   `json:"message,omitempty"`
	Warning   string                   `json:"warning,omitempty"`
	Theme     string                   `json:"theme,omitempty"`
	Current   *presenter.CurrentView   `json:"current,omitempty"`
	Forecast  []presenter.ForecastCard `json:"forecast,omitempty"`

	// Err is the failure behind Message, kept for callers and logs
	Err error `json:"-"`
}

// Renderer receives every view the controller publishes.
// Render is called with the controller locked and must not call back into it.
type Renderer interface {
	Render(View)
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(View)

func (f RendererFunc) Render(v View) { f(v) }

// Controller runs searches against a WeatherClient
type Controller struct {
	client   datasource.WeatherClient
	renderer Renderer
	loc      *time.Location
	now      func() time.Time

	mu      sync.Mutex
	view    View
	warning string
	latest  string // request ID of the most recent search
}

// NewController creates a controller in the Idle state. renderer may be nil.
func NewController(client datasource.WeatherClient, renderer Renderer) *Controller {
	return &Controller{
		client:   client,
		renderer: renderer,
		loc:      time.Local,
		now:      time.Now,
		view:     View{State: Idle},
	}
}

// SetLocation changes the time zone used to split forecast days
func (c *Controller) SetLocation(loc *time.Location) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loc = loc
}

// SetClock replaces the clock used for the displayed date
func (c *Controller) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// SetWarning installs a warning that stays on every view, e.g. a missing API key
func (c *Controller) SetWarning(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warning = msg
	c.view.Warning = msg
	c.publishLocked()
}

// View returns the current display state
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// DismissValidation clears the message when it is the empty-city prompt
func (c *Controller) DismissValidation() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	var verr *ValidationError
	if c.view.Message == ValidationMessage && errors.As(c.view.Err, &verr) {
		c.view.Message = ""
		c.view.Err = nil
		c.publishLocked()
	}
	return c.view
}

// Search submits a city. It never returns an error: failures end up in the
// returned view. An empty city is rejected without any network call. When a
// newer search has started by the time the results arrive they are dropped and
// the view of the newer search is returned.
func (c *Controller) Search(ctx context.Context, city string) View {
	query := strings.TrimSpace(city)
	if query == "" {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.view.Message = ValidationMessage
		c.view.Err = &ValidationError{Input: city}
		c.publishLocked()
		return c.view
	}

	id := uuid.NewString()

	c.mu.Lock()
	c.latest = id
	c.view = View{
		State:     Loading,
		Loading:   true,
		Query:     query,
		RequestID: id,
		Warning:   c.warning,
		Theme:     c.view.Theme,
	}
	c.publishLocked()
	loc, now := c.loc, c.now
	c.mu.Unlock()

	return c.complete(ctx, id, query, loc, now)
}

// complete publishes the outcome of one search unless a newer search has
// started since. Any outcome, including a failure, clears the loading flag.
func (c *Controller) complete(ctx context.Context, id, query string, loc *time.Location, now func() time.Time) View {
	next := c.outcome(ctx, id, query, loc, now)

	c.mu.Lock()
	defer c.mu.Unlock()

	if id != c.latest {
		log.Printf("controller: dropping stale result for %q (request %s)", query, id)
		return c.view
	}

	next.Warning = c.warning
	if next.State == Error {
		next.Theme = c.view.Theme
	}
	c.view = next
	c.publishLocked()
	return c.view
}

// outcome collects both fetches and builds the resulting view
func (c *Controller) outcome(ctx context.Context, id, query string, loc *time.Location, now func() time.Time) (v View) {
	failed := func(err error) View {
		logFailure(query, id, err)
		return View{State: Error, Query: query, RequestID: id, Message: NotFoundMessage, Err: err}
	}

	defer func() {
		if r := recover(); r != nil {
			v = failed(fmt.Errorf("search panicked: %v", r))
		}
	}()

	result, err := collector.Collect(ctx, c.client, query)
	if err != nil {
		return failed(err)
	}

	current := presenter.Current(result.Current, now())
	log.Printf("controller: %q resolved to %s (request %s)", query, current.City, id)

	return View{
		State:     Success,
		Query:     query,
		RequestID: id,
		Theme:     presenter.Theme(result.Current.ConditionMain),
		Current:   &current,
		Forecast:  presenter.Cards(aggregator.Summarize(result.Forecast, loc)),
	}
}

func (c *Controller) publishLocked() {
	if c.renderer != nil {
		c.renderer.Render(c.view)
	}
}

func logFailure(query, id string, err error) {
	var nf *datasource.NotFoundError
	if errors.As(err, &nf) {
		log.Printf("controller: search %q failed at %s endpoint (status %d, request %s): %v",
			query, nf.Endpoint, nf.StatusCode, id, err)
		return
	}
	log.Printf("controller: search %q failed (request %s): %v", query, id, err)
}
