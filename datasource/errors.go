package datasource

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every NotFoundError
var ErrNotFound = errors.New("city not found")

// NotFoundError reports a failed lookup against one provider endpoint.
// A non-2xx status, an unreadable body and a transport failure all end up here;
// the fields keep the cause apart for logging.
type NotFoundError struct {
	Endpoint   string // "weather" or "forecast"
	City       string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s for %q: %v", e.Endpoint, e.City, ErrNotFound)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrNotFound) hold for any NotFoundError
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ConfigurationError reports an unusable provider configuration
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s %s", e.Field, e.Reason)
}
