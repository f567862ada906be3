package rope

import (
	"errors"
	"fmt"
)

// ErrInvalidLength is wrapped by the ConfigurationError returned for a rope shorter than one segment.
var ErrInvalidLength = errors.New("rope must have at least one segment")

// ConfigurationError reports a simulation parameter that cannot be used.
type ConfigurationError struct {
	Param  string
	Value  any
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Param, e.Value, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
