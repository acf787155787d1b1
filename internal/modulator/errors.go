package modulator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidVpi indicates a zero Vπ, which would divide the drive voltage by zero.
	ErrInvalidVpi = errors.New("modulator: vpi must be non-zero")

	// ErrInvalidDevice indicates a device parameter that is NaN or infinite.
	ErrInvalidDevice = errors.New("modulator: device parameter must be finite")
)

// ConfigError reports which device field was rejected.
type ConfigError struct {
	Field   string
	Value   float64
	Wrapped error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s (%s=%g)", e.Wrapped.Error(), e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}
