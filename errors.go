package spiro

import (
	"errors"
	"fmt"
)

// Sentinel errors for the spiro package.
var (
	// ErrInvalidParameter is returned when a value lies outside its declared
	// range or would be used as a zero divisor. Generation never starts with
	// such a value.
	ErrInvalidParameter = errors.New("spiro: invalid parameter")

	// ErrDegenerateProjection is returned when a projection denominator
	// reaches zero for a point. It is local to that point.
	ErrDegenerateProjection = errors.New("spiro: degenerate projection")
)

// ParamError describes a rejected parameter value.
// It unwraps to ErrInvalidParameter.
type ParamError struct {
	Name   string
	Value  float64
	Min    float64
	Max    float64
	Reason string
}

func (e *ParamError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("spiro: invalid parameter %s=%g: %s", e.Name, e.Value, e.Reason)
	}
	return fmt.Sprintf("spiro: invalid parameter %s=%g: outside [%g, %g]", e.Name, e.Value, e.Min, e.Max)
}

func (e *ParamError) Unwrap() error { return ErrInvalidParameter }
