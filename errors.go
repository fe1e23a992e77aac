package curveviz

import (
	"errors"
	"fmt"
)

// Sentinel errors for curveviz.
var (
	// ErrInvalidColor is returned when a hex color string cannot be parsed.
	ErrInvalidColor = errors.New("curveviz: invalid color")

	// ErrUnknownBlendMode is returned for an unrecognized heatmap blend mode.
	ErrUnknownBlendMode = errors.New("curveviz: unknown blend mode")

	// ErrNoStops is returned when a heatmap definition has no color stops.
	ErrNoStops = errors.New("curveviz: heatmap has no stops")
)

// PreferenceError reports an invalid preference value.
type PreferenceError struct {
	Field  string
	Reason string
	Err    error
}

func (e *PreferenceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("curveviz: preference %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("curveviz: preference %s: %s", e.Field, e.Reason)
}

func (e *PreferenceError) Unwrap() error {
	return e.Err
}
