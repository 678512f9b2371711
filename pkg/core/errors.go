package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDegenerateGeometry is returned for geometry that cannot be traced,
	// such as a sphere with a non-positive radius.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrDegenerateVector is returned when a zero-length or non-finite vector
	// is normalized.
	ErrDegenerateVector = fmt.Errorf("%w: vector cannot be normalized", ErrDegenerateGeometry)

	// ErrInvalidConfiguration is returned for viewport, window or light
	// settings outside their valid range.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNonFinite is returned when NaN or infinite values reach shading.
	ErrNonFinite = errors.New("non-finite value")
)

// ValidationErrors collects every problem found while validating a scene so
// callers see all of them at once.
type ValidationErrors []error

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}
	msgs := make([]string, len(ve))
	for i, err := range ve {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d validation errors: %s", len(ve), strings.Join(msgs, "; "))
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (ve ValidationErrors) Unwrap() []error {
	return ve
}

// Add appends err if it is non-nil.
func (ve *ValidationErrors) Add(err error) {
	if err != nil {
		*ve = append(*ve, err)
	}
}

// Err returns nil when nothing was collected.
func (ve ValidationErrors) Err() error {
	if len(ve) == 0 {
		return nil
	}
	return ve
}
