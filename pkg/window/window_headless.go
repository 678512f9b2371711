//go:build headless

package window

import (
	"errors"

	"github.com/gmittal/spheretrace/pkg/renderer"
)

// Available reports whether this build can open a window.
const Available = false

// ErrHeadless is returned by Show in builds without a window system.
var ErrHeadless = errors.New("window: built with the headless tag")

// Show always fails in headless builds.
func Show(frame *renderer.Frame, title string) error {
	return ErrHeadless
}
