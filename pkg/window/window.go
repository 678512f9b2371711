//go:build !headless

package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gmittal/spheretrace/pkg/renderer"
)

// Available reports whether this build can open a window.
const Available = true

// Show opens a window displaying the finished frame and blocks until the
// window is closed or Escape is pressed.
func Show(frame *renderer.Frame, title string) error {
	v := &viewer{frame: frame}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(frame.Width(), frame.Height())
	ebiten.SetTPS(30)
	if err := ebiten.RunGame(v); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

type viewer struct {
	frame *renderer.Frame
	img   *ebiten.Image
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.img == nil {
		v.img = ebiten.NewImageFromImage(v.frame.Image())
	}
	screen.DrawImage(v.img, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.frame.Width(), v.frame.Height()
}
