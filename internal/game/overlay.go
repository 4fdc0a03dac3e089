package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/crosshair-overlay/internal/config"
	"github.com/iburimskiy/crosshair-overlay/internal/crosshair"
	"github.com/iburimskiy/crosshair-overlay/internal/link"
	"go.uber.org/zap"
)

// Overlay is the transparent, click-through window that shows the crosshair.
type Overlay struct {
	tap     *link.Tap
	cfg     config.Crosshair
	version uint64

	// window placement
	placed bool
	posX   int
	posY   int
}

// NewOverlay shows initial until tap delivers something newer. tap may be nil.
func NewOverlay(initial config.Crosshair, tap *link.Tap) *Overlay {
	return &Overlay{tap: tap, cfg: initial}
}

// SetConfig replaces the drawn configuration; the next frame shows it.
func (o *Overlay) SetConfig(c config.Crosshair) {
	o.cfg = c
	zap.S().Debugw("overlay config updated", "style", c.Style, "size", c.Size, "gap", c.Gap,
		"thickness", c.Thickness, "opacity", c.Opacity, "color", c.Color)
}

func (o *Overlay) Update() error {
	o.center()
	return o.pull()
}

// pull takes the newest record from the tap and ends the game once the link
// is closed.
func (o *Overlay) pull() error {
	if o.tap == nil {
		return nil
	}
	c, version, open := o.tap.Snapshot()
	if version != o.version {
		o.version = version
		o.SetConfig(c)
	}
	if !open {
		if err := o.tap.Err(); err != nil {
			return err
		}
		zap.S().Infow("settings link closed, exiting overlay")
		return ebiten.Termination
	}
	return nil
}

// center keeps the window in the middle of the primary monitor, following
// resolution changes.
func (o *Overlay) center() {
	mon := primaryMonitor()
	if mon == nil {
		return
	}
	if !o.placed {
		ebiten.SetMonitor(mon)
	}
	mw, mh := mon.Size()
	ww, wh := ebiten.WindowSize()
	x, y := (mw-ww)/2, (mh-wh)/2
	if o.placed && x == o.posX && y == o.posY {
		return
	}
	ebiten.SetWindowPosition(x, y)
	o.placed, o.posX, o.posY = true, x, y
	zap.S().Debugw("overlay centered", "monitor", mon.Name(), "x", x, "y", y)
}

func primaryMonitor() *ebiten.MonitorType {
	if ms := ebiten.AppendMonitors(nil); len(ms) > 0 {
		return ms[0]
	}
	return ebiten.Monitor()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	cx := float32(b.Min.X) + float32(b.Dx())/2
	cy := float32(b.Min.Y) + float32(b.Dy())/2
	paint(screen, crosshair.Render(o.cfg, cx, cy))
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) (int, int) {
	n := crosshair.Extent()
	return n, n
}

// RunOverlay opens the overlay window and blocks until it closes.
func RunOverlay(o *Overlay) error {
	n := crosshair.Extent()
	ebiten.SetWindowSize(n, n)
	ebiten.SetWindowTitle(config.OverlayTitle)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowMousePassthrough(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	err := ebiten.RunGameWithOptions(o, &ebiten.RunGameOptions{
		ScreenTransparent: true,
		InitUnfocused:     true,
		SkipTaskbar:       true,
	})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
