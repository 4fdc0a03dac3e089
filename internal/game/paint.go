package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/crosshair-overlay/internal/crosshair"
)

// paint draws primitives in order with antialiasing.
func paint(dst *ebiten.Image, prims []crosshair.Primitive) {
	for _, p := range prims {
		switch p := p.(type) {
		case crosshair.Line:
			vector.StrokeLine(dst, p.X0, p.Y0, p.X1, p.Y1, p.Width, p.Color, true)
		case crosshair.Ring:
			vector.StrokeCircle(dst, p.CX, p.CY, p.R, p.Width, p.Color, true)
		case crosshair.Disc:
			vector.DrawFilledCircle(dst, p.CX, p.CY, p.R, p.Color, true)
		}
	}
}
