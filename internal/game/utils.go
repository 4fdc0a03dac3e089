package game

import (
	"image/color"

	"github.com/iburimskiy/crosshair-overlay/internal/widget"
)

var (
	backgroundColor = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	trackColor      = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	accentColor     = color.RGBA{R: 100, G: 60, B: 200, A: 255}
	borderColor     = color.RGBA{R: 170, G: 85, B: 255, A: 255}
)

func buttonColor(hovered, pressed bool) color.Color {
	switch {
	case pressed:
		return color.RGBA{R: 35, G: 35, B: 35, A: 255}
	case hovered:
		return color.RGBA{R: 60, G: 60, B: 60, A: 255}
	default:
		return color.RGBA{R: 45, G: 45, B: 45, A: 255}
	}
}

func knobColor(hovered, dragging bool) color.Color {
	if hovered || dragging {
		return color.RGBA{R: 220, G: 200, B: 255, A: 255}
	}
	return color.RGBA{R: 200, G: 200, B: 255, A: 255}
}

// centerText returns where DebugPrintAt should start so label sits in the middle of r.
func centerText(r widget.Rect, label string) (int, int) {
	textWidth := len(label) * 6 // debug font glyphs are 6px wide
	return r.X + (r.W-textWidth)/2, r.Y + (r.H-16)/2
}
