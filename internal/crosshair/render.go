// Package crosshair turns a configuration into a list of drawing primitives.
// It has no dependency on the windowing toolkit so every shape can be checked
// in plain tests.
package crosshair

import (
	"image/color"
	"math"

	"github.com/iburimskiy/crosshair-overlay/internal/config"
)

// ShadowColor is drawn under every stroke for contrast on any background.
var ShadowColor = color.NRGBA{A: 160}

// Primitive is one of Line, Ring or Disc.
type Primitive interface {
	primitive()
}

// Line is a stroked segment.
type Line struct {
	X0, Y0, X1, Y1 float32
	Width          float32
	Color          color.NRGBA
}

// Ring is a stroked circle outline.
type Ring struct {
	CX, CY, R float32
	Width     float32
	Color     color.NRGBA
}

// Disc is a filled circle.
type Disc struct {
	CX, CY, R float32
	Color     color.NRGBA
}

func (Line) primitive() {}
func (Ring) primitive() {}
func (Disc) primitive() {}

type renderFunc func(c config.Crosshair, cx, cy float32) []Primitive

var renderers = map[config.Style]renderFunc{
	config.StyleClassic: renderClassic,
	config.StyleCircle:  renderCircle,
	config.StyleDot:     renderDot,
	config.StyleReticle: renderReticle,
}

// Render returns the primitives for c centered on (cx, cy), in paint order.
// An unknown style produces nothing.
func Render(c config.Crosshair, cx, cy float32) []Primitive {
	fn, ok := renderers[c.Style]
	if !ok {
		return nil
	}
	return fn(c, cx, cy)
}

// Alpha maps an opacity percentage linearly onto 0-255.
func Alpha(opacity int) uint8 {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 100 {
		opacity = 100
	}
	return uint8(math.Round(float64(opacity) * 255 / 100))
}

// MainColor is the configured color with opacity applied.
func MainColor(c config.Crosshair) color.NRGBA {
	return color.NRGBA{R: c.Color.R, G: c.Color.G, B: c.Color.B, A: Alpha(c.Opacity)}
}

// Extent is the edge length of a square that holds the largest shape the
// bounded configuration can produce, shadow included.
func Extent() int {
	reach := config.GapBounds.Max + config.SizeBounds.Max + config.ThicknessBounds.Max + 2
	if r := config.SizeBounds.Max + 1 + config.ThicknessBounds.Max + 2; r > reach {
		reach = r
	}
	return 2 * reach
}

// strokedLine draws the shadow first and the colored stroke on top.
func strokedLine(c config.Crosshair, x0, y0, x1, y1 float32) []Primitive {
	w := float32(c.Thickness)
	return []Primitive{
		Line{X0: x0, Y0: y0, X1: x1, Y1: y1, Width: w + 1, Color: ShadowColor},
		Line{X0: x0, Y0: y0, X1: x1, Y1: y1, Width: w, Color: MainColor(c)},
	}
}

// arms draws four segments from gap to gap+size in each cardinal direction.
func arms(c config.Crosshair, cx, cy float32) []Primitive {
	gap, size := float32(c.Gap), float32(c.Size)
	out := make([]Primitive, 0, 8)
	out = append(out, strokedLine(c, cx, cy-gap-size, cx, cy-gap)...) // up
	out = append(out, strokedLine(c, cx, cy+gap, cx, cy+gap+size)...) // down
	out = append(out, strokedLine(c, cx-gap-size, cy, cx-gap, cy)...) // left
	out = append(out, strokedLine(c, cx+gap, cy, cx+gap+size, cy)...) // right
	return out
}

func renderClassic(c config.Crosshair, cx, cy float32) []Primitive {
	return arms(c, cx, cy)
}

// Reticle shares the classic geometry.
func renderReticle(c config.Crosshair, cx, cy float32) []Primitive {
	return arms(c, cx, cy)
}

func renderCircle(c config.Crosshair, cx, cy float32) []Primitive {
	w, r := float32(c.Thickness), float32(c.Size)
	return []Primitive{
		Ring{CX: cx, CY: cy, R: r + 1, Width: w + 1, Color: ShadowColor},
		Ring{CX: cx, CY: cy, R: r, Width: w, Color: MainColor(c)},
	}
}

func renderDot(c config.Crosshair, cx, cy float32) []Primitive {
	return []Primitive{
		Disc{CX: cx, CY: cy, R: float32(c.Size), Color: MainColor(c)},
	}
}
