package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Style selects the shape the overlay draws.
type Style string

const (
	StyleClassic Style = "Classic"
	StyleCircle  Style = "Circle"
	StyleDot     Style = "Dot"
	StyleReticle Style = "Reticle"
)

// Styles lists every known style in selector order.
var Styles = []Style{StyleClassic, StyleCircle, StyleDot, StyleReticle}

// legacy names written by older builds of the tool
var styleAliases = map[string]Style{
	"classic":  StyleClassic,
	"clássico": StyleClassic,
	"classico": StyleClassic,
	"circle":   StyleCircle,
	"círculo":  StyleCircle,
	"circulo":  StyleCircle,
	"dot":      StyleDot,
	"ponto":    StyleDot,
	"reticle":  StyleReticle,
	"retícula": StyleReticle,
	"reticula": StyleReticle,
}

// ParseStyle resolves a style name, accepting legacy aliases.
func ParseStyle(s string) (Style, error) {
	if st, ok := styleAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return st, nil
	}
	return "", fmt.Errorf("unknown style %q", s)
}

// Valid reports whether s is one of the four known styles.
func (s Style) Valid() bool {
	for _, st := range Styles {
		if s == st {
			return true
		}
	}
	return false
}

// Index returns the position of s in Styles, or -1.
func (s Style) Index() int {
	for i, st := range Styles {
		if s == st {
			return i
		}
	}
	return -1
}

func (s Style) MarshalText() ([]byte, error) {
	return []byte(s), nil
}

func (s *Style) UnmarshalText(b []byte) error {
	st, err := ParseStyle(string(b))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// RGB is an opaque color. Transparency comes from Crosshair.Opacity.
type RGB struct {
	R, G, B uint8
}

// FromColor drops the alpha channel of c, un-premultiplying first.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// Hex formats the color as #RRGGBB.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) String() string { return c.Hex() }

// NRGBA returns c fully opaque.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// ParseRGB accepts #RRGGBB or #RGB in either case.
func ParseRGB(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *RGB) UnmarshalText(b []byte) error {
	v, err := ParseRGB(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Bounds is the inclusive range a numeric field is kept in.
type Bounds struct {
	Min, Max int
}

// Clamp pins v into [Min, Max].
func (b Bounds) Clamp(v int) int {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

func (b Bounds) Contains(v int) bool {
	return v >= b.Min && v <= b.Max
}

var (
	SizeBounds      = Bounds{Min: 1, Max: 100}
	GapBounds       = Bounds{Min: 0, Max: 50}
	ThicknessBounds = Bounds{Min: 1, Max: 10}
	OpacityBounds   = Bounds{Min: 10, Max: 100}
)

// Crosshair is the persisted overlay configuration.
type Crosshair struct {
	Size      int   `json:"size"`
	Gap       int   `json:"gap"`
	Thickness int   `json:"thickness"`
	Opacity   int   `json:"opacity"`
	Color     RGB   `json:"color"`
	Style     Style `json:"style"`
}

// Default returns the configuration used when no file exists and for any
// field that is missing or unreadable in an existing file.
func Default() Crosshair {
	return Crosshair{
		Size:      10,
		Gap:       4,
		Thickness: 2,
		Opacity:   100,
		Color:     RGB{R: 0x00, G: 0xFF, B: 0x00},
		Style:     StyleClassic,
	}
}

// Normalize clamps numeric fields into their bounds and replaces an unknown
// style with the default one.
func (c Crosshair) Normalize() Crosshair {
	c.Size = SizeBounds.Clamp(c.Size)
	c.Gap = GapBounds.Clamp(c.Gap)
	c.Thickness = ThicknessBounds.Clamp(c.Thickness)
	c.Opacity = OpacityBounds.Clamp(c.Opacity)
	if !c.Style.Valid() {
		c.Style = Default().Style
	}
	return c
}
