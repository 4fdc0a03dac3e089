package config

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStyle(t *testing.T) {
	cases := map[string]Style{
		"Classic":  StyleClassic,
		"circle":   StyleCircle,
		" DOT ":    StyleDot,
		"Reticle":  StyleReticle,
		"Clássico": StyleClassic,
		"Círculo":  StyleCircle,
		"Ponto":    StyleDot,
		"Retícula": StyleReticle,
	}
	for in, want := range cases {
		got, err := ParseStyle(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseStyle("Triangle")
	require.Error(t, err)
}

func TestStyleIndex(t *testing.T) {
	for i, st := range Styles {
		require.Equal(t, i, st.Index())
		require.True(t, st.Valid())
	}
	require.Equal(t, -1, Style("Triangle").Index())
	require.False(t, Style("").Valid())
}

func TestParseRGB(t *testing.T) {
	c, err := ParseRGB("#00ff00")
	require.NoError(t, err)
	require.Equal(t, RGB{G: 0xFF}, c)

	c, err = ParseRGB("#F80")
	require.NoError(t, err)
	require.Equal(t, RGB{R: 0xFF, G: 0x88}, c)
	require.Equal(t, "#FF8800", c.Hex())

	for _, bad := range []string{"", "#12345", "#GGGGGG", "green"} {
		_, err := ParseRGB(bad)
		require.Error(t, err, bad)
	}
}

func TestFromColor(t *testing.T) {
	require.Equal(t, RGB{R: 10, G: 20, B: 30}, FromColor(color.RGBA{R: 10, G: 20, B: 30, A: 255}))
	require.Equal(t, RGB{R: 10, G: 20, B: 30}, FromColor(color.NRGBA{R: 10, G: 20, B: 30, A: 128}))
}

func TestBoundsClamp(t *testing.T) {
	for _, b := range []Bounds{SizeBounds, GapBounds, ThicknessBounds, OpacityBounds} {
		for v := b.Min - 20; v <= b.Max+20; v++ {
			got := b.Clamp(v)
			require.True(t, b.Contains(got))
			if b.Contains(v) {
				require.Equal(t, v, got)
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	c := Crosshair{Size: 0, Gap: 99, Thickness: 11, Opacity: 5, Color: RGB{R: 1}, Style: "Triangle"}.Normalize()
	require.Equal(t, Crosshair{Size: 1, Gap: 50, Thickness: 10, Opacity: 10, Color: RGB{R: 1}, Style: StyleClassic}, c)
	require.Equal(t, Default(), Default().Normalize())
}

func TestStateUpdate_NotifiesInOrder(t *testing.T) {
	state := NewState(Default())

	var order []string
	var seen Crosshair
	state.Subscribe(ListenerFunc(func(c Crosshair) error {
		order = append(order, "overlay")
		seen = c
		return nil
	}))
	state.Subscribe(ListenerFunc(func(c Crosshair) error {
		order = append(order, "store")
		return nil
	}))

	err := state.Update(func(c *Crosshair) { c.Size = 50 })
	require.NoError(t, err)
	require.Equal(t, []string{"overlay", "store"}, order)
	require.Equal(t, 50, seen.Size)
	require.Equal(t, 50, state.Current().Size)
}

func TestStateUpdate_ClampsAndCollectsErrors(t *testing.T) {
	state := NewState(Default())
	errA := errors.New("overlay gone")
	errB := errors.New("disk full")

	calls := 0
	state.Subscribe(ListenerFunc(func(Crosshair) error { calls++; return errA }))
	state.Subscribe(ListenerFunc(func(Crosshair) error { calls++; return errB }))

	err := state.Update(func(c *Crosshair) { c.Opacity = 500 })
	require.ErrorIs(t, err, errA)
	require.ErrorIs(t, err, errB)
	require.Equal(t, 2, calls)
	require.Equal(t, 100, state.Current().Opacity)
}

func TestStateCurrent_IsCopy(t *testing.T) {
	state := NewState(Default())
	c := state.Current()
	c.Size = 99
	require.Equal(t, Default().Size, state.Current().Size)
}

func TestAboutText_CarriesAttribution(t *testing.T) {
	require.Contains(t, AboutText, "Developed by yrvt")
	require.Contains(t, AboutText, "https://github.com/RevoltadoxDK")
	require.Contains(t, AboutText, DefaultPath)
}
