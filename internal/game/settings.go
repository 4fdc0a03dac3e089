package game

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/crosshair-overlay/internal/config"
	"github.com/iburimskiy/crosshair-overlay/internal/panel"
	"github.com/iburimskiy/crosshair-overlay/internal/widget"
)

// Settings is the control panel window.
type Settings struct {
	ctrl *panel.Controller

	size      *widget.Slider
	gap       *widget.Slider
	thickness *widget.Slider
	opacity   *widget.Slider

	styles *widget.Choice
	color  *widget.Button
	about  *widget.Button
}

func NewSettings(ctrl *panel.Controller) *Settings {
	c := ctrl.Current()

	slider := func(i int, label string, b config.Bounds, v int) *widget.Slider {
		r := widget.Rect{X: config.SliderX, Y: config.SliderY + i*config.SliderSpacing, W: config.SliderWidth, H: config.SliderHeight}
		return widget.NewSlider(label, r, b.Min, b.Max, v)
	}

	names := make([]string, len(config.Styles))
	for i, st := range config.Styles {
		names[i] = string(st)
	}

	return &Settings{
		ctrl:      ctrl,
		size:      slider(0, "Size", config.SizeBounds, c.Size),
		gap:       slider(1, "Gap", config.GapBounds, c.Gap),
		thickness: slider(2, "Thickness", config.ThicknessBounds, c.Thickness),
		opacity:   slider(3, "Opacity", config.OpacityBounds, c.Opacity),
		styles: widget.NewChoice(names, widget.Rect{
			X: config.SliderX, Y: config.StyleSelectorY, W: config.SliderWidth, H: config.StyleSelectorHeight,
		}, c.Style.Index()),
		color: &widget.Button{Label: "Choose Color", Bounds: widget.Rect{
			X: config.ButtonX, Y: config.ColorButtonY, W: config.ButtonWidth, H: config.ButtonHeight,
		}},
		about: &widget.Button{Label: "About", Bounds: widget.Rect{
			X: config.ButtonX, Y: config.AboutButtonY, W: config.ButtonWidth, H: config.ButtonHeight,
		}},
	}
}

func (g *Settings) sliders() []*widget.Slider {
	return []*widget.Slider{g.size, g.gap, g.thickness, g.opacity}
}

// values reads every control, the way the panel reports a change.
func (g *Settings) values() panel.Values {
	v := panel.Values{
		Size:      g.size.Value,
		Gap:       g.gap.Value,
		Thickness: g.thickness.Value,
		Opacity:   g.opacity.Value,
		Style:     g.ctrl.Current().Style,
	}
	if i := g.styles.Selected; i >= 0 && i < len(config.Styles) {
		v.Style = config.Styles[i]
	}
	return v
}

func (g *Settings) Update() error {
	mouseX, mouseY := ebiten.CursorPosition()
	in := widget.Input{
		X:            mouseX,
		Y:            mouseY,
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}

	changed := false
	for _, s := range g.sliders() {
		if s.Handle(in) {
			changed = true
		}
	}
	if g.styles.Handle(in) {
		changed = true
	}
	if changed {
		// failures are logged, notified and shown on the status line
		_ = g.ctrl.Apply(g.values())
	}

	if g.color.Handle(in) {
		_ = g.ctrl.ChooseColor()
	}
	if g.about.Handle(in) {
		g.ctrl.About()
	}
	return nil
}

func (g *Settings) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, s := range g.sliders() {
		g.drawSlider(screen, s)
	}

	g.drawButton(screen, g.color)
	sx := g.color.Bounds.X + g.color.Bounds.W + 16
	sy := g.color.Bounds.Y + (g.color.Bounds.H-config.SwatchSize)/2
	vector.DrawFilledRect(screen, float32(sx), float32(sy), config.SwatchSize, config.SwatchSize, g.ctrl.Current().Color.NRGBA(), false)
	vector.StrokeRect(screen, float32(sx), float32(sy), config.SwatchSize, config.SwatchSize, 1, borderColor, false)
	ebitenutil.DebugPrintAt(screen, g.ctrl.Current().Color.Hex(), sx+config.SwatchSize+10, sy+10)

	g.drawStyles(screen)
	g.drawButton(screen, g.about)

	if err := g.ctrl.LastErr(); err != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+err.Error(), 12, config.SettingsHeight-18)
	}
}

func (g *Settings) drawSlider(screen *ebiten.Image, s *widget.Slider) {
	b := s.Bounds
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %d", s.Label, s.Value), b.X, b.Y-18)

	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), trackColor, false)
	fill := s.Fraction() * float64(b.W)
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(fill), float32(b.H), accentColor, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, borderColor, false)

	knobX := float32(float64(b.X) + fill)
	knobY := float32(b.Y) + float32(b.H)/2
	vector.DrawFilledCircle(screen, knobX, knobY, float32(b.H)/2+3, knobColor(s.Hovered, s.Dragging), true)
}

func (g *Settings) drawButton(screen *ebiten.Image, b *widget.Button) {
	r := b.Bounds
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), buttonColor(b.Hovered, b.Pressed), false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, borderColor, false)

	tx, ty := centerText(r, b.Label)
	ebitenutil.DebugPrintAt(screen, b.Label, tx, ty)
}

func (g *Settings) drawStyles(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "Style:", g.styles.Bounds.X, g.styles.Bounds.Y-18)
	for i, name := range g.styles.Options {
		r := g.styles.Cell(i)
		bg := buttonColor(i == g.styles.Hovered, false)
		if i == g.styles.Selected {
			bg = accentColor
		}
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bg, false)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, borderColor, false)

		tx, ty := centerText(r, name)
		ebitenutil.DebugPrintAt(screen, name, tx, ty)
	}
}

func (g *Settings) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.SettingsWidth, config.SettingsHeight
}

// RunSettings opens the settings window and blocks until the user closes it.
func RunSettings(g *Settings) error {
	ebiten.SetWindowSize(config.SettingsWidth, config.SettingsHeight)
	ebiten.SetWindowTitle(config.SettingsTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
