package widget

// Rect is an integer screen rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Input is the mouse state for one frame.
type Input struct {
	X, Y         int
	JustPressed  bool
	JustReleased bool
}

// Button fires on release when the press also started on it.
type Button struct {
	Label   string
	Bounds  Rect
	Hovered bool
	Pressed bool
}

// Handle updates hover and press state and reports a click.
func (b *Button) Handle(in Input) bool {
	b.Hovered = b.Bounds.Contains(in.X, in.Y)
	if b.Hovered && in.JustPressed {
		b.Pressed = true
	}
	clicked := false
	if in.JustReleased {
		clicked = b.Pressed && b.Hovered
		b.Pressed = false
	}
	return clicked
}

// Slider is a horizontal integer slider. Its value never leaves [Min, Max].
type Slider struct {
	Label    string
	Bounds   Rect
	Min, Max int
	Value    int
	Hovered  bool
	Dragging bool
}

func NewSlider(label string, bounds Rect, min, max, value int) *Slider {
	s := &Slider{Label: label, Bounds: bounds, Min: min, Max: max}
	s.Value = s.clamp(value)
	return s
}

func (s *Slider) clamp(v int) int {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// ValueAt maps a cursor x position to a slider value.
func (s *Slider) ValueAt(x int) int {
	if s.Max <= s.Min || s.Bounds.W <= 0 {
		return s.Min
	}
	frac := clamp01(float64(x-s.Bounds.X) / float64(s.Bounds.W))
	return s.clamp(s.Min + int(frac*float64(s.Max-s.Min)+0.5))
}

// Fraction is the knob position in [0, 1].
func (s *Slider) Fraction() float64 {
	if s.Max <= s.Min {
		return 0
	}
	return clamp01(float64(s.Value-s.Min) / float64(s.Max-s.Min))
}

// SetValue moves the knob without reporting a change.
func (s *Slider) SetValue(v int) {
	s.Value = s.clamp(v)
}

// Handle starts a drag on press inside the track, follows the cursor while
// dragging and reports whether the integer value changed this frame.
func (s *Slider) Handle(in Input) bool {
	s.Hovered = s.Bounds.Contains(in.X, in.Y)
	if s.Hovered && in.JustPressed {
		s.Dragging = true
	}
	changed := false
	if s.Dragging {
		if v := s.ValueAt(in.X); v != s.Value {
			s.Value = v
			changed = true
		}
	}
	if in.JustReleased {
		s.Dragging = false
	}
	return changed
}

// Choice is a row of mutually exclusive options.
type Choice struct {
	Options  []string
	Bounds   Rect
	Selected int
	Hovered  int
	pressed  int
}

func NewChoice(options []string, bounds Rect, selected int) *Choice {
	return &Choice{Options: options, Bounds: bounds, Selected: selected, Hovered: -1, pressed: -1}
}

// Cell returns the rectangle of option i.
func (c *Choice) Cell(i int) Rect {
	n := len(c.Options)
	if n == 0 {
		return Rect{}
	}
	w := c.Bounds.W / n
	return Rect{X: c.Bounds.X + i*w, Y: c.Bounds.Y, W: w, H: c.Bounds.H}
}

// IndexAt returns the option under (x, y), or -1.
func (c *Choice) IndexAt(x, y int) int {
	for i := range c.Options {
		if c.Cell(i).Contains(x, y) {
			return i
		}
	}
	return -1
}

// Handle selects the option clicked this frame and reports a change of selection.
func (c *Choice) Handle(in Input) bool {
	c.Hovered = c.IndexAt(in.X, in.Y)
	if in.JustPressed {
		c.pressed = c.Hovered
	}
	changed := false
	if in.JustReleased {
		if c.pressed >= 0 && c.pressed == c.Hovered && c.pressed != c.Selected {
			c.Selected = c.pressed
			changed = true
		}
		c.pressed = -1
	}
	return changed
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
