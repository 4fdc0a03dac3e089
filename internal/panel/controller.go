// Package panel holds the settings panel logic: it turns control values and
// dialog results into configuration updates.
package panel

import (
	"errors"
	"fmt"

	"github.com/iburimskiy/crosshair-overlay/internal/config"
	"go.uber.org/zap"
)

// ErrCanceled is returned by Dialogs.PickColor when the user dismisses the dialog.
var ErrCanceled = errors.New("dialog canceled")

// Dialogs are the native windows the panel opens.
type Dialogs interface {
	// PickColor blocks until the user confirms a color or cancels (ErrCanceled).
	PickColor(current config.RGB) (config.RGB, error)
	// ShowAbout opens the informational window without blocking.
	ShowAbout()
	// Notify reports a non-fatal failure to the user.
	Notify(err error)
}

// Values are the numeric and style controls of the panel.
type Values struct {
	Size      int
	Gap       int
	Thickness int
	Opacity   int
	Style     config.Style
}

// ValuesOf reads the control values out of c.
func ValuesOf(c config.Crosshair) Values {
	return Values{
		Size:      c.Size,
		Gap:       c.Gap,
		Thickness: c.Thickness,
		Opacity:   c.Opacity,
		Style:     c.Style,
	}
}

// Controller applies panel interactions to a config.State.
type Controller struct {
	state   *config.State
	dialogs Dialogs
	lastErr error
}

func NewController(state *config.State, dialogs Dialogs) *Controller {
	return &Controller{state: state, dialogs: dialogs}
}

// Current returns the configuration the panel is editing.
func (c *Controller) Current() config.Crosshair {
	return c.state.Current()
}

// LastErr is the most recent failure, cleared by the next successful apply.
func (c *Controller) LastErr() error {
	return c.lastErr
}

// Apply copies every control value into the configuration, which pushes it
// to the overlay and saves it.
func (c *Controller) Apply(v Values) error {
	return c.update(func(cfg *config.Crosshair) {
		cfg.Size = v.Size
		cfg.Gap = v.Gap
		cfg.Thickness = v.Thickness
		cfg.Opacity = v.Opacity
		cfg.Style = v.Style
	})
}

// ChooseColor opens the color dialog. A confirmed color is applied like any
// other control change; canceling leaves the configuration untouched.
func (c *Controller) ChooseColor() error {
	picked, err := c.dialogs.PickColor(c.state.Current().Color)
	if err != nil {
		if errors.Is(err, ErrCanceled) {
			zap.S().Debugw("color dialog canceled")
			return nil
		}
		return c.report(fmt.Errorf("color dialog failed: %w", err))
	}
	return c.update(func(cfg *config.Crosshair) {
		cfg.Color = picked
	})
}

// About opens the informational window.
func (c *Controller) About() {
	c.dialogs.ShowAbout()
}

func (c *Controller) update(fn func(*config.Crosshair)) error {
	if err := c.state.Update(fn); err != nil {
		return c.report(fmt.Errorf("failed to apply settings: %w", err))
	}
	c.lastErr = nil
	return nil
}

// report notifies once per distinct failure; a repeat of the previous error
// (a dead overlay link during a slider drag) is only logged at debug level.
func (c *Controller) report(err error) error {
	repeated := c.lastErr != nil && c.lastErr.Error() == err.Error()
	c.lastErr = err
	if repeated {
		zap.S().Debugw("settings change failed again", "error", err)
		return err
	}
	zap.S().Errorw("settings change failed", "error", err)
	c.dialogs.Notify(err)
	return err
}
