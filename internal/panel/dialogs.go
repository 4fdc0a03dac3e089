package panel

import (
	"errors"

	"github.com/iburimskiy/crosshair-overlay/internal/config"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"
)

// NativeDialogs opens zenity dialogs.
type NativeDialogs struct{}

func (NativeDialogs) PickColor(current config.RGB) (config.RGB, error) {
	picked, err := zenity.SelectColor(
		zenity.Title("Choose Color"),
		zenity.Color(current.NRGBA()),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return current, ErrCanceled
		}
		return current, err
	}
	if picked == nil {
		return current, ErrCanceled
	}
	return config.FromColor(picked), nil
}

// ShowAbout runs the info dialog on its own goroutine so the panel keeps
// drawing while it is open.
func (NativeDialogs) ShowAbout() {
	go func() {
		err := zenity.Info(config.AboutText,
			zenity.Title(config.AboutTitle),
			zenity.InfoIcon,
		)
		if err != nil && !errors.Is(err, zenity.ErrCanceled) {
			zap.S().Warnw("about dialog failed", "error", err)
		}
	}()
}

func (NativeDialogs) Notify(err error) {
	if nerr := zenity.Notify(err.Error(), zenity.Title(config.OverlayTitle)); nerr != nil {
		zap.S().Warnw("notification failed", "error", nerr)
	}
}
