package panel

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/crosshair-overlay/internal/config"
	"github.com/iburimskiy/crosshair-overlay/internal/link"
	"github.com/stretchr/testify/require"
)

type fakeDialogs struct {
	pick      config.RGB
	pickErr   error
	aboutOpen int
	notified  []error
}

func (f *fakeDialogs) PickColor(current config.RGB) (config.RGB, error) {
	if f.pickErr != nil {
		return current, f.pickErr
	}
	return f.pick, nil
}

func (f *fakeDialogs) ShowAbout() { f.aboutOpen++ }

func (f *fakeDialogs) Notify(err error) { f.notified = append(f.notified, err) }

type recorder struct {
	got []config.Crosshair
}

func (r *recorder) ConfigChanged(c config.Crosshair) error {
	r.got = append(r.got, c)
	return nil
}

func setup(t *testing.T, dialogs Dialogs) (*Controller, *config.Store, *recorder) {
	t.Helper()
	store := config.NewStore(filepath.Join(t.TempDir(), "crosshair_config.json"))
	c, err := store.Load()
	require.NoError(t, err)

	state := config.NewState(c)
	overlay := &recorder{}
	state.Subscribe(overlay)
	state.Subscribe(store)
	return NewController(state, dialogs), store, overlay
}

func TestApply_SizeSliderRedrawsAndSaves(t *testing.T) {
	ctrl, store, overlay := setup(t, &fakeDialogs{})

	v := ValuesOf(ctrl.Current())
	require.Equal(t, 10, v.Size)
	v.Size = 50
	require.NoError(t, ctrl.Apply(v))

	require.Len(t, overlay.got, 1)
	require.Equal(t, 50, overlay.got[0].Size)

	onDisk, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, 50, onDisk.Size)
	require.Equal(t, ctrl.Current(), onDisk)
}

func TestApply_StyleDot(t *testing.T) {
	ctrl, store, overlay := setup(t, &fakeDialogs{})

	v := ValuesOf(ctrl.Current())
	v.Style = config.StyleDot
	require.NoError(t, ctrl.Apply(v))

	require.Equal(t, config.StyleDot, overlay.got[0].Style)
	onDisk, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, config.StyleDot, onDisk.Style)
}

func TestChooseColor_Confirmed(t *testing.T) {
	red := config.RGB{R: 0xFF}
	ctrl, store, overlay := setup(t, &fakeDialogs{pick: red})

	require.NoError(t, ctrl.ChooseColor())
	require.Equal(t, red, ctrl.Current().Color)
	require.Equal(t, red, overlay.got[0].Color)

	onDisk, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, red, onDisk.Color)
}

func TestChooseColor_CanceledChangesNothing(t *testing.T) {
	dialogs := &fakeDialogs{pick: config.RGB{R: 0xFF}, pickErr: ErrCanceled}
	ctrl, store, overlay := setup(t, dialogs)
	before := ctrl.Current()

	require.NoError(t, ctrl.ChooseColor())
	require.Equal(t, before, ctrl.Current())
	require.Empty(t, overlay.got)
	require.Empty(t, dialogs.notified)

	_, err := os.Stat(store.Path)
	require.True(t, os.IsNotExist(err), "canceled dialog must not write the file")
}

func TestChooseColor_DialogFailureIsReported(t *testing.T) {
	dialogs := &fakeDialogs{pickErr: errors.New("no display")}
	ctrl, _, overlay := setup(t, dialogs)
	before := ctrl.Current()

	require.Error(t, ctrl.ChooseColor())
	require.Equal(t, before, ctrl.Current())
	require.Empty(t, overlay.got)
	require.Len(t, dialogs.notified, 1)
	require.Error(t, ctrl.LastErr())
}

func TestApply_SaveFailureIsNotFatal(t *testing.T) {
	dialogs := &fakeDialogs{}
	state := config.NewState(config.Default())
	overlay := &recorder{}
	state.Subscribe(overlay)
	state.Subscribe(config.NewStore(filepath.Join(t.TempDir(), "missing", "crosshair_config.json")))
	ctrl := NewController(state, dialogs)

	v := ValuesOf(ctrl.Current())
	v.Gap = 20
	err := ctrl.Apply(v)
	require.Error(t, err)

	// the overlay still got the change and the panel keeps the new value
	require.Equal(t, 20, overlay.got[0].Gap)
	require.Equal(t, 20, ctrl.Current().Gap)
	require.Len(t, dialogs.notified, 1)
	require.Equal(t, err, ctrl.LastErr())
}

func TestApply_OutOfRangeIsClamped(t *testing.T) {
	ctrl, _, overlay := setup(t, &fakeDialogs{})

	require.NoError(t, ctrl.Apply(Values{Size: 1000, Gap: -1, Thickness: 0, Opacity: 1, Style: "Triangle"}))
	got := overlay.got[0]
	require.Equal(t, 100, got.Size)
	require.Equal(t, 0, got.Gap)
	require.Equal(t, 1, got.Thickness)
	require.Equal(t, 10, got.Opacity)
	require.Equal(t, config.StyleClassic, got.Style)
}

func TestAbout_DoesNotTouchConfig(t *testing.T) {
	dialogs := &fakeDialogs{}
	ctrl, _, overlay := setup(t, dialogs)
	before := ctrl.Current()

	ctrl.About()
	require.Equal(t, 1, dialogs.aboutOpen)
	require.Equal(t, before, ctrl.Current())
	require.Empty(t, overlay.got)
}

func TestApply_BrokenOverlayLinkNotifiesOnce(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	require.NoError(t, r.Close())
	defer w.Close()

	dialogs := &fakeDialogs{}
	state := config.NewState(config.Default())
	state.Subscribe(link.NewPublisher(w))
	store := config.NewStore(filepath.Join(t.TempDir(), "crosshair_config.json"))
	state.Subscribe(store)
	ctrl := NewController(state, dialogs)

	// one drag of the size slider
	v := ValuesOf(ctrl.Current())
	for size := 11; size <= 50; size++ {
		v.Size = size
		require.Error(t, ctrl.Apply(v))
	}
	require.Len(t, dialogs.notified, 1)
	require.Error(t, ctrl.LastErr())

	// the file still follows the drag
	onDisk, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, 50, onDisk.Size)
}

func TestApply_NotifiesAgainAfterRecovery(t *testing.T) {
	dialogs := &fakeDialogs{}
	state := config.NewState(config.Default())
	failing := true
	state.Subscribe(config.ListenerFunc(func(config.Crosshair) error {
		if failing {
			return errors.New("disk full")
		}
		return nil
	}))
	ctrl := NewController(state, dialogs)

	v := ValuesOf(ctrl.Current())
	v.Gap = 5
	require.Error(t, ctrl.Apply(v))
	v.Gap = 6
	require.Error(t, ctrl.Apply(v))
	require.Len(t, dialogs.notified, 1)

	failing = false
	v.Gap = 7
	require.NoError(t, ctrl.Apply(v))
	require.NoError(t, ctrl.LastErr())

	failing = true
	v.Gap = 8
	require.Error(t, ctrl.Apply(v))
	require.Len(t, dialogs.notified, 2)
}
