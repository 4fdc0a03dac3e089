package link

import (
	"errors"
	"io"
	"sync"

	"github.com/iburimskiy/crosshair-overlay/internal/config"
)

// Tap drains a Decoder on its own goroutine and keeps only the latest record
// so the render loop can pick it up between frames.
type Tap struct {
	Source  *Decoder
	latest  config.Crosshair
	version uint64
	closed  bool
	err     error
	mu      sync.RWMutex
}

func NewTap(src *Decoder, initial config.Crosshair) *Tap {
	return &Tap{
		Source: src,
		latest: initial,
	}
}

// Run reads until the source ends. It is meant to be started with go.
func (t *Tap) Run() {
	for {
		c, err := t.Source.Next()
		if err != nil {
			t.mu.Lock()
			t.closed = true
			if !errors.Is(err, io.EOF) {
				t.err = err
			}
			t.mu.Unlock()
			return
		}
		t.mu.Lock()
		t.latest = c
		t.version++
		t.mu.Unlock()
	}
}

// Snapshot returns the newest record, a counter that grows with every record
// received, and whether the source is still open.
func (t *Tap) Snapshot() (config.Crosshair, uint64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.latest, t.version, !t.closed
}

func (t *Tap) Err() error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.err
}
