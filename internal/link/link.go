// Package link carries configuration changes from the settings process to the
// overlay process as newline-delimited JSON.
package link

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/iburimskiy/crosshair-overlay/internal/config"
	"go.uber.org/zap"
)

// Publisher writes every configuration change as one JSON line.
type Publisher struct {
	w   io.WriteCloser
	enc *json.Encoder
}

func NewPublisher(w io.WriteCloser) *Publisher {
	return &Publisher{w: w, enc: json.NewEncoder(w)}
}

func (p *Publisher) ConfigChanged(c config.Crosshair) error {
	if err := p.enc.Encode(c); err != nil {
		return fmt.Errorf("failed to send config to overlay: %w", err)
	}
	return nil
}

// Close ends the stream; the overlay exits when it sees EOF.
func (p *Publisher) Close() error {
	return p.w.Close()
}

// Decoder reads records written by a Publisher.
type Decoder struct {
	sc *bufio.Scanner
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{sc: bufio.NewScanner(r)}
}

// Next returns the next record. Fields are defaulted and clamped the same way
// as the config file. io.EOF marks the end of the stream.
func (d *Decoder) Next() (config.Crosshair, error) {
	for d.sc.Scan() {
		line := d.sc.Bytes()
		if len(line) == 0 {
			continue
		}
		c, issues, err := config.Decode(line)
		if err != nil {
			zap.S().Warnw("dropping unreadable config line", "error", err)
			continue
		}
		for _, is := range issues {
			zap.S().Warnw("config field replaced", "field", is.Field, "reason", is.Reason)
		}
		return c, nil
	}
	if err := d.sc.Err(); err != nil {
		return config.Crosshair{}, err
	}
	return config.Crosshair{}, io.EOF
}
