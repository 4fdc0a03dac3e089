package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// DefaultPath is where the configuration lives when no other path is given.
const DefaultPath = "crosshair_config.json"

// ErrMalformed is returned by Load when the file exists but is not a JSON object.
var ErrMalformed = errors.New("malformed configuration")

// FieldIssue describes a field that Decode had to default or clamp.
type FieldIssue struct {
	Field  string
	Reason string
}

// Decode reads a JSON object into a Crosshair field by field. Missing or
// unreadable fields fall back to Default and out-of-range numbers are clamped;
// each such replacement is reported as a FieldIssue. Only input that is not a
// JSON object at all yields an error.
func Decode(data []byte) (Crosshair, []FieldIssue, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Default(), nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if raw == nil {
		return Default(), nil, fmt.Errorf("%w: not an object", ErrMalformed)
	}

	def := Default()
	c := def
	var issues []FieldIssue

	lookup := func(key string) (json.RawMessage, bool) {
		msg, ok := raw[key]
		if !ok || string(msg) == "null" {
			issues = append(issues, FieldIssue{Field: key, Reason: "missing"})
			return nil, false
		}
		return msg, true
	}

	// dst already holds the default
	intField := func(key string, dst *int, b Bounds) {
		msg, ok := lookup(key)
		if !ok {
			return
		}
		var v int
		if err := json.Unmarshal(msg, &v); err != nil {
			issues = append(issues, FieldIssue{Field: key, Reason: err.Error()})
			return
		}
		if !b.Contains(v) {
			issues = append(issues, FieldIssue{Field: key, Reason: fmt.Sprintf("%d out of range [%d, %d]", v, b.Min, b.Max)})
			v = b.Clamp(v)
		}
		*dst = v
	}
	intField("size", &c.Size, SizeBounds)
	intField("gap", &c.Gap, GapBounds)
	intField("thickness", &c.Thickness, ThicknessBounds)
	intField("opacity", &c.Opacity, OpacityBounds)

	if msg, ok := lookup("color"); ok {
		if err := json.Unmarshal(msg, &c.Color); err != nil {
			c.Color = def.Color
			issues = append(issues, FieldIssue{Field: "color", Reason: err.Error()})
		}
	}

	if msg, ok := lookup("style"); ok {
		if err := json.Unmarshal(msg, &c.Style); err != nil {
			c.Style = def.Style
			issues = append(issues, FieldIssue{Field: "style", Reason: err.Error()})
		}
	}

	return c, issues, nil
}

// Encode renders c the way it is written to disk.
func Encode(c Crosshair) ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Store reads and writes the configuration file.
type Store struct {
	Path string
}

func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{Path: path}
}

// Load reads the configuration. A missing file yields Default with no error.
// A file that is not a JSON object yields Default and an error wrapping
// ErrMalformed so the caller can warn and carry on.
func (s *Store) Load() (Crosshair, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			zap.S().Infow("no config file found, using defaults", "path", s.Path)
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file %s: %w", s.Path, err)
	}

	c, issues, err := Decode(data)
	if err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", s.Path, err)
	}
	for _, is := range issues {
		zap.S().Warnw("config field replaced", "path", s.Path, "field", is.Field, "reason", is.Reason)
	}
	return c, nil
}

// Save overwrites the file with c.
func (s *Store) Save(c Crosshair) error {
	data, err := Encode(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", s.Path, err)
	}
	zap.S().Debugw("config saved", "path", s.Path)
	return nil
}

// ConfigChanged persists every change published by a State.
func (s *Store) ConfigChanged(c Crosshair) error {
	return s.Save(c)
}
