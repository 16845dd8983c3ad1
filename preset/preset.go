package preset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/rawpaint"
)

// Errors returned by preset files.
var (
	// ErrNotFound is returned by Lookup for an unknown preset name.
	ErrNotFound = errors.New("preset: not found")

	// ErrInvalid is returned when a preset file is structurally invalid.
	ErrInvalid = errors.New("preset: invalid file")
)

// Preset is a named brush with the color and operation it paints with.
type Preset struct {
	Name      string             `toml:"name"`
	Brush     rawpaint.Brush     `toml:"brush"`
	Operation rawpaint.Operation `toml:"operation"`
	Color     rawpaint.RGBA      `toml:"color"`
}

// File is the content of a preset file.
type File struct {
	// Default names the preset selected at startup. Empty selects the first.
	Default string   `toml:"default,omitempty"`
	Presets []Preset `toml:"preset"`
}

// rawBrush mirrors rawpaint.Brush with optional fields so unset keys can
// fall back to the default brush.
type rawBrush struct {
	Size               *float32 `toml:"size"`
	Intensity          *float32 `toml:"intensity"`
	Smooth             *bool    `toml:"smooth"`
	EnergyConservative *bool    `toml:"energy_conservative"`
	Coarse             *float32 `toml:"coarse"`
	Noise              *float32 `toml:"noise"`
}

func (r *rawBrush) resolve() rawpaint.Brush {
	b := rawpaint.DefaultBrush()
	if r == nil {
		return b
	}
	if r.Size != nil {
		b.Size = *r.Size
	}
	if r.Intensity != nil {
		b.Intensity = *r.Intensity
	}
	if r.Smooth != nil {
		b.Smooth = *r.Smooth
	}
	if r.EnergyConservative != nil {
		b.EnergyConservative = *r.EnergyConservative
	}
	if r.Coarse != nil {
		b.Coarse = *r.Coarse
	}
	if r.Noise != nil {
		b.Noise = *r.Noise
	}
	return b.Validate()
}

type rawPreset struct {
	Name      string              `toml:"name"`
	Brush     *rawBrush           `toml:"brush"`
	Operation *rawpaint.Operation `toml:"operation"`
	Color     *rawpaint.RGBA      `toml:"color"`
}

func (r rawPreset) resolve() Preset {
	p := Preset{
		Name:      r.Name,
		Brush:     r.Brush.resolve(),
		Operation: rawpaint.Add,
		Color:     rawpaint.White,
	}
	if r.Operation != nil {
		p.Operation = *r.Operation
	}
	if r.Color != nil {
		p.Color = *r.Color
	}
	return p
}

type rawFile struct {
	Default string      `toml:"default"`
	Presets []rawPreset `toml:"preset"`
}

// Decode reads a preset file from r.
func Decode(r io.Reader) (*File, error) {
	var raw rawFile
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("preset: decode: %w", err)
	}

	f := &File{Default: raw.Default, Presets: make([]Preset, 0, len(raw.Presets))}
	seen := make(map[string]bool, len(raw.Presets))
	for i, rp := range raw.Presets {
		if rp.Name == "" {
			return nil, fmt.Errorf("%w: preset %d has no name", ErrInvalid, i)
		}
		if seen[rp.Name] {
			return nil, fmt.Errorf("%w: duplicate preset %q", ErrInvalid, rp.Name)
		}
		seen[rp.Name] = true
		f.Presets = append(f.Presets, rp.resolve())
	}
	if f.Default != "" && !seen[f.Default] {
		return nil, fmt.Errorf("%w: default preset %q is not defined", ErrInvalid, f.Default)
	}
	return f, nil
}

// Load reads a preset file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("preset: read file: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Save writes f to path, creating parent directories as needed.
func Save(path string, f *File) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(f); err != nil {
		return fmt.Errorf("preset: encode: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("preset: create dir: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // preset files are not secret
		return fmt.Errorf("preset: write file: %w", err)
	}
	return nil
}

// Lookup returns the preset with the given name.
func (f *File) Lookup(name string) (Preset, error) {
	for _, p := range f.Presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Selected returns the default preset, the first one when no default is
// set, or a preset built from rawpaint.DefaultBrush when f has none.
func (f *File) Selected() Preset {
	if f != nil && f.Default != "" {
		if p, err := f.Lookup(f.Default); err == nil {
			return p
		}
	}
	if f != nil && len(f.Presets) > 0 {
		return f.Presets[0]
	}
	return Default()
}

// Default returns the built-in preset: the default brush adding white.
func Default() Preset {
	return Preset{
		Name:      "default",
		Brush:     rawpaint.DefaultBrush(),
		Operation: rawpaint.Add,
		Color:     rawpaint.White,
	}
}
