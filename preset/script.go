package preset

import (
	"bytes"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/rawpaint"
)

// Script is a list of strokes to paint onto a fresh canvas.
//
//	width = 256
//	height = 256
//	background = "#000000"
//	seed = 7
//
//	[[stroke]]
//	preset = "soft"
//	points = [[0.1, 0.1], [0.9, 0.5]]
//
//	[[stroke]]
//	operation = "replace"
//	color = "#ff0000"
//	brush = { size = 3, smooth = false }
//	points = [[0.5, 0.0], [0.5, 1.0]]
type Script struct {
	Width      int
	Height     int
	Background rawpaint.RGBA
	Seed       uint64
	Presets    *File
	Strokes    []Stroke
}

// Stroke is one polyline in normalized canvas coordinates painted with a
// single brush.
type Stroke struct {
	Preset Preset
	Points [][2]float32
}

type rawStroke struct {
	Preset    string              `toml:"preset"`
	Brush     *rawBrush           `toml:"brush"`
	Operation *rawpaint.Operation `toml:"operation"`
	Color     *rawpaint.RGBA      `toml:"color"`
	Points    [][2]float32        `toml:"points"`
}

type rawScript struct {
	Width      int            `toml:"width"`
	Height     int            `toml:"height"`
	Background *rawpaint.RGBA `toml:"background"`
	Seed       uint64         `toml:"seed"`
	Presets    string         `toml:"presets"`
	Strokes    []rawStroke    `toml:"stroke"`
}

// DecodeScript reads a stroke script. Relative preset-file paths are
// resolved against dir. Missing width and height default to 256.
func DecodeScript(r io.Reader, dir string) (*Script, error) {
	var raw rawScript
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("preset: decode script: %w", err)
	}

	s := &Script{
		Width:      raw.Width,
		Height:     raw.Height,
		Background: rawpaint.Transparent,
		Seed:       raw.Seed,
		Presets:    &File{},
	}
	if s.Width <= 0 {
		s.Width = 256
	}
	if s.Height <= 0 {
		s.Height = 256
	}
	if raw.Background != nil {
		s.Background = *raw.Background
	}
	if raw.Presets != "" {
		path := raw.Presets
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		f, err := Load(path)
		if err != nil {
			return nil, err
		}
		s.Presets = f
	}

	for i, rs := range raw.Strokes {
		base := Default()
		if rs.Preset != "" {
			p, err := s.Presets.Lookup(rs.Preset)
			if err != nil {
				return nil, fmt.Errorf("preset: stroke %d: %w", i, err)
			}
			base = p
		}
		if rs.Brush != nil {
			base.Brush = rs.Brush.resolve()
		}
		if rs.Operation != nil {
			base.Operation = *rs.Operation
		}
		if rs.Color != nil {
			base.Color = *rs.Color
		}
		if len(rs.Points) == 0 {
			return nil, fmt.Errorf("%w: stroke %d has no points", ErrInvalid, i)
		}
		s.Strokes = append(s.Strokes, Stroke{Preset: base, Points: rs.Points})
	}
	return s, nil
}

// LoadScript reads a stroke script from disk.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("preset: read script: %w", err)
	}
	return DecodeScript(bytes.NewReader(data), filepath.Dir(path))
}

// Render paints the script onto a new canvas. A single-point stroke stamps
// one dot; longer strokes paint each segment in order.
func (s *Script) Render() *rawpaint.Canvas {
	c := rawpaint.NewCanvas(s.Width, s.Height)
	c.Clear(s.Background)

	rng := rand.New(rand.NewPCG(s.Seed, s.Seed^0x9e3779b97f4a7c15)) //nolint:gosec // reproducible brush noise
	p := rawpaint.NewPainter(c, rawpaint.WithRand(rng))

	for _, st := range s.Strokes {
		p.SetBrush(st.Preset.Brush)
		col := st.Preset.Color.Scale(st.Preset.Brush.Intensity)
		if st.Preset.Operation == rawpaint.Replace {
			col = st.Preset.Color
		}

		pts := st.Points
		if len(pts) == 1 {
			p.DrawLineUV(pts[0][0], pts[0][1], pts[0][0], pts[0][1], col, st.Preset.Operation)
			continue
		}
		for i := 1; i < len(pts); i++ {
			p.DrawLineUV(pts[i-1][0], pts[i-1][1], pts[i][0], pts[i][1], col, st.Preset.Operation)
		}
	}
	return c
}
