package preset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/rawpaint"
)

const sampleScript = `
width = 64
height = 32
background = "#000000"

[[stroke]]
operation = "replace"
color = "#ff0000"
brush = { size = 1, smooth = false, energy_conservative = false }
points = [[0.0, 0.5], [1.0, 0.5]]

[[stroke]]
brush = { size = 5, intensity = 1.0, smooth = false, energy_conservative = false }
points = [[0.5, 0.0]]
`

func TestDecodeScript(t *testing.T) {
	s, err := DecodeScript(strings.NewReader(sampleScript), ".")
	require.NoError(t, err)
	assert.Equal(t, 64, s.Width)
	assert.Equal(t, 32, s.Height)
	require.Len(t, s.Strokes, 2)
	assert.Equal(t, rawpaint.Replace, s.Strokes[0].Preset.Operation)
	assert.Equal(t, rawpaint.Add, s.Strokes[1].Preset.Operation)
	assert.Equal(t, float32(5), s.Strokes[1].Preset.Brush.Size)
}

func TestScriptRender(t *testing.T) {
	s, err := DecodeScript(strings.NewReader(sampleScript), ".")
	require.NoError(t, err)

	c := s.Render()
	require.Equal(t, 64, c.Width())

	// Replace line across row 16 (round(0.5*32)).
	for x := 0; x < 64; x++ {
		assert.Equal(t, rawpaint.Red, c.GetPixel(x, 16), "x=%d", x)
	}
	assert.Equal(t, rawpaint.Black, c.GetPixel(10, 10))

	// Dot at (32, 0): white added to black.
	got := c.GetPixel(32, 1)
	assert.InDelta(t, 1, got.R, 1e-6)
	assert.InDelta(t, 2, got.A, 1e-6, "alpha adds too")
}

func TestScriptPresetReference(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "p.toml"), []byte(sampleFile), 0o644))
	src := "presets = \"p.toml\"\n[[stroke]]\npreset = \"soft\"\npoints = [[0.2, 0.2]]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "s.toml"), []byte(src), 0o644))

	s, err := LoadScript(filepath.Join(dir, "s.toml"))
	require.NoError(t, err)
	require.Len(t, s.Strokes, 1)
	assert.Equal(t, "soft", s.Strokes[0].Preset.Name)

	bad := "[[stroke]]\npreset = \"nope\"\npoints = [[0.2, 0.2]]\n"
	_, err = DecodeScript(strings.NewReader(bad), dir)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = DecodeScript(strings.NewReader("[[stroke]]\npoints = []\n"), dir)
	assert.ErrorIs(t, err, ErrInvalid)
}
