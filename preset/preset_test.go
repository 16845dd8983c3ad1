package preset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/rawpaint"
)

const sampleFile = `
default = "eraser"

[[preset]]
name = "soft"
color = "#ff8000"
[preset.brush]
size = 40
intensity = 0.05
coarse = 2

[[preset]]
name = "eraser"
operation = "subtract"
[preset.brush]
size = 500
smooth = false
energy_conservative = false
`

func TestDecode(t *testing.T) {
	f, err := Decode(strings.NewReader(sampleFile))
	require.NoError(t, err)
	require.Len(t, f.Presets, 2)

	soft, err := f.Lookup("soft")
	require.NoError(t, err)
	assert.Equal(t, float32(40), soft.Brush.Size)
	assert.Equal(t, float32(0.05), soft.Brush.Intensity)
	assert.Equal(t, float32(2), soft.Brush.Coarse)
	assert.True(t, soft.Brush.Smooth, "unset fields come from the default brush")
	assert.True(t, soft.Brush.EnergyConservative)
	assert.Equal(t, rawpaint.Add, soft.Operation)
	assert.True(t, soft.Color.ApproxEqual(rawpaint.RGBA{R: 1, G: 128.0 / 255, B: 0, A: 1}, 1e-6))

	eraser := f.Selected()
	assert.Equal(t, "eraser", eraser.Name)
	assert.Equal(t, rawpaint.Subtract, eraser.Operation)
	assert.Equal(t, float32(rawpaint.MaxBrushSize), eraser.Brush.Size, "size is clamped")
	assert.False(t, eraser.Brush.Smooth)
	assert.Equal(t, rawpaint.White, eraser.Color)

	_, err = f.Lookup("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDecodeInvalid(t *testing.T) {
	tests := map[string]string{
		"no name":       "[[preset]]\ncolor = \"#fff\"\n",
		"duplicate":     "[[preset]]\nname = \"a\"\n[[preset]]\nname = \"a\"\n",
		"bad default":   "default = \"x\"\n[[preset]]\nname = \"a\"\n",
		"bad operation": "[[preset]]\nname = \"a\"\noperation = \"multiply\"\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(src))
			assert.Error(t, err)
		})
	}

	_, err := Decode(strings.NewReader("[[preset]]\ncolor = \"#fff\"\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "presets.toml")
	want := &File{
		Default: "b",
		Presets: []Preset{
			{Name: "a", Brush: rawpaint.DefaultBrush(), Operation: rawpaint.Replace, Color: rawpaint.Black},
			{Name: "b", Brush: rawpaint.Brush{Size: 10, Intensity: 0.5, Coarse: 3, Noise: 0.25}, Operation: rawpaint.Subtract, Color: rawpaint.Red},
		},
	}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSelectedFallbacks(t *testing.T) {
	var nilFile *File
	assert.Equal(t, Default(), nilFile.Selected())
	assert.Equal(t, Default(), (&File{}).Selected())

	f := &File{Presets: []Preset{{Name: "first"}, {Name: "second"}}}
	assert.Equal(t, "first", f.Selected().Name)
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[preset]]\nname = \"one\"\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloads := make(chan *File, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(f *File, err error) {
			if err != nil {
				return
			}
			select {
			case reloads <- f:
			default:
			}
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("[[preset]]\nname = \"two\"\n"), 0o644))

	// A truncating write may surface as several events; wait for the
	// reload that sees the new content.
	deadline := time.After(5 * time.Second)
	for reloaded := false; !reloaded; {
		select {
		case f := <-reloads:
			reloaded = len(f.Presets) == 1 && f.Presets[0].Name == "two"
		case <-deadline:
			t.Fatal("no reload after write")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
