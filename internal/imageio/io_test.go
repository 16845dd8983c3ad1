package imageio

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 40), B: 200, A: 255})
		}
	}
	return img
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"png", PNG},
		{".PNG", PNG},
		{"jpg", JPEG},
		{"jpeg", JPEG},
		{"bmp", BMP},
		{"tif", TIFF},
		{".tiff", TIFF},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFormat("gif")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestEncodeDecodeLossless(t *testing.T) {
	src := testImage()
	for _, f := range []Format{PNG, BMP, TIFF} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, src, f))

			got, err := DecodeBytes(buf.Bytes())
			require.NoError(t, err)
			assert.Equal(t, src.Bounds(), got.Bounds())

			for y := 0; y < 6; y++ {
				for x := 0; x < 8; x++ {
					want := src.NRGBAAt(x, y)
					gotc := color.NRGBAModel.Convert(got.At(x, y)).(color.NRGBA)
					if want != gotc {
						t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, gotc, want)
					}
				}
			}
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	_, err := DecodeBytes(nil)
	assert.ErrorIs(t, err, ErrEmptyData)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bmp")
	require.NoError(t, Save(path, testImage()))

	img, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())

	err = Save(filepath.Join(dir, "out.gif"), testImage())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAutoName(t *testing.T) {
	ts := time.Date(2026, 1, 17, 15, 30, 0, 0, time.UTC)
	got := AutoName("shots", "canvas", PNG, ts)
	assert.Equal(t, filepath.Join("shots", "canvas_20260117_153000.000.png"), got)

	got = AutoName("", "", JPEG, ts)
	assert.True(t, strings.HasPrefix(got, "image_"))
	assert.True(t, strings.HasSuffix(got, ".jpg"))
}

func TestSaveAuto(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	path, err := SaveAuto(dir, "canvas", testImage(), TIFF)
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Equal(t, ".tiff", filepath.Ext(path))
}
