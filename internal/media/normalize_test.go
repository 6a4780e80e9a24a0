package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xwebp "golang.org/x/image/webp"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFit(t *testing.T) {
	tests := []struct {
		name      string
		w, h, max int
		wantW     int
		wantH     int
	}{
		{"small untouched", 300, 200, 1024, 300, 200},
		{"landscape", 2048, 1024, 1024, 1024, 512},
		{"portrait", 500, 2000, 1000, 250, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fit(image.NewRGBA(image.Rect(0, 0, tt.w, tt.h)), tt.max)
			assert.Equal(t, tt.wantW, got.Bounds().Dx())
			assert.Equal(t, tt.wantH, got.Bounds().Dy())
		})
	}
}

func TestNormalize_ProducesWebp(t *testing.T) {
	out, err := Normalize(bytes.NewReader(pngOf(t, 1500, 300)), 1000)
	require.NoError(t, err)

	cfg, err := xwebp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
}

func TestNormalize_RejectsGarbage(t *testing.T) {
	_, err := Normalize(strings.NewReader("definitely not an image"), MaxEdge)
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestNormalize_RejectsOversized(t *testing.T) {
	_, err := Normalize(bytes.NewReader(make([]byte, MaxUploadBytes+1)), MaxEdge)
	assert.ErrorIs(t, err, ErrImageTooLarge)
}
