// Package media turns uploaded pictures into bounded webp files and
// stores them in object storage.
package media

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/BruksfildServices01/traineme-api/internal/httperr"
)

const (
	MaxUploadBytes = 5 << 20
	MaxEdge        = 1024
	ContentType    = "image/webp"
	quality        = 80
)

var (
	ErrUnsupportedImage = httperr.Validation("unsupported_image", "Upload a JPEG, PNG, GIF or WebP image.")
	ErrImageTooLarge    = httperr.Validation("image_too_large", "Images must not exceed 5 MiB.")
)

// Normalize decodes r, shrinks it so the long edge is at most maxEdge and
// re-encodes it as webp.
func Normalize(r io.Reader, maxEdge int) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, err
	}
	if len(raw) > MaxUploadBytes {
		return nil, ErrImageTooLarge
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrUnsupportedImage
	}

	img := Fit(src, maxEdge)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Fit scales src down to fit a maxEdge square, keeping the aspect ratio.
// Smaller images are returned as is.
func Fit(src image.Image, maxEdge int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxEdge && h <= maxEdge {
		return src
	}

	if w >= h {
		h = h * maxEdge / w
		w = maxEdge
	} else {
		w = w * maxEdge / h
		h = maxEdge
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
