// Package placeholder renders the solid-color stand-in image shown for image requests.
package placeholder

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
)

const (
	DefaultWidth  = 200
	DefaultHeight = 200
	MIMEType      = "image/png"
)

// DefaultColor is the fill used for the chat placeholder.
var DefaultColor = color.RGBA{R: 73, G: 109, B: 137, A: 255}

// PNG encodes a width×height image filled with c.
func PNG(width, height int, c color.Color) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("placeholder: invalid size %dx%d", width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("placeholder: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURI wraps PNG bytes so they can be embedded in an <img> tag.
func DataURI(pngBytes []byte) string {
	return "data:" + MIMEType + ";base64," + base64.StdEncoding.EncodeToString(pngBytes)
}
