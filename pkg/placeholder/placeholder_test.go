package placeholder_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"ai-chat-bot/pkg/placeholder"
)

func TestPNG(t *testing.T) {
	data, err := placeholder.PNG(placeholder.DefaultWidth, placeholder.DefaultHeight, placeholder.DefaultColor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != 200 || b.Dy() != 200 {
		t.Fatalf("expected 200x200, got %dx%d", b.Dx(), b.Dy())
	}

	want := placeholder.DefaultColor
	for _, p := range [][2]int{{0, 0}, {199, 199}, {100, 37}} {
		r, g, bl, a := img.At(p[0], p[1]).RGBA()
		if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(bl>>8) != want.B || uint8(a>>8) != want.A {
			t.Errorf("pixel %v is not the fill color", p)
		}
	}
}

func TestPNG_InvalidSize(t *testing.T) {
	if _, err := placeholder.PNG(0, 10, placeholder.DefaultColor); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestDataURI(t *testing.T) {
	uri := placeholder.DataURI([]byte{1, 2, 3})
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Fatalf("unexpected prefix: %s", uri)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	if err != nil || !bytes.Equal(raw, []byte{1, 2, 3}) {
		t.Errorf("payload did not round-trip: %v %v", raw, err)
	}
}
