package imagegen

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"sync"
)

// Placeholder dimensions match generated card art
const (
	PlaceholderWidth  = 512
	PlaceholderHeight = 768
	placeholderInset  = 20
)

var placeholderCache sync.Map // hue -> data URL

// Placeholder returns a PNG data URL whose color is derived from seed.
// The same seed always yields the same image.
func Placeholder(seed string) string {
	hue := placeholderHue(seed)
	if cached, ok := placeholderCache.Load(hue); ok {
		return cached.(string)
	}

	img := image.NewRGBA(image.Rect(0, 0, PlaceholderWidth, PlaceholderHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(hslToRGB(float64(hue), 0.7, 0.3)), image.Point{}, draw.Src)

	inner := image.Rect(placeholderInset, placeholderInset,
		PlaceholderWidth-placeholderInset, PlaceholderHeight-placeholderInset)
	draw.Draw(img, inner, image.NewUniform(hslToRGB(float64(hue), 0.7, 0.4)), image.Point{}, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		// encoding an in-memory RGBA image does not fail
		return ""
	}

	handle := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	placeholderCache.Store(hue, handle)
	return handle
}

func placeholderHue(seed string) int {
	sum := 0
	for _, r := range seed {
		sum += int(r)
	}
	return sum % 360
}

func hslToRGB(h, s, l float64) color.RGBA {
	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := l - c/2
	return color.RGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 255,
	}
}
