package imagegen

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholder_Deterministic(t *testing.T) {
	first := Placeholder("EMBER WOLF Fire")
	second := Placeholder("EMBER WOLF Fire")

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "data:image/png;base64,"))
}

func TestPlaceholder_DecodesToCardSize(t *testing.T) {
	handle := Placeholder("TIDAL BLADE Water")

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(handle, "data:image/png;base64,"))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, PlaceholderWidth, img.Bounds().Dx())
	assert.Equal(t, PlaceholderHeight, img.Bounds().Dy())

	// border and inner panel use different lightness
	assert.NotEqual(t, img.At(5, 5), img.At(PlaceholderWidth/2, PlaceholderHeight/2))
}

func TestPlaceholder_SeedChangesColor(t *testing.T) {
	// "a" and "b" differ by one in their character sum
	assert.NotEqual(t, Placeholder("a"), Placeholder("b"))
}

func TestPlaceholderHue(t *testing.T) {
	assert.Equal(t, 0, placeholderHue(""))
	assert.Equal(t, 97, placeholderHue("a"))
	// 360 wraps to zero
	assert.Equal(t, placeholderHue("a"), placeholderHue("a\u0168"))
}

func TestHSLToRGB(t *testing.T) {
	red := hslToRGB(0, 1, 0.5)
	assert.Equal(t, uint8(255), red.R)
	assert.Equal(t, uint8(0), red.G)
	assert.Equal(t, uint8(0), red.B)

	grey := hslToRGB(200, 0, 0.5)
	assert.Equal(t, grey.R, grey.G)
	assert.Equal(t, grey.G, grey.B)
}
