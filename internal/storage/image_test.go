package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 7 {
		for y := 0; y < height; y += 7 {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 90, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestToWebPDownscalesWideImages(t *testing.T) {
	data, err := ToWebP(bytes.NewReader(encodePNG(t, 2000, 1000)))
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := webp.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 1024, decoded.Bounds().Dx())
	assert.Equal(t, 512, decoded.Bounds().Dy(), "aspect ratio preserved")
}

func TestToWebPKeepsSmallImages(t *testing.T) {
	data, err := ToWebP(bytes.NewReader(encodePNG(t, 640, 480)))
	require.NoError(t, err)

	decoded, err := webp.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 640, decoded.Bounds().Dx())
	assert.Equal(t, 480, decoded.Bounds().Dy())
}

func TestToWebPRejectsGarbage(t *testing.T) {
	_, err := ToWebP(strings.NewReader("not an image"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode image")
}

func TestNewPhotoKey(t *testing.T) {
	key := NewPhotoKey()
	assert.True(t, strings.HasPrefix(key, "equipos/"))
	assert.True(t, strings.HasSuffix(key, ".webp"))
	assert.NotEqual(t, key, NewPhotoKey())
}
