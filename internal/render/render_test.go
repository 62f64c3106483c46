package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestWritePNGRoundTrips(t *testing.T) {
	img := solidImage(4, 4, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	var buf bytes.Buffer
	err := WritePNG(&buf, img)
	assert.NoError(t, err)

	decoded, err := png.Decode(&buf)
	assert.NoError(t, err)
	assert.Equal(t, 4, decoded.Bounds().Dx())
	assert.Equal(t, 4, decoded.Bounds().Dy())
}

func TestPreviewWritesOneLinePerTwoRows(t *testing.T) {
	img := solidImage(8, 4, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	var buf bytes.Buffer
	err := Preview(&buf, img, 120)
	assert.NoError(t, err)

	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	assert.Equal(t, 2, lines) // 4 rows packed two-per-line
}

func TestPreviewHandlesEmptyImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	var buf bytes.Buffer
	err := Preview(&buf, img, 120)
	assert.NoError(t, err)
	assert.Equal(t, 0, buf.Len())
}

func TestPreviewClampsToMaxWidth(t *testing.T) {
	img := solidImage(200, 2, color.RGBA{G: 255, A: 255})
	var buf bytes.Buffer
	err := Preview(&buf, img, 50)
	assert.NoError(t, err)
	// Each column emits two escape-code prefixes plus the block glyph; a
	// rough sanity check that output shrank to roughly maxWidth columns
	// rather than the full 200.
	assert.Less(t, buf.Len(), 200*20)
}
