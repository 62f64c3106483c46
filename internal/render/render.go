// Package render turns a rendered *image.RGBA into output artifacts: a
// PNG file and a coarse terminal block-character preview, grounded on the
// teacher's cmd/web-raytracer/frontend/frontend.go "drive a render, get
// an image, display it" shape (that file pushes raw pixel bytes to a
// browser canvas over a websocket; here the same handoff is done to a
// PNG encoder and to stdout instead, since this is a terminal tool, not
// a browser frontend).
package render

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/pkg/errors"
)

// WritePNG encodes img as a PNG to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return errors.Wrap(err, "encoding PNG")
	}
	return nil
}

// upperHalfBlock is the half-height terminal glyph ▀: the bottom cell of
// a two-row sample is the background color, the top cell is the
// foreground, packing two pixel rows into one terminal row.
const upperHalfBlock = "▀"

// Preview writes a coarse 24-bit-color ANSI terminal preview of img to w,
// sampling at most maxWidth columns so a full-resolution render still
// fits a terminal's width. Rows are not subsampled: every pair of pixel
// rows becomes one terminal row, so a column-clamped preview is squeezed
// horizontally.
func Preview(w io.Writer, img image.Image, maxWidth int) error {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	cols := width
	if cols > maxWidth {
		cols = maxWidth
	}
	colStep := float64(width) / float64(cols)

	for y := 0; y < height; y += 2 {
		for c := 0; c < cols; c++ {
			x := bounds.Min.X + int(float64(c)*colStep)
			top := sampleANSI(img, x, bounds.Min.Y+y)
			bottomY := bounds.Min.Y + y + 1
			var bottom [3]int
			if bottomY < bounds.Max.Y {
				bottom = sampleANSI(img, x, bottomY)
			} else {
				bottom = top
			}
			if _, err := io.WriteString(w, ansiFgBg(top, bottom)+upperHalfBlock+"\x1b[0m"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func sampleANSI(img image.Image, x, y int) [3]int {
	r, g, b, _ := img.At(x, y).RGBA()
	return [3]int{int(r >> 8), int(g >> 8), int(b >> 8)}
}

func ansiFgBg(fg, bg [3]int) string {
	return sprintfEscape(38, fg) + sprintfEscape(48, bg)
}

func sprintfEscape(kind int, c [3]int) string {
	return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", kind, c[0], c[1], c[2])
}
