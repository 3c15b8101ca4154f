package renderer

import (
	"fmt"
	"image"
	"image/color"
	"io"
	stdmath "math"
	"strconv"
	"strings"

	"github.com/user/go-phong-raytracer/pkg/math"
)

// ppmMaxLineLen is the column limit for PPM pixel rows; many viewers reject
// lines longer than 70 characters.
const ppmMaxLineLen = 70

// Canvas is the pixel buffer a render writes into. Stored colors are not
// clamped; clamping happens when the canvas is encoded.
type Canvas struct {
	Width  int
	Height int
	pixels []math.Color
}

// NewCanvas creates a black canvas of the given dimensions.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]math.Color, width*height),
	}
}

// PixelAt returns the color at (x, y). Out-of-range coordinates are a caller
// error.
func (c *Canvas) PixelAt(x, y int) math.Color {
	return c.pixels[c.index(x, y)]
}

// WritePixel sets the color at (x, y). Out-of-range coordinates are a caller
// error.
func (c *Canvas) WritePixel(x, y int, col math.Color) {
	c.pixels[c.index(x, y)] = col
}

func (c *Canvas) index(x, y int) int {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		panic(fmt.Sprintf("renderer: pixel (%d, %d) outside %dx%d canvas", x, y, c.Width, c.Height))
	}
	return y*c.Width + x
}

// ToImage converts the canvas to an RGBA image, clamping each component to
// [0, 1] and scaling to 8 bits.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			px := c.PixelAt(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: channelByte(px.R),
				G: channelByte(px.G),
				B: channelByte(px.B),
				A: 255,
			})
		}
	}
	return img
}

func channelByte(v float64) uint8 {
	return uint8(stdmath.Round(stdmath.Min(1, stdmath.Max(0, v)) * 255))
}

// WritePPM encodes the canvas as plain-text PPM (P3): a three-line header,
// then one line of scaled RGB values per pixel row, wrapped at 70 columns,
// with a trailing newline.
func (c *Canvas) WritePPM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return err
	}

	for y := 0; y < c.Height; y++ {
		var line strings.Builder
		for x := 0; x < c.Width; x++ {
			px := c.PixelAt(x, y)
			for _, v := range []float64{px.R, px.G, px.B} {
				value := strconv.Itoa(int(channelByte(v)))
				if line.Len()+len(value)+1 > ppmMaxLineLen {
					if _, err := fmt.Fprintln(w, line.String()); err != nil {
						return err
					}
					line.Reset()
				}
				if line.Len() > 0 {
					line.WriteByte(' ')
				}
				line.WriteString(value)
			}
		}
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}
