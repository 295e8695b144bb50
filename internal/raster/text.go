package raster

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/Benjirez/archipack/pkg/geometry"
)

// face returns the Go Regular face for size, cached
func (c *Canvas) face(size float64) (font.Face, error) {
	if f, ok := c.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %.1f: %w", size, err)
	}
	c.faces[size] = f
	return f, nil
}

// DrawText draws text with its baseline origin at p, rotated counter
// clockwise by angle radians
func (c *Canvas) DrawText(p geometry.Vector2, fontSize, angle float64, text string) {
	if text == "" || fontSize <= 0 {
		return
	}
	face, err := c.face(fontSize)
	if err != nil {
		return
	}
	src := image.NewUniform(c.state.Colour)
	origin := c.toImage(p)

	if angle == 0 {
		d := &font.Drawer{
			Dst:  c.img,
			Src:  src,
			Face: face,
			Dot:  fixed.P(int(math.Round(origin.X)), int(math.Round(origin.Y))),
		}
		d.DrawString(text)
		return
	}

	// draw unrotated into a scratch image, then map it onto the canvas
	bounds, advance := font.BoundString(face, text)
	w := int(math.Ceil(math.Max(float64(advance), float64(bounds.Max.X)) / 64))
	top := bounds.Min.Y.Floor()
	h := bounds.Max.Y.Ceil() - top
	if w <= 0 || h <= 0 {
		return
	}
	scratch := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  scratch,
		Src:  src,
		Face: face,
		Dot:  fixed.P(0, -top),
	}
	d.DrawString(text)

	// baseline origin inside the scratch image
	ox, oy := 0.0, float64(-top)
	sin, cos := math.Sincos(angle)
	s2d := f64.Aff3{
		cos, sin, origin.X - cos*ox - sin*oy,
		-sin, cos, origin.Y + sin*ox - cos*oy,
	}
	draw.BiLinear.Transform(c.img, s2d, scratch, scratch.Bounds(), draw.Over, nil)
}

// TextSize returns the pixel extent of text once rotated by angle
func (c *Canvas) TextSize(fontSize, angle float64, text string) geometry.Vector2 {
	if text == "" || fontSize <= 0 {
		return geometry.Vector2{}
	}
	face, err := c.face(fontSize)
	if err != nil {
		return geometry.Vector2{}
	}
	bounds, advance := font.BoundString(face, text)
	w := float64(advance) / 64
	h := float64(bounds.Max.Y-bounds.Min.Y) / 64
	if angle == 0 {
		return geometry.NewVector2(w, h)
	}
	sin, cos := math.Sincos(angle)
	return geometry.NewVector2(
		math.Abs(w*cos)+math.Abs(h*sin),
		math.Abs(w*sin)+math.Abs(h*cos),
	)
}
