// Package raster implements the overlay host interface over an in-memory
// image, used for headless rendering and previews.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/vector"

	"github.com/Benjirez/archipack/pkg/geometry"
	"github.com/Benjirez/archipack/pkg/overlay"
)

// Canvas is an overlay host drawing into an RGBA image. Incoming
// coordinates have their origin bottom left and are flipped.
type Canvas struct {
	img   *image.RGBA
	state overlay.DrawState

	mode     overlay.Mode
	vertices []geometry.Vector2
	drawing  bool

	font  *opentype.Font
	faces map[float64]font.Face
}

// New creates a transparent canvas of the given size
func New(width, height int) (*Canvas, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		state: overlay.DefaultDrawState(),
		font:  fnt,
		faces: make(map[float64]font.Face),
	}, nil
}

// Image returns the backing image
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Bounds returns the canvas size
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// Clear fills the whole canvas with col
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawImage paints src scaled to the canvas
func (c *Canvas) DrawImage(src image.Image) {
	draw.CatmullRom.Scale(c.img, c.img.Rect, src, src.Bounds(), draw.Over, nil)
}

func (c *Canvas) DrawState() overlay.DrawState {
	return c.state
}

func (c *Canvas) SetDrawState(st overlay.DrawState) {
	c.state = st
}

func (c *Canvas) Begin(mode overlay.Mode) {
	c.mode = mode
	c.vertices = c.vertices[:0]
	c.drawing = true
}

func (c *Canvas) Vertex(p geometry.Vector2) {
	if !c.drawing {
		return
	}
	c.vertices = append(c.vertices, c.toImage(p))
}

func (c *Canvas) End() {
	if !c.drawing {
		return
	}
	c.drawing = false

	switch c.mode {
	case overlay.ModePolygon:
		c.fillPolygon(c.vertices)
	case overlay.ModeLineStrip:
		c.strokePath(c.vertices, false)
	case overlay.ModeLineLoop:
		c.strokePath(c.vertices, true)
	}
}

// toImage flips p to image coordinates
func (c *Canvas) toImage(p geometry.Vector2) geometry.Vector2 {
	return geometry.NewVector2(p.X, float64(c.img.Rect.Dy())-p.Y)
}

func (c *Canvas) fillPolygon(pts []geometry.Vector2) {
	if len(pts) < 3 {
		return
	}
	if c.state.PolygonSmooth {
		c.rasterize(pts)
		return
	}
	for i := 1; i < len(pts)-1; i++ {
		fillTriangle(c.img,
			pts[0].X, pts[0].Y,
			pts[i].X, pts[i].Y,
			pts[i+1].X, pts[i+1].Y,
			c.state.Colour, c.state.Blend)
	}
}

// rasterize fills pts with anti-aliased edges
func (c *Canvas) rasterize(pts []geometry.Vector2) {
	b := c.img.Rect
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	z.Draw(c.img, b, image.NewUniform(c.state.Colour), image.Point{})
}

func (c *Canvas) strokePath(pts []geometry.Vector2, closed bool) {
	if len(pts) < 2 {
		return
	}
	// the stipple pattern runs on along the whole primitive
	counter := 0
	for i := 0; i < len(pts)-1; i++ {
		c.strokeSegment(pts[i], pts[i+1], &counter)
	}
	if closed && len(pts) > 2 {
		c.strokeSegment(pts[len(pts)-1], pts[0], &counter)
	}
}

func (c *Canvas) strokeSegment(a, b geometry.Vector2, counter *int) {
	if !c.state.Stipple {
		c.stroke(a, b)
		return
	}
	for _, d := range overlay.Dashes(a, b, c.clipRect(), c.state.StippleFactor, c.state.StipplePattern, counter) {
		c.stroke(d[0], d[1])
	}
}

// stroke draws one solid segment with the current width
func (c *Canvas) stroke(a, b geometry.Vector2) {
	a, b, ok := clipSegment(a, b, c.img.Rect, c.state.LineWidth+1)
	if !ok {
		return
	}
	width := math.Max(1, c.state.LineWidth)
	if width <= 1 && !c.state.LineSmooth {
		drawLine(c.img,
			int(math.Floor(a.X)), int(math.Floor(a.Y)),
			int(math.Floor(b.X)), int(math.Floor(b.Y)),
			c.state.Colour, c.state.Blend)
		return
	}

	d := b.Sub(a)
	length := d.Length()
	if length < geometry.Epsilon {
		return
	}
	n := geometry.NewVector2(-d.Y/length, d.X/length).Mul(width / 2)
	quad := []geometry.Vector2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
	if c.state.LineSmooth {
		c.rasterize(quad)
		return
	}
	fillTriangle(c.img, quad[0].X, quad[0].Y, quad[1].X, quad[1].Y, quad[2].X, quad[2].Y, c.state.Colour, c.state.Blend)
	fillTriangle(c.img, quad[0].X, quad[0].Y, quad[2].X, quad[2].Y, quad[3].X, quad[3].Y, c.state.Colour, c.state.Blend)
}

// clipRect is the image grown by the line width, segments beyond it
// cannot touch a pixel
func (c *Canvas) clipRect() overlay.Rect {
	b := c.img.Rect
	return overlay.Rect{
		Min: geometry.NewVector2(float64(b.Min.X), float64(b.Min.Y)),
		Max: geometry.NewVector2(float64(b.Max.X), float64(b.Max.Y)),
	}.Grow(c.state.LineWidth + 1)
}

// clipSegment clips a segment to r grown by pad pixels.
// ok is false when nothing remains.
func clipSegment(a, b geometry.Vector2, r image.Rectangle, pad float64) (geometry.Vector2, geometry.Vector2, bool) {
	rect := overlay.Rect{
		Min: geometry.NewVector2(float64(r.Min.X), float64(r.Min.Y)),
		Max: geometry.NewVector2(float64(r.Max.X), float64(r.Max.Y)),
	}.Grow(pad)
	t0, t1, ok := overlay.ClipSegment(a, b, rect)
	if !ok {
		return a, b, false
	}
	d := b.Sub(a)
	return a.Add(d.Mul(t0)), a.Add(d.Mul(t1)), true
}
