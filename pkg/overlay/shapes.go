package overlay

import (
	"image/color"

	"github.com/Benjirez/archipack/pkg/geometry"
)

// Line is a drawable straight segment
type Line struct {
	Gl
	geometry.Line
}

// NewLine creates a line from p along v
func NewLine(dim Dimension, p, v geometry.Vector3) *Line {
	return &Line{Gl: newGl(dim, DefaultStyle()), Line: geometry.NewLine(p, v)}
}

// NewLineBetween creates a line from p0 to p1
func NewLineBetween(dim Dimension, p0, p1 geometry.Vector3) *Line {
	return &Line{Gl: newGl(dim, DefaultStyle()), Line: geometry.LineBetween(p0, p1)}
}

func (l *Line) Kind() Kind { return KindLine }

func (l *Line) Draw(ctx *Context, render bool) {
	drawShape(ctx, &l.Gl, l, render)
}

// Arc is a drawable tessellated circle arc
type Arc struct {
	Gl
	geometry.Arc
}

// NewArc creates an arc of radius r around c, from a0 sweeping da
func NewArc(dim Dimension, c geometry.Vector3, r, a0, da float64, zAxis geometry.Vector3) *Arc {
	return &Arc{Gl: newGl(dim, DefaultStyle()), Arc: geometry.NewArc(c, r, a0, da, zAxis)}
}

func (a *Arc) Kind() Kind { return KindLine }

func (a *Arc) Draw(ctx *Context, render bool) {
	drawShape(ctx, &a.Gl, a, render)
}

// Polygon is a filled shape
type Polygon struct {
	Gl
	Pts []geometry.Vector3
}

// NewPolygon creates an empty polygon drawn with colour
func NewPolygon(dim Dimension, colour color.NRGBA) *Polygon {
	p := &Polygon{Gl: newGl(dim, DefaultStyle())}
	p.ColourInactive = colour
	return p
}

func (p *Polygon) SetPos(pts []geometry.Vector3) {
	p.Pts = pts
}

func (p *Polygon) Points() []geometry.Vector3 { return p.Pts }

func (p *Polygon) Kind() Kind { return KindPolygon }

func (p *Polygon) Draw(ctx *Context, render bool) {
	drawShape(ctx, &p.Gl, p, render)
}

// Polyline is an open, or closed, chain of segments
type Polyline struct {
	Gl
	Pts []geometry.Vector3
}

// NewPolyline creates an empty polyline drawn with colour
func NewPolyline(dim Dimension, colour color.NRGBA) *Polyline {
	p := &Polyline{Gl: newGl(dim, DefaultStyle())}
	p.ColourInactive = colour
	return p
}

func (p *Polyline) SetPos(pts []geometry.Vector3) {
	p.Pts = pts
}

func (p *Polyline) Points() []geometry.Vector3 { return p.Pts }

func (p *Polyline) Kind() Kind { return KindLine }

func (p *Polyline) Draw(ctx *Context, render bool) {
	drawShape(ctx, &p.Gl, p, render)
}

// vec2 lifts pixel coordinates into the point type shapes store
func vec2(x, y float64) geometry.Vector3 {
	return geometry.NewVector3(x, y, 0)
}
