package overlay

import (
	"image/color"

	"github.com/Benjirez/archipack/pkg/geometry"
)

// Kind selects the primitive a drawable is issued with
type Kind int

const (
	KindLine Kind = iota
	KindPolygon
	KindHandle
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindPolygon:
		return "polygon"
	case KindHandle:
		return "handle"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Style holds how a drawable looks
type Style struct {
	Width     float64
	LineStyle LineStyle
	Closed    bool

	ColourActive   color.NRGBA
	ColourHover    color.NRGBA
	ColourNormal   color.NRGBA
	ColourInactive color.NRGBA
}

// DefaultStyle is a one pixel solid style, black when inactive
func DefaultStyle() Style {
	return DefaultConfig().Style()
}

// Drawable is anything that can be issued to a host
type Drawable interface {
	Kind() Kind
	Points() []geometry.Vector3
	Colour() color.NRGBA
	Draw(ctx *Context, render bool)
}

// Gl is the state shared by all drawables
type Gl struct {
	Style
	Dim Dimension

	// last projected position, used as fallback by the viewport projection
	pos2D geometry.Vector2
}

func newGl(dim Dimension, style Style) Gl {
	return Gl{Style: style, Dim: dim}
}

// Colour returns the colour drawables are drawn with
func (g *Gl) Colour() color.NRGBA {
	return g.ColourInactive
}

// Pos2D returns the cached screen position
func (g *Gl) Pos2D() geometry.Vector2 {
	return g.pos2D
}

func (g *Gl) project(ctx *Context, p geometry.Vector3, render bool) geometry.Vector2 {
	if ctx == nil {
		return g.pos2D
	}
	return ctx.Project(p, g.Dim, g.pos2D, render)
}

// drawState returns the host state a drawable of the given kind needs
func (g *Gl) drawState(base DrawState, kind Kind, colour color.NRGBA, render bool) DrawState {
	st := base
	st.Colour = colour
	st.Blend = true
	switch kind {
	case KindPolygon, KindHandle:
		st.PolygonSmooth = render
	case KindLine:
		st.LineWidth = g.Width
		st.LineSmooth = render
		st.Stipple = g.LineStyle == LineStipple
		if st.Stipple {
			st.StippleFactor = 1
			st.StipplePattern = StipplePattern
		}
	}
	return st
}

// mode returns the primitive mode for a shape kind
func (g *Gl) mode(kind Kind) Mode {
	switch kind {
	case KindPolygon, KindHandle:
		return ModePolygon
	}
	if g.Closed {
		return ModeLineLoop
	}
	return ModeLineStrip
}

// drawShape projects every point of d and issues them as one primitive
func drawShape(ctx *Context, g *Gl, d Drawable, render bool) {
	if ctx == nil || ctx.Host == nil {
		return
	}
	kind := d.Kind()
	restore := scope(ctx.Host, g.drawState(ctx.Host.DrawState(), kind, d.Colour(), render))
	defer restore()

	ctx.Host.Begin(g.mode(kind))
	for _, p := range d.Points() {
		ctx.Host.Vertex(g.project(ctx, p, render))
	}
	ctx.Host.End()
}

// drawText projects the anchor and issues one text call, the baseline
// origin shifted by offset pixels
func drawText(ctx *Context, g *Gl, t *Text, colour color.NRGBA, offset geometry.Vector2, render bool) {
	if ctx == nil || ctx.Host == nil {
		return
	}
	restore := scope(ctx.Host, g.drawState(ctx.Host.DrawState(), KindText, colour, render))
	defer restore()

	p := g.project(ctx, t.Pos3D, render).Add(offset)
	ctx.Host.DrawText(p, t.FontSize, t.Angle, t.String())
}
