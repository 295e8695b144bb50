package overlay

import (
	"github.com/Benjirez/archipack/pkg/geometry"
)

// CursorFence is a crosshair spanning the whole region
type CursorFence struct {
	LineX *Line
	LineY *Line
	on    bool
}

// NewCursorFence creates an enabled crosshair
func NewCursorFence(cfg CursorConfig) *CursorFence {
	f := &CursorFence{
		LineX: NewLine(Dim2, geometry.Vector3{}, geometry.Vector3{}),
		LineY: NewLine(Dim2, geometry.Vector3{}, geometry.Vector3{}),
		on:    true,
	}
	for _, l := range []*Line{f.LineX, f.LineY} {
		l.Width = cfg.Width
		l.LineStyle = cfg.lineStyle()
		l.ColourInactive = cfg.FenceColour.NRGBA()
	}
	return f
}

// SetLocation moves the crosshair to the pointer
func (f *CursorFence) SetLocation(ctx *Context, pointer geometry.Vector2) {
	w, h := ctx.Region.Width, ctx.Region.Height
	f.LineX.P = vec2(0, pointer.Y)
	f.LineX.V = vec2(w, 0)
	f.LineY.P = vec2(pointer.X, 0)
	f.LineY.V = vec2(0, h)
}

func (f *CursorFence) Enable()       { f.on = true }
func (f *CursorFence) Disable()      { f.on = false }
func (f *CursorFence) Enabled() bool { return f.on }

func (f *CursorFence) Draw(ctx *Context) {
	if !f.on {
		return
	}
	f.LineX.Draw(ctx, false)
	f.LineY.Draw(ctx, false)
}

// CursorArea is a drag rectangle, a translucent fill under a closed border
type CursorArea struct {
	Border *Polyline
	Area   *Polygon
	on     bool
}

// NewCursorArea creates a disabled drag rectangle
func NewCursorArea(cfg CursorConfig) *CursorArea {
	a := &CursorArea{
		Border: NewPolyline(Dim2, cfg.BorderColour.NRGBA()),
		Area:   NewPolygon(Dim2, cfg.AreaColour.NRGBA()),
	}
	a.Border.Width = cfg.Width
	a.Border.LineStyle = cfg.lineStyle()
	a.Border.Closed = true
	return a
}

// SetLocation spans the rectangle between two opposite corners
func (a *CursorArea) SetLocation(ctx *Context, p0, p1 geometry.Vector2) {
	pts := []geometry.Vector3{
		vec2(p0.X, p0.Y),
		vec2(p0.X, p1.Y),
		vec2(p1.X, p1.Y),
		vec2(p1.X, p0.Y),
	}
	a.Area.SetPos(pts)
	a.Border.SetPos(pts)
}

func (a *CursorArea) Enable()       { a.on = true }
func (a *CursorArea) Disable()      { a.on = false }
func (a *CursorArea) Enabled() bool { return a.on }

func (a *CursorArea) Draw(ctx *Context) {
	if !a.on {
		return
	}
	a.Area.Draw(ctx, false)
	a.Border.Draw(ctx, false)
}
