package overlay

import (
	"image/color"
	"math"

	"github.com/Benjirez/archipack/pkg/geometry"
)

// HandleShape selects what a handle looks like
type HandleShape int

const (
	ShapeSquare HandleShape = iota
	ShapeTriangle
	ShapeText
)

// Handle is an interactive widget anchored at a world point. Its sensor is
// a pixel rectangle around the projected anchor.
type Handle struct {
	Gl
	Shape HandleShape
	// Size is the world size of the shape
	Size float64

	SensorWidth  float64
	SensorHeight float64

	Pos3D  geometry.Vector3
	UpAxis geometry.Vector3
	CAxis  geometry.Vector3

	Hover      bool
	Active     bool
	Selectable bool

	// Body is the text of ShapeText handles
	Body *Text
}

func newHandle(shape HandleShape, sensorSize, size float64, selectable bool) *Handle {
	return &Handle{
		Gl:           newGl(Dim3, DefaultStyle()),
		Shape:        shape,
		Size:         size,
		SensorWidth:  sensorSize,
		SensorHeight: sensorSize,
		Selectable:   selectable,
	}
}

// NewSquareHandle creates a square of side size
func NewSquareHandle(sensorSize, size float64, selectable bool) *Handle {
	return newHandle(ShapeSquare, sensorSize, size, selectable)
}

// NewTriHandle creates an arrow head of length size pointing along the
// handle direction
func NewTriHandle(sensorSize, size float64, selectable bool) *Handle {
	return newHandle(ShapeTriangle, sensorSize, size, selectable)
}

// NewEditableText creates a text handle. The sensor follows the measured
// text box.
func NewEditableText(sensorSize, size float64, selectable bool, fontSize float64) *Handle {
	h := newHandle(ShapeText, sensorSize, size, selectable)
	h.Body = NewText(Dim3, "", fontSize, h.ColourNormal)
	return h
}

func (h *Handle) Kind() Kind {
	if h.Body != nil {
		return KindText
	}
	return KindHandle
}

// Points returns the shape outline in world coordinates
func (h *Handle) Points() []geometry.Vector3 {
	switch h.Shape {
	case ShapeSquare:
		x := h.UpAxis.Mul(h.Size / 2)
		y := h.CAxis.Mul(h.Size / 2)
		return []geometry.Vector3{
			h.Pos3D.Sub(x).Sub(y),
			h.Pos3D.Add(x).Sub(y),
			h.Pos3D.Add(x).Add(y),
			h.Pos3D.Sub(x).Add(y),
		}
	case ShapeTriangle:
		x := h.UpAxis.Mul(h.Size)
		y := h.CAxis.Mul(h.Size / 2)
		return []geometry.Vector3{
			h.Pos3D.Sub(x).Add(y),
			h.Pos3D.Sub(x).Sub(y),
			h.Pos3D,
		}
	}
	return []geometry.Vector3{h.Pos3D}
}

// SensorCenter is the world point the sensor is centered on
func (h *Handle) SensorCenter() geometry.Vector3 {
	if h.Body != nil {
		return h.Pos3D
	}
	return geometry.Centroid(h.Points())
}

// SetPos places the handle at pos, pointing along direction in the plane
// of normal, and caches the projected sensor center.
func (h *Handle) SetPos(ctx *Context, pos, direction, normal geometry.Vector3) {
	h.UpAxis = direction.Normalize()
	h.CAxis = h.UpAxis.Cross(normal)
	h.Pos3D = pos
	if h.Body != nil {
		h.Body.UpAxis, h.Body.CAxis, h.Body.Pos3D = h.UpAxis, h.CAxis, pos
		size := h.Body.Size(ctx)
		h.SensorWidth, h.SensorHeight = size.X, size.Y
	}
	h.pos2D = h.project(ctx, h.SensorCenter(), false)
	if h.Body != nil {
		h.Body.pos2D = h.pos2D
	}
}

// SetText sets the body value then places the handle
func (h *Handle) SetText(ctx *Context, value float64, pos, direction, normal geometry.Vector3) {
	if h.Body != nil {
		h.Body.SetValue(value)
	}
	h.SetPos(ctx, pos, direction, normal)
}

// Contains reports whether pointer lies in the sensor rectangle
func (h *Handle) Contains(pointer geometry.Vector2) bool {
	d := pointer.Sub(h.pos2D)
	return math.Abs(d.X) <= h.SensorWidth/2 && math.Abs(d.Y) <= h.SensorHeight/2
}

// CheckHover updates Hover from the pointer position. Handles that are not
// selectable never hover.
func (h *Handle) CheckHover(pointer geometry.Vector2) {
	if !h.Selectable {
		return
	}
	h.Hover = h.Contains(pointer)
}

// Colour resolves the colour from the interaction state
func (h *Handle) Colour() color.NRGBA {
	if !h.Selectable {
		return h.ColourInactive
	}
	switch {
	case h.Active:
		return h.ColourActive
	case h.Hover:
		return h.ColourHover
	}
	return h.ColourNormal
}

// Draw draws the shape, or the body text centered on the anchor so that
// it covers the sensor
func (h *Handle) Draw(ctx *Context, render bool) {
	if h.Body != nil {
		offset := h.Body.Size(ctx).Mul(-0.5)
		drawText(ctx, &h.Body.Gl, h.Body, h.Colour(), offset, render)
		return
	}
	drawShape(ctx, &h.Gl, h, render)
}
