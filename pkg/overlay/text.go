package overlay

import (
	"image/color"
	"math"
	"strconv"

	"github.com/Benjirez/archipack/pkg/geometry"
)

// DefaultPrecision is the number of decimals values are rounded to
const DefaultPrecision = 2

// Text is a label with an optional numeric value and unit
type Text struct {
	Gl

	Label     string
	Value     *float64
	Precision int
	Unit      string
	FontSize  float64
	// Angle is the rotation in radians, counter clockwise
	Angle float64

	Pos3D  geometry.Vector3
	UpAxis geometry.Vector3
	CAxis  geometry.Vector3
	ZAxis  geometry.Vector3
}

// NewText creates a text drawn with colour
func NewText(dim Dimension, label string, fontSize float64, colour color.NRGBA) *Text {
	t := &Text{
		Gl:        newGl(dim, DefaultStyle()),
		Label:     label,
		Precision: DefaultPrecision,
		FontSize:  fontSize,
		ZAxis:     geometry.WorldUp,
	}
	t.ColourInactive = colour
	return t
}

func (t *Text) SetValue(v float64) {
	t.Value = &v
}

func (t *Text) ClearValue() {
	t.Value = nil
}

// String returns the rendered text
func (t *Text) String() string {
	if t.Value == nil {
		return t.Label
	}
	return t.Label + formatValue(*t.Value, t.Precision) + t.Unit
}

// formatValue rounds v to precision decimals and prints the shortest
// decimal form of the result
func formatValue(v float64, precision int) string {
	scale := math.Pow(10, float64(precision))
	r := math.Round(v*scale) / scale
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Size returns the pixel extent of the rendered text
func (t *Text) Size(ctx *Context) geometry.Vector2 {
	if ctx == nil || ctx.Host == nil {
		return geometry.Vector2{}
	}
	return ctx.Host.TextSize(t.FontSize, t.Angle, t.String())
}

func (t *Text) Points() []geometry.Vector3 {
	return []geometry.Vector3{t.Pos3D}
}

func (t *Text) Kind() Kind { return KindText }

// SetPos sets the value and places the text at pos
func (t *Text) SetPos(value float64, pos, direction geometry.Vector3, angle float64, normal geometry.Vector3) {
	t.UpAxis = direction.Normalize()
	t.CAxis = t.UpAxis.Cross(normal)
	t.Pos3D = pos
	t.SetValue(value)
	t.Angle = angle
}

func (t *Text) Draw(ctx *Context, render bool) {
	drawText(ctx, &t.Gl, t, t.Colour(), geometry.Vector2{}, render)
}
