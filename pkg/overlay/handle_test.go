package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Benjirez/archipack/pkg/geometry"
)

func TestHandleHover(t *testing.T) {
	ctx, _ := newTestContext()
	h := NewSquareHandle(10, 2, true)
	h.SetPos(ctx, geometry.NewVector3(100, 100, 0), geometry.NewVector3(1, 0, 0), geometry.WorldUp)
	require.Equal(t, geometry.NewVector2(100, 100), h.Pos2D())

	h.CheckHover(geometry.NewVector2(105, 105))
	assert.True(t, h.Hover)

	h.CheckHover(geometry.NewVector2(115, 115))
	assert.False(t, h.Hover)

	h.CheckHover(geometry.NewVector2(100, 106))
	assert.False(t, h.Hover)
}

func TestHandleHoverNotSelectable(t *testing.T) {
	ctx, _ := newTestContext()
	h := NewSquareHandle(10, 2, false)
	h.SetPos(ctx, geometry.NewVector3(100, 100, 0), geometry.NewVector3(1, 0, 0), geometry.WorldUp)

	h.CheckHover(geometry.NewVector2(100, 100))
	assert.False(t, h.Hover)
	assert.True(t, h.Contains(geometry.NewVector2(100, 100)))
}

func TestHandleColour(t *testing.T) {
	h := NewSquareHandle(10, 1, false)
	h.Hover = true
	h.Active = true
	assert.Equal(t, h.ColourInactive, h.Colour())

	h.Selectable = true
	assert.Equal(t, h.ColourActive, h.Colour())

	h.Active = false
	assert.Equal(t, h.ColourHover, h.Colour())

	h.Hover = false
	assert.Equal(t, h.ColourNormal, h.Colour())
}

func TestSquareHandlePoints(t *testing.T) {
	ctx, _ := newTestContext()
	h := NewSquareHandle(10, 2, true)
	h.SetPos(ctx, geometry.NewVector3(5, 5, 0), geometry.NewVector3(1, 0, 0), geometry.WorldUp)

	// up = +x, c = x × z = -y
	assert.Equal(t, []geometry.Vector3{
		geometry.NewVector3(4, 6, 0),
		geometry.NewVector3(6, 6, 0),
		geometry.NewVector3(6, 4, 0),
		geometry.NewVector3(4, 4, 0),
	}, h.Points())
	assert.Equal(t, geometry.NewVector3(5, 5, 0), h.SensorCenter())
	assert.Equal(t, KindHandle, h.Kind())
}

func TestTriHandlePoints(t *testing.T) {
	ctx, _ := newTestContext()
	h := NewTriHandle(10, 2, true)
	h.SetPos(ctx, geometry.NewVector3(0, 0, 0), geometry.NewVector3(0, 1, 0), geometry.WorldUp)

	// up = +y, c = y × z = +x
	assert.Equal(t, []geometry.Vector3{
		geometry.NewVector3(1, -2, 0),
		geometry.NewVector3(-1, -2, 0),
		geometry.NewVector3(0, 0, 0),
	}, h.Points())

	center := h.SensorCenter()
	assert.InDelta(t, 0, center.X, 1e-9)
	assert.InDelta(t, -4.0/3, center.Y, 1e-9)
	assert.InDelta(t, -4.0/3, h.Pos2D().Y, 1e-9)
}

func TestHandleDraw(t *testing.T) {
	ctx, host := newTestContext()
	h := NewTriHandle(10, 2, true)
	h.SetPos(ctx, geometry.NewVector3(0, 0, 0), geometry.NewVector3(0, 1, 0), geometry.WorldUp)
	h.Hover = true
	h.Draw(ctx, false)

	require.Len(t, host.primitives, 1)
	assert.Equal(t, ModePolygon, host.primitives[0].mode)
	assert.Len(t, host.primitives[0].vertices, 3)
	assert.Equal(t, h.ColourHover, host.primitives[0].state.Colour)
}

func TestEditableText(t *testing.T) {
	ctx, host := newTestContext()
	h := NewEditableText(10, 1, true, 10)
	h.Body.Label = "L:"
	h.Body.Unit = "m"
	h.SetText(ctx, 1.5, geometry.NewVector3(50, 60, 0), geometry.NewVector3(1, 0, 0), geometry.WorldUp)

	// "L:1.5m" is 6 runes of 5 pixels
	assert.Equal(t, 30.0, h.SensorWidth)
	assert.Equal(t, 10.0, h.SensorHeight)
	assert.Equal(t, geometry.NewVector2(50, 60), h.Pos2D())
	assert.Equal(t, geometry.NewVector3(50, 60, 0), h.SensorCenter())
	assert.Equal(t, KindText, h.Kind())

	h.CheckHover(geometry.NewVector2(64, 64))
	assert.True(t, h.Hover)
	h.CheckHover(geometry.NewVector2(66, 60))
	assert.False(t, h.Hover)

	h.Active = true
	h.Draw(ctx, false)
	assert.Empty(t, host.primitives)
	require.Len(t, host.texts, 1)
	assert.Equal(t, "L:1.5m", host.texts[0].text)
	assert.Equal(t, h.ColourActive, host.texts[0].state.Colour)
	// the body is centered on the anchor, like the sensor
	assert.Equal(t, geometry.NewVector2(35, 55), host.texts[0].p)
}

func TestEditableTextHoverCoversDrawnText(t *testing.T) {
	ctx, host := newTestContext()
	h := NewEditableText(10, 1, true, 10)
	h.Body.Label = "L:"
	h.Body.Unit = "m"
	h.SetText(ctx, 1.5, geometry.NewVector3(50, 60, 0), geometry.NewVector3(1, 0, 0), geometry.WorldUp)
	h.Draw(ctx, false)
	require.Len(t, host.texts, 1)

	// drawn box spans origin..origin+size, baseline at the bottom
	origin := host.texts[0].p
	size := h.Body.Size(ctx)
	for _, f := range [][2]float64{{0.05, 0.1}, {0.5, 0.5}, {0.95, 0.9}} {
		pointer := origin.Add(geometry.NewVector2(size.X*f[0], size.Y*f[1]))
		h.CheckHover(pointer)
		assert.True(t, h.Hover, "pointer %v on the text", pointer)
	}

	h.CheckHover(origin.Add(geometry.NewVector2(size.X+1, 0)))
	assert.False(t, h.Hover)
}

func TestEditableTextBehindViewerKeepsLastPosition(t *testing.T) {
	ctx, host := newTestContext()
	h := NewEditableText(10, 1, true, 10)
	h.Body.Label = "L:"
	h.Body.Unit = "m"
	h.SetText(ctx, 1.5, geometry.NewVector3(50, 60, 0), geometry.NewVector3(1, 0, 0), geometry.WorldUp)
	h.SetText(ctx, 1.5, geometry.NewVector3(500, 500, -1), geometry.NewVector3(1, 0, 0), geometry.WorldUp)
	h.Draw(ctx, false)

	require.Len(t, host.texts, 1)
	assert.Equal(t, geometry.NewVector2(50, 60), h.Body.Pos2D())
	assert.Equal(t, geometry.NewVector2(35, 55), host.texts[0].p)
}

func TestHandleBehindViewerKeepsLastPosition(t *testing.T) {
	ctx, _ := newTestContext()
	h := NewSquareHandle(10, 2, true)
	h.SetPos(ctx, geometry.NewVector3(20, 30, 0), geometry.NewVector3(1, 0, 0), geometry.WorldUp)
	h.SetPos(ctx, geometry.NewVector3(70, 80, -1), geometry.NewVector3(1, 0, 0), geometry.WorldUp)

	assert.Equal(t, geometry.NewVector2(20, 30), h.Pos2D())
}
