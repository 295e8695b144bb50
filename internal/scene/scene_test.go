package scene

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Benjirez/archipack/internal/raster"
	"github.com/Benjirez/archipack/pkg/geometry"
	"github.com/Benjirez/archipack/pkg/overlay"
	"github.com/Benjirez/archipack/pkg/viewer"
)

// topView maps world X/Y straight to pixels, 100 pixels per unit around
// an origin at (200, 300)
type topView struct{}

func (topView) WorldToRegion(p geometry.Vector3) (geometry.Vector2, bool) {
	return geometry.NewVector2(200+p.X*100, 300+p.Y*100), true
}

func newContext(t *testing.T) *overlay.Context {
	t.Helper()
	canvas, err := raster.New(800, 600)
	require.NoError(t, err)
	return &overlay.Context{
		Host:   canvas,
		Region: overlay.Region{Width: 800, Height: 600, View: topView{}},
	}
}

func TestLayoutDimension(t *testing.T) {
	s := New(overlay.DefaultConfig())
	s.Layout(newContext(t))

	// wall along +X, the right side is -Y
	assert.Equal(t, geometry.NewVector3(0, -defaultOffset, 0), s.Dimension.P0())
	assert.Equal(t, geometry.NewVector3(4, -defaultOffset, 0), s.Dimension.P1())
	assert.Equal(t, s.wall.V, s.Dimension.V)

	assert.Equal(t, s.Dimension.P0(), s.Start.Pos3D)
	assert.Equal(t, s.Dimension.P1(), s.End.Pos3D)
	assert.Equal(t, "4 m", s.Length.Body.String())
	assert.InDelta(t, -defaultOffset-s.cfg.ArrowSize, s.Extension0.P1().Y, 1e-9)

	assert.InDelta(t, 1, s.door.R, 1e-9)
	assert.Equal(t, "R:1 m", s.RadiusLabel.String())
	assert.Len(t, s.Room.Points(), 4)
}

func TestHandleAt(t *testing.T) {
	ctx := newContext(t)
	s := New(overlay.DefaultConfig())
	s.Layout(ctx)

	// end arrow tip at (4, -0.6) is (600, 240) in pixels, its sensor is
	// centered on the triangle centroid
	center := s.End.Pos2D()
	assert.Equal(t, s.End, s.HandleAt(center))
	assert.True(t, s.Hover(center))
	assert.True(t, s.End.Hover)
	assert.False(t, s.Start.Hover)

	assert.Nil(t, s.HandleAt(geometry.NewVector2(790, 590)))
	assert.False(t, s.Hover(geometry.NewVector2(790, 590)))
}

func TestDragEnd(t *testing.T) {
	s := New(overlay.DefaultConfig())
	s.Layout(newContext(t))

	s.Drag(s.End, geometry.NewVector3(6, -defaultOffset, 0))
	assert.Equal(t, geometry.NewVector3(0, 0, 0), s.wall.P0())
	assert.InDelta(t, 6, s.wall.P1().X, 1e-9)
	assert.InDelta(t, 0, s.wall.P1().Y, 1e-9)
}

func TestDragStartKeepsEnd(t *testing.T) {
	s := New(overlay.DefaultConfig())
	s.Drag(s.Start, geometry.NewVector3(1, -defaultOffset, 0))
	assert.InDelta(t, 1, s.wall.P0().X, 1e-9)
	assert.Equal(t, geometry.NewVector3(4, 0, 0), s.wall.P1())

	// collapsing the wall is refused
	s.Drag(s.Start, geometry.NewVector3(4, -defaultOffset, 0))
	assert.InDelta(t, 1, s.wall.P0().X, 1e-9)
}

func TestDragLengthChangesOffset(t *testing.T) {
	s := New(overlay.DefaultConfig())
	s.Drag(s.Length, geometry.NewVector3(2, -1.5, 0))
	assert.InDelta(t, 1.5, s.Offset(), 1e-9)
}

func TestDragMove(t *testing.T) {
	s := New(overlay.DefaultConfig())
	s.Drag(s.Move, geometry.NewVector3(1, 1, 0))
	assert.Equal(t, geometry.NewVector3(1, 1, 0), s.wall.P0())
	assert.Equal(t, geometry.NewVector3(5, 1, 0), s.wall.P1())
}

func TestBounds(t *testing.T) {
	s := New(overlay.DefaultConfig())
	b := s.Bounds()
	assert.InDelta(t, 0, b.Min.X, 1e-9)
	assert.InDelta(t, 4, b.Max.X, 1e-9)
	assert.InDelta(t, -defaultOffset, b.Min.Y, 1e-9)
	assert.InDelta(t, roomDepth, b.Max.Y, 1e-9)

	f := s.Frame()
	assert.InDelta(t, -frameMargin, f.Min.X, 1e-9)
	assert.Equal(t, b.Center(), f.Center())
}

func TestApplyKeepsGeometryAndGuides(t *testing.T) {
	s := New(overlay.DefaultConfig())
	s.Drag(s.End, geometry.NewVector3(6, -defaultOffset, 0))
	s.Panel.Enable()
	s.Fence.Disable()

	cfg := overlay.DefaultConfig()
	cfg.HandleSize = 20
	s.Apply(cfg)

	assert.InDelta(t, 6, s.wall.P1().X, 1e-9)
	assert.True(t, s.Panel.Enabled())
	assert.False(t, s.Fence.Enabled())
	assert.Equal(t, 20.0, s.End.SensorWidth)
}

func TestRender(t *testing.T) {
	s := New(overlay.DefaultConfig())
	canvas, err := Render(s, RenderOptions{
		Width:      400,
		Height:     300,
		Percentage: 50,
		Background: color.Black,
		Guides:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 200, 150), canvas.Bounds())

	lit := 0
	img := canvas.Image()
	for y := 0; y < 150; y++ {
		for x := 0; x < 200; x++ {
			px := img.RGBAAt(x, y)
			if px.R > 0 || px.G > 0 || px.B > 0 {
				lit++
			}
		}
	}
	assert.Greater(t, lit, 0)
}

func TestRenderInvalidSize(t *testing.T) {
	_, err := Render(New(overlay.DefaultConfig()), RenderOptions{Width: 0, Height: 10})
	assert.Error(t, err)
}

func TestRenderProjectionMatchesRegionView(t *testing.T) {
	s := New(overlay.DefaultConfig())
	cam := viewer.NewCamera(s.Frame())
	view := viewer.RegionView{Camera: cam, Width: 640, Height: 480}
	ctx := &overlay.Context{
		Region: overlay.Region{Width: 640, Height: 480, View: view},
		Render: overlay.RenderSettings{Camera: cam, ResolutionX: 640, ResolutionY: 480, ResolutionPercentage: 100},
	}

	p := geometry.NewVector3(2, 1, 0)
	viewport := ctx.Project(p, overlay.Dim3, geometry.Vector2{}, false)
	render := ctx.Project(p, overlay.Dim3, geometry.Vector2{}, true)
	assert.LessOrEqual(t, math.Abs(viewport.X-render.X), 1.0)
	assert.LessOrEqual(t, math.Abs(viewport.Y-render.Y), 1.0)
}
