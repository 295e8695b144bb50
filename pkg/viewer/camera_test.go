package viewer

import (
	"math"
	"testing"

	"github.com/Benjirez/archipack/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frontCamera() *Camera {
	return &Camera{
		Position: geometry.NewVector3(0, -10, 0),
		Target:   geometry.Vector3{},
		Up:       geometry.WorldUp,
		FOV:      math.Pi / 4,
	}
}

func TestWorldToCameraViewCenter(t *testing.T) {
	co := frontCamera().WorldToCameraView(geometry.Vector3{}, 1)

	assert.InDelta(t, 0.5, co.X, 1e-9)
	assert.InDelta(t, 0.5, co.Y, 1e-9)
	assert.InDelta(t, 10, co.Z, 1e-9)
}

func TestWorldToCameraViewYUp(t *testing.T) {
	cam := frontCamera()

	above := cam.WorldToCameraView(geometry.NewVector3(0, 0, 1), 1)
	right := cam.WorldToCameraView(geometry.NewVector3(1, 0, 0), 1)

	assert.Greater(t, above.Y, 0.5)
	assert.Greater(t, right.X, 0.5)
}

func TestWorldToCameraViewBehindIsFinite(t *testing.T) {
	cam := frontCamera()

	for _, p := range []geometry.Vector3{
		geometry.NewVector3(0, -20, 3),
		cam.Position,
	} {
		co := cam.WorldToCameraView(p, 1.5)
		assert.False(t, math.IsNaN(co.X) || math.IsInf(co.X, 0), "x for %v", p)
		assert.False(t, math.IsNaN(co.Y) || math.IsInf(co.Y, 0), "y for %v", p)
	}
}

func TestRegionView(t *testing.T) {
	view := RegionView{Camera: frontCamera(), Width: 200, Height: 100}

	center, ok := view.WorldToRegion(geometry.Vector3{})
	require.True(t, ok)
	assert.InDelta(t, 100, center.X, 1e-9)
	assert.InDelta(t, 50, center.Y, 1e-9)

	above, ok := view.WorldToRegion(geometry.NewVector3(0, 0, 1))
	require.True(t, ok)
	assert.Greater(t, above.Y, center.Y)

	_, ok = view.WorldToRegion(geometry.NewVector3(0, -20, 0))
	assert.False(t, ok)
}

func TestRegionToRayHitsTarget(t *testing.T) {
	view := RegionView{Camera: frontCamera(), Width: 200, Height: 100}

	origin, dir := view.RegionToRay(geometry.NewVector2(100, 50))
	hit, ok := IntersectPlane(origin, dir, geometry.Vector3{}, geometry.NewVector3(0, 1, 0))

	require.True(t, ok)
	assert.InDelta(t, 0, hit.Distance(geometry.Vector3{}), 1e-9)
}

func TestNewCameraFitsBounds(t *testing.T) {
	bbox := geometry.BoundsOf(geometry.NewVector3(-1, -1, 0), geometry.NewVector3(1, 1, 2))
	cam := NewCamera(bbox)

	assert.Equal(t, bbox.Center(), cam.Target)
	assert.InDelta(t, cam.Distance, cam.Position.Distance(cam.Target), 1e-9)

	view := RegionView{Camera: cam, Width: 640, Height: 480}
	p, ok := view.WorldToRegion(bbox.Center())
	require.True(t, ok)
	assert.InDelta(t, 320, p.X, 1e-6)
	assert.InDelta(t, 240, p.Y, 1e-6)
}

func TestZoomClamps(t *testing.T) {
	cam := frontCamera()
	cam.Distance = 1
	cam.Zoom(-0.99)
	assert.Equal(t, 0.1, cam.Distance)
}
