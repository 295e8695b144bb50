package overlay

import (
	"math"

	"github.com/Benjirez/archipack/pkg/geometry"
)

// Dimension tells whether drawable coordinates are world or pixel ones
type Dimension int

const (
	Dim2 Dimension = 2 // region pixels, drawn as is
	Dim3 Dimension = 3 // world coordinates, projected
)

// Project converts p to region pixels.
//
// Dim2 points are returned unchanged. In viewport mode the region view is
// used and near is returned for points the view cannot project. In render
// mode the render camera maps p to the output image; points outside the
// frustum give out of range pixels rather than failing.
func (c *Context) Project(p geometry.Vector3, dim Dimension, near geometry.Vector2, render bool) geometry.Vector2 {
	if dim == Dim2 {
		return p.XY()
	}
	if render {
		return c.renderLocation(p, near)
	}
	if c.Region.View == nil {
		return near
	}
	loc, ok := c.Region.View.WorldToRegion(p)
	if !ok {
		return near
	}
	return loc
}

func (c *Context) renderLocation(p geometry.Vector3, near geometry.Vector2) geometry.Vector2 {
	if c.Render.Camera == nil {
		return near
	}
	w, h := c.Render.Size()
	aspect := 1.0
	if h > 0 {
		aspect = float64(w) / float64(h)
	}
	co := c.Render.Camera.WorldToCameraView(p, aspect)
	return geometry.NewVector2(math.Round(co.X*float64(w)), math.Round(co.Y*float64(h)))
}
