package rlhost

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Benjirez/archipack/pkg/geometry"
	"github.com/Benjirez/archipack/pkg/viewer"
)

// View projects world points with a raylib camera
type View struct {
	Camera rl.Camera3D
	Width  int32
	Height int32
}

// Camera3D converts the orbit camera to a raylib camera
func Camera3D(c *viewer.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   toVec3(c.Position),
		Target:     toVec3(c.Target),
		Up:         toVec3(c.Up),
		Fovy:       float32(c.FOV * 180 / math.Pi),
		Projection: rl.CameraPerspective,
	}
}

// WorldToRegion projects p, origin bottom left; ok is false behind the
// camera
func (v View) WorldToRegion(p geometry.Vector3) (geometry.Vector2, bool) {
	pos := toVec3(p)
	forward := rl.Vector3Subtract(v.Camera.Target, v.Camera.Position)
	if rl.Vector3DotProduct(rl.Vector3Subtract(pos, v.Camera.Position), forward) <= 0 {
		return geometry.Vector2{}, false
	}
	s := rl.GetWorldToScreenEx(pos, v.Camera, v.Width, v.Height)
	return geometry.NewVector2(float64(s.X), float64(v.Height)-float64(s.Y)), true
}

func toVec3(p geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(p.X), Y: float32(p.Y), Z: float32(p.Z)}
}
