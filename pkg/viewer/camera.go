package viewer

import (
	"math"

	"github.com/Benjirez/archipack/pkg/geometry"
)

// nearClip is the closest depth considered in front of the camera
const nearClip = 0.01

// Camera represents a perspective camera orbiting a target, Z up
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Vertical field of view in radians
	Distance  float64
	RotationX float64 // Elevation above the XY plane
	RotationY float64 // Heading around the Z axis
}

// NewCamera creates a new camera positioned to view a bounding box
func NewCamera(bbox geometry.BoundingBox) *Camera {
	size := bbox.Size()
	distance := math.Max(size.X, math.Max(size.Y, size.Z)) * 2.0
	if distance < 1 {
		distance = 1
	}

	c := &Camera{
		Target:    bbox.Center(),
		Up:        geometry.WorldUp,
		FOV:       math.Pi / 4, // 45 degrees
		Distance:  distance,
		RotationX: 0.5,
		RotationY: 0.4,
	}
	c.UpdatePosition()
	return c
}

// UpdatePosition updates camera position based on rotation angles
func (c *Camera) UpdatePosition() {
	// Spherical coordinates around Z; heading 0 looks along +Y
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := -c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)
	z := c.Distance * math.Sin(c.RotationX)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX += deltaX
	c.RotationY += deltaY

	// Clamp elevation to stay clear of the poles
	maxAngle := math.Pi/2 - 0.1
	if c.RotationX > maxAngle {
		c.RotationX = maxAngle
	}
	if c.RotationX < -maxAngle {
		c.RotationX = -maxAngle
	}

	c.UpdatePosition()
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Distance *= (1.0 + delta)
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
	c.UpdatePosition()
}

// frame returns the camera forward, right and up axes
func (c *Camera) frame() (forward, right, up geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// cameraSpace returns the point in camera coordinates, z being the depth
func (c *Camera) cameraSpace(point geometry.Vector3) geometry.Vector3 {
	forward, right, up := c.frame()
	relative := point.Sub(c.Position)
	return geometry.NewVector3(relative.Dot(right), relative.Dot(up), relative.Dot(forward))
}

// Project projects a 3D point to 2D screen coordinates, origin top left
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	p := c.cameraSpace(point)
	x, y, z := p.X, p.Y, p.Z

	// Perspective projection
	if z <= nearClip {
		z = nearClip // Prevent division by zero
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}

// WorldToCameraView maps a point to normalized frame coordinates:
// x and y are 0..1 inside the frame with y growing upward, z is the depth.
// Points outside the frustum or behind the camera map outside 0..1 but
// never fail.
func (c *Camera) WorldToCameraView(point geometry.Vector3, aspect float64) geometry.Vector3 {
	p := c.cameraSpace(point)
	z := p.Z
	if math.Abs(z) < geometry.Epsilon {
		z = geometry.Epsilon
	}
	if aspect <= 0 {
		aspect = 1
	}

	fovScale := math.Tan(c.FOV / 2)
	ndcX := p.X / (z * fovScale * aspect)
	ndcY := p.Y / (z * fovScale)

	return geometry.NewVector3((ndcX+1)/2, (ndcY+1)/2, p.Z)
}

// Unproject converts 2D screen coordinates back to 3D ray
func (c *Camera) Unproject(screenX, screenY, width, height float64) (origin, direction geometry.Vector3) {
	// Convert screen coordinates to normalized device coordinates (-1 to 1)
	ndcX := (2.0 * screenX / width) - 1.0
	ndcY := 1.0 - (2.0 * screenY / height)

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	forward, right, up := c.frame()

	// Calculate direction in world space
	rayDir := forward.Add(right.Mul(ndcX * fovScale * aspect)).Add(up.Mul(ndcY * fovScale))
	rayDir = rayDir.Normalize()

	return c.Position, rayDir
}

// RegionView projects world points into a region of the given size,
// origin bottom left with Y up
type RegionView struct {
	Camera *Camera
	Width  float64
	Height float64
}

// WorldToRegion projects the point; ok is false behind the camera
func (v RegionView) WorldToRegion(point geometry.Vector3) (geometry.Vector2, bool) {
	if v.Camera == nil || v.Width <= 0 || v.Height <= 0 {
		return geometry.Vector2{}, false
	}
	if v.Camera.cameraSpace(point).Z <= nearClip {
		return geometry.Vector2{}, false
	}
	x, y, _ := v.Camera.Project(point, v.Width, v.Height)
	return geometry.NewVector2(x, v.Height-y), true
}

// RegionToRay casts a ray through a region pixel, origin bottom left
func (v RegionView) RegionToRay(pixel geometry.Vector2) (origin, direction geometry.Vector3) {
	return v.Camera.Unproject(pixel.X, v.Height-pixel.Y, v.Width, v.Height)
}

// IntersectPlane intersects a ray with the plane through point with the
// given normal; ok is false when the ray is parallel or points away
func IntersectPlane(origin, direction, point, normal geometry.Vector3) (geometry.Vector3, bool) {
	denom := direction.Dot(normal)
	if math.Abs(denom) < geometry.Epsilon {
		return geometry.Vector3{}, false
	}
	t := point.Sub(origin).Dot(normal) / denom
	if t < 0 {
		return geometry.Vector3{}, false
	}
	return origin.Add(direction.Mul(t)), true
}
