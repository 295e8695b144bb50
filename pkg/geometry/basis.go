package geometry

// Basis is a right handed orthonormal frame
type Basis struct {
	X, Y, Z Vector3
}

// IdentityBasis is the world frame
var IdentityBasis = Basis{
	X: Vector3{X: 1},
	Y: Vector3{Y: 1},
	Z: WorldUp,
}

// NewBasis builds a frame whose local z axis is zAxis.
// World up yields the identity frame; otherwise the local x axis lies in
// the world horizontal plane (zAxis × up).
func NewBasis(zAxis Vector3) Basis {
	z := zAxis.Normalize()
	if z.IsZero() {
		return IdentityBasis
	}
	x := z.Cross(WorldUp)
	if x.IsZero() {
		if z.Z > 0 {
			return IdentityBasis
		}
		x = Vector3{X: 1}
	}
	x = x.Normalize()
	return Basis{X: x, Y: z.Cross(x), Z: z}
}

// Apply maps local coordinates to world coordinates
func (b Basis) Apply(local Vector3) Vector3 {
	return b.X.Mul(local.X).Add(b.Y.Mul(local.Y)).Add(b.Z.Mul(local.Z))
}

// Local maps a world direction to local coordinates
func (b Basis) Local(world Vector3) Vector3 {
	return Vector3{X: world.Dot(b.X), Y: world.Dot(b.Y), Z: world.Dot(b.Z)}
}
