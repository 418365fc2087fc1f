package math3d

import "github.com/go-gl/mathgl/mgl64"

// Vec3 returns the first three components as an mgl64.Vec3. Components past
// index 2 are dropped.
func (v Vector) Vec3() mgl64.Vec3 {
	values := v.values()
	return mgl64.Vec3{values[0], values[1], values[2]}
}

// FromVec3 builds a three-component Vector from an mgl64.Vec3.
func FromVec3(v mgl64.Vec3) Vector {
	return New(v[0], v[1], v[2])
}
