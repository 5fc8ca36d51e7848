package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// polarEpsilon keeps the polar angle away from the exact poles. A polar angle of
// exactly 0 or pi makes the offset vector parallel to the up axis and the look-at
// basis degenerate.
const polarEpsilon = 1e-6

// Spherical is a point expressed in spherical coordinates relative to an origin,
// using the Y-up convention: Phi is the polar angle measured down from the +Y axis
// in [0, pi], Theta is the azimuth angle around the Y axis measured from the +Z
// axis, and Radius is the distance from the origin.
type Spherical struct {
	// Radius is the distance from the origin. Must be positive for a meaningful
	// direction; a zero radius has no defined angles.
	Radius float32

	// Phi is the polar angle from the +Y axis in radians.
	Phi float32

	// Theta is the azimuth angle around the Y axis in radians, from the +Z axis.
	Theta float32
}

// SetFromVec3 sets the spherical coordinates from a cartesian offset vector.
// A zero vector produces zero radius and zero angles.
//
// Parameters:
//   - v: the cartesian offset to convert
func (s *Spherical) SetFromVec3(v mgl32.Vec3) {
	s.Radius = v.Len()
	if s.Radius == 0 {
		s.Theta = 0
		s.Phi = 0
		return
	}
	s.Theta = float32(math.Atan2(float64(v.X()), float64(v.Z())))
	s.Phi = float32(math.Acos(float64(mgl32.Clamp(v.Y()/s.Radius, -1, 1))))
}

// Vec3 converts the spherical coordinates back to a cartesian offset vector.
//
// Returns:
//   - mgl32.Vec3: the cartesian offset
func (s Spherical) Vec3() mgl32.Vec3 {
	sinPhiRadius := s.Radius * float32(math.Sin(float64(s.Phi)))
	return mgl32.Vec3{
		sinPhiRadius * float32(math.Sin(float64(s.Theta))),
		s.Radius * float32(math.Cos(float64(s.Phi))),
		sinPhiRadius * float32(math.Cos(float64(s.Theta))),
	}
}

// MakeSafe clamps the polar angle into the open interval (0, pi) so the offset
// vector is never parallel to the up axis.
func (s *Spherical) MakeSafe() {
	s.Phi = mgl32.Clamp(s.Phi, polarEpsilon, math.Pi-polarEpsilon)
}
