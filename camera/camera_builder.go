package camera

import "github.com/go-gl/mathgl/mgl32"

// cameraSettings collects the configurable fields of both camera kinds.
// NewPerspective and NewOrthographic read the fields relevant to them.
type cameraSettings struct {
	position   mgl32.Vec3
	up         mgl32.Vec3
	lookTarget mgl32.Vec3

	fov    float32
	aspect float32

	left   float32
	right  float32
	top    float32
	bottom float32
	zoom   float32

	near float32
	far  float32
}

func defaultSettings() cameraSettings {
	return cameraSettings{
		position:   mgl32.Vec3{0, 0, 10},
		up:         mgl32.Vec3{0, 1, 0},
		lookTarget: mgl32.Vec3{0, 0, 0},
		fov:        defaultFov,
		aspect:     1.0,
		left:       -1,
		right:      1,
		top:        1,
		bottom:     -1,
		zoom:       1.0,
		near:       0.1,
		far:        100.0,
	}
}

// CameraOption is a functional option for configuring a camera.
type CameraOption func(*cameraSettings)

// WithPosition sets the camera's initial world-space position.
//
// Parameters:
//   - p: world-space coordinates
//
// Returns:
//   - CameraOption: option function to apply
func WithPosition(p mgl32.Vec3) CameraOption {
	return func(s *cameraSettings) {
		s.position = p
	}
}

// WithUp sets the camera's up vector. The up vector is fixed for the camera's
// lifetime; controllers read it once at construction to derive their up-correction
// rotation.
//
// Parameters:
//   - up: the up vector
//
// Returns:
//   - CameraOption: option function to apply
func WithUp(up mgl32.Vec3) CameraOption {
	return func(s *cameraSettings) {
		s.up = up
	}
}

// WithLookTarget sets the point the camera initially looks at.
//
// Parameters:
//   - target: world-space point to aim at
//
// Returns:
//   - CameraOption: option function to apply
func WithLookTarget(target mgl32.Vec3) CameraOption {
	return func(s *cameraSettings) {
		s.lookTarget = target
	}
}

// WithFov sets the vertical field of view in radians. Perspective cameras only.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraOption: option function to apply
func WithFov(fov float32) CameraOption {
	return func(s *cameraSettings) {
		s.fov = fov
	}
}

// WithAspect sets the aspect ratio (width / height). Perspective cameras only.
//
// Parameters:
//   - aspect: the aspect ratio
//
// Returns:
//   - CameraOption: option function to apply
func WithAspect(aspect float32) CameraOption {
	return func(s *cameraSettings) {
		s.aspect = aspect
	}
}

// WithFrustum sets the frustum bounds at zoom 1. Orthographic cameras only.
//
// Parameters:
//   - left, right, top, bottom: frustum bounds
//
// Returns:
//   - CameraOption: option function to apply
func WithFrustum(left, right, top, bottom float32) CameraOption {
	return func(s *cameraSettings) {
		s.left, s.right, s.top, s.bottom = left, right, top, bottom
	}
}

// WithZoom sets the initial zoom factor. Orthographic cameras only.
//
// Parameters:
//   - zoom: the zoom factor (must be positive)
//
// Returns:
//   - CameraOption: option function to apply
func WithZoom(zoom float32) CameraOption {
	return func(s *cameraSettings) {
		s.zoom = zoom
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraOption: option function to apply
func WithNear(near float32) CameraOption {
	return func(s *cameraSettings) {
		s.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraOption: option function to apply
func WithFar(far float32) CameraOption {
	return func(s *cameraSettings) {
		s.far = far
	}
}
