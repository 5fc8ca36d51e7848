package controls

import "github.com/go-gl/mathgl/mgl32"

// ControlsOption is a functional option for configuring a controller.
type ControlsOption func(*orbitControlsImpl)

// WithTarget sets the initial focus point the camera orbits around.
//
// Parameters:
//   - target: the world-space target
//
// Returns:
//   - ControlsOption: option function to apply
func WithTarget(target mgl32.Vec3) ControlsOption {
	return func(c *orbitControlsImpl) {
		c.target = target
	}
}

// WithEnableRotate toggles rotate gestures.
//
// Parameters:
//   - enabled: whether rotate gestures start
//
// Returns:
//   - ControlsOption: option function to apply
func WithEnableRotate(enabled bool) ControlsOption {
	return func(c *orbitControlsImpl) {
		c.enableRotate = enabled
	}
}

// WithEnablePan toggles pan gestures, including keyboard panning.
//
// Parameters:
//   - enabled: whether pan gestures start
//
// Returns:
//   - ControlsOption: option function to apply
func WithEnablePan(enabled bool) ControlsOption {
	return func(c *orbitControlsImpl) {
		c.enablePan = enabled
	}
}

// WithEnableZoom toggles dolly/zoom gestures, including the wheel.
//
// Parameters:
//   - enabled: whether dolly gestures start
//
// Returns:
//   - ControlsOption: option function to apply
func WithEnableZoom(enabled bool) ControlsOption {
	return func(c *orbitControlsImpl) {
		c.enableZoom = enabled
	}
}

// WithDamping enables inertial damping with the given per-frame factor.
//
// Parameters:
//   - factor: fraction of the pending delta applied per frame (0, 1]
//
// Returns:
//   - ControlsOption: option function to apply
func WithDamping(factor float32) ControlsOption {
	return func(c *orbitControlsImpl) {
		c.enableDamping = true
		c.dampingFactor = factor
	}
}

// WithRotateSpeed sets the rotate gesture speed multiplier.
//
// Parameters:
//   - speed: multiplier for rotate deltas
//
// Returns:
//   - ControlsOption: option function to apply
func WithRotateSpeed(speed float32) ControlsOption {
	return func(c *orbitControlsImpl) {
		c.rotateSpeed = speed
	}
}

// WithPanSpeed sets the pan gesture speed multiplier.
//
// Parameters:
//   - speed: multiplier for pan deltas
//
// Returns:
//   - ControlsOption: option function to apply
func WithPanSpeed(speed float32) ControlsOption {
	return func(c *orbitControlsImpl) {
		c.panSpeed = speed
	}
}

// WithZoomSpeed sets the dolly speed exponent.
//
// Parameters:
//   - speed: exponent for dolly scale factors
//
// Returns:
//   - ControlsOption: option function to apply
func WithZoomSpeed(speed float32) ControlsOption {
	return func(c *orbitControlsImpl) {
		c.zoomSpeed = speed
	}
}

// WithKeyPanSpeed sets the pan step, in surface pixels, per arrow keypress.
//
// Parameters:
//   - speed: pixels of pan per keypress
//
// Returns:
//   - ControlsOption: option function to apply
func WithKeyPanSpeed(speed float32) ControlsOption {
	return func(c *orbitControlsImpl) {
		c.keyPanSpeed = speed
	}
}

// WithDistanceBounds clamps the camera-to-target distance for perspective cameras.
//
// Parameters:
//   - min: minimum distance
//   - max: maximum distance (may be +Inf)
//
// Returns:
//   - ControlsOption: option function to apply
func WithDistanceBounds(min, max float32) ControlsOption {
	return func(c *orbitControlsImpl) {
		c.minDistance = min
		c.maxDistance = max
	}
}

// WithZoomBounds clamps the zoom factor for orthographic cameras.
//
// Parameters:
//   - min: minimum zoom factor
//   - max: maximum zoom factor (may be +Inf)
//
// Returns:
//   - ControlsOption: option function to apply
func WithZoomBounds(min, max float32) ControlsOption {
	return func(c *orbitControlsImpl) {
		c.minZoom = min
		c.maxZoom = max
	}
}

// WithPolarBounds clamps the polar angle. Both bounds must lie in [0, pi].
//
// Parameters:
//   - min: minimum polar angle in radians
//   - max: maximum polar angle in radians
//
// Returns:
//   - ControlsOption: option function to apply
func WithPolarBounds(min, max float32) ControlsOption {
	return func(c *orbitControlsImpl) {
		c.minPolarAngle = min
		c.maxPolarAngle = max
	}
}

// WithAzimuthBounds clamps the azimuth angle. Use -Inf/+Inf to disable.
//
// Parameters:
//   - min: minimum azimuth angle in radians
//   - max: maximum azimuth angle in radians
//
// Returns:
//   - ControlsOption: option function to apply
func WithAzimuthBounds(min, max float32) ControlsOption {
	return func(c *orbitControlsImpl) {
		c.minAzimuthAngle = min
		c.maxAzimuthAngle = max
	}
}

// WithScreenSpacePanning selects whether vertical pan follows the camera's
// screen-space up axis (true) or stays orthogonal to the world up axis (false).
//
// Parameters:
//   - enabled: whether panning follows screen space
//
// Returns:
//   - ControlsOption: option function to apply
func WithScreenSpacePanning(enabled bool) ControlsOption {
	return func(c *orbitControlsImpl) {
		c.screenSpacePanning = enabled
	}
}

// WithAutoRotate enables idle auto-rotation at the given speed. A speed of 2.0
// is one revolution per 30 seconds at the 60 fps baseline.
//
// Parameters:
//   - speed: revolutions per 30 seconds at 60 fps
//
// Returns:
//   - ControlsOption: option function to apply
func WithAutoRotate(speed float32) ControlsOption {
	return func(c *orbitControlsImpl) {
		c.autoRotate = true
		c.autoRotateSpeed = speed
	}
}

// WithMouseMapping sets the mouse button to gesture mapping.
//
// Parameters:
//   - mapping: the mapping to use
//
// Returns:
//   - ControlsOption: option function to apply
func WithMouseMapping(mapping MouseMapping) ControlsOption {
	return func(c *orbitControlsImpl) {
		c.mouseMapping = mapping
	}
}

// WithTouchMapping sets the touch contact count to gesture mapping.
//
// Parameters:
//   - mapping: the mapping to use
//
// Returns:
//   - ControlsOption: option function to apply
func WithTouchMapping(mapping TouchMapping) ControlsOption {
	return func(c *orbitControlsImpl) {
		c.touchMapping = mapping
	}
}
