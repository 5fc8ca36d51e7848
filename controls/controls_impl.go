package controls

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/orbit-go/camera"
	"github.com/Carmen-Shannon/orbit-go/common"
)

// changeEpsilon is the squared-distance and small-angle threshold below which
// Update reports no change.
const changeEpsilon = 1e-6

// orbitControlsImpl is the single implementation of Controls.
// All state is owned by the goroutine driving the host's event loop; there is
// no internal locking. The orbit state is re-derived from the live camera
// position on every Update, so external code may reposition the camera between
// frames without desynchronizing the controller.
type orbitControlsImpl struct {
	camera     camera.Camera
	surface    Surface
	keySurface KeySurface

	enabled bool

	// target is the focus point the camera orbits around.
	target mgl32.Vec3

	minDistance float32
	maxDistance float32
	minZoom     float32
	maxZoom     float32

	minPolarAngle   float32
	maxPolarAngle   float32
	minAzimuthAngle float32
	maxAzimuthAngle float32

	enableDamping bool
	dampingFactor float32

	enableZoom bool
	zoomSpeed  float32

	enableRotate bool
	rotateSpeed  float32

	enablePan          bool
	panSpeed           float32
	screenSpacePanning bool
	keyPanSpeed        float32

	autoRotate      bool
	autoRotateSpeed float32

	mouseMapping MouseMapping
	touchMapping TouchMapping

	// State captured by SaveState for Reset.
	target0   mgl32.Vec3
	position0 mgl32.Vec3
	zoom0     float32

	// quat rotates the camera's up axis onto +Y; quatInverse undoes it.
	// Both are fixed at construction from the camera's up vector.
	quat        mgl32.Quat
	quatInverse mgl32.Quat

	mode Mode

	// spherical is the camera's offset from the target in the up-corrected
	// frame; sphericalDelta is the pending not-yet-applied rotation.
	spherical      common.Spherical
	sphericalDelta common.Spherical

	// scale is the transient per-frame dolly factor on the radius; reset to 1
	// after each Update.
	scale float32

	// panOffset is the pending world-space pan, folded into target on Update.
	panOffset mgl32.Vec3

	// zoomDirty is set when a dolly changed an orthographic camera's zoom, so
	// the next Update reports a change even though the position is stable.
	zoomDirty bool

	rotateStart mgl32.Vec2
	rotateEnd   mgl32.Vec2
	panStart    mgl32.Vec2
	panEnd      mgl32.Vec2
	dollyStart  mgl32.Vec2
	dollyEnd    mgl32.Vec2

	// pointers lists active pointer IDs in the order they touched down;
	// pointerPositions is the last known screen position per ID.
	pointers         []uint32
	pointerPositions map[uint32]mgl32.Vec2

	lastPosition    mgl32.Vec3
	lastQuaternion  mgl32.Quat
	hasLastSnapshot bool

	onChange func()
	onStart  func()
	onEnd    func()
}

var _ Controls = &orbitControlsImpl{}

// NewControls creates a controller for the given camera and input surface with
// orbit-oriented defaults: rotate, pan, and zoom enabled, damping off, left
// button rotates, one finger rotates. The controller registers its input
// callbacks on the surface immediately and applies one Update so the camera
// snaps onto its orbit.
//
// Parameters:
//   - cam: the externally owned camera to drive
//   - surface: the input surface to listen to
//   - options: functional options to configure the controller
//
// Returns:
//   - Controls: the newly created controller
func NewControls(cam camera.Camera, surface Surface, options ...ControlsOption) Controls {
	inf := float32(math.Inf(1))
	c := &orbitControlsImpl{
		camera:  cam,
		surface: surface,

		enabled: true,

		minDistance: 0,
		maxDistance: inf,
		minZoom:     0,
		maxZoom:     inf,

		minPolarAngle:   0,
		maxPolarAngle:   math.Pi,
		minAzimuthAngle: float32(math.Inf(-1)),
		maxAzimuthAngle: inf,

		enableDamping: false,
		dampingFactor: 0.05,

		enableZoom: true,
		zoomSpeed:  1.0,

		enableRotate: true,
		rotateSpeed:  1.0,

		enablePan:          true,
		panSpeed:           1.0,
		screenSpacePanning: true,
		keyPanSpeed:        7.0,

		autoRotate:      false,
		autoRotateSpeed: 2.0,

		mouseMapping: DefaultMouseMapping,
		touchMapping: DefaultTouchMapping,

		scale:            1,
		pointerPositions: make(map[uint32]mgl32.Vec2),
	}
	for _, option := range options {
		option(c)
	}

	up := cam.Up()
	c.quat = mgl32.QuatBetweenVectors(up, mgl32.Vec3{0, 1, 0})
	c.quatInverse = c.quat.Inverse()

	c.target0 = c.target
	c.position0 = cam.Position()
	c.zoom0 = 1
	if ortho, ok := cam.(camera.Orthographic); ok {
		c.zoom0 = ortho.Zoom()
	}

	c.connect()
	c.Update()
	return c
}

// NewPanControls creates a controller preconfigured for map-style navigation:
// the primary button and single finger pan, the secondary button and two-finger
// gestures rotate, and vertical panning stays within the world's ground plane.
// It is the same controller type as NewControls with a different preset.
//
// Parameters:
//   - cam: the externally owned camera to drive
//   - surface: the input surface to listen to
//   - options: functional options applied after the preset
//
// Returns:
//   - Controls: the newly created controller
func NewPanControls(cam camera.Camera, surface Surface, options ...ControlsOption) Controls {
	preset := []ControlsOption{
		WithMouseMapping(PanningMouseMapping),
		WithTouchMapping(PanningTouchMapping),
		WithScreenSpacePanning(false),
	}
	return NewControls(cam, surface, append(preset, options...)...)
}

// connect registers the controller's input callbacks on its surface.
func (c *orbitControlsImpl) connect() {
	c.surface.SetPointerDownCallback(c.HandlePointerDown)
	c.surface.SetPointerMoveCallback(c.HandlePointerMove)
	c.surface.SetPointerUpCallback(c.HandlePointerUp)
	c.surface.SetPointerCancelCallback(c.HandlePointerCancel)
	c.surface.SetWheelCallback(c.HandleWheel)
}

func (c *orbitControlsImpl) Update() bool {
	position := c.camera.Position()

	// Re-derive the orbit from the live camera position in the up-corrected frame.
	offset := c.quat.Rotate(position.Sub(c.target))
	c.spherical.SetFromVec3(offset)

	if c.autoRotate && c.mode == ModeNone {
		c.rotateLeft(c.autoRotationAngle())
	}

	if c.enableDamping {
		c.spherical.Theta += c.sphericalDelta.Theta * c.dampingFactor
		c.spherical.Phi += c.sphericalDelta.Phi * c.dampingFactor
	} else {
		c.spherical.Theta += c.sphericalDelta.Theta
		c.spherical.Phi += c.sphericalDelta.Phi
	}

	c.clampAzimuth()
	c.spherical.Phi = mgl32.Clamp(c.spherical.Phi, c.minPolarAngle, c.maxPolarAngle)
	c.spherical.MakeSafe()

	c.spherical.Radius = c.clampDistance(c.spherical.Radius * c.scale)

	if c.enableDamping {
		c.target = c.target.Add(c.panOffset.Mul(c.dampingFactor))
	} else {
		c.target = c.target.Add(c.panOffset)
	}

	offset = c.quatInverse.Rotate(c.spherical.Vec3())
	position = c.target.Add(offset)
	c.camera.SetPosition(position)
	c.camera.LookAt(c.target)

	if c.enableDamping {
		c.sphericalDelta.Theta *= 1 - c.dampingFactor
		c.sphericalDelta.Phi *= 1 - c.dampingFactor
		c.panOffset = c.panOffset.Mul(1 - c.dampingFactor)
	} else {
		c.sphericalDelta = common.Spherical{}
		c.panOffset = mgl32.Vec3{}
	}
	c.scale = 1

	// Change detection: squared distance for position, small-angle quaternion
	// dot for orientation. The first Update after construction always reports
	// a change so hosts render the initial frame.
	orientation := c.camera.Quaternion()
	changed := c.zoomDirty ||
		!c.hasLastSnapshot ||
		c.lastPosition.Sub(position).LenSqr() > changeEpsilon ||
		8*(1-c.lastQuaternion.Dot(orientation)) > changeEpsilon
	if changed {
		c.emitChange()
		c.lastPosition = position
		c.lastQuaternion = orientation
		c.hasLastSnapshot = true
		c.zoomDirty = false
	}
	return changed
}

// clampAzimuth clamps spherical.Theta to the configured azimuth range. Both
// bounds are normalized into (-pi, pi]; when the normalized min exceeds the
// max, the permitted range wraps across the seam and the angle is pushed to
// whichever bound is nearer.
func (c *orbitControlsImpl) clampAzimuth() {
	min, max := c.minAzimuthAngle, c.maxAzimuthAngle
	if math.IsInf(float64(min), 0) || math.IsInf(float64(max), 0) {
		return
	}

	if min < -math.Pi {
		min += twoPi
	} else if min > math.Pi {
		min -= twoPi
	}
	if max < -math.Pi {
		max += twoPi
	} else if max > math.Pi {
		max -= twoPi
	}

	if min <= max {
		c.spherical.Theta = mgl32.Clamp(c.spherical.Theta, min, max)
		return
	}
	if c.spherical.Theta > (min+max)/2 {
		c.spherical.Theta = float32(math.Max(float64(min), float64(c.spherical.Theta)))
	} else {
		c.spherical.Theta = float32(math.Min(float64(max), float64(c.spherical.Theta)))
	}
}

func (c *orbitControlsImpl) clampDistance(distance float32) float32 {
	return mgl32.Clamp(distance, c.minDistance, c.maxDistance)
}

// autoRotationAngle is the azimuth injected per frame when auto-rotating:
// one full revolution in 3600/autoRotateSpeed frames at the 60 fps baseline.
func (c *orbitControlsImpl) autoRotationAngle() float32 {
	return 2 * math.Pi / 60 / 60 * c.autoRotateSpeed
}

// zoomScale is the dolly factor for one discrete zoom step.
func (c *orbitControlsImpl) zoomScale() float32 {
	return float32(math.Pow(0.95, float64(c.zoomSpeed)))
}

func (c *orbitControlsImpl) rotateLeft(angle float32) {
	c.sphericalDelta.Theta -= angle
}

func (c *orbitControlsImpl) rotateUp(angle float32) {
	c.sphericalDelta.Phi -= angle
}

// cameraAxes derives the camera's right and up basis vectors from its position
// relative to the target and its up vector, matching the look-at basis.
func (c *orbitControlsImpl) cameraAxes() (right, up mgl32.Vec3) {
	backward := c.camera.Position().Sub(c.target)
	if backward.LenSqr() == 0 {
		return mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}
	}
	backward = backward.Normalize()
	right = c.camera.Up().Cross(backward)
	if right.LenSqr() == 0 {
		return mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}
	}
	right = right.Normalize()
	up = backward.Cross(right)
	return right, up
}

func (c *orbitControlsImpl) panLeft(distance float32) {
	right, _ := c.cameraAxes()
	c.panOffset = c.panOffset.Add(right.Mul(-distance))
}

func (c *orbitControlsImpl) panUp(distance float32) {
	right, up := c.cameraAxes()
	var dir mgl32.Vec3
	if c.screenSpacePanning {
		dir = up
	} else {
		// Constrain vertical pan to the plane orthogonal to the world up axis.
		dir = c.camera.Up().Cross(right)
	}
	c.panOffset = c.panOffset.Add(dir.Mul(distance))
}

// pan converts a screen-space delta in pixels into a world-space pan offset.
// Perspective cameras scale by the target distance so pan speed is
// distance-invariant in screen terms; orthographic cameras scale by the visible
// frustum extent.
func (c *orbitControlsImpl) pan(deltaX, deltaY float32) {
	switch cam := c.camera.(type) {
	case camera.Perspective:
		offset := cam.Position().Sub(c.target)
		targetDistance := offset.Len() * float32(math.Tan(float64(cam.Fov()/2)))
		height := float32(c.surface.Height())
		c.panLeft(2 * deltaX * targetDistance / height)
		c.panUp(2 * deltaY * targetDistance / height)
	case camera.Orthographic:
		left, right, top, bottom := cam.Frustum()
		zoom := cam.Zoom()
		c.panLeft(deltaX * (right - left) / zoom / float32(c.surface.Width()))
		c.panUp(deltaY * (top - bottom) / zoom / float32(c.surface.Height()))
	default:
		// Unknown camera kind: pan semantics are undefined, disable the gesture.
		c.enablePan = false
	}
}

// dollyIn multiplies the distance (perspective) or divides the zoom
// (orthographic) by the given factor. A factor below 1 brings the camera
// closer and magnifies the view; above 1 has the opposite effect.
func (c *orbitControlsImpl) dollyIn(dollyScale float32) {
	switch cam := c.camera.(type) {
	case camera.Orthographic:
		cam.SetZoom(mgl32.Clamp(cam.Zoom()/dollyScale, c.minZoom, c.maxZoom))
		cam.UpdateProjection()
		c.zoomDirty = true
	default:
		c.scale *= dollyScale
	}
}

// dollyOut divides the distance (perspective) or multiplies the zoom
// (orthographic) by the given factor. A factor below 1 moves the camera away
// and widens the view; above 1 inverts into a dolly in, which is how the
// pinch gesture expresses spreading fingers.
func (c *orbitControlsImpl) dollyOut(dollyScale float32) {
	switch cam := c.camera.(type) {
	case camera.Orthographic:
		cam.SetZoom(mgl32.Clamp(cam.Zoom()*dollyScale, c.minZoom, c.maxZoom))
		cam.UpdateProjection()
		c.zoomDirty = true
	default:
		c.scale /= dollyScale
	}
}

func (c *orbitControlsImpl) SaveState() {
	c.target0 = c.target
	c.position0 = c.camera.Position()
	if ortho, ok := c.camera.(camera.Orthographic); ok {
		c.zoom0 = ortho.Zoom()
	}
}

func (c *orbitControlsImpl) Reset() {
	c.target = c.target0
	c.camera.SetPosition(c.position0)
	if ortho, ok := c.camera.(camera.Orthographic); ok {
		ortho.SetZoom(c.zoom0)
		ortho.UpdateProjection()
		c.zoomDirty = true
	}

	c.sphericalDelta = common.Spherical{}
	c.panOffset = mgl32.Vec3{}
	c.scale = 1
	c.mode = ModeNone

	c.emitChange()
	c.Update()
}

func (c *orbitControlsImpl) Dispose() {
	c.surface.SetPointerDownCallback(nil)
	c.surface.SetPointerMoveCallback(nil)
	c.surface.SetPointerUpCallback(nil)
	c.surface.SetPointerCancelCallback(nil)
	c.surface.SetWheelCallback(nil)
	c.StopListenToKeyEvents()
}

func (c *orbitControlsImpl) ListenToKeyEvents(target KeySurface) {
	c.StopListenToKeyEvents()
	c.keySurface = target
	target.SetKeyDownCallback(func(event common.KeyEvent) {
		c.HandleKeyDown(event)
	})
}

func (c *orbitControlsImpl) StopListenToKeyEvents() {
	if c.keySurface == nil {
		return
	}
	c.keySurface.SetKeyDownCallback(nil)
	c.keySurface = nil
}

func (c *orbitControlsImpl) Mode() Mode {
	return c.mode
}

func (c *orbitControlsImpl) Target() mgl32.Vec3 {
	return c.target
}

func (c *orbitControlsImpl) SetTarget(target mgl32.Vec3) {
	c.target = target
}

func (c *orbitControlsImpl) GetPolarAngle() float32 {
	return c.spherical.Phi
}

func (c *orbitControlsImpl) GetAzimuthalAngle() float32 {
	return c.spherical.Theta
}

func (c *orbitControlsImpl) GetDistance() float32 {
	return c.camera.Position().Sub(c.target).Len()
}

func (c *orbitControlsImpl) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *orbitControlsImpl) SetEnableRotate(enabled bool) {
	c.enableRotate = enabled
}

func (c *orbitControlsImpl) SetEnablePan(enabled bool) {
	c.enablePan = enabled
}

func (c *orbitControlsImpl) SetEnableZoom(enabled bool) {
	c.enableZoom = enabled
}

func (c *orbitControlsImpl) SetDamping(enabled bool, factor float32) {
	c.enableDamping = enabled
	c.dampingFactor = factor
}

func (c *orbitControlsImpl) SetRotateSpeed(speed float32) {
	c.rotateSpeed = speed
}

func (c *orbitControlsImpl) SetPanSpeed(speed float32) {
	c.panSpeed = speed
}

func (c *orbitControlsImpl) SetZoomSpeed(speed float32) {
	c.zoomSpeed = speed
}

func (c *orbitControlsImpl) SetKeyPanSpeed(speed float32) {
	c.keyPanSpeed = speed
}

func (c *orbitControlsImpl) SetDistanceBounds(min, max float32) {
	c.minDistance = min
	c.maxDistance = max
}

func (c *orbitControlsImpl) SetZoomBounds(min, max float32) {
	c.minZoom = min
	c.maxZoom = max
}

func (c *orbitControlsImpl) SetPolarBounds(min, max float32) {
	c.minPolarAngle = min
	c.maxPolarAngle = max
}

func (c *orbitControlsImpl) SetAzimuthBounds(min, max float32) {
	c.minAzimuthAngle = min
	c.maxAzimuthAngle = max
}

func (c *orbitControlsImpl) SetScreenSpacePanning(enabled bool) {
	c.screenSpacePanning = enabled
}

func (c *orbitControlsImpl) SetAutoRotate(enabled bool, speed float32) {
	c.autoRotate = enabled
	c.autoRotateSpeed = speed
}

func (c *orbitControlsImpl) SetMouseMapping(mapping MouseMapping) {
	c.mouseMapping = mapping
}

func (c *orbitControlsImpl) SetTouchMapping(mapping TouchMapping) {
	c.touchMapping = mapping
}

func (c *orbitControlsImpl) SetChangeCallback(callback func()) {
	c.onChange = callback
}

func (c *orbitControlsImpl) SetStartCallback(callback func()) {
	c.onStart = callback
}

func (c *orbitControlsImpl) SetEndCallback(callback func()) {
	c.onEnd = callback
}

func (c *orbitControlsImpl) emitChange() {
	if c.onChange != nil {
		c.onChange()
	}
}

func (c *orbitControlsImpl) emitStart() {
	if c.onStart != nil {
		c.onStart()
	}
}

func (c *orbitControlsImpl) emitEnd() {
	if c.onEnd != nil {
		c.onEnd()
	}
}
