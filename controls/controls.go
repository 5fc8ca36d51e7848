// Package controls implements an orbit-style camera manipulation controller.
// It converts raw pointer, touch, wheel, and keyboard input into rotate, pan,
// and dolly/zoom motion of a camera around a focus target, with configurable
// limits, optional inertial damping, and auto-rotation.
//
// A controller instance is owned by a single goroutine: input handlers and
// Update must be driven from the same event loop, in delivery order. Separate
// controller instances share no state.
package controls

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/orbit-go/common"
)

// Mode is the controller's current interaction mode. Exactly one mode is active
// at a time; transitions happen only on pointer down/up/cancel events.
type Mode int

const (
	// ModeNone means no gesture is in progress.
	ModeNone Mode = iota
	// ModeRotate is a mouse-driven orbit drag.
	ModeRotate
	// ModeDolly is a mouse-driven dolly drag (vertical movement zooms).
	ModeDolly
	// ModePan is a mouse-driven pan drag.
	ModePan
	// ModeTouchRotate is a one-finger orbit drag.
	ModeTouchRotate
	// ModeTouchPan is a one-finger pan drag.
	ModeTouchPan
	// ModeTouchDollyPan is a two-finger pinch-dolly combined with midpoint pan.
	ModeTouchDollyPan
	// ModeTouchDollyRotate is a two-finger pinch-dolly combined with midpoint rotate.
	ModeTouchDollyRotate
)

// MouseAction is the gesture a mouse button maps to.
type MouseAction int

const (
	// MouseActionNone leaves the button unmapped; pressing it starts no gesture.
	MouseActionNone MouseAction = iota
	// MouseActionRotate maps the button to orbit rotation.
	MouseActionRotate
	// MouseActionDolly maps the button to dolly/zoom.
	MouseActionDolly
	// MouseActionPan maps the button to panning.
	MouseActionPan
)

// TouchGesture is the gesture a touch contact count maps to.
type TouchGesture int

const (
	// TouchGestureNone leaves the contact count unmapped.
	TouchGestureNone TouchGesture = iota
	// TouchGestureRotate maps the contact count to orbit rotation.
	TouchGestureRotate
	// TouchGesturePan maps the contact count to panning.
	TouchGesturePan
	// TouchGestureDollyPan maps the contact count to pinch-dolly plus midpoint pan.
	TouchGestureDollyPan
	// TouchGestureDollyRotate maps the contact count to pinch-dolly plus midpoint rotate.
	TouchGestureDollyRotate
)

// MouseMapping assigns a MouseAction to each mouse button.
type MouseMapping struct {
	Left   MouseAction
	Middle MouseAction
	Right  MouseAction
}

// TouchMapping assigns a TouchGesture to one-finger and two-finger contact.
type TouchMapping struct {
	One TouchGesture
	Two TouchGesture
}

// DefaultMouseMapping is the orbit-oriented mouse mapping: left rotates,
// middle dollies, right pans.
var DefaultMouseMapping = MouseMapping{
	Left:   MouseActionRotate,
	Middle: MouseActionDolly,
	Right:  MouseActionPan,
}

// PanningMouseMapping is the map-navigation mouse mapping: left pans,
// middle dollies, right rotates.
var PanningMouseMapping = MouseMapping{
	Left:   MouseActionPan,
	Middle: MouseActionDolly,
	Right:  MouseActionRotate,
}

// DefaultTouchMapping is the orbit-oriented touch mapping: one finger rotates,
// two fingers pinch-dolly and pan.
var DefaultTouchMapping = TouchMapping{
	One: TouchGestureRotate,
	Two: TouchGestureDollyPan,
}

// PanningTouchMapping is the map-navigation touch mapping: one finger pans,
// two fingers pinch-dolly and rotate.
var PanningTouchMapping = TouchMapping{
	One: TouchGesturePan,
	Two: TouchGestureDollyRotate,
}

// Surface is the input surface the controller listens to. It reports its pixel
// dimensions (used to normalize screen-space deltas) and delivers pointer and
// wheel events through registered callbacks. Passing nil to a callback setter
// deregisters the callback.
type Surface interface {
	// Width returns the surface width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the surface height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int

	// SetPointerDownCallback sets the callback for pointer press events.
	//
	// Parameters:
	//   - callback: function receiving the pointer event (or nil to deregister)
	SetPointerDownCallback(callback func(common.PointerEvent))

	// SetPointerMoveCallback sets the callback for pointer move events.
	//
	// Parameters:
	//   - callback: function receiving the pointer event (or nil to deregister)
	SetPointerMoveCallback(callback func(common.PointerEvent))

	// SetPointerUpCallback sets the callback for pointer release events.
	//
	// Parameters:
	//   - callback: function receiving the pointer event (or nil to deregister)
	SetPointerUpCallback(callback func(common.PointerEvent))

	// SetPointerCancelCallback sets the callback for pointer cancel events
	// (contact lost without an orderly release).
	//
	// Parameters:
	//   - callback: function receiving the pointer event (or nil to deregister)
	SetPointerCancelCallback(callback func(common.PointerEvent))

	// SetWheelCallback sets the callback for scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving the wheel event (or nil to deregister)
	SetWheelCallback(callback func(common.WheelEvent))

	// CapturePointer requests exclusive delivery of the identified pointer's
	// events to this surface for the duration of a gesture.
	//
	// Parameters:
	//   - id: the pointer identifier to capture
	CapturePointer(id uint32)

	// ReleasePointer ends exclusive delivery for the identified pointer.
	//
	// Parameters:
	//   - id: the pointer identifier to release
	ReleasePointer(id uint32)
}

// KeySurface is an input target that delivers key press events. It is separate
// from Surface so keyboard panning can be opted into on a different target
// (e.g. a whole window rather than one viewport).
type KeySurface interface {
	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the key event (or nil to deregister)
	SetKeyDownCallback(callback func(common.KeyEvent))
}

// Controls is an orbit camera controller. It owns the orbit state (spherical
// position around a target) of one externally owned camera and mutates that
// camera on each Update call.
//
// Configuration setters take effect on the next event or Update. Limit
// configuration is a caller contract: the controller does not validate that
// min <= max or that an azimuth range spans at most a full turn; behavior
// under such configurations is undefined.
type Controls interface {
	// Update applies pending input deltas, auto-rotation, and damping to the
	// orbit state, clamps it to the configured limits, and writes the resulting
	// position and orientation back to the camera. Call it once per animation
	// frame; discrete wheel and keyboard actions trigger it internally.
	//
	// Damping and auto-rotation constants assume a steady 60 calls per second.
	//
	// Returns:
	//   - bool: true if the camera's position, orientation, or zoom changed
	//     beyond a small threshold since the previous call
	Update() bool

	// SaveState records the current target, camera position, and zoom so a
	// later Reset can restore them.
	SaveState()

	// Reset restores the target, camera position, and zoom recorded by the last
	// SaveState (or the construction state), ends any gesture in progress, and
	// applies the restored state to the camera.
	Reset()

	// Dispose deregisters every callback the controller registered on its
	// surface and key event target. Safe to call more than once.
	Dispose()

	// ListenToKeyEvents opts into keyboard panning: arrow keys pan the target
	// by the configured key pan speed. Only one key event target is listened
	// to at a time.
	//
	// Parameters:
	//   - target: the input target to receive key events from
	ListenToKeyEvents(target KeySurface)

	// StopListenToKeyEvents deregisters the key event callback registered by
	// ListenToKeyEvents.
	StopListenToKeyEvents()

	// Mode returns the current interaction mode.
	//
	// Returns:
	//   - Mode: the active mode, ModeNone if no gesture is in progress
	Mode() Mode

	// Target returns the focus point the camera orbits around.
	//
	// Returns:
	//   - mgl32.Vec3: the world-space target
	Target() mgl32.Vec3

	// SetTarget moves the focus point. The camera reorients on the next Update.
	//
	// Parameters:
	//   - target: the new world-space target
	SetTarget(target mgl32.Vec3)

	// GetPolarAngle returns the current polar angle of the camera's offset from
	// the target, measured from the up axis.
	//
	// Returns:
	//   - float32: polar angle in radians
	GetPolarAngle() float32

	// GetAzimuthalAngle returns the current azimuth angle of the camera's
	// offset from the target, around the up axis.
	//
	// Returns:
	//   - float32: azimuth angle in radians
	GetAzimuthalAngle() float32

	// GetDistance returns the current camera-to-target distance.
	//
	// Returns:
	//   - float32: distance in world units
	GetDistance() float32

	// SetEnabled toggles the whole controller. While disabled, input events are
	// ignored; Update still applies damped motion already in flight.
	//
	// Parameters:
	//   - enabled: whether input events are processed
	SetEnabled(enabled bool)

	// SetEnableRotate toggles rotate gestures.
	//
	// Parameters:
	//   - enabled: whether rotate gestures start
	SetEnableRotate(enabled bool)

	// SetEnablePan toggles pan gestures, including keyboard panning.
	//
	// Parameters:
	//   - enabled: whether pan gestures start
	SetEnablePan(enabled bool)

	// SetEnableZoom toggles dolly/zoom gestures, including the wheel.
	//
	// Parameters:
	//   - enabled: whether dolly gestures start
	SetEnableZoom(enabled bool)

	// SetDamping toggles inertial damping and sets its per-frame factor.
	// Each Update applies factor times the pending rotation and pan deltas and
	// carries the remainder forward, so motion settles smoothly.
	//
	// Parameters:
	//   - enabled: whether damping is applied
	//   - factor: fraction of the pending delta applied per frame (0, 1]
	SetDamping(enabled bool, factor float32)

	// SetRotateSpeed sets the rotate gesture speed multiplier.
	//
	// Parameters:
	//   - speed: multiplier for rotate deltas
	SetRotateSpeed(speed float32)

	// SetPanSpeed sets the pan gesture speed multiplier.
	//
	// Parameters:
	//   - speed: multiplier for pan deltas
	SetPanSpeed(speed float32)

	// SetZoomSpeed sets the dolly speed exponent. A wheel notch scales the
	// distance by 0.95 raised to this speed.
	//
	// Parameters:
	//   - speed: exponent for dolly scale factors
	SetZoomSpeed(speed float32)

	// SetKeyPanSpeed sets the pan step, in surface pixels, applied per arrow
	// keypress.
	//
	// Parameters:
	//   - speed: pixels of pan per keypress
	SetKeyPanSpeed(speed float32)

	// SetDistanceBounds clamps the camera-to-target distance for perspective
	// cameras.
	//
	// Parameters:
	//   - min: minimum distance
	//   - max: maximum distance (may be +Inf)
	SetDistanceBounds(min, max float32)

	// SetZoomBounds clamps the zoom factor for orthographic cameras.
	//
	// Parameters:
	//   - min: minimum zoom factor
	//   - max: maximum zoom factor (may be +Inf)
	SetZoomBounds(min, max float32)

	// SetPolarBounds clamps the polar angle. Both bounds must lie in [0, pi].
	//
	// Parameters:
	//   - min: minimum polar angle in radians
	//   - max: maximum polar angle in radians
	SetPolarBounds(min, max float32)

	// SetAzimuthBounds clamps the azimuth angle. Bounds are interpreted on the
	// circle: when min > max after normalization into (-pi, pi], the permitted
	// range is the complement of (max, min). Use -Inf/+Inf to disable.
	//
	// Parameters:
	//   - min: minimum azimuth angle in radians
	//   - max: maximum azimuth angle in radians
	SetAzimuthBounds(min, max float32)

	// SetScreenSpacePanning selects how vertical pan maps to world space: along
	// the camera's screen-space up axis when true, or within the plane
	// orthogonal to the camera's up vector when false.
	//
	// Parameters:
	//   - enabled: whether panning follows screen space
	SetScreenSpacePanning(enabled bool)

	// SetAutoRotate toggles idle auto-rotation around the target and sets its
	// speed. A speed of 2.0 is one revolution per 30 seconds at 60 fps.
	// Auto-rotation pauses while a gesture is active.
	//
	// Parameters:
	//   - enabled: whether the camera auto-rotates when idle
	//   - speed: revolutions per 30 seconds at the 60 fps baseline
	SetAutoRotate(enabled bool, speed float32)

	// SetMouseMapping replaces the mouse button to gesture mapping.
	//
	// Parameters:
	//   - mapping: the new mapping
	SetMouseMapping(mapping MouseMapping)

	// SetTouchMapping replaces the touch contact count to gesture mapping.
	//
	// Parameters:
	//   - mapping: the new mapping
	SetTouchMapping(mapping TouchMapping)

	// SetChangeCallback sets the function called whenever Update moved the
	// camera or a discrete action changed the zoom.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetChangeCallback(callback func())

	// SetStartCallback sets the function called when a user gesture begins.
	// A damped settle after the gesture ends does not re-fire it.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetStartCallback(callback func())

	// SetEndCallback sets the function called when a user gesture ends.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetEndCallback(callback func())

	// HandlePointerDown feeds a pointer press into the gesture state machine.
	// Surfaces registered at construction call this automatically; it is
	// exported so headless hosts and tests can drive the controller directly.
	//
	// Parameters:
	//   - event: the pointer event
	HandlePointerDown(event common.PointerEvent)

	// HandlePointerMove feeds a pointer move into the gesture state machine.
	//
	// Parameters:
	//   - event: the pointer event
	HandlePointerMove(event common.PointerEvent)

	// HandlePointerUp feeds a pointer release into the gesture state machine.
	//
	// Parameters:
	//   - event: the pointer event
	HandlePointerUp(event common.PointerEvent)

	// HandlePointerCancel feeds a pointer cancellation into the gesture state
	// machine. Treated like a release.
	//
	// Parameters:
	//   - event: the pointer event
	HandlePointerCancel(event common.PointerEvent)

	// HandleWheel feeds a scroll wheel event into the controller. Wheel events
	// dolly immediately (followed by a synchronous Update) and are ignored
	// while a non-rotate drag is in progress.
	//
	// Parameters:
	//   - event: the wheel event
	HandleWheel(event common.WheelEvent)

	// HandleKeyDown feeds a key press into the controller. Arrow keys pan by
	// the configured key pan speed, followed by a synchronous Update.
	//
	// Parameters:
	//   - event: the key event
	//
	// Returns:
	//   - bool: true if the key was consumed; the host should suppress the
	//     target's default handling (e.g. scrolling) in that case
	HandleKeyDown(event common.KeyEvent) bool
}
