package controls

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/orbit-go/common"
)

// twoPi is the rotation produced by dragging across one full surface height.
const twoPi = float32(2 * math.Pi)

func (c *orbitControlsImpl) HandlePointerDown(event common.PointerEvent) {
	if !c.enabled {
		return
	}

	if len(c.pointers) == 0 {
		c.surface.CapturePointer(event.ID)
	}

	if c.isTracked(event.ID) {
		// Re-entrant down for an already tracked identifier: refresh in place.
		c.trackPointer(event.ID, event.X, event.Y)
		return
	}
	c.addPointer(event.ID)
	c.trackPointer(event.ID, event.X, event.Y)

	if event.Type == common.PointerTouch {
		c.classifyTouch()
	} else {
		c.classifyMouse(event)
	}
	if c.mode != ModeNone {
		c.emitStart()
	}
}

func (c *orbitControlsImpl) HandlePointerMove(event common.PointerEvent) {
	if !c.enabled {
		return
	}
	if !c.isTracked(event.ID) {
		return
	}
	c.trackPointer(event.ID, event.X, event.Y)

	if event.Type == common.PointerTouch {
		// Contacts beyond the first two do not participate in gestures.
		if !c.isPrimaryPair(event.ID) {
			return
		}
		c.onTouchMove(event)
	} else {
		c.onMouseMove(event)
	}
}

func (c *orbitControlsImpl) HandlePointerUp(event common.PointerEvent) {
	c.removePointer(event.ID)

	switch len(c.pointers) {
	case 0:
		c.surface.ReleasePointer(event.ID)
		if c.mode != ModeNone {
			c.emitEnd()
		}
		c.mode = ModeNone
	default:
		// One or more contacts remain: degrade to the gesture matching the
		// remaining contact count, keeping the gesture alive.
		if event.Type == common.PointerTouch {
			c.classifyTouch()
		}
	}
}

func (c *orbitControlsImpl) HandlePointerCancel(event common.PointerEvent) {
	c.HandlePointerUp(event)
}

func (c *orbitControlsImpl) HandleWheel(event common.WheelEvent) {
	if !c.enabled || !c.enableZoom {
		return
	}
	// Wheel zoom must not fight an active drag gesture.
	if c.mode != ModeNone && c.mode != ModeRotate {
		return
	}

	c.emitStart()
	if event.DeltaY < 0 {
		c.dollyIn(c.zoomScale())
	} else if event.DeltaY > 0 {
		c.dollyOut(c.zoomScale())
	}
	c.Update()
	c.emitEnd()
}

func (c *orbitControlsImpl) HandleKeyDown(event common.KeyEvent) bool {
	if !c.enabled || !c.enablePan {
		return false
	}

	switch event.Code {
	case common.KeyUp:
		c.pan(0, c.keyPanSpeed)
	case common.KeyDown:
		c.pan(0, -c.keyPanSpeed)
	case common.KeyLeft:
		c.pan(c.keyPanSpeed, 0)
	case common.KeyRight:
		c.pan(-c.keyPanSpeed, 0)
	default:
		return false
	}
	c.Update()
	return true
}

// classifyMouse selects the interaction mode for a fresh mouse button press.
// Holding ctrl, meta, or shift swaps the rotate and pan assignments of the
// pressed button. Unmapped buttons and disabled gestures resolve to ModeNone.
func (c *orbitControlsImpl) classifyMouse(event common.PointerEvent) {
	var action MouseAction
	switch event.Button {
	case common.MouseButtonLeft:
		action = c.mouseMapping.Left
	case common.MouseButtonMiddle:
		action = c.mouseMapping.Middle
	case common.MouseButtonRight:
		action = c.mouseMapping.Right
	default:
		action = MouseActionNone
	}

	modified := event.Mods&(common.ModControl|common.ModSuper|common.ModShift) != 0
	position := mgl32.Vec2{event.X, event.Y}

	switch action {
	case MouseActionDolly:
		if !c.enableZoom {
			c.mode = ModeNone
			return
		}
		c.dollyStart = position
		c.mode = ModeDolly
	case MouseActionRotate:
		if modified {
			c.startMousePan(position)
		} else {
			c.startMouseRotate(position)
		}
	case MouseActionPan:
		if modified {
			c.startMouseRotate(position)
		} else {
			c.startMousePan(position)
		}
	default:
		c.mode = ModeNone
	}
}

func (c *orbitControlsImpl) startMouseRotate(position mgl32.Vec2) {
	if !c.enableRotate {
		c.mode = ModeNone
		return
	}
	c.rotateStart = position
	c.mode = ModeRotate
}

func (c *orbitControlsImpl) startMousePan(position mgl32.Vec2) {
	if !c.enablePan {
		c.mode = ModeNone
		return
	}
	c.panStart = position
	c.mode = ModePan
}

// classifyTouch selects the interaction mode from the current contact count:
// one contact uses the single-finger mapping, two or more use the two-finger
// mapping on the first two tracked contacts. Called on touch-down and again
// when a lift changes the contact count mid-gesture.
func (c *orbitControlsImpl) classifyTouch() {
	switch len(c.pointers) {
	case 0:
		c.mode = ModeNone
	case 1:
		switch c.touchMapping.One {
		case TouchGestureRotate:
			if !c.enableRotate {
				c.mode = ModeNone
				return
			}
			c.rotateStart = c.gestureCentroid()
			c.mode = ModeTouchRotate
		case TouchGesturePan:
			if !c.enablePan {
				c.mode = ModeNone
				return
			}
			c.panStart = c.gestureCentroid()
			c.mode = ModeTouchPan
		default:
			c.mode = ModeNone
		}
	default:
		switch c.touchMapping.Two {
		case TouchGestureDollyPan:
			if !c.enableZoom && !c.enablePan {
				c.mode = ModeNone
				return
			}
			if c.enableZoom {
				c.startTouchDolly()
			}
			if c.enablePan {
				c.panStart = c.gestureCentroid()
			}
			c.mode = ModeTouchDollyPan
		case TouchGestureDollyRotate:
			if !c.enableZoom && !c.enableRotate {
				c.mode = ModeNone
				return
			}
			if c.enableZoom {
				c.startTouchDolly()
			}
			if c.enableRotate {
				c.rotateStart = c.gestureCentroid()
			}
			c.mode = ModeTouchDollyRotate
		default:
			c.mode = ModeNone
		}
	}
}

func (c *orbitControlsImpl) startTouchDolly() {
	a, b, ok := c.firstTwoPositions()
	if !ok {
		return
	}
	c.dollyStart = mgl32.Vec2{0, a.Sub(b).Len()}
}

func (c *orbitControlsImpl) onMouseMove(event common.PointerEvent) {
	position := mgl32.Vec2{event.X, event.Y}
	switch c.mode {
	case ModeRotate:
		if c.enableRotate {
			c.moveRotate(position)
			c.Update()
		}
	case ModeDolly:
		if c.enableZoom {
			c.moveMouseDolly(position)
			c.Update()
		}
	case ModePan:
		if c.enablePan {
			c.movePan(position)
			c.Update()
		}
	}
}

func (c *orbitControlsImpl) onTouchMove(event common.PointerEvent) {
	// Midpoint of the moving contact and its partner for two-finger modes;
	// the contact itself when the partner is missing or the mode is one-finger.
	position := mgl32.Vec2{event.X, event.Y}
	if second, ok := c.secondOf(event.ID); ok {
		position = position.Add(second).Mul(0.5)
	}

	switch c.mode {
	case ModeTouchRotate:
		if !c.enableRotate {
			return
		}
		c.moveRotate(position)
	case ModeTouchPan:
		if !c.enablePan {
			return
		}
		c.movePan(position)
	case ModeTouchDollyPan:
		if !c.enableZoom && !c.enablePan {
			return
		}
		if c.enableZoom {
			c.moveTouchDolly()
		}
		if c.enablePan {
			c.movePan(position)
		}
	case ModeTouchDollyRotate:
		if !c.enableZoom && !c.enableRotate {
			return
		}
		if c.enableZoom {
			c.moveTouchDolly()
		}
		if c.enableRotate {
			c.moveRotate(position)
		}
	default:
		return
	}
	c.Update()
}

// moveRotate accumulates a rotation delta from the gesture position. The
// surface height normalizes both axes: a drag across one full height is one
// full revolution.
func (c *orbitControlsImpl) moveRotate(position mgl32.Vec2) {
	c.rotateEnd = position
	delta := c.rotateEnd.Sub(c.rotateStart).Mul(c.rotateSpeed)
	height := float32(c.surface.Height())
	c.rotateLeft(twoPi * delta.X() / height)
	c.rotateUp(twoPi * delta.Y() / height)
	c.rotateStart = c.rotateEnd
}

func (c *orbitControlsImpl) movePan(position mgl32.Vec2) {
	c.panEnd = position
	delta := c.panEnd.Sub(c.panStart).Mul(c.panSpeed)
	c.pan(delta.X(), delta.Y())
	c.panStart = c.panEnd
}

// moveMouseDolly dollies one zoom step per direction change of vertical drag:
// dragging down dollies out, dragging up dollies in.
func (c *orbitControlsImpl) moveMouseDolly(position mgl32.Vec2) {
	c.dollyEnd = position
	delta := c.dollyEnd.Sub(c.dollyStart)
	if delta.Y() > 0 {
		c.dollyOut(c.zoomScale())
	} else if delta.Y() < 0 {
		c.dollyIn(c.zoomScale())
	}
	c.dollyStart = c.dollyEnd
}

// moveTouchDolly converts the change in pinch distance into a dolly. The scale
// is the ratio of successive distances raised to the zoom speed, applied as a
// dolly-out: spreading the fingers (ratio > 1) brings the camera closer,
// pinching them together moves it away (widens the view for orthographic).
func (c *orbitControlsImpl) moveTouchDolly() {
	a, b, ok := c.firstTwoPositions()
	if !ok {
		// Second contact lost mid-pinch: skip the dolly rather than fail.
		return
	}
	c.dollyEnd = mgl32.Vec2{0, a.Sub(b).Len()}
	if c.dollyStart.Y() <= 0 {
		c.dollyStart = c.dollyEnd
		return
	}
	ratio := float32(math.Pow(float64(c.dollyEnd.Y()/c.dollyStart.Y()), float64(c.zoomSpeed)))
	c.dollyOut(ratio)
	c.dollyStart = c.dollyEnd
}
