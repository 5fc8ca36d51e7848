package controls

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/orbit-go/camera"
	"github.com/Carmen-Shannon/orbit-go/common"
)

func TestMouseButtonClassification(t *testing.T) {
	tt := []struct {
		name    string
		button  common.MouseButton
		mods    common.ModifierKey
		prepare func(c Controls)
		want    Mode
	}{
		{name: "left rotates", button: common.MouseButtonLeft, want: ModeRotate},
		{name: "middle dollies", button: common.MouseButtonMiddle, want: ModeDolly},
		{name: "right pans", button: common.MouseButtonRight, want: ModePan},
		{name: "ctrl swaps left to pan", button: common.MouseButtonLeft, mods: common.ModControl, want: ModePan},
		{name: "meta swaps left to pan", button: common.MouseButtonLeft, mods: common.ModSuper, want: ModePan},
		{name: "shift swaps right to rotate", button: common.MouseButtonRight, mods: common.ModShift, want: ModeRotate},
		{
			name:    "rotate disabled blocks left",
			button:  common.MouseButtonLeft,
			prepare: func(c Controls) { c.SetEnableRotate(false) },
			want:    ModeNone,
		},
		{
			name:    "pan disabled blocks right",
			button:  common.MouseButtonRight,
			prepare: func(c Controls) { c.SetEnablePan(false) },
			want:    ModeNone,
		},
		{
			name:    "zoom disabled blocks middle",
			button:  common.MouseButtonMiddle,
			prepare: func(c Controls) { c.SetEnableZoom(false) },
			want:    ModeNone,
		},
		{
			name:    "pan disabled blocks the ctrl swap too",
			button:  common.MouseButtonLeft,
			mods:    common.ModControl,
			prepare: func(c Controls) { c.SetEnablePan(false) },
			want:    ModeNone,
		},
		{
			name:   "unmapped button starts nothing",
			button: common.MouseButton(7),
			want:   ModeNone,
		},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestControls()
			if tc.prepare != nil {
				tc.prepare(c)
			}
			c.HandlePointerDown(mouseDown(100, 100, tc.button, tc.mods))
			if got := c.Mode(); got != tc.want {
				t.Errorf("mode = %v, want %v", got, tc.want)
			}
			c.HandlePointerUp(mouseMove(100, 100))
			if got := c.Mode(); got != ModeNone {
				t.Errorf("mode after release = %v, want ModeNone", got)
			}
		})
	}
}

func TestTouchContactClassification(t *testing.T) {
	c, _ := newTestControls()

	c.HandlePointerDown(touch(1, 100, 100))
	if got := c.Mode(); got != ModeTouchRotate {
		t.Fatalf("one contact mode = %v, want ModeTouchRotate", got)
	}

	c.HandlePointerDown(touch(2, 200, 100))
	if got := c.Mode(); got != ModeTouchDollyPan {
		t.Fatalf("two contact mode = %v, want ModeTouchDollyPan", got)
	}

	// Lifting one finger degrades back to the one-contact gesture without
	// ending the interaction.
	ends := 0
	c.SetEndCallback(func() { ends++ })
	c.HandlePointerUp(touch(2, 200, 100))
	if got := c.Mode(); got != ModeTouchRotate {
		t.Errorf("mode after partial lift = %v, want ModeTouchRotate", got)
	}
	if ends != 0 {
		t.Errorf("partial lift fired %d end callbacks, want 0", ends)
	}

	c.HandlePointerUp(touch(1, 100, 100))
	if got := c.Mode(); got != ModeNone {
		t.Errorf("mode after final lift = %v, want ModeNone", got)
	}
	if ends != 1 {
		t.Errorf("final lift fired %d end callbacks, want 1", ends)
	}
}

func TestTouchMappingOverride(t *testing.T) {
	c, _ := newTestControls()
	c.SetTouchMapping(TouchMapping{One: TouchGesturePan, Two: TouchGestureDollyRotate})

	c.HandlePointerDown(touch(1, 100, 100))
	if got := c.Mode(); got != ModeTouchPan {
		t.Errorf("one contact mode = %v, want ModeTouchPan", got)
	}
	c.HandlePointerDown(touch(2, 200, 100))
	if got := c.Mode(); got != ModeTouchDollyRotate {
		t.Errorf("two contact mode = %v, want ModeTouchDollyRotate", got)
	}
}

func TestPinchDollyMonotonicity(t *testing.T) {
	tt := []struct {
		name   string
		startX float32 // moving finger start
		endX   float32 // moving finger end
		// the second finger stays at x = 300
		wantDistance float32
	}{
		// Spreading doubles the pinch span: the camera halves its distance.
		{name: "pinch out brings camera closer", startX: 200, endX: 100, wantDistance: 5},
		// Narrowing halves the span: the camera doubles its distance.
		{name: "pinch in moves camera away", startX: 250, endX: 275, wantDistance: 20},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			surface := newStubSurface()
			cam := camera.NewPerspective()
			c := NewControls(cam, surface)

			c.HandlePointerDown(touch(1, tc.startX, 100))
			c.HandlePointerDown(touch(2, 300, 100))
			c.HandlePointerMove(touch(1, tc.endX, 100))

			if got := c.GetDistance(); !almostEqual(got, tc.wantDistance, 1e-2) {
				t.Errorf("distance = %v, want %v", got, tc.wantDistance)
			}
		})
	}
}

func TestPinchOnOrthographicScalesZoom(t *testing.T) {
	surface := newStubSurface()
	cam := camera.NewOrthographic()
	c := NewControls(cam, surface)

	// Narrow the pinch span from 100 to 50 pixels: the view widens, halving
	// the zoom factor; the camera itself does not move.
	c.HandlePointerDown(touch(1, 200, 100))
	c.HandlePointerDown(touch(2, 300, 100))
	c.HandlePointerMove(touch(1, 250, 100))

	if got := cam.Zoom(); !almostEqual(got, 0.5, 1e-3) {
		t.Errorf("zoom after pinch in = %v, want 0.5", got)
	}
	if got := c.GetDistance(); !almostEqual(got, 10, 1e-2) {
		t.Errorf("distance after orthographic pinch = %v, want unchanged 10", got)
	}
}

func TestThirdFingerDoesNotDisturbGesture(t *testing.T) {
	c, _ := newTestControls()

	c.HandlePointerDown(touch(1, 200, 100))
	c.HandlePointerDown(touch(2, 300, 100))
	c.HandlePointerDown(touch(3, 400, 400))
	if got := c.Mode(); got != ModeTouchDollyPan {
		t.Fatalf("mode with three contacts = %v, want ModeTouchDollyPan", got)
	}

	before := c.GetDistance()
	target := c.Target()
	c.HandlePointerMove(touch(3, 50, 50))

	if got := c.GetDistance(); !almostEqual(got, before, 1e-4) {
		t.Errorf("third finger move changed distance %v -> %v", before, got)
	}
	if got := c.Target(); !vec3AlmostEqual(got, target, 1e-4) {
		t.Errorf("third finger move changed target %v -> %v", target, got)
	}
}

func TestUntrackedPointerMoveIgnored(t *testing.T) {
	c, _ := newTestControls()

	before := c.GetAzimuthalAngle()
	c.HandlePointerMove(mouseMove(500, 500))
	if got := c.GetAzimuthalAngle(); !almostEqual(got, before, 1e-6) {
		t.Errorf("move without a press changed azimuth %v -> %v", before, got)
	}
	if got := c.Mode(); got != ModeNone {
		t.Errorf("mode = %v, want ModeNone", got)
	}
}

func TestPointerCancelEndsGesture(t *testing.T) {
	c, _ := newTestControls()

	ends := 0
	c.SetEndCallback(func() { ends++ })

	c.HandlePointerDown(touch(1, 100, 100))
	c.HandlePointerCancel(touch(1, 100, 100))

	if got := c.Mode(); got != ModeNone {
		t.Errorf("mode after cancel = %v, want ModeNone", got)
	}
	if ends != 1 {
		t.Errorf("cancel fired %d end callbacks, want 1", ends)
	}
}

func TestWheelIgnoredDuringPanDrag(t *testing.T) {
	c, _ := newTestControls()

	c.HandlePointerDown(mouseDown(100, 100, common.MouseButtonRight, 0))
	c.HandleWheel(common.WheelEvent{DeltaY: 120})
	if got := c.GetDistance(); !almostEqual(got, 10, 1e-4) {
		t.Errorf("wheel during pan changed distance to %v, want 10", got)
	}
}

func TestWheelAllowedDuringRotateDrag(t *testing.T) {
	c, _ := newTestControls()

	c.HandlePointerDown(mouseDown(100, 100, common.MouseButtonLeft, 0))
	c.HandleWheel(common.WheelEvent{DeltaY: 120})
	if got := c.GetDistance(); !almostEqual(got, 10/0.95, 1e-3) {
		t.Errorf("wheel during rotate = %v, want %v", got, 10/0.95)
	}
}

func TestMouseDollyDrag(t *testing.T) {
	c, _ := newTestControls()

	c.HandlePointerDown(mouseDown(100, 100, common.MouseButtonMiddle, 0))

	// Dragging down dollies out, dragging back up dollies in.
	c.HandlePointerMove(mouseMove(100, 150))
	if got := c.GetDistance(); !almostEqual(got, 10/0.95, 1e-3) {
		t.Fatalf("distance after downward dolly drag = %v, want %v", got, 10/0.95)
	}
	c.HandlePointerMove(mouseMove(100, 100))
	if got := c.GetDistance(); !almostEqual(got, 10, 1e-3) {
		t.Errorf("distance after drag back up = %v, want 10", got)
	}
}

func TestArrowKeysPanTarget(t *testing.T) {
	tt := []struct {
		name string
		code uint32
		axis func(c Controls) float32
		sign float32
	}{
		{name: "up", code: common.KeyUp, axis: func(c Controls) float32 { return c.Target().Y() }, sign: 1},
		{name: "down", code: common.KeyDown, axis: func(c Controls) float32 { return c.Target().Y() }, sign: -1},
		{name: "left", code: common.KeyLeft, axis: func(c Controls) float32 { return c.Target().X() }, sign: -1},
		{name: "right", code: common.KeyRight, axis: func(c Controls) float32 { return c.Target().X() }, sign: 1},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestControls()
			if !c.HandleKeyDown(common.KeyEvent{Code: tc.code}) {
				t.Fatal("arrow key was not consumed")
			}
			if got := tc.axis(c); got*tc.sign <= 0 {
				t.Errorf("target axis = %v, want sign %v", got, tc.sign)
			}
		})
	}
}

func TestNonArrowKeyNotConsumed(t *testing.T) {
	c, _ := newTestControls()
	if c.HandleKeyDown(common.KeyEvent{Code: common.KeySpace}) {
		t.Error("non-arrow key was consumed")
	}
	if got := c.Target(); !vec3AlmostEqual(got, mgl32.Vec3{}, 1e-6) {
		t.Errorf("non-arrow key moved the target to %v", got)
	}
}

func TestKeyPanDisabledWithPan(t *testing.T) {
	c, _ := newTestControls()
	c.SetEnablePan(false)
	if c.HandleKeyDown(common.KeyEvent{Code: common.KeyUp}) {
		t.Error("key pan consumed a key while panning was disabled")
	}
}

func TestListenToKeyEvents(t *testing.T) {
	c, _ := newTestControls()
	target := &stubKeyTarget{}

	c.ListenToKeyEvents(target)
	if target.onKeyDown == nil {
		t.Fatal("ListenToKeyEvents did not register a callback")
	}

	target.onKeyDown(common.KeyEvent{Code: common.KeyRight})
	if almostEqual(c.Target().X(), 0, 1e-6) {
		t.Error("key event through the registered target did not pan")
	}

	c.StopListenToKeyEvents()
	if target.onKeyDown != nil {
		t.Error("StopListenToKeyEvents left the callback registered")
	}
	c.StopListenToKeyEvents() // must be safe to repeat
}

func TestKeyPanSpeedScalesStep(t *testing.T) {
	slow, _ := newTestControls()
	fast, _ := newTestControls()
	fast.SetKeyPanSpeed(14)

	slow.HandleKeyDown(common.KeyEvent{Code: common.KeyUp})
	fast.HandleKeyDown(common.KeyEvent{Code: common.KeyUp})

	if got, want := fast.Target().Y(), 2*slow.Target().Y(); !almostEqual(got, want, 1e-4) {
		t.Errorf("doubled key pan speed moved %v, want %v", got, want)
	}
}
