// Package window provides platform windowing and input event handling.
// It wraps a GLFW window behind a common interface and translates native
// mouse, scroll, and key callbacks into the pointer-event model consumed by
// the controls package. A Window satisfies both controls.Surface and
// controls.KeySurface, so it can be handed directly to controls.NewControls.
package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Carmen-Shannon/orbit-go/common"
	"github.com/Carmen-Shannon/orbit-go/controls"
)

// Window provides platform windowing and input event handling.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetPointerDownCallback sets the callback for pointer press events.
	// Mouse button presses are delivered as pointer events carrying the
	// well-known mouse pointer identifier.
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

	// SetPointerCancelCallback sets the callback for pointer cancel events.
	// The GLFW backend has no cancel concept and never fires it; the setter
	// exists so other surface implementations can.
	//
	// Parameters:
	//   - callback: function receiving the pointer event (or nil to deregister)
	SetPointerCancelCallback(callback func(common.PointerEvent))

	// SetWheelCallback sets the callback for mouse scroll wheel events.
	// DeltaY is positive when scrolling toward the user (dolly out).
	//
	// Parameters:
	//   - callback: function receiving the wheel event (or nil to deregister)
	SetWheelCallback(callback func(common.WheelEvent))

	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the key event (or nil to deregister)
	SetKeyDownCallback(callback func(common.KeyEvent))

	// CapturePointer marks a pointer as exclusively delivered to this window.
	// GLFW keeps routing cursor motion to the window while a button is held,
	// so the GLFW backend only records the capture.
	//
	// Parameters:
	//   - id: the pointer identifier to capture
	CapturePointer(id uint32)

	// ReleasePointer clears the capture recorded by CapturePointer.
	//
	// Parameters:
	//   - id: the pointer identifier to release
	ReleasePointer(id uint32)

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls the update callback each iteration.
	ProcessMessages()

	// Width returns the current window client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current window client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// maxWidth is the maximum allowed window width during resize.
	maxWidth int

	// maxHeight is the maximum allowed window height during resize.
	maxHeight int

	// minWidth is the minimum allowed window width during resize.
	minWidth int

	// minHeight is the minimum allowed window height during resize.
	minHeight int

	// width is the current window client area width in pixels.
	width int

	// height is the current window client area height in pixels.
	height int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// capturedPointer is the identifier recorded by CapturePointer, or nil.
	capturedPointer *uint32

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// onResize is called when the window is resized.
	onResize func(width, height int)

	// onPointerDown is called when a mouse button is pressed.
	onPointerDown func(common.PointerEvent)

	// onPointerMove is called when the pointer moves within the window.
	onPointerMove func(common.PointerEvent)

	// onPointerUp is called when a mouse button is released.
	onPointerUp func(common.PointerEvent)

	// onPointerCancel is reserved for surfaces that can lose contacts.
	onPointerCancel func(common.PointerEvent)

	// onWheel is called for mouse wheel events.
	onWheel func(common.WheelEvent)

	// onKeyDown is called when a key is pressed.
	onKeyDown func(common.KeyEvent)
}

var _ Window = &engineWindow{}
var _ controls.Surface = &engineWindow{}
var _ controls.KeySurface = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window (not yet spawned)
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:     "Default Window Title",
		maxWidth:  1600,
		maxHeight: 1200,
		minWidth:  600,
		minHeight: 200,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetPointerDownCallback(callback func(common.PointerEvent)) {
	w.onPointerDown = callback
}

func (w *engineWindow) SetPointerMoveCallback(callback func(common.PointerEvent)) {
	w.onPointerMove = callback
}

func (w *engineWindow) SetPointerUpCallback(callback func(common.PointerEvent)) {
	w.onPointerUp = callback
}

func (w *engineWindow) SetPointerCancelCallback(callback func(common.PointerEvent)) {
	w.onPointerCancel = callback
}

func (w *engineWindow) SetWheelCallback(callback func(common.WheelEvent)) {
	w.onWheel = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(common.KeyEvent)) {
	w.onKeyDown = callback
}

func (w *engineWindow) CapturePointer(id uint32) {
	w.capturedPointer = &id
}

func (w *engineWindow) ReleasePointer(id uint32) {
	if w.capturedPointer != nil && *w.capturedPointer == id {
		w.capturedPointer = nil
	}
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
