// package common contains common types that are used throughout this library. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// PointerType distinguishes mouse-like devices from touch contacts.
// Gesture classification branches on this: mouse pointers select a gesture
// by button and modifier keys, touch pointers by the number of active contacts.
type PointerType int

const (
	// PointerMouse is a mouse-like pointing device (mouse, trackpad, pen in mouse mode).
	PointerMouse PointerType = iota
	// PointerTouch is a direct touch contact on the input surface.
	PointerTouch
)

// MouseButton identifies a physical mouse button.
// Values match GLFW mouse button codes.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#MouseButton
type MouseButton int

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

// ModifierKey is a bitmask of modifier keys held during an input event.
// Values match GLFW modifier bits.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#ModifierKey
type ModifierKey int

const (
	ModShift   ModifierKey = 0x0001
	ModControl ModifierKey = 0x0002
	ModAlt     ModifierKey = 0x0004
	ModSuper   ModifierKey = 0x0008
)

// PointerEvent describes a pointer-down, pointer-move, pointer-up, or pointer-cancel
// event delivered by an input surface. Coordinates are in surface pixels with the
// origin at the top-left corner.
type PointerEvent struct {
	// ID uniquely identifies the pointer for its down..up lifetime.
	// Mouse-like devices reuse a single well-known ID; each touch contact gets its own.
	ID uint32

	// Type distinguishes mouse-like pointers from touch contacts.
	Type PointerType

	// X is the horizontal pointer position in surface pixels.
	X float32

	// Y is the vertical pointer position in surface pixels.
	Y float32

	// Button is the mouse button that triggered a down/up event.
	// Meaningless for move/cancel events and for touch pointers.
	Button MouseButton

	// Mods holds the modifier keys held when the event fired.
	Mods ModifierKey
}

// WheelEvent describes a scroll wheel event. Positive DeltaY means scrolling
// toward the user (pulling back), which dollies the camera out; negative means
// scrolling away, which dollies in. Surfaces whose native scroll axis points
// the other way flip the sign before emitting the event.
type WheelEvent struct {
	DeltaX float32
	DeltaY float32
}

// KeyEvent describes a key press on a key event target.
type KeyEvent struct {
	// Code is the virtual key code of the pressed key (see key_codes.go).
	Code uint32
}
