package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeySpace     = 32  // Spacebar (ASCII)
	KeyEsc       = 256 // Escape key (GLFW)
	KeyBackspace = 259 // Backspace key (GLFW)

	KeyRight = 262 // Right arrow key (GLFW)
	KeyLeft  = 263 // Left arrow key (GLFW)
	KeyDown  = 264 // Down arrow key (GLFW)
	KeyUp    = 265 // Up arrow key (GLFW)

	KeyHome = 268 // Home key (GLFW)
	KeyEnd  = 269 // End key (GLFW)
)

// Additional non-printable keys
const (
	KeyLeftShift    = 340 // Left Shift (GLFW)
	KeyLeftControl  = 341 // Left Control (GLFW)
	KeyRightShift   = 344 // Right Shift (GLFW)
	KeyRightControl = 345 // Right Control (GLFW)
)

// MousePointerID is the well-known pointer identifier used for mouse-like devices.
// A mouse is a single pointer regardless of which buttons are pressed, so every
// mouse-originated PointerEvent carries this ID. Touch contacts use surface-assigned
// identifiers of their own.
const MousePointerID uint32 = 0
