package window

// WindowBuilderOption is a functional option for configuring a window before
// its platform half is created. Use the With* functions to create options.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the text shown in the window's title bar.
//
// Parameters:
//   - title: the title bar text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithSize sets the initial client area dimensions. These are also the
// dimensions input surfaces report until the first resize, so pointer deltas
// normalize against them.
//
// Parameters:
//   - width: initial client area width in pixels
//   - height: initial client area height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.width = width
		w.height = height
	}
}

// WithMinSize sets the smallest client area the user can resize the window to.
//
// Parameters:
//   - width: minimum client area width in pixels
//   - height: minimum client area height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMinSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.minWidth = width
		w.minHeight = height
	}
}

// WithMaxSize sets the largest client area the user can resize the window to.
//
// Parameters:
//   - width: maximum client area width in pixels
//   - height: maximum client area height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMaxSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.maxWidth = width
		w.maxHeight = height
	}
}
