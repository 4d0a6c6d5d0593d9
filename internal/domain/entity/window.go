package entity

// WindowID uniquely identifies a managed OS window.
type WindowID string

// WindowSize is the sizing mode applied alongside a window's rectangle.
type WindowSize int

const (
	WindowSizeNormal    WindowSize = iota // Positioned at its rectangle
	WindowSizeMinimized                   // Minimized, rectangle ignored
	WindowSizeMaximized                   // Maximized on its monitor
)

func (s WindowSize) String() string {
	switch s {
	case WindowSizeMinimized:
		return "minimized"
	case WindowSizeMaximized:
		return "maximized"
	default:
		return "normal"
	}
}

// WindowState is one entry of a layout pass: where a window goes and how it is sized.
type WindowState struct {
	Window    WindowID
	Rectangle Rectangle[int]
	Size      WindowSize
}

// WindowPosition is a WindowState after frame offsets are applied, ready for the OS.
type WindowPosition struct {
	Window    WindowID
	Rectangle Rectangle[int]
	Size      WindowSize
}

// WindowInsertionType selects how an engine with a flat window list moves a
// window onto the slot of another one.
type WindowInsertionType int

const (
	// WindowInsertionSwap exchanges the two windows.
	WindowInsertionSwap WindowInsertionType = iota
	// WindowInsertionRotate moves the window to the target index and shifts the entries in between.
	WindowInsertionRotate
)

func (t WindowInsertionType) String() string {
	if t == WindowInsertionRotate {
		return "rotate"
	}
	return "swap"
}

// ParseWindowInsertionType parses "swap" or "rotate".
func ParseWindowInsertionType(s string) (WindowInsertionType, bool) {
	switch s {
	case "swap":
		return WindowInsertionSwap, true
	case "rotate":
		return WindowInsertionRotate, true
	default:
		return WindowInsertionSwap, false
	}
}
