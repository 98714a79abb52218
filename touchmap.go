package touchmap

// Rect is an axis-aligned rectangle in integer pixels. The coordinate system
// has its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside. Rectangles with a negative width
// or height contain nothing.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x-r.X <= r.Width &&
		y >= r.Y && y-r.Y <= r.Height
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// PointerSample is a snapshot of the primary pointer for one frame.
type PointerSample struct {
	// X and Y are the pointer position in screen pixels.
	X, Y int
	// FramesPressed counts how many consecutive frames the pointer has been
	// held down. 0 means released; 1 marks the press edge.
	FramesPressed int
}

// JustPressed reports whether this sample is the press edge.
func (p PointerSample) JustPressed() bool {
	return p.FramesPressed == 1
}

// Pressed reports whether the pointer is down on this frame.
func (p PointerSample) Pressed() bool {
	return p.FramesPressed > 0
}

// TriggerEvent is delivered when a trigger condition evaluates to true.
type TriggerEvent struct {
	Trigger string // trigger name
	EventID int    // map event the trigger is attached to (0 if none)
	X, Y    int    // pointer position in screen pixels
	Frame   uint64 // scene frame the trigger fired on
}
