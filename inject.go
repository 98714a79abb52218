package touchmap

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates.
type syntheticPointerEvent struct {
	x, y    int
	pressed bool
}

// SyntheticPointer is a PointerSource driven by injected events instead of a
// device. Each Update consumes at most one queued event, so a press and its
// release land on different frames exactly like real input.
//
// FramesPressed follows the host convention: 1 on the frame the press is
// consumed, counting up while held, 0 after release.
type SyntheticPointer struct {
	queue  []syntheticPointerEvent
	sample PointerSample
}

// NewSyntheticPointer creates an idle synthetic pointer at (0, 0).
func NewSyntheticPointer() *SyntheticPointer {
	return &SyntheticPointer{}
}

// Pointer returns the sample produced by the last Update.
func (p *SyntheticPointer) Pointer() PointerSample {
	return p.sample
}

// InjectPress queues a press at the given screen coordinates.
func (p *SyntheticPointer) InjectPress(x, y int) {
	p.queue = append(p.queue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a move with the pointer held down. Use this between
// InjectPress and InjectRelease.
func (p *SyntheticPointer) InjectMove(x, y int) {
	p.InjectPress(x, y)
}

// InjectRelease queues a release at the given screen coordinates.
func (p *SyntheticPointer) InjectRelease(x, y int) {
	p.queue = append(p.queue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same coordinates.
// Consumes two frames.
func (p *SyntheticPointer) InjectClick(x, y int) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// Pending returns the number of queued events not yet consumed.
func (p *SyntheticPointer) Pending() int {
	return len(p.queue)
}

// Update advances one frame, consuming the next queued event if any.
func (p *SyntheticPointer) Update() {
	if len(p.queue) == 0 {
		if p.sample.Pressed() {
			p.sample.FramesPressed++
		}
		return
	}
	evt := p.queue[0]
	copy(p.queue, p.queue[1:])
	p.queue = p.queue[:len(p.queue)-1]

	p.sample.X, p.sample.Y = evt.x, evt.y
	switch {
	case evt.pressed && p.sample.Pressed():
		p.sample.FramesPressed++
	case evt.pressed:
		p.sample.FramesPressed = 1
	default:
		p.sample.FramesPressed = 0
	}
}
