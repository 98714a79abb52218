package touchmap

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenPointer samples the primary pointer from Ebitengine once per frame.
//
// While any touch is active the tracked touch wins over the mouse. The
// tracked touch is kept until it lifts; a new one is chosen as the touch
// that has been held the longest. Without touches, the cursor position and
// the left mouse button are used.
type EbitenPointer struct {
	sample   PointerSample
	touchIDs []ebiten.TouchID
	touchID  ebiten.TouchID
	tracking bool
}

// NewEbitenPointer creates a pointer source backed by Ebitengine input.
func NewEbitenPointer() *EbitenPointer {
	return &EbitenPointer{}
}

// Pointer returns the sample taken by the last Update.
func (p *EbitenPointer) Pointer() PointerSample {
	return p.sample
}

// Update samples input. Must be called from ebiten.Game.Update.
func (p *EbitenPointer) Update() {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		id := p.primaryTouch()
		x, y := ebiten.TouchPosition(id)
		p.sample = PointerSample{X: x, Y: y, FramesPressed: inpututil.TouchPressDuration(id)}
		return
	}
	p.tracking = false

	x, y := ebiten.CursorPosition()
	p.sample = PointerSample{
		X:             x,
		Y:             y,
		FramesPressed: inpututil.MouseButtonPressDuration(ebiten.MouseButtonLeft),
	}
}

// primaryTouch returns the touch to follow this frame. touchIDs must not be
// empty.
func (p *EbitenPointer) primaryTouch() ebiten.TouchID {
	if p.tracking {
		for _, id := range p.touchIDs {
			if id == p.touchID {
				return id
			}
		}
	}
	best := p.touchIDs[0]
	bestFrames := inpututil.TouchPressDuration(best)
	for _, id := range p.touchIDs[1:] {
		if d := inpututil.TouchPressDuration(id); d > bestFrames {
			best, bestFrames = id, d
		}
	}
	p.touchID = best
	p.tracking = true
	return best
}
