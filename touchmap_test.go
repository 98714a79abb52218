package touchmap

import (
	"math"
	"testing"
)

// fakePointer is a PointerSource returning a fixed sample.
type fakePointer struct {
	sample PointerSample
}

func (p *fakePointer) Pointer() PointerSample { return p.sample }

// fakeMap is a MapState with directly settable fields.
type fakeMap struct {
	tw, th int
	sx, sy int
	events map[int][2]int
}

func (m *fakeMap) TileWidth() int  { return m.tw }
func (m *fakeMap) TileHeight() int { return m.th }
func (m *fakeMap) ScrollX() int    { return m.sx }
func (m *fakeMap) ScrollY() int    { return m.sy }
func (m *fakeMap) EventTile(id int) (int, int) {
	p := m.events[id]
	return p[0], p[1]
}

func pressedAt(x, y int) *fakePointer {
	return &fakePointer{sample: PointerSample{X: x, Y: y, FramesPressed: 1}}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 9, 40, false},
		{"outside right", 111, 40, false},
		{"outside top", 50, 19, false},
		{"outside bottom", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Rect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectContains_Degenerate(t *testing.T) {
	neg := Rect{X: 10, Y: 10, Width: -5, Height: 5}
	for x := 0; x <= 20; x++ {
		if neg.Contains(x, 12) {
			t.Fatalf("negative-width rect should contain nothing, contains (%d, 12)", x)
		}
	}
	zero := Rect{X: 10, Y: 10}
	if !zero.Contains(10, 10) {
		t.Error("zero-size rect should contain its own corner")
	}
	if zero.Contains(11, 10) {
		t.Error("zero-size rect should contain only its corner")
	}
}

func TestRectContains_LargeExtent(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: math.MaxInt, Height: math.MaxInt}
	if !r.Contains(1000, 1<<40) {
		t.Error("huge rect should contain a point inside it")
	}
	if r.Contains(9, 1000) {
		t.Error("point left of the rect should miss")
	}
}

func TestRectOffset(t *testing.T) {
	r := Rect{X: 1, Y: 2, Width: 3, Height: 4}.Offset(10, -2)
	if r != (Rect{X: 11, Y: 0, Width: 3, Height: 4}) {
		t.Errorf("Offset = %+v", r)
	}
}

func TestPointerSampleEdges(t *testing.T) {
	tests := []struct {
		frames               int
		justPressed, pressed bool
	}{
		{0, false, false},
		{1, true, true},
		{2, false, true},
		{30, false, true},
	}
	for _, tt := range tests {
		p := PointerSample{FramesPressed: tt.frames}
		if p.JustPressed() != tt.justPressed || p.Pressed() != tt.pressed {
			t.Errorf("frames=%d: JustPressed=%v Pressed=%v, want %v %v",
				tt.frames, p.JustPressed(), p.Pressed(), tt.justPressed, tt.pressed)
		}
	}
}
