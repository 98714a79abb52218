package touchmap

import "testing"

func TestScreenHit(t *testing.T) {
	m := &fakeMap{tw: 48, th: 48, sx: 3, sy: 2}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inclusive lower bound", 100, 100, true},
		{"inclusive upper bound", 150, 150, true},
		{"inside", 120, 130, true},
		{"right of rect", 151, 100, false},
		{"below rect", 100, 151, false},
		{"left of rect", 99, 120, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHitTestService(pressedAt(tt.x, tt.y), m)
			if got := h.ScreenHit(100, 100, 50, 50); got != tt.want {
				t.Errorf("ScreenHit with pointer (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitsRequirePressEdge(t *testing.T) {
	m := &fakeMap{tw: 48, th: 48}
	for _, frames := range []int{0, 2, 3, 60} {
		p := &fakePointer{sample: PointerSample{X: 10, Y: 10, FramesPressed: frames}}
		h := NewHitTestService(p, m)
		if h.ScreenHit(0, 0, 100, 100) {
			t.Errorf("ScreenHit fired with FramesPressed=%d", frames)
		}
		if h.MapHit(0, 0, 100, 100) {
			t.Errorf("MapHit fired with FramesPressed=%d", frames)
		}
		if h.TileHit(0, 0) {
			t.Errorf("TileHit fired with FramesPressed=%d", frames)
		}
	}
}

func TestScreenHit_NegativeSizeNeverMatches(t *testing.T) {
	h := NewHitTestService(pressedAt(95, 95), &fakeMap{tw: 48, th: 48})
	if h.ScreenHit(100, 100, -10, -10) {
		t.Error("inverted rectangle should never match")
	}
}

func TestScreenHit_IgnoresScroll(t *testing.T) {
	m := &fakeMap{tw: 48, th: 48}
	h := NewHitTestService(pressedAt(10, 10), m)
	if !h.ScreenHit(0, 0, 20, 20) {
		t.Fatal("expected hit without scroll")
	}
	m.sx, m.sy = 5, 5
	if !h.ScreenHit(0, 0, 20, 20) {
		t.Error("screen hit should not depend on scroll")
	}
}

func TestMapHit_TranslatesByScroll(t *testing.T) {
	m := &fakeMap{tw: 48, th: 32, sx: 2, sy: 3}
	h := NewHitTestService(pressedAt(10, 5), m)

	// Pointer (10,5) with scroll (2,3) is map pixel (106, 101).
	if !h.MapHit(100, 100, 10, 10) {
		t.Error("MapHit should hit at map pixel (106,101)")
	}
	if h.MapHit(0, 0, 20, 20) {
		t.Error("MapHit should not hit the unscrolled screen position")
	}
	if !h.MapHit(106, 101, 0, 0) {
		t.Error("MapHit should include exact point")
	}
}

func TestMapHit_EqualsTranslatedScreenHit(t *testing.T) {
	rects := []Rect{
		{X: 0, Y: 0, Width: 48, Height: 48},
		{X: 96, Y: 96, Width: 10, Height: 10},
		{X: 150, Y: 40, Width: 100, Height: 30},
		{X: -20, Y: -20, Width: 10, Height: 10},
	}
	scrolls := [][2]int{{0, 0}, {1, 0}, {0, 2}, {3, 4}, {-1, -1}}
	pointers := [][2]int{{0, 0}, {10, 10}, {50, 60}, {140, 50}, {200, 10}}

	for _, s := range scrolls {
		m := &fakeMap{tw: 48, th: 32, sx: s[0], sy: s[1]}
		for _, pt := range pointers {
			h := NewHitTestService(pressedAt(pt[0], pt[1]), m)
			for _, r := range rects {
				want := h.ScreenHit(r.X-s[0]*m.tw, r.Y-s[1]*m.th, r.Width, r.Height)
				if got := h.MapHit(r.X, r.Y, r.Width, r.Height); got != want {
					t.Errorf("scroll %v pointer %v rect %+v: MapHit = %v, translated ScreenHit = %v",
						s, pt, r, got, want)
				}
			}
		}
	}
}

func TestTileHit(t *testing.T) {
	m := &fakeMap{tw: 48, th: 48}
	h := NewHitTestService(pressedAt(50, 10), m)

	if !h.TileHit(1, 0) {
		t.Error("pointer (50,10) should hit tile (1,0)")
	}
	if h.TileHit(0, 0) {
		t.Error("pointer (50,10) should not hit tile (0,0)")
	}
}

func TestTileHit_BoundaryBelongsToNextCell(t *testing.T) {
	m := &fakeMap{tw: 48, th: 48}
	h := NewHitTestService(pressedAt(48, 96), m)

	if !h.TileHit(1, 2) {
		t.Error("pointer exactly on (48,96) should hit tile (1,2)")
	}
	if h.TileHit(0, 1) || h.TileHit(0, 2) || h.TileHit(1, 1) {
		t.Error("boundary pointer should only hit one cell")
	}
}

func TestTileHit_Scroll(t *testing.T) {
	m := &fakeMap{tw: 48, th: 48, sx: 5, sy: 7}
	h := NewHitTestService(pressedAt(50, 10), m)
	if !h.TileHit(6, 7) {
		t.Error("scrolled pointer should hit tile (6,7)")
	}
	if h.TileHit(1, 0) {
		t.Error("scrolled pointer should not hit unscrolled tile")
	}
}

func TestTileHit_MatchesFloor(t *testing.T) {
	m := &fakeMap{tw: 32, th: 24, sx: 2, sy: 1}
	for px := 0; px < 100; px += 7 {
		for py := 0; py < 100; py += 11 {
			h := NewHitTestService(pressedAt(px, py), m)
			wantX := px/32 + 2
			wantY := py/24 + 1
			for tx := wantX - 1; tx <= wantX+1; tx++ {
				for ty := wantY - 1; ty <= wantY+1; ty++ {
					want := tx == wantX && ty == wantY
					if got := h.TileHit(tx, ty); got != want {
						t.Errorf("pointer (%d,%d) TileHit(%d,%d) = %v, want %v", px, py, tx, ty, got, want)
					}
				}
			}
		}
	}
}

func TestTileHit_ZeroTileSize(t *testing.T) {
	h := NewHitTestService(pressedAt(0, 0), &fakeMap{})
	if h.TileHit(0, 0) {
		t.Error("zero tile size should never hit")
	}
}

func TestPointerTile(t *testing.T) {
	m := &fakeMap{tw: 48, th: 48, sx: 1, sy: 2}
	h := NewHitTestService(&fakePointer{sample: PointerSample{X: 100, Y: 47}}, m)
	x, y := h.PointerTile()
	if x != 3 || y != 2 {
		t.Errorf("PointerTile = (%d,%d), want (3,2)", x, y)
	}
}

func TestPassThroughAccessors(t *testing.T) {
	m := &fakeMap{tw: 48, th: 32, sx: 3, sy: 4}
	h := NewHitTestService(&fakePointer{}, m)
	if h.TileWidth() != 48 || h.TileHeight() != 32 {
		t.Errorf("tile size = %dx%d", h.TileWidth(), h.TileHeight())
	}
	if h.ScrollX() != 3 || h.ScrollY() != 4 {
		t.Errorf("scroll = (%d,%d)", h.ScrollX(), h.ScrollY())
	}

	// Late overrides are observed.
	m.tw, m.th = 16, 16
	m.sx, m.sy = 0, 1
	if h.TileWidth() != 16 || h.TileHeight() != 16 || h.ScrollX() != 0 || h.ScrollY() != 1 {
		t.Error("accessors should re-query the map")
	}
}

func TestEventTileAndPixelAsymmetry(t *testing.T) {
	m := &fakeMap{tw: 48, th: 32, sx: 2, sy: 3, events: map[int][2]int{4: {5, 6}}}
	h := NewHitTestService(&fakePointer{}, m)

	x, y := h.EventTile(4)
	if x != 7 || y != 9 {
		t.Errorf("EventTile = (%d,%d), want scroll-offset (7,9)", x, y)
	}
	px, py := h.EventPixel(4)
	if px != 240 || py != 192 {
		t.Errorf("EventPixel = (%d,%d), want absolute (240,192)", px, py)
	}
}
