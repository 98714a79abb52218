package touchmap

import "math"

// HitTestService answers press-edge hit tests against the current pointer
// sample and converts between screen, map-pixel and tile coordinates.
//
// Nothing is cached: every call re-reads the pointer and the map, so values
// changed by the host between calls (scroll, tile size) are always honored.
type HitTestService struct {
	pointer PointerSource
	m       MapState
}

// NewHitTestService creates a HitTestService reading from the given pointer
// source and map.
func NewHitTestService(pointer PointerSource, m MapState) *HitTestService {
	return &HitTestService{pointer: pointer, m: m}
}

// ScreenHit reports whether the pointer was just pressed inside the closed
// screen-space rectangle [x, x+width] × [y, y+height].
func (h *HitTestService) ScreenHit(x, y, width, height int) bool {
	p := h.pointer.Pointer()
	if !p.JustPressed() {
		return false
	}
	return Rect{X: x, Y: y, Width: width, Height: height}.Contains(p.X, p.Y)
}

// MapHit is ScreenHit with the rectangle given in map-pixel space. The
// pointer is moved into map space by adding the scroll offset times the
// tile size.
func (h *HitTestService) MapHit(x, y, width, height int) bool {
	p := h.pointer.Pointer()
	if !p.JustPressed() {
		return false
	}
	mx, my := h.mapPixel(p)
	return Rect{X: x, Y: y, Width: width, Height: height}.Contains(mx, my)
}

// TileHit reports whether the pointer was just pressed inside tile cell
// (tileX, tileY). Cells are half-open: a pointer exactly on a cell boundary
// belongs to the cell to its right or below.
func (h *HitTestService) TileHit(tileX, tileY int) bool {
	p := h.pointer.Pointer()
	if !p.JustPressed() {
		return false
	}
	fx, fy := h.fractionalTile(p)
	tx, ty := float64(tileX), float64(tileY)
	return fx >= tx && fx < tx+1 &&
		fy >= ty && fy < ty+1
}

// PointerTile returns the tile cell under the pointer, using the same
// conversion as TileHit. It ignores the press state.
func (h *HitTestService) PointerTile() (x, y int) {
	fx, fy := h.fractionalTile(h.pointer.Pointer())
	return int(math.Floor(fx)), int(math.Floor(fy))
}

// TileWidth returns the host's current tile width in pixels.
func (h *HitTestService) TileWidth() int {
	return h.m.TileWidth()
}

// TileHeight returns the host's current tile height in pixels.
func (h *HitTestService) TileHeight() int {
	return h.m.TileHeight()
}

// ScrollX returns the host's current horizontal scroll offset in tiles.
func (h *HitTestService) ScrollX() int {
	return h.m.ScrollX()
}

// ScrollY returns the host's current vertical scroll offset in tiles.
func (h *HitTestService) ScrollY() int {
	return h.m.ScrollY()
}

// EventTile returns the tile position of event id offset by the current
// scroll.
//
// Unlike EventPixel the result includes the scroll offset. Existing trigger
// scripts depend on this, so keep the two asymmetric.
func (h *HitTestService) EventTile(id int) (x, y int) {
	ex, ey := h.m.EventTile(id)
	return h.m.ScrollX() + ex, h.m.ScrollY() + ey
}

// EventPixel returns the absolute map-pixel position of event id's tile.
// It does not apply the scroll offset.
func (h *HitTestService) EventPixel(id int) (x, y int) {
	ex, ey := h.m.EventTile(id)
	return ex * h.m.TileWidth(), ey * h.m.TileHeight()
}

// mapPixel converts the pointer position to map-pixel space.
func (h *HitTestService) mapPixel(p PointerSample) (x, y int) {
	return p.X + h.m.ScrollX()*h.m.TileWidth(),
		p.Y + h.m.ScrollY()*h.m.TileHeight()
}

// fractionalTile converts the pointer position to fractional tile
// coordinates. A zero tile size yields +Inf or NaN, which no cell contains.
func (h *HitTestService) fractionalTile(p PointerSample) (x, y float64) {
	tw := float64(h.m.TileWidth())
	th := float64(h.m.TileHeight())
	return float64(p.X)/tw + float64(h.m.ScrollX()),
		float64(p.Y)/th + float64(h.m.ScrollY())
}
