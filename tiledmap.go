package touchmap

import (
	"fmt"
	"io/fs"
	"math"
	"sort"
	"strconv"

	"github.com/lafriks/go-tiled"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EventLayerName is the name of the Tiled object group whose objects become
// map events.
const EventLayerName = "events"

// EventProperty is the custom object property holding an event id. Objects
// without it use their Tiled object ID.
const EventProperty = "event"

// scrollAnim holds active scroll-to tweens for the X and Y offsets.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

type eventPos struct {
	x, y int
}

// TiledMap is a MapState backed by a Tiled map. It tracks tile size, a scroll
// offset in whole tiles and the tile each event stands on.
type TiledMap struct {
	// Width and Height are the map size in tiles.
	Width, Height int

	tileWidth  int
	tileHeight int
	scrollX    int
	scrollY    int
	events     map[int]eventPos

	scrollTween *scrollAnim
}

// NewTiledMap creates an empty map of the given size in tiles.
func NewTiledMap(width, height, tileWidth, tileHeight int) *TiledMap {
	return &TiledMap{
		Width:      width,
		Height:     height,
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		events:     make(map[int]eventPos),
	}
}

// LoadTiledMap parses a TMX file from fsys. Pass os.DirFS for files on disk
// or an embed.FS for bundled maps.
func LoadTiledMap(fsys fs.FS, path string) (*TiledMap, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("touchmap: load TMX %s: %w", path, err)
	}
	return newTiledMapFrom(m)
}

// newTiledMapFrom converts a parsed Tiled map. Objects in the events group
// are placed on the tile containing their top-left corner. Tile objects
// (gid set) are anchored at their bottom-left corner in TMX.
func newTiledMapFrom(m *tiled.Map) (*TiledMap, error) {
	if m.TileWidth <= 0 || m.TileHeight <= 0 {
		return nil, fmt.Errorf("touchmap: invalid tile size %dx%d", m.TileWidth, m.TileHeight)
	}
	tm := NewTiledMap(m.Width, m.Height, m.TileWidth, m.TileHeight)
	tw := float64(m.TileWidth)
	th := float64(m.TileHeight)
	for _, og := range m.ObjectGroups {
		if og.Name != EventLayerName {
			continue
		}
		for _, o := range og.Objects {
			id, err := objectEventID(o)
			if err != nil {
				return nil, err
			}
			if _, dup := tm.events[id]; dup {
				return nil, fmt.Errorf("touchmap: duplicate event %d (object %d)", id, o.ID)
			}
			top := o.Y
			if o.GID != 0 {
				top -= o.Height
			}
			tm.events[id] = eventPos{
				x: int(math.Floor(o.X / tw)),
				y: int(math.Floor(top / th)),
			}
		}
	}
	return tm, nil
}

func objectEventID(o *tiled.Object) (int, error) {
	for _, p := range o.Properties {
		if p.Name != EventProperty {
			continue
		}
		id, err := strconv.Atoi(p.Value)
		if err != nil {
			return 0, fmt.Errorf("touchmap: object %d: bad %s property %q: %w", o.ID, EventProperty, p.Value, err)
		}
		return id, nil
	}
	return int(o.ID), nil
}

// TileWidth returns the tile width in pixels.
func (m *TiledMap) TileWidth() int {
	return m.tileWidth
}

// TileHeight returns the tile height in pixels.
func (m *TiledMap) TileHeight() int {
	return m.tileHeight
}

// SetTileSize overrides the tile size loaded from the map.
func (m *TiledMap) SetTileSize(width, height int) {
	m.tileWidth = width
	m.tileHeight = height
}

// ScrollX returns the horizontal scroll offset in tiles.
func (m *TiledMap) ScrollX() int {
	return m.scrollX
}

// ScrollY returns the vertical scroll offset in tiles.
func (m *TiledMap) ScrollY() int {
	return m.scrollY
}

// SetScroll jumps to the given offset, cancelling any scroll animation.
func (m *TiledMap) SetScroll(x, y int) {
	m.scrollTween = nil
	m.scrollX = x
	m.scrollY = y
}

// ScrollTo animates the scroll offset to (x, y) over duration seconds. The
// offset snaps to whole tiles on every frame of the animation.
func (m *TiledMap) ScrollTo(x, y int, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.Linear
	}
	m.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(m.scrollX), float32(x), duration, easeFn),
		tweenY: gween.New(float32(m.scrollY), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (m *TiledMap) Scrolling() bool {
	return m.scrollTween != nil
}

// Update advances the scroll animation by dt seconds.
func (m *TiledMap) Update(dt float32) {
	if m.scrollTween == nil {
		return
	}
	if !m.scrollTween.doneX {
		val, done := m.scrollTween.tweenX.Update(dt)
		m.scrollX = int(math.Round(float64(val)))
		m.scrollTween.doneX = done
	}
	if !m.scrollTween.doneY {
		val, done := m.scrollTween.tweenY.Update(dt)
		m.scrollY = int(math.Round(float64(val)))
		m.scrollTween.doneY = done
	}
	if m.scrollTween.doneX && m.scrollTween.doneY {
		m.scrollTween = nil
	}
}

// EventTile returns the tile event id stands on. It panics if the map has no
// such event; use HasEvent or Event to check first.
func (m *TiledMap) EventTile(id int) (x, y int) {
	p, ok := m.events[id]
	if !ok {
		panic(fmt.Sprintf("touchmap: unknown event %d", id))
	}
	return p.x, p.y
}

// Event returns the tile event id stands on and whether it exists.
func (m *TiledMap) Event(id int) (x, y int, ok bool) {
	p, ok := m.events[id]
	return p.x, p.y, ok
}

// HasEvent reports whether the map has an event with the given id.
func (m *TiledMap) HasEvent(id int) bool {
	_, ok := m.events[id]
	return ok
}

// MoveEvent places event id on tile (x, y), adding it if needed.
func (m *TiledMap) MoveEvent(id, x, y int) {
	m.events[id] = eventPos{x: x, y: y}
}

// RemoveEvent deletes event id from the map.
func (m *TiledMap) RemoveEvent(id int) {
	delete(m.events, id)
}

// EventIDs returns all event ids in ascending order.
func (m *TiledMap) EventIDs() []int {
	ids := make([]int, 0, len(m.events))
	for id := range m.events {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
