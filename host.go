package touchmap

// PointerSource provides the current pointer sample. Implementations are
// owned by the host and refreshed once per frame.
type PointerSource interface {
	Pointer() PointerSample
}

// Updater is implemented by pointer sources that sample a device and need a
// per-frame tick. Scene.Update calls it before any hit test runs.
type Updater interface {
	Update()
}

// MapState is the host's view of the current map.
//
// Scroll offsets are in tiles, tile sizes in pixels. EventTile returns the
// tile an event stands on; asking for an unknown event is a precondition
// violation and behaves however the host's lookup does.
type MapState interface {
	TileWidth() int
	TileHeight() int
	ScrollX() int
	ScrollY() int
	EventTile(id int) (x, y int)
}

// EventLookup is optionally implemented by MapState to let callers check an
// event id before asking for its position.
type EventLookup interface {
	HasEvent(id int) bool
}

// NavigationHandler is the per-frame callback the host invokes while
// processing pointer input on the map view.
type NavigationHandler func(p PointerSample)

// NavigationSlot is the host extension point holding the active
// NavigationHandler.
type NavigationSlot interface {
	NavigationHandler() NavigationHandler
	SetNavigationHandler(h NavigationHandler)
}

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, trigger events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event TriggerEvent)
}
