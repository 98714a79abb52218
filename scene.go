package touchmap

import "github.com/d5/tengo/v2"

// Scene is a minimal per-frame host: it owns the pointer, the map, the
// navigation slot, the command chain and the trigger set, and runs them in a
// fixed order each frame.
type Scene struct {
	pointer  PointerSource
	mapState MapState
	hits     *HitTestService
	commands *CommandDispatcher
	triggers TriggerSet
	module   map[string]tengo.Object

	navigation NavigationHandler
	dest       destination

	handlers triggerRegistry
	store    EntityStore
	runner   *TestRunner

	frame uint64
	debug bool
}

type destination struct {
	x, y int
	set  bool
}

// NewScene creates a scene reading from the given pointer and map. The
// navigation slot starts with the scene's click-to-move handler, which sets
// Destination on every press edge.
func NewScene(pointer PointerSource, m MapState) *Scene {
	s := &Scene{
		pointer:  pointer,
		mapState: m,
		hits:     NewHitTestService(pointer, m),
		commands: NewCommandDispatcher(),
	}
	s.navigation = s.navigateToPointer
	return s
}

// Hits returns the scene's hit test service.
func (s *Scene) Hits() *HitTestService {
	return s.hits
}

// Commands returns the scene's command chain.
func (s *Scene) Commands() *CommandDispatcher {
	return s.commands
}

// Command routes a command through the scene's chain and reports whether a
// handler handled it.
func (s *Scene) Command(name string, args ...string) bool {
	return s.commands.Dispatch(name, args...)
}

// Map returns the map the scene reads from.
func (s *Scene) Map() MapState {
	return s.mapState
}

// Pointer returns the pointer source.
func (s *Scene) Pointer() PointerSource {
	return s.pointer
}

// Frame returns the number of completed Update calls.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// NavigationHandler returns the active navigation handler.
func (s *Scene) NavigationHandler() NavigationHandler {
	return s.navigation
}

// SetNavigationHandler replaces the active navigation handler. nil disables
// navigation entirely.
func (s *Scene) SetNavigationHandler(h NavigationHandler) {
	s.navigation = h
}

// Destination returns the tile chosen by the last click-to-move press.
func (s *Scene) Destination() (x, y int, ok bool) {
	return s.dest.x, s.dest.y, s.dest.set
}

// ClearDestination forgets the click-to-move destination.
func (s *Scene) ClearDestination() {
	s.dest = destination{}
}

// navigateToPointer is the default click-to-move handler.
func (s *Scene) navigateToPointer(p PointerSample) {
	if !p.JustPressed() {
		return
	}
	if s.mapState.TileWidth() <= 0 || s.mapState.TileHeight() <= 0 {
		return
	}
	x, y := s.hits.PointerTile()
	s.dest = destination{x: x, y: y, set: true}
	if s.debug {
		debugLogf("destination (%d, %d) from pointer (%d, %d)", x, y, p.X, p.Y)
	}
}

// ScriptModule returns the touch module bound to this scene, creating it on
// first use.
func (s *Scene) ScriptModule() map[string]tengo.Object {
	if s.module == nil {
		s.module = NewScriptModule(s.hits, s.commands)
	}
	return s.module
}

// CompileTrigger compiles a trigger against this scene's script module and
// adds it, replacing any trigger with the same name.
func (s *Scene) CompileTrigger(name string, eventID int, src []byte) (*Trigger, error) {
	t, err := CompileTrigger(name, eventID, src, s.ScriptModule())
	if err != nil {
		return nil, err
	}
	s.triggers.Replace(t)
	return t, nil
}

// LoadTrigger reads a trigger script from path and adds it, replacing any
// trigger with the same name.
func (s *Scene) LoadTrigger(name string, eventID int, path string) (*Trigger, error) {
	t, err := LoadTriggerFile(name, eventID, path, s.ScriptModule())
	if err != nil {
		return nil, err
	}
	s.triggers.Replace(t)
	return t, nil
}

// Triggers returns the scene's trigger set.
func (s *Scene) Triggers() *TriggerSet {
	return &s.triggers
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug logging to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Update advances one frame:
//
//  1. the test runner, if any, queues its next step
//  2. the pointer source samples input (when it implements Updater)
//  3. the map advances its animations by dt seconds
//  4. triggers are evaluated against the fresh sample
//  5. the navigation handler runs
//
// Trigger script errors are returned after navigation has run; they do not
// abort the frame.
func (s *Scene) Update(dt float32) error {
	if s.runner != nil {
		s.runner.step(s)
	}
	if u, ok := s.pointer.(Updater); ok {
		u.Update()
	}
	if mu, ok := s.mapState.(interface{ Update(dt float32) }); ok {
		mu.Update(dt)
	}

	p := s.pointer.Pointer()
	err := s.triggers.Evaluate(func(t *Trigger) {
		s.fireTrigger(TriggerEvent{
			Trigger: t.Name,
			EventID: t.EventID,
			X:       p.X,
			Y:       p.Y,
			Frame:   s.frame,
		})
	})
	if err != nil && s.debug {
		debugLogf("%v", err)
	}

	if s.navigation != nil {
		s.navigation(p)
	}
	s.frame++
	return err
}

// --- Trigger callbacks ---

type triggerHandler struct {
	id uint32
	fn func(TriggerEvent)
}

type triggerRegistry struct {
	handlers []triggerHandler
	nextID   uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id  uint32
	reg *triggerRegistry
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = triggerHandler{}
			h.reg.handlers = s[:len(s)-1]
			return
		}
	}
}

// OnTrigger registers a scene-level callback for fired triggers.
func (s *Scene) OnTrigger(fn func(TriggerEvent)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.handlers = append(s.handlers.handlers, triggerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers}
}

func (s *Scene) fireTrigger(evt TriggerEvent) {
	// Scene-level handlers first.
	for _, h := range s.handlers.handlers {
		h.fn(evt)
	}
	// ECS bridge.
	if s.store != nil {
		s.store.EmitEvent(evt)
	}
}

