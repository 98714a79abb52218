// Package touchmap adds touch and click hit-testing to tile-based 2D games
// built on [Ebitengine].
//
// The package answers one question per frame: did the player just press
// inside a given area? Areas can be given in three coordinate spaces:
//
//   - screen pixels, independent of the map scroll ([HitTestService.ScreenHit])
//   - map pixels, anchored to map content ([HitTestService.MapHit])
//   - a single tile cell ([HitTestService.TileHit])
//
// Every predicate is gated on the press edge: the single frame on which the
// pointer went down. Callers polling once per frame see at most one true
// result per physical press.
//
// # Quick start
//
//	tm, err := touchmap.LoadTiledMap(os.DirFS("assets"), "town.tmx")
//	if err != nil {
//		log.Fatal(err)
//	}
//	scene := touchmap.NewScene(touchmap.NewEbitenPointer(), tm)
//
//	gate := touchmap.NewTouchGate(scene)
//	gate.Initialize(cfg.DisableTouchToMove)
//	scene.Commands().Register(gate)
//
//	// in ebiten.Game.Update:
//	if err := scene.Update(1.0 / 60); err != nil {
//		log.Print(err)
//	}
//	if scene.Hits().MapHit(px, py-th, tw, th*2) {
//		// the crystal was touched
//	}
//
// # Host interfaces
//
// The map, the pointer and the navigation handler belong to the host. The
// package reads them through [MapState], [PointerSource] and
// [NavigationSlot] and never caches what they return, so tile size
// overrides made by other components after startup are honored.
//
// # Touch-to-move
//
// [TouchGate] swaps the host's click-to-move handler for a no-op and back.
// It captures the handler that is installed when it is initialized, which
// may already be a handler wrapped by some other component, and restores
// exactly that one. The gate also answers the enableTtm and disableTtm
// commands routed through a [CommandDispatcher].
//
// # Triggers
//
// Touch conditions can be written as [Tengo] scripts and attached to map
// events. See [CompileTrigger] for the script API. Fired triggers are
// delivered to [Scene.OnTrigger] callbacks and, optionally, to an ECS world
// through touchmap/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Tengo]: https://github.com/d5/tengo
package touchmap
