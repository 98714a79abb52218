// Package ecs provides ECS adapters for touchmap's trigger events.
//
// The primary adapter is [NewDonburiStore], which bridges fired touch
// triggers into a [Donburi] world as typed events. Subscribe to
// [TriggerEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
