// Package ecs provides ECS adapters for touchmap.
package ecs

import (
	"github.com/phanxgames/touchmap"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TriggerEventType is the Donburi event type for fired touch triggers.
// Subscribe to this in your ECS systems to react to touched map events.
var TriggerEventType = events.NewEventType[touchmap.TriggerEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Trigger events are published to TriggerEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) touchmap.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event touchmap.TriggerEvent) {
	TriggerEventType.Publish(s.world, event)
}
