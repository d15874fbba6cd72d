package ecs

import (
	"github.com/phanxgames/yuletide"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SceneEventType is the Donburi event type for yuletide scene events.
var SceneEventType = events.NewEventType[yuletide.SceneEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on SceneEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) yuletide.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event yuletide.SceneEvent) {
	SceneEventType.Publish(s.world, event)
}
