package ecs

import (
	"github.com/phanxgames/scrollreel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ViewerEventType is the Donburi event type for scrollreel viewer events.
var ViewerEventType = events.NewEventType[scrollreel.ViewerEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on ViewerEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) scrollreel.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event scrollreel.ViewerEvent) {
	ViewerEventType.Publish(s.world, event)
}
