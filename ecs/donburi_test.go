package ecs

import (
	"testing"

	"github.com/phanxgames/yuletide"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []yuletide.SceneEvent
	SceneEventType.Subscribe(world, func(w donburi.World, e yuletide.SceneEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(yuletide.SceneEvent{Type: yuletide.EventSpeed, Speed: 0.75})
	sink.EmitEvent(yuletide.SceneEvent{
		Type:     yuletide.EventVisibility,
		Category: yuletide.CategorySnow,
	})

	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	SceneEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Type != yuletide.EventSpeed || received[0].Speed != 0.75 {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Category != yuletide.CategorySnow || received[1].Visible {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_SceneIntegration(t *testing.T) {
	world := donburi.NewWorld()

	cfg := yuletide.DefaultConfig()
	cfg.Canopy.Count = 100
	cfg.Lights.Count = 10
	cfg.Snow.Count = 10
	scene := yuletide.NewScene(cfg)
	scene.SetEventSink(NewDonburiSink(world))

	var types []yuletide.EventType
	SceneEventType.Subscribe(world, func(w donburi.World, e yuletide.SceneEvent) {
		types = append(types, e.Type)
	})

	scene.Generate()
	scene.SetVisible(yuletide.CategoryGifts, false)
	scene.SetVisible(yuletide.CategoryGifts, false) // no change, no event
	scene.SetSpeed(1)
	events.ProcessAllEvents(world)

	want := []yuletide.EventType{yuletide.EventGenerated, yuletide.EventVisibility, yuletide.EventSpeed}
	if len(types) != len(want) {
		t.Fatalf("events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	SceneEventType.Subscribe(world, func(w donburi.World, e yuletide.SceneEvent) {
		count1++
	})
	SceneEventType.Subscribe(world, func(w donburi.World, e yuletide.SceneEvent) {
		count2++
	})

	sink.EmitEvent(yuletide.SceneEvent{Type: yuletide.EventGenerated})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
