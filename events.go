package yuletide

// EventType identifies a SceneEvent.
type EventType uint8

const (
	EventGenerated EventType = iota // scene generation finished
	EventVisibility                 // a category was shown or hidden
	EventSpeed                      // the target speed changed
)

func (e EventType) String() string {
	switch e {
	case EventGenerated:
		return "generated"
	case EventVisibility:
		return "visibility"
	case EventSpeed:
		return "speed"
	}
	return "unknown"
}

// SceneEvent is emitted to the scene's EventSink on state changes. Fields
// not relevant to Type keep their zero value.
type SceneEvent struct {
	Type     EventType
	Category Category
	Visible  bool
	Speed    float64
	// Instances is the total placed instance count (EventGenerated only).
	Instances int
}

// EventSink is the interface for optional ECS integration. When set on a
// Scene, state-change events are forwarded to it.
type EventSink interface {
	EmitEvent(event SceneEvent)
}
