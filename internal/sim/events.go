package sim

type EventType int

const (
	EventWallHit EventType = iota
	EventSkidStart
	EventSkidStop
	EventReset
)

type Event struct {
	Type EventType
	X, Y float64
	// Magnitude is the impact speed for wall hits and the lateral speed for
	// skid events.
	Magnitude float64
}

type EventHandler func(Event)

// EventBus delivers events synchronously on the tick goroutine.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
