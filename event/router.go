package event

// Handler processes specific event types
// Systems implement this interface to receive routed events
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// Router dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Events pushed by handlers are settled in later passes of the same dispatch
type Router struct {
	handlers   map[EventType][]Handler
	queue      *EventQueue
	dispatched [eventTypeCount]uint64
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *EventQueue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes pending events and routes them in FIFO order
// Cascaded events are settled for up to maxPasses passes; returns events dispatched
func (r *Router) DispatchAll(maxPasses int) int {
	total := 0
	for pass := 0; pass < maxPasses; pass++ {
		events := r.queue.Consume()
		if len(events) == 0 {
			break
		}
		for _, ev := range events {
			if ev.Type >= 0 && ev.Type < eventTypeCount {
				r.dispatched[ev.Type]++
			}
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(ev)
			}
		}
		total += len(events)
	}
	return total
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}

// Dispatched returns how many events of type t were routed since creation
func (r *Router) Dispatched(t EventType) uint64 {
	if t < 0 || t >= eventTypeCount {
		return 0
	}
	return r.dispatched[t]
}
