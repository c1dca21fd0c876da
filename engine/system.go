package engine

import "github.com/lixenwraith/survivor/event"

// System is a frame-driven unit of simulation
// Update runs once per stepped frame in Priority order; HandleEvent runs during dispatch
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update()
	EventTypes() []event.EventType
	HandleEvent(ev event.GameEvent)
}

// PauseExempt systems keep running for the rest of a frame after the pause gate closes
type PauseExempt interface {
	RunsWhilePaused() bool
}
