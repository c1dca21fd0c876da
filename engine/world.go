package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/event"
	"github.com/lixenwraith/survivor/parameter"
)

// World holds the record arenas, systems and the event pipeline
// Everything but PushEvent is owned by the frame loop goroutine
type World struct {
	Resources *Resource

	Monsters    *Arena[component.MonsterComponent]
	Projectiles *Arena[component.ProjectileComponent]

	systems []System
	queue   *event.EventQueue
	router  *event.Router

	frameSource atomic.Int64
	statFrames  *atomic.Int64
	statEvents  *atomic.Int64
}

func NewWorld(res *Resource) *World {
	q := event.NewEventQueue()
	w := &World{
		Resources:   res,
		Monsters:    NewArena[component.MonsterComponent](64),
		Projectiles: NewArena[component.ProjectileComponent](256),
		queue:       q,
		router:      event.NewRouter(q),
	}
	w.statFrames = res.Status.Ints.Get("engine.frames")
	w.statEvents = res.Status.Ints.Get("engine.events")
	return w
}

// AddSystem registers a system for updates and its declared events
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}

	w.router.Register(system)
}

// Systems returns a copy of registered systems in run order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// PushEvent enqueues an event stamped with the current frame
// Safe from any goroutine
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.queue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frameSource.Load(),
	})
}

// DispatchEvents routes pending events, including ones pushed by handlers
func (w *World) DispatchEvents() int {
	n := w.router.DispatchAll(parameter.EventDispatchIterations)
	w.statEvents.Add(int64(n))
	return n
}

// Step advances the simulation by dt
// Returns false when the frame was frozen by pause or game over
func (w *World) Step(dt time.Duration) bool {
	w.DispatchEvents()

	if w.Resources.Game.State.Inert() {
		return false
	}

	if dt < 0 {
		dt = 0
	}
	if maxDt := w.Resources.Tuning.MaxFrameDelta; maxDt > 0 && dt > maxDt {
		dt = maxDt
	}
	w.Resources.Time.Advance(dt)
	w.frameSource.Store(w.Resources.Time.FrameNumber)
	w.statFrames.Add(1)

	for _, s := range w.systems {
		if w.Resources.Game.State.Inert() && !runsWhilePaused(s) {
			continue
		}
		s.Update()
		w.DispatchEvents()
	}
	return true
}

// Reset clears records and time; systems reinitialize on EventGameReset
func (w *World) Reset() {
	w.queue.Clear()
	w.Monsters.Clear()
	w.Projectiles.Clear()
	w.Resources.Time.Reset()
	w.frameSource.Store(0)
}

func runsWhilePaused(s System) bool {
	p, ok := s.(PauseExempt)
	return ok && p.RunsWhilePaused()
}
