package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/config"
	"github.com/lixenwraith/survivor/core"
	"github.com/lixenwraith/survivor/engine"
	"github.com/lixenwraith/survivor/event"
	"github.com/lixenwraith/survivor/monster"
	"github.com/lixenwraith/survivor/scene"
	"github.com/lixenwraith/survivor/vmath"
)

// recorder captures routed events for assertions
type recorder struct {
	types []event.EventType
	got   []event.GameEvent
}

func (r *recorder) Name() string                  { return "recorder" }
func (r *recorder) Priority() int                 { return 1000 }
func (r *recorder) Update()                       {}
func (r *recorder) EventTypes() []event.EventType { return r.types }
func (r *recorder) HandleEvent(ev event.GameEvent) {
	r.got = append(r.got, ev)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, ev := range r.got {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func (r *recorder) payloads(t event.EventType) []any {
	var out []any
	for _, ev := range r.got {
		if ev.Type == t {
			out = append(out, ev.Payload)
		}
	}
	return out
}

type fixture struct {
	world *engine.World
	scene *scene.Memory
	rec   *recorder
}

// newFixture builds a world with unclamped frame deltas and the given systems
func newFixture(t *testing.T, tune func(*config.Tuning), systems ...func(*engine.World) engine.System) *fixture {
	t.Helper()
	tuning := config.Default()
	tuning.Seed = 7
	tuning.MaxFrameDelta = 0
	if tune != nil {
		tune(tuning)
	}
	sc := scene.NewMemory()
	w := engine.NewWorld(engine.NewResource(tuning, sc, nil))
	for _, ctor := range systems {
		w.AddSystem(ctor(w))
	}
	rec := &recorder{types: event.Types()}
	w.AddSystem(rec)
	return &fixture{world: w, scene: sc, rec: rec}
}

// place allocates a fresh Seeking monster record outside any spawner pool
func (f *fixture) place(kind component.MonsterKind, pos vmath.Vec2F) core.Handle {
	rec := component.MonsterComponent{Kind: kind}
	monster.Spawn(&rec, f.world.Resources.Tuning.Monster(kind), pos, vmath.Vec2F{})
	return f.world.Monsters.Alloc(rec)
}

func (f *fixture) monster(t *testing.T, h core.Handle) *component.MonsterComponent {
	t.Helper()
	m, ok := f.world.Monsters.Get(h)
	if !ok {
		t.Fatalf("monster %v missing", h)
	}
	return m
}

func near(a, b vmath.Vec2F) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}
