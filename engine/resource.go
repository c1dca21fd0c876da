package engine

import (
	"time"

	"github.com/lixenwraith/survivor/config"
	"github.com/lixenwraith/survivor/progression"
	"github.com/lixenwraith/survivor/status"
	"github.com/lixenwraith/survivor/vmath"
)

// Resource holds singleton game resources, accessed via World.Resources
type Resource struct {
	Time   *TimeResource
	Game   *GameStateResource
	Tuning *config.Tuning

	// Collaborators
	Scene Scene
	Audio AudioPlayer // nil when muted

	// Telemetry
	Status *status.Registry

	Rand *vmath.FastRand
}

// NewResource builds resources from a sanitized tuning
func NewResource(t *config.Tuning, scene Scene, audio AudioPlayer) *Resource {
	rules := t.Rules()
	return &Resource{
		Time:   &TimeResource{},
		Game:   &GameStateResource{State: progression.New(rules), Rules: rules},
		Tuning: t,
		Scene:  scene,
		Audio:  audio,
		Status: status.NewRegistry(),
		Rand:   vmath.NewFastRand(t.Seed),
	}
}

// === World Resources ===

// TimeResource is simulated time; frozen while paused
type TimeResource struct {
	// Now is simulated time since the run started
	Now time.Duration

	// DeltaTime is the clamped duration of the current frame
	DeltaTime time.Duration

	FrameNumber int64
}

// Advance moves simulated time forward by dt
func (tr *TimeResource) Advance(dt time.Duration) {
	tr.DeltaTime = dt
	tr.Now += dt
	tr.FrameNumber++
}

// Seconds returns DeltaTime in seconds
func (tr *TimeResource) Seconds() float64 {
	return tr.DeltaTime.Seconds()
}

func (tr *TimeResource) Reset() {
	*tr = TimeResource{}
}

// GameStateResource holds the player progression state
// State is replaced only by progression transition results
type GameStateResource struct {
	State progression.State
	Rules progression.Rules

	// Choices is the upgrade set offered while UpgradePending > 0
	Choices []progression.UpgradeKind
}

// Apply replaces the state with the result of a transition
func (g *GameStateResource) Apply(fn func(progression.State) progression.State) {
	g.State = fn(g.State)
}
