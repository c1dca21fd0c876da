// Package game wires the simulation into a session that frontends drive once per frame
package game

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/survivor/config"
	"github.com/lixenwraith/survivor/engine"
	"github.com/lixenwraith/survivor/event"
	"github.com/lixenwraith/survivor/parameter"
	"github.com/lixenwraith/survivor/progression"
	"github.com/lixenwraith/survivor/status"
	"github.com/lixenwraith/survivor/system"
)

// Session owns one world and its systems
// All methods must be called from the frame goroutine
type Session struct {
	world *engine.World

	weapon *system.WeaponSystem

	runID   uuid.UUID
	statRun *status.AtomicString

	// lastResult is set on game over and cleared on reset
	lastResult *event.GameOverPayload
}

// NewSession builds a session; a zero tuning seed is replaced with a time-based one
func NewSession(tuning *config.Tuning, scene engine.Scene, audio engine.AudioPlayer) *Session {
	t := *tuning
	if t.Seed == 0 {
		t.Seed = uint64(time.Now().UnixNano())
	}

	world := engine.NewWorld(engine.NewResource(&t, scene, audio))
	s := &Session{world: world}

	weapon := system.NewWeaponSystem(world)
	s.weapon = weapon.(*system.WeaponSystem)

	world.AddSystem(system.NewMovementSystem(world))
	world.AddSystem(system.NewProgressionSystem(world))
	world.AddSystem(weapon)
	world.AddSystem(system.NewMonsterSystem(world))
	world.AddSystem(system.NewProjectileSystem(world))
	world.AddSystem(system.NewLootSystem(world))
	world.AddSystem(system.NewSpawnSystem(world))
	world.AddSystem(system.NewSceneSyncSystem(world))
	world.AddSystem(system.NewAudioSystem(world))
	world.AddSystem(&journal{session: s})

	s.statRun = world.Resources.Status.Strings.Get("session.run")
	s.newRun()
	log.Printf("session: run %s started (seed %d, fire %s)", s.runID, t.Seed, t.Weapon.FireMode)
	return s
}

// World exposes the simulation for diagnostics
func (s *Session) World() *engine.World {
	return s.world
}

// RunID identifies the current generation
func (s *Session) RunID() string {
	return s.runID.String()
}

// Frame advances the simulation by dt; returns false when the frame was frozen
func (s *Session) Frame(dt time.Duration) bool {
	return s.world.Step(dt)
}

// SelectUpgrade resolves a pending choice by its index in the offered set
func (s *Session) SelectUpgrade(index int) bool {
	choices := s.world.Resources.Game.Choices
	if index < 0 || index >= len(choices) {
		return false
	}
	return s.ApplyUpgrade(choices[index])
}

// ApplyUpgrade resolves a pending choice with any upgrade kind
func (s *Session) ApplyUpgrade(kind progression.UpgradeKind) bool {
	before := s.world.Resources.Game.State.UpgradePending
	s.request(event.EventUpgradeSelectRequest, &event.UpgradeSelectRequestPayload{Kind: kind})
	return s.world.Resources.Game.State.UpgradePending < before
}

// TriggerInvincible requests the invincibility ability; returns whether it activated
func (s *Session) TriggerInvincible() bool {
	s.request(event.EventInvincibleRequest, nil)
	return s.world.Resources.Game.State.Invincible
}

// TogglePause flips the player pause; refused during level-up and after game over
func (s *Session) TogglePause() bool {
	s.request(event.EventPauseToggleRequest, nil)
	return s.world.Resources.Game.State.Paused
}

// Fire requests a manual volley, resolved on the next frame
func (s *Session) Fire() {
	s.world.PushEvent(event.EventFireRequest, nil)
}

// SetSystemEnabled toggles a system by name
func (s *Session) SetSystemEnabled(name string, enabled bool) {
	s.request(event.EventMetaSystemCommandRequest, &event.MetaSystemCommandPayload{
		SystemName: name,
		Enabled:    enabled,
	})
}

// Reset starts a new run: fresh progression, empty world, new run id
func (s *Session) Reset() {
	g := s.world.Resources.Game
	s.world.Reset()
	g.State = progression.Reset(g.State, g.Rules)
	g.Choices = nil
	s.lastResult = nil
	s.newRun()
	log.Printf("session: reset to run %s (generation %d)", s.runID, g.State.Generation)
	s.request(event.EventGameReset, nil)
}

// LastResult returns the summary of the finished run, if the game is over
func (s *Session) LastResult() (event.GameOverPayload, bool) {
	if s.lastResult == nil {
		return event.GameOverPayload{}, false
	}
	return *s.lastResult, true
}

// Telemetry returns formatted metrics for diagnostics
func (s *Session) Telemetry() []status.Entry {
	return s.world.Resources.Status.Entries()
}

func (s *Session) request(t event.EventType, payload any) {
	s.world.PushEvent(t, payload)
	s.world.DispatchEvents()
}

func (s *Session) newRun() {
	s.runID = uuid.New()
	s.statRun.Store(s.runID.String())
}

// journal logs run milestones and records the final result
type journal struct {
	session *Session
}

func (j *journal) Name() string  { return "journal" }
func (j *journal) Priority() int { return parameter.PriorityAudio + 1 }
func (j *journal) Update()       {}

func (j *journal) EventTypes() []event.EventType {
	return []event.EventType{event.EventLevelUp, event.EventGameOver}
}

func (j *journal) HandleEvent(ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.LevelUpPayload:
		log.Printf("session: run %s level %d (pending %d, choices %v)", j.session.runID, p.Level, p.Pending, p.Choices)
	case *event.GameOverPayload:
		result := *p
		j.session.lastResult = &result
		log.Printf("session: run %s over at frame %d: kills %d level %d", j.session.runID, ev.Frame, p.Kills, p.Level)
	}
}
