package system

import (
	"sync/atomic"

	"github.com/lixenwraith/survivor/engine"
	"github.com/lixenwraith/survivor/event"
	"github.com/lixenwraith/survivor/parameter"
	"github.com/lixenwraith/survivor/progression"
)

// ProgressionSystem owns player-facing state transitions driven by events:
// kill credit and level-ups, upgrade choices, the invincibility ability and the pause toggle
type ProgressionSystem struct {
	world *engine.World

	statLevel  *atomic.Int64
	statKills  *atomic.Int64
	statHealth *atomic.Int64
	statPaused *atomic.Bool

	enabled bool
}

func NewProgressionSystem(world *engine.World) engine.System {
	s := &ProgressionSystem{world: world}

	s.statLevel = world.Resources.Status.Ints.Get("progression.level")
	s.statKills = world.Resources.Status.Ints.Get("progression.kills")
	s.statHealth = world.Resources.Status.Ints.Get("progression.health")
	s.statPaused = world.Resources.Status.Bools.Get("progression.paused")

	s.Init()
	return s
}

func (s *ProgressionSystem) Init() {
	s.world.Resources.Game.Choices = nil
	s.publish()
	s.enabled = true
}

func (s *ProgressionSystem) Name() string {
	return "progression"
}

func (s *ProgressionSystem) Priority() int {
	return parameter.PriorityProgression
}

func (s *ProgressionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMonsterKilled,
		event.EventUpgradeSelectRequest,
		event.EventInvincibleRequest,
		event.EventPauseToggleRequest,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *ProgressionSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}

	if ev.Type == event.EventMetaSystemCommandRequest {
		if payload, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok {
			if payload.SystemName == s.Name() {
				s.enabled = payload.Enabled
			}
		}
	}

	if !s.enabled {
		return
	}

	switch ev.Type {
	case event.EventMonsterKilled:
		s.onKill()
	case event.EventUpgradeSelectRequest:
		if payload, ok := ev.Payload.(*event.UpgradeSelectRequestPayload); ok {
			s.onUpgrade(payload.Kind)
		}
	case event.EventInvincibleRequest:
		s.onInvincible()
	case event.EventPauseToggleRequest:
		g := s.world.Resources.Game
		g.State = progression.TogglePause(g.State)
	}
	s.publish()
}

// Update ticks the invincibility timers
func (s *ProgressionSystem) Update() {
	if !s.enabled {
		return
	}
	g := s.world.Resources.Game
	g.State = progression.TickInvincibility(g.State, s.world.Resources.Time.DeltaTime)
	s.publish()
}

func (s *ProgressionSystem) onKill() {
	g := s.world.Resources.Game
	before := g.State
	g.State = progression.AwardKill(g.State, g.Rules)

	if g.State.UpgradePending <= before.UpgradePending {
		return
	}
	if before.UpgradePending == 0 || len(g.Choices) == 0 {
		s.rollChoices()
	}
	s.world.PushEvent(event.EventLevelUp, &event.LevelUpPayload{
		Level:   g.State.Level,
		Pending: g.State.UpgradePending,
		Choices: g.Choices,
	})
}

func (s *ProgressionSystem) onUpgrade(kind progression.UpgradeKind) {
	g := s.world.Resources.Game
	if g.State.UpgradePending == 0 || !kind.Valid() {
		return
	}
	g.State = progression.ApplyUpgrade(g.State, g.Rules, kind)

	if g.State.UpgradePending > 0 {
		s.rollChoices()
	} else {
		g.Choices = nil
	}
	s.world.PushEvent(event.EventUpgradeApplied, &event.UpgradeAppliedPayload{
		Kind: kind,
		Tier: g.State.Tier(kind),
	})
}

func (s *ProgressionSystem) onInvincible() {
	g := s.world.Resources.Game
	before := g.State.Invincible
	g.State = progression.TriggerInvincible(g.State, g.Rules)
	if g.State.Invincible && !before {
		s.world.PushEvent(event.EventInvincibleStarted, nil)
	}
}

func (s *ProgressionSystem) rollChoices() {
	g := s.world.Resources.Game
	g.Choices = progression.RollChoices(g.State, s.world.Resources.Rand, s.world.Resources.Tuning.Progression.ChoiceCount)
}

func (s *ProgressionSystem) publish() {
	st := s.world.Resources.Game.State
	s.statLevel.Store(int64(st.Level))
	s.statKills.Store(int64(st.Kills))
	s.statHealth.Store(int64(st.Health))
	s.statPaused.Store(st.Paused)
}
