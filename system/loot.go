package system

import (
	"sync/atomic"

	"github.com/lixenwraith/survivor/engine"
	"github.com/lixenwraith/survivor/event"
	"github.com/lixenwraith/survivor/monster"
	"github.com/lixenwraith/survivor/parameter"
	"github.com/lixenwraith/survivor/progression"
	"github.com/lixenwraith/survivor/vmath"
)

// LootSystem rolls heart drops on kills and collects them near the player
type LootSystem struct {
	world *engine.World

	statDrops    *atomic.Int64
	statActive   *atomic.Int64
	statCollects *atomic.Int64

	enabled bool
}

func NewLootSystem(world *engine.World) engine.System {
	s := &LootSystem{
		world: world,
	}

	s.statDrops = world.Resources.Status.Ints.Get("loot.drops")
	s.statActive = world.Resources.Status.Ints.Get("loot.active")
	s.statCollects = world.Resources.Status.Ints.Get("loot.collects")

	s.Init()
	return s
}

func (s *LootSystem) Init() {
	s.statDrops.Store(0)
	s.statActive.Store(0)
	s.statCollects.Store(0)
	s.enabled = true
}

func (s *LootSystem) Name() string {
	return "loot"
}

func (s *LootSystem) Priority() int {
	return parameter.PriorityLoot
}

func (s *LootSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMonsterKilled,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *LootSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		g := s.world.Resources.Game
		g.State = progression.ClearDrops(g.State)
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
		if payload, ok := ev.Payload.(*event.MonsterKilledPayload); ok {
			s.onMonsterKilled(payload)
		}
	}
}

func (s *LootSystem) onMonsterKilled(p *event.MonsterKilledPayload) {
	res := s.world.Resources
	if !monster.RollDrop(res.Tuning.Monster(p.Kind), res.Rand) {
		return
	}

	var drop progression.Drop
	res.Game.State, drop = progression.AddHeartDrop(res.Game.State, p.Position)
	s.statDrops.Add(1)
	s.statActive.Store(int64(len(res.Game.State.Drops)))
	s.world.PushEvent(event.EventDropSpawned, &event.DropPayload{
		ID:       drop.ID,
		Kind:     drop.Kind,
		Position: drop.Position,
	})
}

// Update collects every drop inside the pickup radius
func (s *LootSystem) Update() {
	if !s.enabled {
		return
	}
	res := s.world.Resources
	player, ok := res.Scene.PlayerPosition()
	if !ok || len(res.Game.State.Drops) == 0 {
		return
	}

	radius := res.Tuning.Player.HeartPickupRadius
	for _, d := range res.Game.State.Drops {
		if vmath.V2FDist(player, d.Position) > radius {
			continue
		}
		st, removed := progression.RemoveDrop(res.Game.State, d.ID)
		if !removed {
			continue
		}
		res.Game.State = progression.Heal(st, res.Tuning.Player.HeartHeal)
		s.statCollects.Add(1)
		s.world.PushEvent(event.EventDropCollected, &event.DropPayload{
			ID:       d.ID,
			Kind:     d.Kind,
			Position: d.Position,
		})
	}
	s.statActive.Store(int64(len(res.Game.State.Drops)))
}
