package system

import (
	"sync/atomic"

	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/core"
	"github.com/lixenwraith/survivor/engine"
	"github.com/lixenwraith/survivor/event"
	"github.com/lixenwraith/survivor/monster"
	"github.com/lixenwraith/survivor/parameter"
)

// MonsterSystem steps every live monster's behavior and applies the requested effects
type MonsterSystem struct {
	world *engine.World

	statAlive  *atomic.Int64
	statBounce *atomic.Int64

	enabled bool
}

func NewMonsterSystem(world *engine.World) engine.System {
	s := &MonsterSystem{world: world}

	s.statAlive = world.Resources.Status.Ints.Get("monster.alive")
	s.statBounce = world.Resources.Status.Ints.Get("monster.bounces")

	s.Init()
	return s
}

func (s *MonsterSystem) Init() {
	s.statAlive.Store(0)
	s.statBounce.Store(0)
	s.enabled = true
}

func (s *MonsterSystem) Name() string {
	return "monster"
}

func (s *MonsterSystem) Priority() int {
	return parameter.PriorityMonster
}

func (s *MonsterSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *MonsterSystem) HandleEvent(ev event.GameEvent) {
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
}

func (s *MonsterSystem) Update() {
	if !s.enabled {
		return
	}
	res := s.world.Resources
	player, ok := res.Scene.PlayerPosition()
	if !ok {
		return
	}

	env := monster.Env{
		Player:    player,
		HitRadius: res.Tuning.Player.HitRadius,
		Bounce:    res.Tuning.Bounce,
		Delta:     res.Time.DeltaTime,
		Rand:      res.Rand,
	}

	alive := 0
	s.world.Monsters.Each(func(h core.Handle, m *component.MonsterComponent) bool {
		if !m.Alive() {
			return true
		}
		alive++
		profile := res.Tuning.Monster(m.Kind)
		out := monster.Step(m, profile, env)

		if out.Fire {
			s.world.PushEvent(event.EventProjectileSpawnRequest, &event.ProjectileSpawnRequestPayload{
				Faction:   component.FactionMonster,
				Owner:     h,
				OwnerKind: m.Kind,
				Origin:    out.FireOrigin,
				Direction: out.FireDir,
				Speed:     profile.ProjectileSpeed,
				MaxRange:  profile.ProjectileRange,
				Radius:    res.Tuning.Weapon.BulletRadius,
				Damage:    profile.RangedDamage,
			})
		}
		if out.Bounced {
			s.statBounce.Add(1)
		}
		if out.ContactDamage > 0 {
			damagePlayer(s.world, out.ContactDamage, event.DamageContact, m.Kind)
		}
		return true
	})
	s.statAlive.Store(int64(alive))
}
