package system

import (
	"sync/atomic"

	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/core"
	"github.com/lixenwraith/survivor/engine"
	"github.com/lixenwraith/survivor/event"
	"github.com/lixenwraith/survivor/monster"
	"github.com/lixenwraith/survivor/parameter"
	"github.com/lixenwraith/survivor/vmath"
)

// ProjectileSystem advances projectiles, expires them by range and resolves hits
// Player projectiles hit monsters; monster projectiles hit only the player
type ProjectileSystem struct {
	world *engine.World

	statPlayer  *atomic.Int64
	statMonster *atomic.Int64
	statHits    *atomic.Int64
	statKills   *atomic.Int64

	enabled bool
}

func NewProjectileSystem(world *engine.World) engine.System {
	s := &ProjectileSystem{world: world}

	s.statPlayer = world.Resources.Status.Ints.Get("projectile.player")
	s.statMonster = world.Resources.Status.Ints.Get("projectile.monster")
	s.statHits = world.Resources.Status.Ints.Get("projectile.hits")
	s.statKills = world.Resources.Status.Ints.Get("projectile.kills")

	s.Init()
	return s
}

func (s *ProjectileSystem) Init() {
	s.statPlayer.Store(0)
	s.statMonster.Store(0)
	s.statHits.Store(0)
	s.statKills.Store(0)
	s.enabled = true
}

func (s *ProjectileSystem) Name() string {
	return "projectile"
}

func (s *ProjectileSystem) Priority() int {
	return parameter.PriorityProjectile
}

func (s *ProjectileSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventProjectileSpawnRequest,
		event.EventMonsterKilled,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *ProjectileSystem) HandleEvent(ev event.GameEvent) {
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
	case event.EventProjectileSpawnRequest:
		if payload, ok := ev.Payload.(*event.ProjectileSpawnRequestPayload); ok {
			s.spawn(payload)
		}
	case event.EventMonsterKilled:
		if payload, ok := ev.Payload.(*event.MonsterKilledPayload); ok {
			s.clearOwned(payload.Handle)
		}
	}
}

func (s *ProjectileSystem) spawn(p *event.ProjectileSpawnRequestPayload) {
	if p.Damage < 1 || p.Speed <= 0 || vmath.V2FMagSq(p.Direction) == 0 {
		return
	}
	s.world.Projectiles.Alloc(component.ProjectileComponent{
		Faction:   p.Faction,
		Owner:     p.Owner,
		OwnerKind: p.OwnerKind,
		Position:  p.Origin,
		Direction: vmath.V2FNormalize(p.Direction),
		Speed:     p.Speed,
		MaxRange:  p.MaxRange,
		Radius:    p.Radius,
		Damage:    p.Damage,
		Piercing:  p.Piercing,
	})
}

// clearOwned removes in-flight projectiles fired by a monster that just died
func (s *ProjectileSystem) clearOwned(owner core.Handle) {
	s.world.Projectiles.Each(func(h core.Handle, p *component.ProjectileComponent) bool {
		if p.Faction == component.FactionMonster && p.Owner == owner {
			s.world.Projectiles.Free(h)
		}
		return true
	})
}

func (s *ProjectileSystem) Update() {
	if !s.enabled {
		return
	}
	res := s.world.Resources
	sec := res.Time.Seconds()
	player, hasPlayer := res.Scene.PlayerPosition()
	hitRadius := res.Tuning.Player.HitRadius

	var nPlayer, nMonster int64
	s.world.Projectiles.Each(func(h core.Handle, p *component.ProjectileComponent) bool {
		step := p.Speed * sec
		p.Position = vmath.V2FAdd(p.Position, vmath.V2FScale(p.Direction, step))
		p.Traveled += step
		if p.Expired() {
			s.world.Projectiles.Free(h)
			return true
		}

		switch p.Faction {
		case component.FactionPlayer:
			if s.hitMonsters(p) {
				s.world.Projectiles.Free(h)
				return true
			}
			nPlayer++
		case component.FactionMonster:
			if hasPlayer && vmath.V2FDist(p.Position, player) <= hitRadius+p.Radius/2 {
				damagePlayer(s.world, p.Damage, event.DamageProjectile, p.OwnerKind)
				s.world.Projectiles.Free(h)
				return true
			}
			nMonster++
		}
		return true
	})

	s.statPlayer.Store(nPlayer)
	s.statMonster.Store(nMonster)
}

// hitMonsters damages overlapping monsters in arena order
// Returns true when the projectile is spent
func (s *ProjectileSystem) hitMonsters(p *component.ProjectileComponent) bool {
	spent := false
	tuning := s.world.Resources.Tuning
	s.world.Monsters.Each(func(mh core.Handle, m *component.MonsterComponent) bool {
		if !m.Alive() || p.HasHit(mh) {
			return true
		}
		profile := tuning.Monster(m.Kind)
		if vmath.V2FDist(p.Position, m.Position) > profile.Radius+p.Radius {
			return true
		}

		s.statHits.Add(1)
		if monster.ApplyDamage(m, p.Damage) {
			s.statKills.Add(1)
			s.world.PushEvent(event.EventMonsterKilled, &event.MonsterKilledPayload{
				Handle:   mh,
				Kind:     m.Kind,
				Slot:     m.Slot,
				Position: m.Position,
			})
		} else {
			s.world.PushEvent(event.EventMonsterHit, &event.MonsterHitPayload{
				Handle:    mh,
				Kind:      m.Kind,
				Damage:    p.Damage,
				Remaining: m.HP,
			})
		}

		if !p.Piercing {
			spent = true
			return false
		}
		p.Hits = append(p.Hits, mh)
		return true
	})
	return spent
}
