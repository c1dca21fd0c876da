package system

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/config"
	"github.com/lixenwraith/survivor/core"
	"github.com/lixenwraith/survivor/engine"
	"github.com/lixenwraith/survivor/event"
	"github.com/lixenwraith/survivor/monster"
	"github.com/lixenwraith/survivor/parameter"
	"github.com/lixenwraith/survivor/vmath"
)

// SpawnSystem is the director: it sizes each kind's slot pool from the kill count
// and brings dead slots back after their respawn delay
type SpawnSystem struct {
	world *engine.World

	// pools[kind][slot] addresses the slot's record in World.Monsters
	pools [component.MonsterKindCount][]core.Handle

	statTarget [component.MonsterKindCount]*atomic.Int64
	statSpawns *atomic.Int64

	enabled bool
}

func NewSpawnSystem(world *engine.World) engine.System {
	s := &SpawnSystem{world: world}

	for _, kind := range component.MonsterKinds() {
		s.statTarget[kind] = world.Resources.Status.Ints.Get(fmt.Sprintf("spawn.%s.target", kind))
	}
	s.statSpawns = world.Resources.Status.Ints.Get("spawn.count")

	s.Init()
	return s
}

// Init drops every pool; records were cleared with the world
func (s *SpawnSystem) Init() {
	scene := s.world.Resources.Scene
	for kind := range s.pools {
		if scene != nil {
			for slot := range s.pools[kind] {
				scene.DespawnMonsterVisual(component.MonsterKind(kind), slot)
			}
		}
		s.pools[kind] = nil
		s.statTarget[kind].Store(0)
	}
	s.statSpawns.Store(0)
	s.enabled = true
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMonsterKilled,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *SpawnSystem) HandleEvent(ev event.GameEvent) {
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

	// Death bookkeeping runs even when spawning is disabled so slots never stay Dead
	if ev.Type == event.EventMonsterKilled {
		if payload, ok := ev.Payload.(*event.MonsterKilledPayload); ok {
			s.onMonsterKilled(payload)
		}
	}
}

func (s *SpawnSystem) onMonsterKilled(p *event.MonsterKilledPayload) {
	res := s.world.Resources
	m, ok := s.world.Monsters.Get(p.Handle)
	if !ok {
		return
	}
	monster.ScheduleRespawn(m, res.Tuning.Monster(m.Kind), res.Time.Now)
	if res.Scene != nil {
		res.Scene.DespawnMonsterVisual(m.Kind, m.Slot)
	}
}

// PoolSize returns the number of slots currently owned for a kind
func (s *SpawnSystem) PoolSize(kind component.MonsterKind) int {
	return len(s.pools[kind])
}

func (s *SpawnSystem) Update() {
	if !s.enabled {
		return
	}
	res := s.world.Resources
	player, ok := res.Scene.PlayerPosition()
	if !ok {
		return
	}
	kills := res.Game.State.Kills

	for _, kind := range component.MonsterKinds() {
		profile := res.Tuning.Monster(kind)
		target := monster.TargetCount(profile.Director, kills)
		s.statTarget[kind].Store(int64(target))

		s.resize(kind, profile, target, player)
		s.verify(kind, profile)
		s.respawnDue(kind, profile, player)
	}
}

// resize grows or shrinks a pool to target
func (s *SpawnSystem) resize(kind component.MonsterKind, profile *config.MonsterTuning, target int, player vmath.Vec2F) {
	res := s.world.Resources
	pool := s.pools[kind]

	for len(pool) < target {
		slot := len(pool)
		rec := component.MonsterComponent{Kind: kind, Slot: slot}
		pos := monster.SampleSpawn(profile, player, res.Rand)
		monster.Spawn(&rec, profile, pos, player)
		pool = append(pool, s.world.Monsters.Alloc(rec))
		s.announce(kind, slot, pos, false)
	}

	for len(pool) > target {
		last := len(pool) - 1
		s.world.Monsters.Free(pool[last])
		res.Scene.DespawnMonsterVisual(kind, last)
		pool = pool[:last]
	}

	s.pools[kind] = pool
}

// verify recreates records that vanished from the arena as awaiting respawn
func (s *SpawnSystem) verify(kind component.MonsterKind, profile *config.MonsterTuning) {
	res := s.world.Resources
	for slot, h := range s.pools[kind] {
		if s.world.Monsters.Contains(h) {
			continue
		}
		rec := component.MonsterComponent{Kind: kind, Slot: slot}
		monster.ScheduleRespawn(&rec, profile, res.Time.Now)
		s.pools[kind][slot] = s.world.Monsters.Alloc(rec)
		res.Scene.DespawnMonsterVisual(kind, slot)
	}
}

func (s *SpawnSystem) respawnDue(kind component.MonsterKind, profile *config.MonsterTuning, player vmath.Vec2F) {
	res := s.world.Resources
	for slot, h := range s.pools[kind] {
		m, ok := s.world.Monsters.Get(h)
		if !ok || !monster.RespawnDue(m, res.Time.Now) {
			continue
		}
		pos := monster.SampleSpawn(profile, player, res.Rand)
		monster.Spawn(m, profile, pos, player)
		s.announce(kind, slot, pos, true)
	}
}

func (s *SpawnSystem) announce(kind component.MonsterKind, slot int, pos vmath.Vec2F, respawn bool) {
	s.world.Resources.Scene.SpawnMonsterVisual(kind, slot, pos)
	s.statSpawns.Add(1)
	s.world.PushEvent(event.EventMonsterSpawned, &event.MonsterSpawnedPayload{
		Kind:     kind,
		Slot:     slot,
		Position: pos,
		Respawn:  respawn,
	})
}
