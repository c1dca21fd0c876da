package system

import (
	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/core"
	"github.com/lixenwraith/survivor/engine"
	"github.com/lixenwraith/survivor/event"
	"github.com/lixenwraith/survivor/parameter"
	"github.com/lixenwraith/survivor/vmath"
)

// SceneSyncSystem pushes simulated monster and projectile positions to the scene
// Display only; nothing flows back into the simulation
type SceneSyncSystem struct {
	world *engine.World

	playerShots  []vmath.Vec2F
	monsterShots []vmath.Vec2F

	enabled bool
}

func NewSceneSyncSystem(world *engine.World) engine.System {
	s := &SceneSyncSystem{
		world:        world,
		playerShots:  make([]vmath.Vec2F, 0, 64),
		monsterShots: make([]vmath.Vec2F, 0, 64),
	}
	s.Init()
	return s
}

func (s *SceneSyncSystem) Init() {
	s.enabled = true
}

func (s *SceneSyncSystem) Name() string {
	return "scenesync"
}

func (s *SceneSyncSystem) Priority() int {
	return parameter.PrioritySceneSync
}

// RunsWhilePaused keeps visuals consistent with the frame that closed the pause gate
func (s *SceneSyncSystem) RunsWhilePaused() bool {
	return true
}

func (s *SceneSyncSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *SceneSyncSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		s.Sync()
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

func (s *SceneSyncSystem) Update() {
	if !s.enabled {
		return
	}
	s.Sync()
}

// Sync writes the current records to the scene
func (s *SceneSyncSystem) Sync() {
	scene := s.world.Resources.Scene
	if scene == nil {
		return
	}

	s.world.Monsters.Each(func(_ core.Handle, m *component.MonsterComponent) bool {
		if m.Alive() {
			scene.SetMonsterVisualPosition(m.Kind, m.Slot, m.Position, m.Yaw)
		}
		return true
	})

	s.playerShots = s.playerShots[:0]
	s.monsterShots = s.monsterShots[:0]
	s.world.Projectiles.Each(func(_ core.Handle, p *component.ProjectileComponent) bool {
		if p.Faction == component.FactionPlayer {
			s.playerShots = append(s.playerShots, p.Position)
		} else {
			s.monsterShots = append(s.monsterShots, p.Position)
		}
		return true
	})
	scene.RenderProjectiles(component.FactionPlayer, s.playerShots)
	scene.RenderProjectiles(component.FactionMonster, s.monsterShots)
}
