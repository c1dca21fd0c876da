package engine

import (
	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/core"
	"github.com/lixenwraith/survivor/vmath"
)

// Scene is the world collaborator owning player and monster visuals
type Scene interface {
	// PlayerPosition reports the player's ground position; false during transient states
	PlayerPosition() (vmath.Vec2F, bool)
	// PlayerFacing returns the player's forward direction
	PlayerFacing() vmath.Vec2F

	SpawnMonsterVisual(kind component.MonsterKind, slot int, pos vmath.Vec2F)
	DespawnMonsterVisual(kind component.MonsterKind, slot int)
	// SetMonsterVisualPosition is a no-op for unknown visuals
	SetMonsterVisualPosition(kind component.MonsterKind, slot int, pos vmath.Vec2F, yaw float64)

	// RenderProjectiles replaces the displayed projectile set for a faction
	RenderProjectiles(faction component.Faction, positions []vmath.Vec2F)
}

// PlayerMover is implemented by scenes that move the player from input intent
type PlayerMover interface {
	MovePlayer(dt float64, speed float64)
}

// AudioPlayer plays feedback sounds; Play returns false when the sound was dropped
type AudioPlayer interface {
	Play(sound core.SoundType) bool
}
