// Package scene provides an in-memory world collaborator for frontends and tests
package scene

import (
	"cmp"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/vmath"
)

// Visual is the displayed state of one monster slot
type Visual struct {
	Kind     component.MonsterKind
	Slot     int
	Position vmath.Vec2F
	Yaw      float64
}

type visualKey struct {
	kind component.MonsterKind
	slot int
}

// Memory implements engine.Scene and engine.PlayerMover without a renderer
// Frontends read it after each frame; input goroutines may set intent concurrently
type Memory struct {
	mu sync.RWMutex

	player    vmath.Vec2F
	hasPlayer bool
	facing    vmath.Vec2F

	intent     vmath.Vec2F
	intentHold time.Duration

	visuals     map[visualKey]Visual
	projectiles [2][]vmath.Vec2F

	spawned   int
	despawned int
}

// NewMemory creates a scene with the player at the origin facing +Y
func NewMemory() *Memory {
	return &Memory{
		hasPlayer: true,
		facing:    vmath.Vec2F{Y: 1},
		visuals:   make(map[visualKey]Visual),
	}
}

// === Player ===

func (m *Memory) PlayerPosition() (vmath.Vec2F, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.player, m.hasPlayer
}

func (m *Memory) PlayerFacing() vmath.Vec2F {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.facing
}

func (m *Memory) SetPlayerPosition(pos vmath.Vec2F) {
	m.mu.Lock()
	m.player = pos
	m.hasPlayer = true
	m.mu.Unlock()
}

// HidePlayer makes PlayerPosition report unavailable, as during a load or teleport
func (m *Memory) HidePlayer() {
	m.mu.Lock()
	m.hasPlayer = false
	m.mu.Unlock()
}

// SetFacing sets the forward direction; zero vectors are ignored
func (m *Memory) SetFacing(dir vmath.Vec2F) {
	if vmath.V2FMagSq(dir) == 0 {
		return
	}
	m.mu.Lock()
	m.facing = vmath.V2FNormalize(dir)
	m.mu.Unlock()
}

// SetMoveIntent requests movement along dir for the hold duration
// Terminals repeat key presses instead of reporting releases, so intent expires
func (m *Memory) SetMoveIntent(dir vmath.Vec2F, hold time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if vmath.V2FMagSq(dir) == 0 {
		m.intent = vmath.Vec2F{}
		m.intentHold = 0
		return
	}
	m.intent = vmath.V2FNormalize(dir)
	m.intentHold = hold
}

// MovePlayer advances the player along the current intent
func (m *Memory) MovePlayer(dt float64, speed float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.intentHold <= 0 || !m.hasPlayer {
		return
	}
	m.player = vmath.V2FAdd(m.player, vmath.V2FScale(m.intent, speed*dt))
	m.facing = m.intent
	m.intentHold -= time.Duration(dt * float64(time.Second))
}

// === Monsters ===

func (m *Memory) SpawnMonsterVisual(kind component.MonsterKind, slot int, pos vmath.Vec2F) {
	m.mu.Lock()
	m.visuals[visualKey{kind, slot}] = Visual{Kind: kind, Slot: slot, Position: pos}
	m.spawned++
	m.mu.Unlock()
}

func (m *Memory) DespawnMonsterVisual(kind component.MonsterKind, slot int) {
	m.mu.Lock()
	if _, ok := m.visuals[visualKey{kind, slot}]; ok {
		delete(m.visuals, visualKey{kind, slot})
		m.despawned++
	}
	m.mu.Unlock()
}

func (m *Memory) SetMonsterVisualPosition(kind component.MonsterKind, slot int, pos vmath.Vec2F, yaw float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := visualKey{kind, slot}
	v, ok := m.visuals[key]
	if !ok {
		return
	}
	v.Position = pos
	v.Yaw = yaw
	m.visuals[key] = v
}

// Visual returns one slot's visual
func (m *Memory) Visual(kind component.MonsterKind, slot int) (Visual, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.visuals[visualKey{kind, slot}]
	return v, ok
}

// Visuals returns all visuals ordered by kind then slot
func (m *Memory) Visuals() []Visual {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := slices.Collect(maps.Values(m.visuals))
	slices.SortFunc(out, func(a, b Visual) int {
		if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
			return c
		}
		return cmp.Compare(a.Slot, b.Slot)
	})
	return out
}

// VisualStats returns lifetime spawn and despawn counts
func (m *Memory) VisualStats() (spawned, despawned int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.spawned, m.despawned
}

// === Projectiles ===

func (m *Memory) RenderProjectiles(faction component.Faction, positions []vmath.Vec2F) {
	if faction < 0 || int(faction) >= len(m.projectiles) {
		return
	}
	m.mu.Lock()
	m.projectiles[faction] = append(m.projectiles[faction][:0], positions...)
	m.mu.Unlock()
}

// Projectiles returns a copy of the last rendered positions for a faction
func (m *Memory) Projectiles(faction component.Faction) []vmath.Vec2F {
	if faction < 0 || int(faction) >= len(m.projectiles) {
		return nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.projectiles[faction])
}

// Clear removes visuals and projectiles, keeping the player
func (m *Memory) Clear() {
	m.mu.Lock()
	clear(m.visuals)
	for i := range m.projectiles {
		m.projectiles[i] = m.projectiles[i][:0]
	}
	m.mu.Unlock()
}
