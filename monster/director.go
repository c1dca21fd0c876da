package monster

import (
	"time"

	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/config"
	"github.com/lixenwraith/survivor/vmath"
)

// TargetCount maps a kill count to the desired live population of one kind
// Monotonic in kills for any sanitized rule
func TargetCount(rule config.DirectorRule, kills int) int {
	if kills < rule.Threshold {
		return 0
	}
	n := rule.Base
	if rule.Divisor > 0 {
		n += max(0, kills-rule.Offset) / rule.Divisor
	}
	return min(max(n, rule.Min), rule.Max)
}

// SampleSpawn picks a point on the kind's ring around the player
func SampleSpawn(p *config.MonsterTuning, player vmath.Vec2F, rng *vmath.FastRand) vmath.Vec2F {
	dist := rng.Range(p.SpawnMin, p.SpawnMax)
	return vmath.V2FAdd(player, vmath.V2FScale(vmath.V2FFromAngle(rng.Angle()), dist))
}

// Spawn (re)initializes a slot record as a fresh Seeking monster at pos
func Spawn(m *component.MonsterComponent, p *config.MonsterTuning, pos vmath.Vec2F, player vmath.Vec2F) {
	m.Position = pos
	m.Yaw = vmath.V2FYaw(vmath.V2FSub(player, pos))
	m.HP = p.HP
	m.MaxHP = p.HP
	m.State = component.StateSeeking
	m.RetreatTimer = 0
	m.RetreatDir = vmath.Vec2F{}
	m.AttackCooldown = 0
	m.RespawnAt = 0
}

// ScheduleRespawn moves a dead or missing slot to AwaitingRespawn
func ScheduleRespawn(m *component.MonsterComponent, p *config.MonsterTuning, now time.Duration) {
	m.State = component.StateAwaitingRespawn
	m.HP = 0
	m.RetreatTimer = 0
	m.RespawnAt = now + p.RespawnDelay
}

// RespawnDue reports whether an awaiting slot may come back at now
func RespawnDue(m *component.MonsterComponent, now time.Duration) bool {
	return m.State == component.StateAwaitingRespawn && now >= m.RespawnAt
}
