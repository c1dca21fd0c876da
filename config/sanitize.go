package config

import (
	"time"

	"github.com/lixenwraith/survivor/component"
)

// Sanitize clamps every field into a range the simulation can run with
func (t *Tuning) Sanitize() {
	t.MaxFrameDelta = clampDuration(t.MaxFrameDelta, time.Millisecond, time.Second)

	p := &t.Player
	p.BaseMaxHealth = max(1, p.BaseMaxHealth)
	p.HitRadius = clampFloat(p.HitRadius, 0.1, 10)
	p.HeartPickupRadius = clampFloat(p.HeartPickupRadius, 0, 10)
	p.HeartHeal = max(0, p.HeartHeal)
	p.MoveSpeedBase = clampFloat(p.MoveSpeedBase, 0, 100)
	p.MoveSpeedStep = clampFloat(p.MoveSpeedStep, 0, 10)
	p.InvincibleDuration = max(0, p.InvincibleDuration)
	p.InvincibleCooldown = max(p.InvincibleDuration, p.InvincibleCooldown)

	g := &t.Progression
	g.XPPerKill = max(0, g.XPPerKill)
	g.XPBase = max(1, g.XPBase)
	g.XPStep = max(0, g.XPStep)
	g.MaxLevel = max(1, g.MaxLevel)
	g.ChoiceCount = min(max(1, g.ChoiceCount), 5)

	w := &t.Weapon
	w.AutoFireInterval = clampDuration(w.AutoFireInterval, 10*time.Millisecond, time.Minute)
	w.FireCooldown = clampDuration(w.FireCooldown, 0, time.Minute)
	w.AmmoCapacity = max(1, w.AmmoCapacity)
	w.ReloadTime = clampDuration(w.ReloadTime, 0, time.Minute)
	w.MuzzleOffset = clampFloat(w.MuzzleOffset, 0, 10)
	w.SpreadDeg = clampFloat(w.SpreadDeg, 0, 90)
	w.RadialCount = min(max(1, w.RadialCount), 64)
	w.RadialDamageFactor = clampFloat(w.RadialDamageFactor, 0, 1)
	w.BulletSpeed = clampFloat(w.BulletSpeed, 0.1, 1000)
	w.BulletRange = clampFloat(w.BulletRange, 0.1, 1000)
	w.BulletRadius = clampFloat(w.BulletRadius, 0, 10)

	b := &t.Bounce
	b.BounceBack = clampFloat(b.BounceBack, 0, 10)
	b.Pause = clampDuration(b.Pause, 0, time.Minute)
	b.RetreatMultiplier = clampFloat(b.RetreatMultiplier, 0, 10)
	b.RandomAngle = clampFloat(b.RandomAngle, 0, 3.14159)
	b.HoldEpsilon = clampFloat(b.HoldEpsilon, 0, 10)

	for _, kind := range component.MonsterKinds() {
		sanitizeMonster(t.Monster(kind))
	}
}

func sanitizeMonster(m *MonsterTuning) {
	m.Speed = clampFloat(m.Speed, 0, 100)
	m.HP = max(1, m.HP)
	m.ContactDamage = max(0, m.ContactDamage)
	m.AttackRange = clampFloat(m.AttackRange, 0, 100)
	m.AttackCooldown = clampDuration(m.AttackCooldown, 0, time.Minute)
	m.RangedDamage = max(0, m.RangedDamage)
	m.ProjectileSpeed = clampFloat(m.ProjectileSpeed, 0, 1000)
	m.ProjectileRange = clampFloat(m.ProjectileRange, 0, 1000)
	m.Radius = clampFloat(m.Radius, 0.05, 10)
	m.DropChance = clampFloat(m.DropChance, 0, 1)
	m.SpawnMin = clampFloat(m.SpawnMin, 0, 1000)
	m.SpawnMax = clampFloat(m.SpawnMax, m.SpawnMin, 1000)
	m.RespawnDelay = clampDuration(m.RespawnDelay, 0, time.Hour)

	d := &m.Director
	d.Threshold = max(0, d.Threshold)
	d.Divisor = max(0, d.Divisor)
	d.Min = max(0, d.Min)
	d.Max = max(d.Min, d.Max)
}

func clampFloat(v, lo, hi float64) float64 {
	if v != v {
		return lo
	}
	return min(max(v, lo), hi)
}

func clampDuration(v, lo, hi time.Duration) time.Duration {
	return min(max(v, lo), hi)
}
