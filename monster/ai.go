// Package monster implements the per-monster behavior state machine and damage intake
package monster

import (
	"time"

	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/config"
	"github.com/lixenwraith/survivor/vmath"
)

// moveEpsilon is the distance under which a monster has no usable heading
const moveEpsilon = 1e-4

// Env is the per-frame environment shared by every monster
type Env struct {
	Player    vmath.Vec2F
	HitRadius float64
	Bounce    config.BounceTuning
	Delta     time.Duration

	// Rand jitters the retreat heading; nil disables jitter
	Rand *vmath.FastRand
}

// Outcome reports the side effects a step requests from its caller
type Outcome struct {
	// ContactDamage > 0 when the monster bounced off the player this frame
	ContactDamage int
	Bounced       bool

	// Fire requests a projectile from FireOrigin along FireDir (unit)
	Fire       bool
	FireOrigin vmath.Vec2F
	FireDir    vmath.Vec2F

	Moved bool
}

// Step advances one monster by one frame
// Order: cooldown, retreat (exclusive), ranged attack, overlap bounce, approach or hold
func Step(m *component.MonsterComponent, p *config.MonsterTuning, env Env) Outcome {
	var out Outcome
	if !m.Alive() {
		return out
	}

	dt := env.Delta
	sec := dt.Seconds()
	if m.AttackCooldown > 0 {
		m.AttackCooldown = max(0, m.AttackCooldown-dt)
	}

	if m.RetreatTimer > 0 {
		step := p.Speed * env.Bounce.RetreatMultiplier * sec
		m.Position = vmath.V2FAdd(m.Position, vmath.V2FScale(m.RetreatDir, step))
		m.RetreatTimer = max(0, m.RetreatTimer-dt)
		m.State = component.StateRetreating
		if m.RetreatTimer == 0 {
			m.State = component.StateSeeking
		}
		out.Moved = step > 0
		return out
	}
	m.State = component.StateSeeking

	toPlayer := vmath.V2FSub(env.Player, m.Position)
	d := vmath.V2FMag(toPlayer)
	r := env.HitRadius

	if p.Ranged() && d > r && d <= p.AttackRange && m.AttackCooldown <= 0 {
		out.Fire = true
		out.FireOrigin = m.Position
		out.FireDir = vmath.V2FScale(toPlayer, 1/d)
		m.AttackCooldown = p.AttackCooldown
	}

	// A monster exactly on the player has no outward radial; it waits for separation
	if d > 0 && d < r {
		bounce(m, p, env, vmath.V2FScale(toPlayer, -1), vmath.Vec2F{X: 1}, &out)
		return out
	}

	if d <= moveEpsilon {
		return out
	}
	dir := vmath.V2FScale(toPlayer, 1/d)
	m.Yaw = vmath.V2FYaw(dir)

	// Ranged kinds hold inside the band around their attack range
	if d <= p.AttackRange+env.Bounce.HoldEpsilon {
		return out
	}

	// Never step past the player; an overshoot lands inside the hit circle and bounces
	step := min(p.Speed*sec, d)
	candidate := vmath.V2FAdd(m.Position, vmath.V2FScale(dir, step))
	if vmath.V2FDist(candidate, env.Player) < r {
		bounce(m, p, env, vmath.V2FSub(candidate, env.Player), vmath.V2FScale(dir, -1), &out)
		return out
	}

	m.Position = candidate
	out.Moved = true
	return out
}

// bounce places the monster just outside the hit circle, starts the retreat and requests contact damage
// fallback is used when outward is degenerate
func bounce(m *component.MonsterComponent, p *config.MonsterTuning, env Env, outward, fallback vmath.Vec2F, out *Outcome) {
	away := vmath.V2FNormalize(outward)
	if vmath.V2FMagSq(away) == 0 {
		away = fallback
	}

	m.Position = vmath.V2FAdd(env.Player, vmath.V2FScale(away, env.HitRadius+env.Bounce.BounceBack))
	m.Yaw = vmath.V2FYaw(vmath.V2FScale(away, -1))

	m.RetreatDir = away
	if env.Rand != nil && env.Bounce.RandomAngle > 0 {
		m.RetreatDir = vmath.V2FRotate(away, env.Rand.Range(-env.Bounce.RandomAngle, env.Bounce.RandomAngle))
	}
	m.RetreatTimer = env.Bounce.Pause
	if m.RetreatTimer > 0 {
		m.State = component.StateRetreating
	}
	m.AttackCooldown = max(m.AttackCooldown, p.AttackCooldown)

	out.ContactDamage = p.ContactDamage
	out.Bounced = true
}
