package system

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/config"
	"github.com/lixenwraith/survivor/core"
	"github.com/lixenwraith/survivor/engine"
	"github.com/lixenwraith/survivor/event"
	"github.com/lixenwraith/survivor/parameter"
	"github.com/lixenwraith/survivor/progression"
	"github.com/lixenwraith/survivor/status"
	"github.com/lixenwraith/survivor/vmath"
)

// WeaponSystem owns the player's firing cadence and the reload clock
// Volleys are emitted as projectile spawn requests
type WeaponSystem struct {
	world *engine.World

	sinceFire     time.Duration // auto mode
	cooldown      time.Duration // manual mode
	reloadElapsed time.Duration
	fireRequested bool

	statShots   *atomic.Int64
	statReloads *atomic.Int64
	statReload  *status.AtomicFloat // reload progress in [0,1]

	enabled bool
}

func NewWeaponSystem(world *engine.World) engine.System {
	s := &WeaponSystem{world: world}

	s.statShots = world.Resources.Status.Ints.Get("weapon.shots")
	s.statReloads = world.Resources.Status.Ints.Get("weapon.reloads")
	s.statReload = world.Resources.Status.Floats.Get("weapon.reload_progress")

	s.Init()
	return s
}

func (s *WeaponSystem) Init() {
	s.sinceFire = 0
	s.cooldown = 0
	s.reloadElapsed = 0
	s.fireRequested = false
	s.statShots.Store(0)
	s.statReloads.Store(0)
	s.statReload.Set(0)
	s.enabled = true
}

func (s *WeaponSystem) Name() string {
	return "weapon"
}

func (s *WeaponSystem) Priority() int {
	return parameter.PriorityWeapon
}

func (s *WeaponSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventFireRequest,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *WeaponSystem) HandleEvent(ev event.GameEvent) {
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

	if ev.Type == event.EventFireRequest {
		s.fireRequested = true
	}
}

// ReloadProgress returns reload completion in [0,1]; 0 when not reloading
func (s *WeaponSystem) ReloadProgress() float64 {
	rt := s.world.Resources.Tuning.Weapon.ReloadTime
	if !s.world.Resources.Game.State.Reloading || rt <= 0 {
		return 0
	}
	return min(1, float64(s.reloadElapsed)/float64(rt))
}

func (s *WeaponSystem) Update() {
	if !s.enabled {
		return
	}
	dt := s.world.Resources.Time.DeltaTime
	wt := &s.world.Resources.Tuning.Weapon
	g := s.world.Resources.Game

	// Reload clock
	if g.State.Reloading {
		s.reloadElapsed += dt
		if s.reloadElapsed >= wt.ReloadTime {
			g.State = progression.CompleteReload(g.State)
			s.reloadElapsed = 0
		}
	}

	// Cadence
	switch wt.FireMode {
	case config.FireManual:
		s.cooldown = max(0, s.cooldown-dt)
		if s.fireRequested && s.cooldown == 0 && s.attempt() {
			s.cooldown = wt.FireCooldown
		}
		s.fireRequested = false
	default:
		// The interval keeps running through a reload; only a volley restarts it
		s.sinceFire += dt
		if s.sinceFire >= wt.AutoFireInterval && !g.State.Reloading && s.attempt() {
			s.sinceFire = 0
		}
	}

	if g.State.Ammo == 0 {
		s.startReload()
	}
	s.statReload.Set(s.ReloadProgress())
}

// attempt fires one volley if ammo allows and reports whether it did
// An empty magazine starts the reload instead
func (s *WeaponSystem) attempt() bool {
	g := s.world.Resources.Game
	if !g.State.CanFire() {
		s.startReload()
		return false
	}
	player, ok := s.world.Resources.Scene.PlayerPosition()
	if !ok {
		return false
	}

	wt := &s.world.Resources.Tuning.Weapon
	aim := s.aim(player)
	damage := g.State.BulletDamage()
	pattern := event.PatternSingle

	var dirs []vmath.Vec2F
	switch n := g.State.BulletCount(); {
	case g.State.RadialBurst():
		pattern = event.PatternRadial
		dirs = radialDirections(aim, wt.RadialCount)
		damage = max(1, int(math.Floor(float64(damage)*wt.RadialDamageFactor)))
	case n > 1:
		pattern = event.PatternFan
		dirs = fanDirections(aim, n, wt.SpreadDeg)
	default:
		dirs = []vmath.Vec2F{aim}
	}

	piercing := g.State.Piercing()
	for _, dir := range dirs {
		s.world.PushEvent(event.EventProjectileSpawnRequest, &event.ProjectileSpawnRequestPayload{
			Faction:   component.FactionPlayer,
			Origin:    vmath.V2FAdd(player, vmath.V2FScale(dir, wt.MuzzleOffset)),
			Direction: dir,
			Speed:     wt.BulletSpeed,
			MaxRange:  wt.BulletRange,
			Radius:    wt.BulletRadius,
			Damage:    damage,
			Piercing:  piercing,
		})
	}

	g.State = progression.ConsumeAmmo(g.State, 1)
	s.statShots.Add(1)
	s.world.PushEvent(event.EventPlayerFired, &event.PlayerFiredPayload{
		Pattern: pattern,
		Count:   len(dirs),
		Damage:  damage,
	})
	return true
}

func (s *WeaponSystem) startReload() {
	g := s.world.Resources.Game
	before := g.State.Reloading
	g.State = progression.StartReload(g.State)
	if g.State.Reloading && !before {
		s.reloadElapsed = 0
		s.statReloads.Add(1)
		s.world.PushEvent(event.EventReloadStarted, nil)
	}
}

// aim returns the unit direction to the nearest live monster, else the player's facing
func (s *WeaponSystem) aim(player vmath.Vec2F) vmath.Vec2F {
	if _, target, ok := nearestMonster(s.world, player); ok {
		if dir := vmath.V2FSub(target, player); vmath.V2FMagSq(dir) > 0 {
			return vmath.V2FNormalize(dir)
		}
	}
	if facing := s.world.Resources.Scene.PlayerFacing(); vmath.V2FMagSq(facing) > 0 {
		return vmath.V2FNormalize(facing)
	}
	return vmath.Vec2F{Y: 1}
}

// nearestMonster scans live monsters in arena order; the first minimum wins ties
func nearestMonster(world *engine.World, from vmath.Vec2F) (core.Handle, vmath.Vec2F, bool) {
	var (
		best    core.Handle
		bestPos vmath.Vec2F
		bestD   = math.Inf(1)
		found   bool
	)
	world.Monsters.Each(func(h core.Handle, m *component.MonsterComponent) bool {
		if !m.Alive() {
			return true
		}
		if d := vmath.V2FMagSq(vmath.V2FSub(m.Position, from)); d < bestD {
			best, bestPos, bestD, found = h, m.Position, d, true
		}
		return true
	})
	return best, bestPos, found
}

// fanDirections spreads n directions symmetrically around aim, spreadDeg apart
func fanDirections(aim vmath.Vec2F, n int, spreadDeg float64) []vmath.Vec2F {
	step := spreadDeg * math.Pi / 180
	mid := float64(n-1) / 2
	dirs := make([]vmath.Vec2F, n)
	for i := range dirs {
		dirs[i] = vmath.V2FRotate(aim, (float64(i)-mid)*step)
	}
	return dirs
}

// radialDirections spaces n directions evenly around the circle, starting at aim
func radialDirections(aim vmath.Vec2F, n int) []vmath.Vec2F {
	dirs := make([]vmath.Vec2F, n)
	for i := range dirs {
		dirs[i] = vmath.V2FRotate(aim, 2*math.Pi*float64(i)/float64(n))
	}
	return dirs
}
