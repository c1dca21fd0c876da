package parameter

// System Execution Priorities (lower runs first)
// Frame order: timers, monsters, projectiles, spawner
const (
	PriorityMovement    = 5
	PriorityProgression = 10 // Invincibility timers
	PriorityWeapon      = 20 // Reload timer and firing cadence
	PriorityMonster     = 30
	PriorityProjectile  = 40
	PriorityLoot        = 50
	PrioritySpawn       = 60
	PrioritySceneSync   = 90 // After game logic, pushes visuals
)

// PriorityAudio runs last; audio reacts only to events
const PriorityAudio = 95
