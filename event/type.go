package event

// EventType represents the type of game event
type EventType int

const (
	// === Session Event ===

	// EventGameReset signals a new run; every system re-initializes
	// Trigger: Session.Reset
	// Consumer: All systems | Payload: nil
	EventGameReset EventType = iota

	// EventMetaSystemCommandRequest enables or disables a system by name
	// Trigger: Debug keys in frontends
	// Consumer: All systems | Payload: *MetaSystemCommandPayload
	EventMetaSystemCommandRequest

	// === Player Request Event ===

	// EventUpgradeSelectRequest resolves one pending upgrade choice
	// Trigger: Level-up overlay input
	// Consumer: ProgressionSystem | Payload: *UpgradeSelectRequestPayload
	EventUpgradeSelectRequest

	// EventInvincibleRequest asks to trigger the invincibility ability
	// Trigger: Ability key
	// Consumer: ProgressionSystem | Payload: nil
	EventInvincibleRequest

	// EventPauseToggleRequest flips the player pause gate
	// Trigger: Pause key
	// Consumer: ProgressionSystem | Payload: nil
	EventPauseToggleRequest

	// EventFireRequest asks for a manual volley
	// Trigger: Fire key in manual fire mode
	// Consumer: WeaponSystem | Payload: nil
	EventFireRequest

	// === Combat Event ===

	// EventProjectileSpawnRequest creates a projectile
	// Trigger: WeaponSystem volley, MonsterSystem ranged attack
	// Consumer: ProjectileSystem | Payload: *ProjectileSpawnRequestPayload
	EventProjectileSpawnRequest

	// EventPlayerFired signals a player volley was emitted
	// Trigger: WeaponSystem
	// Consumer: AudioSystem | Payload: *PlayerFiredPayload
	EventPlayerFired

	// EventReloadStarted signals an empty magazine began reloading
	// Trigger: WeaponSystem
	// Consumer: AudioSystem | Payload: nil
	EventReloadStarted

	// EventMonsterHit signals a projectile damaged a monster without killing it
	// Trigger: ProjectileSystem
	// Consumer: AudioSystem | Payload: *MonsterHitPayload
	EventMonsterHit

	// EventMonsterKilled signals a monster's HP reached zero
	// Trigger: ProjectileSystem
	// Consumer: ProgressionSystem (kill credit), LootSystem (drop roll),
	// SpawnSystem (respawn schedule), ProjectileSystem (owned projectiles), AudioSystem
	// Payload: *MonsterKilledPayload
	EventMonsterKilled

	// EventPlayerDamaged signals health was lost
	// Trigger: MonsterSystem contact, ProjectileSystem monster hit
	// Consumer: AudioSystem | Payload: *PlayerDamagedPayload
	EventPlayerDamaged

	// EventMonsterSpawned signals a slot entered Seeking (first spawn or respawn)
	// Trigger: SpawnSystem
	// Consumer: telemetry | Payload: *MonsterSpawnedPayload
	EventMonsterSpawned

	// === Progression Event ===

	// EventLevelUp signals one or more levels were gained and choices are owed
	// Trigger: ProgressionSystem on kill credit
	// Consumer: AudioSystem, Session | Payload: *LevelUpPayload
	EventLevelUp

	// EventUpgradeApplied signals a pending choice was resolved
	// Trigger: ProgressionSystem
	// Consumer: Session | Payload: *UpgradeAppliedPayload
	EventUpgradeApplied

	// EventInvincibleStarted signals the ability became active
	// Trigger: ProgressionSystem
	// Consumer: AudioSystem | Payload: nil
	EventInvincibleStarted

	// EventGameOver signals health reached zero
	// Trigger: ProgressionSystem on EventPlayerDamaged
	// Consumer: AudioSystem, Session | Payload: *GameOverPayload
	EventGameOver

	// === Loot Event ===

	// EventDropSpawned signals a heart was placed
	// Trigger: LootSystem on EventMonsterKilled
	// Consumer: telemetry | Payload: *DropPayload
	EventDropSpawned

	// EventDropCollected signals a heart was picked up
	// Trigger: LootSystem
	// Consumer: AudioSystem | Payload: *DropPayload
	EventDropCollected

	eventTypeCount
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
