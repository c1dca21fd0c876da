package parameter

import "time"

// Respawn delays per kind
const (
	SkeletonRespawnDelay = 1500 * time.Millisecond
	ZombieRespawnDelay   = 3500 * time.Millisecond
	GhostRespawnDelay    = 2500 * time.Millisecond
	VampireRespawnDelay  = 10 * time.Second
)

// Spawn rings around the player (min, max distance)
const (
	SkeletonSpawnMinFloat = 10.0
	SkeletonSpawnMaxFloat = 20.0
	ZombieSpawnMinFloat   = 14.0
	ZombieSpawnMaxFloat   = 24.0
	GhostSpawnMinFloat    = 12.0
	GhostSpawnMaxFloat    = 22.0
	VampireSpawnMinFloat  = 18.0
	VampireSpawnMaxFloat  = 26.0
)

// Population targets by kills: 0 below threshold, else clamp(base + (kills-offset)/divisor, min, max)
const (
	SkeletonTargetBase    = 5
	SkeletonTargetDivisor = 2
	SkeletonTargetMax     = 30

	GhostTargetThreshold = 10
	GhostTargetOffset    = 8
	GhostTargetDivisor   = 5
	GhostTargetMax       = 12

	ZombieTargetThreshold = 25
	ZombieTargetOffset    = 20
	ZombieTargetDivisor   = 7
	ZombieTargetMax       = 8

	VampireTargetThreshold = 60
	VampireTargetMax       = 1
)
