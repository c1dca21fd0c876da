package parameter

import (
	"time"
)

// Player Weapon
const (
	// WeaponAutoFireInterval is the cadence of automatic firing
	WeaponAutoFireInterval = 2 * time.Second

	// WeaponFireCooldown gates manual fire requests
	WeaponFireCooldown = 250 * time.Millisecond

	// WeaponMuzzleOffsetFloat is the spawn distance of a projectile ahead of the player
	WeaponMuzzleOffsetFloat = 1.2

	// WeaponSpreadDegFloat is the angle between adjacent projectiles in a fan
	WeaponSpreadDegFloat = 10.0

	// WeaponRadialCount is the projectile count of a max tier radial burst
	WeaponRadialCount = 12

	// WeaponRadialDamageFactorFloat scales per-projectile damage in a radial burst
	WeaponRadialDamageFactorFloat = 0.5
)

// Player Projectile
const (
	// BulletSpeedFloat is player projectile speed in units per second
	BulletSpeedFloat = 10.0

	// BulletRangeFloat is the distance a player projectile travels before expiring
	BulletRangeFloat = 5.0

	// BulletRadiusFloat is projectile collision radius
	BulletRadiusFloat = 0.08
)

// Contact bounce
const (
	// BounceBackFloat is the gap beyond the hit radius a bounced monster is placed at
	BounceBackFloat = 0.3

	// BouncePause is the retreat duration after contact
	BouncePause = 1 * time.Second

	// BounceRetreatMultiplierFloat scales monster speed while retreating
	BounceRetreatMultiplierFloat = 0.4

	// BounceRandomAngleFloat is the max deviation in radians of the retreat heading
	BounceRandomAngleFloat = 0.4

	// HoldEpsilonFloat is the half width of the band in which ranged monsters hold position
	HoldEpsilonFloat = 0.2
)
