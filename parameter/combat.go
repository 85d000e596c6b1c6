package parameter

// Bullets
const (
	// BulletRadius is projectile collision radius
	BulletRadius = 2.0

	// BulletSpeed is projectile speed per tick
	BulletSpeed = 12.0

	// BulletLifetime is projectile life in ticks
	BulletLifetime = 50

	// FireRateNormal is ticks between shots
	FireRateNormal = 10

	// FireRateRapid is ticks between shots under rapid fire
	FireRateRapid = 5

	// TripleShotSpread is the side-shot angle offset in degrees
	TripleShotSpread = 10.0

	// BulletTrailLength is player bullet trail capacity
	BulletTrailLength = 8

	// EnemyBulletTrailLength is enemy bullet trail capacity
	EnemyBulletTrailLength = 6

	// EnemyBulletSpeedMultiplier scales enemy projectile speed
	EnemyBulletSpeedMultiplier = 0.8
)

// Asteroids
const (
	// AsteroidMinSize is the smallest size tier
	AsteroidMinSize = 1

	// AsteroidMaxSize is the largest size tier
	AsteroidMaxSize = 3

	// AsteroidRadiusPerSize is radius contributed per size tier
	AsteroidRadiusPerSize = 10.0

	// AsteroidBaseSpeed is base drift speed
	AsteroidBaseSpeed = 2.0

	// AsteroidSpeedMultiplier is the speed multiplier before size adjustment
	AsteroidSpeedMultiplier = 1.5

	// AsteroidSpeedSizeAdjustment is subtracted per size tier from the multiplier
	AsteroidSpeedSizeAdjustment = 0.2

	// AsteroidCollisionMargin pads asteroid radius for bullet and ship hits
	AsteroidCollisionMargin = 12.0

	// AsteroidSpawnMargin is the edge inset for level spawns
	AsteroidSpawnMargin = 50

	// AsteroidHitFlash is hit flash duration in ticks
	AsteroidHitFlash = 8

	// AsteroidCrystalChance is the chance a level asteroid carries crystals
	AsteroidCrystalChance = 0.2

	// AsteroidSplitCount is children produced by a split
	AsteroidSplitCount = 2

	// AsteroidVertexCount is polygon vertex count
	AsteroidVertexCount = 8

	// AsteroidShapeVarianceMin is the lower bound of per-vertex perturbation
	AsteroidShapeVarianceMin = 8

	// AsteroidShapeVarianceMax is the upper bound of per-vertex perturbation
	AsteroidShapeVarianceMax = 12

	// AsteroidMaxSpin is the spin range in degrees per tick
	AsteroidMaxSpin = 3.0

	// AsteroidScoreLarge is score for a size-3 asteroid
	AsteroidScoreLarge = 100

	// AsteroidScoreMedium is score for a size-2 asteroid
	AsteroidScoreMedium = 50

	// AsteroidScoreSmall is score for a size-1 asteroid
	AsteroidScoreSmall = 20

	// ComboScoreBonus is the per-combo score multiplier increment
	ComboScoreBonus = 0.1
)

// Boss
const (
	// BossHealth is boss asteroid hit points
	BossHealth = 50

	// BossSpawnInterval is the level period between bosses
	BossSpawnInterval = 5

	// BossSizeMultiplier scales boss radius
	BossSizeMultiplier = 3.0

	// BossSpeedMultiplier scales boss drift speed
	BossSpeedMultiplier = 0.5

	// BossRotationMultiplier scales boss spin
	BossRotationMultiplier = 0.3

	// BossScore is awarded on boss death
	BossScore = 1000

	// BossCrystalDrops is crystal powerups spawned on boss death
	BossCrystalDrops = 5

	// BossCrystalSpread is the drop scatter around the boss
	BossCrystalSpread = 50.0

	// BossWaveWarning is warning banner duration in ticks
	BossWaveWarning = 120
)

// Enemies
const (
	// EnemySpeed is base enemy speed
	EnemySpeed = 1.5

	// EnemySpeedReduction scales the enemy speed cap
	EnemySpeedReduction = 0.75

	// EnemyFriction is per-tick velocity retention
	EnemyFriction = 0.96

	// EnemyFireRate is base ticks between enemy shots
	EnemyFireRate = 90

	// EnemyFireRateVariance is +/- jitter on enemy fire cooldown
	EnemyFireRateVariance = 10

	// EnemyMaxCount caps spawned-on-destruction enemies
	EnemyMaxCount = 2

	// EnemySpawnChance is the chance an asteroid destruction spawns an enemy
	EnemySpawnChance = 0.1

	// EnemyMinSpawnDistance is the minimum spawn distance from the ship
	EnemyMinSpawnDistance = 200.0

	// EnemySpawnMargin is the edge inset for enemy spawns
	EnemySpawnMargin = 50

	// EnemyMaxSpawnAttempts bounds spawn position retries
	EnemyMaxSpawnAttempts = 10

	// EnemyScore is awarded on enemy death
	EnemyScore = 200

	// EnemyAimInaccuracy is +/- degrees of aim error
	EnemyAimInaccuracy = 5.0

	// EnemyMinDistance is the hunter retreat threshold
	EnemyMinDistance = 100.0

	// EnemyRadius is enemy collision radius
	EnemyRadius = 12.0

	// EnemyHealth is enemy hit points
	EnemyHealth = 3

	// EnemyHitFlash is hit flash duration in ticks
	EnemyHitFlash = 8

	// EnemyMinFireDistance is the inner firing range bound
	EnemyMinFireDistance = 50.0

	// EnemyMaxFireDistance is the outer firing range bound
	EnemyMaxFireDistance = 250.0

	// EnemyCrystalDropChance is the chance an enemy drops a crystal instead of a rolled powerup
	EnemyCrystalDropChance = 0.5

	// EnemyShipBulletRadiusMultiplier scales enemy bullet radius in ship contact checks
	EnemyShipBulletRadiusMultiplier = 2.0
)

// Enemy AI
const (
	// HunterApproachRate is hunter acceleration toward the ship
	HunterApproachRate = 0.05

	// HunterRetreatRate is hunter acceleration away from the ship
	HunterRetreatRate = 0.1

	// CirclerOrbitSpeed is orbit phase advance in degrees per tick
	CirclerOrbitSpeed = 1.5

	// CirclerOrbitRadius is the orbit radius around the ship
	CirclerOrbitRadius = 180.0

	// CirclerApproachRate is circler acceleration toward its orbit point
	CirclerApproachRate = 0.08
)
