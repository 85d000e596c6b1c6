package config

import "github.com/lixenwraith/asteroids/parameter"

// ArenaConfig is the reference playfield size
type ArenaConfig struct {
	Width           float64 `toml:"width" mapstructure:"width"`
	Height          float64 `toml:"height" mapstructure:"height"`
	ReferenceHeight float64 `toml:"reference_height" mapstructure:"reference_height"`
	MaxScale        float64 `toml:"max_scale" mapstructure:"max_scale"`
}

// TimingConfig drives the fixed-timestep scheduler
type TimingConfig struct {
	PhysicsHz        int     `toml:"physics_hz" mapstructure:"physics_hz"`
	AIHz             int     `toml:"ai_hz" mapstructure:"ai_hz"`
	ParticleHz       int     `toml:"particle_hz" mapstructure:"particle_hz"`
	UIHz             int     `toml:"ui_hz" mapstructure:"ui_hz"`
	EffectsHz        int     `toml:"effects_hz" mapstructure:"effects_hz"`
	MaxFrameDelta    float64 `toml:"max_frame_delta" mapstructure:"max_frame_delta"` // seconds
	MaxTicksPerFrame int     `toml:"max_ticks_per_frame" mapstructure:"max_ticks_per_frame"`
}

// ShipConfig tunes player movement and survival
type ShipConfig struct {
	MaxSpeed          float64 `toml:"max_speed" mapstructure:"max_speed"`
	TurnSpeed         float64 `toml:"turn_speed" mapstructure:"turn_speed"`
	Thrust            float64 `toml:"thrust" mapstructure:"thrust"`
	ReverseMultiplier float64 `toml:"reverse_multiplier" mapstructure:"reverse_multiplier"`
	Friction          float64 `toml:"friction" mapstructure:"friction"`
	Radius            float64 `toml:"radius" mapstructure:"radius"`
	NoseLength        float64 `toml:"nose_length" mapstructure:"nose_length"`
	InitialLives      int     `toml:"initial_lives" mapstructure:"initial_lives"`
	MaxLives          int     `toml:"max_lives" mapstructure:"max_lives"`
	Invulnerability   int     `toml:"invulnerability" mapstructure:"invulnerability"` // ticks
	Respawn           int     `toml:"respawn" mapstructure:"respawn"`                 // ticks
}

// DashConfig tunes the dash move
type DashConfig struct {
	Cooldown        int     `toml:"cooldown" mapstructure:"cooldown"`
	Duration        int     `toml:"duration" mapstructure:"duration"`
	SpeedMultiplier float64 `toml:"speed_multiplier" mapstructure:"speed_multiplier"`
}

// BulletConfig tunes player and enemy projectiles
type BulletConfig struct {
	Radius               float64 `toml:"radius" mapstructure:"radius"`
	Speed                float64 `toml:"speed" mapstructure:"speed"`
	Lifetime             int     `toml:"lifetime" mapstructure:"lifetime"`
	FireRateNormal       int     `toml:"fire_rate_normal" mapstructure:"fire_rate_normal"`
	FireRateRapid        int     `toml:"fire_rate_rapid" mapstructure:"fire_rate_rapid"`
	TripleSpread         float64 `toml:"triple_spread" mapstructure:"triple_spread"`
	EnemySpeedMultiplier float64 `toml:"enemy_speed_multiplier" mapstructure:"enemy_speed_multiplier"`
}

// AsteroidConfig tunes asteroid spawning, splitting and scoring
type AsteroidConfig struct {
	BaseSpeed           float64 `toml:"base_speed" mapstructure:"base_speed"`
	SpeedMultiplier     float64 `toml:"speed_multiplier" mapstructure:"speed_multiplier"`
	SpeedSizeAdjustment float64 `toml:"speed_size_adjustment" mapstructure:"speed_size_adjustment"`
	CollisionMargin     float64 `toml:"collision_margin" mapstructure:"collision_margin"`
	SpawnMargin         float64 `toml:"spawn_margin" mapstructure:"spawn_margin"`
	HitFlash            int     `toml:"hit_flash" mapstructure:"hit_flash"`
	CrystalChance       float64 `toml:"crystal_chance" mapstructure:"crystal_chance"`
	SplitCount          int     `toml:"split_count" mapstructure:"split_count"`
	ScoreLarge          int     `toml:"score_large" mapstructure:"score_large"`
	ScoreMedium         int     `toml:"score_medium" mapstructure:"score_medium"`
	ScoreSmall          int     `toml:"score_small" mapstructure:"score_small"`
}

// BossConfig tunes boss asteroids
type BossConfig struct {
	Health             int     `toml:"health" mapstructure:"health"`
	SpawnInterval      int     `toml:"spawn_interval" mapstructure:"spawn_interval"`
	SizeMultiplier     float64 `toml:"size_multiplier" mapstructure:"size_multiplier"`
	SpeedMultiplier    float64 `toml:"speed_multiplier" mapstructure:"speed_multiplier"`
	RotationMultiplier float64 `toml:"rotation_multiplier" mapstructure:"rotation_multiplier"`
	Score              int     `toml:"score" mapstructure:"score"`
	CrystalDrops       int     `toml:"crystal_drops" mapstructure:"crystal_drops"`
}

// EnemyConfig tunes enemy ships and their AI
type EnemyConfig struct {
	Speed              float64 `toml:"speed" mapstructure:"speed"`
	SpeedReduction     float64 `toml:"speed_reduction" mapstructure:"speed_reduction"`
	Friction           float64 `toml:"friction" mapstructure:"friction"`
	FireRate           int     `toml:"fire_rate" mapstructure:"fire_rate"`
	FireRateVariance   int     `toml:"fire_rate_variance" mapstructure:"fire_rate_variance"`
	MaxCount           int     `toml:"max_count" mapstructure:"max_count"`
	SpawnChance        float64 `toml:"spawn_chance" mapstructure:"spawn_chance"`
	MinSpawnDistance   float64 `toml:"min_spawn_distance" mapstructure:"min_spawn_distance"`
	Score              int     `toml:"score" mapstructure:"score"`
	AimInaccuracy      float64 `toml:"aim_inaccuracy" mapstructure:"aim_inaccuracy"`
	MinDistance        float64 `toml:"min_distance" mapstructure:"min_distance"`
	Radius             float64 `toml:"radius" mapstructure:"radius"`
	Health             int     `toml:"health" mapstructure:"health"`
	MinFireDistance    float64 `toml:"min_fire_distance" mapstructure:"min_fire_distance"`
	MaxFireDistance    float64 `toml:"max_fire_distance" mapstructure:"max_fire_distance"`
	CrystalDropChance  float64 `toml:"crystal_drop_chance" mapstructure:"crystal_drop_chance"`
	HunterApproach     float64 `toml:"hunter_approach" mapstructure:"hunter_approach"`
	HunterRetreat      float64 `toml:"hunter_retreat" mapstructure:"hunter_retreat"`
	CirclerOrbitSpeed  float64 `toml:"circler_orbit_speed" mapstructure:"circler_orbit_speed"`
	CirclerOrbitRadius float64 `toml:"circler_orbit_radius" mapstructure:"circler_orbit_radius"`
	CirclerApproach    float64 `toml:"circler_approach" mapstructure:"circler_approach"`
}

// FinisherConfig tunes the finisher sequence, durations in ticks
type FinisherConfig struct {
	LockOnTicks     int     `toml:"lock_on_ticks" mapstructure:"lock_on_ticks"`
	PreImpactTicks  int     `toml:"pre_impact_ticks" mapstructure:"pre_impact_ticks"`
	ImpactTicks     int     `toml:"impact_ticks" mapstructure:"impact_ticks"`
	PostImpactTicks int     `toml:"post_impact_ticks" mapstructure:"post_impact_ticks"`
	LockOnScale     float64 `toml:"lock_on_scale" mapstructure:"lock_on_scale"`
	ImpactScale     float64 `toml:"impact_scale" mapstructure:"impact_scale"`
	ShockwaveRadius float64 `toml:"shockwave_radius" mapstructure:"shockwave_radius"`
	ShockwaveSeed   float64 `toml:"shockwave_seed" mapstructure:"shockwave_seed"`
	DamageClose     int     `toml:"damage_close" mapstructure:"damage_close"`
	DamageFar       int     `toml:"damage_far" mapstructure:"damage_far"`
	CloseRange      float64 `toml:"close_range" mapstructure:"close_range"`
	Knockback       float64 `toml:"knockback" mapstructure:"knockback"`
	Score           int     `toml:"score" mapstructure:"score"`
	InvulnBuffer    int     `toml:"invuln_buffer" mapstructure:"invuln_buffer"`
}

// ComboConfig tunes the combo counter and meter fill tiers
type ComboConfig struct {
	Timeout         int     `toml:"timeout" mapstructure:"timeout"`
	FillBase        float64 `toml:"fill_base" mapstructure:"fill_base"`
	FillMedium      float64 `toml:"fill_medium" mapstructure:"fill_medium"`
	FillHigh        float64 `toml:"fill_high" mapstructure:"fill_high"`
	ThresholdMedium int     `toml:"threshold_medium" mapstructure:"threshold_medium"`
	ThresholdHigh   int     `toml:"threshold_high" mapstructure:"threshold_high"`
}

// PowerUpConfig tunes drops and pickup effects
type PowerUpConfig struct {
	DropChance     float64 `toml:"drop_chance" mapstructure:"drop_chance"`
	CrystalChance  float64 `toml:"crystal_chance" mapstructure:"crystal_chance"`
	Lifetime       int     `toml:"lifetime" mapstructure:"lifetime"`
	AreaScaling    float64 `toml:"area_scaling" mapstructure:"area_scaling"`
	RapidDuration  int     `toml:"rapid_duration" mapstructure:"rapid_duration"`
	TripleDuration int     `toml:"triple_duration" mapstructure:"triple_duration"`
	ShieldDuration int     `toml:"shield_duration" mapstructure:"shield_duration"`
	PickupRadius   float64 `toml:"pickup_radius" mapstructure:"pickup_radius"`
	VisualRadius   float64 `toml:"visual_radius" mapstructure:"visual_radius"`
	CrystalValue   int     `toml:"crystal_value" mapstructure:"crystal_value"`
	Score          int     `toml:"score" mapstructure:"score"`
}

// ParticleConfig sizes and damps the particle pool
type ParticleConfig struct {
	PoolSize     int     `toml:"pool_size" mapstructure:"pool_size"`
	BaseLife     int     `toml:"base_life" mapstructure:"base_life"`
	LifeVariance int     `toml:"life_variance" mapstructure:"life_variance"`
	Friction     float64 `toml:"friction" mapstructure:"friction"`
}

// Default returns the built-in tuning and session settings
func Default() *Config {
	return &Config{
		Session: Session{
			LogLevel:  "info",
			LogPath:   "asteroids.log",
			Audio:     true,
			Volume:    parameter.AudioMasterVolume,
			Telemetry: false,
			Store: StoreConfig{
				Backend: StoreFile,
				Path:    "asteroids_save.toml",
			},
		},
		Arena: ArenaConfig{
			Width:           parameter.ArenaWidth,
			Height:          parameter.ArenaHeight,
			ReferenceHeight: parameter.ArenaReferenceHeight,
			MaxScale:        parameter.ArenaMaxScale,
		},
		Timing: TimingConfig{
			PhysicsHz:        parameter.PhysicsHz,
			AIHz:             15,
			ParticleHz:       30,
			UIHz:             20,
			EffectsHz:        20,
			MaxFrameDelta:    parameter.MaxFrameDelta,
			MaxTicksPerFrame: parameter.MaxTicksPerFrame,
		},
		Ship: ShipConfig{
			MaxSpeed:          parameter.ShipMaxSpeed,
			TurnSpeed:         parameter.ShipTurnSpeed,
			Thrust:            parameter.ShipThrustPower,
			ReverseMultiplier: parameter.ShipReverseMultiplier,
			Friction:          parameter.ShipFriction,
			Radius:            parameter.ShipRadius,
			NoseLength:        parameter.ShipNoseLength,
			InitialLives:      parameter.ShipInitialLives,
			MaxLives:          parameter.ShipMaxLives,
			Invulnerability:   parameter.ShipInvulnerabilityTime,
			Respawn:           parameter.ShipRespawnDuration,
		},
		Dash: DashConfig{
			Cooldown:        parameter.DashCooldown,
			Duration:        parameter.DashDuration,
			SpeedMultiplier: parameter.DashSpeedMultiplier,
		},
		Bullet: BulletConfig{
			Radius:               parameter.BulletRadius,
			Speed:                parameter.BulletSpeed,
			Lifetime:             parameter.BulletLifetime,
			FireRateNormal:       parameter.FireRateNormal,
			FireRateRapid:        parameter.FireRateRapid,
			TripleSpread:         parameter.TripleShotSpread,
			EnemySpeedMultiplier: parameter.EnemyBulletSpeedMultiplier,
		},
		Asteroid: AsteroidConfig{
			BaseSpeed:           parameter.AsteroidBaseSpeed,
			SpeedMultiplier:     parameter.AsteroidSpeedMultiplier,
			SpeedSizeAdjustment: parameter.AsteroidSpeedSizeAdjustment,
			CollisionMargin:     parameter.AsteroidCollisionMargin,
			SpawnMargin:         parameter.AsteroidSpawnMargin,
			HitFlash:            parameter.AsteroidHitFlash,
			CrystalChance:       parameter.AsteroidCrystalChance,
			SplitCount:          parameter.AsteroidSplitCount,
			ScoreLarge:          parameter.AsteroidScoreLarge,
			ScoreMedium:         parameter.AsteroidScoreMedium,
			ScoreSmall:          parameter.AsteroidScoreSmall,
		},
		Boss: BossConfig{
			Health:             parameter.BossHealth,
			SpawnInterval:      parameter.BossSpawnInterval,
			SizeMultiplier:     parameter.BossSizeMultiplier,
			SpeedMultiplier:    parameter.BossSpeedMultiplier,
			RotationMultiplier: parameter.BossRotationMultiplier,
			Score:              parameter.BossScore,
			CrystalDrops:       parameter.BossCrystalDrops,
		},
		Enemy: EnemyConfig{
			Speed:              parameter.EnemySpeed,
			SpeedReduction:     parameter.EnemySpeedReduction,
			Friction:           parameter.EnemyFriction,
			FireRate:           parameter.EnemyFireRate,
			FireRateVariance:   parameter.EnemyFireRateVariance,
			MaxCount:           parameter.EnemyMaxCount,
			SpawnChance:        parameter.EnemySpawnChance,
			MinSpawnDistance:   parameter.EnemyMinSpawnDistance,
			Score:              parameter.EnemyScore,
			AimInaccuracy:      parameter.EnemyAimInaccuracy,
			MinDistance:        parameter.EnemyMinDistance,
			Radius:             parameter.EnemyRadius,
			Health:             parameter.EnemyHealth,
			MinFireDistance:    parameter.EnemyMinFireDistance,
			MaxFireDistance:    parameter.EnemyMaxFireDistance,
			CrystalDropChance:  parameter.EnemyCrystalDropChance,
			HunterApproach:     parameter.HunterApproachRate,
			HunterRetreat:      parameter.HunterRetreatRate,
			CirclerOrbitSpeed:  parameter.CirclerOrbitSpeed,
			CirclerOrbitRadius: parameter.CirclerOrbitRadius,
			CirclerApproach:    parameter.CirclerApproachRate,
		},
		Finisher: FinisherConfig{
			LockOnTicks:     parameter.FinisherLockOnTime,
			PreImpactTicks:  parameter.FinisherPreImpactTime,
			ImpactTicks:     parameter.FinisherImpactTime,
			PostImpactTicks: parameter.FinisherPostImpactTime,
			LockOnScale:     parameter.FinisherLockOnScale,
			ImpactScale:     parameter.FinisherImpactScale,
			ShockwaveRadius: parameter.FinisherShockwaveRadius,
			ShockwaveSeed:   parameter.FinisherShockwaveSeed,
			DamageClose:     parameter.FinisherDamageClose,
			DamageFar:       parameter.FinisherDamageFar,
			CloseRange:      parameter.FinisherCloseRange,
			Knockback:       parameter.FinisherKnockback,
			Score:           parameter.FinisherScore,
			InvulnBuffer:    parameter.FinisherInvulnBufferTicks,
		},
		Combo: ComboConfig{
			Timeout:         parameter.ComboTimeout,
			FillBase:        parameter.ComboFillBase,
			FillMedium:      parameter.ComboFillMedium,
			FillHigh:        parameter.ComboFillHigh,
			ThresholdMedium: parameter.ComboThresholdMedium,
			ThresholdHigh:   parameter.ComboThresholdHigh,
		},
		PowerUp: PowerUpConfig{
			DropChance:     parameter.PowerUpDropChance,
			CrystalChance:  parameter.PowerUpCrystalChance,
			Lifetime:       parameter.PowerUpLifetime,
			AreaScaling:    parameter.PowerUpAreaScaling,
			RapidDuration:  parameter.PowerUpRapidDuration,
			TripleDuration: parameter.PowerUpTripleDuration,
			ShieldDuration: parameter.PowerUpShieldDuration,
			PickupRadius:   parameter.PowerUpPickupRadius,
			VisualRadius:   parameter.PowerUpVisualRadius,
			CrystalValue:   parameter.PowerUpCrystalValue,
			Score:          parameter.PowerUpScore,
		},
		Particle: ParticleConfig{
			PoolSize:     parameter.ParticlePoolSize,
			BaseLife:     parameter.ParticleBaseLife,
			LifeVariance: parameter.ParticleLifeVariance,
			Friction:     parameter.ParticleFriction,
		},
	}
}
