package config

import "image/color"

// MovementConfig contains combatant movement values. All values are per tick.
type MovementConfig struct {
	MoveSpeed float64
	JumpForce float64
	Gravity   float64
	Friction  float64 // multiplicative, applied to SpeedX after integration
	DashForce float64

	// Stamina gates
	JumpStaminaCost float64
	DashStaminaCost float64
}

// ArenaConfig contains the default geometry used when no arena file is loaded.
type ArenaConfig struct {
	GroundLevel      float64
	WallExtent       float64 // x is clamped to [-WallExtent, WallExtent]
	Depth            float64
	PlatformTopSlack float64 // landing tolerance above a platform's top face
	PlatformSnap     float64 // offset above the top face a landed combatant snaps to

	// Spawn positions per side
	SpawnX [2]float64
}

// CombatConfig contains hit resolution values
type CombatConfig struct {
	AttackDamage         float64
	SpecialDamage        float64
	BlockDamageReduction float64 // multiplier applied to blocked damage
	KnockbackForce       float64
	SpecialKnockbackMult float64

	// Combo scaling per extra hit in a chain
	ComboDamageStep    float64
	ComboKnockbackStep float64

	// Vertical knockback
	ComboLiftThreshold int // basic hits lift when comboCounter exceeds this
	ComboLift          float64
	SpecialLift        float64

	// Range checks
	AttackRangeX  float64
	AttackRangeY  float64
	SpecialRangeX float64
	SpecialRangeY float64

	// Hitstun (ticks)
	AttackHitstun  int
	SpecialHitstun int

	// Meter transfer divisors
	AttackerMeterDivisor float64 // attacker gains damage / divisor on a clean hit
	BlockerMeterDivisor  float64 // defender gains damage / divisor on a blocked hit
}

// TimingConfig contains action timing in ticks. The source values were wall
// clock milliseconds at 60 frames per second.
type TimingConfig struct {
	TickRate int

	AttackCooldown  int
	AttackDuration  int
	AttackHitDelay  int
	SpecialDuration int
	SpecialHitDelay int
	DashCooldown    int
	DashDuration    int
}

// ResourceConfig contains health, stamina and special meter values
type ResourceConfig struct {
	MaxHealth  float64
	MaxStamina float64
	MaxSpecial float64

	StartHealth  float64
	StartStamina float64
	StartSpecial float64

	StaminaRegen float64
	SpecialRegen float64

	AttackStaminaCost float64
	SpecialCost       float64
}

// ComboConfig contains combo window and directional sequence values
type ComboConfig struct {
	Window        int // ticks after an attack during which the next attack chains
	MoveDebounce  int // ticks between recorded directional tokens
	SequenceLimit int
	MeterBonus    float64 // special meter granted on each chained attack
}

// ScreenShakeConfig contains camera shake requests. Intensity is in arena
// units, duration in ticks.
type ScreenShakeConfig struct {
	HitIntensity        float64
	HitDuration         int
	SpecialHitIntensity float64
	SpecialHitDuration  int

	// Cast shakes per special variant
	Cast map[SpecialVariant]ShakeRequest
}

// ShakeRequest is a single camera shake intensity/duration pair
type ShakeRequest struct {
	Intensity float64
	Duration  int
}

// ParticleStyle describes a particle burst request
type ParticleStyle struct {
	Color color.RGBA
	Count int
	Size  float64
}

// ParticleConfig contains particle burst styles per burst kind
type ParticleConfig struct {
	Jump       ParticleStyle
	Dash       ParticleStyle
	Hit        ParticleStyle
	Block      ParticleStyle
	SpecialHit ParticleStyle

	// Cast bursts per special variant
	Cast map[SpecialVariant]ParticleStyle

	// Offsets from the combatant position
	ImpactOffsetY float64
	JumpOffsetY   float64
	DashOffsetX   float64
}

// SpaceConfig contains the resolv broadphase grid settings
type SpaceConfig struct {
	Scale    float64 // space pixels per arena unit
	Cell     int     // cell size in space pixels
	Margin   float64 // arena units of padding around the playable area
	Headroom float64 // arena units above the highest platform top
}

// MatchConfig contains round flow values
type MatchConfig struct {
	CountdownTicks int
}

// Global configuration instances
var Movement MovementConfig
var Arena ArenaConfig
var Combat CombatConfig
var Timing TimingConfig
var Resources ResourceConfig
var Combo ComboConfig
var ScreenShake ScreenShakeConfig
var Particles ParticleConfig
var Space SpaceConfig
var Match MatchConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightGrey = color.RGBA{R: 204, G: 204, B: 204, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	SkyBlue   = color.RGBA{R: 136, G: 204, B: 255, A: 255} // tornado
	Orange    = color.RGBA{R: 255, G: 102, B: 0, A: 255}   // firewave
	IceBlue   = color.RGBA{R: 170, G: 221, B: 255, A: 255} // iceblast
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Movement = MovementConfig{
		MoveSpeed: 0.12,
		JumpForce: 0.25,
		Gravity:   0.01,
		Friction:  0.9,
		DashForce: 0.4,

		JumpStaminaCost: 10,
		DashStaminaCost: 20,
	}

	Arena = ArenaConfig{
		GroundLevel:      1,
		WallExtent:       9,
		Depth:            10,
		PlatformTopSlack: 0.2,
		PlatformSnap:     0.1,
		SpawnX:           [2]float64{-5, 5},
	}

	Combat = CombatConfig{
		AttackDamage:         8,
		SpecialDamage:        25,
		BlockDamageReduction: 0.7,
		KnockbackForce:       0.2,
		SpecialKnockbackMult: 2,

		ComboDamageStep:    0.2,
		ComboKnockbackStep: 0.1,

		ComboLiftThreshold: 2,
		ComboLift:          0.1,
		SpecialLift:        0.15,

		AttackRangeX:  1.8,
		AttackRangeY:  1.5,
		SpecialRangeX: 3.5,
		SpecialRangeY: 2,

		AttackHitstun:  10,
		SpecialHitstun: 20,

		AttackerMeterDivisor: 3,
		BlockerMeterDivisor:  2,
	}

	Timing = TimingConfig{
		TickRate: 60,

		AttackCooldown:  15,
		AttackDuration:  12, // 12 frames at 16.67ms
		AttackHitDelay:  6,  // ~100ms
		SpecialDuration: 18, // 12 * 25ms = 300ms
		SpecialHitDelay: 12, // ~200ms
		DashCooldown:    30,
		DashDuration:    12, // ~200ms
	}

	Resources = ResourceConfig{
		MaxHealth:  100,
		MaxStamina: 100,
		MaxSpecial: 100,

		StartHealth:  100,
		StartStamina: 100,
		StartSpecial: 0,

		StaminaRegen: 0.5,
		SpecialRegen: 0.2,

		AttackStaminaCost: 15,
		SpecialCost:       30,
	}

	Combo = ComboConfig{
		Window:        30,
		MoveDebounce:  20,
		SequenceLimit: 3,
		MeterBonus:    5,
	}

	ScreenShake = ScreenShakeConfig{
		HitIntensity:        0.03,
		HitDuration:         5,
		SpecialHitIntensity: 0.1,
		SpecialHitDuration:  15,

		Cast: map[SpecialVariant]ShakeRequest{
			Tornado:     {Intensity: 0.08, Duration: 20},
			Firewave:    {Intensity: 0.1, Duration: 15},
			Iceblast:    {Intensity: 0.07, Duration: 12},
			EnergyBlast: {Intensity: 0.06, Duration: 10},
		},
	}

	Particles = ParticleConfig{
		Jump:       ParticleStyle{Color: LightGrey, Count: 8, Size: 0.08},
		Dash:       ParticleStyle{Color: White, Count: 15, Size: 0.1},
		Hit:        ParticleStyle{Color: Red, Count: 15, Size: 0.15},
		Block:      ParticleStyle{Color: White, Count: 10, Size: 0.1},
		SpecialHit: ParticleStyle{Color: Yellow, Count: 30, Size: 0.25},

		Cast: map[SpecialVariant]ParticleStyle{
			Tornado:     {Color: SkyBlue, Count: 30, Size: 0.2},
			Firewave:    {Color: Orange, Count: 25, Size: 0.25},
			Iceblast:    {Color: IceBlue, Count: 20, Size: 0.3},
			EnergyBlast: {Color: Yellow, Count: 15, Size: 0.2},
		},

		ImpactOffsetY: 0.5,
		JumpOffsetY:   -0.5,
		DashOffsetX:   0.5,
	}

	Space = SpaceConfig{
		Scale:    16,
		Cell:     16,
		Margin:   2,
		Headroom: 8,
	}

	Match = MatchConfig{
		CountdownTicks: 180, // 3, 2, 1 at 60 ticks/s
	}
}
