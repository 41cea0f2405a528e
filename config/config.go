package config

import "image/color"

// PlayerConfig contains the player's movement tuning. Distances are in world
// units (y up); the physics backends convert to pixels.
type PlayerConfig struct {
	// Movement
	MovementSpeed  float64 `yaml:"movementSpeed"`
	JumpForce      float64 `yaml:"jumpForce"`
	ClimbJumpForce float64 `yaml:"climbJumpForce"` // Reduced jump when leaving a ladder or rope
	MaxFallSpeed   float64 `yaml:"maxFallSpeed"`   // Negative; steepest allowed downward speed

	// Physics
	GravityScale float64 `yaml:"gravityScale"`
	Mass         float64 `yaml:"mass"`

	// Ground check
	GroundCheckRadius  float64 `yaml:"groundCheckRadius"`
	GroundCheckOffsetY float64 `yaml:"groundCheckOffsetY"` // Distance below the body center
	GroundMask         uint32  `yaml:"groundMask"`

	// Climbing
	ClimbSnapTolerance float64 `yaml:"climbSnapTolerance"`

	// Respawn
	RespawnResetsMotion bool `yaml:"respawnResetsMotion"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
	CrouchHeight    float64 `yaml:"crouchHeight"` // Drawn height while crouching
}

// KnockbackConfig contains hazard reaction tuning
type KnockbackConfig struct {
	ForceX          float64 `yaml:"forceX"`
	ForceY          float64 `yaml:"forceY"`
	Duration        float64 `yaml:"duration"`        // Seconds of locomotion lockout
	FlickerInterval float64 `yaml:"flickerInterval"` // Seconds between visibility toggles
	FlickerDuration float64 `yaml:"flickerDuration"` // Seconds the sprite flickers
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`          // Units/s^2, negative is down
	FixedStep        float64 `yaml:"fixedStep"`        // Seconds per physics tick
	MaxStepsPerFrame int     `yaml:"maxStepsPerFrame"` // Caps catch-up after a hitch
	PixelsPerUnit    float64 `yaml:"pixelsPerUnit"`
	CellSize         int     `yaml:"cellSize"` // resolv broadphase cell, pixels
	CornerSlideForce float64 `yaml:"cornerSlideForce"`
	Backend          string  `yaml:"backend"` // "resolv" or "chipmunk"
}

// ObstacleConfig contains defaults for hazards that the level does not override
type ObstacleConfig struct {
	MoveDistance       float64 `yaml:"moveDistance"` // Units
	MoveSpeed          float64 `yaml:"moveSpeed"`    // Units/s
	ElectricOnSeconds  float64 `yaml:"electricOnSeconds"`
	ElectricOffSeconds float64 `yaml:"electricOffSeconds"`
}

// CameraConfig contains camera follow tuning
type CameraConfig struct {
	FollowSmoothing    float64 `yaml:"followSmoothing"`    // Fraction of the gap closed per frame
	LookAheadDistanceX float64 `yaml:"lookAheadDistanceX"` // Pixels ahead of the player's facing
}

// LoggingConfig selects log level and optional rotating file output
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	DrawColliders bool `yaml:"drawColliders"`
	ShowHUD       bool `yaml:"showHUD"`
}

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
	Level  string `yaml:"level"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Knockback KnockbackConfig
var Physics PhysicsConfig
var Obstacle ObstacleConfig
var Camera CameraConfig
var Logging LoggingConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Brown        = color.RGBA{R: 140, G: 90, B: 40, A: 255}
	Gray         = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// Physics backends
const (
	BackendResolv   = "resolv"
	BackendChipmunk = "chipmunk"
)

func init() {
	Reset()
}

// Reset restores every global to its built-in default.
func Reset() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "ropewalk",
		TPS:    60,
		Level:  "levels/level1.tmx",
	}

	Physics = PhysicsConfig{
		Gravity:          -9.81,
		FixedStep:        0.02,
		MaxStepsPerFrame: 5,
		PixelsPerUnit:    32,
		CellSize:         16,
		CornerSlideForce: 2.0,
		Backend:          BackendResolv,
	}

	Player = PlayerConfig{
		// Movement
		MovementSpeed:  5.0,
		JumpForce:      7.0,
		ClimbJumpForce: 5.0,
		MaxFallSpeed:   -10.0,

		// Physics
		GravityScale: 2.0,
		Mass:         1.0,

		// Ground check
		GroundCheckRadius:  0.1,
		GroundCheckOffsetY: 0.5,
		GroundMask:         LayerGround,

		ClimbSnapTolerance:  0.1,
		RespawnResetsMotion: true,

		// Dimensions
		CollisionWidth:  0.5,
		CollisionHeight: 1.0,
		CrouchHeight:    0.6,
	}

	Knockback = KnockbackConfig{
		ForceX:          10.0,
		ForceY:          2.0,
		Duration:        0.5,
		FlickerInterval: 0.1,
		FlickerDuration: 2.0,
	}

	Obstacle = ObstacleConfig{
		MoveDistance:       3.0,
		MoveSpeed:          2.0,
		ElectricOnSeconds:  1.5,
		ElectricOffSeconds: 1.5,
	}

	Camera = CameraConfig{
		FollowSmoothing:    0.15,
		LookAheadDistanceX: 24,
	}

	Logging = LoggingConfig{
		Level: "info",
	}

	Debug = DebugConfig{
		ShowHUD: true,
	}

	Input = defaultInput()
	Sound = defaultSound()
}
