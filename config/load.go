package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// document mirrors the YAML layout of a tuning file. Sections that are
// missing from the file keep their current values.
type document struct {
	Window    Config          `yaml:"window"`
	Player    PlayerConfig    `yaml:"player"`
	Knockback KnockbackConfig `yaml:"knockback"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Obstacle  ObstacleConfig  `yaml:"obstacle"`
	Camera    CameraConfig    `yaml:"camera"`
	Input     InputConfig     `yaml:"input"`
	Sound     SoundConfig     `yaml:"sound"`
	Logging   LoggingConfig   `yaml:"logging"`
	Debug     DebugConfig     `yaml:"debug"`
}

func current() document {
	return document{
		Window:    *C,
		Player:    Player,
		Knockback: Knockback,
		Physics:   Physics,
		Obstacle:  Obstacle,
		Camera:    Camera,
		Input:     Input,
		Sound:     Sound,
		Logging:   Logging,
		Debug:     Debug,
	}
}

// LoadFile applies a YAML tuning file on top of the current globals.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("loading config from %s: %w", path, err)
	}
	return nil
}

// Apply decodes YAML over the current globals. Nothing changes unless the
// merged result validates.
func Apply(data []byte) error {
	doc := current()
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if err := doc.validate(); err != nil {
		return err
	}

	window := doc.Window
	C = &window
	Player = doc.Player
	Knockback = doc.Knockback
	Physics = doc.Physics
	Obstacle = doc.Obstacle
	Camera = doc.Camera
	Input = doc.Input
	Sound = doc.Sound
	Logging = doc.Logging
	Debug = doc.Debug
	return nil
}

// Validate checks the current globals.
func Validate() error {
	return current().validate()
}

func (d document) validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(d.Player.MovementSpeed > 0, "player.movementSpeed must be positive, got %v", d.Player.MovementSpeed)
	check(d.Player.JumpForce >= 0, "player.jumpForce must not be negative, got %v", d.Player.JumpForce)
	check(d.Player.ClimbJumpForce >= 0, "player.climbJumpForce must not be negative, got %v", d.Player.ClimbJumpForce)
	check(d.Player.MaxFallSpeed < 0, "player.maxFallSpeed must be negative, got %v", d.Player.MaxFallSpeed)
	check(d.Player.GravityScale > 0, "player.gravityScale must be positive, got %v", d.Player.GravityScale)
	check(d.Player.Mass > 0, "player.mass must be positive, got %v", d.Player.Mass)
	check(d.Player.GroundCheckRadius >= 0, "player.groundCheckRadius must not be negative, got %v", d.Player.GroundCheckRadius)
	check(d.Player.ClimbSnapTolerance > 0, "player.climbSnapTolerance must be positive, got %v", d.Player.ClimbSnapTolerance)
	check(d.Player.CollisionWidth > 0 && d.Player.CollisionHeight > 0, "player collision size must be positive")

	check(d.Knockback.Duration > 0, "knockback.duration must be positive, got %v", d.Knockback.Duration)
	check(d.Knockback.FlickerInterval > 0, "knockback.flickerInterval must be positive, got %v", d.Knockback.FlickerInterval)
	check(d.Knockback.FlickerDuration >= 0, "knockback.flickerDuration must not be negative, got %v", d.Knockback.FlickerDuration)

	check(d.Physics.FixedStep > 0, "physics.fixedStep must be positive, got %v", d.Physics.FixedStep)
	check(d.Physics.MaxStepsPerFrame > 0, "physics.maxStepsPerFrame must be positive, got %v", d.Physics.MaxStepsPerFrame)
	check(d.Physics.PixelsPerUnit > 0, "physics.pixelsPerUnit must be positive, got %v", d.Physics.PixelsPerUnit)
	check(d.Physics.CellSize > 0, "physics.cellSize must be positive, got %v", d.Physics.CellSize)
	check(d.Physics.Backend == BackendResolv || d.Physics.Backend == BackendChipmunk,
		"physics.backend must be %q or %q, got %q", BackendResolv, BackendChipmunk, d.Physics.Backend)

	check(d.Sound.SampleRate > 0, "sound.sampleRate must be positive, got %v", d.Sound.SampleRate)
	check(d.Sound.SFXVolume >= 0 && d.Sound.SFXVolume <= 1, "sound.sfxVolume must be within [0, 1], got %v", d.Sound.SFXVolume)

	check(d.Obstacle.MoveSpeed > 0, "obstacle.moveSpeed must be positive, got %v", d.Obstacle.MoveSpeed)
	check(d.Camera.FollowSmoothing > 0 && d.Camera.FollowSmoothing <= 1, "camera.followSmoothing must be within (0, 1], got %v", d.Camera.FollowSmoothing)
	check(d.Window.Width > 0 && d.Window.Height > 0, "window size must be positive")
	check(d.Window.TPS > 0, "window.tps must be positive, got %v", d.Window.TPS)

	return errors.Join(errs...)
}
