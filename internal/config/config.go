// Package config provides the tuning table for the game: world geometry,
// physics constants, spawner bands, the scoring curve and frame timing.
// Defaults are compiled in; a YAML or TOML file may override any subset.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Tuning contains every gameplay constant.
// The values are calibrated for a fixed 60 ticks per second step.
type Tuning struct {
	World      World            `yaml:"world" toml:"world"`
	Physics    Physics          `yaml:"physics" toml:"physics"`
	Player     Player           `yaml:"player" toml:"player"`
	Spawner    Spawner          `yaml:"spawner" toml:"spawner"`
	Scoring    Scoring          `yaml:"scoring" toml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Timing     Timing           `yaml:"timing" toml:"timing"`
	Input      Input            `yaml:"input" toml:"input"`
}

// World defines the logical playfield in world units.
type World struct {
	Width     float64 `yaml:"width" toml:"width"`
	Height    float64 `yaml:"height" toml:"height"`
	Floor     float64 `yaml:"floor" toml:"floor"`           // y of the floor line
	TileWidth float64 `yaml:"tile_width" toml:"tile_width"` // floor scroll wraps after one tile
}

// Physics defines player kinematics.
type Physics struct {
	Gravity     float64 `yaml:"gravity" toml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse" toml:"jump_impulse"`
	MoveSpeed   float64 `yaml:"move_speed" toml:"move_speed"`
	// MaxFallSpeed caps vertical velocity when positive; 0 leaves it unbounded.
	MaxFallSpeed float64 `yaml:"max_fall_speed" toml:"max_fall_speed"`
}

// Player defines where a run starts.
type Player struct {
	StartX float64 `yaml:"start_x" toml:"start_x"` // x of the sprite center
}

// Spawner defines obstacle placement.
type Spawner struct {
	Categories  int     `yaml:"categories" toml:"categories"`
	Elevated    []int   `yaml:"elevated" toml:"elevated"`
	ElevatedMin float64 `yaml:"elevated_min" toml:"elevated_min"` // inclusive
	ElevatedMax float64 `yaml:"elevated_max" toml:"elevated_max"` // exclusive
}

// Scoring defines the level thresholds.
type Scoring struct {
	LevelEvery  int `yaml:"level_every" toml:"level_every"`
	Backgrounds int `yaml:"backgrounds" toml:"backgrounds"`
}

// Timing defines frame pacing.
type Timing struct {
	TickRate int           `yaml:"tick_rate" toml:"tick_rate"`
	HitDelay time.Duration `yaml:"hit_delay" toml:"hit_delay"`
}

// HitDelayTicks converts the hit pause into whole ticks.
func (t Timing) HitDelayTicks() int {
	if t.TickRate <= 0 {
		return 0
	}
	return int(t.HitDelay * time.Duration(t.TickRate) / time.Second)
}

// Input defines terminal input emulation.
type Input struct {
	// HoldTicks is how long a key counts as held after its last press
	// on terminals that report no key release.
	HoldTicks int `yaml:"hold_ticks" toml:"hold_ticks"`
}

// ErrInvalidTuning is returned when a tuning table fails validation.
var ErrInvalidTuning = errors.New("config: invalid tuning")

// Validate checks the tuning for values the game loop cannot run with.
func (t Tuning) Validate() error {
	switch {
	case t.World.Width <= 0 || t.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalidTuning)
	case t.World.Floor <= 0 || t.World.Floor > t.World.Height:
		return fmt.Errorf("%w: floor %.0f outside world height %.0f", ErrInvalidTuning, t.World.Floor, t.World.Height)
	case t.World.TileWidth <= 0:
		return fmt.Errorf("%w: tile_width must be positive", ErrInvalidTuning)
	case t.Physics.MoveSpeed < 0:
		return fmt.Errorf("%w: move_speed must not be negative", ErrInvalidTuning)
	case t.Spawner.Categories <= 0:
		return fmt.Errorf("%w: spawner needs at least one category", ErrInvalidTuning)
	case t.Spawner.ElevatedMax <= t.Spawner.ElevatedMin:
		return fmt.Errorf("%w: elevated band [%.0f, %.0f) is empty", ErrInvalidTuning, t.Spawner.ElevatedMin, t.Spawner.ElevatedMax)
	case t.Scoring.LevelEvery <= 0:
		return fmt.Errorf("%w: level_every must be positive", ErrInvalidTuning)
	case t.Scoring.Backgrounds <= 0:
		return fmt.Errorf("%w: backgrounds must be positive", ErrInvalidTuning)
	case t.Timing.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive", ErrInvalidTuning)
	}
	for _, c := range t.Spawner.Elevated {
		if c < 1 || c > t.Spawner.Categories {
			return fmt.Errorf("%w: elevated category %d out of range", ErrInvalidTuning, c)
		}
	}
	return t.Difficulty.validate()
}

// IsElevated reports whether obstacles of the category fly above the floor.
func (s Spawner) IsElevated(category int) bool {
	for _, c := range s.Elevated {
		if c == category {
			return true
		}
	}
	return false
}
