package config

import "fmt"

// Mode is the difficulty selected in the options screen.
type Mode int

const (
	ModeNormal Mode = iota
	ModeHard
)

// ModeFor maps the hard-difficulty flag to a Mode.
func ModeFor(hard bool) Mode {
	if hard {
		return ModeHard
	}
	return ModeNormal
}

// String returns the label shown in the options screen.
func (m Mode) String() string {
	if m == ModeHard {
		return "HARD"
	}
	return "EASY"
}

// ModeConfig holds the progression curve of one difficulty.
type ModeConfig struct {
	PointsPerTick int     `yaml:"points_per_tick" toml:"points_per_tick"`
	SpeedStep     float64 `yaml:"speed_step" toml:"speed_step"` // added to scroll speed per level
	BaseSpeed     float64 `yaml:"base_speed" toml:"base_speed"` // scroll speed at run start
}

// DifficultyConfig holds both progression curves.
type DifficultyConfig struct {
	Normal ModeConfig `yaml:"normal" toml:"normal"`
	Hard   ModeConfig `yaml:"hard" toml:"hard"`
}

// Params returns the curve for a mode.
func (d DifficultyConfig) Params(m Mode) ModeConfig {
	if m == ModeHard {
		return d.Hard
	}
	return d.Normal
}

func (d DifficultyConfig) validate() error {
	for _, m := range []Mode{ModeNormal, ModeHard} {
		p := d.Params(m)
		if p.PointsPerTick <= 0 {
			return fmt.Errorf("%w: %s points_per_tick must be positive", ErrInvalidTuning, m)
		}
		if p.SpeedStep < 0 || p.BaseSpeed < 0 {
			return fmt.Errorf("%w: %s speeds must not be negative", ErrInvalidTuning, m)
		}
	}
	return nil
}
