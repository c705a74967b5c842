package game

import "github.com/vovakirdan/dodge/internal/config"

// Settings are the process-wide player choices made on the title and
// options screens. A Run copies them when it starts.
type Settings struct {
	Music     bool
	Sound     bool
	Hard      bool
	ArrowKeys bool
	Skin      int     // 1..SkinCount
	Speed     float64 // baseline scroll speed for the next run
}

// DefaultSettings returns the settings a fresh process starts with.
func DefaultSettings(d config.DifficultyConfig) Settings {
	return Settings{
		Music: true,
		Sound: true,
		Skin:  1,
		Speed: d.Normal.BaseSpeed,
	}
}

// Mode returns the selected difficulty.
func (s Settings) Mode() config.Mode {
	return config.ModeFor(s.Hard)
}

// CycleSkin moves the skin selection by delta, wrapping within 1..n.
func (s *Settings) CycleSkin(delta, n int) {
	if n <= 0 {
		return
	}
	s.Skin = ((s.Skin-1+delta)%n+n)%n + 1
}

// ToggleDifficulty flips hard mode and resets the baseline speed to the
// new mode's starting speed.
func (s *Settings) ToggleDifficulty(d config.DifficultyConfig) {
	s.Hard = !s.Hard
	s.Speed = d.Params(s.Mode()).BaseSpeed
}

// Controls returns the key bindings of the selected control scheme.
func (s Settings) Controls() Controls {
	return ControlsFor(s.ArrowKeys)
}
