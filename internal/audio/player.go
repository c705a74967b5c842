// Package audio plays the game's sound effects and background music.
// Everything is synthesized at runtime; there are no sample files.
package audio

// Effect identifies a one-shot sound effect.
type Effect int

const (
	EffectJump Effect = iota
	EffectClick
	EffectHit
	EffectGameOver
)

func (e Effect) String() string {
	switch e {
	case EffectJump:
		return "jump"
	case EffectClick:
		return "click"
	case EffectHit:
		return "hit"
	case EffectGameOver:
		return "game over"
	}
	return "unknown"
}

// Player is the audio surface the menus and game loop use.
// Calls never block on playback.
type Player interface {
	Play(e Effect)
	StartMusic()
	PauseMusic()
	ResumeMusic()
	StopMusic()
	MusicPlaying() bool
}

// Nop is a silent Player, used for SSH sessions and when no audio device
// is available.
type Nop struct{}

func (Nop) Play(Effect)        {}
func (Nop) StartMusic()        {}
func (Nop) PauseMusic()        {}
func (Nop) ResumeMusic()       {}
func (Nop) StopMusic()         {}
func (Nop) MusicPlaying() bool { return false }

var (
	_ Player = Nop{}
	_ Player = (*Synth)(nil)
)
