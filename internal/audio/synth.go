package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

const (
	sfxVolume   = 0.55
	musicVolume = 0.12
)

// Synth plays procedurally generated audio on the default output device.
type Synth struct {
	ctx   *oto.Context
	ready chan struct{}
	log   *log.Logger

	mu      sync.Mutex
	music   oto.Player
	paused  bool
	effects map[Effect][]byte
}

// NewSynth opens the audio device. oto allows one context per process,
// so callers create a single Synth and share it.
func NewSynth(logger *log.Logger) (*Synth, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = log.Default()
	}

	effects := make(map[Effect][]byte, 4)
	for _, e := range []Effect{EffectJump, EffectClick, EffectHit, EffectGameOver} {
		effects[e] = generate(e)
	}

	return &Synth{
		ctx:     ctx,
		ready:   ready,
		log:     logger,
		effects: effects,
	}, nil
}

func (s *Synth) isReady() bool {
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

// Play starts an effect on its own player and returns immediately.
func (s *Synth) Play(e Effect) {
	if !s.isReady() {
		return
	}
	samples := s.effects[e]
	if len(samples) == 0 {
		return
	}
	go func() {
		player := s.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			s.log.Debug("closing effect player", "effect", e, "error", err)
		}
	}()
}

// StartMusic starts the background loop from the beginning.
func (s *Synth) StartMusic() {
	if !s.isReady() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closeMusic()
	player := s.ctx.NewPlayer(newMusicReader())
	player.SetVolume(musicVolume)
	player.Play()
	s.music = player
	s.paused = false
}

// PauseMusic pauses the loop, keeping its position.
func (s *Synth) PauseMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.music != nil {
		s.music.Pause()
		s.paused = true
	}
}

// ResumeMusic continues a paused loop, or starts one if none exists.
func (s *Synth) ResumeMusic() {
	s.mu.Lock()
	if s.music == nil {
		s.mu.Unlock()
		s.StartMusic()
		return
	}
	defer s.mu.Unlock()
	s.music.Play()
	s.paused = false
}

// StopMusic discards the loop.
func (s *Synth) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeMusic()
}

// MusicPlaying reports whether the loop is audible.
func (s *Synth) MusicPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.music != nil && !s.paused && s.music.IsPlaying()
}

func (s *Synth) closeMusic() {
	if s.music == nil {
		return
	}
	if err := s.music.Close(); err != nil {
		s.log.Debug("closing music player", "error", err)
	}
	s.music = nil
	s.paused = false
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
