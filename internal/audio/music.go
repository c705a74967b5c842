package audio

import (
	"math"
	"time"
)

// musicReader is an endless chiptune loop: four-chord progression with
// kick/snare, hats, bass and a square arpeggio.
type musicReader struct {
	t    float64
	seed uint64
}

var progression = [][]float64{
	{261.6, 329.6, 392.0}, // C
	{220.0, 261.6, 329.6}, // Am
	{174.6, 220.0, 261.6}, // F
	{196.0, 246.9, 293.7}, // G
}

const (
	musicTempo    = 2.3 // beats per second
	beatsPerChord = 4
)

func newMusicReader() *musicReader {
	return &musicReader{seed: uint64(time.Now().UnixNano())}
}

func (m *musicReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	for i := 0; i < samples; i++ {
		putStereoF32(p, i, softSat(m.next()))
	}
	return samples * 8, nil
}

func (m *musicReader) next() float64 {
	beatF := m.t * musicTempo
	beat := int(beatF)
	beatPos := beatF - float64(beat)
	trig := beatPos / musicTempo
	chord := progression[(beat/beatsPerChord)%len(progression)]

	var s float64
	if beat%2 == 0 {
		s += kick(trig) * 0.8
	} else {
		s += snare(trig, &m.seed) * 0.6
	}

	hhTrig := math.Mod(m.t*musicTempo*2, 1.0) / (musicTempo * 2)
	if hhTrig < 0.05 {
		s += lcg(&m.seed) * math.Exp(-hhTrig*45) * 0.06
	}

	bassEnv := math.Exp(-trig * 8)
	s += math.Sin(2*math.Pi*chord[0]/2*m.t) * bassEnv * 0.35

	step := int(m.t*musicTempo*4) % len(chord)
	arpEnv := adsr(math.Mod(m.t*musicTempo*4, 1.0), 0.01, 0.3, 0.2, 0.2)
	freq := chord[step] * 2
	sq := 1.0
	if math.Sin(2*math.Pi*freq*m.t) < 0 {
		sq = -1.0
	}
	s += sq * arpEnv * 0.12

	m.t += 1.0 / SampleRate
	return s
}

func kick(trig float64) float64 {
	if trig > 0.25 {
		return 0
	}
	phase := 2 * math.Pi * 185 / 12.5 * (1 - math.Exp(-trig*12.5))
	return softSat(math.Sin(phase) * math.Exp(-trig*18.0) * 0.8)
}

func snare(trig float64, seed *uint64) float64 {
	if trig > 0.2 {
		return 0
	}
	env := math.Exp(-trig * 26.0)
	body := math.Sin(2*math.Pi*188*trig) * 0.24 * env
	return softSat(body + lcg(seed)*env*0.5)
}
