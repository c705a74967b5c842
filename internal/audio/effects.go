package audio

import "math"

func generate(e Effect) []byte {
	switch e {
	case EffectJump:
		return genJump()
	case EffectClick:
		return genClick()
	case EffectHit:
		return genHit()
	case EffectGameOver:
		return genGameOver()
	}
	return nil
}

// genJump: short rising square chirp.
func genJump() []byte {
	n := int(0.14 * SampleRate)
	buf := makeBuf(n)
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		freq := 320 + 520*p*p
		phase += 2 * math.Pi * freq / SampleRate
		env := adsr(p, 0.02, 0.4, 0.35, 0.3)
		s := math.Tanh(math.Sin(phase)*2.5) * env * 0.35
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genClick: bright FM blip.
func genClick() []byte {
	n := SampleRate * 60 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.38
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genHit: falling FM thud with a noise crack.
func genHit() []byte {
	n := int(0.3 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0x9e3779b97f4a7c15)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.15, 0.3)
		freq := 260 - 180*p
		s := fm(t, freq, 1.5, 3.0*(1-p)) * env * 0.5
		s += lcg(&seed) * math.Exp(-t*40) * 0.3
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOver: slow descending minor triad.
func genGameOver() []byte {
	n := int(0.9 * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.18}, // C4
		{220.00, 0.36}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			mix[i] += fm(t, freq, 2.0, 2.0*env) * env * 0.3
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for c := 0; c < ChannelCount; c++ {
		o := i*8 + c*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat is a gentle saturator that keeps samples inside [-1, 1].
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances seed and returns noise in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*8) }
