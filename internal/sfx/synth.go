// Package sfx synthesises the short procedural cues played on simulation
// events. Output is interleaved stereo float32 little-endian PCM.
package sfx

import "math"

const (
	SampleRate    = 44100
	ChannelCount  = 2
	BytesPerFrame = ChannelCount * 4
)

// Cue identifies a sound effect.
type Cue int

const (
	CueSpawn Cue = iota
	CueRejected
	CueClear
	CueToggle
)

// Generate renders c. For CueSpawn, param is the ball radius and smaller
// balls sound higher; for CueClear it is the number of balls removed and
// more balls make a longer sweep. Other cues ignore it.
func Generate(c Cue, param float64) []byte {
	switch c {
	case CueSpawn:
		return genSpawn(param)
	case CueRejected:
		return genRejected()
	case CueClear:
		return genClear(param)
	case CueToggle:
		return genToggle()
	}
	return nil
}

// Duration returns the length of a rendered cue.
func Duration(buf []byte) float64 {
	return float64(len(buf)/BytesPerFrame) / SampleRate
}

// genSpawn: round FM blip, pitch falls with radius like a bubble.
func genSpawn(radius float64) []byte {
	radius = clampF(radius, 0, 0.5)
	n := int(0.12 * SampleRate)
	buf := makeBuf(n)
	base := 900 - 1100*radius
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.45, 0.0, 0.1)
		freq := base * (1 + 0.6*p)
		s := fm(t, freq, 1.5, 2.2*env) * env * 0.45
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genRejected: short low double buzz.
func genRejected() []byte {
	n := int(0.16 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		gate := 1.0
		if p > 0.45 && p < 0.55 {
			gate = 0
		}
		env := adsr(p, 0.02, 0.3, 0.6, 0.15) * gate
		s := fm(t, 110, 2.0, 1.5) * env * 0.35
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genClear: descending sweep with a soft noise tail.
func genClear(removed float64) []byte {
	dur := 0.18 + 0.004*clampF(removed, 0, 100)
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0xC1EA5)
	lp := 0.0
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.2, 0.5, 0.4)
		freq := 660 * math.Pow(0.25, p)
		phase += 2 * math.Pi * freq / SampleRate
		lp = lp*0.9 + lcg(&seed)*0.1
		s := (math.Sin(phase)*0.4 + lp*0.25) * env
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genToggle: crisp click + brief high tone.
func genToggle() []byte {
	n := SampleRate * 50 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.3
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	o := i * BytesPerFrame
	for ch := 0; ch < ChannelCount; ch++ {
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
		o += 4
	}
}

// softSat applies gentle tanh-like saturation; no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
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

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*BytesPerFrame) }

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
