package audio

import (
	"io"
	"math"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	Format       = 0 // 32-bit float (oto.FormatFloat32LE)
	frameBytes   = 8 // Two float32 channels
)

// SoundKind identifies a sound effect.
type SoundKind int

const (
	SoundShot SoundKind = iota
	SoundExplosion
	SoundHit
	SoundPowerUp
	SoundPowerDown
	SoundStart
	SoundGameOver
	soundCount
)

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

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for c := 0; c < 2; c++ {
		o := i*frameBytes + c*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat applies gentle saturation instead of hard clipping.
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

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances a seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(seconds float64) ([]byte, int) {
	n := int(seconds * SampleRate)
	return make([]byte, n*frameBytes), n
}

// generate renders a sound effect to PCM.
func generate(kind SoundKind) []byte {
	switch kind {
	case SoundShot:
		return genShot()
	case SoundExplosion:
		return genExplosion()
	case SoundHit:
		return genHit()
	case SoundPowerUp:
		return genArpeggio([]float64{523.25, 659.25, 783.99, 1046.5})
	case SoundPowerDown:
		return genArpeggio([]float64{783.99, 659.25, 523.25})
	case SoundStart:
		return genArpeggio([]float64{392.0, 523.25, 783.99})
	case SoundGameOver:
		return genGameOver()
	}
	return nil
}

// genShot: short laser zap sweeping down.
func genShot() []byte {
	buf, n := makeBuf(0.08)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.3, 0.3, 0.4)
		freq := 1800 - 1300*p
		putStereoF32(buf, i, softSat(fm(t, freq, 1.5, 2.0*env)*env*0.4))
	}
	return buf
}

// genExplosion: noise burst over a falling sub boom.
func genExplosion() []byte {
	buf, n := makeBuf(0.45)
	seed := uint64(0x9E3779B97F4A7C15)
	lp := 0.0
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		freq := 140 * math.Pow(30.0/140.0, p)
		phase += 2 * math.Pi * freq / SampleRate
		sub := math.Sin(phase) * math.Exp(-p*5) * 0.6
		lp = lp*0.8 + lcg(&seed)*0.2
		noise := lp * math.Exp(-p*6) * 0.7
		putStereoF32(buf, i, softSat((sub+noise)*0.85))
	}
	return buf
}

// genHit: low thud with a square edge.
func genHit() []byte {
	buf, n := makeBuf(0.18)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 8)
		s := math.Tanh(math.Sin(2*math.Pi*(180-100*p)*t)*3) * env * 0.45
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genArpeggio: quick FM bell notes in sequence.
func genArpeggio(freqs []float64) []byte {
	noteLen := SampleRate * 70 / 1000
	tail := SampleRate * 150 / 1000
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)
	for fi, freq := range freqs {
		start := fi * noteLen
		dur := total - start
		for i := 0; i < dur; i++ {
			t := float64(i) / SampleRate
			env := math.Exp(-float64(i) / float64(dur) * 6)
			mix[start+i] += fm(t, freq, 2.0, 2.5*env) * env * 0.3
		}
	}
	buf := make([]byte, total*frameBytes)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOver: slow descending tone.
func genGameOver() []byte {
	buf, n := makeBuf(1.1)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.2, 0.6, 0.4)
		freq := 440 * math.Pow(0.5, p*1.5)
		s := (fm(t, freq, 0.5, 1.2*env)*0.5 + math.Sin(2*math.Pi*freq*0.5*t)*0.2) * env
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
