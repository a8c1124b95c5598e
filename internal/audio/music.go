package audio

import "math"

// musicReader synthesizes an endless driving loop on demand.
type musicReader struct {
	t        float64
	seed     uint64
	measure  int
	chordIdx int
	lp       float64 // lowpass state for the hi-hat noise
}

// Am F C G, one chord per measure.
var musicChords = [][]float64{
	{220.0, 261.6, 329.6},
	{174.6, 220.0, 261.6},
	{261.6, 329.6, 392.0},
	{196.0, 246.9, 293.7},
}

const (
	musicTempo = 2.2 // Beats per second
	beatsPer   = 4   // Beats per measure
)

func (m *musicReader) Read(p []byte) (int, error) {
	samples := len(p) / frameBytes
	if samples == 0 {
		return 0, nil
	}

	beatLen := 1.0 / musicTempo
	for i := 0; i < samples; i++ {
		m.t += 1.0 / SampleRate

		trig := math.Mod(m.t, beatLen)
		beat := int(m.t * musicTempo)
		if beat/beatsPer != m.measure {
			m.measure = beat / beatsPer
			m.chordIdx = (m.chordIdx + 1) % len(musicChords)
		}
		chord := musicChords[m.chordIdx]

		// Kick on every beat.
		s := 0.0
		if trig < 0.2 {
			phase := 2 * math.Pi * 150 / 12 * (1 - math.Exp(-trig*12))
			s += math.Sin(phase) * math.Exp(-trig*18) * 0.55
		}

		// Off-beat hi-hat.
		half := math.Mod(m.t+beatLen/2, beatLen)
		if half < 0.05 {
			m.lp = m.lp*0.3 + lcg(&m.seed)*0.7
			s += m.lp * math.Exp(-half*45) * 0.08
		}

		// Eighth-note bass on the chord root.
		eighth := math.Mod(m.t, beatLen/2) / (beatLen / 2)
		bassEnv := math.Exp(-eighth * 3)
		root := chord[0] / 2
		s += math.Tanh(math.Sin(2*math.Pi*root*m.t)*2.5) * bassEnv * 0.22

		// Sixteenth-note arpeggio across the chord.
		step := int(m.t*musicTempo*4) % len(chord)
		sixteenth := math.Mod(m.t*musicTempo*4, 1)
		arpEnv := math.Exp(-sixteenth * 5)
		s += fm(m.t, chord[step]*2, 2.0, 1.8*arpEnv) * arpEnv * 0.08

		putStereoF32(p, i, softSat(s))
	}
	return samples * frameBytes, nil
}
