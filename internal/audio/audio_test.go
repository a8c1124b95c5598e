package audio

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/vovakirdan/roadhunter/internal/core"
)

func TestGeneratedSoundsAreValidPCM(t *testing.T) {
	for kind := SoundShot; kind < soundCount; kind++ {
		buf := generate(kind)
		if len(buf) == 0 {
			t.Errorf("sound %d is empty", kind)
			continue
		}
		if len(buf)%frameBytes != 0 {
			t.Errorf("sound %d has a partial frame", kind)
		}
		for i := 0; i+4 <= len(buf); i += 4 {
			v := math.Float32frombits(binary.LittleEndian.Uint32(buf[i:]))
			if math.IsNaN(float64(v)) || v < -1 || v > 1 {
				t.Fatalf("sound %d sample %d out of range: %v", kind, i/4, v)
			}
		}
	}
}

func TestSoundReaderDrains(t *testing.T) {
	r := &soundReader{data: []byte{1, 2, 3, 4, 5}}
	got, err := io.ReadAll(r)
	if err != nil || len(got) != 5 {
		t.Errorf("ReadAll = %v, %v", got, err)
	}
}

func TestMusicReaderFillsBuffer(t *testing.T) {
	m := &musicReader{seed: 1}
	buf := make([]byte, 4096*frameBytes+3)
	n, err := m.Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4096*frameBytes {
		t.Errorf("Read = %d bytes, want whole frames only", n)
	}
	if m.t <= 0 {
		t.Error("music clock should advance")
	}
}

func TestSoundForEvents(t *testing.T) {
	tests := []struct {
		event core.EventKind
		want  SoundKind
	}{
		{core.EventShot, SoundShot},
		{core.EventExplosion, SoundExplosion},
		{core.EventPlayerHit, SoundHit},
		{core.EventPowerUp, SoundPowerUp},
		{core.EventGameOver, SoundGameOver},
	}
	for _, tt := range tests {
		got, ok := SoundFor(tt.event)
		if !ok || got != tt.want {
			t.Errorf("SoundFor(%v) = %v, %v", tt.event, got, ok)
		}
	}
	if _, ok := SoundFor(core.EventKind(99)); ok {
		t.Error("unknown event should have no sound")
	}
}

func TestNilEngineIsSilent(t *testing.T) {
	var e *Engine
	e.Play(SoundShot)
	e.HandleEvents([]core.Event{{Kind: core.EventShot}})
	e.StartMusic()
	e.StopMusic()
	if e.MusicPlaying() {
		t.Error("nil engine should never report music")
	}
}
