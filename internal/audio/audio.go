// Package audio plays synthesized music and sound effects through oto.
// Playback failures are never surfaced to the player: a nil or
// unavailable Engine silently does nothing.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"

	"github.com/vovakirdan/roadhunter/internal/core"
)

const (
	musicVolume = 0.25
	sfxVolume   = 0.5

	// maxVoices limits simultaneous effects to avoid clipping.
	maxVoices = 4
)

// oto allows one context per process.
var (
	ctxOnce  sync.Once
	otoCtx   *oto.Context
	otoReady chan struct{}
	otoErr   error
)

func sharedContext() (*oto.Context, chan struct{}, error) {
	ctxOnce.Do(func() {
		otoCtx, otoReady, otoErr = oto.NewContext(SampleRate, ChannelCount, Format)
	})
	return otoCtx, otoReady, otoErr
}

// Engine owns the music player and fires sound effects.
type Engine struct {
	ctx    *oto.Context
	ready  chan struct{}
	logger *log.Logger

	mu     sync.Mutex
	music  oto.Player
	voices int
	sounds map[SoundKind][]byte
}

// New opens the audio device. The returned error is informational:
// callers log it and continue with a nil Engine.
func New(logger *log.Logger) (*Engine, error) {
	ctx, ready, err := sharedContext()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{ctx: ctx, ready: ready, logger: logger, sounds: make(map[SoundKind][]byte)}, nil
}

func (e *Engine) isReady() bool {
	if e == nil || e.ctx == nil {
		return false
	}
	select {
	case <-e.ready:
		return true
	default:
		return false
	}
}

// Play fires a sound effect without blocking.
func (e *Engine) Play(kind SoundKind) {
	if !e.isReady() {
		return
	}

	e.mu.Lock()
	if e.voices >= maxVoices {
		e.mu.Unlock()
		return
	}
	e.voices++
	data, ok := e.sounds[kind]
	if !ok {
		data = generate(kind)
		e.sounds[kind] = data
	}
	e.mu.Unlock()

	go func() {
		defer func() {
			e.mu.Lock()
			e.voices--
			e.mu.Unlock()
		}()
		player := e.ctx.NewPlayer(&soundReader{data: data})
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			e.logger.Debug("sound close failed", "err", err)
		}
	}()
}

// HandleEvents plays the effects for a step's events.
func (e *Engine) HandleEvents(events []core.Event) {
	for _, ev := range events {
		if kind, ok := SoundFor(ev.Kind); ok {
			e.Play(kind)
		}
	}
}

// SoundFor maps a game event to its sound effect.
func SoundFor(kind core.EventKind) (SoundKind, bool) {
	switch kind {
	case core.EventGameStart:
		return SoundStart, true
	case core.EventShot:
		return SoundShot, true
	case core.EventExplosion:
		return SoundExplosion, true
	case core.EventPlayerHit:
		return SoundHit, true
	case core.EventPowerUp:
		return SoundPowerUp, true
	case core.EventPowerUpExpired:
		return SoundPowerDown, true
	case core.EventGameOver:
		return SoundGameOver, true
	default:
		return 0, false
	}
}

// StartMusic begins the background loop from the top. Safe to call repeatedly.
func (e *Engine) StartMusic() {
	if !e.isReady() {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.music != nil {
		e.closeMusic()
	}
	player := e.ctx.NewPlayer(&musicReader{seed: uint64(time.Now().UnixNano())})
	player.SetVolume(musicVolume)
	player.Play()
	e.music = player
}

// StopMusic stops and rewinds the background loop.
func (e *Engine) StopMusic() {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.music != nil {
		e.closeMusic()
	}
}

// MusicPlaying reports whether the background loop is running.
func (e *Engine) MusicPlaying() bool {
	if e == nil {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.music != nil && e.music.IsPlaying()
}

func (e *Engine) closeMusic() {
	if err := e.music.Close(); err != nil {
		e.logger.Debug("music close failed", "err", err)
	}
	e.music = nil
}
