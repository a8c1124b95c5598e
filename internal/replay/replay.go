// Package replay records the per-tick input of a run so it can be
// re-simulated later. A seed, a config and the input stream fully
// determine a run, so nothing else needs to be stored.
package replay

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/vovakirdan/roadhunter/internal/config"
	"github.com/vovakirdan/roadhunter/internal/core"
	"github.com/vovakirdan/roadhunter/internal/registry"
	"github.com/vovakirdan/roadhunter/internal/storage"
)

// formatVersion prefixes every encoded stream.
const formatVersion byte = 1

// ErrCorrupt is returned when an encoded input stream cannot be decoded.
var ErrCorrupt = errors.New("replay: corrupt input stream")

// Recorder collects one input mask per simulated tick.
type Recorder struct {
	masks []uint32
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{masks: make([]uint32, 0, 4096)}
}

// Record appends the input for one tick.
func (r *Recorder) Record(in core.InputFrame) {
	r.masks = append(r.masks, in.Mask())
}

// Len returns the number of recorded ticks.
func (r *Recorder) Len() int {
	return len(r.masks)
}

// Masks returns the recorded masks. The slice must not be modified.
func (r *Recorder) Masks() []uint32 {
	return r.masks
}

// Encode returns the run-length encoded input stream.
func (r *Recorder) Encode() []byte {
	return Encode(r.masks)
}

// Encode packs masks as (run length, mask) uvarint pairs after a version byte.
// Input is mostly idle or a held key, so runs compress well.
func Encode(masks []uint32) []byte {
	out := []byte{formatVersion}
	for i := 0; i < len(masks); {
		j := i + 1
		for j < len(masks) && masks[j] == masks[i] {
			j++
		}
		out = binary.AppendUvarint(out, uint64(j-i))
		out = binary.AppendUvarint(out, uint64(masks[i]))
		i = j
	}
	return out
}

// Decode is the inverse of Encode.
func Decode(data []byte) ([]uint32, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrCorrupt)
	}
	if data[0] != formatVersion {
		return nil, fmt.Errorf("%w: unknown version %d", ErrCorrupt, data[0])
	}

	var masks []uint32
	rest := data[1:]
	for len(rest) > 0 {
		run, n := binary.Uvarint(rest)
		if n <= 0 || run == 0 {
			return nil, fmt.Errorf("%w: bad run length", ErrCorrupt)
		}
		rest = rest[n:]

		mask, n := binary.Uvarint(rest)
		if n <= 0 || mask > 0xFFFFFFFF {
			return nil, fmt.Errorf("%w: bad mask", ErrCorrupt)
		}
		rest = rest[n:]

		if uint64(len(masks))+run > maxTicks {
			return nil, fmt.Errorf("%w: stream too long", ErrCorrupt)
		}
		for range run {
			masks = append(masks, uint32(mask))
		}
	}
	return masks, nil
}

// maxTicks caps decoded streams at ten hours of play at 60 ticks per second.
const maxTicks = 10 * 60 * 60 * 60

// Player feeds recorded input back one tick at a time.
type Player struct {
	masks []uint32
	pos   int
}

// NewPlayer creates a playback feeder over masks.
func NewPlayer(masks []uint32) *Player {
	return &Player{masks: masks}
}

// Next returns the input for the next tick, or false when the stream is exhausted.
func (p *Player) Next() (core.InputFrame, bool) {
	if p.pos >= len(p.masks) {
		return core.NewInputFrame(), false
	}
	in := core.FrameFromMask(p.masks[p.pos])
	p.pos++
	return in, true
}

// Done reports whether all input has been fed.
func (p *Player) Done() bool {
	return p.pos >= len(p.masks)
}

// Progress returns the fraction of the stream consumed.
func (p *Player) Progress() float64 {
	if len(p.masks) == 0 {
		return 1
	}
	return float64(p.pos) / float64(len(p.masks))
}

// Position returns the number of ticks fed so far.
func (p *Player) Position() int {
	return p.pos
}

// Simulate resets g with rt and steps it through the whole stream without rendering.
// Returns the final state.
func Simulate(g registry.Game, rt core.RuntimeConfig, masks []uint32) core.GameState {
	g.Reset(rt)
	p := NewPlayer(masks)
	state := g.State()
	for {
		in, ok := p.Next()
		if !ok {
			return state
		}
		state = g.Step(in).State
	}
}

// Configurable is implemented by games that can pin a recorded config.
type Configurable interface {
	UseConfig(cfg config.HunterConfig)
	Config() config.HunterConfig
}

// Restore creates the game a replay was recorded with and decodes its input.
// A non-empty configYAML is pinned so the run does not depend on the
// config files present at playback time.
func Restore(gameID string, configYAML, inputs []byte) (registry.Game, []uint32, error) {
	g, err := registry.Create(gameID)
	if err != nil {
		return nil, nil, fmt.Errorf("replay: %w", err)
	}

	masks, err := Decode(inputs)
	if err != nil {
		return nil, nil, err
	}

	if len(configYAML) > 0 {
		c, ok := g.(Configurable)
		if !ok {
			return nil, nil, fmt.Errorf("replay: game %q does not accept a config", gameID)
		}
		cfg, err := config.Parse(configYAML)
		if err != nil {
			return nil, nil, fmt.Errorf("replay: recorded config: %w", err)
		}
		c.UseConfig(cfg)
	}
	return g, masks, nil
}

// Archive builds the stored form of a run recorded by rec on g.
// The game's effective config is embedded when it exposes one.
func Archive(g registry.Game, rt core.RuntimeConfig, difficulty string, rec *Recorder) (storage.Replay, error) {
	rep := storage.Replay{
		GameID:     g.ID(),
		Seed:       rt.Seed,
		TickRate:   rt.TickRate,
		Difficulty: difficulty,
		Ticks:      rec.Len(),
		Inputs:     rec.Encode(),
	}
	if c, ok := g.(Configurable); ok {
		data, err := config.Marshal(c.Config())
		if err != nil {
			return storage.Replay{}, fmt.Errorf("replay: snapshot config: %w", err)
		}
		rep.ConfigYAML = data
	}
	return rep, nil
}
