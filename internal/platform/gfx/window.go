// Package gfx runs a game in a desktop window with Ebiten. It paints the
// same character grid the terminal front end shows, one cell per glyph.
package gfx

import (
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/roadhunter/internal/audio"
	"github.com/vovakirdan/roadhunter/internal/core"
	"github.com/vovakirdan/roadhunter/internal/registry"
	"github.com/vovakirdan/roadhunter/internal/replay"
	"github.com/vovakirdan/roadhunter/internal/storage"
)

// Grid and cell geometry. The cell width equals the font advance so a
// run of same-colored text can be drawn in one call.
const (
	Cols        = 100
	Rows        = 34
	cellW       = 7
	cellH       = 14
	windowScale = 1.5
)

var background = color.RGBA{0x10, 0x10, 0x14, 0xff}

// Options are the optional collaborators of a window session.
type Options struct {
	Store      *storage.Store // Nil disables recording
	Audio      *audio.Engine  // Nil plays silently
	Logger     *log.Logger
	Difficulty string
	Record     bool
	Music      bool
}

// Window adapts a registry.Game to ebiten.Game.
type Window struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	opts     Options
	logger   *log.Logger
	keys     keyState
	face     text.Face
	recorder *replay.Recorder
	playback *replay.Player
	state    core.GameState
	saved    bool
	savedID  int64
}

// NewWindow creates a window session and resets the game.
func NewWindow(game registry.Game, cfg core.RuntimeConfig, opts Options) *Window {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	cfg.ScreenW, cfg.ScreenH = Cols, Rows
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	w := &Window{
		game:   game,
		screen: core.NewScreen(Cols, Rows),
		config: cfg,
		opts:   opts,
		logger: logger,
		keys: keyState{
			pressed:     ebiten.IsKeyPressed,
			justPressed: inpututil.IsKeyJustPressed,
		},
		face:     text.NewGoXFace(basicfont.Face7x13),
		recorder: replay.NewRecorder(),
	}
	game.Reset(cfg)
	w.state = game.State()
	return w
}

// Update advances the simulation by one tick. Ebiten calls it at the TPS
// set by Run, which equals the game tick rate.
func (w *Window) Update() error {
	in := w.keys.frame()

	if w.playback != nil {
		if in.Has(core.ActionQuit) || in.Has(core.ActionBack) {
			return ebiten.Termination
		}
		if next, ok := w.playback.Next(); ok {
			w.state = w.game.Step(next).State
		}
		return nil
	}

	if in.Has(core.ActionQuit) || (in.Has(core.ActionBack) && w.canLeave()) {
		w.finishRun()
		return ebiten.Termination
	}

	if in.Has(core.ActionToggleMusic) && !w.state.Started {
		if w.opts.Audio.MusicPlaying() {
			w.opts.Audio.StopMusic()
		} else {
			w.opts.Audio.StartMusic()
		}
	}

	if in.Has(core.ActionRestart) && w.state.GameOver {
		w.config.Seed = time.Now().UnixNano()
		w.game.Reset(w.config)
		w.state = w.game.State()
		w.recorder = replay.NewRecorder()
		w.saved = false
		w.savedID = 0
		return nil
	}

	if !w.saved {
		w.recorder.Record(in)
	}
	result := w.game.Step(in)
	w.state = result.State
	w.opts.Audio.HandleEvents(result.Events)

	if w.state.GameOver {
		w.finishRun()
	}
	return nil
}

func (w *Window) canLeave() bool {
	return !w.state.Started || w.state.Paused || w.state.GameOver
}

// finishRun saves the current run once, if recording is on and it was played.
func (w *Window) finishRun() {
	if w.saved {
		return
	}
	w.saved = true
	if !w.opts.Record || w.opts.Store == nil || !w.state.Started {
		return
	}

	rep, err := replay.Archive(w.game, w.config, w.opts.Difficulty, w.recorder)
	if err != nil {
		w.logger.Warn("could not archive run", "err", err)
		return
	}
	id, err := w.opts.Store.SaveReplay(rep)
	if err != nil {
		w.logger.Warn("could not save replay", "err", err)
		return
	}
	w.savedID = id
	w.logger.Info("replay saved", "id", id, "game", rep.GameID, "ticks", rep.Ticks, "score", w.state.Score)
}

// Draw renders the game grid.
func (w *Window) Draw(dst *ebiten.Image) {
	dst.Fill(background)
	w.game.Render(w.screen)

	for y := 0; y < Rows; y++ {
		x := 0
		for x < Cols {
			cell := w.screen.GetCell(x, y)
			g := classify(cell.Rune)
			if g.shape != shapeText {
				drawShape(dst, x, y, g, cell.Color)
				x++
				continue
			}

			start := x
			run := make([]rune, 0, Cols-x)
			for x < Cols {
				c := w.screen.GetCell(x, y)
				cg := classify(c.Rune)
				if cg.shape != shapeText || c.Color != cell.Color {
					break
				}
				run = append(run, cg.text)
				x++
			}
			op := &text.DrawOptions{}
			op.GeoM.Translate(float64(start*cellW), float64(y*cellH))
			op.ColorScale.ScaleWithColor(rgba(cell.Color, 1))
			text.Draw(dst, string(run), w.face, op)
		}
	}
}

// drawShape paints a non-text cell.
func drawShape(dst *ebiten.Image, col, row int, g glyph, c core.Color) {
	x := float32(col * cellW)
	y := float32(row * cellH)
	clr := rgba(c, 1)

	switch g.shape {
	case shapeFill:
		vector.DrawFilledRect(dst, x, y, cellW, cellH, rgba(c, g.shade), false)
	case shapeVLine:
		vector.DrawFilledRect(dst, x+cellW/2-1, y, 2, cellH, clr, false)
	case shapeVDash:
		vector.DrawFilledRect(dst, x+cellW/2-1, y+2, 2, cellH-4, clr, false)
	case shapeHLine:
		vector.DrawFilledRect(dst, x, y+cellH/2-1, cellW, 2, clr, false)
	case shapeDot:
		vector.DrawFilledRect(dst, x+cellW/2-1, y+cellH/2-1, 2, 2, clr, false)
	case shapeDiamond:
		vector.DrawFilledRect(dst, x+1, y+cellH/2-3, cellW-2, 6, clr, true)
	}
}

// rgba converts a palette color with an opacity in [0, 1].
func rgba(c core.Color, alpha float32) color.RGBA {
	r, g, b := c.RGB()
	a := alpha * 255
	// Premultiplied, as image/color expects.
	return color.RGBA{
		R: uint8(float32(r) * alpha),
		G: uint8(float32(g) * alpha),
		B: uint8(float32(b) * alpha),
		A: uint8(a),
	}
}

// Layout keeps the logical size fixed; Ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return Cols * cellW, Rows * cellH
}

// Run opens a window and plays game until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	w := NewWindow(game, cfg, opts)
	if opts.Music {
		opts.Audio.StartMusic()
	}
	return w.run()
}

// RunReplay opens a window that plays back rep.
func RunReplay(rep storage.Replay, cfg core.RuntimeConfig, opts Options) error {
	game, masks, err := replay.Restore(rep.GameID, rep.ConfigYAML, rep.Inputs)
	if err != nil {
		return err
	}
	cfg.Seed = rep.Seed
	cfg.TickRate = rep.TickRate
	opts.Record = false

	w := NewWindow(game, cfg, opts)
	w.playback = replay.NewPlayer(masks)
	w.saved = true
	return w.run()
}

func (w *Window) run() error {
	defer w.opts.Audio.StopMusic()

	ebiten.SetWindowSize(int(Cols*cellW*windowScale), int(Rows*cellH*windowScale))
	ebiten.SetWindowTitle(w.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.config.TickRate)

	return ebiten.RunGame(w)
}
