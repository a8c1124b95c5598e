// Package hunter implements Road Hunter: drive down a scrolling road,
// shoot enemy cars, collect weapon power-ups and survive as long as possible.
package hunter

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/roadhunter/internal/config"
	"github.com/vovakirdan/roadhunter/internal/core"
	"github.com/vovakirdan/roadhunter/internal/registry"
)

// Game phases
const (
	StateReady    = "ready"    // Start screen, waiting for fire or enter
	StatePlaying  = "playing"  // Simulation running
	StatePaused   = "paused"   // Frozen until unpaused
	StateGameOver = "gameover" // Health ran out
)

// Registered game IDs
const (
	IDHunter  = "hunter"
	IDClassic = "hunter_classic"
)

func init() {
	registry.Register(IDHunter, func() registry.Game { return New() })
	registry.Register(IDClassic, func() registry.Game { return NewClassic() })
}

// Game implements the Road Hunter game logic.
type Game struct {
	classic  bool
	override *config.HunterConfig

	// World
	player      *Player
	scenery     *Scenery
	enemies     *EnemyManager
	projectiles []*Projectile
	powerups    *PowerUpManager
	explosions  []*Explosion
	rng         *rand.Rand

	// Game state
	state        string
	score        float64 // Fractional accumulator, displayed floored
	tickCount    int
	roadSpeed    float64
	fireCooldown int
	level        float64
	events       []core.Event

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.HunterConfig
	difficulty *config.DifficultyManager
}

// New creates a Road Hunter instance with power-ups and enemy fire.
func New() *Game {
	return &Game{}
}

// NewClassic creates an instance with the original arcade rules.
func NewClassic() *Game {
	return &Game{classic: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.classic {
		return IDClassic
	}
	return IDHunter
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.classic {
		return "Road Hunter (Classic)"
	}
	return "Road Hunter"
}

// UseConfig pins the configuration used by subsequent resets,
// bypassing file lookup and presets. Replays rely on this.
func (g *Game) UseConfig(cfg config.HunterConfig) {
	g.override = &cfg
}

// Config returns the effective configuration of the current run.
func (g *Game) Config() config.HunterConfig {
	return g.cfg
}

// Configure pins the config found at path (or the usual search locations)
// with preset applied. It only affects this instance, so concurrent
// sessions can pick their own difficulty.
func (g *Game) Configure(path, preset string) error {
	cfg, err := config.LoadHunter(path)
	if err != nil {
		return err
	}
	g.UseConfig(g.withRules(cfg, config.ParsePreset(preset)))
	return nil
}

// loadConfig resolves the configuration for a new run.
func (g *Game) loadConfig() config.HunterConfig {
	if g.override != nil {
		return *g.override
	}

	cfg, err := config.LoadHunter("")
	if err != nil {
		cfg = config.DefaultHunterConfig()
	}
	return g.withRules(cfg, "")
}

func (g *Game) withRules(cfg config.HunterConfig, preset config.DifficultyPreset) config.HunterConfig {
	config.ApplyPreset(&cfg, preset)
	if g.classic {
		config.ApplyClassic(&cfg)
	}
	return cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	// Every random decision draws from one seeded source, so a seed and
	// an input sequence fully determine a run.
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.player = NewPlayer(g.cfg.Player.Health)
	g.scenery = NewScenery(g.cfg.Road, g.cfg.Buildings, g.rng)
	g.enemies = NewEnemyManager(g.cfg, g.rng, g.difficulty)
	g.enemies.Reset()
	g.powerups = NewPowerUpManager(g.cfg, g.rng)
	g.projectiles = make([]*Projectile, 0, 32)
	g.explosions = make([]*Explosion, 0, 8)

	g.state = StateReady
	g.score = 0
	g.tickCount = 0
	g.roadSpeed = g.cfg.Road.BaseSpeed
	g.fireCooldown = 0
	g.level = g.difficulty.Level(0, 0)
	g.events = nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	switch g.state {
	case StateReady:
		if in.Has(core.ActionFire) || in.Has(core.ActionConfirm) {
			g.state = StatePlaying
			g.emit(core.EventGameStart, "")
		}
		return g.result()

	case StateGameOver:
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return g.result()

	case StatePaused:
		if in.Has(core.ActionPause) {
			g.state = StatePlaying
		}
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.state = StatePaused
		return g.result()
	}

	g.tickCount++

	g.roadSpeed = g.player.Move(in, g.cfg.Player, g.cfg.Road)
	g.updateFiring(in)
	g.scenery.Update(g.roadSpeed)
	g.updateProjectiles()

	g.enemies.Update(g.tickCount, g.Score())
	g.updateEnemyFire()

	g.powerups.Update(g.roadSpeed)
	g.expirePowerUp()
	g.updateExplosions()

	g.checkCollisions()

	if g.state == StatePlaying {
		g.score += g.cfg.Scoring.PerTick
	}
	g.level = g.difficulty.Level(g.Score(), g.tickCount)

	return g.result()
}

func (g *Game) emit(kind core.EventKind, detail string) {
	g.events = append(g.events, core.Event{Kind: kind, Detail: detail})
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// Score returns the displayed (floored) score.
func (g *Game) Score() int {
	return int(math.Floor(g.score))
}

// Phase returns the current phase name.
func (g *Game) Phase() string {
	return g.state
}

// Level returns the current difficulty level from 0 to 1.
func (g *Game) Level() float64 {
	return g.level
}

// Tick returns the number of simulated ticks in the current run.
func (g *Game) Tick() int {
	return g.tickCount
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		Health:   g.player.Health,
		Started:  g.state != StateReady,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}
