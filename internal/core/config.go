package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Health   int  // Remaining player health
	Started  bool // Whether play has begun (false on the start screen)
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventGameStart EventKind = iota
	EventShot
	EventExplosion
	EventPlayerHit
	EventPowerUp
	EventPowerUpExpired
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventGameStart:
		return "GameStart"
	case EventShot:
		return "Shot"
	case EventExplosion:
		return "Explosion"
	case EventPlayerHit:
		return "PlayerHit"
	case EventPowerUp:
		return "PowerUp"
	case EventPowerUpExpired:
		return "PowerUpExpired"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is a notification emitted by a game step for collaborators
// such as audio. Detail carries an event-specific label.
type Event struct {
	Kind   EventKind
	Detail string
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
