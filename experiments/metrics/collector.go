package metrics

import (
	"time"

	"github.com/google/uuid"

	"quoridor/game"
)

// AgentConfig describes one agent taking part in an experiment.
type AgentConfig struct {
	ID       int
	Kind     string // "heuristic" or "random"
	Seed     uint64
	WallRate float64
}

type MoveMetric struct {
	Step     int
	Player   int // Player number
	Move     string
	Hash     game.StateHash
	Attempts int // Rejected proposals before the accepted one
	Duration time.Duration
}

type GameMetric struct {
	ID             uuid.UUID
	StartingPlayer int    // Player number
	Winner         string // Player name, empty when the turn cap was hit
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector times the moves of one player turn.
type Collector interface {
	Start(step, player int)
	AddRejection()
	Complete(move game.GameMove, hash game.StateHash) MoveMetric
}

type collector struct {
	step      int
	player    int
	startTime time.Time
	attempts  int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(step, player int) {
	c.step = step
	c.player = player
	c.startTime = time.Now()
	c.attempts = 0
}

func (c *collector) AddRejection() {
	c.attempts++
}

func (c *collector) Complete(move game.GameMove, hash game.StateHash) MoveMetric {
	return MoveMetric{
		Step:     c.step,
		Player:   c.player,
		Move:     move.String(),
		Hash:     hash,
		Attempts: c.attempts,
		Duration: time.Since(c.startTime),
	}
}
