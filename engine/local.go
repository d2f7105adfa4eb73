package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/gamemaster"
	"quoridor/meta"
	"quoridor/searcher"
)

// Engine drives two agents against a session, agent i playing player i+1.
type Engine struct {
	Session *gamemaster.Session
	Agents  []searcher.Agent

	updates     gamemaster.UpdateGetter
	maxTurns    int
	maxAttempts int
}

var _ Runner = (*Engine)(nil)

func LocalEngine(session *gamemaster.Session, agents []searcher.Agent, options ...Option) *Engine {
	if len(agents) != game.NumPlayers {
		panic("need exactly two agents")
	}

	e := &Engine{ // Default values
		Session:     session,
		Agents:      agents,
		maxTurns:    meta.MAX_TURNS,
		maxAttempts: meta.MAX_ATTEMPTS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until a winner is found, the turn cap is hit
// or an agent fails. Moves played before a failure are still reported.
func (e *Engine) Run() (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:             e.Session.ID,
		StartingPlayer: e.Session.Turn(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric
	collector := metrics.NewCollector()
	_, e.updates = e.Session.Init()

	log.Info().Msgf("game %s: player %d is starting", e.Session.ID, gameMetric.StartingPlayer)

	var err error
	for step := 1; e.Session.Winner() == "" && step <= e.maxTurns; step++ {
		var mm metrics.MoveMetric
		mm, err = e.turn(collector, step, e.Session.Turn())
		if err != nil {
			break
		}
		moveMetrics = append(moveMetrics, mm)
	}

	winner := e.Session.Winner()
	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	switch {
	case err != nil:
		log.Error().Err(err).Msgf("game %s aborted after %d moves", e.Session.ID, len(moveMetrics))
	case winner != "":
		log.Info().Msgf("game %s: %s wins after %d moves", e.Session.ID, winner, len(moveMetrics))
	default:
		log.Info().Msgf("game %s: stopped after %d turns without a winner", e.Session.ID, e.maxTurns)
	}
	return winner, gameMetric, moveMetrics, err
}

// turn asks the agent of player for a move until the session accepts one.
func (e *Engine) turn(collector metrics.Collector, step, player int) (metrics.MoveMetric, error) {
	collector.Start(step, player)
	agent := e.Agents[player-1]

	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		move, err := agent.FindMove(e.Session.State(), player)
		if err != nil {
			return metrics.MoveMetric{}, fmt.Errorf("player %d: %w", player, err)
		}
		if err = e.Session.Play(player, move); err != nil {
			collector.AddRejection()
			log.Warn().Err(err).Msgf("player %d proposed %s (attempt %d of %d)", player, move, attempt, e.maxAttempts)
			continue
		}

		hash := e.Session.Hash()
		e.drainUpdates(step, hash)
		return collector.Complete(move, hash), nil
	}
	return metrics.MoveMetric{}, fmt.Errorf("%w: player %d", ErrAttemptsExhausted, player)
}

// drainUpdates logs every pending session update so the feed never backs up.
func (e *Engine) drainUpdates(step int, hash game.StateHash) {
	for move, state := e.updates(); move != nil; move, state = e.updates() {
		log.Debug().Msgf("step %d: %s, players at %v and %v, %d walls placed, state %x",
			step, move, state.Players[0].Position, state.Players[1].Position, state.Walls.Count(), uint64(hash))
	}
}
