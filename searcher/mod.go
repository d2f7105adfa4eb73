package searcher

import (
	"errors"

	"quoridor/game"
)

var ErrNoMove = errors.New("no legal move available")

type Agent interface {
	// FindMove picks a move for player on state. The state is left unchanged.
	FindMove(state *game.GameState, player int) (game.GameMove, error)
}

// checkTurn rejects finished games and unknown players before any search.
func checkTurn(state *game.GameState, player int) error {
	if state.IsOver() {
		return game.ErrGameOver
	}
	_, err := state.Player(player)
	return err
}
