package searcher

import (
	"fmt"

	"golang.org/x/exp/rand"

	"quoridor/game"
)

const wallTries = 20

// Random plays uniformly random legal token moves, and with probability
// wallRate first tries a few random wall placements.
type Random struct {
	rng      *rand.Rand
	wallRate float64
}

func NewRandom(seed uint64, wallRate float64) *Random {
	return &Random{
		rng:      rand.New(rand.NewSource(seed)),
		wallRate: wallRate,
	}
}

func (r *Random) FindMove(state *game.GameState, player int) (game.GameMove, error) {
	if err := checkTurn(state, player); err != nil {
		return game.GameMove{}, err
	}

	me, _ := state.Player(player)
	if me.Walls > 0 && r.rng.Float64() < r.wallRate {
		for i := 0; i < wallTries; i++ {
			wall := game.WallMove(game.Position{
				X: 1 + r.rng.Intn(game.BoardSize),
				Y: 1 + r.rng.Intn(game.BoardSize),
			}, game.Orientation(r.rng.Intn(2)))
			if state.Copy().Play(player, wall) == nil {
				return wall, nil
			}
		}
	}

	moves, err := state.LegalTokenMoves(player)
	if err != nil {
		return game.GameMove{}, err
	}
	if len(moves) == 0 {
		return game.GameMove{}, fmt.Errorf("%w: player %d", ErrNoMove, player)
	}
	return game.TokenMove(moves[r.rng.Intn(len(moves))]), nil
}
