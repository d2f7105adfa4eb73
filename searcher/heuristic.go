package searcher

import (
	"fmt"

	"quoridor/game"
)

// Heuristic plays one ply ahead: race when not behind, otherwise try to put
// a wall in front of the opponent's next step.
type Heuristic struct{}

func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

func (h *Heuristic) FindMove(state *game.GameState, player int) (game.GameMove, error) {
	if err := checkTurn(state, player); err != nil {
		return game.GameMove{}, err
	}
	opponent := game.Opponent(player)
	me, _ := state.Player(player)
	them, _ := state.Player(opponent)

	g := state.Graph()
	myPath := g.ShortestPath(me.Position, game.GoalOf(player))
	theirPath := g.ShortestPath(them.Position, game.GoalOf(opponent))
	if myPath == nil || theirPath == nil {
		return game.GameMove{}, fmt.Errorf("%w: a player has no path to the goal", ErrNoMove)
	}

	// Ties go to racing
	if len(myPath) > len(theirPath) && len(g.Successors(game.CellID(them.Position))) > 1 {
		for _, wall := range blockingWalls(them.Position, theirPath[1]) {
			if state.Copy().Play(player, wall) == nil {
				return wall, nil
			}
		}
	}
	return advance(state, g, player, myPath)
}

// blockingWalls returns the wall right in front of the step from -> next,
// perpendicular to it, then the same wall shifted back by one cell.
func blockingWalls(from game.Position, next game.NodeID) []game.GameMove {
	if next.IsGoal() {
		return nil
	}
	to := next.Position()
	dx, dy := to.X-from.X, to.Y-from.Y
	anchor := game.Position{X: to.X - min(dx, 0), Y: to.Y - min(dy, 0)}
	if dx != 0 {
		return []game.GameMove{
			game.WallMove(anchor, game.Vertical),
			game.WallMove(game.Position{X: anchor.X, Y: anchor.Y - 1}, game.Vertical),
		}
	}
	return []game.GameMove{
		game.WallMove(anchor, game.Horizontal),
		game.WallMove(game.Position{X: anchor.X - 1, Y: anchor.Y}, game.Horizontal),
	}
}

// advance takes the first step of path, or when the rules refuse it, the
// legal step closest to the goal.
func advance(state *game.GameState, g *game.Graph, player int, path []game.NodeID) (game.GameMove, error) {
	if next := path[1]; !next.IsGoal() {
		move := game.TokenMove(next.Position())
		if state.Copy().Play(player, move) == nil {
			return move, nil
		}
	}

	moves, err := state.LegalTokenMoves(player)
	if err != nil {
		return game.GameMove{}, err
	}
	dist := g.Distances(game.GoalOf(player))
	best := -1
	for i, target := range moves {
		d := dist[game.CellID(target)]
		if d >= 0 && (best < 0 || d < dist[game.CellID(moves[best])]) {
			best = i
		}
	}
	if best < 0 {
		return game.GameMove{}, fmt.Errorf("%w: player %d is boxed in", ErrNoMove, player)
	}
	return game.TokenMove(moves[best]), nil
}
