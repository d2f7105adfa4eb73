package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// ValidWallPosition checks the anchor range of a wall:
// horizontal x in [1,8], y in [2,9]; vertical x in [2,9], y in [1,8].
func ValidWallPosition(o Orientation, p Position) bool {
	switch o {
	case Horizontal:
		return 1 <= p.X && p.X <= BoardSize-1 && 2 <= p.Y && p.Y <= BoardSize
	case Vertical:
		return 2 <= p.X && p.X <= BoardSize && 1 <= p.Y && p.Y <= BoardSize-1
	}
	return false
}

// sameOrientationOverlap reports a wall of the same orientation within one
// cell of p along the wall's own axis.
func sameOrientationOverlap(existing []Position, o Orientation, p Position) bool {
	return slices.ContainsFunc(existing, func(w Position) bool {
		if o == Horizontal {
			return w.Y == p.Y && abs(w.X-p.X) <= 1
		}
		return w.X == p.X && abs(w.Y-p.Y) <= 1
	})
}

// crosses reports a wall of the other orientation sharing p's midpoint.
func crosses(walls WallSet, o Orientation, p Position) bool {
	if o == Horizontal {
		return slices.Contains(walls.Vertical, Position{X: p.X + 1, Y: p.Y - 1})
	}
	return slices.Contains(walls.Horizontal, Position{X: p.X - 1, Y: p.Y + 1})
}

// MoveToken moves the player's token to target if the board allows it: one
// unblocked orthogonal step, a jump over an adjacent opponent, or a side-step
// around the opponent when the jump is blocked.
func (gs *GameState) MoveToken(player int, target Position) error {
	i, err := playerIndex(player)
	if err != nil {
		return err
	}
	if !target.InBounds() {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, target)
	}
	if err := gs.checkTarget(target); err != nil {
		return err
	}

	from := gs.players[i].Position
	if !gs.Graph().HasEdge(CellID(from), CellID(target)) {
		return fmt.Errorf("%w: %v is not reachable from %v", ErrIllegalMove, target, from)
	}

	gs.players[i].Position = target
	return nil
}

func (gs *GameState) checkTarget(target Position) error {
	for _, p := range gs.players {
		if p.Position == target {
			return fmt.Errorf("%w: %v is occupied by %s", ErrIllegalMove, target, p.Name)
		}
	}
	if gs.walls.Contains(target) {
		return fmt.Errorf("%w: %v is a wall cell", ErrIllegalMove, target)
	}
	return nil
}

// LegalTokenMoves lists every target MoveToken would accept for the player,
// in graph edge order.
func (gs *GameState) LegalTokenMoves(player int) ([]Position, error) {
	i, err := playerIndex(player)
	if err != nil {
		return nil, err
	}
	moves := []Position{}
	for _, target := range gs.Graph().Cells(gs.players[i].Position) {
		if gs.checkTarget(target) == nil {
			moves = append(moves, target)
		}
	}
	return moves, nil
}

// PlaceWall spends one of the player's walls at pos. The placement is
// checked against a tentative board first and only committed when both
// players still have a path to their goal row.
func (gs *GameState) PlaceWall(player int, pos Position, o Orientation) error {
	i, err := playerIndex(player)
	if err != nil {
		return err
	}
	if gs.players[i].Walls == 0 {
		return fmt.Errorf("%w: %s", ErrNoWallsLeft, gs.players[i].Name)
	}
	if !o.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidOrientation, o)
	}
	if !ValidWallPosition(o, pos) {
		return fmt.Errorf("%w: %s wall at %v", ErrInvalidPosition, o, pos)
	}

	existing := gs.walls.Horizontal
	if o == Vertical {
		existing = gs.walls.Vertical
	}
	if sameOrientationOverlap(existing, o, pos) {
		return fmt.Errorf("%w: %s walls would overlap at %v", ErrOverlap, o, pos)
	}
	if crosses(gs.walls, o, pos) {
		return fmt.Errorf("%w: %s wall at %v crosses another wall", ErrOverlap, o, pos)
	}

	for _, p := range gs.players {
		if p.Position == pos {
			return fmt.Errorf("%w: %s wall at %v would sit under %s", ErrInvalidPosition, o, pos, p.Name)
		}
	}

	tentative := gs.walls.with(o, pos)
	if !BuildGraph(gs.positions(), tentative).connected(gs.positions()) {
		return fmt.Errorf("%w: %s wall at %v", ErrWouldTrapPlayer, o, pos)
	}

	gs.walls = tentative
	gs.players[i].Walls--
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
