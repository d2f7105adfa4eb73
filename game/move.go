package game

import (
	"fmt"
	"strconv"
	"strings"
)

// ActionType distinguishes the two kinds of turn.
type ActionType int

const (
	MoveAction ActionType = iota
	WallAction
)

// GameMove represents a move in the game. Orientation only applies to walls.
type GameMove struct {
	Action      ActionType
	Position    Position
	Orientation Orientation
}

func TokenMove(target Position) GameMove {
	return GameMove{Action: MoveAction, Position: target}
}

func WallMove(anchor Position, o Orientation) GameMove {
	return GameMove{Action: WallAction, Position: anchor, Orientation: o}
}

// Command verbs of the text front end.
const (
	verbMove           = "D"
	verbHorizontalWall = "MH"
	verbVerticalWall   = "MV"
)

// ParseMove reads "D x y", "MH x y" or "MV x y".
func ParseMove(s string) (GameMove, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return GameMove{}, fmt.Errorf("%w: %q, want <D|MH|MV> <x> <y>", ErrUnknownCommand, s)
	}
	x, errX := strconv.Atoi(fields[1])
	y, errY := strconv.Atoi(fields[2])
	if errX != nil || errY != nil {
		return GameMove{}, fmt.Errorf("%w: %q has non-integer coordinates", ErrUnknownCommand, s)
	}
	pos := Position{X: x, Y: y}

	switch strings.ToUpper(fields[0]) {
	case verbMove:
		return TokenMove(pos), nil
	case verbHorizontalWall:
		return WallMove(pos, Horizontal), nil
	case verbVerticalWall:
		return WallMove(pos, Vertical), nil
	}
	return GameMove{}, fmt.Errorf("%w: verb %q", ErrUnknownCommand, fields[0])
}

func (m GameMove) String() string {
	verb := verbMove
	if m.Action == WallAction {
		verb = verbHorizontalWall
		if m.Orientation == Vertical {
			verb = verbVerticalWall
		}
	}
	return fmt.Sprintf("%s %d %d", verb, m.Position.X, m.Position.Y)
}

// Play applies a move for the player. It either fully applies or returns an
// error with the state untouched.
func (gs *GameState) Play(player int, m GameMove) error {
	switch m.Action {
	case MoveAction:
		return gs.MoveToken(player, m.Position)
	case WallAction:
		return gs.PlaceWall(player, m.Position, m.Orientation)
	}
	return fmt.Errorf("%w: action %d", ErrUnknownCommand, m.Action)
}
