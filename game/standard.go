package game

// StartPosition is where player 1 or 2 starts: the middle of their own edge.
func StartPosition(player int) Position {
	if player == 1 {
		return Position{X: 5, Y: 1}
	}
	return Position{X: 5, Y: BoardSize}
}

// NewStandardGame sets up two named players with 10 walls each and no walls on the board.
func NewStandardGame(name1, name2 string) *GameState {
	gs, err := NewGameState([]PlayerInput{Named(name1), Named(name2)}, nil)
	if err != nil {
		panic("standard setup rejected: " + err.Error())
	}
	return gs
}
