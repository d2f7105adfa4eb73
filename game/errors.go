package game

import "errors"

// ErrInvalidSetup is the structural error: construction was rejected and no state exists.
var ErrInvalidSetup = errors.New("invalid game setup")

// Operational errors. A rejected operation leaves the state unchanged.
var (
	ErrInvalidPlayer      = errors.New("player number must be 1 or 2")
	ErrOutOfBounds        = errors.New("position is outside the board")
	ErrIllegalMove        = errors.New("position is invalid for the current game state")
	ErrNoWallsLeft        = errors.New("player has no walls left")
	ErrInvalidOrientation = errors.New("wall orientation must be horizontal or vertical")
	ErrInvalidPosition    = errors.New("wall position is invalid for this orientation")
	ErrOverlap            = errors.New("wall overlaps an existing wall")
	ErrWouldTrapPlayer    = errors.New("wall would leave a player without a path to the goal")
	ErrGameOver           = errors.New("game is already over")
	ErrUnknownCommand     = errors.New("unknown command")
)
