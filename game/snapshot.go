package game

import (
	"encoding/json"
	"fmt"
	"io"
)

// Snapshot is the read-only view handed to renderers and transports.
type Snapshot struct {
	Players []Player `json:"players"`
	Walls   WallSet  `json:"walls"`
}

// Snapshot returns a deep copy of the state.
func (gs *GameState) Snapshot() Snapshot {
	return Snapshot{
		Players: []Player{gs.players[0], gs.players[1]},
		Walls:   gs.walls.Copy(),
	}
}

// FromSnapshot rebuilds a state through the validating constructor.
func FromSnapshot(s Snapshot) (*GameState, error) {
	players := make([]PlayerInput, len(s.Players))
	for i, p := range s.Players {
		players[i] = Specified(p)
	}
	walls := s.Walls
	return NewGameState(players, &walls)
}

func (s Snapshot) Encode(w io.Writer) error {
	return json.NewEncoder(w).Encode(s)
}

// DecodeSnapshot reads a JSON snapshot and validates it. Unknown fields are rejected.
func DecodeSnapshot(r io.Reader) (*GameState, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var s Snapshot
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSetup, err)
	}
	return FromSnapshot(s)
}
