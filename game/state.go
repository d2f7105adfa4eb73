package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"golang.org/x/exp/slices"
)

// Player is the canonical record of one player.
type Player struct {
	Name     string   `json:"name"`
	Walls    int      `json:"wallsRemaining"`
	Position Position `json:"position"`
}

// WallSet lists placed walls by orientation.
// A horizontal wall at (x, y) blocks rows y-1 and y at columns x and x+1.
// A vertical wall at (x, y) blocks columns x-1 and x at rows y and y+1.
type WallSet struct {
	Horizontal []Position `json:"horizontal" yaml:"horizontal"`
	Vertical   []Position `json:"vertical" yaml:"vertical"`
}

func (w WallSet) Copy() WallSet {
	return WallSet{
		Horizontal: append([]Position{}, w.Horizontal...),
		Vertical:   append([]Position{}, w.Vertical...),
	}
}

func (w WallSet) Count() int {
	return len(w.Horizontal) + len(w.Vertical)
}

// Contains reports whether p is the anchor of a wall of either orientation.
func (w WallSet) Contains(p Position) bool {
	return slices.Contains(w.Horizontal, p) || slices.Contains(w.Vertical, p)
}

func (w WallSet) with(o Orientation, p Position) WallSet {
	c := w.Copy()
	if o == Horizontal {
		c.Horizontal = append(c.Horizontal, p)
	} else {
		c.Vertical = append(c.Vertical, p)
	}
	return c
}

// PlayerInput is either a bare name (defaults applied) or a full record.
type PlayerInput struct {
	name   string
	record *Player
}

func Named(name string) PlayerInput {
	return PlayerInput{name: name}
}

func Specified(p Player) PlayerInput {
	return PlayerInput{record: &p}
}

func (in PlayerInput) resolve(index int) Player {
	if in.record != nil {
		return *in.record
	}
	return Player{Name: in.name, Walls: MaxWallsPerPlayer, Position: StartPosition(index + 1)}
}

// GameState owns the players and the walls. Every read hands out a copy.
type GameState struct {
	players [NumPlayers]Player
	walls   WallSet
}

// NewGameState validates the setup and builds a state, or fails with
// ErrInvalidSetup without building anything. A nil walls means no walls.
func NewGameState(players []PlayerInput, walls *WallSet) (*GameState, error) {
	if len(players) < NumPlayers {
		return nil, fmt.Errorf("%w: players must be an ordered pair, got %d", ErrInvalidSetup, len(players))
	}
	if len(players) > NumPlayers {
		return nil, fmt.Errorf("%w: there must be exactly 2 players, got %d", ErrInvalidSetup, len(players))
	}

	gs := &GameState{walls: WallSet{Horizontal: []Position{}, Vertical: []Position{}}}
	remaining := 0
	for i, in := range players {
		p := in.resolve(i)
		if p.Walls < 0 || p.Walls > MaxWallsPerPlayer {
			return nil, fmt.Errorf("%w: player %d can place %d walls, want 0..%d", ErrInvalidSetup, i+1, p.Walls, MaxWallsPerPlayer)
		}
		if !p.Position.InBounds() {
			return nil, fmt.Errorf("%w: player %d position %v is outside the board", ErrInvalidSetup, i+1, p.Position)
		}
		remaining += p.Walls
		gs.players[i] = p
	}
	if gs.players[0].Position == gs.players[1].Position {
		return nil, fmt.Errorf("%w: both players are on %v", ErrInvalidSetup, gs.players[0].Position)
	}

	if walls != nil {
		if err := validateWalls(*walls); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSetup, err)
		}
		gs.walls = walls.Copy()
	}
	for i, p := range gs.players {
		if gs.walls.Contains(p.Position) {
			return nil, fmt.Errorf("%w: player %d stands on the wall cell %v", ErrInvalidSetup, i+1, p.Position)
		}
	}

	if total := remaining + gs.walls.Count(); total != TotalWalls {
		return nil, fmt.Errorf("%w: placed and remaining walls total %d, want %d", ErrInvalidSetup, total, TotalWalls)
	}

	if !gs.Graph().connected(gs.positions()) {
		return nil, fmt.Errorf("%w: a player is trapped by walls", ErrInvalidSetup)
	}
	return gs, nil
}

func validateWalls(w WallSet) error {
	accepted := WallSet{}
	for _, p := range w.Horizontal {
		if !ValidWallPosition(Horizontal, p) {
			return fmt.Errorf("horizontal wall %v is out of range", p)
		}
		if sameOrientationOverlap(accepted.Horizontal, Horizontal, p) {
			return fmt.Errorf("horizontal walls overlap at %v", p)
		}
		accepted.Horizontal = append(accepted.Horizontal, p)
	}
	for _, p := range w.Vertical {
		if !ValidWallPosition(Vertical, p) {
			return fmt.Errorf("vertical wall %v is out of range", p)
		}
		if sameOrientationOverlap(accepted.Vertical, Vertical, p) {
			return fmt.Errorf("vertical walls overlap at %v", p)
		}
		if crosses(accepted, Vertical, p) {
			return fmt.Errorf("vertical wall %v crosses a horizontal wall", p)
		}
		accepted.Vertical = append(accepted.Vertical, p)
	}
	return nil
}

func (gs *GameState) Copy() *GameState {
	return &GameState{
		players: gs.players,
		walls:   gs.walls.Copy(),
	}
}

// Player returns a copy of player 1 or 2.
func (gs *GameState) Player(player int) (Player, error) {
	i, err := playerIndex(player)
	if err != nil {
		return Player{}, err
	}
	return gs.players[i], nil
}

func (gs *GameState) Walls() WallSet {
	return gs.walls.Copy()
}

func (gs *GameState) positions() [NumPlayers]Position {
	return [NumPlayers]Position{gs.players[0].Position, gs.players[1].Position}
}

// Graph builds a fresh reachability graph for the current board.
func (gs *GameState) Graph() *Graph {
	return BuildGraph(gs.positions(), gs.walls)
}

func (g *Graph) connected(positions [NumPlayers]Position) bool {
	return g.HasPath(positions[0], GoalOne) && g.HasPath(positions[1], GoalTwo)
}

// Winner returns the winning player's name, or "" while the game is running.
// Player 1 wins on the last row; otherwise player 2 wins on the first row.
func (gs *GameState) Winner() string {
	switch {
	case gs.players[0].Position.Y == BoardSize:
		return gs.players[0].Name
	case gs.players[1].Position.Y == 1:
		return gs.players[1].Name
	}
	return ""
}

// WinnerNumber is Winner as a player number, 0 when there is none.
func (gs *GameState) WinnerNumber() int {
	switch {
	case gs.players[0].Position.Y == BoardSize:
		return 1
	case gs.players[1].Position.Y == 1:
		return 2
	}
	return 0
}

func (gs *GameState) IsOver() bool {
	return gs.WinnerNumber() != 0
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()
	buf := make([]byte, 8)
	write := func(v int) {
		binary.LittleEndian.PutUint64(buf, uint64(v))
		hasher.Write(buf)
	}

	for _, p := range gs.players {
		write(p.Position.X)
		write(p.Position.Y)
		write(p.Walls)
	}
	// Walls hash independently of placement order
	for _, list := range [][]Position{gs.walls.Horizontal, gs.walls.Vertical} {
		sorted := slices.Clone(list)
		slices.SortFunc(sorted, func(a, b Position) int {
			if a.Y != b.Y {
				return a.Y - b.Y
			}
			return a.X - b.X
		})
		write(len(sorted))
		for _, p := range sorted {
			write(p.X)
			write(p.Y)
		}
	}
	return StateHash(hasher.Sum64())
}

func playerIndex(player int) (int, error) {
	if player != 1 && player != 2 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPlayer, player)
	}
	return player - 1, nil
}

// Opponent returns the other player's number.
func Opponent(player int) int {
	if player == 1 {
		return 2
	}
	return 1
}
