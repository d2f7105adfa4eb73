package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func player(name string, walls, x, y int) PlayerInput {
	return Specified(Player{Name: name, Walls: walls, Position: Position{x, y}})
}

func newState(t *testing.T, p1, p2 PlayerInput, walls *WallSet) *GameState {
	t.Helper()
	gs, err := NewGameState([]PlayerInput{p1, p2}, walls)
	require.NoError(t, err)
	return gs
}

func wallCount(gs *GameState) int {
	total := gs.Walls().Count()
	for _, n := range []int{1, 2} {
		p, _ := gs.Player(n)
		total += p.Walls
	}
	return total
}

// Twenty walls leaving both sides a path, with no walls left to place.
func fullBoard() *WallSet {
	return &WallSet{
		Horizontal: cells(Position{2, 2}, Position{2, 3}, Position{2, 4}, Position{2, 5}, Position{2, 6},
			Position{2, 7}, Position{2, 8}, Position{2, 9}, Position{4, 2}, Position{4, 3}),
		Vertical: cells(Position{2, 2}, Position{2, 4}, Position{2, 6}, Position{2, 8}, Position{4, 2},
			Position{4, 4}, Position{4, 6}, Position{4, 8}, Position{6, 2}, Position{6, 4}),
	}
}

func TestNewGameState(t *testing.T) {
	t.Run("named players get the standard setup", func(t *testing.T) {
		gs, err := NewGameState([]PlayerInput{Named("henri"), Named("robot")}, nil)
		require.NoError(t, err)

		p1, _ := gs.Player(1)
		p2, _ := gs.Player(2)
		require.Equal(t, Player{Name: "henri", Walls: 10, Position: Position{5, 1}}, p1)
		require.Equal(t, Player{Name: "robot", Walls: 10, Position: Position{5, 9}}, p2)
		require.Equal(t, 0, gs.Walls().Count())
		require.Equal(t, TotalWalls, wallCount(gs))
		require.Equal(t, "", gs.Winner())
	})

	t.Run("named and specified players mix", func(t *testing.T) {
		gs := newState(t, Named("henri"), player("robot", 9, 4, 6), &WallSet{Vertical: cells(Position{3, 3})})

		p1, _ := gs.Player(1)
		require.Equal(t, Position{5, 1}, p1.Position)
		require.Equal(t, TotalWalls, wallCount(gs))
	})

	t.Run("fully walled board is accepted as given", func(t *testing.T) {
		walls := fullBoard()
		gs := newState(t, player("henri", 0, 5, 1), player("robot", 0, 5, 9), walls)

		require.Equal(t, *walls, gs.Walls())
		require.Equal(t, TotalWalls, wallCount(gs))
	})

	t.Run("input walls are copied", func(t *testing.T) {
		walls := &WallSet{Horizontal: cells(Position{5, 5})}
		gs := newState(t, player("henri", 9, 5, 1), Named("robot"), walls)

		walls.Horizontal[0] = Position{1, 2}
		require.Equal(t, cells(Position{5, 5}), gs.Walls().Horizontal)
	})

	rejected := []struct {
		name    string
		players []PlayerInput
		walls   *WallSet
	}{
		{"single player", []PlayerInput{Named("henri")}, nil},
		{"three players", []PlayerInput{player("henri", 10, 5, 1), player("robot", 10, 5, 9), player("jason", 0, 5, 5)}, nil},
		{"negative wall count", []PlayerInput{player("henri", -1, 5, 1), player("robot", 10, 5, 9)}, nil},
		{"wall count above ten", []PlayerInput{player("henri", 10, 5, 1), player("robot", 11, 5, 9)}, nil},
		{"player below the board", []PlayerInput{player("henri", 10, 5, 0), player("robot", 10, 5, 9)}, nil},
		{"player right of the board", []PlayerInput{player("henri", 10, 5, 1), player("robot", 10, 10, 9)}, nil},
		{"players on the same cell", []PlayerInput{player("henri", 10, 5, 5), player("robot", 10, 5, 5)}, nil},
		{"too few walls in total", []PlayerInput{player("henri", 1, 5, 1), player("robot", 0, 5, 9)}, fullBoard()},
		{"too many walls in total", []PlayerInput{player("henri", 10, 5, 1), player("robot", 10, 5, 9)}, &WallSet{Vertical: cells(Position{6, 6})}},
		{"horizontal wall out of range", []PlayerInput{player("henri", 9, 5, 1), Named("robot")}, &WallSet{Horizontal: cells(Position{0, 2})}},
		{"horizontal wall on the first row", []PlayerInput{player("henri", 9, 5, 1), Named("robot")}, &WallSet{Horizontal: cells(Position{3, 1})}},
		{"vertical wall out of range", []PlayerInput{player("henri", 9, 5, 1), Named("robot")}, &WallSet{Vertical: cells(Position{2, 0})}},
		{"vertical wall on the first column", []PlayerInput{player("henri", 9, 5, 1), Named("robot")}, &WallSet{Vertical: cells(Position{1, 4})}},
		{"overlapping horizontal walls", []PlayerInput{player("henri", 9, 5, 1), player("robot", 9, 5, 9)}, &WallSet{Horizontal: cells(Position{2, 2}, Position{3, 2})}},
		{"overlapping vertical walls", []PlayerInput{player("henri", 9, 5, 1), player("robot", 9, 5, 9)}, &WallSet{Vertical: cells(Position{2, 2}, Position{2, 3})}},
		{"duplicate walls", []PlayerInput{player("henri", 9, 5, 1), player("robot", 9, 5, 9)}, &WallSet{Vertical: cells(Position{7, 7}, Position{7, 7})}},
		{"crossing walls", []PlayerInput{player("henri", 9, 5, 1), player("robot", 9, 5, 9)}, &WallSet{Horizontal: cells(Position{2, 3}), Vertical: cells(Position{3, 2})}},
		{"player on a wall cell", []PlayerInput{player("henri", 9, 4, 4), Named("robot")}, &WallSet{Horizontal: cells(Position{4, 4})}},
		{"trapped player", []PlayerInput{player("henri", 8, 5, 1), player("robot", 8, 3, 8)}, &WallSet{
			Horizontal: cells(Position{2, 8}, Position{2, 9}),
			Vertical:   cells(Position{2, 8}, Position{4, 8}),
		}},
	}
	for _, tc := range rejected {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			gs, err := NewGameState(tc.players, tc.walls)

			require.ErrorIs(t, err, ErrInvalidSetup)
			require.Nil(t, gs, "No state should be built")
		})
	}
}

func TestWinner(t *testing.T) {
	t.Run("no winner at the start", func(t *testing.T) {
		gs := NewStandardGame("henri", "robot")

		require.Equal(t, "", gs.Winner())
		require.Equal(t, 0, gs.WinnerNumber())
		require.False(t, gs.IsOver())
	})

	t.Run("player one wins on the last row", func(t *testing.T) {
		gs := newState(t, player("henri", 10, 1, 9), player("robot", 10, 5, 9), nil)

		require.Equal(t, "henri", gs.Winner())
		require.Equal(t, 1, gs.WinnerNumber())
	})

	t.Run("player two wins on the first row", func(t *testing.T) {
		gs := newState(t, player("henri", 10, 5, 5), player("robot", 10, 2, 1), nil)

		require.Equal(t, "robot", gs.Winner())
		require.Equal(t, 2, gs.WinnerNumber())
		require.True(t, gs.IsOver())
	})

	t.Run("player one takes precedence", func(t *testing.T) {
		gs := newState(t, player("henri", 10, 5, 9), player("robot", 10, 5, 1), nil)

		require.Equal(t, "henri", gs.Winner())
	})
}

func TestCopyAndHash(t *testing.T) {
	t.Run("copies are independent", func(t *testing.T) {
		gs := NewStandardGame("henri", "robot")
		c := gs.Copy()

		require.NoError(t, c.PlaceWall(1, Position{5, 5}, Horizontal))
		require.NoError(t, c.MoveToken(2, Position{5, 8}))
		require.Equal(t, NewStandardGame("henri", "robot").Snapshot(), gs.Snapshot())
		require.NotEqual(t, gs.Hash(), c.Hash())
	})

	t.Run("hash ignores wall placement order", func(t *testing.T) {
		a := newState(t, player("henri", 9, 5, 1), player("robot", 9, 5, 9), &WallSet{Horizontal: cells(Position{1, 3}, Position{6, 6})})
		b := newState(t, player("henri", 9, 5, 1), player("robot", 9, 5, 9), &WallSet{Horizontal: cells(Position{6, 6}, Position{1, 3})})

		require.Equal(t, a.Hash(), b.Hash())
		require.Equal(t, a.Hash(), a.Copy().Hash())
	})

	t.Run("player accessor rejects unknown players", func(t *testing.T) {
		gs := NewStandardGame("henri", "robot")

		_, err := gs.Player(3)
		require.ErrorIs(t, err, ErrInvalidPlayer)
		require.Equal(t, 2, Opponent(1))
		require.Equal(t, 1, Opponent(2))
	})
}
