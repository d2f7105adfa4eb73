package player

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"quoridor/game"
)

// Console is an agent backed by a human typing commands such as "D 5 2",
// "MH 4 6" or "MV 3 3".
type Console struct {
	Name    string
	scanner *bufio.Scanner
	out     io.Writer
}

func NewConsole(name string, in io.Reader, out io.Writer) *Console {
	return &Console{
		Name:    name,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// FindMove prompts until a line parses as a command the rules accept on
// state. It returns io.EOF once the input is exhausted.
func (c *Console) FindMove(state *game.GameState, player int) (game.GameMove, error) {
	if state.IsOver() {
		return game.GameMove{}, game.ErrGameOver
	}
	me, err := state.Player(player)
	if err != nil {
		return game.GameMove{}, err
	}
	steps, _ := state.LegalTokenMoves(player)

	for {
		fmt.Fprintf(c.out, "%s (player %d, %d walls left) at %s, steps %s\n> ", c.Name, player, me.Walls, me.Position, formatSteps(steps))
		if !c.scanner.Scan() {
			if err := c.scanner.Err(); err != nil {
				return game.GameMove{}, err
			}
			return game.GameMove{}, io.EOF
		}

		line := strings.TrimSpace(c.scanner.Text())
		if line == "" {
			continue
		}
		move, err := game.ParseMove(line)
		if err == nil {
			err = state.Copy().Play(player, move)
		}
		if err != nil {
			fmt.Fprintf(c.out, "%v\n", err)
			continue
		}
		return move, nil
	}
}

func formatSteps(steps []game.Position) string {
	parts := make([]string, len(steps))
	for i, p := range steps {
		parts[i] = fmt.Sprintf("%d %d", p.X, p.Y)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
