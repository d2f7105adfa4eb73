package game

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	BoardSize         = 9
	MaxWallsPerPlayer = 10
	TotalWalls        = 2 * MaxWallsPerPlayer // walls placed + walls remaining, always
	NumPlayers        = 2
)

type StateHash uint64

// Position is a board cell, 1 <= X, Y <= BoardSize. Walls reuse it as their anchor.
type Position struct {
	X int
	Y int
}

func (p Position) InBounds() bool {
	return 1 <= p.X && p.X <= BoardSize && 1 <= p.Y && p.Y <= BoardSize
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Positions travel as a two-element array [x, y] in JSON and YAML.
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

func (p *Position) UnmarshalJSON(data []byte) error {
	var xy []int
	if err := json.Unmarshal(data, &xy); err != nil {
		return fmt.Errorf("position must be an [x, y] pair: %w", err)
	}
	return p.set(xy)
}

func (p Position) MarshalYAML() (interface{}, error) {
	return []int{p.X, p.Y}, nil
}

func (p *Position) UnmarshalYAML(node *yaml.Node) error {
	var xy []int
	if err := node.Decode(&xy); err != nil {
		return fmt.Errorf("line %d: position must be an [x, y] pair: %w", node.Line, err)
	}
	return p.set(xy)
}

func (p *Position) set(xy []int) error {
	if len(xy) != 2 {
		return fmt.Errorf("position must have exactly 2 coordinates, got %d", len(xy))
	}
	p.X, p.Y = xy[0], xy[1]
	return nil
}

// Orientation of a wall.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOrientation, s)
}

func (o Orientation) Valid() bool {
	return o == Horizontal || o == Vertical
}

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}
