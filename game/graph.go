package game

import "golang.org/x/exp/slices"

// NodeID indexes a node in a Graph: cells first, then the two goal sentinels.
type NodeID int

const (
	numCells = BoardSize * BoardSize

	// GoalOne is reached from any cell of the last row (player 1's goal).
	GoalOne NodeID = numCells
	// GoalTwo is reached from any cell of the first row (player 2's goal).
	GoalTwo NodeID = numCells + 1

	numNodes = numCells + 2
)

func CellID(p Position) NodeID {
	return NodeID((p.Y-1)*BoardSize + (p.X - 1))
}

func (id NodeID) IsGoal() bool {
	return id == GoalOne || id == GoalTwo
}

// Position of a cell node. Meaningless for goal sentinels.
func (id NodeID) Position() Position {
	return Position{X: int(id)%BoardSize + 1, Y: int(id)/BoardSize + 1}
}

// GoalOf returns the goal sentinel of player 1 or 2.
func GoalOf(player int) NodeID {
	if player == 1 {
		return GoalOne
	}
	return GoalTwo
}

// West, east, south, north. Edge order in the graph follows this order.
var directions = [4]Position{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}}

// Graph is the directed reachability graph for one board configuration.
// It is rebuilt for every query and never updated in place.
type Graph struct {
	succ [numNodes][]NodeID
}

// barriers records which orthogonal steps are cut by walls.
// east[x][y] cuts (x, y) <-> (x+1, y); north[x][y] cuts (x, y) <-> (x, y+1).
type barriers struct {
	east  [BoardSize + 2][BoardSize + 2]bool
	north [BoardSize + 2][BoardSize + 2]bool
}

func newBarriers(walls WallSet) *barriers {
	b := &barriers{}
	for _, w := range walls.Horizontal {
		// between rows y-1 and y, columns x and x+1
		b.cutNorth(w.X, w.Y-1)
		b.cutNorth(w.X+1, w.Y-1)
	}
	for _, w := range walls.Vertical {
		// between columns x-1 and x, rows y and y+1
		b.cutEast(w.X-1, w.Y)
		b.cutEast(w.X-1, w.Y+1)
	}
	return b
}

func (b *barriers) cutNorth(x, y int) {
	if x >= 0 && x < len(b.north) && y >= 0 && y < len(b.north) {
		b.north[x][y] = true
	}
}

func (b *barriers) cutEast(x, y int) {
	if x >= 0 && x < len(b.east) && y >= 0 && y < len(b.east) {
		b.east[x][y] = true
	}
}

func (b *barriers) blocked(from, to Position) bool {
	switch {
	case to.X == from.X+1:
		return b.east[from.X][from.Y]
	case to.X == from.X-1:
		return b.east[to.X][to.Y]
	case to.Y == from.Y+1:
		return b.north[from.X][from.Y]
	case to.Y == from.Y-1:
		return b.north[to.X][to.Y]
	}
	return true
}

// BuildGraph connects every cell to its unblocked orthogonal neighbours,
// replaces the step between two adjacent tokens by jump (or side-step)
// edges, and links the last and first rows to the goal sentinels.
// Wall cells (wall anchors) get no incoming edges, so jumps and side-steps
// never land on them either.
func BuildGraph(players [NumPlayers]Position, walls WallSet) *Graph {
	g := &Graph{}
	b := newBarriers(walls)

	for id := NodeID(0); id < numCells; id++ {
		from := id.Position()
		g.succ[id] = make([]NodeID, 0, 4)
		for _, d := range directions {
			to := Position{X: from.X + d.X, Y: from.Y + d.Y}
			if to.InBounds() && !b.blocked(from, to) && !walls.Contains(to) {
				g.succ[id] = append(g.succ[id], CellID(to))
			}
		}
	}

	one, two := CellID(players[0]), CellID(players[1])
	if g.HasEdge(one, two) || g.HasEdge(two, one) {
		g.removeEdge(one, two)
		g.removeEdge(two, one)
		g.addJumps(players[0], players[1])
		g.addJumps(players[1], players[0])
	}

	for x := 1; x <= BoardSize; x++ {
		g.addEdge(CellID(Position{X: x, Y: BoardSize}), GoalOne)
		g.addEdge(CellID(Position{X: x, Y: 1}), GoalTwo)
	}
	return g
}

// addJumps links from over the adjacent opponent: straight when the far cell
// is reachable from the opponent, otherwise to each cell beside the opponent.
func (g *Graph) addJumps(from, opponent Position) {
	src, mid := CellID(from), CellID(opponent)
	far := Position{X: 2*opponent.X - from.X, Y: 2*opponent.Y - from.Y}
	if far.InBounds() && g.HasEdge(mid, CellID(far)) {
		g.addEdge(src, CellID(far))
		return
	}
	for _, side := range g.succ[mid] {
		if side != src {
			g.addEdge(src, side)
		}
	}
}

func (g *Graph) addEdge(from, to NodeID) {
	if !slices.Contains(g.succ[from], to) {
		g.succ[from] = append(g.succ[from], to)
	}
}

func (g *Graph) removeEdge(from, to NodeID) {
	if i := slices.Index(g.succ[from], to); i >= 0 {
		g.succ[from] = slices.Delete(g.succ[from], i, i+1)
	}
}

func (g *Graph) HasEdge(from, to NodeID) bool {
	return slices.Contains(g.succ[from], to)
}

// Successors returns the out-neighbours of a node, goal sentinels included.
func (g *Graph) Successors(id NodeID) []NodeID {
	return slices.Clone(g.succ[id])
}

// Cells returns the cells reachable in one step from p.
func (g *Graph) Cells(p Position) []Position {
	cells := make([]Position, 0, len(g.succ[CellID(p)]))
	for _, id := range g.succ[CellID(p)] {
		if !id.IsGoal() {
			cells = append(cells, id.Position())
		}
	}
	return cells
}

// ShortestPath returns the nodes from p to goal, both ends included, or nil
// when the goal is unreachable. Ties resolve in edge order.
func (g *Graph) ShortestPath(p Position, goal NodeID) []NodeID {
	start := CellID(p)
	var parent [numNodes]NodeID
	var seen [numNodes]bool
	seen[start] = true
	queue := []NodeID{start}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node == goal {
			path := []NodeID{goal}
			for n := goal; n != start; {
				n = parent[n]
				path = append(path, n)
			}
			slices.Reverse(path)
			return path
		}
		for _, next := range g.succ[node] {
			if !seen[next] {
				seen[next] = true
				parent[next] = node
				queue = append(queue, next)
			}
		}
	}
	return nil
}

func (g *Graph) HasPath(p Position, goal NodeID) bool {
	return g.ShortestPath(p, goal) != nil
}

// Distances returns, for every node, the number of steps to goal (-1 if unreachable).
func (g *Graph) Distances(goal NodeID) [numNodes]int {
	var pred [numNodes][]NodeID
	for from := NodeID(0); from < numNodes; from++ {
		for _, to := range g.succ[from] {
			pred[to] = append(pred[to], from)
		}
	}

	var dist [numNodes]int
	for i := range dist {
		dist[i] = -1
	}
	dist[goal] = 0
	queue := []NodeID{goal}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, prev := range pred[node] {
			if dist[prev] < 0 {
				dist[prev] = dist[node] + 1
				queue = append(queue, prev)
			}
		}
	}
	return dist
}
