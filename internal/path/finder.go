// Package path computes walking routes across the board. Routes only drive
// animation; move legality is decided by the battle before a route is asked for.
package path

import (
	"container/heap"

	"github.com/samdwyer/gridtactics/internal/grid"
)

// Finder computes 4-connected routes with A*.
type Finder struct {
	grid    grid.Grid
	blocked func(grid.Cell) bool
}

// NewFinder creates a finder for the board. blocked may be nil; the start
// and goal cells are never treated as blocked.
func NewFinder(g grid.Grid, blocked func(grid.Cell) bool) *Finder {
	return &Finder{grid: g, blocked: blocked}
}

// Route returns the waypoints from `from` to `to`, excluding `from` and
// ending with `to`. When every route is blocked it falls back to an
// L-shaped walk, columns first.
func (f *Finder) Route(from, to grid.Cell) []grid.Cell {
	if from == to {
		return []grid.Cell{}
	}
	if route := f.astar(from, to); route != nil {
		return route
	}
	return LRoute(from, to)
}

var steps = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func (f *Finder) passable(c, from, to grid.Cell) bool {
	if !f.grid.InBounds(c) {
		return false
	}
	if c == from || c == to || f.blocked == nil {
		return true
	}
	return !f.blocked(c)
}

func (f *Finder) astar(from, to grid.Cell) []grid.Cell {
	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &node{cell: from, priority: from.Manhattan(to)})

	cameFrom := make(map[grid.Cell]grid.Cell)
	costSoFar := map[grid.Cell]int{from: 0}
	seq := 0

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*node)
		if current.cell == to {
			return reconstruct(cameFrom, from, to)
		}
		for _, s := range steps {
			next := current.cell.Add(s[0], s[1])
			if !f.passable(next, from, to) {
				continue
			}
			newCost := costSoFar[current.cell] + 1
			if cost, seen := costSoFar[next]; !seen || newCost < cost {
				costSoFar[next] = newCost
				cameFrom[next] = current.cell
				seq++
				heap.Push(pq, &node{cell: next, priority: newCost + next.Manhattan(to), seq: seq})
			}
		}
	}
	return nil
}

func reconstruct(cameFrom map[grid.Cell]grid.Cell, from, to grid.Cell) []grid.Cell {
	route := []grid.Cell{}
	for c := to; c != from; c = cameFrom[c] {
		route = append(route, c)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route
}

// LRoute walks along the row to the target column, then along the column.
func LRoute(from, to grid.Cell) []grid.Cell {
	route := []grid.Cell{}
	c := from
	for c.Col != to.Col {
		c = c.Add(sign(to.Col-c.Col), 0)
		route = append(route, c)
	}
	for c.Row != to.Row {
		c = c.Add(0, sign(to.Row-c.Row))
		route = append(route, c)
	}
	return route
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

type node struct {
	cell     grid.Cell
	priority int
	seq      int
}

// priorityQueue orders nodes by priority, then by insertion order.
type priorityQueue []*node

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}
func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(*node))
}
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
