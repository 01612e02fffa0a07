// Package network builds and validates the directed activity graph a
// schedule's dependency notation describes.
package network

import (
	"sort"

	"github.com/okabe/slipway/internal/domain"
)

// Edge is a typed, lagged precedence constraint between two activities.
type Edge struct {
	Pred int                   // Predecessor activity ID
	Succ int                   // Successor activity ID
	Type domain.DependencyType // Precedence relation
	Lag  int                   // Signed lag in working days
}

// Network is the directed graph of activities connected by dependency
// edges. Adjacency lists are keyed by a stable integer node index; the
// public API works with activity IDs. A Network may be partial (built from
// invalid input) so validation findings can reference concrete edges.
type Network struct {
	ids   []int       // Node IDs in registration order
	index map[int]int // Activity ID -> node index
	out   [][]int     // Outgoing edge indexes per node
	in    [][]int     // Incoming edge indexes per node
	edges []Edge
}

// New returns an empty network.
func New() *Network {
	return &Network{index: make(map[int]int)}
}

// Len returns the number of registered activities.
func (n *Network) Len() int {
	return len(n.ids)
}

// IDs returns the activity IDs in ascending order.
func (n *Network) IDs() []int {
	ids := make([]int, len(n.ids))
	copy(ids, n.ids)
	sort.Ints(ids)
	return ids
}

// Has returns true if the activity is registered as a node.
func (n *Network) Has(id int) bool {
	_, ok := n.index[id]
	return ok
}

// Predecessors returns the incoming edges of an activity.
func (n *Network) Predecessors(id int) []Edge {
	idx, ok := n.index[id]
	if !ok {
		return nil
	}
	return n.edgeList(n.in[idx])
}

// Successors returns the outgoing edges of an activity.
func (n *Network) Successors(id int) []Edge {
	idx, ok := n.index[id]
	if !ok {
		return nil
	}
	return n.edgeList(n.out[idx])
}

// Edges returns all edges in insertion order.
func (n *Network) Edges() []Edge {
	edges := make([]Edge, len(n.edges))
	copy(edges, n.edges)
	return edges
}

func (n *Network) edgeList(refs []int) []Edge {
	edges := make([]Edge, len(refs))
	for i, ref := range refs {
		edges[i] = n.edges[ref]
	}
	return edges
}

// addNode registers an activity. Re-registering an existing ID is a no-op.
func (n *Network) addNode(id int) {
	if _, ok := n.index[id]; ok {
		return
	}
	n.index[id] = len(n.ids)
	n.ids = append(n.ids, id)
	n.out = append(n.out, nil)
	n.in = append(n.in, nil)
}

// addEdge records a precedence constraint. Both endpoints must already be
// registered.
func (n *Network) addEdge(e Edge) {
	ref := len(n.edges)
	n.edges = append(n.edges, e)
	n.out[n.index[e.Pred]] = append(n.out[n.index[e.Pred]], ref)
	n.in[n.index[e.Succ]] = append(n.in[n.index[e.Succ]], ref)
}

// TopoOrder returns the activity IDs in topological order using Kahn's
// algorithm, deterministic by ascending ID among ready nodes. It returns
// domain.ErrCyclicGraph if the network is not acyclic.
func (n *Network) TopoOrder() ([]int, error) {
	inDegree := make(map[int]int, len(n.ids))
	for _, id := range n.ids {
		inDegree[id] = len(n.in[n.index[id]])
	}

	var queue []int
	for _, id := range n.ids {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}
	sort.Ints(queue)

	order := make([]int, 0, len(n.ids))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)

		var ready []int
		for _, e := range n.Successors(id) {
			inDegree[e.Succ]--
			if inDegree[e.Succ] == 0 {
				ready = append(ready, e.Succ)
			}
		}
		sort.Ints(ready)
		queue = append(queue, ready...)
	}

	if len(order) != len(n.ids) {
		return nil, domain.ErrCyclicGraph
	}
	return order, nil
}
