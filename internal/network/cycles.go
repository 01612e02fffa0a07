package network

import "sort"

// simpleCycles enumerates every simple cycle in the network using
// Johnson's algorithm over Tarjan strongly connected components.
// Cycle paths start at their smallest member and follow edge direction;
// enumeration order is deterministic (ascending start node, ascending
// successors). Self-loops cannot occur; the builder rejects
// self-dependencies before an edge is added.
func (n *Network) simpleCycles() [][]int {
	remaining := make(map[int]bool, len(n.ids))
	for _, id := range n.ids {
		remaining[id] = true
	}

	var cycles [][]int
	for len(remaining) > 0 {
		scc := n.leastSCC(remaining)
		if scc == nil {
			break
		}
		start := scc[0]
		finder := &circuitFinder{
			net:       n,
			scope:     toSet(scc),
			start:     start,
			blocked:   make(map[int]bool),
			blockedBy: make(map[int]map[int]bool),
		}
		finder.circuit(start)
		cycles = append(cycles, finder.cycles...)
		delete(remaining, start)
	}
	return cycles
}

func toSet(ids []int) map[int]bool {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// leastSCC returns the strongly connected component (size > 1) with the
// smallest member among the remaining nodes, sorted ascending, or nil if
// the remaining subgraph is acyclic.
func (n *Network) leastSCC(remaining map[int]bool) []int {
	var best []int
	for _, scc := range n.stronglyConnected(remaining) {
		if len(scc) < 2 {
			continue
		}
		sort.Ints(scc)
		if best == nil || scc[0] < best[0] {
			best = scc
		}
	}
	return best
}

// stronglyConnected runs Tarjan's algorithm on the subgraph induced by the
// given node set.
func (n *Network) stronglyConnected(scope map[int]bool) [][]int {
	index := make(map[int]int, len(scope))
	lowlink := make(map[int]int, len(scope))
	onStack := make(map[int]bool, len(scope))
	var stack []int
	var sccs [][]int
	next := 0

	var strongconnect func(v int)
	strongconnect = func(v int) {
		index[v] = next
		lowlink[v] = next
		next++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range n.scopedSuccessors(v, scope) {
			if _, seen := index[w]; !seen {
				strongconnect(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			} else if onStack[w] && index[w] < lowlink[v] {
				lowlink[v] = index[w]
			}
		}

		if lowlink[v] == index[v] {
			var scc []int
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	ids := make([]int, 0, len(scope))
	for id := range scope {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if _, seen := index[id]; !seen {
			strongconnect(id)
		}
	}
	return sccs
}

// scopedSuccessors returns the successor IDs of v restricted to the scope,
// ascending and deduplicated (parallel edges count once for reachability).
func (n *Network) scopedSuccessors(v int, scope map[int]bool) []int {
	seen := make(map[int]bool)
	var succs []int
	for _, e := range n.Successors(v) {
		if scope[e.Succ] && !seen[e.Succ] {
			seen[e.Succ] = true
			succs = append(succs, e.Succ)
		}
	}
	sort.Ints(succs)
	return succs
}

// circuitFinder holds the state of Johnson's circuit search rooted at one
// start node inside one strongly connected component.
type circuitFinder struct {
	net       *Network
	scope     map[int]bool
	start     int
	blocked   map[int]bool
	blockedBy map[int]map[int]bool
	stack     []int
	cycles    [][]int
}

func (f *circuitFinder) circuit(v int) bool {
	found := false
	f.stack = append(f.stack, v)
	f.blocked[v] = true

	for _, w := range f.net.scopedSuccessors(v, f.scope) {
		if w == f.start {
			cycle := make([]int, len(f.stack))
			copy(cycle, f.stack)
			f.cycles = append(f.cycles, cycle)
			found = true
		} else if !f.blocked[w] {
			if f.circuit(w) {
				found = true
			}
		}
	}

	if found {
		f.unblock(v)
	} else {
		for _, w := range f.net.scopedSuccessors(v, f.scope) {
			if f.blockedBy[w] == nil {
				f.blockedBy[w] = make(map[int]bool)
			}
			f.blockedBy[w][v] = true
		}
	}

	f.stack = f.stack[:len(f.stack)-1]
	return found
}

func (f *circuitFinder) unblock(v int) {
	f.blocked[v] = false
	for w := range f.blockedBy[v] {
		delete(f.blockedBy[v], w)
		if f.blocked[w] {
			f.unblock(w)
		}
	}
}
