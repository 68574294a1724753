// Shortest-path queries over the coupling graph.
//
// Edges are unweighted, so breadth-first search finds a minimum-hop
// path. The search visits neighbors in ascending ID order unless a
// tie-break generator is supplied, in which case the neighbor order is
// permuted per dequeue; either way the result is fully determined by
// the (graph, endpoints, seed) triple.
package coupling

import "fmt"

// ShortestPath returns a minimum-hop path from 'from' to 'to' as an
// ordered sequence of physical qubit IDs, both endpoints inclusive.
//
// Errors:
//   - ErrQubitNotFound if either endpoint is absent from the graph.
//   - ErrNoPath (wrapped with both endpoint IDs) if the endpoints lie
//     in disconnected components.
//
// Complexity: O(V + E) time, O(V) space.
func (g *Graph) ShortestPath(from, to int, opts ...PathOption) ([]int, error) {
	var o PathOptions
	for _, opt := range opts {
		opt(&o)
	}

	if !g.Has(from) {
		return nil, fmt.Errorf("%w: %d", ErrQubitNotFound, from)
	}
	if !g.Has(to) {
		return nil, fmt.Errorf("%w: %d", ErrQubitNotFound, to)
	}
	if from == to {
		return []int{from}, nil
	}

	// Standard BFS with a parent map for path reconstruction.
	parent := make(map[int]int, len(g.qubits))
	visited := make(map[int]bool, len(g.qubits))
	visited[from] = true
	queue := []int{from}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		nbrs, err := g.Neighbors(cur)
		if err != nil {
			return nil, err
		}
		if o.TieBreak != nil {
			// Permute the exploration order; with several equally short
			// paths the first parent recorded wins, so the permutation is
			// exactly the seed's tie-break.
			o.TieBreak.Shuffle(len(nbrs), func(i, j int) {
				nbrs[i], nbrs[j] = nbrs[j], nbrs[i]
			})
		}
		for _, nbr := range nbrs {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			parent[nbr] = cur
			if nbr == to {
				return rebuildPath(parent, from, to), nil
			}
			queue = append(queue, nbr)
		}
	}

	return nil, fmt.Errorf("%w: %d and %d", ErrNoPath, from, to)
}

// Distance returns the minimum number of couplings between from and to.
// Adjacent qubits have distance 1; a qubit has distance 0 to itself.
func (g *Graph) Distance(from, to int) (int, error) {
	path, err := g.ShortestPath(from, to)
	if err != nil {
		return 0, err
	}

	return len(path) - 1, nil
}

// rebuildPath walks the parent map backwards from dest to start and
// reverses the result into start → dest order.
func rebuildPath(parent map[int]int, start, dest int) []int {
	path := []int{dest}
	for cur := dest; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
