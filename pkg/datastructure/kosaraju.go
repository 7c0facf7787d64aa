package datastructure

import (
	"github.com/lintang-b-s/greenroute/pkg/util"
)

// StronglyConnectedComponents. runs kosaraju's algorithm on the directed campus graph.
// returns the component id of every node and the number of components. two nodes can reach each other
// in both directions iff they share a component id.
func (g *Graph) StronglyConnectedComponents() ([]Index, int) {
	n := Index(g.NumberOfVertices())

	order := make([]Index, 0, n)
	visited := make([]bool, n)
	for v := Index(0); v < n; v++ {
		if !visited[v] {
			g.dfs(v, &order, visited)
		}
	}

	order = util.ReverseG[Index](order)

	// tails of the in-edges of every node
	inTails := make([][]Index, n)
	for e := range g.edges {
		inTails[g.heads[e]] = append(inTails[g.heads[e]], g.tails[e])
	}

	// reset visited
	visited = make([]bool, n)
	sccs := make([]Index, n)
	numComponents := 0

	for _, v := range order {
		if !visited[v] {
			component := make([]Index, 0, 10)
			g.reverseDfs(v, &component, visited, inTails)
			for _, u := range component {
				sccs[u] = Index(numComponents)
			}
			numComponents++
		}
	}
	return sccs, numComponents
}

func (g *Graph) dfs(v Index, output *[]Index, visited []bool) {
	visited[v] = true
	g.ForOutEdgesOf(v, func(e *Edge, eId, head Index) {
		if !visited[head] {
			g.dfs(head, output, visited)
		}
	})
	*output = append(*output, v)
}

func (g *Graph) reverseDfs(v Index, output *[]Index, visited []bool, inTails [][]Index) {
	visited[v] = true
	for _, tail := range inTails[v] {
		if !visited[tail] {
			g.reverseDfs(tail, output, visited, inTails)
		}
	}
	*output = append(*output, v)
}

// LargestComponentSize. number of nodes in the biggest strongly connected component.
func LargestComponentSize(sccs []Index, numComponents int) int {
	sizes := make([]int, numComponents)
	largest := 0
	for _, c := range sccs {
		sizes[c]++
		if sizes[c] > largest {
			largest = sizes[c]
		}
	}
	return largest
}
