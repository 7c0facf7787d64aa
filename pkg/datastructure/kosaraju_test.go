package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStronglyConnectedComponents(t *testing.T) {
	testCases := []struct {
		name          string
		nodes         []string
		edges         [][2]string
		wantCount     int
		wantLargest   int
		sameComponent [][2]string
		diffComponent [][2]string
	}{
		{
			name:          "one way chain",
			nodes:         []string{"a", "b", "c"},
			edges:         [][2]string{{"a", "b"}, {"b", "c"}},
			wantCount:     3,
			wantLargest:   1,
			diffComponent: [][2]string{{"a", "b"}, {"b", "c"}},
		},
		{
			name:          "two way path plus a one way spur",
			nodes:         []string{"a", "b", "c", "d"},
			edges:         [][2]string{{"a", "b"}, {"b", "a"}, {"b", "c"}, {"c", "b"}, {"c", "d"}},
			wantCount:     2,
			wantLargest:   3,
			sameComponent: [][2]string{{"a", "c"}},
			diffComponent: [][2]string{{"c", "d"}},
		},
		{
			name:          "two cycles joined one way",
			nodes:         []string{"a", "b", "c", "d", "e"},
			edges:         [][2]string{{"a", "b"}, {"b", "a"}, {"b", "c"}, {"c", "d"}, {"d", "e"}, {"e", "c"}},
			wantCount:     2,
			wantLargest:   3,
			sameComponent: [][2]string{{"a", "b"}, {"c", "e"}},
			diffComponent: [][2]string{{"b", "c"}},
		},
		{
			name:        "isolated nodes",
			nodes:       []string{"a", "b"},
			wantCount:   2,
			wantLargest: 1,
		},
		{
			name:        "empty",
			wantCount:   0,
			wantLargest: 0,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			nodes := make([]Node, len(tt.nodes))
			for i, id := range tt.nodes {
				nodes[i] = NewNode(id, float64(i), 0, 0)
			}
			edges := make([]Edge, len(tt.edges))
			for i, e := range tt.edges {
				edges[i] = NewEdge(e[0], e[1], 10, 350, 5, true, 0)
			}
			g, err := NewGraph(nodes, edges)
			require.NoError(t, err)

			sccs, count := g.StronglyConnectedComponents()
			assert.Equal(t, tt.wantCount, count)
			assert.Equal(t, tt.wantLargest, LargestComponentSize(sccs, count))

			comp := func(id string) Index {
				u, ok := g.GetNodeIndex(id)
				require.True(t, ok)
				return sccs[u]
			}
			for _, p := range tt.sameComponent {
				assert.Equal(t, comp(p[0]), comp(p[1]), "%s and %s", p[0], p[1])
			}
			for _, p := range tt.diffComponent {
				assert.NotEqual(t, comp(p[0]), comp(p[1]), "%s and %s", p[0], p[1])
			}
		})
	}
}
