package dijkstra

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// handResult wires a Result around nodes built outside Run.
func handResult(source string, nodes ...*Node) *Result {
	res := &Result{source: source, nodes: make(map[string]*Node, len(nodes))}
	for _, n := range nodes {
		res.order = append(res.order, n.vertex)
		res.nodes[n.vertex] = n
	}

	return res
}

func TestResult_PathToCycleGuard(t *testing.T) {
	// X and Y point at each other; the walk must stop after |V| steps.
	x, y := NewNode("X"), NewNode("Y")
	x.dist, y.dist = 3, 2
	x.prev, y.prev = y, x

	res := handResult("X", x, y)
	_, err := res.PathTo("X")
	require.ErrorIs(t, err, ErrPathCycle)
	_, err = res.PathTo("Y")
	require.ErrorIs(t, err, ErrPathCycle)
}

func TestResult_PathToForeignRoot(t *testing.T) {
	// S ← A ← B would be fine, but the chain from D stops at C, which is not
	// the source.
	s, a, b := NewNode("S"), NewNode("A"), NewNode("B")
	c, d := NewNode("C"), NewNode("D")
	s.dist, a.dist, b.dist = 0, 1, 2
	a.prev, b.prev = s, a
	c.dist, d.dist = 5, 6
	d.prev = c

	res := handResult("S", s, a, b, c, d)

	p, err := res.PathTo("B")
	require.NoError(t, err)
	require.Equal(t, []string{"S", "A", "B"}, p.Vertices)

	_, err = res.PathTo("D")
	require.ErrorIs(t, err, ErrPathCycle)
	_, err = res.PathBetween("S", "C")
	require.ErrorIs(t, err, ErrPathCycle)
}
