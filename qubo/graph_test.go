//go:build unit
// +build unit

package qubo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraph(t *testing.T) {
	p := Problem{
		{A: "x", B: "x"}: -1,
		{A: "x", B: "y"}: 2,
		{A: "y", B: "x"}: 0.5,
		{A: "y", B: "z"}: 1,
	}
	g, err := NewGraph(p)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Nodes().Len())

	// labels sort to x=0, y=1, z=2
	x := g.Node(0).(Node)
	assert.Equal(t, "x", x.Label)
	assert.Equal(t, -1.0, x.Bias)
	z := g.Node(2).(Node)
	assert.Zero(t, z.Bias)

	xy := g.EdgeBetween(0, 1).(Edge)
	assert.Equal(t, 2.5, xy.Bias)
	yx := g.EdgeBetween(1, 0).(Edge)
	assert.Equal(t, 2.5, yx.Bias)
	assert.Equal(t, "y", yx.F.Label)

	assert.Nil(t, g.EdgeBetween(0, 2))
}

func TestMarshalDOT(t *testing.T) {
	p := Problem{
		{A: "x", B: "x"}: -1,
		{A: "x", B: "y"}: 2,
	}
	b, err := MarshalDOT(p, "bqm")
	require.NoError(t, err)
	s := string(b)
	assert.Contains(t, s, "graph bqm {")
	assert.Contains(t, s, "bias=-1")
	assert.Contains(t, s, "bias=2")
	assert.Contains(t, s, "--")

	_, err = MarshalDOT(Problem{}, "empty")
	assert.ErrorIs(t, err, ErrEmptyProblem)
}
