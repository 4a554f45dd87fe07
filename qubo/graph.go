package qubo

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// Node is a problem variable carrying its linear bias.
type Node struct {
	id    int64
	Label string
	Bias  float64
}

func (n Node) ID() int64     { return n.id }
func (n Node) DOTID() string { return n.Label }
func (n Node) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "bias", Value: FormatValue(n.Bias)}}
}

// Edge is a quadratic coupling between two variables.
type Edge struct {
	F, T Node
	Bias float64
}

func (e Edge) From() graph.Node         { return e.F }
func (e Edge) To() graph.Node           { return e.T }
func (e Edge) ReversedEdge() graph.Edge { return Edge{F: e.T, T: e.F, Bias: e.Bias} }
func (e Edge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "bias", Value: FormatValue(e.Bias)}}
}

// NewGraph returns the undirected binary-quadratic-model view of p.
// Linear terms become node biases. Both orientations of a cross-pair are
// summed into one edge bias.
func NewGraph(p Problem) (*simple.UndirectedGraph, error) {
	if len(p) == 0 {
		return nil, ErrEmptyProblem
	}
	labels := p.Variables()
	nodes := make(map[string]Node, len(labels))
	for i, l := range labels {
		nodes[l] = Node{id: int64(i), Label: l, Bias: p[Pair{A: l, B: l}]}
	}
	couplings := make(map[[2]string]float64)
	for k, v := range p {
		if k.IsLinear() {
			continue
		}
		key := [2]string{k.A, k.B}
		if k.B < k.A {
			key = [2]string{k.B, k.A}
		}
		couplings[key] += v
	}

	g := simple.NewUndirectedGraph()
	for _, l := range labels {
		g.AddNode(nodes[l])
	}
	for key, bias := range couplings {
		g.SetEdge(Edge{F: nodes[key[0]], T: nodes[key[1]], Bias: bias})
	}
	zap.L().Debug(fmt.Sprintf("graph has %d nodes and %d edges", len(labels), len(couplings)))
	return g, nil
}

// MarshalDOT renders the graph of p in Graphviz DOT.
func MarshalDOT(p Problem, name string) ([]byte, error) {
	g, err := NewGraph(p)
	if err != nil {
		return nil, err
	}
	b, err := dot.Marshal(g, name, "", "  ")
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to marshal graph/reason:%s", err))
		return nil, err
	}
	return b, nil
}
