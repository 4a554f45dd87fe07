package qubo

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// MaxLandscapeVariables bounds the exhaustive enumeration in Landscape.
const MaxLandscapeVariables = 16

// Sample assigns a binary value to each variable. Missing variables count as 0.
type Sample map[string]int

// Energy returns sum(Q[a,b] * x_a * x_b) over every term of p.
func (p Problem) Energy(s Sample) float64 {
	e := 0.0
	for k, v := range p {
		if s[k.A] != 0 && s[k.B] != 0 {
			e += v
		}
	}
	return e
}

type LandscapePoint struct {
	Bits   string  `json:"bits"`
	Energy float64 `json:"energy"`
}

// Sample maps the bits of pt back onto labels, which must be the sorted
// variables the landscape was computed over.
func (pt LandscapePoint) Sample(labels []string) Sample {
	s := make(Sample, len(labels))
	for i, l := range labels {
		if i < len(pt.Bits) && pt.Bits[i] == '1' {
			s[l] = 1
		} else {
			s[l] = 0
		}
	}
	return s
}

// Landscape evaluates every binary assignment of the problem's variables.
// Points are ordered by bitstring; the first sorted label is the leftmost bit.
func Landscape(p Problem) ([]LandscapePoint, error) {
	if len(p) == 0 {
		return nil, ErrEmptyProblem
	}
	labels := p.Variables()
	n := len(labels)
	if n > MaxLandscapeVariables {
		return nil, errors.Wrapf(ErrTooManyVariables, "%d variables, limit is %d", n, MaxLandscapeVariables)
	}
	total := 1 << n
	points := make([]LandscapePoint, 0, total)
	s := make(Sample, n)
	var bits strings.Builder
	for x := 0; x < total; x++ {
		bits.Reset()
		for i, l := range labels {
			b := (x >> (n - 1 - i)) & 1
			s[l] = b
			bits.WriteByte(byte('0' + b))
		}
		points = append(points, LandscapePoint{Bits: bits.String(), Energy: p.Energy(s)})
	}
	zap.L().Debug(fmt.Sprintf("evaluated %d samples over %d variables", total, n))
	return points, nil
}

// Minima returns the points sharing the lowest energy, in input order.
func Minima(points []LandscapePoint) []LandscapePoint {
	lowest := math.Inf(1)
	for _, pt := range points {
		if pt.Energy < lowest {
			lowest = pt.Energy
		}
	}
	var out []LandscapePoint
	for _, pt := range points {
		if pt.Energy == lowest {
			out = append(out, pt)
		}
	}
	return out
}
