package statevector

import (
	"context"
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"go.uber.org/zap"
)

const LocalBackendName = "statevector_simulator"

// LocalBackend simulates circuits in process.
// Qubit q is bit q of the amplitude index, so amplitude i belongs to the
// basis state whose bitstring is i written most significant qubit first.
type LocalBackend struct{}

func NewLocalBackend() *LocalBackend {
	return &LocalBackend{}
}

func (l *LocalBackend) Name() string {
	return LocalBackendName
}

func (l *LocalBackend) Statevector(ctx context.Context, c *Circuit) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s := newState(c.NumQubits)
	for i, g := range c.Gates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.apply(g); err != nil {
			zap.L().Error(fmt.Sprintf("failed to apply gate %d/reason:%s", i, err))
			return nil, err
		}
	}
	zap.L().Debug(fmt.Sprintf("[Local] simulated %d gates on %d qubits", len(c.Gates), c.NumQubits))
	return newResult(l.Name(), s.amps), nil
}

type state struct {
	amps []complex128
}

func newState(n int) *state {
	amps := make([]complex128, 1<<n)
	amps[0] = 1
	return &state{amps: amps}
}

type unitary [2][2]complex128

var (
	invSqrt2 = complex(1/math.Sqrt2, 0)
	gateH    = unitary{{invSqrt2, invSqrt2}, {invSqrt2, -invSqrt2}}
	gateX    = unitary{{0, 1}, {1, 0}}
	gateY    = unitary{{0, -1i}, {1i, 0}}
	gateZ    = unitary{{1, 0}, {0, -1}}
	gateI    = unitary{{1, 0}, {0, 1}}
)

func phase(theta float64) unitary {
	return unitary{{1, 0}, {0, cmplx.Exp(complex(0, theta))}}
}

func rx(theta float64) unitary {
	c, s := complex(math.Cos(theta/2), 0), complex(0, -math.Sin(theta/2))
	return unitary{{c, s}, {s, c}}
}

func ry(theta float64) unitary {
	c, s := complex(math.Cos(theta/2), 0), complex(math.Sin(theta/2), 0)
	return unitary{{c, -s}, {s, c}}
}

func rz(theta float64) unitary {
	return unitary{
		{cmplx.Exp(complex(0, -theta/2)), 0},
		{0, cmplx.Exp(complex(0, theta/2))},
	}
}

func (s *state) apply(g Gate) error {
	switch strings.ToLower(g.Name) {
	case "id":
		s.apply1(g.Qubits[0], gateI)
	case "h":
		s.apply1(g.Qubits[0], gateH)
	case "x":
		s.apply1(g.Qubits[0], gateX)
	case "y":
		s.apply1(g.Qubits[0], gateY)
	case "z":
		s.apply1(g.Qubits[0], gateZ)
	case "s":
		s.apply1(g.Qubits[0], phase(math.Pi/2))
	case "sdg":
		s.apply1(g.Qubits[0], phase(-math.Pi/2))
	case "t":
		s.apply1(g.Qubits[0], phase(math.Pi/4))
	case "tdg":
		s.apply1(g.Qubits[0], phase(-math.Pi/4))
	case "rx":
		s.apply1(g.Qubits[0], rx(g.Params[0]))
	case "ry":
		s.apply1(g.Qubits[0], ry(g.Params[0]))
	case "rz":
		s.apply1(g.Qubits[0], rz(g.Params[0]))
	case "p":
		s.apply1(g.Qubits[0], phase(g.Params[0]))
	case "cx":
		s.applyControlled(g.Qubits[0], g.Qubits[1], gateX)
	case "cz":
		s.applyControlled(g.Qubits[0], g.Qubits[1], gateZ)
	case "swap":
		s.swap(g.Qubits[0], g.Qubits[1])
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGate, g.Name)
	}
	return nil
}

func (s *state) apply1(q int, u unitary) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit != 0 {
			continue
		}
		j := i | bit
		a0, a1 := s.amps[i], s.amps[j]
		s.amps[i] = u[0][0]*a0 + u[0][1]*a1
		s.amps[j] = u[1][0]*a0 + u[1][1]*a1
	}
}

func (s *state) applyControlled(control, target int, u unitary) {
	cbit, tbit := 1<<control, 1<<target
	for i := range s.amps {
		if i&cbit == 0 || i&tbit != 0 {
			continue
		}
		j := i | tbit
		a0, a1 := s.amps[i], s.amps[j]
		s.amps[i] = u[0][0]*a0 + u[0][1]*a1
		s.amps[j] = u[1][0]*a0 + u[1][1]*a1
	}
}

func (s *state) swap(a, b int) {
	abit, bbit := 1<<a, 1<<b
	for i := range s.amps {
		if i&abit != 0 && i&bbit == 0 {
			j := (i &^ abit) | bbit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}
