package statevector

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-faster/errors"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrUnknownGate     = errors.New("statevector: unknown gate")
	ErrQubitOutOfRange = errors.New("statevector: qubit out of range")
	ErrNotPowerOfTwo   = errors.New("statevector: length is not a power of two")
	// ErrAmplitudeCount is returned when a backend answers with a statevector
	// that does not have 2^NumQubits amplitudes.
	ErrAmplitudeCount = errors.New("statevector: amplitude count does not match qubits")
)

// MaxQubits bounds the local simulator's memory use (2^MaxQubits amplitudes).
const MaxQubits = 24

// Gate is one operation. Qubits lists control(s) first, then the target.
type Gate struct {
	Name   string    `json:"name"`
	Qubits []int     `json:"qubits"`
	Params []float64 `json:"params,omitempty"`
}

// Circuit is the description passed through to an execution backend.
type Circuit struct {
	NumQubits int    `json:"num_qubits"`
	Gates     []Gate `json:"gates"`
}

// gateArity holds the number of qubits and parameters each gate takes.
var gateArity = map[string][2]int{
	"id":   {1, 0},
	"h":    {1, 0},
	"x":    {1, 0},
	"y":    {1, 0},
	"z":    {1, 0},
	"s":    {1, 0},
	"sdg":  {1, 0},
	"t":    {1, 0},
	"tdg":  {1, 0},
	"rx":   {1, 1},
	"ry":   {1, 1},
	"rz":   {1, 1},
	"p":    {1, 1},
	"cx":   {2, 0},
	"cz":   {2, 0},
	"swap": {2, 0},
}

// Validate checks gate names, arity and qubit indices.
func (c *Circuit) Validate() error {
	if c.NumQubits <= 0 || c.NumQubits > MaxQubits {
		return errors.Wrapf(ErrQubitOutOfRange, "num_qubits %d not in 1..%d", c.NumQubits, MaxQubits)
	}
	for i, g := range c.Gates {
		arity, ok := gateArity[strings.ToLower(g.Name)]
		if !ok {
			return errors.Wrapf(ErrUnknownGate, "gate %d %q", i, g.Name)
		}
		if len(g.Qubits) != arity[0] {
			return fmt.Errorf("gate %d %s takes %d qubits, got %d", i, g.Name, arity[0], len(g.Qubits))
		}
		if len(g.Params) < arity[1] {
			return fmt.Errorf("gate %d %s takes %d params, got %d", i, g.Name, arity[1], len(g.Params))
		}
		for _, q := range g.Qubits {
			if q < 0 || q >= c.NumQubits {
				return errors.Wrapf(ErrQubitOutOfRange, "gate %d %s qubit %d", i, g.Name, q)
			}
		}
		if arity[0] == 2 && g.Qubits[0] == g.Qubits[1] {
			return fmt.Errorf("gate %d %s uses qubit %d twice", i, g.Name, g.Qubits[0])
		}
	}
	return nil
}

// LoadCircuit reads a JSON circuit description.
func LoadCircuit(path string) (*Circuit, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to read circuit file/path:%s/reason:%s", path, err))
		return nil, err
	}
	c := &Circuit{}
	if err := jsonIter.Unmarshal(blob, c); err != nil {
		return nil, errors.Wrap(err, "decode circuit")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
