package statevector

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultDecimals = 3

// Backend executes a circuit and returns its final statevector.
// Implementations make a single call: no retry, no translation of failures.
type Backend interface {
	Name() string
	Statevector(ctx context.Context, c *Circuit) (*Result, error)
}

type Result struct {
	ID         string
	Backend    string
	Created    strfmt.DateTime
	Amplitudes []complex128
}

func newResult(backend string, amps []complex128) *Result {
	return &Result{
		ID:         uuid.NewString(),
		Backend:    backend,
		Created:    strfmt.DateTime(time.Now()),
		Amplitudes: amps,
	}
}

// Round returns a copy of amps with both parts rounded to the given decimals.
func Round(amps []complex128, decimals int) []complex128 {
	scale := math.Pow(10, float64(decimals))
	r := func(x float64) float64 {
		v := math.Round(x*scale) / scale
		if v == 0 {
			// drop negative zero
			return 0
		}
		return v
	}
	out := make([]complex128, len(amps))
	for i, a := range amps {
		out[i] = complex(r(real(a)), r(imag(a)))
	}
	return out
}

// Get runs c on b and rounds the amplitudes. decimals < 0 keeps full precision.
func Get(ctx context.Context, b Backend, c *Circuit, decimals int) (*Result, error) {
	if err := c.Validate(); err != nil {
		zap.L().Info(fmt.Sprintf("invalid circuit/reason:%s", err))
		return nil, err
	}
	res, err := b.Statevector(ctx, c)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to get statevector from %s/reason:%s", b.Name(), err))
		return nil, err
	}
	if err := checkAmplitudes(c, res.Amplitudes); err != nil {
		zap.L().Error(fmt.Sprintf("invalid statevector from %s/reason:%s", b.Name(), err))
		return nil, err
	}
	if decimals >= 0 {
		res.Amplitudes = Round(res.Amplitudes, decimals)
	}
	return res, nil
}

func checkAmplitudes(c *Circuit, amps []complex128) error {
	if want := 1 << c.NumQubits; len(amps) != want {
		return errors.Wrapf(ErrAmplitudeCount, "%d qubits need %d amplitudes, got %d", c.NumQubits, want, len(amps))
	}
	return nil
}
