package statevector

import (
	"fmt"
	"math/bits"
	"math/rand/v2"

	"github.com/go-faster/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Counts maps a measured bitstring to the number of shots that produced it.
type Counts map[string]uint32

// Measure draws shots samples in the computational basis from the
// probabilities |amp|^2. The amplitudes need not be normalized.
func Measure(amps []complex128, shots int, src rand.Source) (Counts, error) {
	if len(amps) == 0 || bits.OnesCount(uint(len(amps))) != 1 {
		return nil, errors.Wrapf(ErrNotPowerOfTwo, "%d amplitudes", len(amps))
	}
	if shots <= 0 {
		return nil, fmt.Errorf("shots must be positive, got %d", shots)
	}
	weights := make([]float64, len(amps))
	total := 0.0
	for i, a := range amps {
		weights[i] = real(a)*real(a) + imag(a)*imag(a)
		total += weights[i]
	}
	if total == 0 {
		return nil, fmt.Errorf("statevector has zero norm")
	}
	labels := BasisLabels(bits.TrailingZeros(uint(len(amps))))
	dist := distuv.NewCategorical(weights, src)
	counts := Counts{}
	for i := 0; i < shots; i++ {
		counts[labels[int(dist.Rand())]]++
	}
	return counts, nil
}
