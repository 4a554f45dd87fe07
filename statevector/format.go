package statevector

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

type Mode string

const (
	ModeRow Mode = "row"
	ModeCol Mode = "col"
)

// BasisLabels returns the n-bit basis labels in index order ("00", "01", ...).
func BasisLabels(n int) []string {
	if n == 0 {
		return []string{""}
	}
	labels := make([]string, 1<<n)
	for i := range labels {
		s := strconv.FormatInt(int64(i), 2)
		labels[i] = strings.Repeat("0", n-len(s)) + s
	}
	return labels
}

// Kets renders every non-zero amplitude as "<amp>|<bits>⟩".
func Kets(amps []complex128) ([]string, error) {
	if len(amps) == 0 || bits.OnesCount(uint(len(amps))) != 1 {
		return nil, errors.Wrapf(ErrNotPowerOfTwo, "%d amplitudes", len(amps))
	}
	n := bits.TrailingZeros(uint(len(amps)))
	labels := BasisLabels(n)
	kets := make([]string, 0, len(amps))
	for i, a := range amps {
		if a == 0 {
			continue
		}
		kets = append(kets, FormatAmplitude(a)+"|"+labels[i]+"⟩")
	}
	return kets, nil
}

// Format joins the kets with " + " in ModeRow or one per line in ModeCol.
func Format(amps []complex128, mode Mode) (string, error) {
	kets, err := Kets(amps)
	if err != nil {
		return "", err
	}
	switch mode {
	case ModeRow, "":
		return strings.Join(kets, " + "), nil
	case ModeCol:
		return strings.Join(kets, "\n"), nil
	default:
		return "", fmt.Errorf("unknown mode:%s", mode)
	}
}

// FormatAmplitude prints a complex amplitude as (re+imj).
func FormatAmplitude(a complex128) string {
	re := strconv.FormatFloat(real(a), 'g', -1, 64)
	im := strconv.FormatFloat(imag(a), 'g', -1, 64)
	if !math.Signbit(imag(a)) {
		im = "+" + im
	}
	return "(" + re + im + "j)"
}
