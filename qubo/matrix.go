package qubo

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/go-faster/errors"
	"github.com/tidwall/pretty"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// Matrix is the dense form of a Problem.
// Labels gives the meaning of rows and columns; Data alone is not self-describing.
type Matrix struct {
	Labels []string
	Data   *mat.Dense

	index map[string]int
}

// Build converts p into a dense square matrix.
// Cell (i, j) holds the coefficient of (Labels[i], Labels[j]) or zero.
// Nothing is symmetrized: (a,b) and (b,a) land in their own cells.
func Build(p Problem) (*Matrix, error) {
	if len(p) == 0 {
		return nil, ErrEmptyProblem
	}
	labels := p.Variables()
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}
	n := len(labels)
	data := mat.NewDense(n, n, nil)
	for k, v := range p {
		data.Set(index[k.A], index[k.B], v)
	}
	zap.L().Debug(fmt.Sprintf("built %dx%d matrix from %d terms", n, n, len(p)))
	return &Matrix{
		Labels: labels,
		Data:   data,
		index:  index,
	}, nil
}

// BuildTerms validates terms and builds the matrix.
// Duplicate pairs are resolved last-write-wins.
func BuildTerms(terms []Term) (*Matrix, error) {
	p, err := FromTerms(terms)
	if err != nil {
		return nil, err
	}
	return Build(p)
}

func (m *Matrix) Dims() int {
	return len(m.Labels)
}

// Index returns the row/column of label.
func (m *Matrix) Index(label string) (int, error) {
	i, ok := m.index[label]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownLabel, "label %q", label)
	}
	return i, nil
}

// At returns the coefficient stored for (a, b).
func (m *Matrix) At(a, b string) (float64, error) {
	i, err := m.Index(a)
	if err != nil {
		return 0, err
	}
	j, err := m.Index(b)
	if err != nil {
		return 0, err
	}
	return m.Data.At(i, j), nil
}

// Rows returns a copy of the matrix as nested slices.
func (m *Matrix) Rows() [][]float64 {
	n := m.Dims()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = mat.Row(nil, i, m.Data)
	}
	return rows
}

// Extremes returns the smallest and largest coefficient.
func (m *Matrix) Extremes() (lo, hi float64) {
	return mat.Min(m.Data), mat.Max(m.Data)
}

// String renders the matrix as a labelled table.
func (m *Matrix) String() string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(w, "\t")
	for _, l := range m.Labels {
		fmt.Fprintf(w, "%s\t", l)
	}
	fmt.Fprintln(w)
	for i, row := range m.Rows() {
		fmt.Fprintf(w, "%s\t", m.Labels[i])
		for _, v := range row {
			fmt.Fprintf(w, "%s\t", FormatValue(v))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	return sb.String()
}

type matrixJSON struct {
	Labels []string    `json:"labels"`
	Matrix [][]float64 `json:"matrix"`
}

func (m *Matrix) MarshalJSON() ([]byte, error) {
	return jsonIter.Marshal(matrixJSON{Labels: m.Labels, Matrix: m.Rows()})
}

// ToJSON returns an indented JSON document of labels and rows.
func (m *Matrix) ToJSON() string {
	b, err := m.MarshalJSON()
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to marshal matrix/reason:%s", err))
		return ""
	}
	return string(pretty.Pretty(b))
}

// FormatValue prints integral coefficients without a fractional part.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
