package qubo

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-faster/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/oqtopus-team/qdeck/common"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

// Pair is an ordered pair of variable identifiers.
// A self-pair (A == B) holds a linear bias, a cross-pair a quadratic coupling.
type Pair struct {
	A string
	B string
}

func (p Pair) IsLinear() bool {
	return p.A == p.B
}

func (p Pair) String() string {
	return fmt.Sprintf("(%s,%s)", p.A, p.B)
}

// Problem maps variable pairs to coefficients.
// (a,b) and (b,a) are distinct keys and are never merged.
type Problem map[Pair]float64

// Variables returns the deduplicated, sorted identifiers used by any key.
func (p Problem) Variables() []string {
	seen := make(map[string]struct{}, 2*len(p))
	for k := range p {
		seen[k.A] = struct{}{}
		seen[k.B] = struct{}{}
	}
	labels := make([]string, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// Terms returns the problem as terms sorted by pair.
func (p Problem) Terms() []Term {
	keys := make([]Pair, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].A != keys[j].A {
			return keys[i].A < keys[j].A
		}
		return keys[i].B < keys[j].B
	})
	terms := make([]Term, 0, len(keys))
	for _, k := range keys {
		terms = append(terms, Term{Vars: []string{k.A, k.B}, Value: p[k]})
	}
	return terms
}

// Term is the decoded form of one problem entry.
type Term struct {
	Vars  []string `json:"vars" toml:"vars"`
	Value float64  `json:"value" toml:"value"`
}

func (t Term) validate() error {
	if len(t.Vars) != 2 {
		return errors.Wrapf(ErrInvalidKeyShape, "vars %v have %d entries", t.Vars, len(t.Vars))
	}
	return nil
}

// FromTerms validates every term and folds them into a Problem.
// All malformed terms are reported together. Later duplicates overwrite earlier ones.
func FromTerms(terms []Term) (Problem, error) {
	if len(terms) == 0 {
		return nil, ErrEmptyProblem
	}
	var errs error
	for i, t := range terms {
		if err := t.validate(); err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "term %d", i))
		}
	}
	if errs != nil {
		zap.L().Debug(fmt.Sprintf("rejected terms/reason:%s", errs))
		return nil, errs
	}
	p := make(Problem, len(terms))
	for _, t := range terms {
		p[Pair{A: t.Vars[0], B: t.Vars[1]}] = t.Value
	}
	return p, nil
}

type problemFile struct {
	Terms []Term `toml:"term"`
}

// DecodeTerms decodes terms from a JSON array or a TOML document with [[term]] tables.
func DecodeTerms(blob []byte, format string) ([]Term, error) {
	switch strings.ToLower(format) {
	case "json":
		var terms []Term
		if err := jsonIter.Unmarshal(blob, &terms); err != nil {
			return nil, errors.Wrap(err, "decode json terms")
		}
		return terms, nil
	case "toml":
		var f problemFile
		if _, err := toml.Decode(string(blob), &f); err != nil {
			return nil, errors.Wrap(err, "decode toml terms")
		}
		return f.Terms, nil
	default:
		return nil, fmt.Errorf("unknown problem format:%s", format)
	}
}

// LoadProblem reads a problem file. The format follows the file extension.
func LoadProblem(path string) (Problem, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to read problem file/path:%s/reason:%s", path, err))
		return nil, err
	}
	terms, err := DecodeTerms(blob, common.FileFormat(path))
	if err != nil {
		return nil, err
	}
	zap.L().Debug(fmt.Sprintf("decoded %d terms from %s", len(terms), path))
	return FromTerms(terms)
}
