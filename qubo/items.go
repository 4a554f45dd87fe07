package qubo

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-faster/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Item is a selectable catalog entry of an assignment problem.
// Including an item excludes the other members of the included items' families.
type Item struct {
	Name      string   `json:"name"`
	Family    string   `json:"family"`
	Inclusion []string `json:"inclusion,omitempty"`
	Exclusion []string `json:"exclusion,omitempty"`
}

// InclusionToExclusion derives Exclusion from Inclusion for every item that has one.
// The input slice is left untouched. Every inclusion naming an unknown item is reported.
func InclusionToExclusion(items []Item) ([]Item, error) {
	familyOf := make(map[string]string, len(items))
	members := make(map[string][]string)
	for _, it := range items {
		familyOf[it.Name] = it.Family
		members[it.Family] = append(members[it.Family], it.Name)
	}
	out := make([]Item, len(items))
	var errs error
	for i, it := range items {
		out[i] = it
		out[i].Inclusion = append([]string(nil), it.Inclusion...)
		out[i].Exclusion = append([]string(nil), it.Exclusion...)
		if len(it.Inclusion) == 0 {
			continue
		}
		var ex []string
		for _, inc := range it.Inclusion {
			fam, ok := familyOf[inc]
			if !ok {
				errs = multierr.Append(errs, errors.Wrapf(ErrUnknownItem, "%s includes %q", it.Name, inc))
				continue
			}
			for _, name := range members[fam] {
				if name != inc {
					ex = append(ex, name)
				}
			}
		}
		out[i].Exclusion = ex
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

// SelectedItems returns, per sample, the items whose variable is set.
func SelectedItems(samples []Sample, items []Item) [][]Item {
	out := make([][]Item, 0, len(samples))
	for _, s := range samples {
		var picked []Item
		for _, it := range items {
			if s[it.Name] > 0 {
				picked = append(picked, it)
			}
		}
		out = append(out, picked)
	}
	return out
}

// ParseList parses a bracketed list literal such as "['a', 'b']".
// Empty elements, including a trailing comma, are rejected.
func ParseList(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, errors.Wrapf(ErrInvalidList, "%q", s)
	}
	body := s[1 : len(s)-1]
	if strings.TrimSpace(body) == "" {
		return []string{}, nil
	}
	parts := strings.Split(body, ",")
	out := make([]string, 0, len(parts))
	for i, p := range parts {
		v := strings.Trim(strings.TrimSpace(p), "'\"")
		if v == "" {
			return nil, errors.Wrapf(ErrInvalidList, "%q element %d is empty", s, i)
		}
		out = append(out, v)
	}
	return out, nil
}

// itemRecord is one [[item]] table. Lists are kept as literals like "['a', 'b']"
// so tables exported from spreadsheets load unchanged.
type itemRecord struct {
	Name      string `toml:"name"`
	Family    string `toml:"family"`
	Inclusion string `toml:"inclusion"`
	Exclusion string `toml:"exclusion"`
}

type itemFile struct {
	Items []itemRecord `toml:"item"`
}

// DecodeItems reads [[item]] tables. Every malformed list is reported.
func DecodeItems(blob []byte) ([]Item, error) {
	var f itemFile
	if _, err := toml.Decode(string(blob), &f); err != nil {
		return nil, errors.Wrap(err, "decode items")
	}
	items := make([]Item, 0, len(f.Items))
	var errs error
	for i, r := range f.Items {
		it := Item{Name: r.Name, Family: r.Family}
		if r.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("item %d has no name", i))
		}
		var err error
		if it.Inclusion, err = parseOptionalList(r.Inclusion); err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "item %d inclusion", i))
		}
		if it.Exclusion, err = parseOptionalList(r.Exclusion); err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "item %d exclusion", i))
		}
		items = append(items, it)
	}
	if errs != nil {
		return nil, errs
	}
	return items, nil
}

func parseOptionalList(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	l, err := ParseList(s)
	if err != nil || len(l) == 0 {
		return nil, err
	}
	return l, nil
}

func LoadItems(path string) ([]Item, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to read items file/path:%s/reason:%s", path, err))
		return nil, err
	}
	return DecodeItems(blob)
}
