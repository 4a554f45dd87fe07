package slides

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/go-faster/errors"
	"github.com/mohae/deepcopy"
	"github.com/oqtopus-team/qdeck/common"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Deck struct {
	Name   string           `toml:"-"`
	Banner string           `toml:"banner"`
	Slides map[string]Media `toml:"slide"`
}

// SlideNames returns the deck's slide names in sorted order.
func (d Deck) SlideNames() []string {
	names := make([]string, 0, len(d.Slides))
	for n := range d.Slides {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Catalog maps deck names to decks.
type Catalog map[string]Deck

// Names returns the deck names in sorted order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for n := range c {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (c Catalog) Deck(name string) (Deck, error) {
	d, ok := c[name]
	if !ok {
		return Deck{}, errors.Wrapf(ErrDeckNotFound, "%q", name)
	}
	return d, nil
}

func (c Catalog) Lookup(deck, slide string) (Media, error) {
	d, err := c.Deck(deck)
	if err != nil {
		zap.L().Debug(fmt.Sprintf("unknown deck/deck:%s", deck))
		return Media{}, err
	}
	m, ok := d.Slides[slide]
	if !ok {
		zap.L().Debug(fmt.Sprintf("unknown slide/deck:%s/slide:%s", deck, slide))
		return Media{}, errors.Wrapf(ErrSlideNotFound, "%s/%s", deck, slide)
	}
	return m, nil
}

// Clone returns a deep copy, so callers may edit decks without touching c.
func (c Catalog) Clone() Catalog {
	return deepcopy.Copy(c).(Catalog)
}

type catalogFile struct {
	Decks map[string]Deck `toml:"deck"`
}

// Merge overlays decks decoded from a TOML blob on a copy of c:
//
//	[deck.mine]
//	banner = "<h1>Mine</h1>"
//	[deck.mine.slide.intro]
//	kind = "image"
//	src = "images/intro.png"
//	width = 800
//
// Slides of an existing deck are replaced one by one; a non-empty banner replaces the old one.
func (c Catalog) Merge(blob []byte) (Catalog, error) {
	var f catalogFile
	if _, err := toml.Decode(string(blob), &f); err != nil {
		return nil, errors.Wrap(err, "decode catalog")
	}
	var errs error
	for name, d := range f.Decks {
		for slide, m := range d.Slides {
			if err := m.Validate(); err != nil {
				errs = multierr.Append(errs, errors.Wrapf(err, "%s/%s", name, slide))
			}
		}
	}
	if errs != nil {
		return nil, errs
	}
	out := c.Clone()
	if out == nil {
		out = Catalog{}
	}
	for name, d := range f.Decks {
		cur, ok := out[name]
		if !ok {
			cur = Deck{Name: name, Slides: map[string]Media{}}
		}
		if cur.Slides == nil {
			cur.Slides = map[string]Media{}
		}
		if d.Banner != "" {
			cur.Banner = d.Banner
		}
		for slide, m := range d.Slides {
			cur.Slides[slide] = m
		}
		out[name] = cur
	}
	return out, nil
}

// LoadCatalog reads path and merges its decks over the built-in ones.
func LoadCatalog(path string) (Catalog, error) {
	blob, err := common.ReadFile(path)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to read catalog/path:%s/reason:%s", path, err))
		return nil, err
	}
	return Builtin().Merge([]byte(blob))
}
