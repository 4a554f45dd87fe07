package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/pretty"

	"github.com/oqtopus-team/qdeck/core"
	"github.com/oqtopus-team/qdeck/qubo"
	"github.com/oqtopus-team/qdeck/render"
	"github.com/oqtopus-team/qdeck/statevector"

	"go.uber.org/zap"
)

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

type problemArg struct {
	Problem string `positional-arg-name:"problem" description:"problem file (.json or .toml)"`
}

func printJSON(v interface{}) error {
	b, err := jsonIter.Marshal(v)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to marshal output/reason:%s", err))
		return err
	}
	_, err = stdout.Write(pretty.Pretty(b))
	return err
}

// writtenFiles reports what a file-producing renderer wrote.
func writtenFiles(r render.Renderer) []string {
	if w, ok := r.(interface{ Written() []string }); ok {
		return w.Written()
	}
	return nil
}

type matrixCmd struct {
	JSON  bool       `long:"json" description:"print labels and rows as JSON"`
	Terms bool       `long:"terms" description:"print the problem as sorted JSON terms instead of the matrix"`
	Args  problemArg `positional-args:"yes" required:"yes"`
}

func (c *matrixCmd) Execute(args []string) error {
	s, err := newSession(qdeck)
	if err != nil {
		return err
	}
	defer s.close()

	p, err := qubo.LoadProblem(c.Args.Problem)
	if err != nil {
		return err
	}
	m, err := qubo.Build(p)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to build matrix/reason:%s", err))
		return err
	}
	switch {
	case c.Terms:
		if err := printJSON(p.Terms()); err != nil {
			return err
		}
	case c.JSON:
		fmt.Fprint(stdout, m.ToJSON())
	default:
		fmt.Fprint(stdout, m.String())
	}
	s.history.Record("matrix", slog.String("problem", c.Args.Problem), slog.Int("variables", m.Dims()))
	return nil
}

type heatmapCmd struct {
	Colormap string     `long:"colormap" description:"colormap name" default:"seismic"`
	Args     problemArg `positional-args:"yes" required:"yes"`
}

func (c *heatmapCmd) Execute(args []string) error {
	s, err := newSession(qdeck)
	if err != nil {
		return err
	}
	defer s.close()

	p, err := qubo.LoadProblem(c.Args.Problem)
	if err != nil {
		return err
	}
	r, err := s.components.Renderer()
	if err != nil {
		return err
	}
	if err := render.Visualize(context.Background(), r, p, c.Colormap); err != nil {
		zap.L().Error(fmt.Sprintf("failed to visualize/reason:%s", err))
		return err
	}
	for _, f := range writtenFiles(r) {
		fmt.Fprintln(stdout, f)
		s.history.Record("heatmap", slog.String("problem", c.Args.Problem), slog.String("file", f))
	}
	return nil
}

type landscapeCmd struct {
	Print  bool       `long:"print" description:"print every sample instead of only the minima"`
	NoPlot bool       `long:"no-plot" description:"do not draw the landscape"`
	Items  string     `long:"items" description:"item file; prints the items picked by each minimum"`
	Args   problemArg `positional-args:"yes" required:"yes"`
}

func (c *landscapeCmd) Execute(args []string) error {
	s, err := newSession(qdeck)
	if err != nil {
		return err
	}
	defer s.close()

	p, err := qubo.LoadProblem(c.Args.Problem)
	if err != nil {
		return err
	}
	points, err := qubo.Landscape(p)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to evaluate landscape/reason:%s", err))
		return err
	}
	if !c.NoPlot {
		r, err := s.components.Renderer()
		if err != nil {
			return err
		}
		if err := render.PlotLandscape(context.Background(), r, points); err != nil {
			zap.L().Error(fmt.Sprintf("failed to plot landscape/reason:%s", err))
			return err
		}
		for _, f := range writtenFiles(r) {
			fmt.Fprintln(stdout, f)
		}
	}
	shown := qubo.Minima(points)
	if c.Print {
		shown = points
	}
	for _, pt := range shown {
		fmt.Fprintf(stdout, "%s\t%s\n", pt.Bits, qubo.FormatValue(pt.Energy))
	}
	if c.Items != "" {
		items, err := qubo.LoadItems(c.Items)
		if err != nil {
			return err
		}
		labels := p.Variables()
		minima := qubo.Minima(points)
		samples := make([]qubo.Sample, len(minima))
		for i, pt := range minima {
			samples[i] = pt.Sample(labels)
		}
		for i, picked := range qubo.SelectedItems(samples, items) {
			names := make([]string, len(picked))
			for j, it := range picked {
				names[j] = it.Name
			}
			fmt.Fprintf(stdout, "%s\t[%s]\n", minima[i].Bits, strings.Join(names, ", "))
		}
	}
	s.history.Record("landscape", slog.String("problem", c.Args.Problem), slog.Int("samples", len(points)))
	return nil
}

type graphCmd struct {
	Name string     `long:"name" description:"graph name" default:"bqm"`
	Args problemArg `positional-args:"yes" required:"yes"`
}

func (c *graphCmd) Execute(args []string) error {
	s, err := newSession(qdeck)
	if err != nil {
		return err
	}
	defer s.close()

	p, err := qubo.LoadProblem(c.Args.Problem)
	if err != nil {
		return err
	}
	b, err := qubo.MarshalDOT(p, c.Name)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, string(b))
	s.history.Record("graph", slog.String("problem", c.Args.Problem))
	return nil
}

type itemsCmd struct {
	Args struct {
		Items string `positional-arg-name:"items" description:"TOML file of [[item]] tables"`
	} `positional-args:"yes" required:"yes"`
}

func (c *itemsCmd) Execute(args []string) error {
	s, err := newSession(qdeck)
	if err != nil {
		return err
	}
	defer s.close()

	items, err := qubo.LoadItems(c.Args.Items)
	if err != nil {
		return err
	}
	derived, err := qubo.InclusionToExclusion(items)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to derive exclusions/path:%s/reason:%s", c.Args.Items, err))
		return err
	}
	s.history.Record("items", slog.String("items", c.Args.Items), slog.Int("count", len(items)))
	return printJSON(derived)
}

type statevectorCmd struct {
	Decimals int    `long:"decimals" description:"decimals to round to, negative keeps full precision" default:"3"`
	Mode     string `long:"mode" description:"one ket per line (col) or a single sum (row)" default:"row" choice:"row" choice:"col"`
	Shots    int    `long:"shots" description:"also print measurement counts of this many shots"`
	Seed     uint64 `long:"seed" description:"seed of the measurement sampler, random when 0"`
	Args     struct {
		Circuit string `positional-arg-name:"circuit" description:"JSON circuit file"`
	} `positional-args:"yes" required:"yes"`
}

func (c *statevectorCmd) Execute(args []string) error {
	s, err := newSession(qdeck)
	if err != nil {
		return err
	}
	defer s.close()

	circuit, err := statevector.LoadCircuit(c.Args.Circuit)
	if err != nil {
		return err
	}
	b, err := s.components.Backend()
	if err != nil {
		return err
	}
	res, err := statevector.Get(context.Background(), b, circuit, c.Decimals)
	if err != nil {
		return err
	}
	out, err := statevector.Format(res.Amplitudes, statevector.Mode(c.Mode))
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, out)
	if c.Shots > 0 {
		seed := c.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		counts, err := statevector.Measure(res.Amplitudes, c.Shots, rand.NewPCG(seed, seed))
		if err != nil {
			return err
		}
		if err := printJSON(counts); err != nil {
			return err
		}
	}
	s.history.Record("statevector",
		slog.String("id", res.ID),
		slog.String("backend", res.Backend),
		slog.String("created", res.Created.String()))
	return nil
}

type slideCmd struct {
	List bool `long:"list" description:"list decks, or the slides of the given deck"`
	Args struct {
		Deck  string `positional-arg-name:"deck" description:"deck name"`
		Slide string `positional-arg-name:"slide" description:"slide name; the deck banner when omitted"`
	} `positional-args:"yes"`
}

func (c *slideCmd) Execute(args []string) error {
	s, err := newSession(qdeck)
	if err != nil {
		return err
	}
	defer s.close()

	catalog, err := s.components.Catalog()
	if err != nil {
		return err
	}
	switch {
	case c.Args.Deck == "":
		if !c.List {
			return fmt.Errorf("a deck is required, one of %v", catalog.Names())
		}
		fmt.Fprintln(stdout, strings.Join(catalog.Names(), "\n"))
	case c.List:
		d, err := catalog.Deck(c.Args.Deck)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, strings.Join(d.SlideNames(), "\n"))
	case c.Args.Slide == "":
		d, err := catalog.Deck(c.Args.Deck)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, d.Banner)
	default:
		m, err := catalog.Lookup(c.Args.Deck, c.Args.Slide)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, m.HTML())
		s.history.Record("slide", slog.String("deck", c.Args.Deck), slog.String("slide", c.Args.Slide))
	}
	return nil
}

type versionCmd struct{}

func (c *versionCmd) Execute(args []string) error {
	s, err := newSession(qdeck)
	if err != nil {
		return err
	}
	defer s.close()
	return printJSON(core.CurrentInfo)
}
