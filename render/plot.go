package render

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/oqtopus-team/qdeck/common"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotRenderer writes every figure as an image file into Dir.
type PlotRenderer struct {
	Dir    string
	Format string // png, svg or pdf
	Width  vg.Length
	Height vg.Length

	written []string
}

func NewPlotRenderer(dir, format string) *PlotRenderer {
	if format == "" {
		format = "png"
	}
	return &PlotRenderer{
		Dir:    dir,
		Format: format,
		Width:  6 * vg.Inch,
		Height: 5 * vg.Inch,
	}
}

// Written returns the files produced so far.
func (r *PlotRenderer) Written() []string {
	return append([]string(nil), r.written...)
}

// matrixGrid maps a row-major matrix onto plotter.GridXYZ with row 0 at the top.
type matrixGrid struct {
	values [][]float64
}

func (g matrixGrid) Dims() (c, r int) {
	return len(g.values[0]), len(g.values)
}

func (g matrixGrid) Z(c, r int) float64 {
	return g.values[len(g.values)-1-r][c]
}

func (g matrixGrid) X(c int) float64 {
	return float64(c)
}

func (g matrixGrid) Y(r int) float64 {
	return float64(r)
}

func (r *PlotRenderer) Heatmap(ctx context.Context, spec HeatmapSpec) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(spec.Values) == 0 {
		return fmt.Errorf("no values to draw")
	}
	pal, err := Palette(spec.Colormap, paletteSize)
	if err != nil {
		return err
	}
	h := plotter.NewHeatMap(matrixGrid{values: spec.Values}, pal)
	h.Min, h.Max = spec.Domain.Min, spec.Domain.Max
	if h.Min == h.Max {
		// a flat matrix still needs a non-empty scale
		h.Min, h.Max = h.Min-1, h.Max+1
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.Add(h)
	n := len(spec.Labels)
	xt := make([]plot.Tick, n)
	yt := make([]plot.Tick, n)
	for i, l := range spec.Labels {
		xt[i] = plot.Tick{Value: float64(i), Label: l}
		yt[i] = plot.Tick{Value: float64(n - 1 - i), Label: l}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xt)
	p.Y.Tick.Marker = plot.ConstantTicks(yt)
	return r.save(p, spec.Title)
}

func (r *PlotRenderer) Line(ctx context.Context, spec LineSpec) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(spec.X) != len(spec.Y) {
		return fmt.Errorf("x has %d entries but y has %d", len(spec.X), len(spec.Y))
	}
	xys := make(plotter.XYs, len(spec.Y))
	ticks := make([]plot.Tick, len(spec.X))
	for i := range spec.Y {
		xys[i].X = float64(i)
		xys[i].Y = spec.Y[i]
		ticks[i] = plot.Tick{Value: float64(i), Label: spec.X[i]}
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to create line/reason:%s", err))
		return err
	}
	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.Add(line, plotter.NewGrid())
	return r.save(p, spec.Title)
}

func (r *PlotRenderer) save(p *plot.Plot, title string) error {
	if err := common.IsDirWritable(r.Dir); err != nil {
		zap.L().Error(fmt.Sprintf("failed to write to %s/reason:%s", r.Dir, err))
		return err
	}
	path := filepath.Join(r.Dir, fileName(title, r.Format))
	if err := p.Save(r.Width, r.Height, path); err != nil {
		zap.L().Error(fmt.Sprintf("failed to save plot/path:%s/reason:%s", path, err))
		return err
	}
	zap.L().Info(fmt.Sprintf("wrote %s", path))
	r.written = append(r.written, path)
	return nil
}

func fileName(title, format string) string {
	slug := strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			return c
		case c >= 'A' && c <= 'Z':
			return c - 'A' + 'a'
		default:
			return '-'
		}
	}, strings.TrimSpace(title))
	if slug == "" {
		slug = "figure"
	}
	return slug + "." + format
}
