// Package render draws QUBO matrices and energy landscapes through an
// injected Renderer. Nothing here keeps global drawing state.
package render

import (
	"context"
	"fmt"
	"math"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/qdeck/qubo"
	"go.uber.org/zap"
)

const DefaultColormap = "seismic"

var ErrUnknownColormap = errors.New("render: unknown colormap")

// Domain is the value range mapped onto the colormap.
type Domain struct {
	Min       float64
	Max       float64
	Symmetric bool
}

// HeatmapSpec describes one matrix image.
type HeatmapSpec struct {
	Title    string
	Labels   []string
	Values   [][]float64
	Colormap string
	Domain   Domain
}

// LineSpec describes one categorical line plot.
type LineSpec struct {
	Title  string
	XLabel string
	YLabel string
	X      []string
	Y      []float64
}

// Renderer is the drawing context handed to every visualization call.
type Renderer interface {
	Heatmap(ctx context.Context, spec HeatmapSpec) error
	Line(ctx context.Context, spec LineSpec) error
}

// ColorDomain derives the color scale from the data.
// When both signs occur the scale is clamped to [-max|v|, +max|v|] so that
// zero sits in the middle of a diverging colormap.
func ColorDomain(m *qubo.Matrix) Domain {
	lo, hi := m.Extremes()
	if lo < 0 && 0 < hi {
		abs := math.Max(math.Abs(lo), math.Abs(hi))
		return Domain{Min: -abs, Max: abs, Symmetric: true}
	}
	return Domain{Min: lo, Max: hi, Symmetric: false}
}

// Visualize builds the matrix of p and hands it to r as a heatmap.
func Visualize(ctx context.Context, r Renderer, p qubo.Problem, colormap string) error {
	m, err := qubo.Build(p)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to build matrix/reason:%s", err))
		return err
	}
	if colormap == "" {
		colormap = DefaultColormap
	}
	if _, ok := colormaps[colormap]; !ok {
		return errors.Wrapf(ErrUnknownColormap, "%q", colormap)
	}
	d := ColorDomain(m)
	zap.L().Debug(fmt.Sprintf("heatmap domain/min:%g/max:%g/symmetric:%t", d.Min, d.Max, d.Symmetric))
	return r.Heatmap(ctx, HeatmapSpec{
		Title:    "QUBO matrix",
		Labels:   m.Labels,
		Values:   m.Rows(),
		Colormap: colormap,
		Domain:   d,
	})
}

// PlotLandscape hands the energy of every sample to r as a line plot.
func PlotLandscape(ctx context.Context, r Renderer, points []qubo.LandscapePoint) error {
	spec := LineSpec{
		Title:  "Energy landscape",
		XLabel: "sample",
		YLabel: "energy",
		X:      make([]string, len(points)),
		Y:      make([]float64, len(points)),
	}
	for i, pt := range points {
		spec.X[i] = pt.Bits
		spec.Y[i] = pt.Energy
	}
	return r.Line(ctx, spec)
}
