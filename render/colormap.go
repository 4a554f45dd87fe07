package render

import (
	"image/color"

	"github.com/go-faster/errors"
	"gonum.org/v1/plot/palette"
)

const paletteSize = 256

// colormaps are piecewise-linear ramps over evenly spaced anchors.
var colormaps = map[string][]color.RGBA{
	// diverging: dark blue, blue, white, red, dark red
	"seismic": {
		{R: 0, G: 0, B: 77, A: 255},
		{R: 0, G: 0, B: 255, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
		{R: 255, G: 0, B: 0, A: 255},
		{R: 128, G: 0, B: 0, A: 255},
	},
	"coolwarm": {
		{R: 59, G: 76, B: 192, A: 255},
		{R: 221, G: 221, B: 221, A: 255},
		{R: 180, G: 4, B: 38, A: 255},
	},
	"heat": {
		{R: 0, G: 0, B: 0, A: 255},
		{R: 230, G: 0, B: 0, A: 255},
		{R: 255, G: 210, B: 0, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
	},
	"gray": {
		{R: 0, G: 0, B: 0, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
	},
}

// Colormaps lists the accepted colormap names.
func Colormaps() []string {
	return []string{"coolwarm", "gray", "heat", "seismic"}
}

type ramp []color.Color

func (r ramp) Colors() []color.Color {
	return r
}

// Palette samples the named colormap into n colors.
func Palette(name string, n int) (palette.Palette, error) {
	anchors, ok := colormaps[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownColormap, "%q", name)
	}
	if n < 2 {
		n = 2
	}
	out := make(ramp, n)
	for i := 0; i < n; i++ {
		out[i] = interpolate(anchors, float64(i)/float64(n-1))
	}
	return out, nil
}

// interpolate returns the color at t in [0, 1].
func interpolate(anchors []color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return anchors[0]
	}
	if t >= 1 {
		return anchors[len(anchors)-1]
	}
	pos := t * float64(len(anchors)-1)
	i := int(pos)
	f := pos - float64(i)
	a, b := anchors[i], anchors[i+1]
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*f + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}
