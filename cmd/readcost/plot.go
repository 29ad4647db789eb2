package main

import (
	"fmt"
	"image/color"

	"github.com/go-kit/log/level"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/forestrie/go-merklelog/readcost"
)

var (
	scatterColor  = color.RGBA{R: 0xa0, G: 0xc4, B: 0xff, A: 0xff}
	upperColor    = color.RGBA{R: 0x99, G: 0x1c, B: 0x38, A: 0xff}
	lowerColor    = color.RGBA{R: 0x1c, G: 0x6e, B: 0xcd, A: 0xff}
	expectedColor = color.RGBA{R: 0x00, G: 0x59, B: 0x55, A: 0xff}
)

// renderCurve scatters the read cost over every rank of n and overlays
// the per block upper and lower envelopes.
func renderCurve(n uint64, path string) error {
	forest, err := readcost.Decompose(n)
	if err != nil {
		return err
	}
	curves, err := readcost.Bounds(n)
	if err != nil {
		return err
	}
	if n > 1<<20 {
		level.Warn(logger).Log("msg", "large n, rendering will be slow", "n", n)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Distribution of index reads, n=%d", n)
	p.X.Label.Text = "Rank k"
	p.Y.Label.Text = "Reads"

	pts := make(plotter.XYs, 0, int(n))
	for k := uint64(1); k <= n; k++ {
		cost, err := readcost.ForestAccessCost(forest, k)
		if err != nil {
			return err
		}
		pts = append(pts, plotter.XY{X: float64(k), Y: float64(cost)})
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Shape = draw.RingGlyph{}
	scatter.GlyphStyle.Color = scatterColor
	scatter.GlyphStyle.Radius = vg.Points(2)
	p.Add(scatter)
	p.Legend.Add("cost", scatter)

	for i, bb := range curves {
		start := bb.Block.StartRank()
		upper := make(plotter.XYs, len(bb.Upper))
		lower := make(plotter.XYs, len(bb.Lower))
		for m := range bb.Upper {
			x := float64(start + uint64(m))
			upper[m] = plotter.XY{X: x, Y: float64(bb.Upper[m])}
			lower[m] = plotter.XY{X: x, Y: float64(bb.Lower[m])}
		}
		upperLine, err := plotter.NewLine(upper)
		if err != nil {
			return err
		}
		upperLine.LineStyle.Color = upperColor
		lowerLine, err := plotter.NewLine(lower)
		if err != nil {
			return err
		}
		lowerLine.LineStyle.Color = lowerColor
		p.Add(upperLine, lowerLine)
		if i == 0 {
			p.Legend.Add("upper bound", upperLine)
			p.Legend.Add("lower bound", lowerLine)
		}
	}

	if path == "" {
		h, err := readcost.CeilLog2(n)
		if err != nil {
			return err
		}
		path = fmt.Sprintf("io_read_h%02d.png", h)
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// renderZeros scatters the zero bit count over all h bit values and
// overlays its bounds and expectation.
func renderZeros(h uint64, path string) error {
	// validate h once up front; the per value calls cannot fail after this
	if _, err := readcost.ZeroBits(0, h); err != nil {
		return err
	}
	if h > 20 {
		level.Warn(logger).Log("msg", "large bit width, rendering will be slow", "bits", h)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Zero bits over %d bit values", h)
	p.X.Label.Text = "Value x"
	p.Y.Label.Text = "Zero bits"

	count := uint64(1) << h
	pts := make(plotter.XYs, 0, int(count))
	upper := make(plotter.XYs, 0, int(count))
	lower := make(plotter.XYs, 0, int(count))
	expected := make(plotter.XYs, 0, int(count))
	for x := uint64(0); x < count; x++ {
		zeros, err := readcost.ZeroBits(x, h)
		if err != nil {
			return err
		}
		ub, err := readcost.ZeroBitsUpperBound(x, h)
		if err != nil {
			return err
		}
		lb, err := readcost.ZeroBitsLowerBound(x, h)
		if err != nil {
			return err
		}
		mid, err := readcost.ZeroBitsExpected(x, h)
		if err != nil {
			return err
		}
		pts = append(pts, plotter.XY{X: float64(x), Y: float64(zeros)})
		upper = append(upper, plotter.XY{X: float64(x), Y: float64(ub)})
		lower = append(lower, plotter.XY{X: float64(x), Y: float64(lb)})
		expected = append(expected, plotter.XY{X: float64(x), Y: mid})
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Shape = draw.RingGlyph{}
	scatter.GlyphStyle.Color = scatterColor
	scatter.GlyphStyle.Radius = vg.Points(2)
	p.Add(scatter)
	p.Legend.Add("zero bits", scatter)

	upperLine, err := plotter.NewLine(upper)
	if err != nil {
		return err
	}
	upperLine.LineStyle.Color = upperColor
	lowerLine, err := plotter.NewLine(lower)
	if err != nil {
		return err
	}
	lowerLine.LineStyle.Color = lowerColor
	expectedLine, err := plotter.NewLine(expected)
	if err != nil {
		return err
	}
	expectedLine.LineStyle.Color = expectedColor
	expectedLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(upperLine, lowerLine, expectedLine)
	p.Legend.Add("upper bound", upperLine)
	p.Legend.Add("lower bound", lowerLine)
	p.Legend.Add("expected", expectedLine)

	if path == "" {
		path = fmt.Sprintf("zero_bits_h%02d.png", h)
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
