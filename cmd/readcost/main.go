// Command readcost reports the read cost model for forest decomposed
// logs: per rank cost curves, analytic envelopes, and their PNG renders.
package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/forestrie/go-merklelog/readcost"
)

var cfg struct {
	verbose bool

	curve struct {
		n   uint64
		out string
	}
	extremes struct {
		n   uint64
		out string
	}
	bounds struct {
		n   uint64
		out string
	}
	histogram struct {
		n   uint64
		out string
	}
	plotCurve struct {
		n   uint64
		out string
	}
	plotZeros struct {
		bits uint64
		out  string
	}
}

var logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

func main() {
	app := kingpin.New(filepath.Base(os.Args[0]),
		"Read cost reporting for forest decomposed logs.").UsageWriter(os.Stdout)
	app.HelpFlag.Short('h')
	app.Flag("verbose", "Enable verbose logging.").Short('v').Default("0").BoolVar(&cfg.verbose)

	curveCmd := app.Command("curve", "Emit the read cost of every rank as CSV.")
	curveCmd.Flag("n", "Total number of ranked entries.").Required().Uint64Var(&cfg.curve.n)
	curveCmd.Flag("out", "Write to this file instead of stdout.").StringVar(&cfg.curve.out)

	extremesCmd := app.Command("extremes", "Emit the extremal ranks per cost value as CSV.")
	extremesCmd.Flag("n", "Total number of ranked entries.").Required().Uint64Var(&cfg.extremes.n)
	extremesCmd.Flag("out", "Write to this file instead of stdout.").StringVar(&cfg.extremes.out)

	boundsCmd := app.Command("bounds", "Emit the analytic cost envelope of every rank as CSV.")
	boundsCmd.Flag("n", "Total number of ranked entries.").Required().Uint64Var(&cfg.bounds.n)
	boundsCmd.Flag("out", "Write to this file instead of stdout.").StringVar(&cfg.bounds.out)

	histogramCmd := app.Command("histogram", "Emit the count of ranks per cost value as CSV.")
	histogramCmd.Flag("n", "Total number of ranked entries.").Required().Uint64Var(&cfg.histogram.n)
	histogramCmd.Flag("out", "Write to this file instead of stdout.").StringVar(&cfg.histogram.out)

	plotCmd := app.Command("plot", "Render charts as PNG.")

	plotCurveCmd := plotCmd.Command("curve",
		"Scatter the read cost over every rank, overlaid with the per block envelopes.")
	plotCurveCmd.Flag("n", "Total number of ranked entries.").Required().Uint64Var(&cfg.plotCurve.n)
	plotCurveCmd.Flag("out", "Output PNG path. Defaults to io_read_hNN.png.").StringVar(&cfg.plotCurve.out)

	plotZerosCmd := plotCmd.Command("zeros",
		"Render the zero bit envelope the in-block cost derives from.")
	plotZerosCmd.Flag("bits", "Bit width of the value range.").Required().Uint64Var(&cfg.plotZeros.bits)
	plotZerosCmd.Flag("out", "Output PNG path. Defaults to zero_bits_hNN.png.").StringVar(&cfg.plotZeros.out)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if cfg.verbose {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	var err error
	switch command {
	case curveCmd.FullCommand():
		err = emitCurve(cfg.curve.n, cfg.curve.out)
	case extremesCmd.FullCommand():
		err = emitExtremes(cfg.extremes.n, cfg.extremes.out)
	case boundsCmd.FullCommand():
		err = emitBounds(cfg.bounds.n, cfg.bounds.out)
	case histogramCmd.FullCommand():
		err = emitHistogram(cfg.histogram.n, cfg.histogram.out)
	case plotCurveCmd.FullCommand():
		level.Debug(logger).Log("msg", "rendering cost curve", "n", cfg.plotCurve.n)
		err = renderCurve(cfg.plotCurve.n, cfg.plotCurve.out)
	case plotZerosCmd.FullCommand():
		level.Debug(logger).Log("msg", "rendering zero bit envelope", "bits", cfg.plotZeros.bits)
		err = renderZeros(cfg.plotZeros.bits, cfg.plotZeros.out)
	}
	if err != nil {
		if errors.Is(err, readcost.ErrOutOfDomain) {
			app.FatalUsage("%v\n", err)
		}
		level.Error(logger).Log("msg", "command failed", "err", err)
		os.Exit(1)
	}
}
