package main

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/forestrie/go-merklelog/readcost"
)

// emitCSV writes header and rows to path, or stdout when path is empty.
func emitCSV(path string, header []string, rows func(w *csv.Writer) error) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	w := csv.NewWriter(out)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := rows(w); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func emitCurve(n uint64, path string) error {
	forest, err := readcost.Decompose(n)
	if err != nil {
		return err
	}
	return emitCSV(path, []string{"k", "cost"}, func(w *csv.Writer) error {
		for k := uint64(1); k <= n; k++ {
			cost, err := readcost.ForestAccessCost(forest, k)
			if err != nil {
				return err
			}
			if err := w.Write([]string{u(k), u(cost)}); err != nil {
				return err
			}
		}
		return nil
	})
}

func emitExtremes(n uint64, path string) error {
	witnesses, err := readcost.CostExtremes(n)
	if err != nil {
		return err
	}
	return emitCSV(path, []string{"cost", "worst_rank", "best_rank"}, func(w *csv.Writer) error {
		for cost, witness := range witnesses {
			row := []string{u(uint64(cost)), u(witness.Worst), u(witness.Best)}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

func emitBounds(n uint64, path string) error {
	curves, err := readcost.Bounds(n)
	if err != nil {
		return err
	}
	header := []string{"k", "block_height", "block_end", "upper", "lower"}
	return emitCSV(path, header, func(w *csv.Writer) error {
		for _, bb := range curves {
			start := bb.Block.StartRank()
			for m := range bb.Upper {
				row := []string{
					u(start + uint64(m)),
					u(bb.Block.Height),
					u(bb.Block.EndRank),
					u(bb.Upper[m]),
					u(bb.Lower[m]),
				}
				if err := w.Write(row); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func emitHistogram(n uint64, path string) error {
	counts, err := readcost.CostHistogram(n)
	if err != nil {
		return err
	}
	return emitCSV(path, []string{"cost", "count"}, func(w *csv.Writer) error {
		for cost, count := range counts {
			if err := w.Write([]string{u(uint64(cost)), u(count)}); err != nil {
				return err
			}
		}
		return nil
	})
}

func u(v uint64) string { return strconv.FormatUint(v, 10) }
