// Command calibrate reports, per tiebreaker margin, how many noisy positions
// around the reference ideologies change macro-cell without any boundary tag
// firing.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"compass-quiz/internal/calibration"
	"compass-quiz/internal/catalog"
)

func main() {
	marginsFlag := flag.String("margins", "0,5,10,15,20,25,30,33", "comma-separated margins to evaluate")
	radius := flag.Float64("radius", 30, "largest per-axis score offset")
	step := flag.Float64("step", 2.5, "offset grid step")
	flag.Parse()

	margins, err := parseMargins(*marginsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	reports, err := calibration.Evaluate(context.Background(), catalog.Default(), margins, calibration.Grid(*radius, *step))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "margin\tsamples\tdrifted\tflagged\tunprotected\tunprotected%\tflagged%\t")
	for _, r := range reports {
		fmt.Fprintf(w, "%.1f\t%d\t%d\t%d\t%d\t%.1f\t%.1f\t\n",
			r.Margin, r.Samples, r.Drifted, r.Flagged, r.Unprotected,
			100*r.UnprotectedRate(), 100*r.FlaggedRate())
	}
	_ = w.Flush()
}

func parseMargins(s string) ([]float64, error) {
	var margins []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		m, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid margin %q: %w", part, err)
		}
		margins = append(margins, m)
	}
	if len(margins) == 0 {
		return nil, fmt.Errorf("no margins given")
	}
	return margins, nil
}
