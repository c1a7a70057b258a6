package bench

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/samber/lo"
)

// WriteReport prints the benchmark results to w, one phase per block.
func WriteReport(w io.Writer, results []PhaseResult) {
	for _, r := range results {
		label := "serial runtime:  "
		if r.Parallel {
			label = "parallel runtime:"
		}
		fmt.Fprintf(w, "%s %v\n", aurora.Cyan(label), r.Elapsed)
		fmt.Fprintf(w, "moves:            %d\n", aurora.Green(r.Nodes))
		breakdown := strings.Join(lo.Map(r.PerOpening,
			func(o OpeningResult, _ int) string {
				return fmt.Sprintf("%s=%d", o.Opening.Name, o.Nodes)
			}), " ")
		fmt.Fprintf(w, "per opening:      %s\n", aurora.Blue(breakdown))
	}
	if len(results) > 0 {
		fmt.Fprintf(w, "iterations:       %d\n", results[len(results)-1].Iterations)
	}
}
