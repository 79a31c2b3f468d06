// Package report aggregates per-domain operation results into a summary
// and renders it for humans.
package report

import (
	"fmt"
	"io"

	"github.com/AgileWorksZA/cloudns-tools/pkg/domain"
)

// Summary is the aggregate outcome of a batch operation. It is derived
// once from the result slice and never mutated afterwards.
type Summary struct {
	// Total is the number of domains processed.
	Total int
	// Succeeded counts results with StatusSuccess.
	Succeeded int
	// AlreadyShared counts results with StatusAlreadyShared. They count
	// toward the top-line success number but are reported separately.
	AlreadyShared int
	// Failed counts results with StatusFailed.
	Failed int
	// Failures holds the failed results, in input order, for detail output.
	Failures []domain.OperationResult
}

// Summarize counts result statuses. Succeeded + AlreadyShared + Failed
// always equals Total.
func Summarize(results []domain.OperationResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case domain.StatusSuccess:
			s.Succeeded++
		case domain.StatusAlreadyShared:
			s.AlreadyShared++
		default:
			s.Failed++
			s.Failures = append(s.Failures, r)
		}
	}

	return s
}

// Ok reports whether the run should exit zero. Already-shared domains do
// not count against success.
func (s Summary) Ok() bool { return s.Failed == 0 }

// Render writes the human-readable report to w. Per-domain failure detail
// is included only in verbose mode.
func (s Summary) Render(w io.Writer, verbose bool) {
	fmt.Fprintf(w, "Summary:\n")
	fmt.Fprintf(w, "- Total domains processed: %d\n", s.Total)
	fmt.Fprintf(w, "- Succeeded: %d\n", s.Succeeded+s.AlreadyShared)
	fmt.Fprintf(w, "- Already shared: %d\n", s.AlreadyShared)
	fmt.Fprintf(w, "- Failed: %d\n", s.Failed)

	if verbose && len(s.Failures) > 0 {
		fmt.Fprintf(w, "\nFailed domains:\n")
		for _, f := range s.Failures {
			fmt.Fprintf(w, "- %s: %s\n", f.Domain, f.Message)
		}
	}
}
