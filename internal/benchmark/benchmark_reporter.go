package benchmark

import (
	"fmt"
	"io"
)

// Reporter is told about each variant as it completes and about the run as
// a whole once all variants are done.
type Reporter interface {
	VariantFinished(result Result)
	RunFinished(report Report)
}

// TextReporter writes the plain text console format:
//
//	Alice
//	Naive ORM: 3 records in 12 ms
type TextReporter struct {
	w io.Writer
}

func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

func (r *TextReporter) VariantFinished(result Result) {
	first := result.FirstName
	if result.Count == 0 {
		first = "(no rows)"
	}
	fmt.Fprintln(r.w, first)
	fmt.Fprintf(r.w, "%s: %d records in %d ms\n",
		result.Variant.Label(), result.Count, result.Elapsed.Milliseconds())
}

func (r *TextReporter) RunFinished(report Report) {
	for _, d := range report.Divergences {
		fmt.Fprintf(r.w, "note: %s\n", d.Note())
	}
}
