package benchmark

import (
	"fmt"
	"time"

	"salary-bench/internal/salary"
)

type Variant string

const (
	VariantNaive     Variant = "naive"
	VariantJoined    Variant = "joined"
	VariantProcedure Variant = "procedure"
)

// Variants is the fixed execution order of a run.
var Variants = []Variant{VariantNaive, VariantJoined, VariantProcedure}

func (v Variant) Label() string {
	switch v {
	case VariantNaive:
		return "Naive ORM"
	case VariantJoined:
		return "Joined query"
	case VariantProcedure:
		return "Stored procedure"
	default:
		return string(v)
	}
}

type Result struct {
	Variant   Variant       `json:"variant"`
	Count     int           `json:"count"`
	Elapsed   time.Duration `json:"elapsed"`
	FirstName string        `json:"first_name,omitempty"`

	Rows []salary.LatestSalary `json:"-"`
}

// Divergence records a variant whose row count differs from the naive one.
type Divergence struct {
	Variant  Variant `json:"variant"`
	Count    int     `json:"count"`
	Expected int     `json:"expected"`
}

func (d Divergence) Note() string {
	if d.Variant == VariantJoined && d.Count < d.Expected {
		return fmt.Sprintf(
			"%s returned %d fewer rows than %s: employees without salary rows are dropped by the inner join",
			d.Variant.Label(), d.Expected-d.Count, VariantNaive.Label(),
		)
	}
	if d.Variant == VariantJoined {
		return fmt.Sprintf(
			"%s returned %d more rows than %s: employees with several salaries on their latest pay date appear once per salary",
			d.Variant.Label(), d.Count-d.Expected, VariantNaive.Label(),
		)
	}
	return fmt.Sprintf("%s returned %d rows, %s returned %d",
		d.Variant.Label(), d.Count, VariantNaive.Label(), d.Expected)
}

type Report struct {
	ID          string       `json:"id"`
	Department  string       `json:"department"`
	StartedAt   time.Time    `json:"started_at"`
	Results     []Result     `json:"results"`
	Divergences []Divergence `json:"divergences,omitempty"`
}

// Result returns the result for v, if the run got that far.
func (r Report) Result(v Variant) (Result, bool) {
	for _, res := range r.Results {
		if res.Variant == v {
			return res, true
		}
	}
	return Result{}, false
}

func detectDivergences(results []Result) []Divergence {
	var baseline *Result
	for i := range results {
		if results[i].Variant == VariantNaive {
			baseline = &results[i]
			break
		}
	}
	if baseline == nil {
		return nil
	}

	var out []Divergence
	for _, res := range results {
		if res.Variant == VariantNaive || res.Count == baseline.Count {
			continue
		}
		out = append(out, Divergence{
			Variant:  res.Variant,
			Count:    res.Count,
			Expected: baseline.Count,
		})
	}
	return out
}
