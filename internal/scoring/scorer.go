package scoring

import (
	"fmt"
	"math"

	"seopulse-backend/internal/signals"
)

// rule defines one sub-score: the predicate description, the weakness
// floor, and an evaluator over the table. The evaluator returns false
// when the signals it needs cannot be resolved; unresolvable rules are
// omitted from the category mean rather than substituted with a default,
// so a partial export never dilutes the measured columns.
type rule struct {
	name      string
	predicate string
	floor     int
	weakness  string
	eval      func(t *signals.Table) (int, bool)
}

// rowOutcome is the tri-state result of a predicate on one row. Rows
// with malformed cells (text where a number is required) are skipped for
// that predicate only and count toward neither side of the fraction.
type rowOutcome int

const (
	rowFail rowOutcome = iota
	rowPass
	rowSkip
)

// fraction evaluates a per-row predicate and returns the rounded share
// of countable rows that pass. ok is false when no row was countable.
func fraction(n int, eval func(i int) rowOutcome) (int, bool) {
	pass, counted := 0, 0
	for i := 0; i < n; i++ {
		switch eval(i) {
		case rowPass:
			pass++
			counted++
		case rowFail:
			counted++
		}
	}
	if counted == 0 {
		return 0, false
	}
	return int(math.Round(100 * float64(pass) / float64(counted))), true
}

// numberIn reads a numeric cell. A blank cell fails the predicate, a
// non-numeric non-blank cell is malformed and skips the row.
func numberIn(v signals.Value, pred func(f float64) bool) rowOutcome {
	if v.Blank() {
		return rowFail
	}
	if !v.IsNum {
		return rowSkip
	}
	if pred(v.Num) {
		return rowPass
	}
	return rowFail
}

func boolOutcome(ok bool) rowOutcome {
	if ok {
		return rowPass
	}
	return rowFail
}

// scoreCategory runs each rule, averages the resolvable sub-scores, and
// collects weakness labels for sub-scores under their floor. A category
// with zero resolvable sub-scores scores 0 with an explicit marker so
// "no data" never leaks into aggregation as NaN or a silent zero.
func scoreCategory(category string, t *signals.Table, rules []rule) CategoryResult {
	result := CategoryResult{Category: category}

	sum := 0
	for _, r := range rules {
		value, ok := r.eval(t)
		if !ok {
			continue
		}
		result.SubScores = append(result.SubScores, SubScore{
			Name:      r.name,
			Value:     value,
			Predicate: r.predicate,
		})
		sum += value
		if value < r.floor {
			result.Weaknesses = append(result.Weaknesses, r.weakness)
		}
	}

	if len(result.SubScores) == 0 {
		result.InsufficientData = true
		result.Weaknesses = append(result.Weaknesses,
			fmt.Sprintf("Insufficient data to assess %s.", category))
		return result
	}

	result.Score = int(math.Round(float64(sum) / float64(len(result.SubScores))))
	return result
}
