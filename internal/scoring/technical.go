package scoring

import (
	"strings"

	"seopulse-backend/internal/signals"
)

var technicalRules = []rule{
	{
		name:      "response_time",
		predicate: "response time <= 1.0s",
		floor:     50,
		weakness:  "Slow response times.",
		eval: func(t *signals.Table) (int, bool) {
			times, ok := signals.ResponseTime.Resolve(t)
			if !ok {
				return 0, false
			}
			return fraction(t.Len(), func(i int) rowOutcome {
				return numberIn(times.Cells[i], func(f float64) bool { return f <= 1.0 })
			})
		},
	},
	{
		name:      "status_codes",
		predicate: "status code == 200",
		floor:     70,
		weakness:  "Issues with HTTP status codes.",
		eval: func(t *signals.Table) (int, bool) {
			codes, ok := signals.StatusCode.Resolve(t)
			if !ok {
				return 0, false
			}
			return fraction(t.Len(), func(i int) rowOutcome {
				return numberIn(codes.Cells[i], func(f float64) bool { return f == 200 })
			})
		},
	},
	{
		name:      "indexability",
		predicate: `indexability == "Indexable" (or Indexable == "Yes")`,
		floor:     70,
		weakness:  "Pages not indexable.",
		eval: func(t *signals.Table) (int, bool) {
			// Two export dialects: an "Indexability" column holding the
			// literal "Indexable", or a boolean-ish "Indexable" column.
			if vals, ok := signals.Indexability.Resolve(t); ok {
				return fraction(t.Len(), func(i int) rowOutcome {
					return boolOutcome(strings.EqualFold(vals.Cells[i].Raw, "Indexable"))
				})
			}
			vals, ok := signals.Indexable.Resolve(t)
			if !ok {
				return 0, false
			}
			return fraction(t.Len(), func(i int) rowOutcome {
				return boolOutcome(strings.EqualFold(vals.Cells[i].Raw, "Yes"))
			})
		},
	},
	{
		name:      "canonical_tags",
		predicate: "canonical link element present",
		floor:     70,
		weakness:  "Improper or missing canonical tags.",
		eval: func(t *signals.Table) (int, bool) {
			canon, ok := signals.Canonical.Resolve(t)
			if !ok {
				return 0, false
			}
			return fraction(t.Len(), func(i int) rowOutcome {
				return boolOutcome(!canon.Cells[i].Blank())
			})
		},
	},
	{
		name:      "https",
		predicate: "page address uses https",
		floor:     70,
		weakness:  "Pages served over insecure HTTP.",
		eval: func(t *signals.Table) (int, bool) {
			addrs, ok := signals.Address.Resolve(t)
			if !ok {
				return 0, false
			}
			return fraction(t.Len(), func(i int) rowOutcome {
				return boolOutcome(strings.HasPrefix(strings.ToLower(addrs.Cells[i].Raw), "https://"))
			})
		},
	},
	{
		name:      "hreflang",
		predicate: "hreflang annotation present",
		floor:     50,
		weakness:  "Missing hreflang annotations.",
		eval: func(t *signals.Table) (int, bool) {
			tags, ok := signals.Hreflang.Resolve(t)
			if !ok {
				return 0, false
			}
			return fraction(t.Len(), func(i int) rowOutcome {
				return boolOutcome(!tags.Cells[i].Blank())
			})
		},
	},
}

// ScoreTechnical scores response times, status codes, indexability,
// canonical tags, HTTPS coverage, and hreflang hygiene.
func ScoreTechnical(t *signals.Table) CategoryResult {
	return scoreCategory(CategoryTechnical, t, technicalRules)
}
