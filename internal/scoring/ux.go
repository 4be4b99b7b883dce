package scoring

import "seopulse-backend/internal/signals"

var uxRules = []rule{
	{
		name:      "mobile_friendly",
		predicate: "mobile alternate link present",
		floor:     50,
		weakness:  "Pages not mobile-friendly.",
		eval: func(t *signals.Table) (int, bool) {
			mobile, ok := signals.MobileAlternate.Resolve(t)
			if !ok {
				return 0, false
			}
			return fraction(t.Len(), func(i int) rowOutcome {
				return boolOutcome(!mobile.Cells[i].Blank())
			})
		},
	},
	{
		name:      "largest_contentful_paint",
		predicate: "LCP <= 2500ms",
		floor:     50,
		weakness:  "Slow LCP times.",
		eval: func(t *signals.Table) (int, bool) {
			lcp, ok := signals.LargestPaint.Resolve(t)
			if !ok {
				return 0, false
			}
			return fraction(t.Len(), func(i int) rowOutcome {
				return numberIn(lcp.Cells[i], func(f float64) bool { return f <= 2500 })
			})
		},
	},
	{
		name:      "cumulative_layout_shift",
		predicate: "CLS <= 0.1",
		floor:     50,
		weakness:  "High CLS values.",
		eval: func(t *signals.Table) (int, bool) {
			cls, ok := signals.CumulativeLayout.Resolve(t)
			if !ok {
				return 0, false
			}
			return fraction(t.Len(), func(i int) rowOutcome {
				return numberIn(cls.Cells[i], func(f float64) bool { return f <= 0.1 })
			})
		},
	},
}

// ScoreUX scores mobile-friendliness and Core Web Vitals thresholds.
func ScoreUX(t *signals.Table) CategoryResult {
	return scoreCategory(CategoryUX, t, uxRules)
}
