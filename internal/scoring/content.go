package scoring

import "seopulse-backend/internal/signals"

var contentRules = []rule{
	{
		name:      "meta_title",
		predicate: "title present and title length in [30,60]",
		floor:     50,
		weakness:  "Short or missing meta titles.",
		eval: func(t *signals.Table) (int, bool) {
			titles, ok := signals.Title.Resolve(t)
			if !ok {
				return 0, false
			}
			lengths, ok := signals.TitleLength.Resolve(t)
			if !ok {
				return 0, false
			}
			return fraction(t.Len(), func(i int) rowOutcome {
				if titles.Cells[i].Blank() {
					return rowFail
				}
				return numberIn(lengths.Cells[i], func(f float64) bool {
					return f >= 30 && f <= 60
				})
			})
		},
	},
	{
		name:      "meta_description",
		predicate: "description present and description length in [120,160]",
		floor:     50,
		weakness:  "Short or missing meta descriptions.",
		eval: func(t *signals.Table) (int, bool) {
			descs, ok := signals.MetaDescription.Resolve(t)
			if !ok {
				return 0, false
			}
			lengths, ok := signals.MetaDescLength.Resolve(t)
			if !ok {
				return 0, false
			}
			return fraction(t.Len(), func(i int) rowOutcome {
				if descs.Cells[i].Blank() {
					return rowFail
				}
				return numberIn(lengths.Cells[i], func(f float64) bool {
					return f >= 120 && f <= 160
				})
			})
		},
	},
	{
		name:      "h1_tags",
		predicate: "first H1 present",
		floor:     50,
		weakness:  "Missing or poorly optimized H1 tags.",
		eval: func(t *signals.Table) (int, bool) {
			h1s, ok := signals.H1.Resolve(t)
			if !ok {
				return 0, false
			}
			return fraction(t.Len(), func(i int) rowOutcome {
				return boolOutcome(!h1s.Cells[i].Blank())
			})
		},
	},
	{
		name:      "internal_linking",
		predicate: "inlinks > 0 and unique inlinks > 0",
		floor:     50,
		weakness:  "Insufficient internal linking.",
		eval: func(t *signals.Table) (int, bool) {
			inlinks, ok := signals.Inlinks.Resolve(t)
			if !ok {
				return 0, false
			}
			unique, ok := signals.UniqueInlinks.Resolve(t)
			if !ok {
				return 0, false
			}
			return fraction(t.Len(), func(i int) rowOutcome {
				first := numberIn(inlinks.Cells[i], func(f float64) bool { return f > 0 })
				if first != rowPass {
					return first
				}
				return numberIn(unique.Cells[i], func(f float64) bool { return f > 0 })
			})
		},
	},
	{
		name:      "content_quality",
		predicate: "word count >= 300 and Flesch reading ease >= 60",
		floor:     50,
		weakness:  "Low content quality or poor readability.",
		eval: func(t *signals.Table) (int, bool) {
			words, ok := signals.WordCount.Resolve(t)
			if !ok {
				return 0, false
			}
			flesch, ok := signals.FleschScore.Resolve(t)
			if !ok {
				return 0, false
			}
			return fraction(t.Len(), func(i int) rowOutcome {
				first := numberIn(words.Cells[i], func(f float64) bool { return f >= 300 })
				if first != rowPass {
					return first
				}
				return numberIn(flesch.Cells[i], func(f float64) bool { return f >= 60 })
			})
		},
	},
	{
		name:      "structured_data",
		predicate: "structured data markup present",
		floor:     50,
		weakness:  "Missing structured data markup.",
		eval: func(t *signals.Table) (int, bool) {
			sd, ok := signals.StructuredData.Resolve(t)
			if !ok {
				return 0, false
			}
			return fraction(t.Len(), func(i int) rowOutcome {
				return boolOutcome(!sd.Cells[i].Blank())
			})
		},
	},
	{
		name:      "image_alt_text",
		predicate: "no images missing alt text",
		floor:     50,
		weakness:  "Images missing alt text.",
		eval: func(t *signals.Table) (int, bool) {
			missing, ok := signals.ImagesMissingAlt.Resolve(t)
			if !ok {
				return 0, false
			}
			return fraction(t.Len(), func(i int) rowOutcome {
				return numberIn(missing.Cells[i], func(f float64) bool { return f == 0 })
			})
		},
	},
}

// ScoreContent scores meta titles, descriptions, headings, internal
// linking, content depth, structured data, and image alt coverage.
func ScoreContent(t *signals.Table) CategoryResult {
	return scoreCategory(CategoryContent, t, contentRules)
}
