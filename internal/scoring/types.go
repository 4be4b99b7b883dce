package scoring

// Category names as they appear in reports and exports.
const (
	CategoryContent   = "Content SEO"
	CategoryTechnical = "Technical SEO"
	CategoryUX        = "User Experience"
)

// SubScore is one 0-100 measurement: the share of rows in a table that
// satisfy a single predicate over one or two signals. Estimated marks a
// value that stands in for missing data rather than being measured; the
// current rule set never blends estimates into a category mean, but the
// provenance flag keeps downstream consumers honest if a rule ever does.
type SubScore struct {
	Name      string `json:"name"`
	Value     int    `json:"value"`
	Predicate string `json:"predicate"`
	Estimated bool   `json:"estimated,omitempty"`
}

// CategoryResult is the outcome of scoring one category over one table.
type CategoryResult struct {
	Category         string     `json:"category"`
	Score            int        `json:"score"`
	SubScores        []SubScore `json:"subScores"`
	Weaknesses       []string   `json:"weaknesses"`
	InsufficientData bool       `json:"insufficientData,omitempty"`
}

// Detail returns sub-score values keyed by name.
func (r CategoryResult) Detail() map[string]int {
	out := make(map[string]int, len(r.SubScores))
	for _, s := range r.SubScores {
		out[s.Name] = s.Value
	}
	return out
}

// SubScoreValue looks up a sub-score by name.
func (r CategoryResult) SubScoreValue(name string) (int, bool) {
	for _, s := range r.SubScores {
		if s.Name == name {
			return s.Value, true
		}
	}
	return 0, false
}
