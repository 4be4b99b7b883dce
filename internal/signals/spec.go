package signals

// Spec describes one signal the engine knows how to read: its canonical
// name plus the column-name aliases used by different crawl-export tools.
// The alias list is the external contract with export producers.
type Spec struct {
	Name    string
	Aliases []string
}

// Values is a resolved signal: the matched column plus its cells.
type Values struct {
	Spec   Spec
	Column string
	Cells  []Value
}

// Resolve finds the first alias present in the table and extracts it.
// A signal missing from the table is a valid, expected state, not an
// error; the second return is false and the caller applies its fallback.
func (s Spec) Resolve(t *Table) (Values, bool) {
	for _, alias := range s.Aliases {
		if cells, ok := t.Column(alias); ok {
			return Values{Spec: s, Column: alias, Cells: cells}, true
		}
	}
	return Values{Spec: s}, false
}

// Known signal vocabulary. Aliases follow the naming of common crawl
// export tools (Screaming Frog first, generic names after).
var (
	Title             = Spec{Name: "title", Aliases: []string{"Title 1", "Title"}}
	TitleLength       = Spec{Name: "title_length", Aliases: []string{"Title 1 Length", "Title Length"}}
	MetaDescription   = Spec{Name: "meta_description", Aliases: []string{"Meta Description 1", "Meta Description"}}
	MetaDescLength    = Spec{Name: "meta_description_length", Aliases: []string{"Meta Description 1 Length", "Meta Description Length"}}
	H1                = Spec{Name: "h1", Aliases: []string{"H1-1", "H1"}}
	Inlinks           = Spec{Name: "inlinks", Aliases: []string{"Inlinks"}}
	UniqueInlinks     = Spec{Name: "unique_inlinks", Aliases: []string{"Unique Inlinks"}}
	WordCount         = Spec{Name: "word_count", Aliases: []string{"Word Count"}}
	FleschScore       = Spec{Name: "flesch_score", Aliases: []string{"Flesch Reading Ease Score", "Readability"}}
	StructuredData    = Spec{Name: "structured_data", Aliases: []string{"Structured Data", "Schema.org Types"}}
	ImagesMissingAlt  = Spec{Name: "images_missing_alt", Aliases: []string{"Images Missing Alt Text", "Images Without Alt Text"}}
	ResponseTime      = Spec{Name: "response_time", Aliases: []string{"Response Time"}}
	StatusCode        = Spec{Name: "status_code", Aliases: []string{"Status Code"}}
	Indexability      = Spec{Name: "indexability", Aliases: []string{"Indexability"}}
	Indexable         = Spec{Name: "indexable", Aliases: []string{"Indexable"}}
	Canonical         = Spec{Name: "canonical", Aliases: []string{"Canonical Link Element 1", "Canonical", "Canonical URL"}}
	Address           = Spec{Name: "address", Aliases: []string{"Address", "URL"}}
	Hreflang          = Spec{Name: "hreflang", Aliases: []string{"Hreflang 1", "Hreflang"}}
	MobileAlternate   = Spec{Name: "mobile_alternate", Aliases: []string{"Mobile Alternate Link"}}
	LargestPaint      = Spec{Name: "largest_contentful_paint", Aliases: []string{"Largest Contentful Paint Time (ms)", "LCP"}}
	CumulativeLayout  = Spec{Name: "cumulative_layout_shift", Aliases: []string{"Cumulative Layout Shift", "CLS"}}
)
