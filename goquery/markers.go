// Package goquery extracts problem fields from rendered HTML using fixed
// structural markers.
package goquery

// Markers is the lookup table of structural markers used to locate each
// extracted field in the rendered markup. Keeping the selectors as data
// means a site markup change is a table edit, not an extraction-logic
// change.
type Markers struct {
	// Statement locates the problem statement region. The same marker is
	// used as the render-wait condition by the fetcher.
	Statement string

	Title       string
	TimeLimit   string
	MemoryLimit string

	// Sample tests: each SampleTest block is expected to contain a
	// SampleIn and a SampleOut element, each wrapping a SamplePre with
	// the actual text.
	SampleTest string
	SampleIn   string
	SampleOut  string
	SamplePre  string

	// Math marks inline mathematical-markup spans inside the statement;
	// Prose marks the paragraph-like containers scanned for plain text.
	Math  string
	Prose string

	// Tags live outside the statement region and are searched
	// document-wide: TagBox is the compound container class, Tag the
	// label element inside it.
	TagBox string
	Tag    string
}

// DefaultMarkers returns the marker set for the Codeforces problemset
// layout.
func DefaultMarkers() Markers {
	return Markers{
		Statement:   "div.problem-statement",
		Title:       "div.title",
		TimeLimit:   "div.time-limit",
		MemoryLimit: "div.memory-limit",
		SampleTest:  "div.sample-test",
		SampleIn:    "div.input",
		SampleOut:   "div.output",
		SamplePre:   "pre",
		Math:        "span.math",
		Prose:       "p, div",
		TagBox:      "div.roundbox.borderTopRound.borderBottomRound",
		Tag:         "span.tag-box",
	}
}
