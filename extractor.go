package cfscrape

// Extractor pulls a Problem out of a rendered page snapshot.
type Extractor interface {
	// Extract parses html and extracts the problem fields by fixed
	// structural markers. It returns an ENOTFOUND error when the
	// snapshot has no statement region. Every individual field is
	// optional: an absent field is left empty, never an error.
	Extract(html string) (*Problem, error)
}
