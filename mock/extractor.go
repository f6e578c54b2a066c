package mock

import "github.com/fwojciec/cfscrape"

var _ cfscrape.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of cfscrape.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*cfscrape.Problem, error)
}

func (e *Extractor) Extract(html string) (*cfscrape.Problem, error) {
	return e.ExtractFn(html)
}
