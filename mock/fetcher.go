package mock

import (
	"context"

	"github.com/fwojciec/cfscrape"
)

var _ cfscrape.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of cfscrape.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url, waitFor string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url, waitFor string) (string, error) {
	return f.FetchFn(ctx, url, waitFor)
}
