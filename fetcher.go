package cfscrape

import "context"

// Fetcher retrieves rendered HTML from a problem page.
//
// Implementations drive browser automation behind a narrow capability
// surface: navigate to the address, block until the marker element is
// present in the rendered document, and capture a single snapshot of the
// full markup. The session backing one Fetch call is owned exclusively by
// that call and is released before Fetch returns, on every exit path.
type Fetcher interface {
	// Fetch navigates to url, waits for the waitFor marker to appear,
	// and returns the rendered HTML. It returns an ETIMEOUT error when
	// the marker does not appear within the configured wait budget and
	// an EUNAVAILABLE error when the page cannot be reached.
	Fetch(ctx context.Context, url, waitFor string) (html string, err error)
}
