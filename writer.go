package cfscrape

import "context"

// RecordWriter persists one extracted problem as its output artifacts.
type RecordWriter interface {
	// WriteRecord writes the plain-text statement artifact and the JSON
	// record for the problem named by id. Both artifacts share a
	// filename stem derived from the sanitized identifier.
	WriteRecord(ctx context.Context, id string, problem *Problem) error
}
