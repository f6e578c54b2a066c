package cfscrape

import (
	"context"
	"strings"
	"time"
)

// DefaultBaseURL is the site root problem pages are fetched from.
const DefaultBaseURL = "https://codeforces.com"

// Sample is one sample test: an input block and its expected output.
type Sample struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// Problem is the record extracted from a single problem page.
//
// Title and the two limits are optional: when the page lacks the marker
// the field stays empty and is omitted from the JSON artifact. Samples
// and Tags are always present, possibly empty. Struct field order fixes
// the key order of the JSON artifact.
//
// A Problem is never mutated after extraction; it is written exactly
// once per identifier.
type Problem struct {
	Title       string   `json:"title,omitempty"`
	TimeLimit   string   `json:"time_limit,omitempty"`
	MemoryLimit string   `json:"memory_limit,omitempty"`
	Statement   string   `json:"statement"`
	Samples     []Sample `json:"samples"`
	Tags        []string `json:"tags"`
}

// ProblemURL builds the page address for a problem identifier, e.g.
// "1/A" becomes "<base>/problemset/problem/1/A". Identifiers are not
// validated; a malformed one simply addresses an unreachable or empty
// page.
func ProblemURL(baseURL, id string) string {
	return strings.TrimSuffix(baseURL, "/") + "/problemset/problem/" + id
}

// SanitizeID converts a problem identifier into a filename-safe stem by
// replacing every path separator with an underscore. Both output
// artifacts for one identifier share this stem.
func SanitizeID(id string) string {
	return strings.ReplaceAll(id, "/", "_")
}

// ArchivedProblem is a Problem stored in the archive database, together
// with the identity and provenance the archive adds.
type ArchivedProblem struct {
	Problem

	ID          string    `json:"id"`
	ProblemID   string    `json:"problemId"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the archived problem contains invalid fields.
func (p *ArchivedProblem) Validate() error {
	if p.ProblemID == "" {
		return Errorf(EINVALID, "problem identifier required")
	}
	return nil
}

// ProblemService archives extracted problems for later lookup.
type ProblemService interface {
	// CreateProblem stores a newly extracted problem, assigning its
	// identity and fetch timestamp.
	CreateProblem(ctx context.Context, p *ArchivedProblem) error

	// FindProblemByID retrieves an archived problem by its record ID.
	// Returns ENOTFOUND if no such record exists.
	FindProblemByID(ctx context.Context, id string) (*ArchivedProblem, error)

	// FindProblems retrieves archived problems matching the filter,
	// newest first.
	FindProblems(ctx context.Context, filter ProblemFilter) ([]*ArchivedProblem, error)
}

// ProblemFilter represents a filter for FindProblems.
type ProblemFilter struct {
	ProblemID *string `json:"problemId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
