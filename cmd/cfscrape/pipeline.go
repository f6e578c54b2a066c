package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/cfscrape"
)

// Pipeline runs one full extraction: fetch the rendered page, extract
// the record, persist the artifacts, and optionally archive the record.
type Pipeline struct {
	Fetcher   cfscrape.Fetcher
	Extractor cfscrape.Extractor
	Writer    cfscrape.RecordWriter
	Archive   cfscrape.ProblemService // optional
	Logger    *slog.Logger

	BaseURL string
	WaitFor string
}

// Extract fetches one problem page, extracts its record, and writes the
// artifacts. A failure at any stage aborts the attempt for this
// identifier only, with the target address carried in the error; no
// artifacts exist for a failed attempt.
func (p *Pipeline) Extract(ctx context.Context, id string) (*cfscrape.Problem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	url := cfscrape.ProblemURL(p.BaseURL, id)

	html, err := p.Fetcher.Fetch(ctx, url, p.WaitFor)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	problem, err := p.Extractor.Extract(html)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", url, err)
	}

	if err := p.Writer.WriteRecord(ctx, id, problem); err != nil {
		return nil, fmt.Errorf("writing record for %s: %w", id, err)
	}

	if p.Archive != nil {
		archived := &cfscrape.ArchivedProblem{ProblemID: id, Problem: *problem}
		if err := p.Archive.CreateProblem(ctx, archived); err != nil {
			// The file artifacts are the source of truth; a failed
			// archive write does not fail the attempt.
			p.logger().Warn("archive write failed", "id", id, "err", err)
		}
	}

	return problem, nil
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}
