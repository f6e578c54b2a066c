package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/cfscrape"
	"github.com/fwojciec/cfscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okProblem() *cfscrape.Problem {
	return &cfscrape.Problem{
		Title:     "A. Theatre Square",
		Statement: "Body.",
		Samples:   []cfscrape.Sample{{Input: "1", Output: "2"}},
		Tags:      []string{"math"},
	}
}

func TestPipeline_Extract(t *testing.T) {
	t.Parallel()

	t.Run("fetches, extracts, and writes", func(t *testing.T) {
		t.Parallel()

		var fetchedURL, fetchedWaitFor, writtenID string

		p := &Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url, waitFor string) (string, error) {
					fetchedURL, fetchedWaitFor = url, waitFor
					return "<html>snapshot</html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*cfscrape.Problem, error) {
					assert.Equal(t, "<html>snapshot</html>", html)
					return okProblem(), nil
				},
			},
			Writer: &mock.RecordWriter{
				WriteRecordFn: func(ctx context.Context, id string, problem *cfscrape.Problem) error {
					writtenID = id
					return nil
				},
			},
			BaseURL: "https://codeforces.com",
			WaitFor: "div.problem-statement",
		}

		problem, err := p.Extract(context.Background(), "1/A")

		require.NoError(t, err)
		assert.Equal(t, "A. Theatre Square", problem.Title)
		assert.Equal(t, "https://codeforces.com/problemset/problem/1/A", fetchedURL)
		assert.Equal(t, "div.problem-statement", fetchedWaitFor)
		assert.Equal(t, "1/A", writtenID)
	})

	t.Run("fetch failure carries the address and skips the writer", func(t *testing.T) {
		t.Parallel()

		writerCalled := false
		p := &Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url, waitFor string) (string, error) {
					return "", cfscrape.Errorf(cfscrape.ETIMEOUT, "marker did not appear")
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*cfscrape.Problem, error) {
					t.Fatal("extractor must not run after a failed fetch")
					return nil, nil
				},
			},
			Writer: &mock.RecordWriter{
				WriteRecordFn: func(ctx context.Context, id string, problem *cfscrape.Problem) error {
					writerCalled = true
					return nil
				},
			},
			BaseURL: "https://codeforces.com",
			WaitFor: "div.problem-statement",
		}

		_, err := p.Extract(context.Background(), "1/A")

		require.Error(t, err)
		assert.Equal(t, cfscrape.ETIMEOUT, cfscrape.ErrorCode(err))
		assert.Contains(t, err.Error(), "https://codeforces.com/problemset/problem/1/A")
		assert.False(t, writerCalled, "no artifacts may be written for a failed attempt")
	})

	t.Run("extract failure skips the writer", func(t *testing.T) {
		t.Parallel()

		writerCalled := false
		p := &Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url, waitFor string) (string, error) {
					return "<html></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*cfscrape.Problem, error) {
					return nil, cfscrape.Errorf(cfscrape.ENOTFOUND, "could not find problem statement")
				},
			},
			Writer: &mock.RecordWriter{
				WriteRecordFn: func(ctx context.Context, id string, problem *cfscrape.Problem) error {
					writerCalled = true
					return nil
				},
			},
			BaseURL: "https://codeforces.com",
		}

		_, err := p.Extract(context.Background(), "1/A")

		require.Error(t, err)
		assert.Equal(t, cfscrape.ENOTFOUND, cfscrape.ErrorCode(err))
		assert.False(t, writerCalled)
	})

	t.Run("write failure fails the attempt", func(t *testing.T) {
		t.Parallel()

		p := &Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url, waitFor string) (string, error) {
					return "<html></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*cfscrape.Problem, error) {
					return okProblem(), nil
				},
			},
			Writer: &mock.RecordWriter{
				WriteRecordFn: func(ctx context.Context, id string, problem *cfscrape.Problem) error {
					return cfscrape.Errorf(cfscrape.EINTERNAL, "disk full")
				},
			},
			BaseURL: "https://codeforces.com",
		}

		_, err := p.Extract(context.Background(), "1/A")
		require.Error(t, err)
	})

	t.Run("archive failure is logged but does not fail the attempt", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		p := &Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url, waitFor string) (string, error) {
					return "<html></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*cfscrape.Problem, error) {
					return okProblem(), nil
				},
			},
			Writer: &mock.RecordWriter{
				WriteRecordFn: func(ctx context.Context, id string, problem *cfscrape.Problem) error {
					return nil
				},
			},
			Archive: &mock.ProblemService{
				CreateProblemFn: func(ctx context.Context, p *cfscrape.ArchivedProblem) error {
					return cfscrape.Errorf(cfscrape.EINTERNAL, "archive unavailable")
				},
			},
			Logger:  slog.New(slog.NewTextHandler(&buf, nil)),
			BaseURL: "https://codeforces.com",
		}

		problem, err := p.Extract(context.Background(), "1/A")

		require.NoError(t, err)
		assert.NotNil(t, problem)
		assert.Contains(t, buf.String(), "archive write failed")
	})

	t.Run("archives the extracted record", func(t *testing.T) {
		t.Parallel()

		var archived *cfscrape.ArchivedProblem
		p := &Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url, waitFor string) (string, error) {
					return "<html></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*cfscrape.Problem, error) {
					return okProblem(), nil
				},
			},
			Writer: &mock.RecordWriter{
				WriteRecordFn: func(ctx context.Context, id string, problem *cfscrape.Problem) error {
					return nil
				},
			},
			Archive: &mock.ProblemService{
				CreateProblemFn: func(ctx context.Context, p *cfscrape.ArchivedProblem) error {
					archived = p
					return nil
				},
			},
			BaseURL: "https://codeforces.com",
		}

		_, err := p.Extract(context.Background(), "2/C")

		require.NoError(t, err)
		require.NotNil(t, archived)
		assert.Equal(t, "2/C", archived.ProblemID)
		assert.Equal(t, "A. Theatre Square", archived.Title)
	})

	t.Run("cancelled context aborts before fetching", func(t *testing.T) {
		t.Parallel()

		p := &Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url, waitFor string) (string, error) {
					t.Fatal("fetcher must not run with a cancelled context")
					return "", nil
				},
			},
			BaseURL: "https://codeforces.com",
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := p.Extract(ctx, "1/A")

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
