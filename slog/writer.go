// Package slog provides logging decorators for cfscrape interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cfscrape"
)

// Ensure LoggingWriter implements cfscrape.RecordWriter.
var _ cfscrape.RecordWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a RecordWriter with artifact-write logging.
type LoggingWriter struct {
	next   cfscrape.RecordWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next cfscrape.RecordWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteRecord logs the identifier and record shape and delegates to the
// wrapped writer.
func (w *LoggingWriter) WriteRecord(ctx context.Context, id string, problem *cfscrape.Problem) (err error) {
	samples, tags := 0, 0
	if problem != nil {
		samples, tags = len(problem.Samples), len(problem.Tags)
	}
	defer func(begin time.Time) {
		w.logger.Info("write record",
			"id", id,
			"samples", samples,
			"tags", tags,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteRecord(ctx, id, problem)
}
