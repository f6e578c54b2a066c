package mock

import (
	"context"

	"github.com/fwojciec/cfscrape"
)

var _ cfscrape.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of cfscrape.RecordWriter.
type RecordWriter struct {
	WriteRecordFn func(ctx context.Context, id string, problem *cfscrape.Problem) error
}

func (w *RecordWriter) WriteRecord(ctx context.Context, id string, problem *cfscrape.Problem) error {
	return w.WriteRecordFn(ctx, id, problem)
}
