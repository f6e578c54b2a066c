// Package fs provides file-based persistence for extracted problems.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/cfscrape"
)

// Ensure Writer implements cfscrape.RecordWriter at compile time.
var _ cfscrape.RecordWriter = (*Writer)(nil)

// Writer writes both problem artifacts into a single output directory.
type Writer struct {
	dir string
}

// NewWriter creates a Writer rooted at dir, creating the directory if it
// does not exist. Creation is idempotent.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// RecordPaths returns the text and JSON artifact paths for a problem
// identifier. Both share the sanitized identifier as their stem.
func (w *Writer) RecordPaths(id string) (txtPath, jsonPath string) {
	stem := "problem_" + cfscrape.SanitizeID(id)
	return filepath.Join(w.dir, stem+".txt"), filepath.Join(w.dir, stem+".json")
}

// WriteRecord writes the statement text artifact and the JSON record.
func (w *Writer) WriteRecord(ctx context.Context, id string, problem *cfscrape.Problem) error {
	if problem == nil {
		return cfscrape.Errorf(cfscrape.EINVALID, "problem record required")
	}

	txtPath, jsonPath := w.RecordPaths(id)

	if err := os.WriteFile(txtPath, []byte(problem.Statement), 0644); err != nil {
		return fmt.Errorf("writing statement artifact: %w", err)
	}

	data, err := MarshalRecord(problem)
	if err != nil {
		return err
	}
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return fmt.Errorf("writing record artifact: %w", err)
	}

	return nil
}

// MarshalRecord encodes a problem as the JSON artifact body: two-space
// indentation, key order following the record's field order, and
// non-ASCII characters left unescaped.
func MarshalRecord(problem *cfscrape.Problem) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(problem); err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}
	return buf.Bytes(), nil
}
