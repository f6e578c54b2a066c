package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/cfscrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ cfscrape.ProblemService = (*ProblemService)(nil)

// ProblemService implements cfscrape.ProblemService using SQLite.
type ProblemService struct {
	db *DB
}

// NewProblemService creates a new ProblemService.
func NewProblemService(db *DB) *ProblemService {
	return &ProblemService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// CreateProblem stores a newly extracted problem. It assigns the record
// ID, stamps the fetch time, and hashes the statement so re-scrapes of
// the same identifier can be compared cheaply.
func (s *ProblemService) CreateProblem(ctx context.Context, p *cfscrape.ArchivedProblem) error {
	if err := p.Validate(); err != nil {
		return err
	}

	p.ID = uuid.New().String()
	p.FetchedAt = time.Now().UTC()
	p.ContentHash = hashContent(p.Statement)

	samples, err := json.Marshal(p.Samples)
	if err != nil {
		return fmt.Errorf("failed to encode samples: %w", err)
	}
	tags, err := json.Marshal(p.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO problems (id, problem_id, title, time_limit, memory_limit, statement, samples, tags, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.ProblemID, p.Title, p.TimeLimit, p.MemoryLimit, p.Statement,
		string(samples), string(tags), p.ContentHash, p.FetchedAt.Format(time.RFC3339))

	return err
}

// FindProblemByID retrieves an archived problem by its record ID.
func (s *ProblemService) FindProblemByID(ctx context.Context, id string) (*cfscrape.ArchivedProblem, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, problem_id, title, time_limit, memory_limit, statement, samples, tags, content_hash, fetched_at
		FROM problems
		WHERE id = ?
	`, id)

	p, err := scanProblem(row.Scan)
	if err == sql.ErrNoRows {
		return nil, cfscrape.Errorf(cfscrape.ENOTFOUND, "problem not found")
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

// FindProblems retrieves archived problems matching the filter, newest
// first.
func (s *ProblemService) FindProblems(ctx context.Context, filter cfscrape.ProblemFilter) ([]*cfscrape.ArchivedProblem, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, problem_id, title, time_limit, memory_limit, statement, samples, tags, content_hash, fetched_at FROM problems WHERE 1=1")

	if filter.ProblemID != nil {
		query.WriteString(" AND problem_id = ?")
		args = append(args, *filter.ProblemID)
	}

	query.WriteString(" ORDER BY fetched_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var problems []*cfscrape.ArchivedProblem
	for rows.Next() {
		p, err := scanProblem(rows.Scan)
		if err != nil {
			return nil, err
		}
		problems = append(problems, p)
	}

	return problems, rows.Err()
}

// scanProblem reads one problems row via the given scan function and
// decodes the JSON-encoded samples and tags columns.
func scanProblem(scan func(dest ...any) error) (*cfscrape.ArchivedProblem, error) {
	var p cfscrape.ArchivedProblem
	var samples, tags, fetchedAt string

	if err := scan(&p.ID, &p.ProblemID, &p.Title, &p.TimeLimit, &p.MemoryLimit,
		&p.Statement, &samples, &tags, &p.ContentHash, &fetchedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(samples), &p.Samples); err != nil {
		return nil, fmt.Errorf("failed to decode samples: %w", err)
	}
	if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}

	var err error
	p.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}

	return &p, nil
}
