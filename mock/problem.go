package mock

import (
	"context"

	"github.com/fwojciec/cfscrape"
)

var _ cfscrape.ProblemService = (*ProblemService)(nil)

// ProblemService is a mock implementation of cfscrape.ProblemService.
type ProblemService struct {
	CreateProblemFn   func(ctx context.Context, p *cfscrape.ArchivedProblem) error
	FindProblemByIDFn func(ctx context.Context, id string) (*cfscrape.ArchivedProblem, error)
	FindProblemsFn    func(ctx context.Context, filter cfscrape.ProblemFilter) ([]*cfscrape.ArchivedProblem, error)
}

func (s *ProblemService) CreateProblem(ctx context.Context, p *cfscrape.ArchivedProblem) error {
	return s.CreateProblemFn(ctx, p)
}

func (s *ProblemService) FindProblemByID(ctx context.Context, id string) (*cfscrape.ArchivedProblem, error) {
	return s.FindProblemByIDFn(ctx, id)
}

func (s *ProblemService) FindProblems(ctx context.Context, filter cfscrape.ProblemFilter) ([]*cfscrape.ArchivedProblem, error) {
	return s.FindProblemsFn(ctx, filter)
}
