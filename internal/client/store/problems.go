package store

import (
	"context"

	"github.com/dmitrijs2005/leettrack/internal/client/models"
)

// FetchProblems loads a catalog page and replaces the in-memory list.
func (s *Store) FetchProblems(ctx context.Context, filter models.ProblemFilter) error {
	s.mu.Lock()
	s.problems.Status = StatusPending
	s.problems.Error = nil
	s.mu.Unlock()

	page, err := s.problemSvc.List(ctx, filter)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.problems.Status = StatusFailed
		s.problems.Error = newErrorPayload(err, "Failed to fetch problems")
		return err
	}
	s.problems.Status = StatusSucceeded
	s.problems.Problems = page.Results
	s.problems.Pagination = models.PageInfo(page)
	return nil
}

// FetchProblem loads a single problem into the detail slot.
func (s *Store) FetchProblem(ctx context.Context, id string) error {
	s.mu.Lock()
	s.problems.Status = StatusPending
	s.problems.Problem = nil
	s.problems.Error = nil
	s.mu.Unlock()

	p, err := s.problemSvc.Get(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.problems.Status = StatusFailed
		s.problems.Error = newErrorPayload(err, "Failed to fetch problem")
		return err
	}
	s.problems.Status = StatusSucceeded
	s.problems.Problem = p
	return nil
}

// FetchTodayChallenge loads today's challenge; a nil result (no
// challenge scheduled) is a success with an empty slot.
func (s *Store) FetchTodayChallenge(ctx context.Context) error {
	s.mu.Lock()
	s.problems.Status = StatusPending
	s.problems.Error = nil
	s.mu.Unlock()

	p, err := s.problemSvc.TodayChallenge(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.problems.Status = StatusFailed
		s.problems.Error = newErrorPayload(err, "Failed to fetch today's challenge")
		return err
	}
	s.problems.Status = StatusSucceeded
	s.problems.TodayChallenge = p
	return nil
}
