package store

import (
	"context"

	"github.com/dmitrijs2005/leettrack/internal/client/models"
)

// FetchSubmissions loads a submission history page.
func (s *Store) FetchSubmissions(ctx context.Context, filter models.SubmissionFilter) error {
	s.mu.Lock()
	s.submissions.Status = StatusPending
	s.submissions.Error = nil
	s.mu.Unlock()

	page, err := s.subSvc.List(ctx, filter)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.submissions.Status = StatusFailed
		s.submissions.Error = newErrorPayload(err, "Failed to fetch submissions")
		return err
	}
	s.submissions.Status = StatusSucceeded
	s.submissions.Submissions = page.Results
	s.submissions.Pagination = models.PageInfo(page)
	return nil
}

// FetchSubmission loads a single submission into the detail slot.
func (s *Store) FetchSubmission(ctx context.Context, id string) error {
	s.mu.Lock()
	s.submissions.Status = StatusPending
	s.submissions.Submission = nil
	s.submissions.Error = nil
	s.mu.Unlock()

	sub, err := s.subSvc.Get(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.submissions.Status = StatusFailed
		s.submissions.Error = newErrorPayload(err, "Failed to fetch submission")
		return err
	}
	s.submissions.Status = StatusSucceeded
	s.submissions.Submission = sub
	return nil
}

// CreateSubmission records a new submission. The created record is
// prepended to the in-memory list so the history view reflects it
// without a re-fetch; Success is the banner flag, reset on dispatch and
// raised only on fulfillment.
func (s *Store) CreateSubmission(ctx context.Context, data models.NewSubmission) error {
	s.mu.Lock()
	s.submissions.Status = StatusPending
	s.submissions.Success = false
	s.submissions.Error = nil
	s.mu.Unlock()

	sub, err := s.subSvc.Create(ctx, data)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.submissions.Status = StatusFailed
		s.submissions.Error = newErrorPayload(err, "Failed to create submission")
		return err
	}
	s.submissions.Status = StatusSucceeded
	s.submissions.Success = true
	s.submissions.Submissions = append([]models.Submission{*sub}, s.submissions.Submissions...)
	return nil
}

// FetchProblemSubmissions loads the history for one problem.
func (s *Store) FetchProblemSubmissions(ctx context.Context, problemID string) error {
	s.mu.Lock()
	s.submissions.Status = StatusPending
	s.submissions.Error = nil
	s.mu.Unlock()

	page, err := s.subSvc.ListForProblem(ctx, problemID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.submissions.Status = StatusFailed
		s.submissions.Error = newErrorPayload(err, "Failed to fetch submissions")
		return err
	}
	s.submissions.Status = StatusSucceeded
	s.submissions.Submissions = page.Results
	s.submissions.Pagination = models.PageInfo(page)
	return nil
}

// ClearSubmissionSuccess lowers the banner flag after the view's
// display window expires.
func (s *Store) ClearSubmissionSuccess() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submissions.Success = false
}
