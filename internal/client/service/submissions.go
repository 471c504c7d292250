package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/leettrack/internal/client/models"
)

// SubmissionService wraps the /submissions/ resource.
type SubmissionService struct {
	api Caller
}

func NewSubmissionService(api Caller) *SubmissionService {
	return &SubmissionService{api: api}
}

func (s *SubmissionService) List(ctx context.Context, filter models.SubmissionFilter) (*models.Page[models.Submission], error) {
	params := url.Values{}
	if filter.Problem != "" {
		params.Set("problem", filter.Problem)
	}
	if filter.Status != "" {
		params.Set("status", filter.Status)
	}
	if filter.Language != "" {
		params.Set("language", filter.Language)
	}
	if filter.Page > 0 {
		params.Set("page", strconv.Itoa(filter.Page))
	}

	resp, err := s.api.Get(ctx, "/submissions/", params)
	if err != nil {
		return nil, err
	}

	var page models.Page[models.Submission]
	if err := resp.JSON(&page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *SubmissionService) Get(ctx context.Context, id string) (*models.Submission, error) {
	resp, err := s.api.Get(ctx, fmt.Sprintf("/submissions/%s/", id), nil)
	if err != nil {
		return nil, err
	}

	var sub models.Submission
	if err := resp.JSON(&sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *SubmissionService) Create(ctx context.Context, data models.NewSubmission) (*models.Submission, error) {
	resp, err := s.api.Post(ctx, "/submissions/", data)
	if err != nil {
		return nil, err
	}

	var sub models.Submission
	if err := resp.JSON(&sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// ListForProblem returns the caller's submissions for one problem.
func (s *SubmissionService) ListForProblem(ctx context.Context, problemID string) (*models.Page[models.Submission], error) {
	return s.List(ctx, models.SubmissionFilter{Problem: problemID})
}
