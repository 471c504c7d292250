package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/leettrack/internal/client/models"
)

// ProblemService wraps the /problems/ resource.
type ProblemService struct {
	api Caller
}

func NewProblemService(api Caller) *ProblemService {
	return &ProblemService{api: api}
}

func (s *ProblemService) List(ctx context.Context, filter models.ProblemFilter) (*models.Page[models.Problem], error) {
	params := url.Values{}
	if filter.Difficulty != "" {
		params.Set("difficulty", filter.Difficulty)
	}
	if filter.Tag != "" {
		params.Set("tag", filter.Tag)
	}
	if filter.Category != "" {
		params.Set("category", filter.Category)
	}
	if filter.Search != "" {
		params.Set("search", filter.Search)
	}
	if filter.Page > 0 {
		params.Set("page", strconv.Itoa(filter.Page))
	}

	resp, err := s.api.Get(ctx, "/problems/", params)
	if err != nil {
		return nil, err
	}

	var page models.Page[models.Problem]
	if err := resp.JSON(&page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *ProblemService) Get(ctx context.Context, id string) (*models.Problem, error) {
	resp, err := s.api.Get(ctx, fmt.Sprintf("/problems/%s/", id), nil)
	if err != nil {
		return nil, err
	}

	var p models.Problem
	if err := resp.JSON(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// TodayChallenge returns today's challenge problem, or nil when the
// backend has none scheduled.
func (s *ProblemService) TodayChallenge(ctx context.Context) (*models.Problem, error) {
	resp, err := s.api.Get(ctx, "/problems/today-challenge/", nil)
	if err != nil {
		return nil, err
	}

	var page models.Page[models.Problem]
	if err := resp.JSON(&page); err != nil {
		return nil, err
	}
	if len(page.Results) == 0 {
		return nil, nil
	}
	return &page.Results[0], nil
}

func (s *ProblemService) ListByDifficulty(ctx context.Context, difficulty string) (*models.Page[models.Problem], error) {
	return s.List(ctx, models.ProblemFilter{Difficulty: difficulty})
}

func (s *ProblemService) ListByTag(ctx context.Context, tag string) (*models.Page[models.Problem], error) {
	return s.List(ctx, models.ProblemFilter{Tag: tag})
}
