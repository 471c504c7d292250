package service

import (
	"context"

	"github.com/dmitrijs2005/leettrack/internal/client/models"
)

// StatsService wraps the read-only analytics resources.
type StatsService struct {
	api Caller
}

func NewStatsService(api Caller) *StatsService {
	return &StatsService{api: api}
}

func (s *StatsService) UserStats(ctx context.Context) (*models.UserStats, error) {
	resp, err := s.api.Get(ctx, "/stats/user/", nil)
	if err != nil {
		return nil, err
	}

	var stats models.UserStats
	if err := resp.JSON(&stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *StatsService) TodayActivity(ctx context.Context) (*models.DailyActivity, error) {
	resp, err := s.api.Get(ctx, "/daily-activity/today/", nil)
	if err != nil {
		return nil, err
	}

	var activity models.DailyActivity
	if err := resp.JSON(&activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (s *StatsService) Streak(ctx context.Context) (*models.Streak, error) {
	resp, err := s.api.Get(ctx, "/daily-activity/streak/", nil)
	if err != nil {
		return nil, err
	}

	var streak models.Streak
	if err := resp.JSON(&streak); err != nil {
		return nil, err
	}
	return &streak, nil
}
