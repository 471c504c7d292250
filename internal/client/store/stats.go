package store

import "context"

// FetchUserStats loads the aggregate numbers for the dashboard.
func (s *Store) FetchUserStats(ctx context.Context) error {
	s.mu.Lock()
	s.stats.Status = StatusPending
	s.stats.Error = nil
	s.mu.Unlock()

	st, err := s.statsSvc.UserStats(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.stats.Status = StatusFailed
		s.stats.Error = newErrorPayload(err, "Failed to fetch statistics")
		return err
	}
	s.stats.Status = StatusSucceeded
	s.stats.Stats = st
	return nil
}

// FetchTodayActivity loads today's activity counters.
func (s *Store) FetchTodayActivity(ctx context.Context) error {
	s.mu.Lock()
	s.stats.Status = StatusPending
	s.stats.Error = nil
	s.mu.Unlock()

	a, err := s.statsSvc.TodayActivity(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.stats.Status = StatusFailed
		s.stats.Error = newErrorPayload(err, "Failed to fetch today's activity")
		return err
	}
	s.stats.Status = StatusSucceeded
	s.stats.Activity = a
	return nil
}

// FetchStreak loads the current/longest streak pair.
func (s *Store) FetchStreak(ctx context.Context) error {
	s.mu.Lock()
	s.stats.Status = StatusPending
	s.stats.Error = nil
	s.mu.Unlock()

	st, err := s.statsSvc.Streak(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.stats.Status = StatusFailed
		s.stats.Error = newErrorPayload(err, "Failed to fetch streak")
		return err
	}
	s.stats.Status = StatusSucceeded
	s.stats.Streak = st
	return nil
}
