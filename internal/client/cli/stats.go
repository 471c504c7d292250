package cli

import (
	"context"
	"fmt"
)

// Stats shows the score card, today's activity and the current streak.
func (a *App) Stats(ctx context.Context) error {
	if err := a.store.FetchUserStats(ctx); err != nil {
		renderError(a.store.Stats().Error)
		return err
	}
	if err := a.store.FetchTodayActivity(ctx); err != nil {
		renderError(a.store.Stats().Error)
		return err
	}
	if err := a.store.FetchStreak(ctx); err != nil {
		renderError(a.store.Stats().Error)
		return err
	}

	state := a.store.Stats()

	if s := state.Stats; s != nil {
		fmt.Printf("Ranking percentile:    %.1f\n", s.RankingPercentile)
		fmt.Printf("Consistency score:     %.1f\n", s.ConsistencyScore)
		fmt.Printf("Problem solving score: %.1f\n", s.ProblemSolvingScore)
		fmt.Printf("Code quality score:    %.1f\n", s.CodeQualityScore)
	}
	if act := state.Activity; act != nil {
		fmt.Printf("Today: %d solved (%d easy, %d medium, %d hard), %d submissions\n",
			act.ProblemsSolved, act.EasySolved, act.MediumSolved, act.HardSolved, act.TotalSubmissions)
	}
	if s := state.Streak; s != nil {
		fmt.Printf("Streak: %d day(s)", s.Streak)
		if !s.HasActivityToday {
			fmt.Print(" (no activity yet today)")
		}
		fmt.Println()
	}
	return nil
}
