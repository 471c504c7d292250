package models

import "time"

// UserStats is the backend-computed aggregate score card. All scores are
// 0-100.
type UserStats struct {
	ID                  int       `json:"id"`
	RankingPercentile   float64   `json:"ranking_percentile"`
	ConsistencyScore    float64   `json:"consistency_score"`
	ProblemSolvingScore float64   `json:"problem_solving_score"`
	CodeQualityScore    float64   `json:"code_quality_score"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// DailyActivity is one day's worth of solving activity.
type DailyActivity struct {
	Date             string `json:"date"`
	ProblemsSolved   int    `json:"problems_solved"`
	EasySolved       int    `json:"easy_solved"`
	MediumSolved     int    `json:"medium_solved"`
	HardSolved       int    `json:"hard_solved"`
	TotalSubmissions int    `json:"total_submissions"`
	StreakMaintained bool   `json:"streak_maintained"`
}

// Streak is the backend's consecutive-active-days summary.
type Streak struct {
	Streak           int  `json:"streak"`
	HasActivityToday bool `json:"has_activity_today"`
}
