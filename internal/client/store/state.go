package store

import (
	"errors"

	"github.com/dmitrijs2005/leettrack/internal/client/api"
	"github.com/dmitrijs2005/leettrack/internal/client/models"
	"github.com/dmitrijs2005/leettrack/internal/client/session"
)

// Status is the request-lifecycle state of a slice. Transitions are
// always pending -> succeeded|failed, and any new dispatch resets the
// slice back to pending.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// ErrorPayload is what a failed operation leaves behind: the backend's
// field-keyed validation map when there is one, otherwise a fallback
// message.
type ErrorPayload struct {
	Fields   map[string][]string
	NonField []string
	Message  string
}

// newErrorPayload shapes err into an ErrorPayload, using fallback as the
// message for unstructured failures (network errors and the like).
func newErrorPayload(err error, fallback string) *ErrorPayload {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		p := &ErrorPayload{
			Fields:   apiErr.Fields,
			NonField: apiErr.NonField,
			Message:  apiErr.Detail,
		}
		if p.Message == "" && len(p.Fields) == 0 && len(p.NonField) == 0 {
			p.Message = fallback
		}
		return p
	}
	return &ErrorPayload{Message: fallback}
}

// AuthState is the auth slice. User carries the claims decoded from the
// access token merged with whatever the profile endpoints returned.
type AuthState struct {
	Status          Status
	User            *session.Claims
	Profile         *models.User
	IsAuthenticated bool
	Success         bool
	Error           *ErrorPayload
}

// ProblemsState is the catalog slice.
type ProblemsState struct {
	Status         Status
	Problems       []models.Problem
	Problem        *models.Problem
	TodayChallenge *models.Problem
	Pagination     models.Pagination
	Error          *ErrorPayload
}

// SubmissionsState is the submissions slice. Success is the banner flag
// the view clears after its display window.
type SubmissionsState struct {
	Status      Status
	Submissions []models.Submission
	Submission  *models.Submission
	Success     bool
	Pagination  models.Pagination
	Error       *ErrorPayload
}

// StatsState is the analytics slice.
type StatsState struct {
	Status   Status
	Stats    *models.UserStats
	Activity *models.DailyActivity
	Streak   *models.Streak
	Error    *ErrorPayload
}
