// Package store holds the client's application state: one slice per
// backend resource, each driven through an explicit request lifecycle by
// the service façade. State transitions are applied atomically in
// dispatch order; racing dispatches for the same slice are resolved
// last-write-wins, with no request sequencing or cancellation.
package store

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/leettrack/internal/client/models"
	"github.com/dmitrijs2005/leettrack/internal/client/session"
	"github.com/dmitrijs2005/leettrack/internal/logging"
)

// Consumer-side views of the service façade; tests substitute fakes.
type AuthAPI interface {
	Login(ctx context.Context, creds models.Credentials) (*models.TokenPair, error)
	Register(ctx context.Context, data models.Registration) (*models.User, error)
	GoogleLogin(ctx context.Context, idToken string) (*models.TokenPair, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, patch models.ProfilePatch) (*models.User, error)
}

type ProblemAPI interface {
	List(ctx context.Context, filter models.ProblemFilter) (*models.Page[models.Problem], error)
	Get(ctx context.Context, id string) (*models.Problem, error)
	TodayChallenge(ctx context.Context) (*models.Problem, error)
}

type SubmissionAPI interface {
	List(ctx context.Context, filter models.SubmissionFilter) (*models.Page[models.Submission], error)
	Get(ctx context.Context, id string) (*models.Submission, error)
	Create(ctx context.Context, data models.NewSubmission) (*models.Submission, error)
	ListForProblem(ctx context.Context, problemID string) (*models.Page[models.Submission], error)
}

type StatsAPI interface {
	UserStats(ctx context.Context) (*models.UserStats, error)
	TodayActivity(ctx context.Context) (*models.DailyActivity, error)
	Streak(ctx context.Context) (*models.Streak, error)
}

// Store owns the state slices and dispatches façade calls.
type Store struct {
	mu          sync.Mutex
	auth        AuthState
	problems    ProblemsState
	submissions SubmissionsState
	stats       StatsState

	session     *session.Session
	authSvc     AuthAPI
	problemSvc  ProblemAPI
	subSvc      SubmissionAPI
	statsSvc    StatsAPI
	log         logging.Logger
}

func New(sess *session.Session, auth AuthAPI, problems ProblemAPI, subs SubmissionAPI, stats StatsAPI, log logging.Logger) *Store {
	return &Store{
		auth:        AuthState{Status: StatusIdle},
		problems:    ProblemsState{Status: StatusIdle},
		submissions: SubmissionsState{Status: StatusIdle},
		stats:       StatsState{Status: StatusIdle},
		session:     sess,
		authSvc:     auth,
		problemSvc:  problems,
		subSvc:      subs,
		statsSvc:    stats,
		log:         log,
	}
}

// Rehydrate restores the persisted auth subset before anything renders.
// It never fails startup: corrupt or absent local state simply yields a
// logged-out session.
func (s *Store) Rehydrate(ctx context.Context) {
	s.session.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth.IsAuthenticated = s.session.IsAuthenticated()
	s.auth.User = s.session.Claims()
}

// Snapshot accessors. Each returns the slice by value; slices of models
// inside are shared, so callers must treat them as read-only.

func (s *Store) Auth() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auth
}

func (s *Store) Problems() ProblemsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.problems
}

func (s *Store) Submissions() SubmissionsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submissions
}

func (s *Store) Stats() StatsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}
