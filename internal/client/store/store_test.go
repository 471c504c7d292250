package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/leettrack/internal/client/api"
	"github.com/dmitrijs2005/leettrack/internal/client/models"
	"github.com/dmitrijs2005/leettrack/internal/client/session"
	"github.com/dmitrijs2005/leettrack/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewZerologLogger(zerolog.Nop())
}

func signedToken(t *testing.T, userID, username, email string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"email":    email,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

// Fakes for the service façade; each call can be scripted per test.

type fakeAuth struct {
	loginFn    func(models.Credentials) (*models.TokenPair, error)
	registerFn func(models.Registration) (*models.User, error)
	googleFn   func(string) (*models.TokenPair, error)
	currentFn  func() (*models.User, error)
	profileFn  func() (*models.User, error)
	updateFn   func(models.ProfilePatch) (*models.User, error)
}

func (f *fakeAuth) Login(_ context.Context, c models.Credentials) (*models.TokenPair, error) {
	return f.loginFn(c)
}
func (f *fakeAuth) Register(_ context.Context, r models.Registration) (*models.User, error) {
	return f.registerFn(r)
}
func (f *fakeAuth) GoogleLogin(_ context.Context, tok string) (*models.TokenPair, error) {
	return f.googleFn(tok)
}
func (f *fakeAuth) CurrentUser(_ context.Context) (*models.User, error) { return f.currentFn() }
func (f *fakeAuth) Profile(_ context.Context) (*models.User, error)     { return f.profileFn() }
func (f *fakeAuth) UpdateProfile(_ context.Context, p models.ProfilePatch) (*models.User, error) {
	return f.updateFn(p)
}

type fakeProblems struct {
	listFn  func(models.ProblemFilter) (*models.Page[models.Problem], error)
	getFn   func(string) (*models.Problem, error)
	todayFn func() (*models.Problem, error)
}

func (f *fakeProblems) List(_ context.Context, fl models.ProblemFilter) (*models.Page[models.Problem], error) {
	return f.listFn(fl)
}
func (f *fakeProblems) Get(_ context.Context, id string) (*models.Problem, error) {
	return f.getFn(id)
}
func (f *fakeProblems) TodayChallenge(_ context.Context) (*models.Problem, error) {
	return f.todayFn()
}

type fakeSubs struct {
	listFn       func(models.SubmissionFilter) (*models.Page[models.Submission], error)
	getFn        func(string) (*models.Submission, error)
	createFn     func(models.NewSubmission) (*models.Submission, error)
	forProblemFn func(string) (*models.Page[models.Submission], error)
}

func (f *fakeSubs) List(_ context.Context, fl models.SubmissionFilter) (*models.Page[models.Submission], error) {
	return f.listFn(fl)
}
func (f *fakeSubs) Get(_ context.Context, id string) (*models.Submission, error) {
	return f.getFn(id)
}
func (f *fakeSubs) Create(_ context.Context, d models.NewSubmission) (*models.Submission, error) {
	return f.createFn(d)
}
func (f *fakeSubs) ListForProblem(_ context.Context, id string) (*models.Page[models.Submission], error) {
	return f.forProblemFn(id)
}

type fakeStats struct {
	statsFn  func() (*models.UserStats, error)
	todayFn  func() (*models.DailyActivity, error)
	streakFn func() (*models.Streak, error)
}

func (f *fakeStats) UserStats(_ context.Context) (*models.UserStats, error)     { return f.statsFn() }
func (f *fakeStats) TodayActivity(_ context.Context) (*models.DailyActivity, error) {
	return f.todayFn()
}
func (f *fakeStats) Streak(_ context.Context) (*models.Streak, error) { return f.streakFn() }

func newTestStore(auth AuthAPI, problems ProblemAPI, subs SubmissionAPI, stats StatsAPI) *Store {
	sess := session.New(nil, testLogger())
	return New(sess, auth, problems, subs, stats, testLogger())
}

func TestLogin_Success(t *testing.T) {
	tok := signedToken(t, "7", "alice", "alice@example.com")
	auth := &fakeAuth{
		loginFn: func(c models.Credentials) (*models.TokenPair, error) {
			assert.Equal(t, "alice@example.com", c.Email)
			return &models.TokenPair{Access: tok, Refresh: "r1"}, nil
		},
	}
	s := newTestStore(auth, nil, nil, nil)

	err := s.Login(context.Background(), models.Credentials{Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)

	state := s.Auth()
	assert.Equal(t, StatusSucceeded, state.Status)
	assert.True(t, state.IsAuthenticated)
	require.NotNil(t, state.User)
	assert.Equal(t, "alice", state.User.Username)
	assert.Nil(t, state.Error)
}

func TestLogin_Failure(t *testing.T) {
	auth := &fakeAuth{
		loginFn: func(models.Credentials) (*models.TokenPair, error) {
			return nil, &api.Error{Status: 401, NonField: []string{"Unable to log in with provided credentials."}}
		},
	}
	s := newTestStore(auth, nil, nil, nil)

	err := s.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "nope"})
	require.Error(t, err)

	state := s.Auth()
	assert.Equal(t, StatusFailed, state.Status)
	assert.False(t, state.IsAuthenticated)
	require.NotNil(t, state.Error)
	assert.Equal(t, []string{"Unable to log in with provided credentials."}, state.Error.NonField)
}

func TestRegister_ThenAutoLogin(t *testing.T) {
	tok := signedToken(t, "8", "bob", "bob@example.com")
	var registered, loggedIn bool
	auth := &fakeAuth{
		registerFn: func(r models.Registration) (*models.User, error) {
			registered = true
			assert.Equal(t, "bob@example.com", r.Email)
			return &models.User{Username: "bob"}, nil
		},
		loginFn: func(c models.Credentials) (*models.TokenPair, error) {
			loggedIn = true
			assert.Equal(t, "bob@example.com", c.Email)
			assert.Equal(t, "hunter22", c.Password)
			return &models.TokenPair{Access: tok, Refresh: "r1"}, nil
		},
	}
	s := newTestStore(auth, nil, nil, nil)

	err := s.Register(context.Background(), models.Registration{
		Username: "bob", Email: "bob@example.com",
		Password1: "hunter22", Password2: "hunter22",
	})
	require.NoError(t, err)
	assert.True(t, registered)
	assert.True(t, loggedIn)

	state := s.Auth()
	assert.Equal(t, StatusSucceeded, state.Status)
	assert.True(t, state.IsAuthenticated)
}

func TestRegister_LoginFailsAfterSuccess(t *testing.T) {
	auth := &fakeAuth{
		registerFn: func(models.Registration) (*models.User, error) {
			return &models.User{Username: "bob"}, nil
		},
		loginFn: func(models.Credentials) (*models.TokenPair, error) {
			return nil, &api.Error{Status: 400, NonField: []string{"E-mail is not verified."}}
		},
	}
	s := newTestStore(auth, nil, nil, nil)

	err := s.Register(context.Background(), models.Registration{
		Email: "bob@example.com", Password1: "hunter22", Password2: "hunter22",
	})
	require.Error(t, err)

	state := s.Auth()
	assert.Equal(t, StatusFailed, state.Status)
	assert.False(t, state.IsAuthenticated)
	require.NotNil(t, state.Error)
	assert.Equal(t, []string{registrationVerifyMessage}, state.Error.NonField)
}

func TestRegister_DuplicateEmailReshaped(t *testing.T) {
	auth := &fakeAuth{
		registerFn: func(models.Registration) (*models.User, error) {
			return nil, &api.Error{
				Status:   400,
				NonField: []string{"duplicate key value: user with this email already exists"},
			}
		},
	}
	s := newTestStore(auth, nil, nil, nil)

	err := s.Register(context.Background(), models.Registration{Email: "dup@example.com"})
	require.Error(t, err)

	state := s.Auth()
	require.NotNil(t, state.Error)
	assert.Empty(t, state.Error.NonField)
	assert.Equal(t, []string{"This email address is already registered."}, state.Error.Fields["email"])
}

func TestRegister_FieldErrorsPassThrough(t *testing.T) {
	auth := &fakeAuth{
		registerFn: func(models.Registration) (*models.User, error) {
			return nil, &api.Error{
				Status: 400,
				Fields: map[string][]string{"password1": {"This password is too short."}},
			}
		},
	}
	s := newTestStore(auth, nil, nil, nil)

	err := s.Register(context.Background(), models.Registration{Email: "x@example.com"})
	require.Error(t, err)

	state := s.Auth()
	require.NotNil(t, state.Error)
	assert.Equal(t, []string{"This password is too short."}, state.Error.Fields["password1"])
}

func TestLogout_ResetsSlice(t *testing.T) {
	tok := signedToken(t, "7", "alice", "alice@example.com")
	auth := &fakeAuth{
		loginFn: func(models.Credentials) (*models.TokenPair, error) {
			return &models.TokenPair{Access: tok, Refresh: "r1"}, nil
		},
	}
	s := newTestStore(auth, nil, nil, nil)
	require.NoError(t, s.Login(context.Background(), models.Credentials{}))

	require.NoError(t, s.Logout(context.Background()))

	state := s.Auth()
	assert.Equal(t, StatusIdle, state.Status)
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
	assert.False(t, s.session.IsAuthenticated())
}

func TestUpdateProfile_SuccessFlag(t *testing.T) {
	auth := &fakeAuth{
		updateFn: func(p models.ProfilePatch) (*models.User, error) {
			return &models.User{Username: "alice", Bio: *p.Bio}, nil
		},
	}
	s := newTestStore(auth, nil, nil, nil)

	bio := "grinding mediums"
	require.NoError(t, s.UpdateProfile(context.Background(), models.ProfilePatch{Bio: &bio}))

	state := s.Auth()
	assert.True(t, state.Success)
	assert.Equal(t, "grinding mediums", state.Profile.Bio)

	s.ClearAuthSuccess()
	assert.False(t, s.Auth().Success)
}

func TestFetchProblems_Pagination(t *testing.T) {
	next := "/problems/?page=2"
	problems := &fakeProblems{
		listFn: func(models.ProblemFilter) (*models.Page[models.Problem], error) {
			return &models.Page[models.Problem]{
				Count:   37,
				Next:    &next,
				Results: []models.Problem{{ID: 1, Title: "Two Sum"}},
			}, nil
		},
	}
	s := newTestStore(nil, problems, nil, nil)

	require.NoError(t, s.FetchProblems(context.Background(), models.ProblemFilter{}))

	state := s.Problems()
	assert.Equal(t, StatusSucceeded, state.Status)
	assert.Len(t, state.Problems, 1)
	assert.Equal(t, 37, state.Pagination.Count)
	require.NotNil(t, state.Pagination.Next)
	assert.Equal(t, next, *state.Pagination.Next)
}

func TestFetchTodayChallenge_Empty(t *testing.T) {
	problems := &fakeProblems{
		todayFn: func() (*models.Problem, error) { return nil, nil },
	}
	s := newTestStore(nil, problems, nil, nil)

	require.NoError(t, s.FetchTodayChallenge(context.Background()))

	state := s.Problems()
	assert.Equal(t, StatusSucceeded, state.Status)
	assert.Nil(t, state.TodayChallenge)
	assert.Nil(t, state.Error)
}

func TestCreateSubmission_PrependsAndRaisesSuccess(t *testing.T) {
	subs := &fakeSubs{
		listFn: func(models.SubmissionFilter) (*models.Page[models.Submission], error) {
			return &models.Page[models.Submission]{
				Count:   1,
				Results: []models.Submission{{ID: 1, Language: "go"}},
			}, nil
		},
		createFn: func(d models.NewSubmission) (*models.Submission, error) {
			assert.Equal(t, "42", d.Problem)
			return &models.Submission{ID: 2, Problem: "42", Language: d.Language}, nil
		},
	}
	s := newTestStore(nil, nil, subs, nil)
	ctx := context.Background()

	require.NoError(t, s.FetchSubmissions(ctx, models.SubmissionFilter{}))
	require.NoError(t, s.CreateSubmission(ctx, models.NewSubmission{
		Problem: "42", Language: "python", CodeContent: "print(1)",
	}))

	state := s.Submissions()
	assert.Equal(t, StatusSucceeded, state.Status)
	assert.True(t, state.Success)
	require.Len(t, state.Submissions, 2)
	assert.Equal(t, 2, state.Submissions[0].ID)
	assert.Equal(t, 1, state.Submissions[1].ID)

	s.ClearSubmissionSuccess()
	assert.False(t, s.Submissions().Success)
}

func TestCreateSubmission_FailureKeepsList(t *testing.T) {
	subs := &fakeSubs{
		listFn: func(models.SubmissionFilter) (*models.Page[models.Submission], error) {
			return &models.Page[models.Submission]{
				Count:   1,
				Results: []models.Submission{{ID: 1}},
			}, nil
		},
		createFn: func(models.NewSubmission) (*models.Submission, error) {
			return nil, errors.New("connection refused")
		},
	}
	s := newTestStore(nil, nil, subs, nil)
	ctx := context.Background()

	require.NoError(t, s.FetchSubmissions(ctx, models.SubmissionFilter{}))
	require.Error(t, s.CreateSubmission(ctx, models.NewSubmission{Problem: "1"}))

	state := s.Submissions()
	assert.Equal(t, StatusFailed, state.Status)
	assert.False(t, state.Success)
	assert.Len(t, state.Submissions, 1)
	assert.Equal(t, "Failed to create submission", state.Error.Message)
}

func TestFetchUserStats(t *testing.T) {
	stats := &fakeStats{
		statsFn: func() (*models.UserStats, error) {
			return &models.UserStats{RankingPercentile: 87.5, ConsistencyScore: 64}, nil
		},
	}
	s := newTestStore(nil, nil, nil, stats)

	require.NoError(t, s.FetchUserStats(context.Background()))

	state := s.Stats()
	assert.Equal(t, StatusSucceeded, state.Status)
	assert.Equal(t, 87.5, state.Stats.RankingPercentile)
}

func TestRehydrate_EmptySession(t *testing.T) {
	s := newTestStore(nil, nil, nil, nil)
	s.Rehydrate(context.Background())

	state := s.Auth()
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
}

func TestValidatePasswordChange(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		new       string
		confirm   string
		wantField string
	}{
		{"missing current", "", "longenough", "longenough", "current_password"},
		{"missing new", "old", "", "", "new_password"},
		{"too short", "old", "short", "short", "new_password"},
		{"mismatch", "old", "longenough", "different", "confirm_password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidatePasswordChange(tt.current, tt.new, tt.confirm)
			assert.Contains(t, errs, tt.wantField)
		})
	}

	assert.Empty(t, ValidatePasswordChange("old", "longenough", "longenough"))
}
