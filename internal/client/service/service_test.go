package service

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/leettrack/internal/client/api"
	"github.com/dmitrijs2005/leettrack/internal/client/models"
	"github.com/dmitrijs2005/leettrack/internal/logging"
)

// fakeCaller implements Caller and records the last request it saw.
type fakeCaller struct {
	RespBody []byte
	Err      error

	LastMethod string
	LastPath   string
	LastParams url.Values
	LastBody   any
	Calls      int
}

func (f *fakeCaller) respond() (*api.Response, error) {
	f.Calls++
	if f.Err != nil {
		return nil, f.Err
	}
	return &api.Response{StatusCode: http.StatusOK, Body: f.RespBody}, nil
}

func (f *fakeCaller) Get(ctx context.Context, path string, params url.Values) (*api.Response, error) {
	f.LastMethod, f.LastPath, f.LastParams = http.MethodGet, path, params
	return f.respond()
}

func (f *fakeCaller) Post(ctx context.Context, path string, body any) (*api.Response, error) {
	f.LastMethod, f.LastPath, f.LastBody = http.MethodPost, path, body
	return f.respond()
}

func (f *fakeCaller) Patch(ctx context.Context, path string, body any) (*api.Response, error) {
	f.LastMethod, f.LastPath, f.LastBody = http.MethodPatch, path, body
	return f.respond()
}

func (f *fakeCaller) Delete(ctx context.Context, path string) (*api.Response, error) {
	f.LastMethod, f.LastPath = http.MethodDelete, path
	return f.respond()
}

func TestAuthService_Login_PostsCredentialsAndDecodesPair(t *testing.T) {
	f := &fakeCaller{RespBody: []byte(`{"access":"a1","refresh":"r1"}`)}
	s := NewAuthService(f)

	pair, err := s.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, "/auth/login/", f.LastPath)
	require.Equal(t, "a1", pair.Access)
	require.Equal(t, "r1", pair.Refresh)
}

func TestAuthService_Register_DoesNotTouchAuthEndpointTwice(t *testing.T) {
	f := &fakeCaller{RespBody: []byte(`{"id":1,"username":"u","email":"a@b.c"}`)}
	s := NewAuthService(f)

	user, err := s.Register(context.Background(), models.Registration{Email: "a@b.c", Password1: "x", Password2: "x"})
	require.NoError(t, err)
	require.Equal(t, "/auth/registration/", f.LastPath)
	require.Equal(t, 1, f.Calls) // registration alone never logs in
	require.Equal(t, "u", user.Username)
}

func TestAuthService_GoogleLogin_WrapsToken(t *testing.T) {
	f := &fakeCaller{RespBody: []byte(`{"access":"a","refresh":"r"}`)}
	s := NewAuthService(f)

	_, err := s.GoogleLogin(context.Background(), "id-token")
	require.NoError(t, err)
	require.Equal(t, "/auth/google/", f.LastPath)
	require.Equal(t, map[string]string{"access_token": "id-token"}, f.LastBody)
}

func TestAuthService_UpdateProfile_PatchesMe(t *testing.T) {
	f := &fakeCaller{RespBody: []byte(`{"id":1,"bio":"hi"}`)}
	s := NewAuthService(f)

	bio := "hi"
	user, err := s.UpdateProfile(context.Background(), models.ProfilePatch{Bio: &bio})
	require.NoError(t, err)
	require.Equal(t, http.MethodPatch, f.LastMethod)
	require.Equal(t, "/me/", f.LastPath)
	require.Equal(t, "hi", user.Bio)
}

func TestProblemService_List_PaginationPassThrough(t *testing.T) {
	f := &fakeCaller{RespBody: []byte(`{"count":37,"next":"http://x/api/problems/?page=2","previous":null,"results":[{"id":1,"title":"Two Sum"}]}`)}
	s := NewProblemService(f)

	page, err := s.List(context.Background(), models.ProblemFilter{Difficulty: "easy", Page: 2})
	require.NoError(t, err)
	require.Equal(t, 37, page.Count)
	require.NotNil(t, page.Next)
	require.Nil(t, page.Previous)
	require.Len(t, page.Results, 1)
	require.Equal(t, "Two Sum", page.Results[0].Title)

	require.Equal(t, "easy", f.LastParams.Get("difficulty"))
	require.Equal(t, "2", f.LastParams.Get("page"))
}

func TestProblemService_TodayChallenge_FirstResultOrNil(t *testing.T) {
	f := &fakeCaller{RespBody: []byte(`{"count":1,"next":null,"previous":null,"results":[{"id":9,"title":"LRU Cache"}]}`)}
	s := NewProblemService(f)

	p, err := s.TodayChallenge(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/problems/today-challenge/", f.LastPath)
	require.Equal(t, 9, p.ID)

	f.RespBody = []byte(`{"count":0,"next":null,"previous":null,"results":[]}`)
	p, err = s.TodayChallenge(context.Background())
	require.NoError(t, err)
	require.Nil(t, p)
}

func TestSubmissionService_Create_PostsPayload(t *testing.T) {
	f := &fakeCaller{RespBody: []byte(`{"id":5,"problem":"42","language":"python","code_content":"print(1)","status":"pending"}`)}
	s := NewSubmissionService(f)

	sub, err := s.Create(context.Background(), models.NewSubmission{
		Problem: "42", Language: "python", CodeContent: "print(1)",
	})
	require.NoError(t, err)
	require.Equal(t, "/submissions/", f.LastPath)
	require.Equal(t, models.NewSubmission{Problem: "42", Language: "python", CodeContent: "print(1)"}, f.LastBody)
	require.Equal(t, 5, sub.ID)
	require.Equal(t, models.StatusPending, sub.Status)
}

func TestSubmissionService_ListForProblem_SetsFilter(t *testing.T) {
	f := &fakeCaller{RespBody: []byte(`{"count":0,"next":null,"previous":null,"results":[]}`)}
	s := NewSubmissionService(f)

	_, err := s.ListForProblem(context.Background(), "42")
	require.NoError(t, err)
	require.Equal(t, "/submissions/", f.LastPath)
	require.Equal(t, "42", f.LastParams.Get("problem"))
}

func TestStatsService_UserStats(t *testing.T) {
	f := &fakeCaller{RespBody: []byte(`{"id":1,"ranking_percentile":88.5,"consistency_score":70}`)}
	s := NewStatsService(f)

	stats, err := s.UserStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/stats/user/", f.LastPath)
	require.Equal(t, 88.5, stats.RankingPercentile)
}

func TestFetchCSRFToken_SwallowsErrors(t *testing.T) {
	f := &fakeCaller{Err: errors.New("network down")}
	log := logging.NewZerologLogger(zerolog.Nop())

	require.NotPanics(t, func() {
		FetchCSRFToken(context.Background(), f, log)
	})
	require.Equal(t, "/csrf-token/", f.LastPath)
}

func TestServices_PropagateTransportErrors(t *testing.T) {
	boom := errors.New("boom")
	f := &fakeCaller{Err: boom}

	_, err := NewAuthService(f).CurrentUser(context.Background())
	require.ErrorIs(t, err, boom)

	_, err = NewProblemService(f).Get(context.Background(), "1")
	require.ErrorIs(t, err, boom)

	_, err = NewSubmissionService(f).Get(context.Background(), "1")
	require.ErrorIs(t, err, boom)

	_, err = NewStatsService(f).Streak(context.Background())
	require.ErrorIs(t, err, boom)
}
