package service

import (
	"context"

	"github.com/dmitrijs2005/leettrack/internal/client/models"
)

// AuthService wraps the /auth/ and /me/ resources.
//
// Register deliberately does NOT log the user in; the composed
// register-then-login flow lives in the store layer.
type AuthService struct {
	api Caller
}

func NewAuthService(api Caller) *AuthService {
	return &AuthService{api: api}
}

func (s *AuthService) Login(ctx context.Context, creds models.Credentials) (*models.TokenPair, error) {
	resp, err := s.api.Post(ctx, "/auth/login/", creds)
	if err != nil {
		return nil, err
	}

	var pair models.TokenPair
	if err := resp.JSON(&pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

func (s *AuthService) Register(ctx context.Context, data models.Registration) (*models.User, error) {
	resp, err := s.api.Post(ctx, "/auth/registration/", data)
	if err != nil {
		return nil, err
	}

	// The backend returns either the created user or a verification
	// notice; decode what is there.
	var user models.User
	if err := resp.JSON(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) GoogleLogin(ctx context.Context, idToken string) (*models.TokenPair, error) {
	resp, err := s.api.Post(ctx, "/auth/google/", map[string]string{"access_token": idToken})
	if err != nil {
		return nil, err
	}

	var pair models.TokenPair
	if err := resp.JSON(&pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	resp, err := s.api.Get(ctx, "/me/", nil)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := resp.JSON(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) Profile(ctx context.Context) (*models.User, error) {
	resp, err := s.api.Get(ctx, "/me/profile/", nil)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := resp.JSON(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile sends a partial update. Password changes travel through
// the same endpoint; the backend disambiguates by the fields present.
func (s *AuthService) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (*models.User, error) {
	resp, err := s.api.Patch(ctx, "/me/", patch)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := resp.JSON(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
