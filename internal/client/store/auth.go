package store

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/leettrack/internal/client/models"
)

// Informational message shown when registration succeeded but the
// follow-up login did not (the account likely awaits email
// verification).
const registrationVerifyMessage = "Registration successful. Please check your email for verification instructions."

// Login dispatches the login operation. On success the credential pair
// is stored in the session and the identity claims become the slice's
// user.
func (s *Store) Login(ctx context.Context, creds models.Credentials) error {
	s.mu.Lock()
	s.auth.Status = StatusPending
	s.auth.Error = nil
	s.mu.Unlock()

	pair, err := s.authSvc.Login(ctx, creds)
	if err != nil {
		s.mu.Lock()
		s.auth.Status = StatusFailed
		s.auth.Error = newErrorPayload(err, "Login failed")
		s.mu.Unlock()
		return err
	}

	return s.acceptTokens(ctx, pair)
}

// Register dispatches the composed registration flow: register, then
// immediately log in with the same email/password. A login failure after
// a successful registration is reported as a failed operation with an
// informational message, not a raw error, and leaves the user logged
// out.
func (s *Store) Register(ctx context.Context, data models.Registration) error {
	s.mu.Lock()
	s.auth.Status = StatusPending
	s.auth.Error = nil
	s.mu.Unlock()

	if _, err := s.authSvc.Register(ctx, data); err != nil {
		payload := newErrorPayload(err, "Registration failed. Please try again later.")
		reshapeDuplicateEmail(payload)

		s.mu.Lock()
		s.auth.Status = StatusFailed
		s.auth.Error = payload
		s.mu.Unlock()
		return err
	}

	pair, err := s.authSvc.Login(ctx, models.Credentials{Email: data.Email, Password: data.Password1})
	if err != nil {
		s.log.Info(ctx, "registration succeeded but automatic login failed", "error", err)

		s.mu.Lock()
		s.auth.Status = StatusFailed
		s.auth.IsAuthenticated = false
		s.auth.Error = &ErrorPayload{NonField: []string{registrationVerifyMessage}}
		s.mu.Unlock()
		return err
	}

	return s.acceptTokens(ctx, pair)
}

// GoogleLogin dispatches the federated login operation.
func (s *Store) GoogleLogin(ctx context.Context, idToken string) error {
	s.mu.Lock()
	s.auth.Status = StatusPending
	s.auth.Error = nil
	s.mu.Unlock()

	pair, err := s.authSvc.GoogleLogin(ctx, idToken)
	if err != nil {
		s.mu.Lock()
		s.auth.Status = StatusFailed
		s.auth.Error = newErrorPayload(err, "Google login failed")
		s.mu.Unlock()
		return err
	}

	return s.acceptTokens(ctx, pair)
}

// Logout clears the session and resets the auth slice.
func (s *Store) Logout(ctx context.Context) error {
	err := s.session.Clear(ctx)

	s.mu.Lock()
	s.auth = AuthState{Status: StatusIdle}
	s.mu.Unlock()
	return err
}

// FetchCurrentUser merges the /me/ payload into the profile.
func (s *Store) FetchCurrentUser(ctx context.Context) error {
	s.mu.Lock()
	s.auth.Status = StatusPending
	s.mu.Unlock()

	user, err := s.authSvc.CurrentUser(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		// Mirrors the original behavior: a failed profile read is not a
		// slice-level error, the claims-derived user stays usable.
		s.auth.Status = StatusFailed
		return err
	}
	s.auth.Status = StatusSucceeded
	s.auth.Profile = user
	return nil
}

// FetchProfile loads the extended profile.
func (s *Store) FetchProfile(ctx context.Context) error {
	s.mu.Lock()
	s.auth.Status = StatusPending
	s.auth.Error = nil
	s.mu.Unlock()

	user, err := s.authSvc.Profile(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.auth.Status = StatusFailed
		s.auth.Error = newErrorPayload(err, "Failed to fetch profile")
		return err
	}
	s.auth.Status = StatusSucceeded
	s.auth.Profile = user
	return nil
}

// UpdateProfile routes both profile edits and password changes; the
// backend tells them apart by which fields are present. Local password
// validation belongs to the caller (see ValidatePasswordChange) and
// must happen before dispatch.
func (s *Store) UpdateProfile(ctx context.Context, patch models.ProfilePatch) error {
	s.mu.Lock()
	s.auth.Status = StatusPending
	s.auth.Success = false
	s.auth.Error = nil
	s.mu.Unlock()

	user, err := s.authSvc.UpdateProfile(ctx, patch)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.auth.Status = StatusFailed
		s.auth.Error = newErrorPayload(err, "Failed to update profile")
		return err
	}
	s.auth.Status = StatusSucceeded
	s.auth.Success = true
	s.auth.Profile = user
	return nil
}

// ClearAuthError dismisses the slice's error banner.
func (s *Store) ClearAuthError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth.Error = nil
}

// ClearAuthSuccess clears the profile-update success banner.
func (s *Store) ClearAuthSuccess() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth.Success = false
}

// acceptTokens finalizes a successful credential acquisition.
func (s *Store) acceptTokens(ctx context.Context, pair *models.TokenPair) error {
	if err := s.session.SetTokens(ctx, pair.Access, pair.Refresh); err != nil {
		s.log.Error(ctx, "failed to persist tokens", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth.Status = StatusSucceeded
	s.auth.IsAuthenticated = true
	s.auth.User = s.session.Claims()
	s.auth.Error = nil
	return nil
}

// reshapeDuplicateEmail turns the backend's duplicate-email integrity
// error, which arrives as a non-field error, into a field error keyed
// by email so the view can render it next to the input. Substring
// matching is fragile but mirrors what the backend actually sends.
func reshapeDuplicateEmail(p *ErrorPayload) {
	for _, msg := range p.NonField {
		if strings.Contains(msg, "email") && strings.Contains(msg, "exists") {
			if p.Fields == nil {
				p.Fields = make(map[string][]string)
			}
			p.Fields["email"] = []string{"This email address is already registered."}
			p.NonField = nil
			return
		}
	}
}

// ValidatePasswordChange performs the client-side checks that must pass
// before a password-change patch is dispatched: both passwords present,
// the new one at least 8 characters, and the confirmation matching.
// Returns a field-keyed error map; empty means valid.
func ValidatePasswordChange(current, newPassword, confirm string) map[string]string {
	errs := make(map[string]string)
	if current == "" {
		errs["current_password"] = "Current password is required"
	}
	if newPassword == "" {
		errs["new_password"] = "New password is required"
	} else if len(newPassword) < 8 {
		errs["new_password"] = "Password must be at least 8 characters"
	}
	if newPassword != confirm {
		errs["confirm_password"] = "Passwords do not match"
	}
	return errs
}
