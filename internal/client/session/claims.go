package session

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity projection decoded from the access token. It is
// derived state: recomputed whenever the token pair changes, never
// mutated directly.
type Claims struct {
	UserID   string    `json:"user_id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Expiry   time.Time `json:"expiry"`
}

// flexibleID tolerates both numeric and string user ids in the token
// payload.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(b []byte) error {
	*f = flexibleID(strings.Trim(string(b), `"`))
	return nil
}

// tokenClaims mirrors the backend's JWT payload. The backend embeds
// username/email/role next to the registered claims; the user id is
// carried in "user_id".
type tokenClaims struct {
	jwt.RegisteredClaims
	UserID   flexibleID `json:"user_id"`
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
}

// decodeClaims parses token without signature verification (the client
// holds no signing key; the backend verifies on every request) and maps
// it into Claims. A malformed token yields (nil, error); callers treat
// that as "no identity", not a failure.
func decodeClaims(token string) (*Claims, error) {
	tc := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, tc); err != nil {
		return nil, err
	}

	c := &Claims{
		UserID:   string(tc.UserID),
		Username: tc.Username,
		Email:    tc.Email,
		Role:     tc.Role,
	}
	if c.UserID == "" {
		c.UserID = tc.Subject
	}
	if tc.ExpiresAt != nil {
		c.Expiry = tc.ExpiresAt.Time
	}
	return c, nil
}
