// Package session is the single source of truth for "who is logged in":
// it owns the access/refresh token pair and the identity claims derived
// from the access token, and mirrors them to durable local storage so a
// restart picks up where the last run left off.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"

	"github.com/dmitrijs2005/leettrack/internal/client/repositories/localstate"
	"github.com/dmitrijs2005/leettrack/internal/dbx"
	"github.com/dmitrijs2005/leettrack/internal/logging"
)

// Storage keys of the persisted subset.
const (
	keyAccess  = "auth.access"
	keyRefresh = "auth.refresh"
	keyUser    = "auth.user"
)

// Session holds the credential pair and derived claims. Safe for
// concurrent use: the transport and the REPL both read it.
type Session struct {
	mu      sync.RWMutex
	access  string
	refresh string
	claims  *Claims

	db  *sql.DB
	log logging.Logger
}

// New constructs an in-memory session persisted through db. db may be
// nil, in which case the session is memory-only (used by tests and by
// transports that manage persistence elsewhere).
func New(db *sql.DB, log logging.Logger) *Session {
	return &Session{db: db, log: log}
}

// Load rehydrates the session from local storage. Absent or corrupt
// data yields an unauthenticated session; Load never fails the startup
// path, it only logs.
func (s *Session) Load(ctx context.Context) {
	if s.db == nil {
		return
	}

	repo := localstate.NewSQLiteRepository(s.db)

	access, err := repo.Get(ctx, keyAccess)
	if err != nil {
		s.log.Warn(ctx, "failed to load access token", "error", err)
		return
	}
	refresh, err := repo.Get(ctx, keyRefresh)
	if err != nil {
		s.log.Warn(ctx, "failed to load refresh token", "error", err)
		return
	}
	if len(access) == 0 {
		return
	}

	claims, err := decodeClaims(string(access))
	if err != nil {
		// Stored token is malformed: treat as logged out.
		s.log.Warn(ctx, "stored access token is not decodable", "error", err)
		claims = nil
	}

	s.mu.Lock()
	s.access = string(access)
	s.refresh = string(refresh)
	s.claims = claims
	s.mu.Unlock()
}

// SetTokens replaces the credential pair wholesale, recomputes the
// derived claims, and persists the result. A token that does not decode
// still authenticates the session; it just carries no identity.
func (s *Session) SetTokens(ctx context.Context, access, refresh string) error {
	claims, err := decodeClaims(access)
	if err != nil {
		if s.log != nil {
			s.log.Warn(ctx, "access token is not decodable", "error", err)
		}
		claims = nil
	}

	s.mu.Lock()
	s.access = access
	s.refresh = refresh
	s.claims = claims
	s.mu.Unlock()

	return s.persist(ctx)
}

// SetAccessToken replaces only the access token (the refresh path) and
// recomputes claims.
func (s *Session) SetAccessToken(ctx context.Context, access string) error {
	claims, err := decodeClaims(access)
	if err != nil {
		if s.log != nil {
			s.log.Warn(ctx, "access token is not decodable", "error", err)
		}
		claims = nil
	}

	s.mu.Lock()
	s.access = access
	s.claims = claims
	s.mu.Unlock()

	return s.persist(ctx)
}

// Clear wipes the credential pair, the claims, and the persisted copy.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.access = ""
	s.refresh = ""
	s.claims = nil
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := localstate.NewSQLiteRepository(tx)
		for _, k := range []string{keyAccess, keyRefresh, keyUser} {
			if err := repo.Delete(ctx, k); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh
}

// Claims returns a copy of the derived identity claims, or nil when the
// current token carries none.
func (s *Session) Claims() *Claims {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.claims == nil {
		return nil
	}
	c := *s.claims
	return &c
}

// IsAuthenticated reports whether an access token is currently stored.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access != ""
}

// persist writes the token pair and the serialized user envelope in a
// single transaction, mirroring every in-memory change to disk.
func (s *Session) persist(ctx context.Context) error {
	if s.db == nil {
		return nil
	}

	s.mu.RLock()
	access, refresh, claims := s.access, s.refresh, s.claims
	s.mu.RUnlock()

	envelope, err := json.Marshal(struct {
		User            *Claims `json:"user"`
		IsAuthenticated bool    `json:"isAuthenticated"`
	}{User: claims, IsAuthenticated: access != ""})
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := localstate.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyAccess, []byte(access)); err != nil {
			return err
		}
		if err := repo.Set(ctx, keyRefresh, []byte(refresh)); err != nil {
			return err
		}
		return repo.Set(ctx, keyUser, envelope)
	})
}
