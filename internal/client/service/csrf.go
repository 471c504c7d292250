package service

import (
	"context"

	"github.com/dmitrijs2005/leettrack/internal/logging"
)

// FetchCSRFToken bootstraps the anti-forgery cookie: the backend sets it
// on this response and the transport's cookie jar keeps it. Failure is
// logged and swallowed; mutating requests then simply go out without
// the header and rely on the backend's own handling.
func FetchCSRFToken(ctx context.Context, api Caller, log logging.Logger) {
	if _, err := api.Get(ctx, "/csrf-token/", nil); err != nil {
		log.Warn(ctx, "csrf bootstrap failed", "error", err)
	}
}
