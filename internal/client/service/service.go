// Package service maps each backend resource to typed call shapes. No
// business logic and no retry logic lives here; both belong to the api
// client underneath.
package service

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/leettrack/internal/client/api"
)

// Caller is the transport surface the façade needs. *api.Client
// satisfies it; tests substitute a fake.
type Caller interface {
	Get(ctx context.Context, path string, params url.Values) (*api.Response, error)
	Post(ctx context.Context, path string, body any) (*api.Response, error)
	Patch(ctx context.Context, path string, body any) (*api.Response, error)
	Delete(ctx context.Context, path string) (*api.Response, error)
}
