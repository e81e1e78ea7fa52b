package admin

import (
	"context"

	"github.com/hlxtools/sidekick/models"
)

// Client fetches per-project configuration documents from the admin
// service (or the local development origin when dev mode is set).
type Client interface {
	// FetchConfig performs a single GET of the project configuration
	// document and returns the raw response body on HTTP 200.
	//
	// Non-200 responses are mapped to sentinel errors: ErrNotFound for
	// 404, ErrUnauthorized for 401/403, and an error wrapping ErrStatus
	// for everything else. Transport-level failures are returned
	// wrapped, without a sentinel.
	FetchConfig(ctx context.Context, opts models.Options) ([]byte, error)
}
