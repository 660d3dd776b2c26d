package contracts

import (
	"context"
	"net/url"

	"github.com/goccy/go-json"
)

// FetchOptions controls how a list fetch is issued. A cancelable fetch is
// always issued independently and resolves to a nil list when the caller's
// context fires; a non-cancelable fetch may be coalesced with an identical
// in-flight one.
type FetchOptions struct {
	Cancelable bool
}

// APIGateway is the single doorway to the upstream REST API. All outbound
// calls carry the session cookie, observe the client-side throttle, and
// funnel 401 handling through one place.
type APIGateway interface {
	FetchList(ctx context.Context, key string, params url.Values, opts *FetchOptions) ([]json.RawMessage, error)
	GetJSON(ctx context.Context, path string, params url.Values, out interface{}) error
	PostJSON(ctx context.Context, path string, body, out interface{}) error
	PutJSON(ctx context.Context, path string, body, out interface{}) error
	PatchJSON(ctx context.Context, path string, body, out interface{}) error
	DeleteJSON(ctx context.Context, path string) error
	// SetUnauthorizedHandler registers the process-wide 401 hook. Must be
	// called once during wiring, before any request is issued.
	SetUnauthorizedHandler(handler func())
}
