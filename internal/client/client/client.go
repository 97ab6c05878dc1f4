package client

import (
	"context"
	"net/url"
)

// Request describes one call against the REST backend. Path is relative
// to the configured base URL; Body, when non-nil, is sent as JSON.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Client sends a request and decodes the JSON response body into out.
// Non-2xx answers are returned as *APIError.
type Client interface {
	Do(ctx context.Context, req Request, out any) error
}

// TokenSource provides the bearer token attached to outgoing requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	GetToken(ctx context.Context) (string, error)
}
