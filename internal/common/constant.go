// Package common contains constants and small helpers shared by the
// Arkania client packages.
package common

const (
	// AuthorizationHeaderName carries the bearer credential on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// BearerScheme prefixes the token in the Authorization header.
	BearerScheme = "Bearer "

	// RequestIDHeaderName correlates a client request with backend logs.
	RequestIDHeaderName = "X-Request-ID"

	// DefaultKeyPrefix namespaces the persisted session keys.
	DefaultKeyPrefix = "arkania"
)
