// Package session owns the client-side authentication session.
//
// Store persists the token and the cached user profile. Controller is the
// single owner of the in-memory session: it restores a persisted session
// on Initialize, verifies it with the backend, runs Login, Logout and
// Refresh one at a time, and logs out by itself when a background watcher
// finds the token close to expiry.
//
// Consumers read snapshots with State or receive them from Subscribe. They
// never talk to the Store or the auth gateway directly.
package session
