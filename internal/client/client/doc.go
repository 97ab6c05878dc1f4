// Package client contains the client-side plumbing for the Arkania admin
// console.
//
// # Overview
//
// The package provides:
//  1. A transport contract (see the Client interface) for the Arkania REST
//     API, and HTTPClient, its net/http implementation. HTTPClient injects
//     the bearer token from a TokenSource, tags every request with an
//     X-Request-ID and maps HTTP status codes to sentinel errors.
//  2. Envelope helpers (Call, Exec, List) that unwrap the backend's
//     {success, data, message, errors} response shape.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations): an SQLite
//     database with embedded goose migrations, backing the session store.
//
// # Error Handling
//
// Non-2xx answers come back as *APIError. Its Unwrap exposes
// ErrUnauthorized (401/403), ErrNotFound (404) or ErrUnavailable (408/5xx);
// transport failures wrap ErrUnavailable as well.
package client
