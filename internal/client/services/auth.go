// Package services contains the application services of the Arkania admin
// client. This file defines the auth gateway: login, logout, verify and
// refresh against the /auth endpoints, plus local token expiry inspection.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/arkania/internal/client/client"
	"github.com/dmitrijs2005/arkania/internal/client/models"
	"github.com/dmitrijs2005/arkania/internal/jwtx"
	"github.com/dmitrijs2005/arkania/internal/logging"
)

const authBase = "/auth"

// DefaultExpiryBuffer is how close to exp a token counts as expiring.
const DefaultExpiryBuffer = 5 * time.Minute

// AuthService talks to the /auth endpoints. It never writes the session
// store; callers persist what Login and Refresh return.
type AuthService struct {
	client client.Client
	log    logging.Logger
	buffer time.Duration
	now    func() time.Time
}

// NewAuthService constructs an AuthService. A non-positive buffer means
// DefaultExpiryBuffer.
func NewAuthService(c client.Client, buffer time.Duration, log logging.Logger) *AuthService {
	if buffer <= 0 {
		buffer = DefaultExpiryBuffer
	}
	return &AuthService{client: c, log: log, buffer: buffer, now: time.Now}
}

// Login exchanges credentials for a token. Rejections by the backend
// (success=false, no data, 400/401/403) are ErrInvalidCredentials.
func (a *AuthService) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	if err := models.Validate(creds); err != nil {
		return nil, err
	}

	resp, err := client.Call[models.AuthResponse](ctx, a.client, client.Request{
		Method: http.MethodPost,
		Path:   authBase + "/login",
		Body:   creds,
	})
	if err != nil {
		return nil, classify(ErrInvalidCredentials, "login", err)
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("%w: response carries no token", ErrInvalidCredentials)
	}
	return resp, nil
}

// Logout notifies the backend. Failures are logged and swallowed: local
// cleanup must not depend on the server.
func (a *AuthService) Logout(ctx context.Context) {
	err := client.Exec(ctx, a.client, client.Request{
		Method: http.MethodPost,
		Path:   authBase + "/logout",
	})
	if err != nil {
		a.log.Warn(ctx, "logout notification failed", "err", err)
	}
}

// Verify asks the backend whether the current token is still accepted.
// Any failure is ErrInvalidToken.
func (a *AuthService) Verify(ctx context.Context) (*models.VerifyResponse, error) {
	resp, err := client.Call[models.VerifyResponse](ctx, a.client, client.Request{
		Method: http.MethodGet,
		Path:   authBase + "/verify",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return resp, nil
}

// Refresh trades the current token for a fresh one.
func (a *AuthService) Refresh(ctx context.Context) (*models.AuthResponse, error) {
	resp, err := client.Call[models.AuthResponse](ctx, a.client, client.Request{
		Method: http.MethodPost,
		Path:   authBase + "/refresh",
	})
	if err != nil {
		return nil, classify(ErrRefreshFailed, "refresh", err)
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("%w: response carries no token", ErrRefreshFailed)
	}
	return resp, nil
}

// IsTokenExpiring reports whether token is within the expiry buffer. It
// does no I/O. Empty or undecodable tokens count as expiring.
func (a *AuthService) IsTokenExpiring(token string) bool {
	return jwtx.IsExpiring(token, a.now(), a.buffer)
}

// classify turns a backend rejection into rejected; transport failures and
// server errors keep their own identity.
func classify(rejected error, op string, err error) error {
	if errors.Is(err, client.ErrNoData) {
		return fmt.Errorf("%w: %w", rejected, err)
	}
	switch client.StatusCode(err) {
	case http.StatusOK, http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w", rejected, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
