package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/arkania/internal/client/models"
	"github.com/dmitrijs2005/arkania/internal/common"
	"github.com/dmitrijs2005/arkania/internal/logging"
	"github.com/google/uuid"
)

const maxResponseBytes = 4 << 20

type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewHTTPClient builds a client for baseURL. tokens may be nil.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

func (c *HTTPClient) Do(ctx context.Context, r Request, out any) error {
	req, err := c.newRequest(ctx, r)
	if err != nil {
		return err
	}

	requestID := req.Header.Get(common.RequestIDHeaderName)
	c.log.Debug(ctx, "api request", "method", r.Method, "path", r.Path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(ctxErr, context.DeadlineExceeded) {
			return ctxErr
		}
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var env models.Envelope[json.RawMessage]
		if json.Unmarshal(body, &env) == nil {
			apiErr.Message = env.Message
			apiErr.Errors = env.Errors
		}
		c.log.Debug(ctx, "api error", "status", resp.StatusCode, "request_id", requestID)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", r.Method, r.Path, err)
	}
	return nil
}

func (c *HTTPClient) newRequest(ctx context.Context, r Request) (*http.Request, error) {
	target := c.baseURL + "/" + strings.TrimLeft(r.Path, "/")
	if len(r.Query) > 0 {
		target += "?" + r.Query.Encode()
	}

	var body io.Reader
	if r.Body != nil {
		payload, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	if c.tokens != nil {
		token, err := c.tokens.GetToken(ctx)
		if err != nil {
			c.log.Warn(ctx, "token lookup failed, sending unauthenticated request", "err", err)
		} else if token != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+token)
		}
	}
	return req, nil
}

// Call performs r and unwraps the standard envelope. A 2xx answer with
// success=false becomes an *APIError; one without data becomes ErrNoData.
func Call[T any](ctx context.Context, c Client, r Request) (*T, error) {
	var env models.Envelope[T]
	if err := c.Do(ctx, r, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &APIError{StatusCode: http.StatusOK, Message: env.Message, Errors: env.Errors}
	}
	if env.Data == nil {
		return nil, ErrNoData
	}
	return env.Data, nil
}

// Exec performs r for its side effect; data is not required.
func Exec(ctx context.Context, c Client, r Request) error {
	var env models.Envelope[json.RawMessage]
	if err := c.Do(ctx, r, &env); err != nil {
		return err
	}
	if !env.Success {
		return &APIError{StatusCode: http.StatusOK, Message: env.Message, Errors: env.Errors}
	}
	return nil
}

// List performs r against a paginated endpoint.
func List[T any](ctx context.Context, c Client, r Request) (*models.Page[T], error) {
	var env models.PaginatedEnvelope[T]
	if err := c.Do(ctx, r, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &APIError{StatusCode: http.StatusOK, Message: env.Message}
	}
	return &models.Page[T]{Items: env.Data, Pagination: env.Pagination}, nil
}
