package session

import "errors"

var (
	ErrClosed           = errors.New("session controller closed")
	ErrNotAuthenticated = errors.New("not authenticated")
)
