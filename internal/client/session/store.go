package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/arkania/internal/client/models"
	"github.com/dmitrijs2005/arkania/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/arkania/internal/common"
	"github.com/dmitrijs2005/arkania/internal/logging"
)

// Store persists the credential token and the cached user profile under
// two fixed keys, "<prefix>_token" and "<prefix>_user".
type Store struct {
	repo     metadata.Repository
	log      logging.Logger
	tokenKey string
	userKey  string
}

// NewStore returns a Store over repo. An empty prefix means
// common.DefaultKeyPrefix.
func NewStore(repo metadata.Repository, prefix string, log logging.Logger) *Store {
	if prefix == "" {
		prefix = common.DefaultKeyPrefix
	}
	return &Store{
		repo:     repo,
		log:      log,
		tokenKey: prefix + "_token",
		userKey:  prefix + "_user",
	}
}

// GetToken returns the stored token verbatim, or "" when none is stored.
func (s *Store) GetToken(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, s.tokenKey)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return string(v), nil
}

// GetUser returns the cached profile. Absent or undecodable data both read
// as (nil, nil); the latter is logged.
func (s *Store) GetUser(ctx context.Context) (*models.User, error) {
	v, err := s.repo.Get(ctx, s.userKey)
	if err != nil {
		return nil, fmt.Errorf("read user: %w", err)
	}
	if len(v) == 0 {
		return nil, nil
	}

	var u models.User
	if err := json.Unmarshal(v, &u); err != nil {
		s.log.Warn(ctx, "discarding malformed cached user", "key", s.userKey, "err", err)
		return nil, nil
	}
	return &u, nil
}

// SetSession writes token and user together.
func (s *Store) SetSession(ctx context.Context, token string, user models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	err = s.repo.SetMany(ctx, map[string][]byte{
		s.tokenKey: []byte(token),
		s.userKey:  payload,
	})
	if err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear removes both keys. Clearing an empty store is not an error.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, s.tokenKey, s.userKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
