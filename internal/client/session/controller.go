package session

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/arkania/internal/client/models"
	"github.com/dmitrijs2005/arkania/internal/logging"
)

// DefaultCheckInterval is how often the watcher inspects the token.
const DefaultCheckInterval = time.Minute

// Gateway is the subset of the auth service the controller drives.
type Gateway interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	Logout(ctx context.Context)
	Verify(ctx context.Context) (*models.VerifyResponse, error)
	Refresh(ctx context.Context) (*models.AuthResponse, error)
	IsTokenExpiring(token string) bool
}

// SessionStore is the durable side of the session. *Store implements it.
type SessionStore interface {
	GetToken(ctx context.Context) (string, error)
	GetUser(ctx context.Context) (*models.User, error)
	SetSession(ctx context.Context, token string, user models.User) error
	Clear(ctx context.Context) error
}

type Controller struct {
	gateway  Gateway
	store    SessionStore
	log      logging.Logger
	interval time.Duration

	// op serializes Initialize, Login, Logout, Refresh and expiry logouts.
	// Fields below it up to mu are guarded by op.
	op        sync.Mutex
	initOnce  sync.Once
	closed    bool
	gen       uint64
	stopWatch context.CancelFunc
	wg        sync.WaitGroup

	mu         sync.RWMutex
	state      State
	subs       map[int]chan State
	nextSub    int
	subsClosed bool
}

// NewController wires a controller. It does no I/O; call Initialize to
// restore a persisted session. A non-positive interval means
// DefaultCheckInterval.
func NewController(gateway Gateway, store SessionStore, interval time.Duration, log logging.Logger) *Controller {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}
	return &Controller{
		gateway:  gateway,
		store:    store,
		log:      log,
		interval: interval,
		subs:     make(map[int]chan State),
	}
}

// State returns a snapshot of the current session.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.clone()
}

// Initialize restores the persisted session, if any, and verifies it with
// the backend. Only the first call does anything. It never fails: every
// problem ends in the Anonymous state.
func (c *Controller) Initialize(ctx context.Context) {
	c.initOnce.Do(func() { c.initialize(ctx) })
}

func (c *Controller) initialize(ctx context.Context) {
	c.op.Lock()
	defer c.op.Unlock()
	if c.closed {
		return
	}

	c.update(func(s *State) {
		s.Status = Initializing
		s.IsLoading = true
	})
	defer c.update(func(s *State) {
		s.IsLoading = false
		if s.Status == Initializing {
			s.Status = Anonymous
		}
	})

	token, err := c.store.GetToken(ctx)
	if err != nil {
		c.log.Warn(ctx, "reading stored token failed", "err", err)
		c.logoutLocked(ctx)
		return
	}
	user, err := c.store.GetUser(ctx)
	if err != nil {
		c.log.Warn(ctx, "reading stored user failed", "err", err)
		c.logoutLocked(ctx)
		return
	}

	if token == "" || user == nil {
		c.log.Debug(ctx, "no stored session")
		c.update(func(s *State) { s.Status = Anonymous })
		return
	}

	c.update(func(s *State) {
		s.Token = token
		s.User = user
		s.Roles = nil
		s.Status = Authenticated
	})
	c.syncWatcher()

	resp, err := c.gateway.Verify(ctx)
	if err != nil {
		c.log.Info(ctx, "stored session rejected", "user", user.Username, "err", err)
		c.logoutLocked(ctx)
		return
	}

	c.update(func(s *State) {
		s.User = &resp.User
		s.Roles = resp.Roles
	})
	c.log.Info(ctx, "session restored", "user", resp.User.Username)
}

// Login authenticates with creds and persists the new session. Its error,
// if any, is the gateway's error unchanged; the session is then left as
// it was.
func (c *Controller) Login(ctx context.Context, creds models.Credentials) error {
	c.op.Lock()
	defer c.op.Unlock()
	if c.closed {
		return ErrClosed
	}
	defer c.beginLoading()()

	resp, err := c.gateway.Login(ctx, creds)
	if err != nil {
		return err
	}

	c.adoptLocked(ctx, resp)
	c.log.Info(ctx, "logged in", "user", resp.User.Username)
	return nil
}

// Refresh replaces the current token with a fresh one. On failure the
// session is left untouched and the caller decides whether to log out.
func (c *Controller) Refresh(ctx context.Context) error {
	c.op.Lock()
	defer c.op.Unlock()
	if c.closed {
		return ErrClosed
	}
	if !c.State().IsAuthenticated() {
		return ErrNotAuthenticated
	}
	defer c.beginLoading()()

	resp, err := c.gateway.Refresh(ctx)
	if err != nil {
		return err
	}

	c.adoptLocked(ctx, resp)
	c.log.Info(ctx, "session refreshed", "user", resp.User.Username)
	return nil
}

// adoptLocked installs a login or refresh result and persists it once.
func (c *Controller) adoptLocked(ctx context.Context, resp *models.AuthResponse) {
	user := resp.User
	c.update(func(s *State) {
		s.Token = resp.Token
		s.User = &user
		s.Roles = resp.Roles
		s.Status = Authenticated
	})

	if err := c.store.SetSession(ctx, resp.Token, resp.User); err != nil {
		c.log.Error(ctx, "persisting session failed", "err", err)
	}
	c.syncWatcher()
}

// Logout ends the session. The backend is notified best-effort; local
// state and storage are cleared regardless. It never fails.
func (c *Controller) Logout(ctx context.Context) {
	c.op.Lock()
	defer c.op.Unlock()
	defer c.beginLoading()()

	c.logoutLocked(ctx)
}

func (c *Controller) logoutLocked(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	defer c.clearLocked(ctx)

	if c.State().Token != "" {
		c.gateway.Logout(ctx)
	}
}

func (c *Controller) clearLocked(ctx context.Context) {
	c.update(func(s *State) {
		s.Token = ""
		s.User = nil
		s.Roles = nil
		s.Status = Anonymous
	})
	c.syncWatcher()

	if err := c.store.Clear(ctx); err != nil {
		c.log.Warn(ctx, "clearing stored session failed", "err", err)
	}
}

// Close stops the expiry watcher, waits for it to exit and closes all
// subscriptions. Later Login and Refresh calls fail with ErrClosed.
func (c *Controller) Close() error {
	c.op.Lock()
	c.closed = true
	c.stopWatcherLocked()
	c.op.Unlock()

	c.wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.subsClosed {
		c.subsClosed = true
		for id, ch := range c.subs {
			close(ch)
			delete(c.subs, id)
		}
	}
	return nil
}

// beginLoading raises IsLoading and returns the func that lowers it.
func (c *Controller) beginLoading() func() {
	c.update(func(s *State) { s.IsLoading = true })
	return func() {
		c.update(func(s *State) { s.IsLoading = false })
	}
}
