package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/arkania/internal/client/models"
)

type fakeGateway struct {
	mu sync.Mutex

	LoginResp *models.AuthResponse
	LoginErr  error
	// LoginGate, when set, blocks Login until it is closed.
	LoginGate chan struct{}

	VerifyResp *models.VerifyResponse
	VerifyErr  error

	RefreshResp *models.AuthResponse
	RefreshErr  error

	Expiring bool

	LoginCalls    int
	LogoutCalls   int
	VerifyCalls   int
	RefreshCalls  int
	ExpiringCalls int
	LastCreds     models.Credentials
	LastChecked   string
}

func (g *fakeGateway) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	g.mu.Lock()
	gate := g.LoginGate
	g.LoginCalls++
	g.LastCreds = creds
	g.mu.Unlock()

	if gate != nil {
		<-gate
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.LoginErr != nil {
		return nil, g.LoginErr
	}
	resp := *g.LoginResp
	return &resp, nil
}

func (g *fakeGateway) Logout(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.LogoutCalls++
}

func (g *fakeGateway) Verify(ctx context.Context) (*models.VerifyResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.VerifyCalls++
	if g.VerifyErr != nil {
		return nil, g.VerifyErr
	}
	resp := *g.VerifyResp
	return &resp, nil
}

func (g *fakeGateway) Refresh(ctx context.Context) (*models.AuthResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.RefreshCalls++
	if g.RefreshErr != nil {
		return nil, g.RefreshErr
	}
	resp := *g.RefreshResp
	return &resp, nil
}

func (g *fakeGateway) IsTokenExpiring(token string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ExpiringCalls++
	g.LastChecked = token
	return g.Expiring
}

func (g *fakeGateway) setExpiring(v bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Expiring = v
}

// counts returns login, logout, verify and expiry-check call counts.
func (g *fakeGateway) counts() (login, logout, verify, expiring int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.LoginCalls, g.LogoutCalls, g.VerifyCalls, g.ExpiringCalls
}

type fakeStore struct {
	mu sync.Mutex

	Token string
	User  *models.User

	GetTokenErr   error
	GetUserErr    error
	SetSessionErr error
	ClearErr      error
	PanicOnRead   bool

	SetSessionCalls int
	ClearCalls      int
}

func (s *fakeStore) GetToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PanicOnRead {
		panic("storage exploded")
	}
	return s.Token, s.GetTokenErr
}

func (s *fakeStore) GetUser(ctx context.Context) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetUserErr != nil {
		return nil, s.GetUserErr
	}
	if s.User == nil {
		return nil, nil
	}
	u := *s.User
	return &u, nil
}

func (s *fakeStore) SetSession(ctx context.Context, token string, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SetSessionCalls++
	if s.SetSessionErr != nil {
		return s.SetSessionErr
	}
	s.Token = token
	s.User = &user
	return nil
}

func (s *fakeStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ClearCalls++
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.Token = ""
	s.User = nil
	return nil
}

func (s *fakeStore) snapshot() (string, *models.User, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Token, s.User, s.SetSessionCalls
}
