package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/arkania/internal/client/models"
	"github.com/dmitrijs2005/arkania/internal/client/session"
)

type fakeSession struct {
	mu    sync.Mutex
	state session.State

	LoginErr   error
	RefreshErr error
	// ExpireOnLogin ends the session right after a successful login.
	ExpireOnLogin bool
	LastCreds  models.Credentials

	initialized bool
	loggedOut   bool
	closed      bool
	subs        chan session.State
}

func (f *fakeSession) Initialize(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.initialized = true
}

func (f *fakeSession) State() session.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeSession) Subscribe() (<-chan session.State, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subs == nil {
		f.subs = make(chan session.State, 8)
	}
	return f.subs, func() {}
}

func (f *fakeSession) Login(ctx context.Context, creds models.Credentials) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastCreds = creds
	if f.LoginErr != nil {
		return f.LoginErr
	}
	if f.ExpireOnLogin {
		f.state = session.State{Status: session.Anonymous}
		return nil
	}
	f.state = session.State{
		User:   &models.User{ID: "u1", Username: creds.Username},
		Token:  "tok",
		Status: session.Authenticated,
	}
	return nil
}

func (f *fakeSession) Logout(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loggedOut = true
	f.state = session.State{Status: session.Anonymous}
}

func (f *fakeSession) Refresh(ctx context.Context) error { return f.RefreshErr }

func (f *fakeSession) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeSession) set(st session.State) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = st
}

type fakeAccount struct {
	Current, Next string
	Email         string
	ResetToken    string
	Err           error
}

func (f *fakeAccount) ChangePassword(ctx context.Context, current, next string) error {
	f.Current, f.Next = current, next
	return f.Err
}

func (f *fakeAccount) ForgotPassword(ctx context.Context, email string) error {
	f.Email = email
	return f.Err
}

func (f *fakeAccount) ResetPassword(ctx context.Context, token, next string) error {
	f.ResetToken, f.Next = token, next
	return f.Err
}

type fakeUsers struct {
	Total  int
	Params []models.ListParams
	Err    error

	User       models.User
	LastTerm   string
	LastCreate models.CreateUserDTO
	LastUpdate models.UpdateUserDTO
	Updated    bool
	Deleted    []string
	LastActive *bool
}

func (f *fakeUsers) List(ctx context.Context, p models.ListParams) (*models.Page[models.User], error) {
	f.Params = append(f.Params, p)
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.Page[models.User]{
		Items:      []models.User{{ID: "u1", Username: "alice", IsActive: true}},
		Pagination: models.Pagination{Page: p.Page, Limit: p.Limit, Total: f.Total},
	}, nil
}

func (f *fakeUsers) Search(ctx context.Context, term string) ([]models.User, error) {
	f.LastTerm = term
	if f.Err != nil {
		return nil, f.Err
	}
	if term == "nobody" {
		return []models.User{}, nil
	}
	return []models.User{{ID: "u1", Username: "alice", IsActive: true}}, nil
}

func (f *fakeUsers) Get(ctx context.Context, id string) (*models.User, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	u := f.User
	u.ID = id
	return &u, nil
}

func (f *fakeUsers) Create(ctx context.Context, dto models.CreateUserDTO) (*models.User, error) {
	f.LastCreate = dto
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.User{ID: "u-new", Username: dto.Username}, nil
}

func (f *fakeUsers) Update(ctx context.Context, id string, dto models.UpdateUserDTO) (*models.User, error) {
	f.LastUpdate, f.Updated = dto, true
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.User{ID: id, Username: f.User.Username}, nil
}

func (f *fakeUsers) Delete(ctx context.Context, id string) error {
	f.Deleted = append(f.Deleted, id)
	return f.Err
}

func (f *fakeUsers) SetActive(ctx context.Context, id string, active bool) (*models.User, error) {
	f.LastActive = &active
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.User{ID: id, Username: "alice", IsActive: active}, nil
}

type fakeRoles struct {
	Total  int
	Params []models.ListParams
	Err    error

	Role       models.Role
	LastTerm   string
	LastCreate models.CreateRoleDTO
	LastUpdate models.UpdateRoleDTO
	Updated    bool
	Deleted    []string
}

var catalogue = []models.Role{
	{ID: "r1", Name: "admin", Permissions: []string{"admin:access"}},
	{ID: "r2", Name: "Editor", Permissions: []string{"user:read", "user:update"}},
	{ID: "r3", Name: "viewer", Permissions: []string{"user:read"}},
}

func (f *fakeRoles) List(ctx context.Context, p models.ListParams) (*models.Page[models.Role], error) {
	f.Params = append(f.Params, p)
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.Page[models.Role]{
		Items:      catalogue[:1],
		Pagination: models.Pagination{Page: p.Page, Limit: p.Limit, Total: f.Total},
	}, nil
}

func (f *fakeRoles) All(ctx context.Context) ([]models.Role, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return catalogue, nil
}

func (f *fakeRoles) Search(ctx context.Context, term string) ([]models.Role, error) {
	f.LastTerm = term
	return catalogue[1:2], f.Err
}

func (f *fakeRoles) Get(ctx context.Context, id string) (*models.Role, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	r := f.Role
	r.ID = id
	return &r, nil
}

func (f *fakeRoles) Create(ctx context.Context, dto models.CreateRoleDTO) (*models.Role, error) {
	f.LastCreate = dto
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.Role{ID: "r-new", Name: dto.Name, Permissions: dto.Permissions}, nil
}

func (f *fakeRoles) Update(ctx context.Context, id string, dto models.UpdateRoleDTO) (*models.Role, error) {
	f.LastUpdate, f.Updated = dto, true
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.Role{ID: id, Name: f.Role.Name}, nil
}

func (f *fakeRoles) Delete(ctx context.Context, id string) error {
	f.Deleted = append(f.Deleted, id)
	return f.Err
}

func (f *fakeRoles) Permissions(ctx context.Context) ([]string, error) {
	return []string{"user:read", "role:read"}, f.Err
}

type fakeAssignments struct {
	Items      []models.UserRole
	Total      int
	Params     []models.ListParams
	Held       map[string]bool
	LastAssign models.CreateUserRoleDTO
	LastBulk   models.BulkRolesDTO
	LastRemove string
	LastRole   string
	Err        error
}

func (f *fakeAssignments) List(ctx context.Context, p models.ListParams) (*models.Page[models.UserRole], error) {
	f.Params = append(f.Params, p)
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.Page[models.UserRole]{
		Items:      f.Items,
		Pagination: models.Pagination{Page: p.Page, Limit: p.Limit, Total: f.Total},
	}, nil
}

func (f *fakeAssignments) ForUser(ctx context.Context, userID string) ([]models.UserRole, error) {
	return f.Items, f.Err
}

func (f *fakeAssignments) ForRole(ctx context.Context, roleID string) ([]models.UserRole, error) {
	f.LastRole = roleID
	return f.Items, f.Err
}

func (f *fakeAssignments) Assign(ctx context.Context, dto models.CreateUserRoleDTO) (*models.UserRole, error) {
	f.LastAssign = dto
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.UserRole{ID: "ur1", UserID: dto.UserID, RoleID: dto.RoleID}, nil
}

func (f *fakeAssignments) Remove(ctx context.Context, id string) error {
	f.LastRemove = id
	return f.Err
}

func (f *fakeAssignments) BulkAssign(ctx context.Context, dto models.BulkRolesDTO) ([]models.UserRole, error) {
	f.LastBulk = dto
	if f.Err != nil {
		return nil, f.Err
	}
	out := make([]models.UserRole, 0, len(dto.RoleIDs))
	for _, id := range dto.RoleIDs {
		out = append(out, models.UserRole{UserID: dto.UserID, RoleID: id})
	}
	return out, nil
}

func (f *fakeAssignments) BulkRemove(ctx context.Context, dto models.BulkRolesDTO) error {
	f.LastBulk = dto
	return f.Err
}

func (f *fakeAssignments) UsersWithRoles(ctx context.Context, p models.ListParams) (*models.Page[models.UserWithRoles], error) {
	f.Params = append(f.Params, p)
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.Page[models.UserWithRoles]{
		Items: []models.UserWithRoles{
			{User: models.User{ID: "u1", Username: "alice"}, Roles: catalogue[:2]},
			{User: models.User{ID: "u2", Username: "bob"}},
		},
		Pagination: models.Pagination{Page: p.Page, Limit: p.Limit, Total: f.Total},
	}, nil
}

func (f *fakeAssignments) HasRole(ctx context.Context, userID, roleID string) bool {
	return f.Held[userID+"/"+roleID]
}

type testApp struct {
	*App
	session     *fakeSession
	account     *fakeAccount
	users       *fakeUsers
	roles       *fakeRoles
	assignments *fakeAssignments
}

func newTestApp(input string) *testApp {
	ta := &testApp{
		session:     &fakeSession{},
		account:     &fakeAccount{},
		users:       &fakeUsers{},
		roles:       &fakeRoles{},
		assignments: &fakeAssignments{},
	}
	ta.App = &App{
		session:     ta.session,
		account:     ta.account,
		users:       ta.users,
		roles:       ta.roles,
		assignments: ta.assignments,
		reader:      bufio.NewReader(strings.NewReader(input)),
	}
	return ta
}

// signIn puts the fake session into an authenticated state granting perms.
func (ta *testApp) signIn(perms ...models.Permission) {
	granted := make([]string, 0, len(perms))
	for _, p := range perms {
		granted = append(granted, string(p))
	}
	ta.session.set(session.State{
		User:   &models.User{ID: "u1", Username: "alice", FirstName: "Alice"},
		Roles:  []models.Role{{ID: "r1", Name: "operator", Permissions: granted}},
		Token:  "tok",
		Status: session.Authenticated,
	})
}

// captureOutput silences printlnFn and returns what was printed.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func stubPasswords(t *testing.T, pw ...string) {
	t.Helper()
	orig := getPassword
	i := 0
	getPassword = func(string, io.Writer) ([]byte, error) {
		v := pw[i%len(pw)]
		i++
		return []byte(v), nil
	}
	t.Cleanup(func() { getPassword = orig })
}
