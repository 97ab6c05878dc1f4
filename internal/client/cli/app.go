package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/dmitrijs2005/arkania/internal/client/client"
	"github.com/dmitrijs2005/arkania/internal/client/config"
	"github.com/dmitrijs2005/arkania/internal/client/models"
	"github.com/dmitrijs2005/arkania/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/arkania/internal/client/services"
	"github.com/dmitrijs2005/arkania/internal/client/session"
	"github.com/dmitrijs2005/arkania/internal/filex"
	"github.com/dmitrijs2005/arkania/internal/logging"
	"github.com/redis/go-redis/v9"
)

// sessionController is what the console needs from *session.Controller.
type sessionController interface {
	Initialize(ctx context.Context)
	State() session.State
	Subscribe() (<-chan session.State, func())
	Login(ctx context.Context, creds models.Credentials) error
	Logout(ctx context.Context)
	Refresh(ctx context.Context) error
	Close() error
}

type accountService interface {
	ChangePassword(ctx context.Context, current, next string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, next string) error
}

type userDirectory interface {
	List(ctx context.Context, p models.ListParams) (*models.Page[models.User], error)
	Search(ctx context.Context, term string) ([]models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, dto models.CreateUserDTO) (*models.User, error)
	Update(ctx context.Context, id string, dto models.UpdateUserDTO) (*models.User, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) (*models.User, error)
}

type roleDirectory interface {
	List(ctx context.Context, p models.ListParams) (*models.Page[models.Role], error)
	All(ctx context.Context) ([]models.Role, error)
	Search(ctx context.Context, term string) ([]models.Role, error)
	Get(ctx context.Context, id string) (*models.Role, error)
	Create(ctx context.Context, dto models.CreateRoleDTO) (*models.Role, error)
	Update(ctx context.Context, id string, dto models.UpdateRoleDTO) (*models.Role, error)
	Delete(ctx context.Context, id string) error
	Permissions(ctx context.Context) ([]string, error)
}

type assignmentDirectory interface {
	List(ctx context.Context, p models.ListParams) (*models.Page[models.UserRole], error)
	ForUser(ctx context.Context, userID string) ([]models.UserRole, error)
	ForRole(ctx context.Context, roleID string) ([]models.UserRole, error)
	Assign(ctx context.Context, dto models.CreateUserRoleDTO) (*models.UserRole, error)
	Remove(ctx context.Context, id string) error
	BulkAssign(ctx context.Context, dto models.BulkRolesDTO) ([]models.UserRole, error)
	BulkRemove(ctx context.Context, dto models.BulkRolesDTO) error
	UsersWithRoles(ctx context.Context, p models.ListParams) (*models.Page[models.UserWithRoles], error)
	HasRole(ctx context.Context, userID, roleID string) bool
}

type App struct {
	config      *config.Config
	session     sessionController
	account     accountService
	users       userDirectory
	roles       roleDirectory
	assignments assignmentDirectory
	reader      *bufio.Reader
	listing     *listing
	closers     []func() error

	// signedOut is set by an explicit logout and cleared by the next login.
	signedOut atomic.Bool
}

// NewApp wires the console: the session store on the configured backend,
// the HTTP client, the auth gateway, the session controller and the admin
// services.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	app := &App{config: c, reader: bufio.NewReader(os.Stdin)}

	repo, err := app.openRepository(ctx)
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	store := session.NewStore(repo, c.KeyPrefix, logger.With("component", "store"))
	api := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, store, logger.With("component", "http"))
	auth := services.NewAuthService(api, c.TokenExpiryBuffer, logger.With("component", "auth"))
	ctrl := session.NewController(auth, store, c.ExpiryCheckInterval, logger.With("component", "session"))

	app.session = ctrl
	app.account = auth
	app.users = services.NewUserService(api)
	app.roles = services.NewRoleService(api)
	app.assignments = services.NewUserRoleService(api)
	app.closers = append(app.closers, ctrl.Close)
	return app, nil
}

func (a *App) openRepository(ctx context.Context) (metadata.Repository, error) {
	switch a.config.StoreBackend {
	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{Addr: a.config.RedisAddr, DB: a.config.RedisDB})
		a.closers = append(a.closers, rdb.Close)
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect to redis at %s: %w", a.config.RedisAddr, err)
		}
		return metadata.NewRedisRepository(rdb, a.config.KeyPrefix), nil
	default:
		path, err := filex.EnsureParentDir(a.config.StorePath)
		if err != nil {
			return nil, err
		}
		db, err := client.InitDatabase(ctx, path)
		if err != nil {
			log.Printf("error initializing database: %s", err.Error())
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		return metadata.NewSQLiteRepository(db), nil
	}
}

// Close stops the session controller and releases the store, in reverse
// order of creation.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Run restores the previous session and serves the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	log.Println("Welcome to the Arkania admin console (type 'help' for commands)")
	a.session.Initialize(ctx)
	if st := a.session.State(); st.IsAuthenticated() {
		log.Printf("Welcome back, %s", st.User.FullName())
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.watchSession(watchCtx)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

// watchSession reports sessions that end without the user asking, such as
// an expired token.
func (a *App) watchSession(ctx context.Context) {
	states, unsubscribe := a.session.Subscribe()
	defer unsubscribe()

	authenticated := a.session.State().IsAuthenticated()
	for {
		select {
		case <-ctx.Done():
			return
		case st, ok := <-states:
			if !ok {
				return
			}
			if st.IsLoading {
				continue
			}
			if authenticated && !st.IsAuthenticated() && !a.signedOut.Load() {
				log.Printf("Signed out")
			}
			authenticated = st.IsAuthenticated()
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.State().IsAuthenticated()
}

func (a *App) getStatus() string {
	st := a.session.State()
	var parts []string
	if st.User != nil {
		parts = append(parts, st.User.Username)
	}
	if st.Status != session.Uninitialized {
		parts = append(parts, st.Status.String())
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// can reports whether the session grants p, directly or via admin access.
func (a *App) can(p models.Permission) bool {
	st := a.session.State()
	return st.HasPermission(p) || st.HasPermission(models.PermAdminAccess)
}
