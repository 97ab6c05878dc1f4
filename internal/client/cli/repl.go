package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Refresh(ctx context.Context) error
	ChangePassword(ctx context.Context) error

	Users(ctx context.Context, args []string) error
	FindUsers(ctx context.Context, args []string) error
	User(ctx context.Context, args []string) error
	AddUser(ctx context.Context) error
	EditUser(ctx context.Context, args []string) error
	DeleteUser(ctx context.Context, args []string) error
	SetUserStatus(ctx context.Context, args []string) error

	Roles(ctx context.Context, args []string) error
	FindRoles(ctx context.Context, args []string) error
	Role(ctx context.Context, args []string) error
	Permissions(ctx context.Context) error
	AddRole(ctx context.Context) error
	EditRole(ctx context.Context, args []string) error
	DeleteRole(ctx context.Context, args []string) error

	Assignments(ctx context.Context, args []string) error
	RoleMembers(ctx context.Context, args []string) error
	Members(ctx context.Context, args []string) error
	Assign(ctx context.Context, args []string) error
	Unassign(ctx context.Context, args []string) error
	Revoke(ctx context.Context, args []string) error

	Navigate(ctx context.Context, cmd string, args []string) error
}

const (
	helpAnonymous = "Available commands: login, forgot-password, reset-password, exit"

	helpAuthenticated = `Available commands:
  session      whoami, refresh, passwd, logout, exit
  users        users [search], find-users <term>, user <id>, user-add, user-edit <id>,
               user-delete <id>, user-status <id> on|off
  roles        roles [search], find-roles <term>, role <id>, permissions, role-add,
               role-edit <id>, role-delete <id>
  assignments  assignments [userId], role-members <roleId>, members [search],
               assign <userId> <role>..., unassign <assignmentId>, revoke <userId> <role>...
  paging       next, prev, first, last, page <n>, limit <n>`
)

// runREPL reads commands from scanner and dispatches them to a until the
// user types "exit"/"quit" or input ends. The prompt shows statusFn().
//
// Errors returned by handlers are ignored here; handlers report their own
// failures so one bad command never ends the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("arkania %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpAuthenticated)
			} else {
				printlnFn(helpAnonymous)
			}

		case "login":
			_ = a.Login(ctx)

		case "forgot-password":
			_ = a.ForgotPassword(ctx)

		case "reset-password":
			_ = a.ResetPassword(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if !a.isLoggedIn() {
				printlnFn("Unknown command or not logged in:", cmd)
				continue
			}
			dispatch(ctx, a, cmd, args)
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) {
	switch cmd {
	case "logout":
		_ = a.Logout(ctx)
	case "whoami":
		_ = a.WhoAmI(ctx)
	case "refresh":
		_ = a.Refresh(ctx)
	case "passwd":
		_ = a.ChangePassword(ctx)

	case "users":
		_ = a.Users(ctx, args)
	case "find-users":
		_ = a.FindUsers(ctx, args)
	case "user":
		_ = a.User(ctx, args)
	case "user-add":
		_ = a.AddUser(ctx)
	case "user-edit":
		_ = a.EditUser(ctx, args)
	case "user-delete":
		_ = a.DeleteUser(ctx, args)
	case "user-status":
		_ = a.SetUserStatus(ctx, args)

	case "roles":
		_ = a.Roles(ctx, args)
	case "find-roles":
		_ = a.FindRoles(ctx, args)
	case "role":
		_ = a.Role(ctx, args)
	case "permissions":
		_ = a.Permissions(ctx)
	case "role-add":
		_ = a.AddRole(ctx)
	case "role-edit":
		_ = a.EditRole(ctx, args)
	case "role-delete":
		_ = a.DeleteRole(ctx, args)

	case "assignments":
		_ = a.Assignments(ctx, args)
	case "role-members":
		_ = a.RoleMembers(ctx, args)
	case "members":
		_ = a.Members(ctx, args)
	case "assign":
		_ = a.Assign(ctx, args)
	case "unassign":
		_ = a.Unassign(ctx, args)
	case "revoke":
		_ = a.Revoke(ctx, args)

	case "next", "prev", "first", "last", "page", "limit":
		_ = a.Navigate(ctx, cmd, args)
	default:
		printlnFn("Unknown command:", cmd)
	}
}
