package cli

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/dmitrijs2005/arkania/internal/client/models"
)

func assignmentRow(ur models.UserRole) string {
	user := ur.UserID
	if ur.User != nil {
		user = ur.User.Username
	}
	role := ur.RoleID
	if ur.Role != nil {
		role = ur.Role.Name
	}
	return fmt.Sprintf("%-36s %-20s %-20s assigned %s", ur.ID, user, role, ur.AssignedAt)
}

func printAssignments(items []models.UserRole) {
	if len(items) == 0 {
		printlnFn("No roles assigned")
		return
	}
	for _, ur := range items {
		printlnFn(assignmentRow(ur))
	}
}

// Assignments without arguments pages through every assignment; with a
// user id it prints that user's roles.
func (a *App) Assignments(ctx context.Context, args []string) error {
	if err := a.require(models.PermUserRoleRead); err != nil {
		return err
	}
	switch len(args) {
	case 0:
		return a.openListing(ctx, listAssignments, nil)
	case 1:
	default:
		printlnFn("Usage: assignments [userId]")
		return nil
	}

	items, err := a.assignments.ForUser(ctx, args[0])
	if err != nil {
		log.Printf("Listing assignments failed: %s", err.Error())
		return err
	}
	printAssignments(items)
	return nil
}

func (a *App) showAssignments(ctx context.Context, params models.ListParams) (models.Pagination, error) {
	page, err := a.assignments.List(ctx, params)
	if err != nil {
		return models.Pagination{}, err
	}
	printAssignments(page.Items)
	return page.Pagination, nil
}

// RoleMembers prints who holds a role.
func (a *App) RoleMembers(ctx context.Context, args []string) error {
	if err := a.require(models.PermUserRoleRead); err != nil {
		return err
	}
	if !argsOK(args, 1, "role-members <roleId>") {
		return nil
	}

	items, err := a.assignments.ForRole(ctx, args[0])
	if err != nil {
		log.Printf("Listing role members failed: %s", err.Error())
		return err
	}
	printAssignments(items)
	return nil
}

// Members pages through users together with their roles.
func (a *App) Members(ctx context.Context, args []string) error {
	if err := a.require(models.PermUserRoleRead); err != nil {
		return err
	}
	return a.openListing(ctx, listMembers, args)
}

func (a *App) showMembers(ctx context.Context, params models.ListParams) (models.Pagination, error) {
	page, err := a.assignments.UsersWithRoles(ctx, params)
	if err != nil {
		return models.Pagination{}, err
	}
	for _, u := range page.Items {
		names := make([]string, 0, len(u.Roles))
		for _, r := range u.Roles {
			names = append(names, r.Name)
		}
		roles := strings.Join(names, ",")
		if roles == "" {
			roles = "-"
		}
		printlnFn(fmt.Sprintf("%-36s %-20s %s", u.ID, u.Username, roles))
	}
	return page.Pagination, nil
}

// resolveRoles maps role ids or names (case-insensitive) to role ids.
func (a *App) resolveRoles(ctx context.Context, refs []string) ([]string, error) {
	all, err := a.roles.All(ctx)
	if err != nil {
		return nil, err
	}

	byRef := make(map[string]string, 2*len(all))
	for _, r := range all {
		byRef[r.ID] = r.ID
		byRef[strings.ToLower(r.Name)] = r.ID
	}

	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		id, ok := byRef[ref]
		if !ok {
			id, ok = byRef[strings.ToLower(ref)]
		}
		if !ok {
			return nil, fmt.Errorf("unknown role %q", ref)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Assign gives a user one or more roles, by id or name:
// assign <userId> <role> [<role>...].
func (a *App) Assign(ctx context.Context, args []string) error {
	if err := a.require(models.PermUserRoleCreate); err != nil {
		return err
	}
	if len(args) < 2 {
		printlnFn("Usage: assign <userId> <role> [<role>...]")
		return nil
	}
	userID := args[0]

	roleIDs, err := a.resolveRoles(ctx, args[1:])
	if err != nil {
		log.Printf("Assigning role failed: %s", err.Error())
		return err
	}

	if len(roleIDs) > 1 {
		created, err := a.assignments.BulkAssign(ctx, models.BulkRolesDTO{UserID: userID, RoleIDs: roleIDs})
		if err != nil {
			log.Printf("Assigning roles failed: %s", err.Error())
			return err
		}
		printlnFn(fmt.Sprintf("Assigned %d roles", len(created)))
		return nil
	}

	if a.assignments.HasRole(ctx, userID, roleIDs[0]) {
		printlnFn("Role already assigned")
		return nil
	}
	ur, err := a.assignments.Assign(ctx, models.CreateUserRoleDTO{UserID: userID, RoleID: roleIDs[0]})
	if err != nil {
		log.Printf("Assigning role failed: %s", err.Error())
		return err
	}
	printlnFn("Assigned, assignment id", ur.ID)
	return nil
}

func (a *App) Unassign(ctx context.Context, args []string) error {
	if err := a.require(models.PermUserRoleDelete); err != nil {
		return err
	}
	if !argsOK(args, 1, "unassign <assignmentId>") {
		return nil
	}

	if err := a.assignments.Remove(ctx, args[0]); err != nil {
		log.Printf("Removing assignment failed: %s", err.Error())
		return err
	}
	printlnFn("Removed")
	return nil
}

// Revoke takes roles away from a user: revoke <userId> <role> [<role>...].
func (a *App) Revoke(ctx context.Context, args []string) error {
	if err := a.require(models.PermUserRoleDelete); err != nil {
		return err
	}
	if len(args) < 2 {
		printlnFn("Usage: revoke <userId> <role> [<role>...]")
		return nil
	}

	roleIDs, err := a.resolveRoles(ctx, args[1:])
	if err != nil {
		log.Printf("Revoking roles failed: %s", err.Error())
		return err
	}
	if err := a.assignments.BulkRemove(ctx, models.BulkRolesDTO{UserID: args[0], RoleIDs: roleIDs}); err != nil {
		log.Printf("Revoking roles failed: %s", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Revoked %d roles", len(roleIDs)))
	return nil
}
