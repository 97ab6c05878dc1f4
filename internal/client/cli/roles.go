package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dmitrijs2005/arkania/internal/client/models"
)

func roleRow(r models.Role) string {
	return fmt.Sprintf("%-36s %-20s %s", r.ID, r.Name, strings.Join(r.Permissions, ","))
}

// splitList parses a comma separated answer, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (a *App) Roles(ctx context.Context, args []string) error {
	if err := a.require(models.PermRoleRead); err != nil {
		return err
	}
	return a.openListing(ctx, listRoles, args)
}

func (a *App) showRoles(ctx context.Context, params models.ListParams) (models.Pagination, error) {
	page, err := a.roles.List(ctx, params)
	if err != nil {
		return models.Pagination{}, err
	}
	for _, r := range page.Items {
		printlnFn(roleRow(r))
	}
	return page.Pagination, nil
}

func (a *App) FindRoles(ctx context.Context, args []string) error {
	if err := a.require(models.PermRoleRead); err != nil {
		return err
	}
	if len(args) == 0 {
		printlnFn("Usage: find-roles <term>")
		return nil
	}

	found, err := a.roles.Search(ctx, strings.Join(args, " "))
	if err != nil {
		log.Printf("Searching roles failed: %s", err.Error())
		return err
	}
	if len(found) == 0 {
		printlnFn("No roles found")
	}
	for _, r := range found {
		printlnFn(roleRow(r))
	}
	return nil
}

func (a *App) Role(ctx context.Context, args []string) error {
	if err := a.require(models.PermRoleRead); err != nil {
		return err
	}
	if !argsOK(args, 1, "role <roleId>") {
		return nil
	}

	r, err := a.roles.Get(ctx, args[0])
	if err != nil {
		log.Printf("Fetching role failed: %s", err.Error())
		return err
	}
	printlnFn("ID:         ", r.ID)
	printlnFn("Name:       ", r.Name)
	printlnFn("Description:", r.Description)
	if len(r.Permissions) == 0 {
		printlnFn("Permissions: none")
	} else {
		printlnFn("Permissions:", strings.Join(r.Permissions, ", "))
	}
	return nil
}

// Permissions prints the permission names the backend accepts on roles.
func (a *App) Permissions(ctx context.Context) error {
	if err := a.require(models.PermRoleRead); err != nil {
		return err
	}

	perms, err := a.roles.Permissions(ctx)
	if err != nil {
		log.Printf("Listing permissions failed: %s", err.Error())
		return err
	}
	for _, p := range perms {
		printlnFn(p)
	}
	return nil
}

func (a *App) AddRole(ctx context.Context) error {
	if err := a.require(models.PermRoleCreate); err != nil {
		return err
	}

	var dto models.CreateRoleDTO
	var err error
	if dto.Name, err = getSimpleText(a.reader, "Name", os.Stdout); err != nil {
		return err
	}
	if dto.Description, err = getSimpleText(a.reader, "Description", os.Stdout); err != nil {
		return err
	}
	perms, err := getSimpleText(a.reader, "Permissions (comma separated)", os.Stdout)
	if err != nil {
		return err
	}
	dto.Permissions = splitList(perms)

	r, err := a.roles.Create(ctx, dto)
	if err != nil {
		log.Printf("Creating role failed: %s", err.Error())
		return err
	}
	printlnFn("Created role", r.Name, "id="+r.ID)
	return nil
}

// EditRole prompts for name, description and permissions; a blank answer
// keeps the current value.
func (a *App) EditRole(ctx context.Context, args []string) error {
	if err := a.require(models.PermRoleUpdate); err != nil {
		return err
	}
	if !argsOK(args, 1, "role-edit <roleId>") {
		return nil
	}

	current, err := a.roles.Get(ctx, args[0])
	if err != nil {
		log.Printf("Fetching role failed: %s", err.Error())
		return err
	}

	var dto models.UpdateRoleDTO
	changed := false

	name, err := getSimpleText(a.reader, fmt.Sprintf("Name [%s]", current.Name), os.Stdout)
	if err != nil {
		return err
	}
	if name != "" && name != current.Name {
		dto.Name = &name
		changed = true
	}

	desc, err := getSimpleText(a.reader, fmt.Sprintf("Description [%s]", current.Description), os.Stdout)
	if err != nil {
		return err
	}
	if desc != "" && desc != current.Description {
		dto.Description = &desc
		changed = true
	}

	perms, err := getSimpleText(a.reader, fmt.Sprintf("Permissions [%s]", strings.Join(current.Permissions, ",")), os.Stdout)
	if err != nil {
		return err
	}
	if list := splitList(perms); len(list) > 0 {
		dto.Permissions = list
		changed = true
	}

	if !changed {
		printlnFn("Nothing to change")
		return nil
	}

	r, err := a.roles.Update(ctx, current.ID, dto)
	if err != nil {
		log.Printf("Updating role failed: %s", err.Error())
		return err
	}
	printlnFn("Updated role", r.Name)
	return nil
}

func (a *App) DeleteRole(ctx context.Context, args []string) error {
	if err := a.require(models.PermRoleDelete); err != nil {
		return err
	}
	if !argsOK(args, 1, "role-delete <roleId>") {
		return nil
	}
	if !a.confirm(fmt.Sprintf("Delete role %s?", args[0])) {
		return nil
	}

	if err := a.roles.Delete(ctx, args[0]); err != nil {
		log.Printf("Deleting role failed: %s", err.Error())
		return err
	}
	printlnFn("Deleted")
	return nil
}
