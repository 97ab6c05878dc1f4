package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dmitrijs2005/arkania/internal/client/models"
	"github.com/dmitrijs2005/arkania/internal/common"
)

func userRow(u models.User) string {
	status := "active"
	if !u.IsActive {
		status = "inactive"
	}
	return fmt.Sprintf("%-36s %-20s %-30s %s", u.ID, u.Username, u.Email, status)
}

func printUser(u models.User) {
	printlnFn("ID:      ", u.ID)
	printlnFn("Username:", u.Username)
	printlnFn("Name:    ", u.FullName())
	printlnFn("Email:   ", u.Email)
	if u.PhoneNumber != "" {
		printlnFn("Phone:   ", u.PhoneNumber)
	}
	printlnFn("Active:  ", fmt.Sprint(u.IsActive))
	if u.CreatedAt != "" {
		printlnFn("Created: ", u.CreatedAt)
	}
}

// Users opens a paged user listing, optionally filtered by a search term.
func (a *App) Users(ctx context.Context, args []string) error {
	if err := a.require(models.PermUserRead); err != nil {
		return err
	}
	return a.openListing(ctx, listUsers, args)
}

func (a *App) showUsers(ctx context.Context, params models.ListParams) (models.Pagination, error) {
	page, err := a.users.List(ctx, params)
	if err != nil {
		return models.Pagination{}, err
	}
	for _, u := range page.Items {
		printlnFn(userRow(u))
	}
	return page.Pagination, nil
}

// FindUsers runs a quick unpaged search.
func (a *App) FindUsers(ctx context.Context, args []string) error {
	if err := a.require(models.PermUserRead); err != nil {
		return err
	}
	if len(args) == 0 {
		printlnFn("Usage: find-users <term>")
		return nil
	}

	found, err := a.users.Search(ctx, strings.Join(args, " "))
	if err != nil {
		log.Printf("Searching users failed: %s", err.Error())
		return err
	}
	if len(found) == 0 {
		printlnFn("No users found")
	}
	for _, u := range found {
		printlnFn(userRow(u))
	}
	return nil
}

func (a *App) User(ctx context.Context, args []string) error {
	if err := a.require(models.PermUserRead); err != nil {
		return err
	}
	if !argsOK(args, 1, "user <userId>") {
		return nil
	}

	u, err := a.users.Get(ctx, args[0])
	if err != nil {
		log.Printf("Fetching user failed: %s", err.Error())
		return err
	}
	printUser(*u)
	return nil
}

// AddUser prompts for a new account and creates it.
func (a *App) AddUser(ctx context.Context) error {
	if err := a.require(models.PermUserCreate); err != nil {
		return err
	}

	var dto models.CreateUserDTO
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Username", &dto.Username},
		{"Email", &dto.Email},
		{"First name", &dto.FirstName},
		{"Last name", &dto.LastName},
		{"Phone (optional)", &dto.PhoneNumber},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := getPassword("Initial password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	dto.Password = string(password)

	u, err := a.users.Create(ctx, dto)
	if err != nil {
		log.Printf("Creating user failed: %s", err.Error())
		return err
	}
	printlnFn("Created user", u.Username, "id="+u.ID)
	return nil
}

// EditUser prompts for each editable field; a blank answer keeps the
// current value.
func (a *App) EditUser(ctx context.Context, args []string) error {
	if err := a.require(models.PermUserUpdate); err != nil {
		return err
	}
	if !argsOK(args, 1, "user-edit <userId>") {
		return nil
	}

	current, err := a.users.Get(ctx, args[0])
	if err != nil {
		log.Printf("Fetching user failed: %s", err.Error())
		return err
	}

	var dto models.UpdateUserDTO
	changed := false
	fields := []struct {
		prompt, value string
		dst           **string
	}{
		{"Email", current.Email, &dto.Email},
		{"First name", current.FirstName, &dto.FirstName},
		{"Last name", current.LastName, &dto.LastName},
		{"Phone", current.PhoneNumber, &dto.PhoneNumber},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", f.prompt, f.value), os.Stdout)
		if err != nil {
			return err
		}
		if v != "" && v != f.value {
			*f.dst = &v
			changed = true
		}
	}
	if !changed {
		printlnFn("Nothing to change")
		return nil
	}

	u, err := a.users.Update(ctx, current.ID, dto)
	if err != nil {
		log.Printf("Updating user failed: %s", err.Error())
		return err
	}
	printlnFn("Updated user", u.Username)
	return nil
}

func (a *App) DeleteUser(ctx context.Context, args []string) error {
	if err := a.require(models.PermUserDelete); err != nil {
		return err
	}
	if !argsOK(args, 1, "user-delete <userId>") {
		return nil
	}
	if st := a.session.State(); st.User != nil && st.User.ID == args[0] {
		printlnFn("Refusing to delete the signed-in account")
		return nil
	}
	if !a.confirm(fmt.Sprintf("Delete user %s?", args[0])) {
		return nil
	}

	if err := a.users.Delete(ctx, args[0]); err != nil {
		log.Printf("Deleting user failed: %s", err.Error())
		return err
	}
	printlnFn("Deleted")
	return nil
}

// SetUserStatus enables or disables an account: user-status <id> on|off.
func (a *App) SetUserStatus(ctx context.Context, args []string) error {
	if err := a.require(models.PermUserUpdate); err != nil {
		return err
	}
	if !argsOK(args, 2, "user-status <userId> on|off") {
		return nil
	}

	var active bool
	switch args[1] {
	case "on":
		active = true
	case "off":
		active = false
	default:
		printlnFn("Usage: user-status <userId> on|off")
		return nil
	}

	u, err := a.users.SetActive(ctx, args[0], active)
	if err != nil {
		log.Printf("Changing user status failed: %s", err.Error())
		return err
	}
	if u.IsActive {
		printlnFn(u.Username, "is now active")
	} else {
		printlnFn(u.Username, "is now inactive")
	}
	return nil
}
