package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/arkania/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_ShowsDetails(t *testing.T) {
	ta := newTestApp("")
	out := captureOutput(t)
	ta.signIn(models.PermUserRead)
	ta.users.User = models.User{Username: "bob", FirstName: "Bob", LastName: "Stone", Email: "bob@x.io", IsActive: true}

	require.NoError(t, ta.User(context.Background(), []string{"u7"}))
	assert.Contains(t, *out, "ID:       u7")
	assert.Contains(t, *out, "Name:     Bob Stone")
	assert.Contains(t, *out, "Active:   true")
}

func TestUser_UsageAndPermission(t *testing.T) {
	ta := newTestApp("")
	out := captureOutput(t)
	ta.signIn(models.PermUserRead)

	require.NoError(t, ta.User(context.Background(), nil))
	assert.Contains(t, *out, "Usage: user <userId>")

	ta.signIn(models.PermRoleRead)
	require.ErrorIs(t, ta.User(context.Background(), []string{"u1"}), errPermissionDenied)
}

func TestFindUsers(t *testing.T) {
	ta := newTestApp("")
	out := captureOutput(t)
	ta.signIn(models.PermUserRead)
	ctx := context.Background()

	require.NoError(t, ta.FindUsers(ctx, []string{"al", "ice"}))
	assert.Equal(t, "al ice", ta.users.LastTerm)
	require.Len(t, *out, 1)
	assert.Contains(t, (*out)[0], "alice")

	require.NoError(t, ta.FindUsers(ctx, []string{"nobody"}))
	assert.Contains(t, *out, "No users found")

	require.NoError(t, ta.FindUsers(ctx, nil))
	assert.Contains(t, *out, "Usage: find-users <term>")
}

func TestAddUser_PromptsAndCreates(t *testing.T) {
	ta := newTestApp("carol\ncarol@x.io\nCarol\nKing\n\n")
	out := captureOutput(t)
	stubPasswords(t, "initial-pw")
	ta.signIn(models.PermUserCreate)

	require.NoError(t, ta.AddUser(context.Background()))
	assert.Equal(t, models.CreateUserDTO{
		Username:  "carol",
		Email:     "carol@x.io",
		FirstName: "Carol",
		LastName:  "King",
		Password:  "initial-pw",
	}, ta.users.LastCreate)
	assert.Contains(t, *out, "Created user carol id=u-new")
}

func TestAddUser_ServiceError(t *testing.T) {
	ta := newTestApp("c\nc@x.io\nC\nK\n\n")
	captureOutput(t)
	stubPasswords(t, "pw")
	ta.signIn(models.PermAdminAccess)
	ta.users.Err = models.ErrValidation

	require.ErrorIs(t, ta.AddUser(context.Background()), models.ErrValidation)
}

func TestEditUser_BlankKeepsValues(t *testing.T) {
	ta := newTestApp("\nRobert\n\n+371 2000\n")
	out := captureOutput(t)
	ta.signIn(models.PermUserUpdate)
	ta.users.User = models.User{Username: "bob", Email: "bob@x.io", FirstName: "Bob", LastName: "Stone"}

	require.NoError(t, ta.EditUser(context.Background(), []string{"u7"}))
	require.True(t, ta.users.Updated)
	dto := ta.users.LastUpdate
	assert.Nil(t, dto.Email)
	assert.Nil(t, dto.LastName)
	require.NotNil(t, dto.FirstName)
	assert.Equal(t, "Robert", *dto.FirstName)
	require.NotNil(t, dto.PhoneNumber)
	assert.Equal(t, "+371 2000", *dto.PhoneNumber)
	assert.Contains(t, *out, "Updated user bob")
}

func TestEditUser_NothingToChange(t *testing.T) {
	ta := newTestApp("\nBob\n\n\n")
	out := captureOutput(t)
	ta.signIn(models.PermUserUpdate)
	ta.users.User = models.User{Username: "bob", FirstName: "Bob"}

	require.NoError(t, ta.EditUser(context.Background(), []string{"u7"}))
	assert.False(t, ta.users.Updated)
	assert.Contains(t, *out, "Nothing to change")
}

func TestDeleteUser_Confirmation(t *testing.T) {
	ta := newTestApp("n\ny\n")
	out := captureOutput(t)
	ta.signIn(models.PermUserDelete)
	ctx := context.Background()

	require.NoError(t, ta.DeleteUser(ctx, []string{"u7"}))
	assert.Empty(t, ta.users.Deleted)
	assert.Contains(t, *out, "Cancelled")

	require.NoError(t, ta.DeleteUser(ctx, []string{"u7"}))
	assert.Equal(t, []string{"u7"}, ta.users.Deleted)
	assert.Contains(t, *out, "Deleted")
}

func TestDeleteUser_RefusesOwnAccount(t *testing.T) {
	ta := newTestApp("y\n")
	out := captureOutput(t)
	ta.signIn(models.PermAdminAccess)

	require.NoError(t, ta.DeleteUser(context.Background(), []string{"u1"}))
	assert.Empty(t, ta.users.Deleted)
	assert.Contains(t, *out, "Refusing to delete the signed-in account")
}

func TestDeleteUser_RequiresPermission(t *testing.T) {
	ta := newTestApp("y\n")
	captureOutput(t)
	ta.signIn(models.PermUserUpdate)

	require.ErrorIs(t, ta.DeleteUser(context.Background(), []string{"u7"}), errPermissionDenied)
	assert.Empty(t, ta.users.Deleted)
}

func TestSetUserStatus(t *testing.T) {
	ta := newTestApp("")
	out := captureOutput(t)
	ta.signIn(models.PermUserUpdate)
	ctx := context.Background()

	require.NoError(t, ta.SetUserStatus(ctx, []string{"u7", "off"}))
	require.NotNil(t, ta.users.LastActive)
	assert.False(t, *ta.users.LastActive)
	assert.Contains(t, *out, "alice is now inactive")

	require.NoError(t, ta.SetUserStatus(ctx, []string{"u7", "on"}))
	assert.True(t, *ta.users.LastActive)
	assert.Contains(t, *out, "alice is now active")

	ta.users.LastActive = nil
	require.NoError(t, ta.SetUserStatus(ctx, []string{"u7", "maybe"}))
	assert.Nil(t, ta.users.LastActive)
	assert.Contains(t, *out, "Usage: user-status <userId> on|off")

	ta.users.Err = errors.New("gone")
	require.Error(t, ta.SetUserStatus(ctx, []string{"u7", "on"}))
}
