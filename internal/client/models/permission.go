package models

// Permission is a capability string granted through roles.
type Permission string

const (
	PermUserCreate Permission = "user:create"
	PermUserRead   Permission = "user:read"
	PermUserUpdate Permission = "user:update"
	PermUserDelete Permission = "user:delete"

	PermRoleCreate Permission = "role:create"
	PermRoleRead   Permission = "role:read"
	PermRoleUpdate Permission = "role:update"
	PermRoleDelete Permission = "role:delete"

	PermUserRoleCreate Permission = "user_role:create"
	PermUserRoleRead   Permission = "user_role:read"
	PermUserRoleDelete Permission = "user_role:delete"

	PermAdminAccess Permission = "admin:access"
)

// Permissions lists every permission known to the client.
var Permissions = []Permission{
	PermUserCreate, PermUserRead, PermUserUpdate, PermUserDelete,
	PermRoleCreate, PermRoleRead, PermRoleUpdate, PermRoleDelete,
	PermUserRoleCreate, PermUserRoleRead, PermUserRoleDelete,
	PermAdminAccess,
}

func IsKnownPermission(s string) bool {
	for _, p := range Permissions {
		if string(p) == s {
			return true
		}
	}
	return false
}
