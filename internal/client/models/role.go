package models

type Role struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

// HasPermission reports whether p is granted by the role.
func (r Role) HasPermission(p Permission) bool {
	for _, granted := range r.Permissions {
		if granted == string(p) {
			return true
		}
	}
	return false
}

type CreateRoleDTO struct {
	Name        string   `json:"name" validate:"required,min=3"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions" validate:"dive,permission"`
}

type UpdateRoleDTO struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=3"`
	Description *string  `json:"description,omitempty"`
	Permissions []string `json:"permissions,omitempty" validate:"omitempty,dive,permission"`
}

// UserRole is the assignment of a role to a user. User and Role are filled
// only when the backend expands them.
type UserRole struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	RoleID     string `json:"roleId"`
	User       *User  `json:"user,omitempty"`
	Role       *Role  `json:"role,omitempty"`
	AssignedAt string `json:"assignedAt"`
	AssignedBy string `json:"assignedBy"`
	IsActive   bool   `json:"isActive"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}

type CreateUserRoleDTO struct {
	UserID string `json:"userId" validate:"required"`
	RoleID string `json:"roleId" validate:"required"`
}

// BulkRolesDTO assigns or removes several roles of one user at once.
type BulkRolesDTO struct {
	UserID  string   `json:"userId" validate:"required"`
	RoleIDs []string `json:"roleIds" validate:"required,min=1,dive,required"`
}

// UserWithRoles is a row of the users-with-roles summary.
type UserWithRoles struct {
	User
	Roles []Role `json:"roles"`
}
