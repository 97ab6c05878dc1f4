package session

import (
	"slices"

	"github.com/dmitrijs2005/arkania/internal/client/models"
)

type Status int

const (
	Uninitialized Status = iota
	Initializing
	Authenticated
	Anonymous
)

func (s Status) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initializing:
		return "initializing"
	case Authenticated:
		return "authenticated"
	case Anonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// State is a snapshot of the controller's session. Snapshots are copies;
// mutating one does not affect the controller.
type State struct {
	User      *models.User
	Roles     []models.Role
	Token     string
	IsLoading bool
	Status    Status
}

// IsAuthenticated is true iff both a user and a token are present.
func (s State) IsAuthenticated() bool {
	return s.User != nil && s.Token != ""
}

func (s State) HasRole(name string) bool {
	return slices.ContainsFunc(s.Roles, func(r models.Role) bool { return r.Name == name })
}

// HasPermission reports whether any role of the session grants p.
func (s State) HasPermission(p models.Permission) bool {
	return slices.ContainsFunc(s.Roles, func(r models.Role) bool { return r.HasPermission(p) })
}

func (s State) clone() State {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	if s.Roles != nil {
		roles := make([]models.Role, len(s.Roles))
		for i, r := range s.Roles {
			r.Permissions = slices.Clone(r.Permissions)
			roles[i] = r
		}
		s.Roles = roles
	}
	return s
}
