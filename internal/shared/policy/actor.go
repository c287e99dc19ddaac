package policy

import "github.com/google/uuid"

// Actor is the identity a request acts as. The zero value is anonymous.
type Actor struct {
	UserID    uuid.UUID
	Username  string
	Role      Role
	Superuser bool

	authenticated bool
}

func Anonymous() Actor {
	return Actor{}
}

func Authenticated(id uuid.UUID, username string, role Role, superuser bool) Actor {
	return Actor{
		UserID:        id,
		Username:      username,
		Role:          role,
		Superuser:     superuser,
		authenticated: true,
	}
}

func (a Actor) IsAuthenticated() bool {
	return a.authenticated
}

// Authority is the effective role: superusers act as admin
func (a Actor) Authority() Role {
	if !a.authenticated {
		return ""
	}
	if a.Superuser {
		return RoleAdmin
	}
	return a.Role
}

func (a Actor) IsAdmin() bool {
	return a.Authority() == RoleAdmin
}

// IsStaff reports moderator or admin authority
func (a Actor) IsStaff() bool {
	auth := a.Authority()
	return auth == RoleAdmin || auth == RoleModerator
}
