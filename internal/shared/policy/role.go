package policy

// Role is the closed set of user roles
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Roles lists every valid role, for validation.In
var Roles = []interface{}{RoleUser, RoleModerator, RoleAdmin}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
