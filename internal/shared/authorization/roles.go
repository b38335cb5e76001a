package authorization

import "fmt"

// Role is the closed set of account roles. The integer value is only used at
// the storage and token boundary.
type Role int

const (
	RoleAdmin Role = 1
	RoleUser  Role = 2
	RoleAgent Role = 3
)

var roleNames = map[Role]string{
	RoleAdmin: "admin",
	RoleUser:  "user",
	RoleAgent: "agent",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

func (r Role) ID() int {
	return int(r)
}

func (r Role) IsValid() bool {
	_, ok := roleNames[r]
	return ok
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role works tickets (admin or agent).
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleAgent
}

// RoleFromID converts a stored role id. Unknown ids are an error, never
// silently downgraded.
func RoleFromID(id int) (Role, error) {
	r := Role(id)
	if !r.IsValid() {
		return 0, fmt.Errorf("unknown role id %d", id)
	}
	return r, nil
}

// AllRoles returns the roles in id order.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleUser, RoleAgent}
}
