package models

import "fmt"

// Role is the namespace a roll number is allocated in.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// AllRoles lists every known namespace in allocation-prefix order.
var AllRoles = []Role{RoleStudent, RoleTeacher, RoleAdmin}

// ParseRole normalizes a role string. Unknown roles are a configuration
// error and are rejected, never defaulted.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// RollFormat returns the printf format used to render a counter value as a
// roll number for this namespace. Students get a year-prefixed numeric
// roll, staff get a letter prefix.
func (r Role) RollFormat() string {
	switch r {
	case RoleTeacher:
		return "T%04d"
	case RoleAdmin:
		return "A%04d"
	default:
		return "2025%04d"
	}
}
