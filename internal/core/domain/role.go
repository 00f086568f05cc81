package domain

import "fmt"

// Role classifies the origin of a piece of evidence.
type Role string

// Available evidence roles.
const (
	// RolePlaintiff is evidence supporting the user's side.
	RolePlaintiff Role = "plaintiff"

	// RoleOpposition is evidence from the opposing side.
	RoleOpposition Role = "opposition"
)

// IsValid returns true if the role is recognised.
func (r Role) IsValid() bool {
	switch r {
	case RolePlaintiff, RoleOpposition:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (r Role) String() string {
	return string(r)
}

// Label returns the heading used when the role's evidence is rendered.
func (r Role) Label() string {
	switch r {
	case RolePlaintiff:
		return "Plaintiff Evidence"
	case RoleOpposition:
		return "Opposition Evidence"
	default:
		return unknownDescription
	}
}

// AllRoles returns the roles in their rendering order.
func AllRoles() []Role {
	return []Role{RolePlaintiff, RoleOpposition}
}

// ParseRole converts a string into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, s)
	}
	return r, nil
}

// CollectionKey derives the collection name for a role within a case.
func CollectionKey(role Role, caseID string) string {
	return string(role) + "_" + caseID
}
