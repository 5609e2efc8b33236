// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of account a person holds on the platform.
type Role string

const (
	// RoleHirer indicates an account that posts jobs and hires.
	RoleHirer Role = "hirer"
	// RoleApplicant indicates an account that applies to posted jobs.
	RoleApplicant Role = "applicant"
	// RoleFreelancer indicates an account offering contract work.
	RoleFreelancer Role = "freelancer"
)

// AllRoles lists every recognized role, in display order.
var AllRoles = []Role{RoleHirer, RoleApplicant, RoleFreelancer}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	return slices.Contains(AllRoles, r)
}

// ParseRole converts a raw string into a Role, reporting whether it is one of
// the recognized values.
func ParseRole(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
