// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a profile can have in the system.
type Role string

const (
	// RoleStudent indicates an applicant working on admissions.
	RoleStudent Role = "student"
	// RoleAgent indicates an education agent managing student applications.
	RoleAgent Role = "agent"
	// RolePartner indicates a university partner organization account.
	RolePartner Role = "partner"
	// RoleStaff indicates internal operations staff.
	RoleStaff Role = "staff"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
	// RoleCounselor indicates an admissions counselor.
	RoleCounselor Role = "counselor"
	// RoleVerifier indicates a document verification officer.
	RoleVerifier Role = "verifier"
	// RoleFinance indicates a finance operator.
	RoleFinance Role = "finance"
	// RoleSchoolRep indicates a school representative tied to a partner organization.
	RoleSchoolRep Role = "school_rep"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleAgent, RolePartner, RoleStaff, RoleAdmin,
		RoleCounselor, RoleVerifier, RoleFinance, RoleSchoolRep:
		return true
	default:
		return false
	}
}

// RequiresIsolation reports whether profiles with this role must live on
// their own tenant rather than a shared one.
func (r Role) RequiresIsolation() bool {
	switch r {
	case RolePartner, RoleSchoolRep, RoleAdmin, RoleStaff:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
