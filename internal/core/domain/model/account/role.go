package account

import "parcelshift/internal/pkg/errs"

// Role determines which HTTP surface an account may reach.
type Role string

const (
	RoleUser  Role = "user"
	RoleRider Role = "rider"
	RoleAdmin Role = "admin"
)

// RoleFromString parses a persisted or user-supplied role label.
func RoleFromString(value string) (Role, error) {
	role := Role(value)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

func (r Role) String() string {
	return string(r)
}

// Validate checks the role is one of the known labels.
func (r Role) Validate() error {
	switch r {
	case RoleUser, RoleRider, RoleAdmin:
		return nil
	}
	return errs.NewValueIsInvalidError("role")
}
