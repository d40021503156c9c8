// Package user contains the User entity and the role taxonomy that drives
// authorization decisions in the delivery lifecycle.
package user

import (
	"errors"
	"fmt"
	"time"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via RestoreUser")

// Role is the authorization role of a user.
type Role string

const (
	// Merchant users own businesses and create deliveries.
	Merchant Role = "MERCHANT"

	// Courier users claim and fulfill deliveries.
	Courier Role = "COURIER"

	// Admin users operate the marketplace.
	Admin Role = "ADMIN"
)

// RoleFromString converts a persisted string or JWT claim into a Role.
func RoleFromString(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks if the Role is one of the defined roles.
func (r Role) Validate() error {
	switch r {
	case Merchant, Courier, Admin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// String returns the durable string form of the role.
func (r Role) String() string {
	return string(r)
}

// User represents an account on the marketplace: a merchant, a courier, or an
// administrator. Role and active-flag changes are governed by elevated
// privileges outside the delivery core; the lifecycle engine only consumes
// them as capability checks.
type User struct {
	id        kernel.UUID
	name      string
	phone     string
	role      Role
	isActive  bool
	isRoot    bool
	createdAt time.Time

	isConstructed bool
}

// RestoreUser reconstructs a user entity from persistence.
func RestoreUser(id kernel.UUID, name, phone string, role Role, isActive, isRoot bool, createdAt time.Time) (*User, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
	); err != nil {
		return nil, err
	}

	return &User{
		id:            id,
		name:          name,
		phone:         phone,
		role:          role,
		isActive:      isActive,
		isRoot:        isRoot,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Phone returns the user's phone in E.164 form. Exposure of this value to
// other actors is gated by the delivery state (see the queries package).
func (u *User) Phone() string {
	return u.phone
}

// Role returns the user's authorization role.
func (u *User) Role() Role {
	return u.role
}

// IsActive reports whether the account may act on the marketplace.
func (u *User) IsActive() bool {
	return u.isActive
}

// IsRoot reports whether the account is the protected root administrator.
// Root users cannot be deactivated or demoted.
func (u *User) IsRoot() bool {
	return u.isRoot
}

// CreatedAt returns the registration timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}
