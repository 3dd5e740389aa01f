// Package account holds the Account aggregate: a registered person with a
// role that gates the HTTP surface. Riders start life as plain users and are
// promoted when their application is approved.
package account

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/errs"
	"parcelshift/internal/pkg/guard"
)

// ErrAccountIsNotConstructed is returned when an Account was not created
// through NewAccount or RestoreAccount.
var ErrAccountIsNotConstructed = errors.New("account Account must be created via NewAccount constructor")

// ErrWrongPassword is returned by VerifyPassword on a mismatch.
var ErrWrongPassword = errs.NewValueIsInvalidError("password")

// Account is a registered person. The password is stored only as a bcrypt
// hash; the aggregate never sees the plaintext after construction.
type Account struct {
	id           kernel.UUID
	name         string
	email        string
	role         Role
	passwordHash []byte
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewAccount registers a person with RoleUser and hashes the supplied
// plaintext password with bcrypt.
func NewAccount(id kernel.UUID, name, email, password string) (*Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return nil, errs.NewValueIsRequiredError("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("password", err)
	}

	return &Account{
		id:           id,
		name:         name,
		email:        email,
		role:         RoleUser,
		passwordHash: hash,
		createdAt:    time.Now().UTC(),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreAccount reconstructs an account from persistence.
func RestoreAccount(id kernel.UUID, name, email string, role Role,
	passwordHash []byte, createdAt time.Time) (*Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}
	if len(passwordHash) == 0 {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}

	return &Account{
		id:           id,
		name:         name,
		email:        email,
		role:         role,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the account was created through a constructor.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// SetRole replaces the account's role.
func (a *Account) SetRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

// VerifyPassword compares a plaintext candidate against the stored hash.
func (a *Account) VerifyPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return ErrWrongPassword
	}
	return nil
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Name returns the account's display name.
func (a *Account) Name() string {
	return a.name
}

// Email returns the account's email. Emails are unique across accounts.
func (a *Account) Email() string {
	return a.email
}

// Role returns the account's current role.
func (a *Account) Role() Role {
	return a.role
}

// PasswordHash returns the stored bcrypt hash for persistence.
func (a *Account) PasswordHash() []byte {
	return a.passwordHash
}

// CreatedAt returns the registration time.
func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}
