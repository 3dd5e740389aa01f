// Package accountrepo provides data transfer objects and mapping functions
// for account persistence.
package accountrepo

import (
	"time"

	"parcelshift/internal/core/domain/model/account"
	"parcelshift/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting accounts.
// Email is unique; the password hash is stored as raw bytes.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	Role         string `gorm:"index"`
	PasswordHash []byte
	CreatedAt    time.Time
}

// TableName specifies the database table name for accounts.
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts an account domain aggregate to its database representation.
func fromDomain(a *account.Account) AccountDTO {
	return AccountDTO{
		ID:           a.ID().Bytes(),
		Name:         a.Name(),
		Email:        a.Email(),
		Role:         string(a.Role()),
		PasswordHash: a.PasswordHash(),
		CreatedAt:    a.CreatedAt(),
	}
}

// toDomain converts a database DTO to an account domain aggregate using
// RestoreAccount.
func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(
		id,
		dto.Name,
		dto.Email,
		role,
		dto.PasswordHash,
		dto.CreatedAt,
	)
}
