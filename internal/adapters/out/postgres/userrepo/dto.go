// Package userrepo persists user accounts.
package userrepo

import (
	"time"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting users.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:text"`
	Phone     string    `gorm:"type:text"`
	Role      string    `gorm:"type:text"`
	IsActive  bool
	IsRoot    bool
	CreatedAt time.Time
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID().Bytes(),
		Name:      u.Name(),
		Phone:     u.Phone(),
		Role:      u.Role().String(),
		IsActive:  u.IsActive(),
		IsRoot:    u.IsRoot(),
		CreatedAt: u.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, dto.Phone, role, dto.IsActive, dto.IsRoot, dto.CreatedAt)
}
