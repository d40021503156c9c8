// Package businessrepo persists business entities.
package businessrepo

import (
	"time"

	"deliveryhub/internal/core/domain/model/business"
	"deliveryhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BusinessDTO represents the database structure for persisting businesses.
type BusinessDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index"`
	Name      string    `gorm:"type:text"`
	Phone     string    `gorm:"type:text"`
	Address   string    `gorm:"type:text"`
	Status    string    `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName specifies the database table name for businesses.
func (BusinessDTO) TableName() string {
	return "businesses"
}

func fromDomain(b *business.Business) BusinessDTO {
	return BusinessDTO{
		ID:        b.ID().Bytes(),
		OwnerID:   b.OwnerID().Bytes(),
		Name:      b.Name(),
		Phone:     b.Phone(),
		Address:   b.Address(),
		Status:    b.Status().String(),
		CreatedAt: b.CreatedAt(),
	}
}

func toDomain(dto BusinessDTO) (*business.Business, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	status, err := business.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return business.RestoreBusiness(id, ownerID, dto.Name, dto.Phone, dto.Address, status, dto.CreatedAt)
}
