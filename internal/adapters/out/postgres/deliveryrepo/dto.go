// Package deliveryrepo persists delivery aggregates. Reads map rows to the
// domain aggregate; state transitions never go through the aggregate at all
// and are issued as conditional UPDATE statements whose WHERE clause encodes
// the expected prior state, so racing writers are serialized by the database.
package deliveryrepo

import (
	"time"

	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryDTO represents the database structure for persisting deliveries.
// Status and canceled_by persist as their durable string forms.
type DeliveryDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Status             string     `gorm:"type:text;index"`
	MerchantID         uuid.UUID  `gorm:"type:uuid;index"`
	BusinessID         uuid.UUID  `gorm:"type:uuid;index"`
	CourierID          *uuid.UUID `gorm:"type:uuid;index"`
	PreferredCourierID *uuid.UUID `gorm:"type:uuid"`
	PreferredUntil     *time.Time
	PickupAddress      string          `gorm:"type:text"`
	DropoffAddress     string          `gorm:"type:text"`
	Price              decimal.Decimal `gorm:"type:decimal(10,2)"`
	Notes              string          `gorm:"type:text"`
	CanceledBy         *string         `gorm:"type:text"`
	CancelReason       string          `gorm:"type:text"`
	IssueReason        string          `gorm:"type:text"`
	CreatedAt          time.Time
	ExpiresAt          time.Time `gorm:"index"`
	AcceptedAt         *time.Time
	AcceptBy           *time.Time
	PickedUpAt         *time.Time
	CompletedAt        *time.Time
	CanceledAt         *time.Time
	IssueAt            *time.Time
}

// TableName specifies the database table name for deliveries.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(d *delivery.Delivery) DeliveryDTO {
	dto := DeliveryDTO{
		ID:             d.ID().Bytes(),
		Status:         d.Status().String(),
		MerchantID:     d.MerchantID().Bytes(),
		BusinessID:     d.BusinessID().Bytes(),
		PreferredUntil: d.PreferredUntil(),
		PickupAddress:  d.PickupAddress(),
		DropoffAddress: d.DropoffAddress(),
		Price:          d.Price(),
		Notes:          d.Notes(),
		CancelReason:   d.CancelReason(),
		IssueReason:    d.IssueReason(),
		CreatedAt:      d.CreatedAt(),
		ExpiresAt:      d.ExpiresAt(),
		AcceptedAt:     d.AcceptedAt(),
		AcceptBy:       d.AcceptBy(),
		PickedUpAt:     d.PickedUpAt(),
		CompletedAt:    d.CompletedAt(),
		CanceledAt:     d.CanceledAt(),
		IssueAt:        d.IssueAt(),
	}

	if id := d.Courier(); id != nil {
		raw := id.Bytes()
		dto.CourierID = &raw
	}
	if id := d.PreferredCourier(); id != nil {
		raw := id.Bytes()
		dto.PreferredCourierID = &raw
	}
	if actor := d.CanceledBy(); actor != nil {
		s := actor.String()
		dto.CanceledBy = &s
	}

	return dto
}

// toDomain converts a database DTO to a delivery aggregate using
// RestoreDelivery, which revalidates the row at the boundary.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	businessID, err := kernel.UUIDFromBytes(dto.BusinessID[:])
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	params := delivery.RestoreDeliveryParams{
		ID:             id,
		MerchantID:     merchantID,
		BusinessID:     businessID,
		PreferredUntil: dto.PreferredUntil,
		PickupAddress:  dto.PickupAddress,
		DropoffAddress: dto.DropoffAddress,
		Price:          dto.Price,
		Notes:          dto.Notes,
		Status:         status,
		CancelReason:   dto.CancelReason,
		IssueReason:    dto.IssueReason,
		CreatedAt:      dto.CreatedAt,
		ExpiresAt:      dto.ExpiresAt,
		AcceptedAt:     dto.AcceptedAt,
		AcceptBy:       dto.AcceptBy,
		PickedUpAt:     dto.PickedUpAt,
		CompletedAt:    dto.CompletedAt,
		CanceledAt:     dto.CanceledAt,
		IssueAt:        dto.IssueAt,
	}

	if dto.CourierID != nil {
		courierID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		params.CourierID = &courierID
	}

	if dto.PreferredCourierID != nil {
		preferredID, preferredErr := kernel.UUIDFromBytes((*dto.PreferredCourierID)[:])
		if preferredErr != nil {
			return nil, preferredErr
		}
		params.PreferredCourierID = &preferredID
	}

	if dto.CanceledBy != nil {
		actor, actorErr := delivery.CanceledByFromString(*dto.CanceledBy)
		if actorErr != nil {
			return nil, actorErr
		}
		params.CanceledBy = &actor
	}

	return delivery.RestoreDelivery(params)
}
