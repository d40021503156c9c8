package queries

import (
	"context"
	"database/sql"

	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCourierDeliveriesQueryHandler retrieves a courier's active workload.
type GetCourierDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierDeliveriesQueryHandler creates a handler for courier workload queries.
func NewGetCourierDeliveriesQueryHandler(db *gorm.DB) GetCourierDeliveriesQueryHandler {
	return GetCourierDeliveriesQueryHandler{db: db}
}

// Handle executes the query. Only ACCEPTED and PICKED_UP deliveries are
// returned; finished and reverted deliveries leave the courier's list.
func (h GetCourierDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetCourierDeliveriesQuery,
) ([]GetCourierDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetCourierDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.status,
			b.name,
			b.phone,
			m.name,
			m.phone,
			d.pickup_address,
			d.dropoff_address,
			d.price,
			d.notes,
			d.accepted_at,
			d.accept_by,
			d.picked_up_at
		FROM deliveries d
		JOIN businesses b ON b.id = d.business_id
		JOIN users m ON m.id = d.merchant_id
		WHERE d.courier_id = ?
		  AND d.status IN (?, ?)
		ORDER BY d.accepted_at
	`, query.CourierID().Bytes(), delivery.Accepted, delivery.PickedUp).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCourierDeliveriesQueryResponse
		var id uuid.UUID
		var status string
		var price decimal.Decimal
		var notes sql.NullString
		var acceptedAt, acceptBy, pickedUpAt sql.NullTime

		err = rows.Scan(
			&id,
			&status,
			&resp.BusinessName,
			&resp.BusinessPhone,
			&resp.MerchantName,
			&resp.MerchantPhone,
			&resp.PickupAddress,
			&resp.DropoffAddress,
			&price,
			&notes,
			&acceptedAt,
			&acceptBy,
			&pickedUpAt,
		)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		deliveryStatus, statusErr := delivery.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}

		resp.ID = deliveryID
		resp.Status = deliveryStatus
		resp.Price = price
		resp.Notes = notes.String
		if acceptedAt.Valid {
			resp.AcceptedAt = &acceptedAt.Time
		}
		if acceptBy.Valid {
			resp.AcceptBy = &acceptBy.Time
		}
		if pickedUpAt.Valid {
			resp.PickedUpAt = &pickedUpAt.Time
		}
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
