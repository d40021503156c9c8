package queries

import (
	"context"
	"database/sql"
	"time"

	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAvailableDeliveriesQueryHandler retrieves the open offers visible to a
// courier. The priority-window filter lives in SQL so the listing and the
// atomic accept agree on which couriers may see a reserved offer.
type GetAvailableDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDeliveriesQueryHandler creates a handler for available offer queries.
func NewGetAvailableDeliveriesQueryHandler(db *gorm.DB) GetAvailableDeliveriesQueryHandler {
	return GetAvailableDeliveriesQueryHandler{db: db}
}

// Handle executes the query. Offers are returned oldest first so long-waiting
// deliveries surface at the top of a courier's list.
func (h GetAvailableDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDeliveriesQuery,
) ([]GetAvailableDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	deliveries := make([]GetAvailableDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			b.name,
			d.pickup_address,
			d.dropoff_address,
			d.price,
			d.notes,
			d.created_at,
			d.expires_at
		FROM deliveries d
		JOIN businesses b ON b.id = d.business_id
		WHERE d.status = ?
		  AND d.expires_at > ?
		  AND (
			d.preferred_courier_id IS NULL
			OR d.preferred_until <= ?
			OR d.preferred_courier_id = ?
		  )
		ORDER BY d.created_at
	`, delivery.Available, now, now, query.CourierID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAvailableDeliveriesQueryResponse
		var id uuid.UUID
		var price decimal.Decimal
		var notes sql.NullString

		err = rows.Scan(
			&id,
			&resp.BusinessName,
			&resp.PickupAddress,
			&resp.DropoffAddress,
			&price,
			&notes,
			&resp.CreatedAt,
			&resp.ExpiresAt,
		)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = deliveryID
		resp.Price = price
		resp.Notes = notes.String
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
