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

// GetMerchantDeliveriesQueryHandler retrieves a merchant's delivery history.
type GetMerchantDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetMerchantDeliveriesQueryHandler creates a handler for merchant history queries.
func NewGetMerchantDeliveriesQueryHandler(db *gorm.DB) GetMerchantDeliveriesQueryHandler {
	return GetMerchantDeliveriesQueryHandler{db: db}
}

// Handle executes the query. Results are newest first.
func (h GetMerchantDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetMerchantDeliveriesQuery,
) ([]GetMerchantDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetMerchantDeliveriesQueryResponse, 0)

	stmt := `
		SELECT
			d.id,
			d.status,
			b.name,
			c.name,
			c.phone,
			d.pickup_address,
			d.dropoff_address,
			d.price,
			d.notes,
			d.cancel_reason,
			d.issue_reason,
			d.created_at,
			d.expires_at,
			d.completed_at
		FROM deliveries d
		JOIN businesses b ON b.id = d.business_id
		LEFT JOIN users c ON c.id = d.courier_id
		WHERE d.merchant_id = ?`
	args := []any{query.MerchantID().Bytes()}

	if status := query.Status(); status != nil {
		stmt += `
		  AND d.status = ?`
		args = append(args, *status)
	}

	stmt += `
		ORDER BY d.created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetMerchantDeliveriesQueryResponse
		var id uuid.UUID
		var status string
		var courierName, courierPhone sql.NullString
		var price decimal.Decimal
		var notes, cancelReason, issueReason sql.NullString
		var completedAt sql.NullTime

		err = rows.Scan(
			&id,
			&status,
			&resp.BusinessName,
			&courierName,
			&courierPhone,
			&resp.PickupAddress,
			&resp.DropoffAddress,
			&price,
			&notes,
			&cancelReason,
			&issueReason,
			&resp.CreatedAt,
			&resp.ExpiresAt,
			&completedAt,
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
		resp.CancelReason = cancelReason.String
		resp.IssueReason = issueReason.String
		if courierName.Valid {
			resp.CourierName = &courierName.String
		}
		if courierPhone.Valid {
			resp.CourierPhone = &courierPhone.String
		}
		if completedAt.Valid {
			resp.CompletedAt = &completedAt.Time
		}
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
