package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/user"
	"deliveryhub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetDeliveryQueryHandler retrieves a single delivery and applies the
// role-based visibility rules before handing it to the transport layer.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for delivery detail queries.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// deliveryDetailRow carries the raw joined row plus the ownership columns the
// gating decisions need but the response does not expose.
type deliveryDetailRow struct {
	resp               GetDeliveryQueryResponse
	merchantID         kernel.UUID
	courierID          *kernel.UUID
	preferredCourierID *kernel.UUID
	preferredUntil     *time.Time
}

// Handle executes the query and gates the result by the viewer's role.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuery,
) (*GetDeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row, err := h.fetch(ctx, query.DeliveryID())
	if err != nil {
		return nil, err
	}

	return h.gate(row, query)
}

func (h GetDeliveryQueryHandler) fetch(ctx context.Context, id kernel.UUID) (*deliveryDetailRow, error) {
	var (
		rowID                  uuid.UUID
		status                 string
		merchantID             uuid.UUID
		courierID              uuid.NullUUID
		preferredCourierID     uuid.NullUUID
		preferredUntil         sql.NullTime
		businessPhone          string
		merchantPhone          string
		courierName            sql.NullString
		courierPhone           sql.NullString
		price                  decimal.Decimal
		notes                  sql.NullString
		canceledBy             sql.NullString
		cancelReason           sql.NullString
		issueReason            sql.NullString
		acceptedAt, acceptBy   sql.NullTime
		pickedUpAt             sql.NullTime
		completedAt            sql.NullTime
		canceledAt, issueAt    sql.NullTime
		row                    deliveryDetailRow
	)

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.status,
			d.merchant_id,
			d.courier_id,
			d.preferred_courier_id,
			d.preferred_until,
			b.name,
			b.phone,
			m.name,
			m.phone,
			c.name,
			c.phone,
			d.pickup_address,
			d.dropoff_address,
			d.price,
			d.notes,
			d.canceled_by,
			d.cancel_reason,
			d.issue_reason,
			d.created_at,
			d.expires_at,
			d.accepted_at,
			d.accept_by,
			d.picked_up_at,
			d.completed_at,
			d.canceled_at,
			d.issue_at
		FROM deliveries d
		JOIN businesses b ON b.id = d.business_id
		JOIN users m ON m.id = d.merchant_id
		LEFT JOIN users c ON c.id = d.courier_id
		WHERE d.id = ?
	`, id.Bytes()).Row().Scan(
		&rowID,
		&status,
		&merchantID,
		&courierID,
		&preferredCourierID,
		&preferredUntil,
		&row.resp.BusinessName,
		&businessPhone,
		&row.resp.MerchantName,
		&merchantPhone,
		&courierName,
		&courierPhone,
		&row.resp.PickupAddress,
		&row.resp.DropoffAddress,
		&price,
		&notes,
		&canceledBy,
		&cancelReason,
		&issueReason,
		&row.resp.CreatedAt,
		&row.resp.ExpiresAt,
		&acceptedAt,
		&acceptBy,
		&pickedUpAt,
		&completedAt,
		&canceledAt,
		&issueAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("deliveryId", id.String())
	}
	if err != nil {
		return nil, err
	}

	deliveryID, err := kernel.UUIDFromBytes(rowID[:])
	if err != nil {
		return nil, err
	}
	row.resp.ID = deliveryID

	row.resp.Status, err = delivery.StatusFromString(status)
	if err != nil {
		return nil, err
	}

	row.merchantID, err = kernel.UUIDFromBytes(merchantID[:])
	if err != nil {
		return nil, err
	}

	if courierID.Valid {
		cid, idErr := kernel.UUIDFromBytes(courierID.UUID[:])
		if idErr != nil {
			return nil, idErr
		}
		row.courierID = &cid
	}
	if preferredCourierID.Valid {
		pid, idErr := kernel.UUIDFromBytes(preferredCourierID.UUID[:])
		if idErr != nil {
			return nil, idErr
		}
		row.preferredCourierID = &pid
	}
	if preferredUntil.Valid {
		row.preferredUntil = &preferredUntil.Time
	}

	row.resp.BusinessPhone = &businessPhone
	row.resp.MerchantPhone = &merchantPhone
	if courierName.Valid {
		row.resp.CourierName = &courierName.String
	}
	if courierPhone.Valid {
		row.resp.CourierPhone = &courierPhone.String
	}

	row.resp.Price = price
	row.resp.Notes = notes.String
	row.resp.CancelReason = cancelReason.String
	row.resp.IssueReason = issueReason.String

	if canceledBy.Valid {
		actor, actorErr := delivery.CanceledByFromString(canceledBy.String)
		if actorErr != nil {
			return nil, actorErr
		}
		row.resp.CanceledBy = &actor
	}

	for _, ts := range []struct {
		src sql.NullTime
		dst **time.Time
	}{
		{acceptedAt, &row.resp.AcceptedAt},
		{acceptBy, &row.resp.AcceptBy},
		{pickedUpAt, &row.resp.PickedUpAt},
		{completedAt, &row.resp.CompletedAt},
		{canceledAt, &row.resp.CanceledAt},
		{issueAt, &row.resp.IssueAt},
	} {
		if ts.src.Valid {
			t := ts.src.Time
			*ts.dst = &t
		}
	}

	return &row, nil
}

// gate applies the role-based visibility rules to the fetched row.
func (h GetDeliveryQueryHandler) gate(row *deliveryDetailRow, query GetDeliveryQuery) (*GetDeliveryQueryResponse, error) {
	switch query.ViewerRole() {
	case user.Admin:
		return &row.resp, nil

	case user.Merchant:
		if !row.merchantID.IsEqual(query.ViewerID()) {
			return nil, errs.NewForbiddenError("not your delivery")
		}
		return &row.resp, nil

	case user.Courier:
		if row.courierID != nil && row.courierID.IsEqual(query.ViewerID()) {
			return &row.resp, nil
		}

		reserved := row.preferredCourierID != nil && row.preferredUntil != nil &&
			time.Now().UTC().Before(*row.preferredUntil) &&
			!row.preferredCourierID.IsEqual(query.ViewerID())
		if row.resp.Status != delivery.Available || reserved {
			return nil, errs.NewForbiddenError("not your delivery")
		}

		// An open offer is public to couriers, but contact details are not.
		row.resp.BusinessPhone = nil
		row.resp.MerchantPhone = nil
		row.resp.CourierName = nil
		row.resp.CourierPhone = nil
		return &row.resp, nil

	default:
		return nil, errs.NewForbiddenError("unknown role")
	}
}
