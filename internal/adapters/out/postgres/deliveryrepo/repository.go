package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/ports"
	"deliveryhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// Reason strings recorded by system-initiated transitions. These are part of
// the durable contract: support tooling matches on them.
const (
	ExpiredReason     = "EXPIRED: No courier accepted in time"
	StaleReason       = "STALE: Delivery in transit for too long"
	AdminCancelReason = "Cancelled by Admin"
	AdminIssueReason  = "Cancelled by Admin while in transit"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// Add saves a new delivery offer to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a delivery by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Accept atomically claims an AVAILABLE, unclaimed delivery for the courier.
// The priority-window predicate is part of the WHERE clause, so the listing
// filter and the claim race can never disagree: of N concurrent couriers the
// database lets exactly one row match.
func (r *GormDeliveryRepository) Accept(ctx context.Context, id, courierID kernel.UUID, now, acceptBy time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ? AND status = ? AND courier_id IS NULL", id.Bytes(), delivery.Available).
		Where("preferred_courier_id IS NULL OR preferred_courier_id = ? OR preferred_until <= ?",
			courierID.Bytes(), now).
		Updates(map[string]any{
			"status":      delivery.Accepted.String(),
			"courier_id":  courierID.Bytes(),
			"accepted_at": now,
			"accept_by":   acceptBy,
		})

	return result.RowsAffected > 0, result.Error
}

// MarkPickedUp moves ACCEPTED to PICKED_UP for the assigned courier.
func (r *GormDeliveryRepository) MarkPickedUp(ctx context.Context, id, courierID kernel.UUID, now time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ? AND status = ? AND courier_id = ?", id.Bytes(), delivery.Accepted, courierID.Bytes()).
		Updates(map[string]any{
			"status":       delivery.PickedUp.String(),
			"picked_up_at": now,
		})

	return result.RowsAffected > 0, result.Error
}

// MarkCompleted moves PICKED_UP to COMPLETED for the assigned courier.
func (r *GormDeliveryRepository) MarkCompleted(ctx context.Context, id, courierID kernel.UUID, now time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ? AND status = ? AND courier_id = ?", id.Bytes(), delivery.PickedUp, courierID.Bytes()).
		Updates(map[string]any{
			"status":       delivery.Completed.String(),
			"completed_at": now,
		})

	return result.RowsAffected > 0, result.Error
}

// CancelByCourier moves ACCEPTED to CANCELED for the assigned courier.
// The courier assignment is kept on the row for the audit trail.
func (r *GormDeliveryRepository) CancelByCourier(ctx context.Context, id, courierID kernel.UUID, now time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ? AND status = ? AND courier_id = ?", id.Bytes(), delivery.Accepted, courierID.Bytes()).
		Updates(map[string]any{
			"status":      delivery.Canceled.String(),
			"canceled_by": delivery.CanceledByCourier.String(),
			"canceled_at": now,
		})

	return result.RowsAffected > 0, result.Error
}

// CancelByMerchant moves AVAILABLE or ACCEPTED to CANCELED for the owning merchant.
func (r *GormDeliveryRepository) CancelByMerchant(ctx context.Context, id, merchantID kernel.UUID, reason string, now time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ? AND merchant_id = ? AND status IN (?, ?)",
			id.Bytes(), merchantID.Bytes(), delivery.Available, delivery.Accepted).
		Updates(map[string]any{
			"status":        delivery.Canceled.String(),
			"canceled_by":   delivery.CanceledByMerchant.String(),
			"cancel_reason": reason,
			"canceled_at":   now,
		})

	return result.RowsAffected > 0, result.Error
}

// CancelByAdmin cancels any delivery that still has something to cancel.
// Two ordered conditional updates: deliveries not yet picked up become
// CANCELED; a delivery already in transit becomes ISSUE instead, because a
// package that left the pickup point cannot simply be voided.
func (r *GormDeliveryRepository) CancelByAdmin(ctx context.Context, id kernel.UUID, now time.Time) (ports.AdminCancelOutcome, error) {
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ? AND status IN (?, ?, ?)",
			id.Bytes(), delivery.Available, delivery.Accepted, delivery.Issue).
		Updates(map[string]any{
			"status":        delivery.Canceled.String(),
			"canceled_by":   delivery.CanceledBySystem.String(),
			"cancel_reason": AdminCancelReason,
			"canceled_at":   now,
		})
	if result.Error != nil {
		return ports.AdminCancelNoMatch, result.Error
	}
	if result.RowsAffected > 0 {
		return ports.AdminCancelCanceled, nil
	}

	result = r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), delivery.PickedUp).
		Updates(map[string]any{
			"status":       delivery.Issue.String(),
			"issue_reason": AdminIssueReason,
			"issue_at":     now,
		})
	if result.Error != nil {
		return ports.AdminCancelNoMatch, result.Error
	}
	if result.RowsAffected > 0 {
		return ports.AdminCancelFlaggedIssue, nil
	}

	return ports.AdminCancelNoMatch, nil
}

// ReportIssue moves ACCEPTED or PICKED_UP to ISSUE for the assigned courier.
func (r *GormDeliveryRepository) ReportIssue(ctx context.Context, id, courierID kernel.UUID, reason string, now time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ? AND status IN (?, ?) AND courier_id = ?",
			id.Bytes(), delivery.Accepted, delivery.PickedUp, courierID.Bytes()).
		Updates(map[string]any{
			"status":       delivery.Issue.String(),
			"issue_reason": reason,
			"issue_at":     now,
		})

	return result.RowsAffected > 0, result.Error
}

// ExpireAvailable bulk-cancels AVAILABLE deliveries past their acceptance
// deadline. Idempotent: expired rows leave AVAILABLE on the first run and
// never match again.
func (r *GormDeliveryRepository) ExpireAvailable(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("status = ? AND expires_at < ?", delivery.Available, now).
		Updates(map[string]any{
			"status":        delivery.Canceled.String(),
			"canceled_by":   delivery.CanceledBySystem.String(),
			"cancel_reason": ExpiredReason,
			"canceled_at":   now,
		})

	return result.RowsAffected, result.Error
}

// RevertAbandoned bulk-reverts ACCEPTED deliveries whose courier missed the
// pickup deadline back to AVAILABLE. The courier assignment and acceptance
// timestamps are cleared so the offer is claimable again; the original expiry
// deadline is deliberately left untouched, so a revert close to expiry hands
// the delivery straight to the expiry sweep.
func (r *GormDeliveryRepository) RevertAbandoned(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("status = ? AND accept_by < ?", delivery.Accepted, now).
		Updates(map[string]any{
			"status":      delivery.Available.String(),
			"courier_id":  nil,
			"accepted_at": nil,
			"accept_by":   nil,
		})

	return result.RowsAffected, result.Error
}

// FlagStaleInTransit bulk-flags PICKED_UP deliveries collected before the
// given threshold as ISSUE.
func (r *GormDeliveryRepository) FlagStaleInTransit(ctx context.Context, olderThan, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("status = ? AND picked_up_at < ?", delivery.PickedUp, olderThan).
		Updates(map[string]any{
			"status":       delivery.Issue.String(),
			"issue_reason": StaleReason,
			"issue_at":     now,
		})

	return result.RowsAffected, result.Error
}
