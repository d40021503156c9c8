package delivery

import (
	"errors"
	"fmt"
	"time"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Delivery is the central aggregate of the marketplace: a job offered by a
// merchant's business, claimed by at most one courier, and driven to a
// terminal state through guarded transitions.
//
// Delivery maintains these invariants:
//   - merchantID and businessID are set at creation and never change
//   - a delivery has a courier iff it progressed past AVAILABLE, except
//     terminal states reached via a system revert or cancel
//   - price is strictly positive
//   - status values follow the transition graph documented on Status
//
// State transitions themselves are NOT performed by mutating this struct:
// every transition is a conditional update executed by the store so that
// racing couriers are serialized at the row level. The aggregate carries the
// read-side view: creation, restoration from persistence, and the predicates
// the engine and queries need (priority window, contact visibility).
type Delivery struct {
	id         kernel.UUID
	merchantID kernel.UUID
	businessID kernel.UUID

	// courierID is the assigned claimant, nil while AVAILABLE.
	courierID *kernel.UUID

	// preferredCourierID reserves the offer for one courier until preferredUntil.
	preferredCourierID *kernel.UUID
	preferredUntil     *time.Time

	pickupAddress  string
	dropoffAddress string
	price          decimal.Decimal
	notes          string

	status       Status
	canceledBy   *CanceledBy
	cancelReason string
	issueReason  string

	createdAt   time.Time
	expiresAt   time.Time
	acceptedAt  *time.Time
	acceptBy    *time.Time
	pickedUpAt  *time.Time
	completedAt *time.Time
	canceledAt  *time.Time
	issueAt     *time.Time

	isConstructed bool
}

// NewDelivery creates a delivery offer in AVAILABLE status.
// The expiry deadline and, when a preferred courier is given, the priority
// window are derived from the injected Timing.
func NewDelivery(
	id, merchantID, businessID kernel.UUID,
	pickupAddress, dropoffAddress string,
	price decimal.Decimal,
	notes string,
	preferredCourierID *kernel.UUID,
	now time.Time,
	timing Timing,
) (*Delivery, error) {
	if err := timing.Validate(); err != nil {
		return nil, err
	}

	d := &Delivery{
		status:        Available,
		notes:         notes,
		createdAt:     now,
		expiresAt:     now.Add(timing.ExpiryWindow()),
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setMerchantID(merchantID),
		d.setBusinessID(businessID),
		d.setPickupAddress(pickupAddress),
		d.setDropoffAddress(dropoffAddress),
		d.setPrice(price),
	); err != nil {
		return nil, err
	}

	if preferredCourierID != nil {
		if err := preferredCourierID.Validate(); err != nil {
			return nil, err
		}
		until := now.Add(timing.OfferWindow())
		d.preferredCourierID = preferredCourierID
		d.preferredUntil = &until
	}

	return d, nil
}

// RestoreDeliveryParams carries the full persisted state of a delivery row.
type RestoreDeliveryParams struct {
	ID                 kernel.UUID
	MerchantID         kernel.UUID
	BusinessID         kernel.UUID
	CourierID          *kernel.UUID
	PreferredCourierID *kernel.UUID
	PreferredUntil     *time.Time
	PickupAddress      string
	DropoffAddress     string
	Price              decimal.Decimal
	Notes              string
	Status             Status
	CanceledBy         *CanceledBy
	CancelReason       string
	IssueReason        string
	CreatedAt          time.Time
	ExpiresAt          time.Time
	AcceptedAt         *time.Time
	AcceptBy           *time.Time
	PickedUpAt         *time.Time
	CompletedAt        *time.Time
	CanceledAt         *time.Time
	IssueAt            *time.Time
}

// RestoreDelivery reconstructs a delivery aggregate from persistence.
// It revalidates identity, price, status, and the status/courier consistency
// rule so corrupt rows are caught at the boundary.
func RestoreDelivery(p RestoreDeliveryParams) (*Delivery, error) {
	d := &Delivery{
		preferredCourierID: p.PreferredCourierID,
		preferredUntil:     p.PreferredUntil,
		notes:              p.Notes,
		canceledBy:         p.CanceledBy,
		cancelReason:       p.CancelReason,
		issueReason:        p.IssueReason,
		createdAt:          p.CreatedAt,
		expiresAt:          p.ExpiresAt,
		acceptedAt:         p.AcceptedAt,
		acceptBy:           p.AcceptBy,
		pickedUpAt:         p.PickedUpAt,
		completedAt:        p.CompletedAt,
		canceledAt:         p.CanceledAt,
		issueAt:            p.IssueAt,
		isConstructed:      true,
	}

	if err := errors.Join(
		d.setID(p.ID),
		d.setMerchantID(p.MerchantID),
		d.setBusinessID(p.BusinessID),
		d.setPickupAddress(p.PickupAddress),
		d.setDropoffAddress(p.DropoffAddress),
		d.setPrice(p.Price),
		d.setStatus(p.Status),
	); err != nil {
		return nil, err
	}

	if p.CourierID != nil {
		if err := p.CourierID.Validate(); err != nil {
			return nil, err
		}
		d.courierID = p.CourierID
	}

	if p.CanceledBy != nil {
		if err := p.CanceledBy.Validate(); err != nil {
			return nil, err
		}
	}

	if err := d.validateCourierConsistency(); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// MerchantID returns the owning merchant. Immutable after creation.
func (d *Delivery) MerchantID() kernel.UUID {
	return d.merchantID
}

// BusinessID returns the originating business. Immutable after creation.
func (d *Delivery) BusinessID() kernel.UUID {
	return d.businessID
}

// Courier returns the assigned courier's ID, or nil while unclaimed.
func (d *Delivery) Courier() *kernel.UUID {
	return d.courierID
}

// PreferredCourier returns the courier the offer is reserved for, if any.
func (d *Delivery) PreferredCourier() *kernel.UUID {
	return d.preferredCourierID
}

// PreferredUntil returns the end of the priority-offer window, if any.
func (d *Delivery) PreferredUntil() *time.Time {
	return d.preferredUntil
}

// PickupAddress returns the pickup address.
func (d *Delivery) PickupAddress() string {
	return d.pickupAddress
}

// DropoffAddress returns the dropoff address.
func (d *Delivery) DropoffAddress() string {
	return d.dropoffAddress
}

// Price returns the delivery price.
func (d *Delivery) Price() decimal.Decimal {
	return d.price
}

// Notes returns the optional merchant notes.
func (d *Delivery) Notes() string {
	return d.notes
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// CanceledBy returns the actor that canceled the delivery, if canceled.
func (d *Delivery) CanceledBy() *CanceledBy {
	return d.canceledBy
}

// CancelReason returns the recorded cancellation reason, if any.
func (d *Delivery) CancelReason() string {
	return d.cancelReason
}

// IssueReason returns the recorded issue reason, if any.
func (d *Delivery) IssueReason() string {
	return d.issueReason
}

// CreatedAt returns the creation timestamp.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// ExpiresAt returns the deadline for a courier to accept the offer.
func (d *Delivery) ExpiresAt() time.Time {
	return d.expiresAt
}

// AcceptedAt returns when the delivery was claimed, if it was.
func (d *Delivery) AcceptedAt() *time.Time {
	return d.acceptedAt
}

// AcceptBy returns the pickup deadline set at acceptance, if any.
func (d *Delivery) AcceptBy() *time.Time {
	return d.acceptBy
}

// PickedUpAt returns when the package was collected, if it was.
func (d *Delivery) PickedUpAt() *time.Time {
	return d.pickedUpAt
}

// CompletedAt returns when the delivery finished, if it did.
func (d *Delivery) CompletedAt() *time.Time {
	return d.completedAt
}

// CanceledAt returns when the delivery was canceled, if it was.
func (d *Delivery) CanceledAt() *time.Time {
	return d.canceledAt
}

// IssueAt returns when the delivery was flagged, if it was.
func (d *Delivery) IssueAt() *time.Time {
	return d.issueAt
}

// IsAssignedTo reports whether the given courier currently owns this delivery.
func (d *Delivery) IsAssignedTo(courierID kernel.UUID) bool {
	return d.courierID != nil && d.courierID.IsEqual(courierID)
}

// PriorityWindowOpen reports whether the offer is still reserved for the
// preferred courier at the given instant. Deliveries with an open window are
// hidden from every other courier's listing; once the window lapses the offer
// is first-come-first-served for everyone, the preferred courier included.
func (d *Delivery) PriorityWindowOpen(now time.Time) bool {
	return d.preferredCourierID != nil && d.preferredUntil != nil && now.Before(*d.preferredUntil)
}

// CanBeAcceptedBy reports whether the given courier may claim the delivery at
// the given instant. This mirrors the WHERE clause of the atomic accept and is
// used to phrase the error after a lost race.
func (d *Delivery) CanBeAcceptedBy(courierID kernel.UUID, now time.Time) bool {
	if !d.status.CanAccept() || d.courierID != nil {
		return false
	}
	if d.PriorityWindowOpen(now) {
		return d.preferredCourierID.IsEqual(courierID)
	}
	return true
}

// ContactsVisibleToCourier reports whether the merchant's and business's phone
// numbers may be exposed to the given courier. Contact details stay hidden
// until the courier has accepted the delivery.
func (d *Delivery) ContactsVisibleToCourier(courierID kernel.UUID) bool {
	return d.IsAssignedTo(courierID)
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setMerchantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("merchantId", err)
	}
	d.merchantID = id
	return nil
}

func (d *Delivery) setBusinessID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("businessId", err)
	}
	d.businessID = id
	return nil
}

func (d *Delivery) setPickupAddress(addr string) error {
	if addr == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	d.pickupAddress = addr
	return nil
}

func (d *Delivery) setDropoffAddress(addr string) error {
	if addr == "" {
		return errs.NewValueIsRequiredError("dropoffAddress")
	}
	d.dropoffAddress = addr
	return nil
}

func (d *Delivery) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is not greater than 0", price.String()))
	}
	d.price = price
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

// validateCourierConsistency enforces the courier-iff-progressed rule.
func (d *Delivery) validateCourierConsistency() error {
	required, forbidden := d.status.RequiresCourier()
	if required && d.courierID == nil {
		return errs.NewValueIsInvalidErrorWithCause("courierId",
			fmt.Errorf("%s delivery must have a courier", d.status))
	}
	if forbidden && d.courierID != nil {
		return errs.NewValueIsInvalidErrorWithCause("courierId",
			fmt.Errorf("%s delivery must not have a courier", d.status))
	}
	return nil
}
