package http

import (
	"time"

	"deliveryhub/internal/core/application/usecases/queries"
	"deliveryhub/internal/core/domain/model/delivery"

	"github.com/shopspring/decimal"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateDeliveryRequest is the body of POST /api/v1/deliveries.
type CreateDeliveryRequest struct {
	BusinessID         string          `json:"businessId"`
	PickupAddress      string          `json:"pickupAddress"`
	DropoffAddress     string          `json:"dropoffAddress"`
	Price              decimal.Decimal `json:"price"`
	Notes              string          `json:"notes,omitempty"`
	PreferredCourierID *string         `json:"preferredCourierId,omitempty"`
}

// CancelDeliveryRequest is the optional body of the merchant cancel endpoint.
type CancelDeliveryRequest struct {
	Reason string `json:"reason,omitempty"`
}

// ReportIssueRequest is the body of POST /api/v1/deliveries/{id}/issue.
type ReportIssueRequest struct {
	Reason string `json:"reason"`
}

// DeliveryResponse is the state of a delivery as returned by the lifecycle
// endpoints. Command endpoints return the delivery they just transitioned.
type DeliveryResponse struct {
	ID             string          `json:"id"`
	Status         string          `json:"status"`
	BusinessID     string          `json:"businessId"`
	PickupAddress  string          `json:"pickupAddress"`
	DropoffAddress string          `json:"dropoffAddress"`
	Price          decimal.Decimal `json:"price"`
	Notes          string          `json:"notes,omitempty"`
	CancelReason   string          `json:"cancelReason,omitempty"`
	CanceledBy     *string         `json:"canceledBy,omitempty"`
	IssueReason    string          `json:"issueReason,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	ExpiresAt      time.Time       `json:"expiresAt"`
	AcceptedAt     *time.Time      `json:"acceptedAt,omitempty"`
	AcceptBy       *time.Time      `json:"acceptBy,omitempty"`
	PickedUpAt     *time.Time      `json:"pickedUpAt,omitempty"`
	CompletedAt    *time.Time      `json:"completedAt,omitempty"`
	CanceledAt     *time.Time      `json:"canceledAt,omitempty"`
	IssueAt        *time.Time      `json:"issueAt,omitempty"`
}

func toDeliveryResponse(d *delivery.Delivery) DeliveryResponse {
	resp := DeliveryResponse{
		ID:             d.ID().String(),
		Status:         d.Status().String(),
		BusinessID:     d.BusinessID().String(),
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

	if by := d.CanceledBy(); by != nil {
		s := by.String()
		resp.CanceledBy = &s
	}

	return resp
}

// AvailableDeliveryResponse is one open offer in the courier marketplace
// listing. No contact details are exposed at this stage.
type AvailableDeliveryResponse struct {
	ID             string          `json:"id"`
	BusinessName   string          `json:"businessName"`
	PickupAddress  string          `json:"pickupAddress"`
	DropoffAddress string          `json:"dropoffAddress"`
	Price          decimal.Decimal `json:"price"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	ExpiresAt      time.Time       `json:"expiresAt"`
}

func toAvailableDeliveryResponses(rows []queries.GetAvailableDeliveriesQueryResponse) []AvailableDeliveryResponse {
	result := make([]AvailableDeliveryResponse, len(rows))
	for i, row := range rows {
		result[i] = AvailableDeliveryResponse{
			ID:             row.ID.String(),
			BusinessName:   row.BusinessName,
			PickupAddress:  row.PickupAddress,
			DropoffAddress: row.DropoffAddress,
			Price:          row.Price,
			Notes:          row.Notes,
			CreatedAt:      row.CreatedAt,
			ExpiresAt:      row.ExpiresAt,
		}
	}
	return result
}

// CourierDeliveryResponse is one in-progress delivery in the courier's
// active list, contacts included.
type CourierDeliveryResponse struct {
	ID             string          `json:"id"`
	Status         string          `json:"status"`
	BusinessName   string          `json:"businessName"`
	BusinessPhone  string          `json:"businessPhone"`
	MerchantName   string          `json:"merchantName"`
	MerchantPhone  string          `json:"merchantPhone"`
	PickupAddress  string          `json:"pickupAddress"`
	DropoffAddress string          `json:"dropoffAddress"`
	Price          decimal.Decimal `json:"price"`
	Notes          string          `json:"notes,omitempty"`
	AcceptedAt     *time.Time      `json:"acceptedAt,omitempty"`
	AcceptBy       *time.Time      `json:"acceptBy,omitempty"`
	PickedUpAt     *time.Time      `json:"pickedUpAt,omitempty"`
}

func toCourierDeliveryResponses(rows []queries.GetCourierDeliveriesQueryResponse) []CourierDeliveryResponse {
	result := make([]CourierDeliveryResponse, len(rows))
	for i, row := range rows {
		result[i] = CourierDeliveryResponse{
			ID:             row.ID.String(),
			Status:         row.Status.String(),
			BusinessName:   row.BusinessName,
			BusinessPhone:  row.BusinessPhone,
			MerchantName:   row.MerchantName,
			MerchantPhone:  row.MerchantPhone,
			PickupAddress:  row.PickupAddress,
			DropoffAddress: row.DropoffAddress,
			Price:          row.Price,
			Notes:          row.Notes,
			AcceptedAt:     row.AcceptedAt,
			AcceptBy:       row.AcceptBy,
			PickedUpAt:     row.PickedUpAt,
		}
	}
	return result
}

// MerchantDeliveryResponse is one delivery in the merchant's own listing.
type MerchantDeliveryResponse struct {
	ID             string          `json:"id"`
	Status         string          `json:"status"`
	BusinessName   string          `json:"businessName"`
	CourierName    *string         `json:"courierName,omitempty"`
	CourierPhone   *string         `json:"courierPhone,omitempty"`
	PickupAddress  string          `json:"pickupAddress"`
	DropoffAddress string          `json:"dropoffAddress"`
	Price          decimal.Decimal `json:"price"`
	Notes          string          `json:"notes,omitempty"`
	CancelReason   string          `json:"cancelReason,omitempty"`
	IssueReason    string          `json:"issueReason,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	ExpiresAt      time.Time       `json:"expiresAt"`
	CompletedAt    *time.Time      `json:"completedAt,omitempty"`
}

func toMerchantDeliveryResponses(rows []queries.GetMerchantDeliveriesQueryResponse) []MerchantDeliveryResponse {
	result := make([]MerchantDeliveryResponse, len(rows))
	for i, row := range rows {
		result[i] = MerchantDeliveryResponse{
			ID:             row.ID.String(),
			Status:         row.Status.String(),
			BusinessName:   row.BusinessName,
			CourierName:    row.CourierName,
			CourierPhone:   row.CourierPhone,
			PickupAddress:  row.PickupAddress,
			DropoffAddress: row.DropoffAddress,
			Price:          row.Price,
			Notes:          row.Notes,
			CancelReason:   row.CancelReason,
			IssueReason:    row.IssueReason,
			CreatedAt:      row.CreatedAt,
			ExpiresAt:      row.ExpiresAt,
			CompletedAt:    row.CompletedAt,
		}
	}
	return result
}

// DeliveryDetailResponse is the role-gated detail view. Contact fields are
// omitted from the JSON when the viewer is not entitled to them.
type DeliveryDetailResponse struct {
	ID             string          `json:"id"`
	Status         string          `json:"status"`
	BusinessName   string          `json:"businessName"`
	BusinessPhone  *string         `json:"businessPhone,omitempty"`
	MerchantName   string          `json:"merchantName"`
	MerchantPhone  *string         `json:"merchantPhone,omitempty"`
	CourierName    *string         `json:"courierName,omitempty"`
	CourierPhone   *string         `json:"courierPhone,omitempty"`
	PickupAddress  string          `json:"pickupAddress"`
	DropoffAddress string          `json:"dropoffAddress"`
	Price          decimal.Decimal `json:"price"`
	Notes          string          `json:"notes,omitempty"`
	CanceledBy     *string         `json:"canceledBy,omitempty"`
	CancelReason   string          `json:"cancelReason,omitempty"`
	IssueReason    string          `json:"issueReason,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	ExpiresAt      time.Time       `json:"expiresAt"`
	AcceptedAt     *time.Time      `json:"acceptedAt,omitempty"`
	AcceptBy       *time.Time      `json:"acceptBy,omitempty"`
	PickedUpAt     *time.Time      `json:"pickedUpAt,omitempty"`
	CompletedAt    *time.Time      `json:"completedAt,omitempty"`
	CanceledAt     *time.Time      `json:"canceledAt,omitempty"`
	IssueAt        *time.Time      `json:"issueAt,omitempty"`
}

func toDeliveryDetailResponse(row *queries.GetDeliveryQueryResponse) DeliveryDetailResponse {
	resp := DeliveryDetailResponse{
		ID:             row.ID.String(),
		Status:         row.Status.String(),
		BusinessName:   row.BusinessName,
		BusinessPhone:  row.BusinessPhone,
		MerchantName:   row.MerchantName,
		MerchantPhone:  row.MerchantPhone,
		CourierName:    row.CourierName,
		CourierPhone:   row.CourierPhone,
		PickupAddress:  row.PickupAddress,
		DropoffAddress: row.DropoffAddress,
		Price:          row.Price,
		Notes:          row.Notes,
		CancelReason:   row.CancelReason,
		IssueReason:    row.IssueReason,
		CreatedAt:      row.CreatedAt,
		ExpiresAt:      row.ExpiresAt,
		AcceptedAt:     row.AcceptedAt,
		AcceptBy:       row.AcceptBy,
		PickedUpAt:     row.PickedUpAt,
		CompletedAt:    row.CompletedAt,
		CanceledAt:     row.CanceledAt,
		IssueAt:        row.IssueAt,
	}

	if row.CanceledBy != nil {
		s := row.CanceledBy.String()
		resp.CanceledBy = &s
	}

	return resp
}
