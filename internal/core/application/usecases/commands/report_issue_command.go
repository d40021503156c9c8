package commands

import (
	"errors"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/guard"
)

var (
	ErrReportIssueCommandIsNotConstructed = errors.New(
		"ReportIssueCommand must be created via NewReportIssueCommand constructor",
	)
)

// ReportIssueCommand represents the assigned courier flagging a problem with a
// claimed or in-transit delivery. Unlike cancel commands the reason is
// mandatory: an ISSUE row without an explanation is useless to support staff.
type ReportIssueCommand struct {
	deliveryID kernel.UUID
	courierID  kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewReportIssueCommand creates a validated issue report command.
func NewReportIssueCommand(deliveryID, courierID kernel.UUID, reason string) (ReportIssueCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		courierID.Validate(),
	); err != nil {
		return ReportIssueCommand{}, err
	}

	if reason == "" {
		return ReportIssueCommand{}, errs.NewValueIsRequiredError("reason")
	}

	return ReportIssueCommand{
		deliveryID: deliveryID,
		courierID:  courierID,
		reason:     reason,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportIssueCommand) Validate() error {
	return c.guard.Validate(ErrReportIssueCommandIsNotConstructed)
}

// DeliveryID returns the delivery being flagged.
func (c ReportIssueCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CourierID returns the reporting courier.
func (c ReportIssueCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Reason returns the reported problem description.
func (c ReportIssueCommand) Reason() string {
	return c.reason
}
