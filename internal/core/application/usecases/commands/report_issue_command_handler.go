package commands

import (
	"context"
	"fmt"
	"time"

	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/ports"
)

// ReportIssueCommandHandler moves an ACCEPTED or PICKED_UP delivery to ISSUE,
// recording the courier's reason for support follow-up. The merchant is
// notified after commit.
type ReportIssueCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   ports.Notifier
}

// NewReportIssueCommandHandler creates a handler for issue reporting.
func NewReportIssueCommandHandler(uowFactory DeliveryUoWFactory, notifier ports.Notifier) ReportIssueCommandHandler {
	return ReportIssueCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the issue report command.
func (h *ReportIssueCommandHandler) Handle(ctx context.Context, cmd ReportIssueCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()

	matched, err := repo.ReportIssue(ctx, cmd.DeliveryID(), cmd.CourierID(), cmd.Reason(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if !matched {
		courierID := cmd.CourierID()
		return nil, classifyTransitionFailure(ctx, repo, cmd.DeliveryID(),
			delivery.Status.CanReportIssue, &courierID)
	}

	d, err := repo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Notify(ctx, d.MerchantID(),
		fmt.Sprintf("An issue was reported on your delivery %s.", d.ID().Short()))

	return d, nil
}
