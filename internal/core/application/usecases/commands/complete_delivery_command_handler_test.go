package commands_test

import (
	"context"
	"fmt"
	"testing"

	"deliveryhub/internal/core/application/usecases/commands"
	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	merchantID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	cmd, err := commands.NewCompleteDeliveryCommand(kernel.NewUUID(), courierID)
	require.NoError(t, err)

	completed := restoredDelivery(cmd.DeliveryID(), merchantID,
		withStatus(delivery.Completed), withCourier(courierID))

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("MarkCompleted", mock.Anything, cmd.DeliveryID(), courierID, mock.AnythingOfType("time.Time")).
			Return(true, nil).Once(),
		repo.On("Get", mock.Anything, cmd.DeliveryID()).Return(completed, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Notify", mock.Anything, merchantID,
			fmt.Sprintf("Your delivery %s has been completed!", cmd.DeliveryID().Short())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory, notifier)
	d, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, delivery.Completed, d.Status())
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_NotPickedUp(t *testing.T) {
	ctx := context.Background()
	courierID := kernel.NewUUID()
	cmd, err := commands.NewCompleteDeliveryCommand(kernel.NewUUID(), courierID)
	require.NoError(t, err)

	accepted := restoredDelivery(cmd.DeliveryID(), kernel.NewUUID(),
		withStatus(delivery.Accepted), withCourier(courierID))

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("MarkCompleted", mock.Anything, cmd.DeliveryID(), courierID, mock.AnythingOfType("time.Time")).
			Return(false, nil).Once(),
		repo.On("Get", mock.Anything, cmd.DeliveryID()).Return(accepted, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory, new(MockNotifier))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.Contains(t, err.Error(), "is in status ACCEPTED")
}

func TestCompleteDeliveryCommandHandler_Handle_NoNotificationOnCommitError(t *testing.T) {
	ctx := context.Background()
	courierID := kernel.NewUUID()
	cmd, err := commands.NewCompleteDeliveryCommand(kernel.NewUUID(), courierID)
	require.NoError(t, err)

	completed := restoredDelivery(cmd.DeliveryID(), kernel.NewUUID(),
		withStatus(delivery.Completed), withCourier(courierID))

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("MarkCompleted", mock.Anything, cmd.DeliveryID(), courierID, mock.AnythingOfType("time.Time")).
			Return(true, nil).Once(),
		repo.On("Get", mock.Anything, cmd.DeliveryID()).Return(completed, nil).Once(),
		uow.On("Commit", ctx).Return(assert.AnError).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	h := commands.NewCompleteDeliveryCommandHandler(factory, notifier)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
}
