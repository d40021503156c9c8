package commands_test

import (
	"context"
	"testing"

	"deliveryhub/internal/core/application/usecases/commands"
	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewPickUpDeliveryCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewPickUpDeliveryCommand(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
	_, err = commands.NewPickUpDeliveryCommand(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
}

func TestPickUpDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	courierID := kernel.NewUUID()
	cmd, err := commands.NewPickUpDeliveryCommand(kernel.NewUUID(), courierID)
	require.NoError(t, err)

	pickedUp := restoredDelivery(cmd.DeliveryID(), kernel.NewUUID(),
		withStatus(delivery.PickedUp), withCourier(courierID))

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("MarkPickedUp", mock.Anything, cmd.DeliveryID(), courierID, mock.AnythingOfType("time.Time")).
			Return(true, nil).Once(),
		repo.On("Get", mock.Anything, cmd.DeliveryID()).Return(pickedUp, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPickUpDeliveryCommandHandler(factory)
	d, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, delivery.PickedUp, d.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPickUpDeliveryCommandHandler_Handle_WrongStatus(t *testing.T) {
	ctx := context.Background()
	courierID := kernel.NewUUID()
	cmd, err := commands.NewPickUpDeliveryCommand(kernel.NewUUID(), courierID)
	require.NoError(t, err)

	available := restoredDelivery(cmd.DeliveryID(), kernel.NewUUID())

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("MarkPickedUp", mock.Anything, cmd.DeliveryID(), courierID, mock.AnythingOfType("time.Time")).
			Return(false, nil).Once(),
		repo.On("Get", mock.Anything, cmd.DeliveryID()).Return(available, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPickUpDeliveryCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.Contains(t, err.Error(), "is in status AVAILABLE")
}

func TestPickUpDeliveryCommandHandler_Handle_WrongCourier(t *testing.T) {
	ctx := context.Background()
	courierID := kernel.NewUUID()
	cmd, err := commands.NewPickUpDeliveryCommand(kernel.NewUUID(), courierID)
	require.NoError(t, err)

	foreign := restoredDelivery(cmd.DeliveryID(), kernel.NewUUID(),
		withStatus(delivery.Accepted), withCourier(kernel.NewUUID()))

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("MarkPickedUp", mock.Anything, cmd.DeliveryID(), courierID, mock.AnythingOfType("time.Time")).
			Return(false, nil).Once(),
		repo.On("Get", mock.Anything, cmd.DeliveryID()).Return(foreign, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPickUpDeliveryCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
}
