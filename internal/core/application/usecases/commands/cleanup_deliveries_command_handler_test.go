package commands_test

import (
	"context"
	"testing"
	"time"

	"deliveryhub/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCleanupDeliveriesCommandHandler_Handle_RunsAllSweeps(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCleanupDeliveriesCommand()
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	repo.On("ExpireAvailable", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(3), nil).Once()
	repo.On("RevertAbandoned", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(2), nil).Once()
	repo.On("FlagStaleInTransit", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(int64(1), nil).Once()

	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Times(3)
	uow.On("DeliveryRepository").Return(repo).Times(3)
	uow.On("Commit", ctx).Return(nil).Times(3)
	uow.On("Rollback", ctx).Return(nil).Times(3)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Times(3)

	h := commands.NewCleanupDeliveriesCommandHandler(factory, testTiming())
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Expired)
	assert.Equal(t, int64(2), result.Reverted)
	assert.Equal(t, int64(1), result.Flagged)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCleanupDeliveriesCommandHandler_Handle_StaleThreshold(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCleanupDeliveriesCommand()
	require.NoError(t, err)

	var gotOlderThan, gotNow time.Time
	repo := new(MockDeliveryRepository)
	repo.On("ExpireAvailable", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(0), nil).Once()
	repo.On("RevertAbandoned", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(0), nil).Once()
	repo.On("FlagStaleInTransit", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			gotOlderThan = args.Get(1).(time.Time)
			gotNow = args.Get(2).(time.Time)
		}).
		Return(int64(0), nil).Once()

	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Times(3)
	uow.On("DeliveryRepository").Return(repo).Times(3)
	uow.On("Commit", ctx).Return(nil).Times(3)
	uow.On("Rollback", ctx).Return(nil).Times(3)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Times(3)

	h := commands.NewCleanupDeliveriesCommandHandler(factory, testTiming())
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, testTiming().StaleThreshold(), gotNow.Sub(gotOlderThan))
}

func TestCleanupDeliveriesCommandHandler_Handle_SweepFailureKeepsEarlierCounts(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCleanupDeliveriesCommand()
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	repo.On("ExpireAvailable", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(5), nil).Once()
	repo.On("RevertAbandoned", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(0), assert.AnError).Once()

	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Times(2)
	uow.On("DeliveryRepository").Return(repo).Times(2)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Times(2)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Times(2)

	h := commands.NewCleanupDeliveriesCommandHandler(factory, testTiming())
	result, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, int64(5), result.Expired)
	assert.Equal(t, int64(0), result.Reverted)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
