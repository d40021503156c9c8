package commands_test

import (
	"context"
	"time"

	"deliveryhub/internal/core/application/usecases/commands"
	"deliveryhub/internal/core/domain/model/business"
	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/user"
	"deliveryhub/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) Accept(ctx context.Context, id, courierID kernel.UUID, now, acceptBy time.Time) (bool, error) {
	args := m.Called(ctx, id, courierID, now, acceptBy)
	return args.Bool(0), args.Error(1)
}

func (m *MockDeliveryRepository) MarkPickedUp(ctx context.Context, id, courierID kernel.UUID, now time.Time) (bool, error) {
	args := m.Called(ctx, id, courierID, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockDeliveryRepository) MarkCompleted(ctx context.Context, id, courierID kernel.UUID, now time.Time) (bool, error) {
	args := m.Called(ctx, id, courierID, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockDeliveryRepository) CancelByCourier(ctx context.Context, id, courierID kernel.UUID, now time.Time) (bool, error) {
	args := m.Called(ctx, id, courierID, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockDeliveryRepository) CancelByMerchant(ctx context.Context, id, merchantID kernel.UUID, reason string, now time.Time) (bool, error) {
	args := m.Called(ctx, id, merchantID, reason, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockDeliveryRepository) CancelByAdmin(ctx context.Context, id kernel.UUID, now time.Time) (ports.AdminCancelOutcome, error) {
	args := m.Called(ctx, id, now)
	return args.Get(0).(ports.AdminCancelOutcome), args.Error(1)
}

func (m *MockDeliveryRepository) ReportIssue(ctx context.Context, id, courierID kernel.UUID, reason string, now time.Time) (bool, error) {
	args := m.Called(ctx, id, courierID, reason, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockDeliveryRepository) ExpireAvailable(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDeliveryRepository) RevertAbandoned(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDeliveryRepository) FlagStaleInTransit(ctx context.Context, olderThan, now time.Time) (int64, error) {
	args := m.Called(ctx, olderThan, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockBusinessRepository struct{ mock.Mock }

func (m *MockBusinessRepository) Get(ctx context.Context, id kernel.UUID) (*business.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Business), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockDeliveryUoW struct{ mock.Mock }

func (m *MockDeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockCreateDeliveryUoW struct {
	MockDeliveryUoW
}

func (m *MockCreateDeliveryUoW) BusinessRepository() ports.BusinessRepository {
	args := m.Called()
	return args.Get(0).(ports.BusinessRepository)
}

func (m *MockCreateDeliveryUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockCreateDeliveryUoWFactory struct{ mock.Mock }

func (m *MockCreateDeliveryUoWFactory) Create() commands.CreateDeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateDeliveryUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, userID kernel.UUID, message string) {
	m.Called(ctx, userID, message)
}

func testTiming() delivery.Timing {
	t, err := delivery.NewTiming(60*time.Minute, 30*time.Minute, 45*time.Minute, 4*time.Hour)
	if err != nil {
		panic(err)
	}
	return t
}

type deliveryOption func(*delivery.RestoreDeliveryParams)

func withStatus(s delivery.Status) deliveryOption {
	return func(p *delivery.RestoreDeliveryParams) {
		p.Status = s
	}
}

func withCourier(courierID kernel.UUID) deliveryOption {
	return func(p *delivery.RestoreDeliveryParams) {
		p.CourierID = &courierID
	}
}

func withPreferredCourier(courierID kernel.UUID, until time.Time) deliveryOption {
	return func(p *delivery.RestoreDeliveryParams) {
		p.PreferredCourierID = &courierID
		p.PreferredUntil = &until
	}
}

func restoredDelivery(id, merchantID kernel.UUID, opts ...deliveryOption) *delivery.Delivery {
	now := time.Now().UTC()
	params := delivery.RestoreDeliveryParams{
		ID:             id,
		MerchantID:     merchantID,
		BusinessID:     kernel.NewUUID(),
		PickupAddress:  "1 Market St",
		DropoffAddress: "9 Harbor Rd",
		Price:          decimal.NewFromInt(25),
		Status:         delivery.Available,
		CreatedAt:      now,
		ExpiresAt:      now.Add(time.Hour),
	}

	for _, opt := range opts {
		opt(&params)
	}

	d, err := delivery.RestoreDelivery(params)
	if err != nil {
		panic(err)
	}
	return d
}
