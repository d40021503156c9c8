package queries_test

import (
	"context"
	"time"

	"deliveryhub/internal/adapters/out/postgres/businessrepo"
	"deliveryhub/internal/adapters/out/postgres/deliveryrepo"
	"deliveryhub/internal/adapters/out/postgres/userrepo"
	"deliveryhub/internal/core/domain/model/business"
	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// postgresQuerySuite is the shared fixture for the read-side tests: one
// container per suite, a truncate per test, and seeding helpers that go
// through the write-side repositories so the rows look exactly like
// production rows.
type postgresQuerySuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	timing    delivery.Timing

	deliveries *deliveryrepo.GormDeliveryRepository
	businesses *businessrepo.GormBusinessRepository
	users      *userrepo.GormUserRepository
}

func (s *postgresQuerySuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)
	s.db = db

	err = db.AutoMigrate(&deliveryrepo.DeliveryDTO{}, &businessrepo.BusinessDTO{}, &userrepo.UserDTO{})
	s.Require().NoError(err)

	s.deliveries = deliveryrepo.NewGormDeliveryRepository(db)
	s.businesses = businessrepo.NewGormBusinessRepository(db)
	s.users = userrepo.NewGormUserRepository(db)

	s.timing, err = delivery.NewTiming(60*time.Minute, 30*time.Minute, 45*time.Minute, 4*time.Hour)
	s.Require().NoError(err)
}

func (s *postgresQuerySuite) TearDownSuite() {
	if s.container != nil {
		err := s.container.Terminate(context.Background())
		s.Require().NoError(err)
	}
}

func (s *postgresQuerySuite) SetupTest() {
	err := s.db.Exec("TRUNCATE TABLE deliveries, businesses, users").Error
	s.Require().NoError(err)
}

func (s *postgresQuerySuite) seedUser(name, phone string, role user.Role) kernel.UUID {
	id := kernel.NewUUID()
	u, err := user.RestoreUser(id, name, phone, role, true, false, time.Now().UTC())
	s.Require().NoError(err)
	err = s.users.Add(context.Background(), u)
	s.Require().NoError(err)
	return id
}

func (s *postgresQuerySuite) seedBusiness(ownerID kernel.UUID, name, phone string) kernel.UUID {
	id := kernel.NewUUID()
	b, err := business.RestoreBusiness(id, ownerID, name, phone, "12 Main St", business.Active, time.Now().UTC())
	s.Require().NoError(err)
	err = s.businesses.Add(context.Background(), b)
	s.Require().NoError(err)
	return id
}

type seedDeliveryOptions struct {
	preferredCourier *kernel.UUID
	notes            string
	createdAt        time.Time
}

type seedDeliveryOption func(*seedDeliveryOptions)

func withPreferredCourier(courierID kernel.UUID) seedDeliveryOption {
	return func(o *seedDeliveryOptions) {
		o.preferredCourier = &courierID
	}
}

func withNotes(notes string) seedDeliveryOption {
	return func(o *seedDeliveryOptions) {
		o.notes = notes
	}
}

func withCreatedAt(t time.Time) seedDeliveryOption {
	return func(o *seedDeliveryOptions) {
		o.createdAt = t
	}
}

// seedDelivery creates an AVAILABLE offer through the domain constructor.
func (s *postgresQuerySuite) seedDelivery(merchantID, businessID kernel.UUID, opts ...seedDeliveryOption) *delivery.Delivery {
	options := seedDeliveryOptions{createdAt: time.Now().UTC()}
	for _, opt := range opts {
		opt(&options)
	}

	d, err := delivery.NewDelivery(
		kernel.NewUUID(), merchantID, businessID,
		"1 Market St", "9 Harbor Rd",
		decimal.NewFromFloat(25.00), options.notes,
		options.preferredCourier,
		options.createdAt, s.timing,
	)
	s.Require().NoError(err)
	err = s.deliveries.Add(context.Background(), d)
	s.Require().NoError(err)
	return d
}

func (s *postgresQuerySuite) acceptDelivery(d *delivery.Delivery, courierID kernel.UUID) {
	now := time.Now().UTC()
	ok, err := s.deliveries.Accept(context.Background(), d.ID(), courierID, now, now.Add(s.timing.PickupTimeout()))
	s.Require().NoError(err)
	s.Require().True(ok)
}

func (s *postgresQuerySuite) pickUpDelivery(d *delivery.Delivery, courierID kernel.UUID) {
	ok, err := s.deliveries.MarkPickedUp(context.Background(), d.ID(), courierID, time.Now().UTC())
	s.Require().NoError(err)
	s.Require().True(ok)
}

func (s *postgresQuerySuite) completeDelivery(d *delivery.Delivery, courierID kernel.UUID) {
	ok, err := s.deliveries.MarkCompleted(context.Background(), d.ID(), courierID, time.Now().UTC())
	s.Require().NoError(err)
	s.Require().True(ok)
}
