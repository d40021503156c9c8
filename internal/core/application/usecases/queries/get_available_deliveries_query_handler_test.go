package queries_test

import (
	"context"
	"testing"
	"time"

	"deliveryhub/internal/core/application/usecases/queries"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/user"

	"github.com/stretchr/testify/suite"
)

type GetAvailableDeliveriesQueryHandlerTestSuite struct {
	postgresQuerySuite
}

func (s *GetAvailableDeliveriesQueryHandlerTestSuite) handle(courierID kernel.UUID) []queries.GetAvailableDeliveriesQueryResponse {
	handler := queries.NewGetAvailableDeliveriesQueryHandler(s.db)
	query, err := queries.NewGetAvailableDeliveriesQuery(courierID)
	s.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)
	s.Require().NoError(err)
	return result
}

func (s *GetAvailableDeliveriesQueryHandlerTestSuite) TestReturnsOpenOffersOldestFirst() {
	merchantID := s.seedUser("Maria", "+15550001", user.Merchant)
	businessID := s.seedBusiness(merchantID, "Maria's Flowers", "+15550002")

	first := s.seedDelivery(merchantID, businessID,
		withCreatedAt(time.Now().UTC().Add(-10*time.Minute)), withNotes("fragile"))
	second := s.seedDelivery(merchantID, businessID)

	result := s.handle(kernel.NewUUID())

	s.Require().Len(result, 2)
	s.True(result[0].ID.IsEqual(first.ID()))
	s.True(result[1].ID.IsEqual(second.ID()))
	s.Equal("Maria's Flowers", result[0].BusinessName)
	s.Equal("1 Market St", result[0].PickupAddress)
	s.Equal("9 Harbor Rd", result[0].DropoffAddress)
	s.Equal("fragile", result[0].Notes)
	s.True(result[0].Price.Equal(first.Price()))
}

func (s *GetAvailableDeliveriesQueryHandlerTestSuite) TestExcludesClaimedAndExpiredOffers() {
	merchantID := s.seedUser("Maria", "+15550001", user.Merchant)
	businessID := s.seedBusiness(merchantID, "Maria's Flowers", "+15550002")

	claimed := s.seedDelivery(merchantID, businessID)
	s.acceptDelivery(claimed, kernel.NewUUID())

	// Past its expiry deadline even though the sweep has not run yet.
	s.seedDelivery(merchantID, businessID,
		withCreatedAt(time.Now().UTC().Add(-2*time.Hour)))

	open := s.seedDelivery(merchantID, businessID)

	result := s.handle(kernel.NewUUID())

	s.Require().Len(result, 1)
	s.True(result[0].ID.IsEqual(open.ID()))
}

func (s *GetAvailableDeliveriesQueryHandlerTestSuite) TestReservedOfferVisibleOnlyToPreferredCourier() {
	merchantID := s.seedUser("Maria", "+15550001", user.Merchant)
	businessID := s.seedBusiness(merchantID, "Maria's Flowers", "+15550002")
	preferred := s.seedUser("Kai", "+15550003", user.Courier)

	reserved := s.seedDelivery(merchantID, businessID, withPreferredCourier(preferred))

	s.Empty(s.handle(kernel.NewUUID()), "other couriers must not see a reserved offer")

	result := s.handle(preferred)
	s.Require().Len(result, 1)
	s.True(result[0].ID.IsEqual(reserved.ID()))
}

func (s *GetAvailableDeliveriesQueryHandlerTestSuite) TestReservedOfferOpensToEveryoneAfterWindow() {
	merchantID := s.seedUser("Maria", "+15550001", user.Merchant)
	businessID := s.seedBusiness(merchantID, "Maria's Flowers", "+15550002")
	preferred := s.seedUser("Kai", "+15550003", user.Courier)

	// 45 minutes old: the 30 minute reservation lapsed, the 60 minute
	// expiry has not.
	lapsed := s.seedDelivery(merchantID, businessID,
		withPreferredCourier(preferred),
		withCreatedAt(time.Now().UTC().Add(-45*time.Minute)))

	result := s.handle(kernel.NewUUID())

	s.Require().Len(result, 1)
	s.True(result[0].ID.IsEqual(lapsed.ID()))
}

func TestGetAvailableDeliveriesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAvailableDeliveriesQueryHandlerTestSuite))
}
