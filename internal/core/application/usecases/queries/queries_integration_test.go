package queries_test

import (
	"context"
	"testing"
	"time"

	adapter "luggage/internal/adapters/out/postgres"
	"luggage/internal/adapters/out/postgres/matchrepo"
	"luggage/internal/adapters/out/postgres/pgtest"
	"luggage/internal/core/application/usecases/queries"
	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/listing"
	"luggage/internal/core/domain/model/match"
	"luggage/internal/core/domain/model/user"
	"luggage/internal/core/domain/services"
	"luggage/internal/core/ports"
	"luggage/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type QueriesIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	uow      ports.UnitOfWork
	now      time.Time

	traveler, sender, receiver, stranger *user.User
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), adapter.Models()...)
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate(
		"users", "traveler_listings", "sender_listings", "matches", "issue_reports",
	))
	suite.uow = adapter.NewGormUnitOfWorkFactory(suite.database.DB).Create()
	suite.now = time.Now().UTC().Truncate(time.Microsecond)

	suite.traveler = suite.addUser("traveler@example.com", "Tom Traveler", "+15550000001")
	suite.sender = suite.addUser("sender@example.com", "Sue Sender", "+15550000002")
	suite.receiver = suite.addUser("receiver@example.com", "Ray Receiver", "+15550000003")
	suite.stranger = suite.addUser("stranger@example.com", "Sam Stranger", "+15550000004")
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) TestGetMatches_TravelerSeesOwnDataAndSkipsCompletedAndSelfMatches() {
	open := suite.addMatch(suite.traveler, suite.sender, suite.receiver, match.Pending, 0)
	accepted := suite.addMatch(suite.traveler, suite.sender, suite.receiver, match.Accepted, time.Minute)
	suite.addMatch(suite.traveler, suite.sender, suite.receiver, match.Completed, 2*time.Minute)
	suite.addSelfMatch(3 * time.Minute)

	result := suite.getMatches(suite.traveler.ID(), "traveler")

	suite.Require().Len(result, 2)
	suite.Equal(accepted.ID(), result[0].ID, "newest first")
	suite.Equal(open.ID(), result[1].ID)
	suite.Equal("Tom Traveler", result[0].Traveler.Name)
	suite.Equal("traveler@example.com", result[0].Traveler.Email)
	suite.Equal("Sue Sender", result[0].Sender.Name)
	suite.Equal("Ray Receiver", result[0].Receiver.Name)
	suite.Equal(match.Accepted, result[0].Status)
	suite.Equal("JFK-LHR", result[0].TravelerListing.Route.String())
	suite.Equal("BA112", result[0].TravelerListing.FlightNumber)
	suite.Equal(listing.CarryOn, result[0].SenderListing.PackageType)
	suite.Equal("receiver@example.com", result[0].SenderListing.ReceiverEmail)
}

func (suite *QueriesIntegrationTestSuite) TestGetMatches_SenderAndReceiverSeeAnonymousTraveler() {
	m := suite.addMatch(suite.traveler, suite.sender, suite.receiver, match.Pending, 0)

	for _, viewer := range []struct {
		name   string
		id     kernel.UUID
		filter string
	}{
		{"sender", suite.sender.ID(), "sender"},
		{"receiver", suite.receiver.ID(), "receiver"},
	} {
		suite.Run(viewer.name, func() {
			result := suite.getMatches(viewer.id, viewer.filter)

			suite.Require().Len(result, 1)
			suite.Equal(m.ID(), result[0].ID)
			suite.Equal(services.Contact{
				ID:    suite.traveler.ID(),
				Name:  services.AnonymousTravelerName,
				Email: services.AnonymousTravelerEmail,
				Phone: services.AnonymousTravelerPhone,
			}, result[0].Traveler)
			suite.Equal("Sue Sender", result[0].Sender.Name)
		})
	}
}

func (suite *QueriesIntegrationTestSuite) TestGetMatches_TravelerWhoIsAlsoReceiverSeesRealData() {
	suite.addMatch(suite.traveler, suite.sender, suite.traveler, match.Pending, 0)

	result := suite.getMatches(suite.traveler.ID(), "receiver")

	suite.Require().Len(result, 1)
	suite.Equal("Tom Traveler", result[0].Traveler.Name)
	suite.Equal("+15550000001", result[0].Traveler.Phone)
}

func (suite *QueriesIntegrationTestSuite) TestGetMatches_UnfilteredViewShowsSendersAcceptedOnly() {
	pending := suite.addMatch(suite.traveler, suite.sender, suite.receiver, match.Pending, 0)
	accepted := suite.addMatch(suite.traveler, suite.sender, suite.receiver, match.Accepted, time.Minute)
	rejected := suite.addMatch(suite.traveler, suite.sender, suite.receiver, match.Rejected, 2*time.Minute)

	senderView := suite.getMatches(suite.sender.ID(), "")
	suite.Require().Len(senderView, 1)
	suite.Equal(accepted.ID(), senderView[0].ID)
	suite.Equal(services.AnonymousTravelerName, senderView[0].Traveler.Name)

	travelerView := suite.getMatches(suite.traveler.ID(), "all")
	suite.Len(travelerView, 3)

	receiverView := suite.getMatches(suite.receiver.ID(), "")
	suite.Require().Len(receiverView, 3)
	suite.Equal(rejected.ID(), receiverView[0].ID)
	suite.Equal(pending.ID(), receiverView[2].ID)
	for _, m := range receiverView {
		suite.Equal(services.AnonymousTravelerName, m.Traveler.Name)
	}

	suite.Empty(suite.getMatches(suite.stranger.ID(), ""))
}

func (suite *QueriesIntegrationTestSuite) TestGetMatches_UnknownFilterIsRejected() {
	_, err := queries.NewGetMatchesQuery(suite.traveler.ID(), "courier")
	suite.ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *QueriesIntegrationTestSuite) TestGetMyListings_Ordering() {
	late := suite.addTravelerListing(suite.traveler, "JFK", "LHR", 96*time.Hour)
	early := suite.addTravelerListing(suite.traveler, "JFK", "CDG", 48*time.Hour)
	suite.addTravelerListing(suite.stranger, "JFK", "LHR", 30*time.Hour)

	query, err := queries.NewGetMyTravelerListingsQuery(suite.traveler.ID())
	suite.Require().NoError(err)
	travelers, err := queries.NewGetMyTravelerListingsQueryHandler(suite.database.DB).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(travelers, 2)
	suite.Equal(early.ID(), travelers[0].ID)
	suite.Equal(late.ID(), travelers[1].ID)

	older := suite.addSenderListing(suite.sender, suite.receiver, "JFK", "LHR", suite.now.Add(-time.Hour))
	newer := suite.addSenderListing(suite.sender, suite.receiver, "JFK", "LHR", suite.now)

	senderQuery, err := queries.NewGetMySenderListingsQuery(suite.sender.ID())
	suite.Require().NoError(err)
	senders, err := queries.NewGetMySenderListingsQueryHandler(suite.database.DB).Handle(context.Background(), senderQuery)
	suite.Require().NoError(err)
	suite.Require().Len(senders, 2)
	suite.Equal(newer.ID(), senders[0].ID)
	suite.Equal(older.ID(), senders[1].ID)
	suite.Equal("books", senders[0].Description)
}

func (suite *QueriesIntegrationTestSuite) TestSearchListings_Travelers() {
	mine := suite.addTravelerListing(suite.sender, "JFK", "LHR", 48*time.Hour)
	first := suite.addTravelerListing(suite.traveler, "JFK", "LHR", 50*time.Hour)
	second := suite.addTravelerListing(suite.stranger, "JFK", "LHR", 70*time.Hour)
	suite.addTravelerListing(suite.stranger, "LAX", "LHR", 70*time.Hour)

	viewer := suite.sender.ID()
	query, err := queries.NewSearchListingsQuery(queries.TravelerListings, " jfk", "lhr", &viewer)
	suite.Require().NoError(err)

	result, err := queries.NewSearchListingsQueryHandler(suite.database.DB).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(queries.TravelerListings, result.Kind)
	suite.Empty(result.Senders)
	suite.Require().Len(result.Travelers, 2)
	suite.Equal(first.ID(), result.Travelers[0].Listing.ID)
	suite.Equal(queries.ListingOwner{ID: suite.traveler.ID(), Name: "Tom Traveler"}, result.Travelers[0].Owner)
	suite.Equal(second.ID(), result.Travelers[1].Listing.ID)

	anonymous, err := queries.NewSearchListingsQuery(queries.TravelerListings, "", "", nil)
	suite.Require().NoError(err)
	result, err = queries.NewSearchListingsQueryHandler(suite.database.DB).Handle(context.Background(), anonymous)
	suite.Require().NoError(err)
	suite.Len(result.Travelers, 4)
	suite.Equal(mine.ID(), result.Travelers[0].Listing.ID)
}

func (suite *QueriesIntegrationTestSuite) TestSearchListings_SendersSkipInactive() {
	older := suite.addSenderListing(suite.sender, suite.receiver, "JFK", "LHR", suite.now.Add(-time.Hour))
	newer := suite.addSenderListing(suite.stranger, suite.receiver, "JFK", "LHR", suite.now)
	suite.Require().NoError(suite.database.DB.Exec(
		"UPDATE sender_listings SET is_active = false WHERE id = ?", older.ID().Bytes()).Error)

	query, err := queries.NewSearchListingsQuery(queries.SenderListings, "JFK", "", nil)
	suite.Require().NoError(err)

	result, err := queries.NewSearchListingsQueryHandler(suite.database.DB).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result.Senders, 1)
	suite.Equal(newer.ID(), result.Senders[0].Listing.ID)
	suite.Equal("Sam Stranger", result.Senders[0].Owner.Name)
}

func (suite *QueriesIntegrationTestSuite) TestGetUser() {
	query, err := queries.NewGetUserQuery(suite.receiver.ID())
	suite.Require().NoError(err)

	handler := queries.NewGetUserQueryHandler(suite.database.DB)
	resp, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(queries.GetUserQueryResponse{
		ID:    suite.receiver.ID(),
		Email: "receiver@example.com",
		Name:  "Ray Receiver",
		Phone: "+15550000003",
	}, resp)

	missing, err := queries.NewGetUserQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = handler.Handle(context.Background(), missing)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) getMatches(viewer kernel.UUID, filter string) []queries.GetMatchesQueryResponse {
	query, err := queries.NewGetMatchesQuery(viewer, filter)
	suite.Require().NoError(err)

	result, err := queries.NewGetMatchesQueryHandler(suite.database.DB).Handle(context.Background(), query)
	suite.Require().NoError(err)
	return result
}

func (suite *QueriesIntegrationTestSuite) addUser(email, name, phone string) *user.User {
	u, err := user.NewUser(kernel.NewUUID(), email, name, phone, "hash", suite.now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow.UserRepository().Add(context.Background(), u))
	return u
}

func (suite *QueriesIntegrationTestSuite) addTravelerListing(
	owner *user.User,
	origin, destination string,
	departIn time.Duration,
) *listing.TravelerListing {
	route, err := kernel.NewRoute(origin, destination)
	suite.Require().NoError(err)
	capacity, err := kernel.NewWeight("availableWeight", 10)
	suite.Require().NoError(err)

	departure := suite.now.Add(departIn)
	l, err := listing.NewTravelerListing(kernel.NewUUID(), owner.ID(), route, "ba112",
		departure, departure.Add(7*time.Hour), capacity, suite.now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow.TravelerListingRepository().Add(context.Background(), l))
	return l
}

func (suite *QueriesIntegrationTestSuite) addSenderListing(
	owner, receiver *user.User,
	origin, destination string,
	createdAt time.Time,
) *listing.SenderListing {
	route, err := kernel.NewRoute(origin, destination)
	suite.Require().NoError(err)
	weight, err := kernel.NewWeight("packageWeight", 2)
	suite.Require().NoError(err)

	l, err := listing.NewSenderListing(kernel.NewUUID(), owner.ID(), receiver.ID(), receiver.Email(),
		route, weight, listing.CarryOn, "books", createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow.SenderListingRepository().Add(context.Background(), l))
	return l
}

// addMatch stores a match created offset after suite.now. Sender listings
// are written directly so that traveler and receiver may coincide.
func (suite *QueriesIntegrationTestSuite) addMatch(
	traveler, sender, receiver *user.User,
	status match.Status,
	offset time.Duration,
) *match.Match {
	ctx := context.Background()
	tl := suite.addTravelerListing(traveler, "JFK", "LHR", 72*time.Hour)

	route, err := kernel.NewRoute("JFK", "LHR")
	suite.Require().NoError(err)
	weight, err := kernel.NewWeight("packageWeight", 2)
	suite.Require().NoError(err)
	receiverID := receiver.ID()
	sl, err := listing.RestoreSenderListing(kernel.NewUUID(), sender.ID(), &receiverID, receiver.Email(),
		route, weight, listing.CarryOn, "books", true, suite.now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow.SenderListingRepository().Add(ctx, sl))

	var checkpoints match.Checkpoints
	if status == match.Completed {
		checkpoints = match.Checkpoints{DropOff: true, PickUp: true, DestinationDropOff: true, DestinationPickUp: true}
	}
	created := suite.now.Add(offset)
	m, err := match.RestoreMatch(kernel.NewUUID(), tl.ID(), sl.ID(), match.Participants{
		TravelerID: traveler.ID(),
		SenderID:   sender.ID(),
		ReceiverID: receiver.ID(),
	}, status, checkpoints, created, created, 0)
	suite.Require().NoError(err)

	inserted, err := suite.uow.MatchRepository().AddIfAbsent(ctx, m)
	suite.Require().NoError(err)
	suite.Require().True(inserted)
	return m
}

// addSelfMatch writes a row the domain refuses to build: the traveler is
// also the sender.
func (suite *QueriesIntegrationTestSuite) addSelfMatch(offset time.Duration) {
	tl := suite.addTravelerListing(suite.traveler, "JFK", "LHR", 72*time.Hour)
	sl := suite.addSenderListing(suite.traveler, suite.receiver, "JFK", "LHR", suite.now)
	created := suite.now.Add(offset)

	suite.Require().NoError(suite.database.DB.Create(&matchrepo.MatchDTO{
		ID:                kernel.NewUUID().Bytes(),
		TravelerListingID: tl.ID().Bytes(),
		SenderListingID:   sl.ID().Bytes(),
		TravelerID:        suite.traveler.ID().Bytes(),
		SenderID:          suite.traveler.ID().Bytes(),
		ReceiverID:        suite.receiver.ID().Bytes(),
		Status:            int(match.Pending),
		CreatedAt:         created,
		UpdatedAt:         created,
	}).Error)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
