package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"luggage/internal/core/application/usecases/commands"
	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/listing"
	"luggage/internal/core/domain/model/match"
	"luggage/internal/core/domain/model/user"
	"luggage/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	now       = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	testClock = kernel.FixedClock{At: now}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockTravelerListingRepository struct{ mock.Mock }

func (m *MockTravelerListingRepository) Add(ctx context.Context, l *listing.TravelerListing) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockTravelerListingRepository) Get(ctx context.Context, id kernel.UUID) (*listing.TravelerListing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.TravelerListing), args.Error(1)
}

func (m *MockTravelerListingRepository) FindCandidates(
	ctx context.Context,
	c ports.TravelerCandidates,
) ([]*listing.TravelerListing, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*listing.TravelerListing), args.Error(1)
}

func (m *MockTravelerListingRepository) DeactivateDeparted(ctx context.Context, at time.Time) (int64, error) {
	args := m.Called(ctx, at)
	return args.Get(0).(int64), args.Error(1)
}

type MockSenderListingRepository struct{ mock.Mock }

func (m *MockSenderListingRepository) Add(ctx context.Context, l *listing.SenderListing) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockSenderListingRepository) Get(ctx context.Context, id kernel.UUID) (*listing.SenderListing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.SenderListing), args.Error(1)
}

func (m *MockSenderListingRepository) FindCandidates(
	ctx context.Context,
	c ports.SenderCandidates,
) ([]*listing.SenderListing, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*listing.SenderListing), args.Error(1)
}

type MockMatchRepository struct{ mock.Mock }

func (m *MockMatchRepository) AddIfAbsent(ctx context.Context, a *match.Match) (bool, error) {
	args := m.Called(ctx, a)
	return args.Bool(0), args.Error(1)
}

func (m *MockMatchRepository) Get(ctx context.Context, id kernel.UUID) (*match.Match, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*match.Match), args.Error(1)
}

func (m *MockMatchRepository) Update(ctx context.Context, a *match.Match) error {
	return m.Called(ctx, a).Error(0)
}

type MockIssueReportRepository struct{ mock.Mock }

func (m *MockIssueReportRepository) Add(ctx context.Context, r *match.IssueReport) error {
	return m.Called(ctx, r).Error(0)
}

// MockUoW satisfies every unit of work view used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) TravelerListingRepository() ports.TravelerListingRepository {
	return m.Called().Get(0).(ports.TravelerListingRepository)
}

func (m *MockUoW) SenderListingRepository() ports.SenderListingRepository {
	return m.Called().Get(0).(ports.SenderListingRepository)
}

func (m *MockUoW) MatchRepository() ports.MatchRepository {
	return m.Called().Get(0).(ports.MatchRepository)
}

func (m *MockUoW) IssueReportRepository() ports.IssueReportRepository {
	return m.Called().Get(0).(ports.IssueReportRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	return m.Called().Get(0).(commands.UserUoW)
}

type MockListingUoWFactory struct{ mock.Mock }

func (m *MockListingUoWFactory) Create() commands.ListingUoW {
	return m.Called().Get(0).(commands.ListingUoW)
}

type MockMatchingUoWFactory struct{ mock.Mock }

func (m *MockMatchingUoWFactory) Create() commands.MatchingUoW {
	return m.Called().Get(0).(commands.MatchingUoW)
}

type MockMatchUoWFactory struct{ mock.Mock }

func (m *MockMatchUoWFactory) Create() commands.MatchUoW {
	return m.Called().Get(0).(commands.MatchUoW)
}

type MockNotificationQueue struct{ mock.Mock }

func (m *MockNotificationQueue) Enqueue(n ports.Notification) bool {
	return m.Called(n).Bool(0)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Matches(hash, password string) bool {
	return m.Called(hash, password).Bool(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(userID kernel.UUID, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}

func newUser(t *testing.T, name, email, phone string) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), email, name, phone, "hash", now)
	require.NoError(t, err)
	return u
}

func jfkLhr(t *testing.T) kernel.Route {
	t.Helper()
	r, err := kernel.NewRoute("JFK", "LHR")
	require.NoError(t, err)
	return r
}

func kg(t *testing.T, v float64) kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeight("weight", v)
	require.NoError(t, err)
	return w
}

func travelerListing(t *testing.T, owner kernel.UUID, departIn time.Duration, capacity float64) *listing.TravelerListing {
	t.Helper()
	departure := now.Add(departIn)
	l, err := listing.RestoreTravelerListing(kernel.NewUUID(), owner, jfkLhr(t), "BA117",
		departure, departure.Add(7*time.Hour), kg(t, capacity), true, now.Add(-48*time.Hour))
	require.NoError(t, err)
	return l
}

func senderListing(t *testing.T, owner kernel.UUID, receiver *kernel.UUID, weight float64) *listing.SenderListing {
	t.Helper()
	l, err := listing.RestoreSenderListing(kernel.NewUUID(), owner, receiver, "r@example.com",
		jfkLhr(t), kg(t, weight), listing.Either, "books", true, now.Add(-48*time.Hour))
	require.NoError(t, err)
	return l
}

func acceptedMatch(t *testing.T, p match.Participants, c match.Checkpoints) *match.Match {
	t.Helper()
	m, err := match.RestoreMatch(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), p,
		match.Accepted, c, now.Add(-time.Hour), now.Add(-time.Hour), 1)
	require.NoError(t, err)
	return m
}
