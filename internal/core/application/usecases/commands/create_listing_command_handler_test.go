package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"luggage/internal/core/application/usecases/commands"
	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTravelerListingMatcher struct{ mock.Mock }

func (m *MockTravelerListingMatcher) Handle(ctx context.Context, cmd commands.MatchFromTravelerListingCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockSenderListingMatcher struct{ mock.Mock }

func (m *MockSenderListingMatcher) Handle(ctx context.Context, cmd commands.MatchFromSenderListingCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func newTravelerCommand(t *testing.T, departIn time.Duration) commands.CreateTravelerListingCommand {
	t.Helper()
	dep := now.Add(departIn)
	cmd, err := commands.NewCreateTravelerListingCommand(kernel.NewUUID(), "jfk", "lhr", "ba117", dep, dep.Add(7*time.Hour), 10)
	require.NoError(t, err)
	return cmd
}

func TestNewCreateTravelerListingCommand_Validation(t *testing.T) {
	_, err := commands.NewCreateTravelerListingCommand(kernel.NewUUID(), "JFKX", "LHR", "", now, now, 0)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewCreateTravelerListingCommand(kernel.NewUUID(), "JFK", "LHR", "", time.Time{}, now, 5)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateTravelerListingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newTravelerCommand(t, 30*time.Hour)

	repo := new(MockTravelerListingRepository)
	uow := new(MockUoW)
	matcher := new(MockTravelerListingMatcher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TravelerListingRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*listing.TravelerListing")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		matcher.On("Handle", ctx, mock.AnythingOfType("commands.MatchFromTravelerListingCommand")).Return(2, nil).Once(),
	)

	factory := new(MockListingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateTravelerListingCommandHandler(factory, matcher, testClock, discardLogger())
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "BA117", created.FlightNumber())
	assert.Equal(t, "JFK-LHR", created.Route().String())
	assert.True(t, created.IsActive())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	matcher.AssertExpectations(t)
}

func TestCreateTravelerListingCommandHandler_Handle_MatchingFailureIsNotFatal(t *testing.T) {
	ctx := t.Context()
	cmd := newTravelerCommand(t, 30*time.Hour)

	repo := new(MockTravelerListingRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TravelerListingRepository").Return(repo).Once()
	repo.On("Add", ctx, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	matcher := new(MockTravelerListingMatcher)
	matcher.On("Handle", ctx, mock.Anything).Return(0, errors.New("database went away")).Once()

	factory := new(MockListingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateTravelerListingCommandHandler(factory, matcher, testClock, discardLogger())
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.NotNil(t, created)
	matcher.AssertExpectations(t)
}

func TestCreateTravelerListingCommandHandler_Handle_DepartureTooSoon(t *testing.T) {
	ctx := t.Context()
	cmd := newTravelerCommand(t, 20*time.Hour)

	factory := new(MockListingUoWFactory)
	matcher := new(MockTravelerListingMatcher)

	h := commands.NewCreateTravelerListingCommandHandler(factory, matcher, testClock, discardLogger())
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
	matcher.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateTravelerListingCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := newTravelerCommand(t, 30*time.Hour)

	repo := new(MockTravelerListingRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TravelerListingRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.Anything).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockListingUoWFactory)
	factory.On("Create").Return(uow).Once()
	matcher := new(MockTravelerListingMatcher)

	h := commands.NewCreateTravelerListingCommandHandler(factory, matcher, testClock, discardLogger())
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	matcher.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateSenderListingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	sender := kernel.NewUUID()
	receiver := newUser(t, "Rita", "rita@example.com", "+4420")
	cmd, err := commands.NewCreateSenderListingCommand(sender, "RITA@example.com", "JFK", "LHR", 5, "carry-on", " books ")
	require.NoError(t, err)

	users := new(MockUserRepository)
	repo := new(MockSenderListingRepository)
	uow := new(MockUoW)
	matcher := new(MockSenderListingMatcher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		users.On("GetByEmail", ctx, "rita@example.com").Return(receiver, nil).Once(),
		uow.On("SenderListingRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*listing.SenderListing")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		matcher.On("Handle", ctx, mock.Anything).Return(1, nil).Once(),
	)
	factory := new(MockListingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateSenderListingCommandHandler(factory, matcher, testClock, discardLogger())
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	rid, ok := created.ReceiverID()
	require.True(t, ok)
	assert.Equal(t, receiver.ID(), rid)
	assert.Equal(t, "books", created.Description())
	users.AssertExpectations(t)
	repo.AssertExpectations(t)
	matcher.AssertExpectations(t)
}

func TestCreateSenderListingCommandHandler_Handle_UnknownReceiver(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateSenderListingCommand(kernel.NewUUID(), "nobody@example.com", "JFK", "LHR", 5, "checked", "books")
	require.NoError(t, err)

	users := new(MockUserRepository)
	repo := new(MockSenderListingRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users).Once()
	users.On("GetByEmail", ctx, "nobody@example.com").
		Return(nil, errs.NewObjectNotFoundError("email", "nobody@example.com")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockListingUoWFactory)
	factory.On("Create").Return(uow).Once()
	matcher := new(MockSenderListingMatcher)

	h := commands.NewCreateSenderListingCommandHandler(factory, matcher, testClock, discardLogger())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	matcher.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateSenderListingCommandHandler_Handle_ReceiverIsSender(t *testing.T) {
	ctx := t.Context()
	self := newUser(t, "Sam", "sam@example.com", "+1555")
	cmd, err := commands.NewCreateSenderListingCommand(self.ID(), "sam@example.com", "JFK", "LHR", 5, "either", "books")
	require.NoError(t, err)

	users := new(MockUserRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users).Once()
	users.On("GetByEmail", ctx, "sam@example.com").Return(self, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockListingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateSenderListingCommandHandler(factory, new(MockSenderListingMatcher), testClock, discardLogger())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewCreateSenderListingCommand_Validation(t *testing.T) {
	_, err := commands.NewCreateSenderListingCommand(kernel.NewUUID(), "bad", "JFK", "LHR", -1, "crate", "")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
