package commands_test

import (
	"errors"
	"testing"

	"luggage/internal/core/application/usecases/commands"
	"luggage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterUserCommand(t *testing.T) {
	cmd, err := commands.NewRegisterUserCommand(" Alice@Example.COM ", "secret", " Alice ", "+1555")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", cmd.Email())
	assert.Equal(t, "Alice", cmd.Name())

	_, err = commands.NewRegisterUserCommand("", "", "", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewRegisterUserCommand("alice", "secret", "Alice", "+1555")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand("alice@example.com", "secret", "Alice", "+1555")
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	hasher := new(MockPasswordHasher)
	tokens := new(MockTokenIssuer)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByEmail", ctx, "alice@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "alice@example.com")).Once(),
		hasher.On("Hash", "secret").Return("hashed", nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		tokens.On("Issue", mock.Anything, "alice@example.com").Return("jwt", nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory, hasher, tokens, testClock)
	res, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "jwt", res.Token)
	assert.Equal(t, "hashed", res.User.PasswordHash())
	assert.Equal(t, now, res.User.CreatedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	hasher.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterUserCommand("alice@example.com", "secret", "Alice", "+1555")
	existing := newUser(t, "Alice", "alice@example.com", "+1555")

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(repo).Once()
	repo.On("GetByEmail", ctx, "alice@example.com").Return(existing, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory, new(MockPasswordHasher), new(MockTokenIssuer), testClock)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRegisterUserCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterUserCommand("alice@example.com", "secret", "Alice", "+1555")

	uow := new(MockUoW)
	factory := new(MockUserUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewRegisterUserCommandHandler(factory, new(MockPasswordHasher), new(MockTokenIssuer), testClock)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestRegisterUserCommandHandler_Handle_NotConstructed(t *testing.T) {
	h := commands.NewRegisterUserCommandHandler(new(MockUserUoWFactory), new(MockPasswordHasher), new(MockTokenIssuer), testClock)

	_, err := h.Handle(t.Context(), commands.RegisterUserCommand{})
	require.ErrorIs(t, err, commands.ErrRegisterUserCommandIsNotConstructed)
}

func TestLoginCommandHandler_Handle(t *testing.T) {
	alice := newUser(t, "Alice", "alice@example.com", "+1555")

	setup := func(t *testing.T, found bool, passwordOK bool) (commands.LoginCommandHandler, *MockTokenIssuer) {
		ctx := t.Context()
		repo := new(MockUserRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("UserRepository").Return(repo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		if found {
			repo.On("GetByEmail", ctx, "alice@example.com").Return(alice, nil).Once()
		} else {
			repo.On("GetByEmail", ctx, "alice@example.com").
				Return(nil, errs.NewObjectNotFoundError("email", "alice@example.com")).Once()
		}

		hasher := new(MockPasswordHasher)
		hasher.On("Matches", "hash", "secret").Return(passwordOK).Maybe()
		tokens := new(MockTokenIssuer)
		tokens.On("Issue", alice.ID(), alice.Email()).Return("jwt", nil).Maybe()

		factory := new(MockUserUoWFactory)
		factory.On("Create").Return(uow).Once()
		return commands.NewLoginCommandHandler(factory, hasher, tokens), tokens
	}

	cmd, err := commands.NewLoginCommand("ALICE@example.com", "secret")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		h, tokens := setup(t, true, true)

		res, err := h.Handle(t.Context(), cmd)
		require.NoError(t, err)
		assert.Equal(t, "jwt", res.Token)
		assert.True(t, res.User.IsEqual(alice))
		tokens.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		h, _ := setup(t, true, false)

		_, err := h.Handle(t.Context(), cmd)
		require.ErrorIs(t, err, errs.ErrNotAuthenticated)
	})

	t.Run("unknown e-mail", func(t *testing.T) {
		h, _ := setup(t, false, false)

		_, err := h.Handle(t.Context(), cmd)
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}
