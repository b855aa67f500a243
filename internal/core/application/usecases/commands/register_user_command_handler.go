package commands

import (
	"context"
	"errors"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/user"
	"luggage/internal/core/ports"
	"luggage/internal/pkg/errs"
)

// AuthResult is returned by registration and login.
type AuthResult struct {
	Token string
	User  *user.User
}

// RegisterUserCommandHandler stores a new account with a hashed password and
// issues its first token.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenIssuer
	clock      kernel.Clock
}

func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	clock kernel.Clock,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
		clock:      clock,
	}
}

// Handle fails with errs.ErrObjectAlreadyExists when the e-mail is taken.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (AuthResult, error) {
	if err := cmd.Validate(); err != nil {
		return AuthResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AuthResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()

	_, err := repo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return AuthResult{}, errs.NewObjectAlreadyExistsError("email", cmd.Email())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return AuthResult{}, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return AuthResult{}, err
	}

	u, err := user.NewUser(kernel.NewUUID(), cmd.Email(), cmd.Name(), cmd.Phone(), hash, h.clock.Now())
	if err != nil {
		return AuthResult{}, err
	}

	if err = repo.Add(ctx, u); err != nil {
		return AuthResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AuthResult{}, err
	}

	token, err := h.tokens.Issue(u.ID(), u.Email())
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{Token: token, User: u}, nil
}
