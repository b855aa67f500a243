package commands

import (
	"context"
	"errors"
	"fmt"

	"luggage/internal/core/ports"
	"luggage/internal/pkg/errs"
)

// ErrInvalidCredentials hides whether the e-mail or the password was wrong.
var ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", errs.ErrNotAuthenticated)

// LoginCommandHandler checks a password and issues a token. It does not write.
type LoginCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenIssuer
}

func NewLoginCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (AuthResult, error) {
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

	u, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return AuthResult{}, err
	}

	if !h.hasher.Matches(u.PasswordHash(), cmd.Password()) {
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := h.tokens.Issue(u.ID(), u.Email())
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{Token: token, User: u}, nil
}
