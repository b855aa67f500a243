package commands

import (
	"errors"
	"strings"

	"luggage/internal/core/domain/model/user"
	"luggage/internal/pkg/errs"
	"luggage/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand opens a new account.
type RegisterUserCommand struct {
	email    string
	password string
	name     string
	phone    string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand requires every field; the e-mail is normalised.
func NewRegisterUserCommand(email, password, name, phone string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		email:    user.NormalizeEmail(email),
		password: password,
		name:     strings.TrimSpace(name),
		phone:    strings.TrimSpace(phone),
		guard:    guard.NewConstructorGuard(),
	}

	var passwordErr error
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}

	if err := errors.Join(
		user.ValidateEmail("email", email),
		passwordErr,
		required("name", cmd.name),
		required("phone", cmd.phone),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Email() string    { return c.email }
func (c RegisterUserCommand) Password() string { return c.password }
func (c RegisterUserCommand) Name() string     { return c.name }
func (c RegisterUserCommand) Phone() string    { return c.phone }

func required(param, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
