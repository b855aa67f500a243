// Package user holds the account identity consumed by the marketplace core.
// Users are created at registration and read-only everywhere else.
package user

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned for a User built outside NewUser/RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// User is a registered account. Email is unique and stored lowercase.
type User struct {
	id           kernel.UUID
	email        string
	name         string
	phone        string
	passwordHash string
	createdAt    time.Time

	isConstructed bool
}

// NewUser validates a freshly registered account. passwordHash must already
// be hashed; the domain never sees the plaintext.
func NewUser(id kernel.UUID, email, name, phone, passwordHash string, createdAt time.Time) (*User, error) {
	u := &User{createdAt: createdAt, isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setName(name),
		u.setPhone(phone),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a persisted account.
func RestoreUser(id kernel.UUID, email, name, phone, passwordHash string, createdAt time.Time) (*User, error) {
	return NewUser(id, email, name, phone, passwordHash, createdAt)
}

// NormalizeEmail trims and lowercases an address; lookups and storage both use it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks the address shape after normalisation.
func ValidateEmail(paramName, email string) error {
	normalized := NormalizeEmail(email)
	if normalized == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if !emailPattern.MatchString(normalized) {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%q is not an e-mail address", email))
	}
	return nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID          { return u.id }
func (u *User) Email() string            { return u.email }
func (u *User) Name() string             { return u.name }
func (u *User) Phone() string            { return u.phone }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
func (u *User) IsEqual(other *User) bool { return other != nil && u.id.IsEqual(other.id) }

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if err := ValidateEmail("email", email); err != nil {
		return err
	}
	u.email = NormalizeEmail(email)
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	u.phone = phone
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = hash
	return nil
}
