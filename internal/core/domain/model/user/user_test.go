package user_test

import (
	"testing"
	"time"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/user"
	"luggage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("normalises email and trims fields", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "  Alice@Example.COM ", " Alice ", " +15550001 ", "hash", now)

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", u.Email())
		assert.Equal(t, "Alice", u.Name())
		assert.Equal(t, "+15550001", u.Phone())
		require.NoError(t, u.Validate())
	})

	t.Run("collects every missing field", func(t *testing.T) {
		_, err := user.NewUser(kernel.UUID{}, "", "", "", "", now)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "phone")
		assert.Contains(t, err.Error(), "password")
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "not-an-email", "Alice", "1", "hash", now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var u *user.User

		assert.Equal(t, user.ErrUserIsNotConstructed, u.Validate())
	})
}
