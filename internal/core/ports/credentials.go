package ports

import "luggage/internal/core/domain/model/kernel"

// Principal is the authenticated caller behind a bearer token.
type Principal struct {
	UserID kernel.UUID
	Email  string
}

type TokenIssuer interface {
	Issue(userID kernel.UUID, email string) (string, error)
}

// TokenVerifier resolves a bearer token. Invalid or expired tokens yield
// errs.ErrNotAuthenticated.
type TokenVerifier interface {
	Verify(token string) (Principal, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	// Matches reports whether password produced hash.
	Matches(hash, password string) bool
}
