package queries

import (
	"errors"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

// GetUserQuery reads the profile of an authenticated user.
type GetUserQuery struct {
	userID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewGetUserQuery(userID kernel.UUID) (GetUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserQuery{}, err
	}
	return GetUserQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

func (q GetUserQuery) UserID() kernel.UUID { return q.userID }

// GetUserQueryResponse never carries the password hash.
type GetUserQueryResponse struct {
	ID    kernel.UUID
	Email string
	Name  string
	Phone string
}
