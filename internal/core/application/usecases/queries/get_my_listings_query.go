package queries

import (
	"errors"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/pkg/guard"
)

var (
	ErrGetMyTravelerListingsQueryIsNotConstructed = errors.New(
		"GetMyTravelerListingsQuery must be created via NewGetMyTravelerListingsQuery constructor",
	)
	ErrGetMySenderListingsQueryIsNotConstructed = errors.New(
		"GetMySenderListingsQuery must be created via NewGetMySenderListingsQuery constructor",
	)
)

// GetMyTravelerListingsQuery lists every traveler listing the owner posted,
// active or not.
type GetMyTravelerListingsQuery struct {
	owner kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetMyTravelerListingsQuery(owner kernel.UUID) (GetMyTravelerListingsQuery, error) {
	if err := owner.Validate(); err != nil {
		return GetMyTravelerListingsQuery{}, err
	}
	return GetMyTravelerListingsQuery{owner: owner, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMyTravelerListingsQuery) Validate() error {
	return q.guard.Validate(ErrGetMyTravelerListingsQueryIsNotConstructed)
}

func (q GetMyTravelerListingsQuery) Owner() kernel.UUID { return q.owner }

// GetMySenderListingsQuery lists every sender listing the owner posted.
type GetMySenderListingsQuery struct {
	owner kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetMySenderListingsQuery(owner kernel.UUID) (GetMySenderListingsQuery, error) {
	if err := owner.Validate(); err != nil {
		return GetMySenderListingsQuery{}, err
	}
	return GetMySenderListingsQuery{owner: owner, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMySenderListingsQuery) Validate() error {
	return q.guard.Validate(ErrGetMySenderListingsQueryIsNotConstructed)
}

func (q GetMySenderListingsQuery) Owner() kernel.UUID { return q.owner }
