// Package commands contains the operations that change marketplace state.
// Every command is built by a validating constructor and executed by a
// handler inside its own unit of work.
package commands

import (
	"context"

	"luggage/internal/core/ports"
)

// Unit of work views. Each handler asks only for the repositories it uses.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	TravelerListingRepoFactory interface {
		TravelerListingRepository() ports.TravelerListingRepository
	}

	SenderListingRepoFactory interface {
		SenderListingRepository() ports.SenderListingRepository
	}

	MatchRepoFactory interface {
		MatchRepository() ports.MatchRepository
	}

	IssueReportRepoFactory interface {
		IssueReportRepository() ports.IssueReportRepository
	}

	// UserUoW serves account registration.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	// ListingUoW serves listing creation; sender listings resolve their
	// receiver through the user repository.
	ListingUoW interface {
		TxManager
		UserRepoFactory
		TravelerListingRepoFactory
		SenderListingRepoFactory
	}

	ListingUoWFactory interface {
		Create() ListingUoW
	}

	// MatchingUoW serves the matching engine.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   candidates, err := uow.TravelerListingRepository().FindCandidates(ctx, c)
	//   created, err := uow.MatchRepository().AddIfAbsent(ctx, m)
	//
	//   err = uow.Commit(ctx)
	MatchingUoW interface {
		TxManager
		UserRepoFactory
		TravelerListingRepoFactory
		SenderListingRepoFactory
		MatchRepoFactory
	}

	MatchingUoWFactory interface {
		Create() MatchingUoW
	}

	// MatchUoW serves match transitions and issue reports.
	MatchUoW interface {
		TxManager
		TravelerListingRepoFactory
		MatchRepoFactory
		IssueReportRepoFactory
	}

	MatchUoWFactory interface {
		Create() MatchUoW
	}
)
