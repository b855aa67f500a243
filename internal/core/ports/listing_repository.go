package ports

import (
	"context"
	"time"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/listing"
)

// TravelerCandidates narrows the traveler listings a new sender listing may pair with.
type TravelerCandidates struct {
	Route         kernel.Route
	MinWeight     kernel.Weight
	ExcludeUserID kernel.UUID
	DepartsFrom   time.Time
}

// SenderCandidates narrows the sender listings a new traveler listing may pair with.
type SenderCandidates struct {
	Route         kernel.Route
	MaxWeight     kernel.Weight
	ExcludeUserID kernel.UUID
	CreatedUntil  time.Time
}

type TravelerListingRepository interface {
	Add(ctx context.Context, aggregate *listing.TravelerListing) error
	Get(ctx context.Context, id kernel.UUID) (*listing.TravelerListing, error)

	// FindCandidates returns active listings on the route with at least
	// MinWeight available, not owned by ExcludeUserID, departing at or after
	// DepartsFrom.
	FindCandidates(ctx context.Context, c TravelerCandidates) ([]*listing.TravelerListing, error)

	// DeactivateDeparted switches off active listings that departed before now
	// and returns how many were changed.
	DeactivateDeparted(ctx context.Context, now time.Time) (int64, error)
}

type SenderListingRepository interface {
	Add(ctx context.Context, aggregate *listing.SenderListing) error
	Get(ctx context.Context, id kernel.UUID) (*listing.SenderListing, error)

	// FindCandidates returns active listings on the route weighing at most
	// MaxWeight, not owned by ExcludeUserID, created at or before CreatedUntil.
	FindCandidates(ctx context.Context, c SenderCandidates) ([]*listing.SenderListing, error)
}
