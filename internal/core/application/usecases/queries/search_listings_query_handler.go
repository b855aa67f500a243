package queries

import (
	"context"

	"luggage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchListingsQueryHandler orders travelers by departure and senders newest
// first.
type SearchListingsQueryHandler struct {
	db *gorm.DB
}

func NewSearchListingsQueryHandler(db *gorm.DB) SearchListingsQueryHandler {
	return SearchListingsQueryHandler{db: db}
}

type ownerColumns struct {
	OwnerID   uuid.UUID
	OwnerName string
}

func (o ownerColumns) owner() (ListingOwner, error) {
	id, err := kernel.UUIDFromBytes(o.OwnerID[:])
	if err != nil {
		return ListingOwner{}, err
	}
	return ListingOwner{ID: id, Name: o.OwnerName}, nil
}

func (h SearchListingsQueryHandler) Handle(
	ctx context.Context,
	query SearchListingsQuery,
) (SearchListingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SearchListingsQueryResponse{}, err
	}

	if query.Kind() == TravelerListings {
		travelers, err := h.travelers(ctx, query)
		return SearchListingsQueryResponse{Kind: TravelerListings, Travelers: travelers}, err
	}

	senders, err := h.senders(ctx, query)
	return SearchListingsQueryResponse{Kind: SenderListings, Senders: senders}, err
}

func (h SearchListingsQueryHandler) travelers(ctx context.Context, query SearchListingsQuery) ([]TravelerSearchResult, error) {
	var rows []struct {
		Listing travelerListingRow `gorm:"embedded"`
		Owner   ownerColumns       `gorm:"embedded"`
	}
	err := h.filter(h.db.WithContext(ctx).
		Table("traveler_listings tl").
		Select(travelerListingColumns+", u.id AS owner_id, u.name AS owner_name").
		Joins("JOIN users u ON u.id = tl.user_id"), "tl", query).
		Order("tl.departure_time ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]TravelerSearchResult, 0, len(rows))
	for _, row := range rows {
		v, convErr := row.Listing.view()
		if convErr != nil {
			return nil, convErr
		}
		owner, convErr := row.Owner.owner()
		if convErr != nil {
			return nil, convErr
		}
		result = append(result, TravelerSearchResult{Listing: v, Owner: owner})
	}
	return result, nil
}

func (h SearchListingsQueryHandler) senders(ctx context.Context, query SearchListingsQuery) ([]SenderSearchResult, error) {
	var rows []struct {
		Listing senderListingRow `gorm:"embedded"`
		Owner   ownerColumns     `gorm:"embedded"`
	}
	err := h.filter(h.db.WithContext(ctx).
		Table("sender_listings sl").
		Select(senderListingColumns+", u.id AS owner_id, u.name AS owner_name").
		Joins("JOIN users u ON u.id = sl.user_id"), "sl", query).
		Order("sl.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]SenderSearchResult, 0, len(rows))
	for _, row := range rows {
		v, convErr := row.Listing.view()
		if convErr != nil {
			return nil, convErr
		}
		owner, convErr := row.Owner.owner()
		if convErr != nil {
			return nil, convErr
		}
		result = append(result, SenderSearchResult{Listing: v, Owner: owner})
	}
	return result, nil
}

func (h SearchListingsQueryHandler) filter(db *gorm.DB, alias string, query SearchListingsQuery) *gorm.DB {
	db = db.Where(alias+".is_active = ?", true)
	if query.Origin() != "" {
		db = db.Where(alias+".origin_airport = ?", query.Origin())
	}
	if query.Destination() != "" {
		db = db.Where(alias+".destination_airport = ?", query.Destination())
	}
	if viewer, ok := query.Viewer(); ok {
		db = db.Where(alias+".user_id <> ?", viewer.Bytes())
	}
	return db
}
