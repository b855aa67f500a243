package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMyTravelerListingsQueryHandler returns listings by departure, earliest first.
type GetMyTravelerListingsQueryHandler struct {
	db *gorm.DB
}

func NewGetMyTravelerListingsQueryHandler(db *gorm.DB) GetMyTravelerListingsQueryHandler {
	return GetMyTravelerListingsQueryHandler{db: db}
}

func (h GetMyTravelerListingsQueryHandler) Handle(
	ctx context.Context,
	query GetMyTravelerListingsQuery,
) ([]TravelerListingView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []travelerListingRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+travelerListingColumns+`
		FROM traveler_listings tl
		WHERE tl.user_id = ?
		ORDER BY tl.departure_time ASC
	`, query.Owner().Bytes()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return travelerViews(rows)
}

// GetMySenderListingsQueryHandler returns listings newest first.
type GetMySenderListingsQueryHandler struct {
	db *gorm.DB
}

func NewGetMySenderListingsQueryHandler(db *gorm.DB) GetMySenderListingsQueryHandler {
	return GetMySenderListingsQueryHandler{db: db}
}

func (h GetMySenderListingsQueryHandler) Handle(
	ctx context.Context,
	query GetMySenderListingsQuery,
) ([]SenderListingView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []senderListingRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+senderListingColumns+`
		FROM sender_listings sl
		WHERE sl.user_id = ?
		ORDER BY sl.created_at DESC
	`, query.Owner().Bytes()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return senderViews(rows)
}

func travelerViews(rows []travelerListingRow) ([]TravelerListingView, error) {
	views := make([]TravelerListingView, 0, len(rows))
	for _, row := range rows {
		v, err := row.view()
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func senderViews(rows []senderListingRow) ([]SenderListingView, error) {
	views := make([]SenderListingView, 0, len(rows))
	for _, row := range rows {
		v, err := row.view()
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
