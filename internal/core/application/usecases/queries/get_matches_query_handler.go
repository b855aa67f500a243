package queries

import (
	"context"
	"time"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/match"
	"luggage/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMatchesQueryHandler reads matches together with both listings and all
// three participants in one statement, newest first. Completed matches are
// never returned.
type GetMatchesQueryHandler struct {
	db         *gorm.DB
	visibility services.TravelerVisibility
}

func NewGetMatchesQueryHandler(db *gorm.DB) GetMatchesQueryHandler {
	return GetMatchesQueryHandler{
		db:         db,
		visibility: services.NewTravelerVisibility(),
	}
}

const selectMatches = `
	SELECT
		m.id, m.status,
		m.drop_off_completed, m.pick_up_completed,
		m.destination_drop_off_completed, m.destination_pick_up_completed,
		m.created_at, m.updated_at,
		tu.id AS traveler_id, tu.name AS traveler_name, tu.email AS traveler_email, tu.phone AS traveler_phone,
		su.id AS sender_id, su.name AS sender_name, su.email AS sender_email, su.phone AS sender_phone,
		ru.id AS receiver_id, ru.name AS receiver_name, ru.email AS receiver_email, ru.phone AS receiver_phone,
		tl.id AS tl_id, tl.user_id AS tl_user_id,
		tl.origin_airport AS tl_origin_airport, tl.destination_airport AS tl_destination_airport,
		tl.flight_number AS tl_flight_number, tl.departure_time AS tl_departure_time,
		tl.arrival_time AS tl_arrival_time, tl.available_weight AS tl_available_weight,
		tl.is_active AS tl_is_active, tl.created_at AS tl_created_at,
		sl.id AS sl_id, sl.user_id AS sl_user_id, sl.receiver_email AS sl_receiver_email,
		sl.origin_airport AS sl_origin_airport, sl.destination_airport AS sl_destination_airport,
		sl.package_weight AS sl_package_weight, sl.package_type AS sl_package_type,
		sl.description AS sl_description, sl.is_active AS sl_is_active, sl.created_at AS sl_created_at
	FROM matches m
	JOIN users tu ON tu.id = m.traveler_id
	JOIN users su ON su.id = m.sender_id
	JOIN users ru ON ru.id = m.receiver_id
	JOIN traveler_listings tl ON tl.id = m.traveler_listing_id
	JOIN sender_listings sl ON sl.id = m.sender_listing_id
	WHERE m.status <> @completed AND `

// Each filter excludes self-matches from the role's point of view. In the
// unfiltered view a sender only sees matches the traveler already accepted.
var matchFilters = map[match.Role]string{
	match.TravelerRole: `(m.traveler_id = @viewer AND m.sender_id <> @viewer)`,
	match.SenderRole:   `(m.sender_id = @viewer AND m.traveler_id <> @viewer)`,
	match.ReceiverRole: `(m.receiver_id = @viewer)`,
	match.NoRole: `(
		(m.traveler_id = @viewer AND m.sender_id <> @viewer)
		OR (m.sender_id = @viewer AND m.traveler_id <> @viewer AND m.status = @accepted)
		OR (m.receiver_id = @viewer)
	)`,
}

type matchRow struct {
	ID                          uuid.UUID
	Status                      int
	DropOffCompleted            bool
	PickUpCompleted             bool
	DestinationDropOffCompleted bool
	DestinationPickUpCompleted  bool
	CreatedAt                   time.Time
	UpdatedAt                   time.Time

	TravelerID    uuid.UUID
	TravelerName  string
	TravelerEmail string
	TravelerPhone string
	SenderID      uuid.UUID
	SenderName    string
	SenderEmail   string
	SenderPhone   string
	ReceiverID    uuid.UUID
	ReceiverName  string
	ReceiverEmail string
	ReceiverPhone string

	TlID                 uuid.UUID
	TlUserID             uuid.UUID
	TlOriginAirport      string
	TlDestinationAirport string
	TlFlightNumber       string
	TlDepartureTime      time.Time
	TlArrivalTime        time.Time
	TlAvailableWeight    float64
	TlIsActive           bool
	TlCreatedAt          time.Time

	SlID                 uuid.UUID
	SlUserID             uuid.UUID
	SlReceiverEmail      string
	SlOriginAirport      string
	SlDestinationAirport string
	SlPackageWeight      float64
	SlPackageType        string
	SlDescription        string
	SlIsActive           bool
	SlCreatedAt          time.Time
}

func (h GetMatchesQueryHandler) Handle(
	ctx context.Context,
	query GetMatchesQuery,
) ([]GetMatchesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []matchRow
	err := h.db.WithContext(ctx).Raw(
		selectMatches+matchFilters[query.Role()]+` ORDER BY m.created_at DESC`,
		map[string]any{
			"viewer":    query.Viewer().Bytes(),
			"completed": int(match.Completed),
			"accepted":  int(match.Accepted),
		},
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]GetMatchesQueryResponse, 0, len(rows))
	for _, row := range rows {
		resp, convErr := h.toResponse(query.Viewer(), row)
		if convErr != nil {
			return nil, convErr
		}
		result = append(result, resp)
	}

	return result, nil
}

func (h GetMatchesQueryHandler) toResponse(viewer kernel.UUID, row matchRow) (GetMatchesQueryResponse, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return GetMatchesQueryResponse{}, err
	}

	traveler, err := contact(row.TravelerID, row.TravelerName, row.TravelerEmail, row.TravelerPhone)
	if err != nil {
		return GetMatchesQueryResponse{}, err
	}
	sender, err := contact(row.SenderID, row.SenderName, row.SenderEmail, row.SenderPhone)
	if err != nil {
		return GetMatchesQueryResponse{}, err
	}
	receiver, err := contact(row.ReceiverID, row.ReceiverName, row.ReceiverEmail, row.ReceiverPhone)
	if err != nil {
		return GetMatchesQueryResponse{}, err
	}

	tl, err := travelerListingRow{
		ID:                 row.TlID,
		UserID:             row.TlUserID,
		OriginAirport:      row.TlOriginAirport,
		DestinationAirport: row.TlDestinationAirport,
		FlightNumber:       row.TlFlightNumber,
		DepartureTime:      row.TlDepartureTime,
		ArrivalTime:        row.TlArrivalTime,
		AvailableWeight:    row.TlAvailableWeight,
		IsActive:           row.TlIsActive,
		CreatedAt:          row.TlCreatedAt,
	}.view()
	if err != nil {
		return GetMatchesQueryResponse{}, err
	}

	sl, err := senderListingRow{
		ID:                 row.SlID,
		UserID:             row.SlUserID,
		ReceiverEmail:      row.SlReceiverEmail,
		OriginAirport:      row.SlOriginAirport,
		DestinationAirport: row.SlDestinationAirport,
		PackageWeight:      row.SlPackageWeight,
		PackageType:        row.SlPackageType,
		Description:        row.SlDescription,
		IsActive:           row.SlIsActive,
		CreatedAt:          row.SlCreatedAt,
	}.view()
	if err != nil {
		return GetMatchesQueryResponse{}, err
	}

	return GetMatchesQueryResponse{
		ID:     id,
		Status: match.Status(row.Status),
		Checkpoints: match.Checkpoints{
			DropOff:            row.DropOffCompleted,
			PickUp:             row.PickUpCompleted,
			DestinationDropOff: row.DestinationDropOffCompleted,
			DestinationPickUp:  row.DestinationPickUpCompleted,
		},
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
		TravelerListing: tl,
		SenderListing:   sl,
		Traveler:        h.visibility.Traveler(viewer, sender.ID, receiver.ID, traveler),
		Sender:          sender,
		Receiver:        receiver,
	}, nil
}

func contact(rawID uuid.UUID, name, email, phone string) (services.Contact, error) {
	id, err := kernel.UUIDFromBytes(rawID[:])
	if err != nil {
		return services.Contact{}, err
	}
	return services.Contact{ID: id, Name: name, Email: email, Phone: phone}, nil
}
