package queries

import (
	"time"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/listing"

	"github.com/google/uuid"
)

// TravelerListingView is the read model of a traveler listing.
type TravelerListingView struct {
	ID              kernel.UUID
	UserID          kernel.UUID
	Route           kernel.Route
	FlightNumber    string
	DepartureTime   time.Time
	ArrivalTime     time.Time
	AvailableWeight kernel.Weight
	IsActive        bool
	CreatedAt       time.Time
}

// SenderListingView is the read model of a sender listing.
type SenderListingView struct {
	ID            kernel.UUID
	UserID        kernel.UUID
	ReceiverEmail string
	Route         kernel.Route
	PackageWeight kernel.Weight
	PackageType   listing.PackageType
	Description   string
	IsActive      bool
	CreatedAt     time.Time
}

// ListingOwner is the public face of whoever posted a listing.
type ListingOwner struct {
	ID   kernel.UUID
	Name string
}

type travelerListingRow struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	OriginAirport      string
	DestinationAirport string
	FlightNumber       string
	DepartureTime      time.Time
	ArrivalTime        time.Time
	AvailableWeight    float64
	IsActive           bool
	CreatedAt          time.Time
}

func (r travelerListingRow) view() (TravelerListingView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return TravelerListingView{}, err
	}
	userID, err := kernel.UUIDFromBytes(r.UserID[:])
	if err != nil {
		return TravelerListingView{}, err
	}
	route, err := kernel.NewRoute(r.OriginAirport, r.DestinationAirport)
	if err != nil {
		return TravelerListingView{}, err
	}
	weight, err := kernel.NewWeight("availableWeight", r.AvailableWeight)
	if err != nil {
		return TravelerListingView{}, err
	}

	return TravelerListingView{
		ID:              id,
		UserID:          userID,
		Route:           route,
		FlightNumber:    r.FlightNumber,
		DepartureTime:   r.DepartureTime,
		ArrivalTime:     r.ArrivalTime,
		AvailableWeight: weight,
		IsActive:        r.IsActive,
		CreatedAt:       r.CreatedAt,
	}, nil
}

type senderListingRow struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	ReceiverEmail      string
	OriginAirport      string
	DestinationAirport string
	PackageWeight      float64
	PackageType        string
	Description        string
	IsActive           bool
	CreatedAt          time.Time
}

func (r senderListingRow) view() (SenderListingView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return SenderListingView{}, err
	}
	userID, err := kernel.UUIDFromBytes(r.UserID[:])
	if err != nil {
		return SenderListingView{}, err
	}
	route, err := kernel.NewRoute(r.OriginAirport, r.DestinationAirport)
	if err != nil {
		return SenderListingView{}, err
	}
	weight, err := kernel.NewWeight("packageWeight", r.PackageWeight)
	if err != nil {
		return SenderListingView{}, err
	}
	packageType, err := listing.ParsePackageType(r.PackageType)
	if err != nil {
		return SenderListingView{}, err
	}

	return SenderListingView{
		ID:            id,
		UserID:        userID,
		ReceiverEmail: r.ReceiverEmail,
		Route:         route,
		PackageWeight: weight,
		PackageType:   packageType,
		Description:   r.Description,
		IsActive:      r.IsActive,
		CreatedAt:     r.CreatedAt,
	}, nil
}

const (
	travelerListingColumns = `tl.id, tl.user_id, tl.origin_airport, tl.destination_airport, tl.flight_number,
		tl.departure_time, tl.arrival_time, tl.available_weight, tl.is_active, tl.created_at`
	senderListingColumns = `sl.id, sl.user_id, sl.receiver_email, sl.origin_airport, sl.destination_airport,
		sl.package_weight, sl.package_type, sl.description, sl.is_active, sl.created_at`
)
