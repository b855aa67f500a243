// Package listingrepo persists traveler and sender listings.
package listingrepo

import (
	"time"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/listing"

	"github.com/google/uuid"
)

// RouteDTO is embedded into both listing tables.
type RouteDTO struct {
	OriginAirport      string `gorm:"type:varchar(3);not null"`
	DestinationAirport string `gorm:"type:varchar(3);not null"`
}

// TravelerListingDTO is a traveler_listings row.
type TravelerListingDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;index;not null"`
	Route           RouteDTO  `gorm:"embedded"`
	FlightNumber    string    `gorm:"not null"`
	DepartureTime   time.Time `gorm:"index;not null"`
	ArrivalTime     time.Time `gorm:"not null"`
	AvailableWeight float64   `gorm:"not null"`
	IsActive        bool      `gorm:"index;not null"`
	CreatedAt       time.Time `gorm:"not null"`
}

func (TravelerListingDTO) TableName() string {
	return "traveler_listings"
}

// SenderListingDTO is a sender_listings row. ReceiverID is nullable for rows
// written before receivers were required.
type SenderListingDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID  `gorm:"type:uuid;index;not null"`
	ReceiverID    *uuid.UUID `gorm:"type:uuid"`
	ReceiverEmail string
	Route         RouteDTO  `gorm:"embedded"`
	PackageWeight float64   `gorm:"not null"`
	PackageType   string    `gorm:"not null;default:carry-on"`
	Description   string    `gorm:"not null"`
	IsActive      bool      `gorm:"index;not null"`
	CreatedAt     time.Time `gorm:"index;not null"`
}

func (SenderListingDTO) TableName() string {
	return "sender_listings"
}

func routeFromDomain(r kernel.Route) RouteDTO {
	return RouteDTO{
		OriginAirport:      r.Origin().String(),
		DestinationAirport: r.Destination().String(),
	}
}

func travelerFromDomain(l *listing.TravelerListing) TravelerListingDTO {
	return TravelerListingDTO{
		ID:              l.ID().Bytes(),
		UserID:          l.UserID().Bytes(),
		Route:           routeFromDomain(l.Route()),
		FlightNumber:    l.FlightNumber(),
		DepartureTime:   l.DepartureTime().UTC(),
		ArrivalTime:     l.ArrivalTime().UTC(),
		AvailableWeight: l.AvailableWeight().Kilograms(),
		IsActive:        l.IsActive(),
		CreatedAt:       l.CreatedAt().UTC(),
	}
}

func travelerToDomain(dto TravelerListingDTO) (*listing.TravelerListing, error) {
	id, userID, err := ids(dto.ID, dto.UserID)
	if err != nil {
		return nil, err
	}

	route, err := kernel.NewRoute(dto.Route.OriginAirport, dto.Route.DestinationAirport)
	if err != nil {
		return nil, err
	}

	weight, err := kernel.NewWeight("availableWeight", dto.AvailableWeight)
	if err != nil {
		return nil, err
	}

	return listing.RestoreTravelerListing(
		id, userID, route, dto.FlightNumber,
		dto.DepartureTime, dto.ArrivalTime,
		weight, dto.IsActive, dto.CreatedAt,
	)
}

func senderFromDomain(l *listing.SenderListing) SenderListingDTO {
	var receiverID *uuid.UUID
	if id, ok := l.ReceiverID(); ok {
		raw := id.Bytes()
		receiverID = &raw
	}

	return SenderListingDTO{
		ID:            l.ID().Bytes(),
		UserID:        l.UserID().Bytes(),
		ReceiverID:    receiverID,
		ReceiverEmail: l.ReceiverEmail(),
		Route:         routeFromDomain(l.Route()),
		PackageWeight: l.PackageWeight().Kilograms(),
		PackageType:   l.PackageType().String(),
		Description:   l.Description(),
		IsActive:      l.IsActive(),
		CreatedAt:     l.CreatedAt().UTC(),
	}
}

func senderToDomain(dto SenderListingDTO) (*listing.SenderListing, error) {
	id, userID, err := ids(dto.ID, dto.UserID)
	if err != nil {
		return nil, err
	}

	var receiverID *kernel.UUID
	if dto.ReceiverID != nil {
		rid, ridErr := kernel.UUIDFromBytes((*dto.ReceiverID)[:])
		if ridErr != nil {
			return nil, ridErr
		}
		receiverID = &rid
	}

	route, err := kernel.NewRoute(dto.Route.OriginAirport, dto.Route.DestinationAirport)
	if err != nil {
		return nil, err
	}

	weight, err := kernel.NewWeight("packageWeight", dto.PackageWeight)
	if err != nil {
		return nil, err
	}

	packageType, err := listing.ParsePackageType(dto.PackageType)
	if err != nil {
		return nil, err
	}

	return listing.RestoreSenderListing(
		id, userID, receiverID, dto.ReceiverEmail,
		route, weight, packageType, dto.Description,
		dto.IsActive, dto.CreatedAt,
	)
}

func ids(rawID, rawUserID uuid.UUID) (kernel.UUID, kernel.UUID, error) {
	id, err := kernel.UUIDFromBytes(rawID[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	userID, err := kernel.UUIDFromBytes(rawUserID[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return id, userID, nil
}
