package http

import (
	"time"

	"luggage/internal/core/application/usecases/queries"
	"luggage/internal/core/domain/model/listing"
	"luggage/internal/core/domain/model/match"
	"luggage/internal/core/domain/model/user"
	"luggage/internal/core/domain/services"
	"luggage/internal/generated/servers"
)

func toUser(u *user.User) servers.User {
	return servers.User{
		Id:    u.ID().Bytes(),
		Email: u.Email(),
		Name:  u.Name(),
		Phone: u.Phone(),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deadline(departure time.Time) *time.Time {
	d := departure.Add(-listing.DropOffCutoff)
	return &d
}

func fromTravelerListing(l *listing.TravelerListing) servers.TravelerListing {
	return servers.TravelerListing{
		Id:                 l.ID().Bytes(),
		UserId:             l.UserID().Bytes(),
		OriginAirport:      l.Route().Origin().String(),
		DestinationAirport: l.Route().Destination().String(),
		FlightNumber:       optional(l.FlightNumber()),
		DepartureTime:      l.DepartureTime(),
		ArrivalTime:        l.ArrivalTime(),
		DropOffDeadline:    deadline(l.DepartureTime()),
		AvailableWeight:    l.AvailableWeight().Kilograms(),
		IsActive:           l.IsActive(),
		CreatedAt:          l.CreatedAt(),
	}
}

func fromTravelerView(v queries.TravelerListingView) servers.TravelerListing {
	return servers.TravelerListing{
		Id:                 v.ID.Bytes(),
		UserId:             v.UserID.Bytes(),
		OriginAirport:      v.Route.Origin().String(),
		DestinationAirport: v.Route.Destination().String(),
		FlightNumber:       optional(v.FlightNumber),
		DepartureTime:      v.DepartureTime,
		ArrivalTime:        v.ArrivalTime,
		DropOffDeadline:    deadline(v.DepartureTime),
		AvailableWeight:    v.AvailableWeight.Kilograms(),
		IsActive:           v.IsActive,
		CreatedAt:          v.CreatedAt,
	}
}

func fromSenderListing(l *listing.SenderListing) servers.SenderListing {
	return servers.SenderListing{
		Id:                 l.ID().Bytes(),
		UserId:             l.UserID().Bytes(),
		ReceiverEmail:      optional(l.ReceiverEmail()),
		OriginAirport:      l.Route().Origin().String(),
		DestinationAirport: l.Route().Destination().String(),
		PackageWeight:      l.PackageWeight().Kilograms(),
		PackageType:        servers.PackageType(l.PackageType().String()),
		Description:        l.Description(),
		IsActive:           l.IsActive(),
		CreatedAt:          l.CreatedAt(),
	}
}

// fromSenderView omits the receiver e-mail unless the caller may see it.
func fromSenderView(v queries.SenderListingView, withReceiver bool) servers.SenderListing {
	out := servers.SenderListing{
		Id:                 v.ID.Bytes(),
		UserId:             v.UserID.Bytes(),
		OriginAirport:      v.Route.Origin().String(),
		DestinationAirport: v.Route.Destination().String(),
		PackageWeight:      v.PackageWeight.Kilograms(),
		PackageType:        servers.PackageType(v.PackageType.String()),
		Description:        v.Description,
		IsActive:           v.IsActive,
		CreatedAt:          v.CreatedAt,
	}
	if withReceiver {
		out.ReceiverEmail = optional(v.ReceiverEmail)
	}
	return out
}

func fromOwner(o queries.ListingOwner) servers.ListingOwner {
	return servers.ListingOwner{Id: o.ID.Bytes(), Name: o.Name}
}

func fromTravelerSearchResult(r queries.TravelerSearchResult) servers.TravelerSearchResult {
	l := fromTravelerView(r.Listing)
	return servers.TravelerSearchResult{
		Id:                 l.Id,
		UserId:             l.UserId,
		OriginAirport:      l.OriginAirport,
		DestinationAirport: l.DestinationAirport,
		FlightNumber:       l.FlightNumber,
		DepartureTime:      l.DepartureTime,
		ArrivalTime:        l.ArrivalTime,
		DropOffDeadline:    l.DropOffDeadline,
		AvailableWeight:    l.AvailableWeight,
		IsActive:           l.IsActive,
		CreatedAt:          l.CreatedAt,
		User:               fromOwner(r.Owner),
	}
}

func fromSenderSearchResult(r queries.SenderSearchResult) servers.SenderSearchResult {
	l := fromSenderView(r.Listing, false)
	return servers.SenderSearchResult{
		Id:                 l.Id,
		UserId:             l.UserId,
		OriginAirport:      l.OriginAirport,
		DestinationAirport: l.DestinationAirport,
		PackageWeight:      l.PackageWeight,
		PackageType:        l.PackageType,
		Description:        l.Description,
		IsActive:           l.IsActive,
		CreatedAt:          l.CreatedAt,
		User:               fromOwner(r.Owner),
	}
}

func fromMatch(m *match.Match) servers.Match {
	c := m.Checkpoints()
	return servers.Match{
		Id:                          m.ID().Bytes(),
		TravelerListingId:           m.TravelerListingID().Bytes(),
		SenderListingId:             m.SenderListingID().Bytes(),
		TravelerId:                  m.TravelerID().Bytes(),
		SenderId:                    m.SenderID().Bytes(),
		ReceiverId:                  m.ReceiverID().Bytes(),
		Status:                      servers.MatchStatus(m.Status().String()),
		DropOffCompleted:            c.DropOff,
		PickUpCompleted:             c.PickUp,
		DestinationDropOffCompleted: c.DestinationDropOff,
		DestinationPickUpCompleted:  c.DestinationPickUp,
		CreatedAt:                   m.CreatedAt(),
		UpdatedAt:                   m.UpdatedAt(),
	}
}

func fromContact(c services.Contact) servers.Contact {
	return servers.Contact{Id: c.ID.Bytes(), Name: c.Name, Email: c.Email, Phone: c.Phone}
}

func fromMatchView(v queries.GetMatchesQueryResponse) servers.MatchView {
	return servers.MatchView{
		Id:                          v.ID.Bytes(),
		Status:                      servers.MatchStatus(v.Status.String()),
		DropOffCompleted:            v.Checkpoints.DropOff,
		PickUpCompleted:             v.Checkpoints.PickUp,
		DestinationDropOffCompleted: v.Checkpoints.DestinationDropOff,
		DestinationPickUpCompleted:  v.Checkpoints.DestinationPickUp,
		CreatedAt:                   v.CreatedAt,
		UpdatedAt:                   v.UpdatedAt,
		TravelerListing:             fromTravelerView(v.TravelerListing),
		SenderListing:               fromSenderView(v.SenderListing, true),
		Traveler:                    fromContact(v.Traveler),
		Sender:                      fromContact(v.Sender),
		Receiver:                    fromContact(v.Receiver),
	}
}
