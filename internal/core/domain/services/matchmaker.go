package services

import (
	"errors"
	"fmt"
	"time"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/listing"
	"luggage/internal/core/domain/model/match"
)

// ErrReceiverIsMissing is returned for a sender listing persisted without a
// receiver. Such a listing cannot be matched.
var ErrReceiverIsMissing = errors.New("sender listing has no receiver")

// Matchmaker decides which traveler/sender listings are compatible and builds
// pending matches for them.
//
// Compatibility, for both directions:
//   - both listings are active
//   - routes are equal (same origin, same destination)
//   - the package fits into the available weight
//   - the traveler and the sender are different users
//
// The time window differs by direction:
//   - a new sender listing pairs with flights departing at least
//     listing.MinimumLeadTime after now
//   - a new traveler listing pairs with sender listings created at least
//     listing.MinimumLeadTime before its departure
type Matchmaker struct{}

func NewMatchmaker() Matchmaker {
	return Matchmaker{}
}

// ForSenderListing pairs a freshly created sender listing with candidate
// traveler listings. Incompatible candidates are skipped.
func (m Matchmaker) ForSenderListing(
	sender *listing.SenderListing,
	travelers []*listing.TravelerListing,
	newID func() kernel.UUID,
	now time.Time,
) ([]*match.Match, error) {
	if err := sender.Validate(); err != nil {
		return nil, err
	}
	if _, ok := sender.ReceiverID(); !ok {
		return nil, fmt.Errorf("%w: %s", ErrReceiverIsMissing, sender.ID())
	}

	var matches []*match.Match
	for _, t := range travelers {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if !m.FitsNewSender(t, sender, now) {
			continue
		}
		created, err := m.pair(newID(), t, sender, now)
		if err != nil {
			return nil, err
		}
		matches = append(matches, created)
	}
	return matches, nil
}

// ForTravelerListing pairs a freshly created traveler listing with candidate
// sender listings. Senders without a receiver are skipped and reported in the
// returned error; the matches built for the others are still returned.
func (m Matchmaker) ForTravelerListing(
	traveler *listing.TravelerListing,
	senders []*listing.SenderListing,
	newID func() kernel.UUID,
	now time.Time,
) ([]*match.Match, error) {
	if err := traveler.Validate(); err != nil {
		return nil, err
	}

	var (
		matches []*match.Match
		skipped []error
	)
	for _, s := range senders {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if !m.FitsNewTraveler(s, traveler) {
			continue
		}
		if _, ok := s.ReceiverID(); !ok {
			skipped = append(skipped, fmt.Errorf("%w: %s", ErrReceiverIsMissing, s.ID()))
			continue
		}
		created, err := m.pair(newID(), traveler, s, now)
		if err != nil {
			return nil, err
		}
		matches = append(matches, created)
	}
	return matches, errors.Join(skipped...)
}

// FitsNewSender reports whether traveler can carry the package of a sender
// listing that is being matched now.
func (m Matchmaker) FitsNewSender(traveler *listing.TravelerListing, sender *listing.SenderListing, now time.Time) bool {
	return m.compatible(traveler, sender) &&
		!traveler.DepartureTime().Before(now.Add(listing.MinimumLeadTime))
}

// FitsNewTraveler reports whether sender was posted early enough for a
// traveler listing that is being matched.
func (m Matchmaker) FitsNewTraveler(sender *listing.SenderListing, traveler *listing.TravelerListing) bool {
	return m.compatible(traveler, sender) &&
		!sender.CreatedAt().After(traveler.DepartureTime().Add(-listing.MinimumLeadTime))
}

func (m Matchmaker) compatible(t *listing.TravelerListing, s *listing.SenderListing) bool {
	return t.IsActive() && s.IsActive() &&
		t.Route().IsEqual(s.Route()) &&
		t.AvailableWeight().Fits(s.PackageWeight()) &&
		!t.UserID().IsEqual(s.UserID())
}

func (m Matchmaker) pair(id kernel.UUID, t *listing.TravelerListing, s *listing.SenderListing, now time.Time) (*match.Match, error) {
	receiverID, _ := s.ReceiverID()
	return match.NewMatch(id, t.ID(), s.ID(), match.Participants{
		TravelerID: t.UserID(),
		SenderID:   s.UserID(),
		ReceiverID: receiverID,
	}, now)
}
