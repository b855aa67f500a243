package services

import "luggage/internal/core/domain/model/kernel"

// Placeholder identity shown instead of the traveler's real contact data.
const (
	AnonymousTravelerName  = "Anonymous Traveler"
	AnonymousTravelerEmail = "hidden@example.com"
	AnonymousTravelerPhone = "***-***-****"
)

// Contact is the public identity of a match participant.
type Contact struct {
	ID    kernel.UUID
	Name  string
	Email string
	Phone string
}

// TravelerVisibility hides the traveler from the sender and the receiver of
// a match. It only transforms read results.
type TravelerVisibility struct{}

func NewTravelerVisibility() TravelerVisibility {
	return TravelerVisibility{}
}

// Traveler returns the traveler contact as viewer may see it. The traveler
// always sees their own data, even when they are also the receiver.
func (TravelerVisibility) Traveler(viewer, senderID, receiverID kernel.UUID, traveler Contact) Contact {
	if viewer.IsEqual(traveler.ID) {
		return traveler
	}
	if viewer.IsEqual(senderID) || viewer.IsEqual(receiverID) {
		return Contact{
			ID:    traveler.ID,
			Name:  AnonymousTravelerName,
			Email: AnonymousTravelerEmail,
			Phone: AnonymousTravelerPhone,
		}
	}
	return traveler
}
