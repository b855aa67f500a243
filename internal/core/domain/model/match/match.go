package match

import (
	"errors"
	"fmt"
	"time"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/pkg/errs"
)

// ErrMatchIsNotConstructed is returned for a match built outside its constructors.
var ErrMatchIsNotConstructed = errors.New("Match must be created via NewMatch constructor")

// Checkpoints records which custody handoffs have happened.
type Checkpoints struct {
	DropOff            bool
	PickUp             bool
	DestinationDropOff bool
	DestinationPickUp  bool
}

// Participants are the three users bound to a match.
type Participants struct {
	TravelerID kernel.UUID
	SenderID   kernel.UUID
	ReceiverID kernel.UUID
}

// Request is a single call into the state machine.
type Request struct {
	Actor  kernel.UUID
	Action Action
	Now    time.Time

	// DropOffDeadline bounds CompleteDropOff. The zero value disables the check.
	DropOffDeadline time.Time
}

// Match pairs a traveler listing with a sender listing.
type Match struct {
	id                kernel.UUID
	travelerListingID kernel.UUID
	senderListingID   kernel.UUID
	participants      Participants
	status            Status
	checkpoints       Checkpoints
	createdAt         time.Time
	updatedAt         time.Time
	version           int

	isConstructed bool
}

// NewMatch creates a pending match with all checkpoints open.
func NewMatch(
	id, travelerListingID, senderListingID kernel.UUID,
	participants Participants,
	now time.Time,
) (*Match, error) {
	m := &Match{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setIDs(id, travelerListingID, senderListingID),
		m.setParticipants(participants),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMatch rebuilds a persisted match and checks that its flags and
// status are consistent with the checkpoint order.
func RestoreMatch(
	id, travelerListingID, senderListingID kernel.UUID,
	participants Participants,
	status Status,
	checkpoints Checkpoints,
	createdAt, updatedAt time.Time,
	version int,
) (*Match, error) {
	m := &Match{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setIDs(id, travelerListingID, senderListingID),
		m.setParticipants(participants),
		m.setState(status, checkpoints),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Match) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMatchIsNotConstructed
	}
	return nil
}

func (m *Match) IsEqual(other *Match) bool {
	return other != nil && m.id.IsEqual(other.id)
}

func (m *Match) ID() kernel.UUID                { return m.id }
func (m *Match) TravelerListingID() kernel.UUID { return m.travelerListingID }
func (m *Match) SenderListingID() kernel.UUID   { return m.senderListingID }
func (m *Match) TravelerID() kernel.UUID        { return m.participants.TravelerID }
func (m *Match) SenderID() kernel.UUID          { return m.participants.SenderID }
func (m *Match) ReceiverID() kernel.UUID        { return m.participants.ReceiverID }
func (m *Match) Participants() Participants     { return m.participants }
func (m *Match) Status() Status                 { return m.status }
func (m *Match) Checkpoints() Checkpoints       { return m.checkpoints }
func (m *Match) CreatedAt() time.Time           { return m.createdAt }
func (m *Match) UpdatedAt() time.Time           { return m.updatedAt }

// Version is the persisted revision the match was loaded at.
func (m *Match) Version() int { return m.version }

// AdvanceVersion records a successful save. The next save is checked against
// the new version.
func (m *Match) AdvanceVersion() { m.version++ }

// RoleOf reports the role actor plays. The traveler role wins when one user
// holds several.
func (m *Match) RoleOf(actor kernel.UUID) Role {
	switch {
	case actor.IsEqual(m.participants.TravelerID):
		return TravelerRole
	case actor.IsEqual(m.participants.SenderID):
		return SenderRole
	case actor.IsEqual(m.participants.ReceiverID):
		return ReceiverRole
	default:
		return NoRole
	}
}

// IsParticipant reports whether actor is the traveler, sender or receiver.
func (m *Match) IsParticipant(actor kernel.UUID) bool {
	return m.RoleOf(actor) != NoRole
}

// Apply is the only way a match changes state.
//
// The actor is checked first: a call from anyone but the action's owner
// fails with ErrActionIsForbidden whatever the current state. Then the
// state precondition is checked and, on failure, ErrPreconditionFailed is
// returned and the match is left untouched.
func (m *Match) Apply(r Request) error {
	rule, ok := actionRules[r.Action]
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%d is not a valid action", r.Action))
	}
	if err := m.authorize(r.Actor, r.Action, rule.role); err != nil {
		return err
	}

	var err error
	switch r.Action {
	case Accept:
		err = m.decide(r.Action, Accepted)
	case Reject:
		err = m.decide(r.Action, Rejected)
	case CompleteDropOff:
		err = m.completeDropOff(r.Now, r.DropOffDeadline)
	case CompletePickUp:
		err = m.advance(r.Action, m.checkpoints.DropOff, "drop-off", &m.checkpoints.PickUp)
	case CompleteDestinationDropOff:
		err = m.advance(r.Action, m.checkpoints.PickUp, "pick-up", &m.checkpoints.DestinationDropOff)
	case CompleteDestinationPickUp:
		err = m.advance(r.Action, m.checkpoints.DestinationDropOff, "destination drop-off", &m.checkpoints.DestinationPickUp)
		if err == nil {
			m.status = Completed
		}
	}
	if err != nil {
		return err
	}

	m.updatedAt = r.Now
	return nil
}

// UpdateStatus is the coarse "set status" entry point. It is open to the
// traveler only and never skips the custody chain: accepted and rejected go
// through Accept and Reject, pending is accepted only as a no-op on a pending
// match, and completed can only be reached by the destination pickup.
func (m *Match) UpdateStatus(actor kernel.UUID, target Status, now time.Time) error {
	const action = "update"

	if err := target.Validate(); err != nil {
		return err
	}
	if err := m.authorize(actor, 0, TravelerRole); err != nil {
		return errs.NewActionIsForbiddenError(action,
			"only travelers can accept or reject matches, senders can only view match status")
	}

	switch target {
	case Accepted:
		return m.Apply(Request{Actor: actor, Action: Accept, Now: now})
	case Rejected:
		return m.Apply(Request{Actor: actor, Action: Reject, Now: now})
	case Pending:
		if m.status != Pending {
			return errs.NewPreconditionFailedError(action,
				fmt.Sprintf("match is %s and cannot return to pending", m.status))
		}
		return nil
	default:
		return errs.NewPreconditionFailedError(action,
			"a match is completed by the receiver's destination pick-up")
	}
}

// ReportIssue records a problem noticed by the traveler while carrying the package.
func (m *Match) ReportIssue(id, actor kernel.UUID, description string, now time.Time) (*IssueReport, error) {
	if !actor.IsEqual(m.participants.TravelerID) {
		return nil, errs.NewActionIsForbiddenError("report-issue",
			"only the traveler can report issues with the package")
	}
	return NewIssueReport(id, m.id, actor, description, now)
}

func (m *Match) authorize(actor kernel.UUID, action Action, role Role) error {
	var owner kernel.UUID
	switch role {
	case TravelerRole:
		owner = m.participants.TravelerID
	case SenderRole:
		owner = m.participants.SenderID
	case ReceiverRole:
		owner = m.participants.ReceiverID
	}
	if actor.Validate() != nil || !actor.IsEqual(owner) {
		return errs.NewActionIsForbiddenError(action.String(),
			fmt.Sprintf("only the %s can do this", role))
	}
	return nil
}

func (m *Match) decide(action Action, to Status) error {
	if m.status != Pending {
		return errs.NewPreconditionFailedError(action.String(),
			fmt.Sprintf("match is %s, only pending matches can be decided", m.status))
	}
	m.status = to
	return nil
}

func (m *Match) completeDropOff(now, deadline time.Time) error {
	if !deadline.IsZero() && now.After(deadline) {
		return errs.NewPreconditionFailedError(CompleteDropOff.String(),
			fmt.Sprintf("drop-off deadline %s has passed", deadline.UTC().Format(time.RFC3339)))
	}
	return m.advance(CompleteDropOff, true, "", &m.checkpoints.DropOff)
}

// advance flips flag when the match is accepted, the previous checkpoint is
// done and flag itself is still open.
func (m *Match) advance(action Action, previousDone bool, previousName string, flag *bool) error {
	if m.status != Accepted {
		return errs.NewPreconditionFailedError(action.String(),
			fmt.Sprintf("match is %s, it must be accepted first", m.status))
	}
	if !previousDone {
		return errs.NewPreconditionFailedError(action.String(),
			fmt.Sprintf("%s must be completed first", previousName))
	}
	if *flag {
		return errs.NewPreconditionFailedError(action.String(), "already completed")
	}
	*flag = true
	return nil
}

func (m *Match) setIDs(id, travelerListingID, senderListingID kernel.UUID) error {
	if err := errors.Join(id.Validate(), travelerListingID.Validate(), senderListingID.Validate()); err != nil {
		return err
	}
	m.id = id
	m.travelerListingID = travelerListingID
	m.senderListingID = senderListingID
	return nil
}

func (m *Match) setParticipants(p Participants) error {
	if err := p.TravelerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("travelerId", err)
	}
	if err := p.SenderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("senderId", err)
	}
	if err := p.ReceiverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("receiverId", err)
	}
	if p.TravelerID.IsEqual(p.SenderID) {
		return errs.NewValueIsInvalidErrorWithCause("senderId", errors.New("traveler and sender must differ"))
	}
	m.participants = p
	return nil
}

func (m *Match) setState(status Status, c Checkpoints) error {
	if err := status.Validate(); err != nil {
		return err
	}
	ordered := (!c.PickUp || c.DropOff) &&
		(!c.DestinationDropOff || c.PickUp) &&
		(!c.DestinationPickUp || c.DestinationDropOff)
	if !ordered {
		return errs.NewValueIsInvalidErrorWithCause("checkpoints", fmt.Errorf("%+v skips a checkpoint", c))
	}
	if c.DropOff && status != Accepted && status != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s match cannot have custody checkpoints", status))
	}
	if (status == Completed) != c.DestinationPickUp {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is inconsistent with destination pick-up %t", status, c.DestinationPickUp))
	}
	m.status = status
	m.checkpoints = c
	return nil
}
