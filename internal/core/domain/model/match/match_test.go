package match_test

import (
	"testing"
	"time"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/match"
	"luggage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	traveler kernel.UUID
	sender   kernel.UUID
	receiver kernel.UUID
	stranger kernel.UUID
	match    *match.Match
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{
		traveler: kernel.NewUUID(),
		sender:   kernel.NewUUID(),
		receiver: kernel.NewUUID(),
		stranger: kernel.NewUUID(),
	}
	m, err := match.NewMatch(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), match.Participants{
		TravelerID: f.traveler,
		SenderID:   f.sender,
		ReceiverID: f.receiver,
	}, now)
	require.NoError(t, err)
	f.match = m
	return f
}

func (f fixture) apply(actor kernel.UUID, action match.Action) error {
	return f.match.Apply(match.Request{Actor: actor, Action: action, Now: now})
}

func TestNewMatch(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, match.Pending, f.match.Status())
	assert.Equal(t, match.Checkpoints{}, f.match.Checkpoints())
	assert.Equal(t, f.receiver, f.match.ReceiverID())
	assert.Equal(t, 0, f.match.Version())
	require.NoError(t, f.match.Validate())
}

func TestNewMatch_RequiresParticipants(t *testing.T) {
	traveler := kernel.NewUUID()

	_, err := match.NewMatch(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), match.Participants{
		TravelerID: traveler,
		SenderID:   kernel.NewUUID(),
	}, now)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = match.NewMatch(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), match.Participants{
		TravelerID: traveler,
		SenderID:   traveler,
		ReceiverID: kernel.NewUUID(),
	}, now)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestMatch_FullCustodyChain(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.apply(f.traveler, match.Accept))
	assert.Equal(t, match.Accepted, f.match.Status())

	require.NoError(t, f.apply(f.sender, match.CompleteDropOff))
	require.NoError(t, f.apply(f.traveler, match.CompletePickUp))
	require.NoError(t, f.apply(f.traveler, match.CompleteDestinationDropOff))
	assert.Equal(t, match.Accepted, f.match.Status())

	require.NoError(t, f.apply(f.receiver, match.CompleteDestinationPickUp))
	assert.Equal(t, match.Completed, f.match.Status())
	assert.Equal(t, match.Checkpoints{
		DropOff:            true,
		PickUp:             true,
		DestinationDropOff: true,
		DestinationPickUp:  true,
	}, f.match.Checkpoints())
}

func TestMatch_PickUpBeforeDropOff(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.apply(f.traveler, match.Accept))

	err := f.apply(f.traveler, match.CompletePickUp)
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	assert.False(t, f.match.Checkpoints().PickUp)

	require.NoError(t, f.apply(f.sender, match.CompleteDropOff))
	require.NoError(t, f.apply(f.traveler, match.CompletePickUp))
	assert.True(t, f.match.Checkpoints().PickUp)
}

func TestMatch_CheckpointsAdvanceInOrder(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.apply(f.traveler, match.Accept))

	require.ErrorIs(t, f.apply(f.traveler, match.CompleteDestinationDropOff), errs.ErrPreconditionFailed)
	require.ErrorIs(t, f.apply(f.receiver, match.CompleteDestinationPickUp), errs.ErrPreconditionFailed)
	assert.Equal(t, match.Checkpoints{}, f.match.Checkpoints())
	assert.Equal(t, match.Accepted, f.match.Status())
}

func TestMatch_CheckpointCannotRepeat(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.apply(f.traveler, match.Accept))
	require.NoError(t, f.apply(f.sender, match.CompleteDropOff))

	require.ErrorIs(t, f.apply(f.sender, match.CompleteDropOff), errs.ErrPreconditionFailed)
}

func TestMatch_CheckpointsRequireAcceptance(t *testing.T) {
	f := newFixture(t)

	require.ErrorIs(t, f.apply(f.sender, match.CompleteDropOff), errs.ErrPreconditionFailed)

	require.NoError(t, f.apply(f.traveler, match.Reject))
	require.ErrorIs(t, f.apply(f.sender, match.CompleteDropOff), errs.ErrPreconditionFailed)
}

func TestMatch_AuthorizationBeforePreconditions(t *testing.T) {
	tests := []struct {
		name   string
		action match.Action
		actor  func(f fixture) kernel.UUID
	}{
		{"sender cannot accept", match.Accept, func(f fixture) kernel.UUID { return f.sender }},
		{"receiver cannot reject", match.Reject, func(f fixture) kernel.UUID { return f.receiver }},
		{"traveler cannot drop off", match.CompleteDropOff, func(f fixture) kernel.UUID { return f.traveler }},
		{"sender cannot pick up", match.CompletePickUp, func(f fixture) kernel.UUID { return f.sender }},
		{"stranger cannot drop off at destination", match.CompleteDestinationDropOff, func(f fixture) kernel.UUID { return f.stranger }},
		{"traveler cannot collect at destination", match.CompleteDestinationPickUp, func(f fixture) kernel.UUID { return f.traveler }},
		{"zero actor", match.Accept, func(fixture) kernel.UUID { return kernel.UUID{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			// pending match: every checkpoint precondition is also unmet
			err := f.apply(tt.actor(f), tt.action)

			require.ErrorIs(t, err, errs.ErrActionIsForbidden)
			assert.NotErrorIs(t, err, errs.ErrPreconditionFailed)
			assert.Equal(t, match.Pending, f.match.Status())
		})
	}
}

func TestMatch_DecideOnlyOnce(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.apply(f.traveler, match.Reject))
	assert.Equal(t, match.Rejected, f.match.Status())

	require.ErrorIs(t, f.apply(f.traveler, match.Accept), errs.ErrPreconditionFailed)
	assert.Equal(t, match.Rejected, f.match.Status())
}

func TestMatch_DropOffDeadline(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.apply(f.traveler, match.Accept))

	err := f.match.Apply(match.Request{
		Actor:           f.sender,
		Action:          match.CompleteDropOff,
		Now:             now,
		DropOffDeadline: now.Add(-time.Minute),
	})
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)

	require.NoError(t, f.match.Apply(match.Request{
		Actor:           f.sender,
		Action:          match.CompleteDropOff,
		Now:             now,
		DropOffDeadline: now,
	}))
	assert.True(t, f.match.Checkpoints().DropOff)
}

func TestMatch_UnknownAction(t *testing.T) {
	f := newFixture(t)

	require.ErrorIs(t, f.apply(f.traveler, match.Action(99)), errs.ErrValueIsInvalid)
}

func TestMatch_UpdateStatus(t *testing.T) {
	t.Run("traveler accepts through coarse path", func(t *testing.T) {
		f := newFixture(t)

		require.NoError(t, f.match.UpdateStatus(f.traveler, match.Accepted, now))
		assert.Equal(t, match.Accepted, f.match.Status())
	})

	t.Run("sender is forbidden", func(t *testing.T) {
		f := newFixture(t)

		require.ErrorIs(t, f.match.UpdateStatus(f.sender, match.Rejected, now), errs.ErrActionIsForbidden)
	})

	t.Run("completed cannot skip checkpoints", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.apply(f.traveler, match.Accept))

		err := f.match.UpdateStatus(f.traveler, match.Completed, now)
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Equal(t, match.Accepted, f.match.Status())
	})

	t.Run("pending is a no-op only while pending", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.match.UpdateStatus(f.traveler, match.Pending, now))

		require.NoError(t, f.apply(f.traveler, match.Accept))
		require.ErrorIs(t, f.match.UpdateStatus(f.traveler, match.Pending, now), errs.ErrPreconditionFailed)
	})

	t.Run("invalid target", func(t *testing.T) {
		f := newFixture(t)

		require.ErrorIs(t, f.match.UpdateStatus(f.traveler, match.Unknown, now), errs.ErrValueIsInvalid)
	})
}

func TestMatch_ReportIssue(t *testing.T) {
	f := newFixture(t)

	report, err := f.match.ReportIssue(kernel.NewUUID(), f.traveler, "  box is wet ", now)
	require.NoError(t, err)
	assert.Equal(t, "box is wet", report.Description())
	assert.Equal(t, f.match.ID(), report.MatchID())

	_, err = f.match.ReportIssue(kernel.NewUUID(), f.sender, "box is wet", now)
	require.ErrorIs(t, err, errs.ErrActionIsForbidden)

	_, err = f.match.ReportIssue(kernel.NewUUID(), f.traveler, "   ", now)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRestoreMatch(t *testing.T) {
	ids := match.Participants{TravelerID: kernel.NewUUID(), SenderID: kernel.NewUUID(), ReceiverID: kernel.NewUUID()}
	restore := func(s match.Status, c match.Checkpoints) error {
		_, err := match.RestoreMatch(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), ids, s, c, now, now, 3)
		return err
	}

	require.NoError(t, restore(match.Accepted, match.Checkpoints{DropOff: true, PickUp: true}))
	require.NoError(t, restore(match.Completed, match.Checkpoints{DropOff: true, PickUp: true, DestinationDropOff: true, DestinationPickUp: true}))

	require.ErrorIs(t, restore(match.Accepted, match.Checkpoints{PickUp: true}), errs.ErrValueIsInvalid)
	require.ErrorIs(t, restore(match.Pending, match.Checkpoints{DropOff: true}), errs.ErrValueIsInvalid)
	require.ErrorIs(t, restore(match.Completed, match.Checkpoints{}), errs.ErrValueIsInvalid)
	require.ErrorIs(t, restore(match.Unknown, match.Checkpoints{}), errs.ErrValueIsInvalid)
}

func TestMatch_RoleOf(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, match.TravelerRole, f.match.RoleOf(f.traveler))
	assert.Equal(t, match.SenderRole, f.match.RoleOf(f.sender))
	assert.Equal(t, match.ReceiverRole, f.match.RoleOf(f.receiver))
	assert.False(t, f.match.IsParticipant(f.stranger))
}

func TestMatch_AdvanceVersion(t *testing.T) {
	f := newFixture(t)

	f.match.AdvanceVersion()
	f.match.AdvanceVersion()

	assert.Equal(t, 2, f.match.Version())
}
