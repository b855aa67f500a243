package commands

import (
	"context"
	"fmt"
	"log/slog"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/match"
	"luggage/internal/core/domain/model/user"
	"luggage/internal/core/ports"
)

func senderMatchMessage(travelerName string, route kernel.Route) string {
	return fmt.Sprintf(
		"New Match! %s is traveling from %s to %s and can carry your package. Contact them through the app!",
		travelerName, route.Origin(), route.Destination(),
	)
}

func travelerMatchMessage(senderName string, route kernel.Route) string {
	return fmt.Sprintf(
		"You have a new match! %s needs to send a package from %s to %s. Check the app for details.",
		senderName, route.Origin(), route.Destination(),
	)
}

// addNewMatches inserts each match unless its pair already exists and returns
// only the ones actually written.
func addNewMatches(ctx context.Context, repo ports.MatchRepository, matches []*match.Match) ([]*match.Match, error) {
	inserted := make([]*match.Match, 0, len(matches))
	for _, m := range matches {
		ok, err := repo.AddIfAbsent(ctx, m)
		if err != nil {
			return nil, err
		}
		if ok {
			inserted = append(inserted, m)
		}
	}
	return inserted, nil
}

// matchNotifier prepares the two texts sent for every new match. Lookup
// failures only cost the affected notification.
type matchNotifier struct {
	queue  ports.NotificationQueue
	logger *slog.Logger
}

func (n matchNotifier) prepare(
	ctx context.Context,
	users ports.UserRepository,
	matches []*match.Match,
	route kernel.Route,
) []ports.Notification {
	cache := make(map[kernel.UUID]*user.User)
	load := func(id kernel.UUID) *user.User {
		if u, ok := cache[id]; ok {
			return u
		}
		u, err := users.Get(ctx, id)
		if err != nil {
			n.logger.WarnContext(ctx, "skipping match notification", "user_id", id.String(), "error", err)
			u = nil
		}
		cache[id] = u
		return u
	}

	out := make([]ports.Notification, 0, 2*len(matches))
	for _, m := range matches {
		traveler, sender := load(m.TravelerID()), load(m.SenderID())
		if traveler == nil || sender == nil {
			continue
		}
		out = append(out,
			ports.Notification{To: sender.Phone(), Message: senderMatchMessage(traveler.Name(), route)},
			ports.Notification{To: traveler.Phone(), Message: travelerMatchMessage(sender.Name(), route)},
		)
	}
	return out
}

func (n matchNotifier) dispatch(ctx context.Context, notifications []ports.Notification) {
	for _, note := range notifications {
		if !n.queue.Enqueue(note) {
			n.logger.WarnContext(ctx, "notification dropped", "to", note.To)
		}
	}
}
