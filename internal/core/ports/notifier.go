package ports

import "context"

// Notification is a text message for one phone number.
type Notification struct {
	To      string
	Message string
}

// NotificationQueue accepts notifications for asynchronous delivery. Enqueue
// never blocks and never fails the caller; it reports whether the
// notification was accepted.
type NotificationQueue interface {
	Enqueue(n Notification) bool
}

// NotificationSender delivers one notification. Failures are reported through
// the returned flag only.
type NotificationSender interface {
	Send(ctx context.Context, to, message string) bool
}
