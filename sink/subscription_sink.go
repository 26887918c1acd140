package sink

import (
	"context"
	"team-chat/domain/event"
)

// SubscriptionSink signals a live subscription that its feed changed.
// Signals coalesce: any number of events between two reads yields one refetch.
type SubscriptionSink struct {
	changes chan struct{}
}

func NewSubscriptionSink() *SubscriptionSink {
	return &SubscriptionSink{changes: make(chan struct{}, 1)}
}

func (s *SubscriptionSink) Consume(_ context.Context, _ event.DomainEvent) error {
	select {
	case s.changes <- struct{}{}:
	default:
	}
	return nil
}

func (s *SubscriptionSink) Changes() <-chan struct{} {
	return s.changes
}
