package runtime

import (
	"context"
	"team-chat/contract"
	"team-chat/domain"
	"team-chat/domain/event"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type Sink struct {
	name string
}

func (s Sink) Consume(ctx context.Context, e event.DomainEvent) error {
	return nil
}

func TestRegistry_Subscribe_One_Feed(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	feed := domain.RootFeed(domain.ChannelContainer(uuid.New()))
	sink := Sink{name: "a"}

	// Given nobody is subscribed
	req.Empty(registry.Subscriptions)
	req.Nil(registry.GetSinksForFeed(feed))

	// When a subscription is registered
	registry.Subscribe("sub-1", feed, sink)

	// Then its sink is returned for the feed
	req.Len(registry.Subscriptions, 1)
	req.Equal([]contract.EventSink{sink}, registry.GetSinksForFeed(feed))
	req.Contains(registry.FeedSubscribers[feed], "sub-1")
}

func TestRegistry_Resubscribe_Moves_Subscription(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	channel := domain.ChannelContainer(uuid.New())
	rootFeed := domain.RootFeed(channel)
	threadFeed := domain.ThreadFeed(uuid.New())

	registry.Subscribe("sub-1", rootFeed, Sink{name: "a"})
	registry.Subscribe("sub-1", threadFeed, Sink{name: "a"})

	req.Nil(registry.GetSinksForFeed(rootFeed))
	req.Len(registry.GetSinksForFeed(threadFeed), 1)
	req.NotContains(registry.FeedSubscribers, rootFeed)
}

func TestRegistry_Unsubscribe_Cleans_Up(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	feed := domain.ThreadFeed(uuid.New())
	registry.Subscribe("sub-1", feed, Sink{name: "a"})
	registry.Subscribe("sub-2", feed, Sink{name: "b"})

	registry.Unsubscribe("sub-1")
	req.Len(registry.GetSinksForFeed(feed), 1)

	registry.Unsubscribe("sub-2")
	registry.Unsubscribe("unknown")
	req.Empty(registry.Subscriptions)
	req.Empty(registry.FeedSubscribers)
}
