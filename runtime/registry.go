package runtime

import (
	"sync"
	"team-chat/contract"
	"team-chat/domain"
)

type Set map[string]struct{}

type subscription struct {
	feed domain.FeedKey
	sink contract.EventSink
}

// Registry tracks which live subscription watches which feed.
// A subscription watches exactly one feed; subscribing again with the same
// id moves it.
type Registry struct {
	mu              sync.RWMutex
	Subscriptions   map[string]subscription // subscription -> feed and sink
	FeedSubscribers map[domain.FeedKey]Set  // feed -> subscriptions
}

func NewRegistry() *Registry {
	return &Registry{
		Subscriptions:   make(map[string]subscription),
		FeedSubscribers: make(map[domain.FeedKey]Set),
	}
}

// GetSinksForFeed returns the sinks of every subscription watching feed,
// or nil when nobody does.
func (r *Registry) GetSinksForFeed(feed domain.FeedKey) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subscribers, ok := r.FeedSubscribers[feed]
	if !ok {
		return nil
	}
	sinks := make([]contract.EventSink, 0, len(subscribers))
	for id := range subscribers {
		if sub, exists := r.Subscriptions[id]; exists {
			sinks = append(sinks, sub.sink)
		}
	}
	return sinks
}

func (r *Registry) Subscribe(subscriptionID string, feed domain.FeedKey, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.remove(subscriptionID)
	r.Subscriptions[subscriptionID] = subscription{feed: feed, sink: sink}
	if _, ok := r.FeedSubscribers[feed]; !ok {
		r.FeedSubscribers[feed] = make(Set)
	}
	r.FeedSubscribers[feed][subscriptionID] = struct{}{}
}

// Unsubscribe is a no-op for an unknown subscription.
func (r *Registry) Unsubscribe(subscriptionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.remove(subscriptionID)
}

// remove must be called with the lock held.
// Empty feed sets are dropped so the map does not grow forever.
func (r *Registry) remove(subscriptionID string) {
	sub, ok := r.Subscriptions[subscriptionID]
	if !ok {
		return
	}
	delete(r.Subscriptions, subscriptionID)
	if subscribers, ok := r.FeedSubscribers[sub.feed]; ok {
		delete(subscribers, subscriptionID)
		if len(subscribers) == 0 {
			delete(r.FeedSubscribers, sub.feed)
		}
	}
}
