package event

import (
	"team-chat/domain"
	"time"

	"github.com/google/uuid"
)

// DomainEvent is anything that changed the content of one or more feeds.
// Subscribers of any returned feed must refetch.
type DomainEvent interface {
	Feeds() []domain.FeedKey
}

type MessageCreated struct {
	Message domain.Message
	At      time.Time
}

func (e MessageCreated) Feeds() []domain.FeedKey {
	return messageFeeds(e.Message)
}

type MessageUpdated struct {
	Message domain.Message
	At      time.Time
}

func (e MessageUpdated) Feeds() []domain.FeedKey {
	return messageFeeds(e.Message)
}

type MessageRemoved struct {
	Message domain.Message
	At      time.Time
}

func (e MessageRemoved) Feeds() []domain.FeedKey {
	return messageFeeds(e.Message)
}

type ReactionToggled struct {
	Message  domain.Message
	MemberID uuid.UUID
	Value    string
	Added    bool
	At       time.Time
}

func (e ReactionToggled) Feeds() []domain.FeedKey {
	return messageFeeds(e.Message)
}

// A reply changes its thread and the summary shown on the parent in the root feed.
// A root message is also the head of its own thread view.
func messageFeeds(m domain.Message) []domain.FeedKey {
	if m.ParentID != nil {
		return []domain.FeedKey{domain.ThreadFeed(*m.ParentID), domain.RootFeed(m.Container)}
	}
	return []domain.FeedKey{domain.RootFeed(m.Container), domain.ThreadFeed(m.ID)}
}
