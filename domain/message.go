// Package domain contains core concepts of the team chat.
// This file defines messages, the feeds they live in and their aggregates.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"time"

	"github.com/google/uuid"
)

type ContainerKind string

const (
	ChannelKind      ContainerKind = "channel"
	ConversationKind ContainerKind = "conversation"
)

// Container addresses the top-level feed a message belongs to:
// a public channel or a direct conversation.
type Container struct {
	Kind ContainerKind `json:"kind"`
	ID   uuid.UUID     `json:"id"`
}

func ChannelContainer(id uuid.UUID) Container {
	return Container{Kind: ChannelKind, ID: id}
}

func ConversationContainer(id uuid.UUID) Container {
	return Container{Kind: ConversationKind, ID: id}
}

func (c Container) String() string {
	return string(c.Kind) + ":" + c.ID.String()
}

func (c Container) IsZero() bool {
	return c.Kind == "" || c.ID == uuid.Nil
}

// FeedKey identifies an ordered, paginated sequence of messages.
// Root feeds hold top-level messages of a container, thread feeds hold replies.
type FeedKey string

func RootFeed(c Container) FeedKey {
	return FeedKey(c.String() + ":root")
}

func ThreadFeed(parentID uuid.UUID) FeedKey {
	return FeedKey("thread:" + parentID.String())
}

// Message is a hydrated chat message as seen by readers.
type Message struct {
	ID          uuid.UUID           `json:"id"`
	WorkspaceID uuid.UUID           `json:"workspace_id"`
	Container   Container           `json:"container"`
	ParentID    *uuid.UUID          `json:"parent_id,omitempty"`
	MemberID    uuid.UUID           `json:"member_id"`
	AuthorName  string              `json:"author_name,omitempty"`
	AuthorImage string              `json:"author_image,omitempty"`
	Body        string              `json:"body"`
	Image       string              `json:"image,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   *time.Time          `json:"updated_at,omitempty"`
	Reactions   []ReactionAggregate `json:"reactions"`
	Thread      ThreadSummary       `json:"thread"`
}

// Feed returns the feed the message is listed in.
func (m Message) Feed() FeedKey {
	if m.ParentID != nil {
		return ThreadFeed(*m.ParentID)
	}
	return RootFeed(m.Container)
}

// ReactionAggregate groups every reaction with the same value on one message.
// A member appears at most once in MemberIDs.
type ReactionAggregate struct {
	Value     string      `json:"value"`
	Count     int         `json:"count"`
	MemberIDs []uuid.UUID `json:"member_ids"`
}

func (r ReactionAggregate) ReactedBy(memberID uuid.UUID) bool {
	for _, id := range r.MemberIDs {
		if id == memberID {
			return true
		}
	}
	return false
}

// ThreadSummary is the zero value when the message has no replies.
type ThreadSummary struct {
	Count       int        `json:"count"`
	LastReplyAt *time.Time `json:"last_reply_at,omitempty"`
	LastName    string     `json:"last_name,omitempty"`
	LastImage   string     `json:"last_image,omitempty"`
}

// Page is one batch of a cursor-paginated feed, newest message first.
type Page struct {
	Messages []Message `json:"messages"`
	Cursor   string    `json:"cursor"`
	IsDone   bool      `json:"is_done"`
}

// Query selects a feed. Exactly one of ChannelID and ConversationID may be set;
// ParentID selects the thread of that message instead of the root feed.
type Query struct {
	ChannelID      *uuid.UUID `json:"channel_id,omitempty"`
	ConversationID *uuid.UUID `json:"conversation_id,omitempty"`
	ParentID       *uuid.UUID `json:"parent_id,omitempty"`
}
