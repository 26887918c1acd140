//go:generate go run go.uber.org/mock/mockgen -source=backend.go -destination=../mocks/mock_client_backend.go -package=mocks
package client

import (
	"context"
	"io"
	"team-chat/domain"

	"github.com/google/uuid"
)

// PageFetcher loads one batch of a feed, newest message first.
type PageFetcher interface {
	GetMessages(ctx context.Context, query domain.Query, cursor string, numItems int) (domain.Page, error)
}

// Subscriber opens a push subscription on the first page of a feed.
type Subscriber interface {
	Subscribe(ctx context.Context, query domain.Query, numItems int) (Subscription, error)
}

// Subscription delivers a fresh first page whenever the feed changes.
// Pages is closed once the subscription ends, Err then tells why.
type Subscription interface {
	Pages() <-chan domain.Page
	Err() error
	Close()
}

// OutgoingMessage is a message ready to be created, its image already uploaded.
type OutgoingMessage struct {
	WorkspaceID    uuid.UUID
	ChannelID      *uuid.UUID
	ConversationID *uuid.UUID
	ParentID       *uuid.UUID
	Body           string
	Image          string
}

type MessageBackend interface {
	CreateMessage(ctx context.Context, message OutgoingMessage) (uuid.UUID, error)
	UpdateMessage(ctx context.Context, id uuid.UUID, body string) error
	RemoveMessage(ctx context.Context, id uuid.UUID) error
	ToggleReaction(ctx context.Context, messageID uuid.UUID, value string) error
	GenerateUploadURL(ctx context.Context) (string, error)
}

type MemberBackend interface {
	CreateWorkspace(ctx context.Context, name string) (domain.Workspace, error)
	UpdateMemberRole(ctx context.Context, memberID uuid.UUID, role domain.Role) error
	RemoveMember(ctx context.Context, memberID uuid.UUID) error
}

// Uploader posts raw bytes to an upload url and returns the storage id.
type Uploader interface {
	Upload(ctx context.Context, url, contentType string, body io.Reader) (string, error)
}
