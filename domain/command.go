package domain

import (
	"time"

	"github.com/google/uuid"
)

// CreateMessageCommand posts a message. When ParentID is set and no container
// is given, the reply inherits the container of its parent.
type CreateMessageCommand struct {
	UserID         string     `validate:"required"`
	WorkspaceID    uuid.UUID  `json:"workspace_id"`
	ChannelID      *uuid.UUID `json:"channel_id,omitempty"`
	ConversationID *uuid.UUID `json:"conversation_id,omitempty"`
	ParentID       *uuid.UUID `json:"parent_id,omitempty"`
	Body           string     `json:"body" validate:"required"`
	Image          string     `json:"image,omitempty"`
	CreatedAt      time.Time  `json:"-"`
}

type UpdateMessageCommand struct {
	UserID    string    `validate:"required"`
	ID        uuid.UUID `json:"id"`
	Body      string    `json:"body" validate:"required"`
	UpdatedAt time.Time `json:"-"`
}

type RemoveMessageCommand struct {
	UserID string    `validate:"required"`
	ID     uuid.UUID `json:"id"`
}

type ToggleReactionCommand struct {
	UserID    string    `validate:"required"`
	MessageID uuid.UUID `json:"message_id"`
	Value     string    `json:"value" validate:"required,max=64"`
	At        time.Time `json:"-"`
}

type GetMessagesCommand struct {
	UserID   string `validate:"required"`
	Query    Query
	Cursor   string
	NumItems int `validate:"gte=0"`
}

type SearchMessagesCommand struct {
	UserID      string    `validate:"required"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	Terms       string    `json:"terms" validate:"required,max=256"`
	Lang        string    `json:"lang,omitempty" validate:"omitempty,len=2"`
	Limit       int       `json:"limit" validate:"gte=0,lte=100"`
}
