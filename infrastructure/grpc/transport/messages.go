package transport

import (
	"team-chat/domain"

	"github.com/google/uuid"
)

type Empty struct{}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionResponse struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

type CreateWorkspaceRequest struct {
	Name string `json:"name"`
}

type WorkspaceRequest struct {
	WorkspaceID uuid.UUID `json:"workspace_id"`
}

type RenameWorkspaceRequest struct {
	WorkspaceID uuid.UUID `json:"workspace_id"`
	Name        string    `json:"name"`
}

type JoinWorkspaceRequest struct {
	WorkspaceID uuid.UUID `json:"workspace_id"`
	JoinCode    string    `json:"join_code"`
}

type JoinCodeResponse struct {
	JoinCode string `json:"join_code"`
}

type WorkspacesResponse struct {
	Workspaces []domain.Workspace `json:"workspaces"`
}

type CreateChannelRequest struct {
	WorkspaceID uuid.UUID `json:"workspace_id"`
	Name        string    `json:"name"`
}

type ChannelRequest struct {
	ChannelID uuid.UUID `json:"channel_id"`
}

type RenameChannelRequest struct {
	ChannelID uuid.UUID `json:"channel_id"`
	Name      string    `json:"name"`
}

type ChannelsResponse struct {
	Channels []domain.Channel `json:"channels"`
}

type MemberRequest struct {
	MemberID uuid.UUID `json:"member_id"`
}

type UpdateMemberRoleRequest struct {
	MemberID uuid.UUID   `json:"member_id"`
	Role     domain.Role `json:"role"`
}

type MembersResponse struct {
	Members []domain.Member `json:"members"`
}

type ConversationRequest struct {
	WorkspaceID uuid.UUID `json:"workspace_id"`
	MemberID    uuid.UUID `json:"member_id"`
}

type CreateMessageRequest struct {
	WorkspaceID    uuid.UUID  `json:"workspace_id"`
	ChannelID      *uuid.UUID `json:"channel_id,omitempty"`
	ConversationID *uuid.UUID `json:"conversation_id,omitempty"`
	ParentID       *uuid.UUID `json:"parent_id,omitempty"`
	Body           string     `json:"body"`
	Image          string     `json:"image,omitempty"`
}

type MessageIDResponse struct {
	ID uuid.UUID `json:"id"`
}

type UpdateMessageRequest struct {
	ID   uuid.UUID `json:"id"`
	Body string    `json:"body"`
}

type MessageRequest struct {
	ID uuid.UUID `json:"id"`
}

type ToggleReactionRequest struct {
	MessageID uuid.UUID `json:"message_id"`
	Value     string    `json:"value"`
}

type GetMessagesRequest struct {
	Query    domain.Query `json:"query"`
	Cursor   string       `json:"cursor,omitempty"`
	NumItems int          `json:"num_items"`
}

type SearchMessagesRequest struct {
	WorkspaceID uuid.UUID `json:"workspace_id"`
	Terms       string    `json:"terms"`
	Lang        string    `json:"lang,omitempty"`
	Limit       int       `json:"limit,omitempty"`
}

type MessagesResponse struct {
	Messages []domain.Message `json:"messages"`
}

type UploadURLResponse struct {
	URL string `json:"url"`
}
