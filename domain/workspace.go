package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

type Workspace struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	JoinCode  string    `json:"join_code,omitempty"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// WorkspaceInfo is what a non-member is allowed to see before joining.
type WorkspaceInfo struct {
	Name     string `json:"name"`
	IsMember bool   `json:"is_member"`
}

type Channel struct {
	ID          uuid.UUID `json:"id"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
}

type Conversation struct {
	ID          uuid.UUID `json:"id"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	MemberOneID uuid.UUID `json:"member_one_id"`
	MemberTwoID uuid.UUID `json:"member_two_id"`
}

func (c Conversation) Includes(memberID uuid.UUID) bool {
	return c.MemberOneID == memberID || c.MemberTwoID == memberID
}

// Member is a user's membership record within one workspace.
type Member struct {
	ID          uuid.UUID `json:"id"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	UserID      string    `json:"user_id"`
	Role        Role      `json:"role"`
	Name        string    `json:"name"`
	Image       string    `json:"image,omitempty"`
	JoinedAt    time.Time `json:"joined_at"`
}

func (m Member) IsAdmin() bool {
	return m.Role == RoleAdmin
}
