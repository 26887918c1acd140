package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"team-chat/client"
	"team-chat/domain"

	"github.com/google/uuid"
)

// actionFlags are the one-shot actions run before the channel is rendered.
type actionFlags struct {
	edit         string
	remove       string
	react        string
	role         string
	removeMember string
	leave        bool
}

func registerActionFlags(fs *flag.FlagSet) *actionFlags {
	a := &actionFlags{}
	fs.StringVar(&a.edit, "edit", "", `edit a message, "<messageId>=<new body>"`)
	fs.StringVar(&a.remove, "delete", "", "delete a message by id")
	fs.StringVar(&a.react, "react", "", `toggle a reaction, "<messageId>=<emoji>"`)
	fs.StringVar(&a.role, "role", "", `change a member role, "<memberId>=admin|member"`)
	fs.StringVar(&a.removeMember, "remove-member", "", "remove a member by id")
	fs.BoolVar(&a.leave, "leave", false, "leave the workspace")
	return a
}

// selfLookup returns the member the logged-in user is in a workspace.
type selfLookup func(ctx context.Context, workspaceID uuid.UUID) (domain.Member, error)

// apply runs the requested actions, leaving the workspace last.
// Failed actions only show up as toasts; malformed flags are returned.
func (a *actionFlags) apply(ctx context.Context, actions *client.Actions, self selfLookup, workspaceID uuid.UUID) error {
	if a.edit != "" {
		id, body, err := idPair(a.edit)
		if err != nil {
			return fmt.Errorf("-edit: %w", err)
		}
		_ = actions.EditMessage(ctx, id, body)
	}
	if a.react != "" {
		id, emoji, err := idPair(a.react)
		if err != nil {
			return fmt.Errorf("-react: %w", err)
		}
		_ = actions.ToggleReaction(ctx, id, emoji)
	}
	if a.remove != "" {
		id, err := uuid.Parse(a.remove)
		if err != nil {
			return fmt.Errorf("-delete: %w", err)
		}
		_ = actions.RemoveMessage(ctx, id)
	}
	if a.role != "" {
		id, value, err := idPair(a.role)
		if err != nil {
			return fmt.Errorf("-role: %w", err)
		}
		role := domain.Role(value)
		if !role.Valid() {
			return fmt.Errorf("-role: unknown role %q", value)
		}
		_ = actions.ChangeRole(ctx, id, role)
	}
	if a.removeMember != "" {
		id, err := uuid.Parse(a.removeMember)
		if err != nil {
			return fmt.Errorf("-remove-member: %w", err)
		}
		_ = actions.RemoveMember(ctx, id)
	}
	if a.leave {
		member, err := self(ctx, workspaceID)
		if err != nil {
			return fmt.Errorf("-leave: %w", err)
		}
		_ = actions.Leave(ctx, member.ID)
	}
	return nil
}

func idPair(s string) (uuid.UUID, string, error) {
	raw, value, ok := strings.Cut(s, "=")
	if !ok || value == "" {
		return uuid.Nil, "", fmt.Errorf("expected <id>=<value>, got %q", s)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, "", err
	}
	return id, value, nil
}
