package client

import (
	"context"
	"log/slog"
	"team-chat/domain"
	"team-chat/errors"

	"github.com/google/uuid"
	"google.golang.org/grpc/status"
)

// Actions runs one-shot user actions. Each outcome becomes a toast and the
// error is handed back only so callers can decide what to close or keep open.
type Actions struct {
	log      *slog.Logger
	messages MessageBackend
	members  MemberBackend
	notifier Notifier
}

func NewActions(log *slog.Logger, messages MessageBackend, members MemberBackend, notifier Notifier) *Actions {
	return &Actions{log: log, messages: messages, members: members, notifier: notifier}
}

func (a *Actions) EditMessage(ctx context.Context, id uuid.UUID, body string) error {
	return a.run("Message updated", "Failed to update message", a.messages.UpdateMessage(ctx, id, body))
}

func (a *Actions) RemoveMessage(ctx context.Context, id uuid.UUID) error {
	return a.run("Message deleted", "Failed to delete message", a.messages.RemoveMessage(ctx, id))
}

// ToggleReaction stays silent on success, the reaction bar is feedback enough.
func (a *Actions) ToggleReaction(ctx context.Context, messageID uuid.UUID, value string) error {
	return a.run("", "Failed to toggle reaction", a.messages.ToggleReaction(ctx, messageID, value))
}

func (a *Actions) CreateWorkspace(ctx context.Context, name string) (domain.Workspace, error) {
	workspace, err := a.members.CreateWorkspace(ctx, name)
	return workspace, a.run("Workspace created", "Failed to create workspace", err)
}

func (a *Actions) ChangeRole(ctx context.Context, memberID uuid.UUID, role domain.Role) error {
	return a.run("Role changed", "Failed to change role", a.members.UpdateMemberRole(ctx, memberID, role))
}

func (a *Actions) Leave(ctx context.Context, self uuid.UUID) error {
	return a.run("You left the workspace", "Failed to leave the workspace", a.members.RemoveMember(ctx, self))
}

func (a *Actions) RemoveMember(ctx context.Context, memberID uuid.UUID) error {
	err := a.members.RemoveMember(ctx, memberID)
	if err != nil && isAdminRemoval(err) {
		a.notifier.Error(errors.ErrAdminCannotBeRemoved.Error())
		return err
	}
	return a.run("Member removed", "Failed to remove member", err)
}

func (a *Actions) run(success, failure string, err error) error {
	if err != nil {
		a.log.Warn(failure, "error", err)
		a.notifier.Error(failure)
		return err
	}
	if success != "" {
		a.notifier.Success(success)
	}
	return nil
}

// isAdminRemoval recognizes the refusal both locally and once it crossed the wire.
func isAdminRemoval(err error) bool {
	if errors.Is(err, errors.ErrAdminCannotBeRemoved) {
		return true
	}
	s, ok := status.FromError(err)
	return ok && s.Message() == errors.ErrAdminCannotBeRemoved.Error()
}
