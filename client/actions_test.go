package client_test

import (
	"context"
	"fmt"
	"log/slog"
	"team-chat/client"
	"team-chat/domain"
	"team-chat/errors"
	"team-chat/mocks"
	"testing"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newActions(t *testing.T) (*client.Actions, *mocks.MockMessageBackend, *mocks.MockMemberBackend, *client.LogNotifier) {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	messages, members := mocks.NewMockMessageBackend(ctrl), mocks.NewMockMemberBackend(ctrl)
	notifier := client.NewLogNotifier(log, 10)
	return client.NewActions(log, messages, members, notifier), messages, members, notifier
}

func lastToast(n *client.LogNotifier) client.Toast {
	toasts := n.Toasts()
	return toasts[len(toasts)-1]
}

func TestActions_MessageMutations(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	actions, messages, _, notifier := newActions(t)
	id := uuid.New()

	messages.EXPECT().UpdateMessage(ctx, id, "edited").Return(nil)
	req.NoError(actions.EditMessage(ctx, id, "edited"))
	req.Equal(client.Toast{Level: client.ToastSuccess, Message: "Message updated", At: lastToast(notifier).At}, lastToast(notifier))

	messages.EXPECT().RemoveMessage(ctx, id).Return(errors.ErrMessageRemoved)
	req.ErrorIs(actions.RemoveMessage(ctx, id), errors.ErrMessageRemoved)
	req.Equal("Failed to delete message", lastToast(notifier).Message)

	// A successful reaction leaves no toast
	messages.EXPECT().ToggleReaction(ctx, id, "👍").Return(nil)
	req.NoError(actions.ToggleReaction(ctx, id, "👍"))
	req.Len(notifier.Toasts(), 2)
}

func TestActions_RemoveMember(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		toast string
	}{
		{name: "removed", err: nil, toast: "Member removed"},
		{name: "admin refused", err: fmt.Errorf("remove: %w", errors.ErrAdminCannotBeRemoved), toast: "Admin cannot be removed"},
		{name: "admin refused over the wire", err: errors.MapToGRPCError(errors.ErrAdminCannotBeRemoved), toast: "Admin cannot be removed"},
		{name: "other failure", err: errors.ErrNotAdmin, toast: "Failed to remove member"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ctx := context.Background()
			actions, _, members, notifier := newActions(t)
			id := uuid.New()

			members.EXPECT().RemoveMember(ctx, id).Return(tt.err)
			err := actions.RemoveMember(ctx, id)

			req.Equal(tt.err, err)
			req.Equal(tt.toast, lastToast(notifier).Message)
		})
	}
}

func TestActions_Workspace(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	actions, _, members, notifier := newActions(t)
	self := uuid.New()

	members.EXPECT().CreateWorkspace(ctx, "Acme").Return(domain.Workspace{Name: "Acme"}, nil)
	workspace, err := actions.CreateWorkspace(ctx, "Acme")
	req.NoError(err)
	req.Equal("Acme", workspace.Name)
	req.Equal("Workspace created", lastToast(notifier).Message)

	members.EXPECT().UpdateMemberRole(ctx, self, domain.RoleAdmin).Return(errors.ErrNotAdmin)
	req.Error(actions.ChangeRole(ctx, self, domain.RoleAdmin))
	req.Equal("Failed to change role", lastToast(notifier).Message)

	members.EXPECT().RemoveMember(ctx, self).Return(nil)
	req.NoError(actions.Leave(ctx, self))
	req.Equal("You left the workspace", lastToast(notifier).Message)
}

func TestLogNotifier_KeepsLatest(t *testing.T) {
	req := require.New(t)
	notifier := client.NewLogNotifier(logs.GetLoggerFromLevel(slog.LevelDebug), 2)

	notifier.Success("one")
	notifier.Error("two")
	notifier.Success("three")

	toasts := notifier.Toasts()
	req.Len(toasts, 2)
	req.Equal("two", toasts[0].Message)
	req.Equal("three", toasts[1].Message)
}
