package repositories

import (
	"team-chat/domain"
	"team-chat/errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_Workspace_Channels(t *testing.T) {
	req := require.New(t)
	repository := NewWorkspaceRepository(openDB(t))
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	workspace := domain.Workspace{ID: uuid.New(), Name: "acme", JoinCode: "abc123", OwnerID: "user-1", CreatedAt: now}
	req.NoError(repository.CreateWorkspace(workspace))

	general := domain.Channel{ID: uuid.New(), WorkspaceID: workspace.ID, Name: "general", CreatedAt: now}
	random := domain.Channel{ID: uuid.New(), WorkspaceID: workspace.ID, Name: "random", CreatedAt: now.Add(time.Minute)}
	other := domain.Channel{ID: uuid.New(), WorkspaceID: uuid.New(), Name: "elsewhere", CreatedAt: now}
	for _, c := range []domain.Channel{random, general, other} {
		req.NoError(repository.CreateChannel(c))
	}

	channels, err := repository.ListChannels(workspace.ID)
	req.NoError(err)
	req.Equal([]domain.Channel{general, random}, channels)

	req.NoError(repository.RemoveChannel(random))
	_, err = repository.GetChannel(random.ID)
	req.ErrorIs(err, errors.ErrChannelNotFound)

	workspace.JoinCode = "zzz999"
	req.NoError(repository.UpdateWorkspace(workspace))
	fetched, err := repository.GetWorkspace(workspace.ID)
	req.NoError(err)
	req.Equal(workspace, fetched)

	req.NoError(repository.RemoveWorkspace(workspace.ID))
	_, err = repository.GetWorkspace(workspace.ID)
	req.ErrorIs(err, errors.ErrWorkspaceNotFound)
	_, err = repository.GetChannel(general.ID)
	req.ErrorIs(err, errors.ErrChannelNotFound)
}

func Test_GetOrCreateConversation_Is_Symmetric(t *testing.T) {
	req := require.New(t)
	repository := NewWorkspaceRepository(openDB(t))
	workspaceID, alice, bob := uuid.New(), uuid.New(), uuid.New()

	// Given a conversation started by alice
	first, err := repository.GetOrCreateConversation(domain.Conversation{
		ID: uuid.New(), WorkspaceID: workspaceID, MemberOneID: alice, MemberTwoID: bob,
	})
	req.NoError(err)

	// When bob opens a conversation with alice
	second, err := repository.GetOrCreateConversation(domain.Conversation{
		ID: uuid.New(), WorkspaceID: workspaceID, MemberOneID: bob, MemberTwoID: alice,
	})
	req.NoError(err)

	// Then the same conversation is returned
	req.Equal(first, second)
	fetched, err := repository.GetConversation(first.ID)
	req.NoError(err)
	req.Equal(first, fetched)
}

func Test_Members(t *testing.T) {
	req := require.New(t)
	repository := NewMemberRepository(openDB(t))
	workspaceID := uuid.New()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	admin := domain.Member{ID: uuid.New(), WorkspaceID: workspaceID, UserID: "u1", Role: domain.RoleAdmin, Name: "Ada", JoinedAt: now}
	member := domain.Member{ID: uuid.New(), WorkspaceID: workspaceID, UserID: "u2", Role: domain.RoleMember, Name: "Bo", JoinedAt: now.Add(time.Hour)}
	req.NoError(repository.CreateMember(member))
	req.NoError(repository.CreateMember(admin))
	req.ErrorIs(repository.CreateMember(admin), errors.ErrAlreadyMember)

	members, err := repository.ListMembers(workspaceID)
	req.NoError(err)
	req.Equal([]domain.Member{admin, member}, members)

	fetched, err := repository.GetMemberByUser(workspaceID, "u2")
	req.NoError(err)
	req.Equal(member, fetched)

	_, err = repository.GetMemberByUser(workspaceID, "u3")
	req.ErrorIs(err, errors.ErrNotMember)

	ids, err := repository.ListWorkspaceIDs("u1")
	req.NoError(err)
	req.Equal([]uuid.UUID{workspaceID}, ids)

	member.Role = domain.RoleAdmin
	req.NoError(repository.UpdateMember(member))
	fetched, err = repository.GetMember(member.ID)
	req.NoError(err)
	req.Equal(domain.RoleAdmin, fetched.Role)

	req.NoError(repository.RemoveMember(member))
	_, err = repository.GetMember(member.ID)
	req.ErrorIs(err, errors.ErrMemberNotFound)
	ids, err = repository.ListWorkspaceIDs("u2")
	req.NoError(err)
	req.Empty(ids)
}
