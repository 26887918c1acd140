//go:generate go run go.uber.org/mock/mockgen -source=workspace_service.go -destination=../mocks/servicemocks/mock_workspace_service.go -package=servicemocks
package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"team-chat/domain"
	"team-chat/errors"
	"team-chat/repositories"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	joinCodeLength     = 6
	joinCodeAlphabet   = "0123456789abcdefghijklmnopqrstuvwxyz"
	defaultChannelName = "general"
)

type IWorkspaceService interface {
	CreateWorkspace(ctx context.Context, userID, name string) (domain.Workspace, error)
	ListWorkspaces(ctx context.Context, userID string) ([]domain.Workspace, error)
	GetWorkspace(ctx context.Context, userID string, id uuid.UUID) (domain.Workspace, error)
	GetInfo(ctx context.Context, userID string, id uuid.UUID) (domain.WorkspaceInfo, error)
	RenameWorkspace(ctx context.Context, userID string, id uuid.UUID, name string) error
	RemoveWorkspace(ctx context.Context, userID string, id uuid.UUID) error
	Join(ctx context.Context, userID string, id uuid.UUID, joinCode string) error
	NewJoinCode(ctx context.Context, userID string, id uuid.UUID) (string, error)

	CreateChannel(ctx context.Context, userID string, workspaceID uuid.UUID, name string) (domain.Channel, error)
	GetChannel(ctx context.Context, userID string, id uuid.UUID) (domain.Channel, error)
	ListChannels(ctx context.Context, userID string, workspaceID uuid.UUID) ([]domain.Channel, error)
	RenameChannel(ctx context.Context, userID string, id uuid.UUID, name string) (domain.Channel, error)
	RemoveChannel(ctx context.Context, userID string, id uuid.UUID) error

	CurrentMember(ctx context.Context, userID string, workspaceID uuid.UUID) (domain.Member, error)
	GetMember(ctx context.Context, userID string, id uuid.UUID) (domain.Member, error)
	ListMembers(ctx context.Context, userID string, workspaceID uuid.UUID) ([]domain.Member, error)
	UpdateMemberRole(ctx context.Context, userID string, id uuid.UUID, role domain.Role) error
	RemoveMember(ctx context.Context, userID string, id uuid.UUID) error

	GetOrCreateConversation(ctx context.Context, userID string, workspaceID, otherMemberID uuid.UUID) (domain.Conversation, error)
}

type WorkspaceService struct {
	log        *slog.Logger
	validate   *validator.Validate
	workspaces repositories.IWorkspaceRepository
	members    repositories.IMemberRepository
	users      repositories.IUserRepository
	access     access
}

func NewWorkspaceService(log *slog.Logger,
	workspaces repositories.IWorkspaceRepository,
	members repositories.IMemberRepository,
	users repositories.IUserRepository) *WorkspaceService {
	return &WorkspaceService{
		log:        log,
		validate:   validator.New(),
		workspaces: workspaces,
		members:    members,
		users:      users,
		access:     access{members: members, workspaces: workspaces},
	}
}

type workspaceName struct {
	Name string `validate:"required,min=3,max=80"`
}

type channelName struct {
	Name string `validate:"required,min=3,max=80"`
}

// CreateWorkspace creates the workspace with its creator as admin and a
// "general" channel.
func (s *WorkspaceService) CreateWorkspace(_ context.Context, userID, name string) (domain.Workspace, error) {
	name = strings.TrimSpace(name)
	if err := validateCommand(s.validate, workspaceName{Name: name}); err != nil {
		return domain.Workspace{}, err
	}
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return domain.Workspace{}, err
	}
	code, err := generateJoinCode()
	if err != nil {
		return domain.Workspace{}, err
	}

	now := time.Now().UTC()
	workspace := domain.Workspace{ID: uuid.New(), Name: name, JoinCode: code, OwnerID: userID, CreatedAt: now}
	if err := s.workspaces.CreateWorkspace(workspace); err != nil {
		return domain.Workspace{}, fmt.Errorf("create workspace: %w", err)
	}
	if err := s.members.CreateMember(domain.Member{
		ID:          uuid.New(),
		WorkspaceID: workspace.ID,
		UserID:      userID,
		Role:        domain.RoleAdmin,
		Name:        user.Name,
		Image:       user.Image,
		JoinedAt:    now,
	}); err != nil {
		return domain.Workspace{}, fmt.Errorf("create admin member: %w", err)
	}
	if err := s.workspaces.CreateChannel(domain.Channel{
		ID:          uuid.New(),
		WorkspaceID: workspace.ID,
		Name:        defaultChannelName,
		CreatedAt:   now,
	}); err != nil {
		return domain.Workspace{}, fmt.Errorf("create default channel: %w", err)
	}
	s.log.Info("Workspace created", "id", workspace.ID, "owner", userID)
	return workspace, nil
}

// ListWorkspaces skips workspaces removed since the membership was read.
func (s *WorkspaceService) ListWorkspaces(_ context.Context, userID string) ([]domain.Workspace, error) {
	ids, err := s.members.ListWorkspaceIDs(userID)
	if err != nil {
		return nil, err
	}
	workspaces := make([]domain.Workspace, 0, len(ids))
	for _, id := range ids {
		workspace, err := s.workspaces.GetWorkspace(id)
		if errors.Is(err, errors.ErrWorkspaceNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		workspaces = append(workspaces, workspace)
	}
	return workspaces, nil
}

func (s *WorkspaceService) GetWorkspace(_ context.Context, userID string, id uuid.UUID) (domain.Workspace, error) {
	member, err := s.access.member(id, userID)
	if err != nil {
		return domain.Workspace{}, err
	}
	workspace, err := s.workspaces.GetWorkspace(id)
	if err != nil {
		return domain.Workspace{}, err
	}
	if !member.IsAdmin() {
		workspace.JoinCode = ""
	}
	return workspace, nil
}

// GetInfo is readable by anyone holding the workspace id, to render the join screen.
func (s *WorkspaceService) GetInfo(_ context.Context, userID string, id uuid.UUID) (domain.WorkspaceInfo, error) {
	workspace, err := s.workspaces.GetWorkspace(id)
	if err != nil {
		return domain.WorkspaceInfo{}, err
	}
	_, err = s.access.member(id, userID)
	if err != nil && !errors.Is(err, errors.ErrNotMember) {
		return domain.WorkspaceInfo{}, err
	}
	return domain.WorkspaceInfo{Name: workspace.Name, IsMember: err == nil}, nil
}

func (s *WorkspaceService) RenameWorkspace(_ context.Context, userID string, id uuid.UUID, name string) error {
	name = strings.TrimSpace(name)
	if err := validateCommand(s.validate, workspaceName{Name: name}); err != nil {
		return err
	}
	if _, err := s.access.admin(id, userID); err != nil {
		return err
	}
	workspace, err := s.workspaces.GetWorkspace(id)
	if err != nil {
		return err
	}
	workspace.Name = name
	return s.workspaces.UpdateWorkspace(workspace)
}

// RemoveWorkspace drops the workspace, its channels and every membership.
// Messages stay on disk but are no longer reachable.
func (s *WorkspaceService) RemoveWorkspace(_ context.Context, userID string, id uuid.UUID) error {
	if _, err := s.access.admin(id, userID); err != nil {
		return err
	}
	members, err := s.members.ListMembers(id)
	if err != nil {
		return err
	}
	for _, m := range members {
		if err := s.members.RemoveMember(m); err != nil {
			return fmt.Errorf("remove member %s: %w", m.ID, err)
		}
	}
	return s.workspaces.RemoveWorkspace(id)
}

// Join is case-insensitive on the join code.
func (s *WorkspaceService) Join(_ context.Context, userID string, id uuid.UUID, joinCode string) error {
	workspace, err := s.workspaces.GetWorkspace(id)
	if err != nil {
		return err
	}
	if !strings.EqualFold(strings.TrimSpace(joinCode), workspace.JoinCode) {
		return errors.ErrInvalidJoinCode
	}
	if _, err := s.access.member(id, userID); err == nil {
		return errors.ErrAlreadyMember
	} else if !errors.Is(err, errors.ErrNotMember) {
		return err
	}
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return err
	}
	return s.members.CreateMember(domain.Member{
		ID:          uuid.New(),
		WorkspaceID: id,
		UserID:      userID,
		Role:        domain.RoleMember,
		Name:        user.Name,
		Image:       user.Image,
		JoinedAt:    time.Now().UTC(),
	})
}

func (s *WorkspaceService) NewJoinCode(_ context.Context, userID string, id uuid.UUID) (string, error) {
	if _, err := s.access.admin(id, userID); err != nil {
		return "", err
	}
	workspace, err := s.workspaces.GetWorkspace(id)
	if err != nil {
		return "", err
	}
	if workspace.JoinCode, err = generateJoinCode(); err != nil {
		return "", err
	}
	if err := s.workspaces.UpdateWorkspace(workspace); err != nil {
		return "", err
	}
	return workspace.JoinCode, nil
}

func (s *WorkspaceService) CreateChannel(_ context.Context, userID string, workspaceID uuid.UUID, name string) (domain.Channel, error) {
	name = NormalizeChannelName(name)
	if err := validateCommand(s.validate, channelName{Name: name}); err != nil {
		return domain.Channel{}, err
	}
	if _, err := s.access.admin(workspaceID, userID); err != nil {
		return domain.Channel{}, err
	}
	channel := domain.Channel{ID: uuid.New(), WorkspaceID: workspaceID, Name: name, CreatedAt: time.Now().UTC()}
	if err := s.workspaces.CreateChannel(channel); err != nil {
		return domain.Channel{}, fmt.Errorf("create channel: %w", err)
	}
	return channel, nil
}

func (s *WorkspaceService) GetChannel(_ context.Context, userID string, id uuid.UUID) (domain.Channel, error) {
	channel, err := s.workspaces.GetChannel(id)
	if err != nil {
		return domain.Channel{}, err
	}
	if _, err := s.access.member(channel.WorkspaceID, userID); err != nil {
		return domain.Channel{}, err
	}
	return channel, nil
}

func (s *WorkspaceService) ListChannels(_ context.Context, userID string, workspaceID uuid.UUID) ([]domain.Channel, error) {
	if _, err := s.access.member(workspaceID, userID); err != nil {
		return nil, err
	}
	return s.workspaces.ListChannels(workspaceID)
}

func (s *WorkspaceService) RenameChannel(_ context.Context, userID string, id uuid.UUID, name string) (domain.Channel, error) {
	name = NormalizeChannelName(name)
	if err := validateCommand(s.validate, channelName{Name: name}); err != nil {
		return domain.Channel{}, err
	}
	channel, err := s.workspaces.GetChannel(id)
	if err != nil {
		return domain.Channel{}, err
	}
	if _, err := s.access.admin(channel.WorkspaceID, userID); err != nil {
		return domain.Channel{}, err
	}
	channel.Name = name
	return channel, s.workspaces.UpdateChannel(channel)
}

func (s *WorkspaceService) RemoveChannel(_ context.Context, userID string, id uuid.UUID) error {
	channel, err := s.workspaces.GetChannel(id)
	if err != nil {
		return err
	}
	if _, err := s.access.admin(channel.WorkspaceID, userID); err != nil {
		return err
	}
	return s.workspaces.RemoveChannel(channel)
}

func (s *WorkspaceService) CurrentMember(_ context.Context, userID string, workspaceID uuid.UUID) (domain.Member, error) {
	return s.access.member(workspaceID, userID)
}

// GetMember returns a member of a workspace the user belongs to.
func (s *WorkspaceService) GetMember(_ context.Context, userID string, id uuid.UUID) (domain.Member, error) {
	member, err := s.members.GetMember(id)
	if err != nil {
		return domain.Member{}, err
	}
	if _, err := s.access.member(member.WorkspaceID, userID); err != nil {
		return domain.Member{}, err
	}
	return member, nil
}

func (s *WorkspaceService) ListMembers(_ context.Context, userID string, workspaceID uuid.UUID) ([]domain.Member, error) {
	if _, err := s.access.member(workspaceID, userID); err != nil {
		return nil, err
	}
	return s.members.ListMembers(workspaceID)
}

func (s *WorkspaceService) UpdateMemberRole(_ context.Context, userID string, id uuid.UUID, role domain.Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", errors.ErrInvalidCommand, role)
	}
	member, err := s.members.GetMember(id)
	if err != nil {
		return err
	}
	if _, err := s.access.admin(member.WorkspaceID, userID); err != nil {
		return err
	}
	member.Role = role
	return s.members.UpdateMember(member)
}

// RemoveMember lets an admin remove a member, or a member leave on their own.
// Admins can never be removed.
func (s *WorkspaceService) RemoveMember(_ context.Context, userID string, id uuid.UUID) error {
	target, err := s.members.GetMember(id)
	if err != nil {
		return err
	}
	current, err := s.access.member(target.WorkspaceID, userID)
	if err != nil {
		return err
	}
	if target.IsAdmin() {
		return errors.ErrAdminCannotBeRemoved
	}
	if current.ID != target.ID && !current.IsAdmin() {
		return errors.ErrNotAdmin
	}
	return s.members.RemoveMember(target)
}

// GetOrCreateConversation returns the direct conversation between the user
// and another member, in either order.
func (s *WorkspaceService) GetOrCreateConversation(_ context.Context, userID string, workspaceID, otherMemberID uuid.UUID) (domain.Conversation, error) {
	current, err := s.access.member(workspaceID, userID)
	if err != nil {
		return domain.Conversation{}, err
	}
	other, err := s.members.GetMember(otherMemberID)
	if err != nil {
		return domain.Conversation{}, err
	}
	if other.WorkspaceID != workspaceID {
		return domain.Conversation{}, errors.ErrMemberNotFound
	}
	return s.workspaces.GetOrCreateConversation(domain.Conversation{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		MemberOneID: current.ID,
		MemberTwoID: other.ID,
	})
}

var spaces = regexp.MustCompile(`\s+`)

// NormalizeChannelName lower-cases the name and joins words with dashes.
func NormalizeChannelName(name string) string {
	return strings.ToLower(spaces.ReplaceAllString(strings.TrimSpace(name), "-"))
}

func generateJoinCode() (string, error) {
	b := make([]byte, joinCodeLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate join code: %w", err)
	}
	return string(lo.Map(b, func(v byte, _ int) byte {
		return joinCodeAlphabet[int(v)%len(joinCodeAlphabet)]
	})), nil
}
