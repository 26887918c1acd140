package server

import (
	"context"
	"log/slog"
	"team-chat/auth"
	"team-chat/domain"
	"team-chat/errors"
	"team-chat/infrastructure/grpc/transport"
	"team-chat/services"
	"time"

	"github.com/samber/lo"
	"google.golang.org/grpc"
)

// ChatServer exposes the services over the teamchat.ChatService descriptor.
// Every method except Register and Login relies on the auth interceptor
// having put the caller's user id in the context.
type ChatServer struct {
	log        *slog.Logger
	chat       services.IChatService
	workspaces services.IWorkspaceService
	accounts   services.IAuthService
	uploads    services.IUploadService
}

var _ transport.ChatServiceServer = (*ChatServer)(nil)

func NewChatServer(log *slog.Logger,
	chat services.IChatService,
	workspaces services.IWorkspaceService,
	accounts services.IAuthService,
	uploads services.IUploadService) *ChatServer {
	return &ChatServer{log: log, chat: chat, workspaces: workspaces, accounts: accounts, uploads: uploads}
}

func (s *ChatServer) Register(_ context.Context, in *transport.RegisterRequest) (*transport.SessionResponse, error) {
	session, err := s.accounts.Register(in.Name, in.Email, in.Password)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &transport.SessionResponse{UserID: session.UserID, Token: session.Token}, nil
}

func (s *ChatServer) Login(_ context.Context, in *transport.LoginRequest) (*transport.SessionResponse, error) {
	session, err := s.accounts.Login(in.Email, in.Password)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &transport.SessionResponse{UserID: session.UserID, Token: session.Token}, nil
}

func (s *ChatServer) CreateWorkspace(ctx context.Context, in *transport.CreateWorkspaceRequest) (*domain.Workspace, error) {
	return call(ctx, func(userID string) (domain.Workspace, error) {
		return s.workspaces.CreateWorkspace(ctx, userID, in.Name)
	})
}

func (s *ChatServer) ListWorkspaces(ctx context.Context, _ *transport.Empty) (*transport.WorkspacesResponse, error) {
	return call(ctx, func(userID string) (transport.WorkspacesResponse, error) {
		workspaces, err := s.workspaces.ListWorkspaces(ctx, userID)
		return transport.WorkspacesResponse{Workspaces: workspaces}, err
	})
}

func (s *ChatServer) GetWorkspace(ctx context.Context, in *transport.WorkspaceRequest) (*domain.Workspace, error) {
	return call(ctx, func(userID string) (domain.Workspace, error) {
		return s.workspaces.GetWorkspace(ctx, userID, in.WorkspaceID)
	})
}

func (s *ChatServer) GetWorkspaceInfo(ctx context.Context, in *transport.WorkspaceRequest) (*domain.WorkspaceInfo, error) {
	return call(ctx, func(userID string) (domain.WorkspaceInfo, error) {
		return s.workspaces.GetInfo(ctx, userID, in.WorkspaceID)
	})
}

func (s *ChatServer) RenameWorkspace(ctx context.Context, in *transport.RenameWorkspaceRequest) (*transport.Empty, error) {
	return exec(ctx, func(userID string) error {
		return s.workspaces.RenameWorkspace(ctx, userID, in.WorkspaceID, in.Name)
	})
}

func (s *ChatServer) RemoveWorkspace(ctx context.Context, in *transport.WorkspaceRequest) (*transport.Empty, error) {
	return exec(ctx, func(userID string) error {
		return s.workspaces.RemoveWorkspace(ctx, userID, in.WorkspaceID)
	})
}

func (s *ChatServer) JoinWorkspace(ctx context.Context, in *transport.JoinWorkspaceRequest) (*transport.Empty, error) {
	return exec(ctx, func(userID string) error {
		return s.workspaces.Join(ctx, userID, in.WorkspaceID, in.JoinCode)
	})
}

func (s *ChatServer) NewJoinCode(ctx context.Context, in *transport.WorkspaceRequest) (*transport.JoinCodeResponse, error) {
	return call(ctx, func(userID string) (transport.JoinCodeResponse, error) {
		code, err := s.workspaces.NewJoinCode(ctx, userID, in.WorkspaceID)
		return transport.JoinCodeResponse{JoinCode: code}, err
	})
}

func (s *ChatServer) CreateChannel(ctx context.Context, in *transport.CreateChannelRequest) (*domain.Channel, error) {
	return call(ctx, func(userID string) (domain.Channel, error) {
		return s.workspaces.CreateChannel(ctx, userID, in.WorkspaceID, in.Name)
	})
}

func (s *ChatServer) GetChannel(ctx context.Context, in *transport.ChannelRequest) (*domain.Channel, error) {
	return call(ctx, func(userID string) (domain.Channel, error) {
		return s.workspaces.GetChannel(ctx, userID, in.ChannelID)
	})
}

func (s *ChatServer) ListChannels(ctx context.Context, in *transport.WorkspaceRequest) (*transport.ChannelsResponse, error) {
	return call(ctx, func(userID string) (transport.ChannelsResponse, error) {
		channels, err := s.workspaces.ListChannels(ctx, userID, in.WorkspaceID)
		return transport.ChannelsResponse{Channels: channels}, err
	})
}

func (s *ChatServer) RenameChannel(ctx context.Context, in *transport.RenameChannelRequest) (*domain.Channel, error) {
	return call(ctx, func(userID string) (domain.Channel, error) {
		return s.workspaces.RenameChannel(ctx, userID, in.ChannelID, in.Name)
	})
}

func (s *ChatServer) RemoveChannel(ctx context.Context, in *transport.ChannelRequest) (*transport.Empty, error) {
	return exec(ctx, func(userID string) error {
		return s.workspaces.RemoveChannel(ctx, userID, in.ChannelID)
	})
}

func (s *ChatServer) CurrentMember(ctx context.Context, in *transport.WorkspaceRequest) (*domain.Member, error) {
	return call(ctx, func(userID string) (domain.Member, error) {
		return s.workspaces.CurrentMember(ctx, userID, in.WorkspaceID)
	})
}

func (s *ChatServer) GetMember(ctx context.Context, in *transport.MemberRequest) (*domain.Member, error) {
	return call(ctx, func(userID string) (domain.Member, error) {
		return s.workspaces.GetMember(ctx, userID, in.MemberID)
	})
}

func (s *ChatServer) ListMembers(ctx context.Context, in *transport.WorkspaceRequest) (*transport.MembersResponse, error) {
	return call(ctx, func(userID string) (transport.MembersResponse, error) {
		members, err := s.workspaces.ListMembers(ctx, userID, in.WorkspaceID)
		return transport.MembersResponse{Members: members}, err
	})
}

func (s *ChatServer) UpdateMemberRole(ctx context.Context, in *transport.UpdateMemberRoleRequest) (*transport.Empty, error) {
	return exec(ctx, func(userID string) error {
		return s.workspaces.UpdateMemberRole(ctx, userID, in.MemberID, in.Role)
	})
}

func (s *ChatServer) RemoveMember(ctx context.Context, in *transport.MemberRequest) (*transport.Empty, error) {
	return exec(ctx, func(userID string) error {
		return s.workspaces.RemoveMember(ctx, userID, in.MemberID)
	})
}

func (s *ChatServer) GetOrCreateConversation(ctx context.Context, in *transport.ConversationRequest) (*domain.Conversation, error) {
	return call(ctx, func(userID string) (domain.Conversation, error) {
		return s.workspaces.GetOrCreateConversation(ctx, userID, in.WorkspaceID, in.MemberID)
	})
}

// CreateMessage stamps the creation time server side, clients never choose it.
func (s *ChatServer) CreateMessage(ctx context.Context, in *transport.CreateMessageRequest) (*transport.MessageIDResponse, error) {
	return call(ctx, func(userID string) (transport.MessageIDResponse, error) {
		id, err := s.chat.CreateMessage(ctx, domain.CreateMessageCommand{
			UserID:         userID,
			WorkspaceID:    in.WorkspaceID,
			ChannelID:      in.ChannelID,
			ConversationID: in.ConversationID,
			ParentID:       in.ParentID,
			Body:           in.Body,
			Image:          in.Image,
			CreatedAt:      time.Now().UTC(),
		})
		return transport.MessageIDResponse{ID: id}, err
	})
}

func (s *ChatServer) UpdateMessage(ctx context.Context, in *transport.UpdateMessageRequest) (*transport.Empty, error) {
	return exec(ctx, func(userID string) error {
		return s.chat.UpdateMessage(ctx, domain.UpdateMessageCommand{
			UserID:    userID,
			ID:        in.ID,
			Body:      in.Body,
			UpdatedAt: time.Now().UTC(),
		})
	})
}

func (s *ChatServer) RemoveMessage(ctx context.Context, in *transport.MessageRequest) (*transport.Empty, error) {
	return exec(ctx, func(userID string) error {
		return s.chat.RemoveMessage(ctx, domain.RemoveMessageCommand{UserID: userID, ID: in.ID})
	})
}

func (s *ChatServer) ToggleReaction(ctx context.Context, in *transport.ToggleReactionRequest) (*transport.Empty, error) {
	return exec(ctx, func(userID string) error {
		return s.chat.ToggleReaction(ctx, domain.ToggleReactionCommand{
			UserID:    userID,
			MessageID: in.MessageID,
			Value:     in.Value,
			At:        time.Now().UTC(),
		})
	})
}

func (s *ChatServer) GetMessages(ctx context.Context, in *transport.GetMessagesRequest) (*domain.Page, error) {
	return call(ctx, func(userID string) (domain.Page, error) {
		return s.chat.GetMessages(ctx, toGetMessagesCommand(userID, in))
	})
}

func (s *ChatServer) GetMessage(ctx context.Context, in *transport.MessageRequest) (*domain.Message, error) {
	return call(ctx, func(userID string) (domain.Message, error) {
		return s.chat.GetMessage(ctx, userID, in.ID)
	})
}

func (s *ChatServer) SearchMessages(ctx context.Context, in *transport.SearchMessagesRequest) (*transport.MessagesResponse, error) {
	return call(ctx, func(userID string) (transport.MessagesResponse, error) {
		messages, err := s.chat.SearchMessages(ctx, domain.SearchMessagesCommand{
			UserID:      userID,
			WorkspaceID: in.WorkspaceID,
			Terms:       in.Terms,
			Lang:        in.Lang,
			Limit:       in.Limit,
		})
		return transport.MessagesResponse{Messages: messages}, err
	})
}

func (s *ChatServer) GenerateUploadURL(ctx context.Context, _ *transport.Empty) (*transport.UploadURLResponse, error) {
	return call(ctx, func(userID string) (transport.UploadURLResponse, error) {
		url, err := s.uploads.GenerateUploadURL(ctx, userID)
		return transport.UploadURLResponse{URL: url}, err
	})
}

// Subscribe pushes the first page of the feed, then a fresh one after every change.
// It blocks until the client goes away and always releases the subscription.
func (s *ChatServer) Subscribe(in *transport.GetMessagesRequest, stream grpc.ServerStreamingServer[domain.Page]) error {
	ctx := stream.Context()
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return errors.MapToGRPCError(err)
	}
	subscription, err := s.chat.Subscribe(ctx, toGetMessagesCommand(userID, in))
	if err != nil {
		return errors.MapToGRPCError(err)
	}
	defer subscription.Close()

	push := func() error {
		page, err := subscription.Snapshot()
		if err != nil {
			return errors.MapToGRPCError(err)
		}
		if err := stream.Send(&page); err != nil {
			s.log.Error("Failed to push page to stream",
				"user_id", userID,
				"feed", subscription.Feed,
				"error", err)
			return err
		}
		return nil
	}

	if err := push(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			s.log.Debug("Subscriber disconnected", "user_id", userID, "feed", subscription.Feed)
			return nil
		case <-subscription.Changes():
			if err := push(); err != nil {
				return err
			}
		}
	}
}

func toGetMessagesCommand(userID string, in *transport.GetMessagesRequest) domain.GetMessagesCommand {
	return domain.GetMessagesCommand{
		UserID:   userID,
		Query:    in.Query,
		Cursor:   in.Cursor,
		NumItems: in.NumItems,
	}
}

// call resolves the caller and maps service errors to gRPC statuses.
func call[T any](ctx context.Context, fn func(userID string) (T, error)) (*T, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	result, err := fn(userID)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return lo.ToPtr(result), nil
}

func exec(ctx context.Context, fn func(userID string) error) (*transport.Empty, error) {
	return call(ctx, func(userID string) (transport.Empty, error) {
		return transport.Empty{}, fn(userID)
	})
}
