package server_test

import (
	"context"
	"log/slog"
	"net"
	"team-chat/auth"
	"team-chat/domain"
	"team-chat/errors"
	"team-chat/infrastructure/grpc/server"
	"team-chat/infrastructure/grpc/transport"
	"team-chat/mocks/servicemocks"
	"team-chat/services"
	"team-chat/sink"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const userID = "user-1"

type serverFixture struct {
	client     *transport.ChatServiceClient
	chat       *servicemocks.MockIChatService
	workspaces *servicemocks.MockIWorkspaceService
	accounts   *servicemocks.MockIAuthService
	uploads    *servicemocks.MockIUploadService
	token      string
}

// newServerFixture runs the real descriptor, codec and auth interceptor
// in memory, with the services mocked.
func newServerFixture(t *testing.T) serverFixture {
	ctrl := gomock.NewController(t)
	f := serverFixture{
		chat:       servicemocks.NewMockIChatService(ctrl),
		workspaces: servicemocks.NewMockIWorkspaceService(ctrl),
		accounts:   servicemocks.NewMockIAuthService(ctrl),
		uploads:    servicemocks.NewMockIUploadService(ctrl),
	}
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	token, err := issuer.Generate(userID)
	require.NoError(t, err)
	f.token = token

	interceptor := auth.NewInterceptor(issuer, transport.PublicMethods...)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(interceptor.Unary()),
		grpc.ChainStreamInterceptor(interceptor.Stream()),
	)
	transport.RegisterChatServiceServer(srv, server.NewChatServer(logs.GetLoggerFromLevel(slog.LevelDebug),
		f.chat, f.workspaces, f.accounts, f.uploads))

	listener := bufconn.Listen(1024 * 1024)
	go func() { _ = srv.Serve(listener) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		transport.CallOptions(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	f.client = transport.NewChatServiceClient(conn)
	return f
}

func (f serverFixture) authenticated(ctx context.Context) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+f.token)
}

func TestChatServer_Login_IsPublic(t *testing.T) {
	req := require.New(t)
	f := newServerFixture(t)

	f.accounts.EXPECT().Login("alice@example.com", "ComplexPass123!").
		Return(services.Session{UserID: userID, Token: "jwt"}, nil)

	// When logging in without any token
	session, err := f.client.Login(context.Background(), &transport.LoginRequest{
		Email: "alice@example.com", Password: "ComplexPass123!",
	})

	// Then the call goes through
	req.NoError(err)
	req.Equal(userID, session.UserID)
	req.Equal("jwt", session.Token)
}

func TestChatServer_RejectsAnonymousCalls(t *testing.T) {
	req := require.New(t)
	f := newServerFixture(t)

	_, err := f.client.ListWorkspaces(context.Background())
	req.Equal(codes.Unauthenticated, status.Code(err))
}

func TestChatServer_CreateMessage(t *testing.T) {
	req := require.New(t)
	f := newServerFixture(t)
	workspaceID, channelID, messageID := uuid.New(), uuid.New(), uuid.New()

	// Given the service accepts the message for the authenticated user
	f.chat.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.CreateMessageCommand) (uuid.UUID, error) {
			req.Equal(userID, cmd.UserID)
			req.Equal(workspaceID, cmd.WorkspaceID)
			req.Equal(channelID, *cmd.ChannelID)
			req.Equal("hello", cmd.Body)
			req.False(cmd.CreatedAt.IsZero())
			return messageID, nil
		})

	// When sending it over the wire
	resp, err := f.client.CreateMessage(f.authenticated(context.Background()), &transport.CreateMessageRequest{
		WorkspaceID: workspaceID,
		ChannelID:   &channelID,
		Body:        "hello",
	})

	// Then the new id is returned
	req.NoError(err)
	req.Equal(messageID, resp.ID)
}

func TestChatServer_MapsDomainErrors(t *testing.T) {
	req := require.New(t)
	f := newServerFixture(t)
	ctx := f.authenticated(context.Background())
	id := uuid.New()

	f.chat.EXPECT().RemoveMessage(gomock.Any(), domain.RemoveMessageCommand{UserID: userID, ID: id}).
		Return(errors.ErrNotAuthor)
	f.chat.EXPECT().GetMessage(gomock.Any(), userID, id).
		Return(domain.Message{}, errors.ErrMessageNotFound)
	f.workspaces.EXPECT().Join(gomock.Any(), userID, id, "abc123").
		Return(errors.ErrInvalidJoinCode)

	err := f.client.RemoveMessage(ctx, &transport.MessageRequest{ID: id})
	req.Equal(codes.PermissionDenied, status.Code(err))

	_, err = f.client.GetMessage(ctx, &transport.MessageRequest{ID: id})
	req.Equal(codes.NotFound, status.Code(err))

	err = f.client.JoinWorkspace(ctx, &transport.JoinWorkspaceRequest{WorkspaceID: id, JoinCode: "abc123"})
	req.Equal(codes.InvalidArgument, status.Code(err))
}

func TestChatServer_ListChannels(t *testing.T) {
	req := require.New(t)
	f := newServerFixture(t)
	workspaceID := uuid.New()
	channels := []domain.Channel{
		{ID: uuid.New(), WorkspaceID: workspaceID, Name: "general"},
		{ID: uuid.New(), WorkspaceID: workspaceID, Name: "random"},
	}
	f.workspaces.EXPECT().ListChannels(gomock.Any(), userID, workspaceID).Return(channels, nil)

	resp, err := f.client.ListChannels(f.authenticated(context.Background()), &transport.WorkspaceRequest{WorkspaceID: workspaceID})
	req.NoError(err)
	req.Len(resp.Channels, 2)
	req.Equal("random", resp.Channels[1].Name)
}

func TestChatServer_Subscribe(t *testing.T) {
	req := require.New(t)
	f := newServerFixture(t)
	channelID := uuid.New()
	feed := domain.RootFeed(domain.ChannelContainer(channelID))

	// Given a subscription whose snapshot grows with each fetch
	changes := sink.NewSubscriptionSink()
	fetches := 0
	closed := make(chan string, 1)
	subscription := services.NewSubscription("sub-1", feed, changes,
		func() (domain.Page, error) {
			fetches++
			messages := make([]domain.Message, fetches)
			for i := range messages {
				messages[i] = domain.Message{ID: uuid.New(), Body: "hello"}
			}
			return domain.Page{Messages: messages, IsDone: true}, nil
		},
		func(id string) { closed <- id })
	f.chat.EXPECT().Subscribe(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.GetMessagesCommand) (*services.Subscription, error) {
			req.Equal(userID, cmd.UserID)
			req.Equal(channelID, *cmd.Query.ChannelID)
			return subscription, nil
		})

	ctx, cancel := context.WithCancel(f.authenticated(context.Background()))
	defer cancel()

	// When subscribing
	stream, err := f.client.Subscribe(ctx, &transport.GetMessagesRequest{
		Query: domain.Query{ChannelID: &channelID},
	})
	req.NoError(err)

	// Then the first page arrives at once
	page, err := stream.Recv()
	req.NoError(err)
	req.Len(page.Messages, 1)

	// And a change pushes a fresh page
	req.NoError(changes.Consume(context.Background(), nil))
	page, err = stream.Recv()
	req.NoError(err)
	req.Len(page.Messages, 2)

	// And leaving releases the subscription
	cancel()
	select {
	case id := <-closed:
		req.Equal("sub-1", id)
	case <-time.After(2 * time.Second):
		req.Fail("subscription was not closed")
	}
}
