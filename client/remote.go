package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"team-chat/domain"
	"team-chat/infrastructure/grpc/transport"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// Remote talks to the chat server over gRPC. It keeps the session token
// obtained at sign in and attaches it to every later call.
type Remote struct {
	log    *slog.Logger
	conn   *grpc.ClientConn
	client *transport.ChatServiceClient

	mu    sync.RWMutex
	token string
}

var (
	_ PageFetcher    = (*Remote)(nil)
	_ Subscriber     = (*Remote)(nil)
	_ MessageBackend = (*Remote)(nil)
	_ MemberBackend  = (*Remote)(nil)
)

func Dial(log *slog.Logger, address string) (*Remote, error) {
	conn, err := grpc.NewClient(address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		transport.CallOptions(),
	)
	if err != nil {
		return nil, fmt.Errorf("could not connect to server at %s: %w", address, err)
	}
	remote := NewRemote(log, conn)
	remote.conn = conn
	return remote, nil
}

// NewRemote uses a connection owned by the caller, which must have been
// opened with transport.CallOptions.
func NewRemote(log *slog.Logger, cc grpc.ClientConnInterface) *Remote {
	return &Remote{log: log, client: transport.NewChatServiceClient(cc)}
}

// Close releases the connection opened by Dial.
func (r *Remote) Close() error {
	if r.conn == nil {
		return nil
	}
	return r.conn.Close()
}

// WithToken reuses a token from an earlier session.
func (r *Remote) WithToken(token string) *Remote {
	r.setToken(token)
	return r
}

func (r *Remote) Register(ctx context.Context, name, email, password string) (string, error) {
	session, err := r.client.Register(ctx, &transport.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return "", err
	}
	r.setToken(session.Token)
	return session.UserID, nil
}

func (r *Remote) Login(ctx context.Context, email, password string) (string, error) {
	session, err := r.client.Login(ctx, &transport.LoginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	r.setToken(session.Token)
	return session.UserID, nil
}

// Token is the current session token, empty before sign in.
func (r *Remote) Token() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.token
}

func (r *Remote) setToken(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.token = token
}

func (r *Remote) authenticated(ctx context.Context) context.Context {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.token == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+r.token)
}

func (r *Remote) ListWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	resp, err := r.client.ListWorkspaces(r.authenticated(ctx))
	if err != nil {
		return nil, err
	}
	return resp.Workspaces, nil
}

func (r *Remote) CreateWorkspace(ctx context.Context, name string) (domain.Workspace, error) {
	workspace, err := r.client.CreateWorkspace(r.authenticated(ctx), &transport.CreateWorkspaceRequest{Name: name})
	if err != nil {
		return domain.Workspace{}, err
	}
	return *workspace, nil
}

func (r *Remote) JoinWorkspace(ctx context.Context, workspaceID uuid.UUID, joinCode string) error {
	return r.client.JoinWorkspace(r.authenticated(ctx), &transport.JoinWorkspaceRequest{WorkspaceID: workspaceID, JoinCode: joinCode})
}

func (r *Remote) CurrentMember(ctx context.Context, workspaceID uuid.UUID) (domain.Member, error) {
	member, err := r.client.CurrentMember(r.authenticated(ctx), &transport.WorkspaceRequest{WorkspaceID: workspaceID})
	if err != nil {
		return domain.Member{}, err
	}
	return *member, nil
}

func (r *Remote) ListChannels(ctx context.Context, workspaceID uuid.UUID) ([]domain.Channel, error) {
	resp, err := r.client.ListChannels(r.authenticated(ctx), &transport.WorkspaceRequest{WorkspaceID: workspaceID})
	if err != nil {
		return nil, err
	}
	return resp.Channels, nil
}

func (r *Remote) ListMembers(ctx context.Context, workspaceID uuid.UUID) ([]domain.Member, error) {
	resp, err := r.client.ListMembers(r.authenticated(ctx), &transport.WorkspaceRequest{WorkspaceID: workspaceID})
	if err != nil {
		return nil, err
	}
	return resp.Members, nil
}

func (r *Remote) UpdateMemberRole(ctx context.Context, memberID uuid.UUID, role domain.Role) error {
	return r.client.UpdateMemberRole(r.authenticated(ctx), &transport.UpdateMemberRoleRequest{MemberID: memberID, Role: role})
}

func (r *Remote) RemoveMember(ctx context.Context, memberID uuid.UUID) error {
	return r.client.RemoveMember(r.authenticated(ctx), &transport.MemberRequest{MemberID: memberID})
}

func (r *Remote) GetMessages(ctx context.Context, query domain.Query, cursor string, numItems int) (domain.Page, error) {
	page, err := r.client.GetMessages(r.authenticated(ctx), &transport.GetMessagesRequest{
		Query: query, Cursor: cursor, NumItems: numItems,
	})
	if err != nil {
		return domain.Page{}, err
	}
	return *page, nil
}

func (r *Remote) GetMessage(ctx context.Context, id uuid.UUID) (domain.Message, error) {
	message, err := r.client.GetMessage(r.authenticated(ctx), &transport.MessageRequest{ID: id})
	if err != nil {
		return domain.Message{}, err
	}
	return *message, nil
}

func (r *Remote) CreateMessage(ctx context.Context, message OutgoingMessage) (uuid.UUID, error) {
	resp, err := r.client.CreateMessage(r.authenticated(ctx), &transport.CreateMessageRequest{
		WorkspaceID:    message.WorkspaceID,
		ChannelID:      message.ChannelID,
		ConversationID: message.ConversationID,
		ParentID:       message.ParentID,
		Body:           message.Body,
		Image:          message.Image,
	})
	if err != nil {
		return uuid.Nil, err
	}
	return resp.ID, nil
}

func (r *Remote) UpdateMessage(ctx context.Context, id uuid.UUID, body string) error {
	return r.client.UpdateMessage(r.authenticated(ctx), &transport.UpdateMessageRequest{ID: id, Body: body})
}

func (r *Remote) RemoveMessage(ctx context.Context, id uuid.UUID) error {
	return r.client.RemoveMessage(r.authenticated(ctx), &transport.MessageRequest{ID: id})
}

func (r *Remote) ToggleReaction(ctx context.Context, messageID uuid.UUID, value string) error {
	return r.client.ToggleReaction(r.authenticated(ctx), &transport.ToggleReactionRequest{MessageID: messageID, Value: value})
}

func (r *Remote) GenerateUploadURL(ctx context.Context) (string, error) {
	resp, err := r.client.GenerateUploadURL(r.authenticated(ctx))
	if err != nil {
		return "", err
	}
	return resp.URL, nil
}

func (r *Remote) SearchMessages(ctx context.Context, workspaceID uuid.UUID, terms string) ([]domain.Message, error) {
	resp, err := r.client.SearchMessages(r.authenticated(ctx), &transport.SearchMessagesRequest{WorkspaceID: workspaceID, Terms: terms})
	if err != nil {
		return nil, err
	}
	return resp.Messages, nil
}

// Subscribe opens the server stream and forwards each page until the
// stream ends or Close is called.
func (r *Remote) Subscribe(ctx context.Context, query domain.Query, numItems int) (Subscription, error) {
	ctx, cancel := context.WithCancel(r.authenticated(ctx))
	stream, err := r.client.Subscribe(ctx, &transport.GetMessagesRequest{Query: query, NumItems: numItems})
	if err != nil {
		cancel()
		return nil, err
	}
	s := &remoteSubscription{log: r.log, pages: make(chan domain.Page), cancel: cancel}
	go s.pump(ctx, stream)
	return s, nil
}

type remoteSubscription struct {
	log    *slog.Logger
	pages  chan domain.Page
	cancel context.CancelFunc
	mu     sync.Mutex
	err    error
}

func (s *remoteSubscription) pump(ctx context.Context, stream grpc.ServerStreamingClient[domain.Page]) {
	defer close(s.pages)
	for {
		page, err := stream.Recv()
		if err != nil {
			if err != io.EOF && ctx.Err() == nil {
				s.log.Warn("Subscription stream broke", "error", err)
				s.mu.Lock()
				s.err = err
				s.mu.Unlock()
			}
			return
		}
		select {
		case s.pages <- *page:
		case <-ctx.Done():
			return
		}
	}
}

func (s *remoteSubscription) Pages() <-chan domain.Page {
	return s.pages
}

func (s *remoteSubscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *remoteSubscription) Close() {
	s.cancel()
}
