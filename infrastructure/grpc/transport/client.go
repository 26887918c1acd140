package transport

import (
	"context"
	"team-chat/domain"

	"google.golang.org/grpc"
)

// ChatServiceClient is the typed caller side of ServiceDesc.
type ChatServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewChatServiceClient(cc grpc.ClientConnInterface) *ChatServiceClient {
	return &ChatServiceClient{cc: cc}
}

func invoke[Req, Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in *Req, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ChatServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[RegisterRequest, SessionResponse](ctx, c.cc, RegisterMethod, in, opts...)
}

func (c *ChatServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[LoginRequest, SessionResponse](ctx, c.cc, LoginMethod, in, opts...)
}

func (c *ChatServiceClient) CreateWorkspace(ctx context.Context, in *CreateWorkspaceRequest, opts ...grpc.CallOption) (*domain.Workspace, error) {
	return invoke[CreateWorkspaceRequest, domain.Workspace](ctx, c.cc, CreateWorkspaceMethod, in, opts...)
}

func (c *ChatServiceClient) ListWorkspaces(ctx context.Context, opts ...grpc.CallOption) (*WorkspacesResponse, error) {
	return invoke[Empty, WorkspacesResponse](ctx, c.cc, ListWorkspacesMethod, &Empty{}, opts...)
}

func (c *ChatServiceClient) GetWorkspace(ctx context.Context, in *WorkspaceRequest, opts ...grpc.CallOption) (*domain.Workspace, error) {
	return invoke[WorkspaceRequest, domain.Workspace](ctx, c.cc, GetWorkspaceMethod, in, opts...)
}

func (c *ChatServiceClient) GetWorkspaceInfo(ctx context.Context, in *WorkspaceRequest, opts ...grpc.CallOption) (*domain.WorkspaceInfo, error) {
	return invoke[WorkspaceRequest, domain.WorkspaceInfo](ctx, c.cc, GetWorkspaceInfoMethod, in, opts...)
}

func (c *ChatServiceClient) RenameWorkspace(ctx context.Context, in *RenameWorkspaceRequest, opts ...grpc.CallOption) error {
	_, err := invoke[RenameWorkspaceRequest, Empty](ctx, c.cc, RenameWorkspaceMethod, in, opts...)
	return err
}

func (c *ChatServiceClient) RemoveWorkspace(ctx context.Context, in *WorkspaceRequest, opts ...grpc.CallOption) error {
	_, err := invoke[WorkspaceRequest, Empty](ctx, c.cc, RemoveWorkspaceMethod, in, opts...)
	return err
}

func (c *ChatServiceClient) JoinWorkspace(ctx context.Context, in *JoinWorkspaceRequest, opts ...grpc.CallOption) error {
	_, err := invoke[JoinWorkspaceRequest, Empty](ctx, c.cc, JoinWorkspaceMethod, in, opts...)
	return err
}

func (c *ChatServiceClient) NewJoinCode(ctx context.Context, in *WorkspaceRequest, opts ...grpc.CallOption) (*JoinCodeResponse, error) {
	return invoke[WorkspaceRequest, JoinCodeResponse](ctx, c.cc, NewJoinCodeMethod, in, opts...)
}

func (c *ChatServiceClient) CreateChannel(ctx context.Context, in *CreateChannelRequest, opts ...grpc.CallOption) (*domain.Channel, error) {
	return invoke[CreateChannelRequest, domain.Channel](ctx, c.cc, CreateChannelMethod, in, opts...)
}

func (c *ChatServiceClient) GetChannel(ctx context.Context, in *ChannelRequest, opts ...grpc.CallOption) (*domain.Channel, error) {
	return invoke[ChannelRequest, domain.Channel](ctx, c.cc, GetChannelMethod, in, opts...)
}

func (c *ChatServiceClient) ListChannels(ctx context.Context, in *WorkspaceRequest, opts ...grpc.CallOption) (*ChannelsResponse, error) {
	return invoke[WorkspaceRequest, ChannelsResponse](ctx, c.cc, ListChannelsMethod, in, opts...)
}

func (c *ChatServiceClient) RenameChannel(ctx context.Context, in *RenameChannelRequest, opts ...grpc.CallOption) (*domain.Channel, error) {
	return invoke[RenameChannelRequest, domain.Channel](ctx, c.cc, RenameChannelMethod, in, opts...)
}

func (c *ChatServiceClient) RemoveChannel(ctx context.Context, in *ChannelRequest, opts ...grpc.CallOption) error {
	_, err := invoke[ChannelRequest, Empty](ctx, c.cc, RemoveChannelMethod, in, opts...)
	return err
}

func (c *ChatServiceClient) CurrentMember(ctx context.Context, in *WorkspaceRequest, opts ...grpc.CallOption) (*domain.Member, error) {
	return invoke[WorkspaceRequest, domain.Member](ctx, c.cc, CurrentMemberMethod, in, opts...)
}

func (c *ChatServiceClient) GetMember(ctx context.Context, in *MemberRequest, opts ...grpc.CallOption) (*domain.Member, error) {
	return invoke[MemberRequest, domain.Member](ctx, c.cc, GetMemberMethod, in, opts...)
}

func (c *ChatServiceClient) ListMembers(ctx context.Context, in *WorkspaceRequest, opts ...grpc.CallOption) (*MembersResponse, error) {
	return invoke[WorkspaceRequest, MembersResponse](ctx, c.cc, ListMembersMethod, in, opts...)
}

func (c *ChatServiceClient) UpdateMemberRole(ctx context.Context, in *UpdateMemberRoleRequest, opts ...grpc.CallOption) error {
	_, err := invoke[UpdateMemberRoleRequest, Empty](ctx, c.cc, UpdateMemberRoleMethod, in, opts...)
	return err
}

func (c *ChatServiceClient) RemoveMember(ctx context.Context, in *MemberRequest, opts ...grpc.CallOption) error {
	_, err := invoke[MemberRequest, Empty](ctx, c.cc, RemoveMemberMethod, in, opts...)
	return err
}

func (c *ChatServiceClient) GetOrCreateConversation(ctx context.Context, in *ConversationRequest, opts ...grpc.CallOption) (*domain.Conversation, error) {
	return invoke[ConversationRequest, domain.Conversation](ctx, c.cc, GetOrCreateConversationMethod, in, opts...)
}

func (c *ChatServiceClient) CreateMessage(ctx context.Context, in *CreateMessageRequest, opts ...grpc.CallOption) (*MessageIDResponse, error) {
	return invoke[CreateMessageRequest, MessageIDResponse](ctx, c.cc, CreateMessageMethod, in, opts...)
}

func (c *ChatServiceClient) UpdateMessage(ctx context.Context, in *UpdateMessageRequest, opts ...grpc.CallOption) error {
	_, err := invoke[UpdateMessageRequest, Empty](ctx, c.cc, UpdateMessageMethod, in, opts...)
	return err
}

func (c *ChatServiceClient) RemoveMessage(ctx context.Context, in *MessageRequest, opts ...grpc.CallOption) error {
	_, err := invoke[MessageRequest, Empty](ctx, c.cc, RemoveMessageMethod, in, opts...)
	return err
}

func (c *ChatServiceClient) ToggleReaction(ctx context.Context, in *ToggleReactionRequest, opts ...grpc.CallOption) error {
	_, err := invoke[ToggleReactionRequest, Empty](ctx, c.cc, ToggleReactionMethod, in, opts...)
	return err
}

func (c *ChatServiceClient) GetMessages(ctx context.Context, in *GetMessagesRequest, opts ...grpc.CallOption) (*domain.Page, error) {
	return invoke[GetMessagesRequest, domain.Page](ctx, c.cc, GetMessagesMethod, in, opts...)
}

func (c *ChatServiceClient) GetMessage(ctx context.Context, in *MessageRequest, opts ...grpc.CallOption) (*domain.Message, error) {
	return invoke[MessageRequest, domain.Message](ctx, c.cc, GetMessageMethod, in, opts...)
}

func (c *ChatServiceClient) SearchMessages(ctx context.Context, in *SearchMessagesRequest, opts ...grpc.CallOption) (*MessagesResponse, error) {
	return invoke[SearchMessagesRequest, MessagesResponse](ctx, c.cc, SearchMessagesMethod, in, opts...)
}

func (c *ChatServiceClient) GenerateUploadURL(ctx context.Context, opts ...grpc.CallOption) (*UploadURLResponse, error) {
	return invoke[Empty, UploadURLResponse](ctx, c.cc, GenerateUploadURLMethod, &Empty{}, opts...)
}

// Subscribe opens the server stream; each received page replaces the previous one.
func (c *ChatServiceClient) Subscribe(ctx context.Context, in *GetMessagesRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[domain.Page], error) {
	stream, err := c.cc.NewStream(ctx, &ServiceDesc.Streams[0], SubscribeMethod, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[GetMessagesRequest, domain.Page]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}
