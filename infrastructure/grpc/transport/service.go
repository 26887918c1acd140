package transport

import (
	"context"
	"team-chat/domain"

	"google.golang.org/grpc"
)

const ServiceName = "teamchat.ChatService"

const (
	RegisterMethod                = "/" + ServiceName + "/Register"
	LoginMethod                   = "/" + ServiceName + "/Login"
	CreateWorkspaceMethod         = "/" + ServiceName + "/CreateWorkspace"
	ListWorkspacesMethod          = "/" + ServiceName + "/ListWorkspaces"
	GetWorkspaceMethod            = "/" + ServiceName + "/GetWorkspace"
	GetWorkspaceInfoMethod        = "/" + ServiceName + "/GetWorkspaceInfo"
	RenameWorkspaceMethod         = "/" + ServiceName + "/RenameWorkspace"
	RemoveWorkspaceMethod         = "/" + ServiceName + "/RemoveWorkspace"
	JoinWorkspaceMethod           = "/" + ServiceName + "/JoinWorkspace"
	NewJoinCodeMethod             = "/" + ServiceName + "/NewJoinCode"
	CreateChannelMethod           = "/" + ServiceName + "/CreateChannel"
	GetChannelMethod              = "/" + ServiceName + "/GetChannel"
	ListChannelsMethod            = "/" + ServiceName + "/ListChannels"
	RenameChannelMethod           = "/" + ServiceName + "/RenameChannel"
	RemoveChannelMethod           = "/" + ServiceName + "/RemoveChannel"
	CurrentMemberMethod           = "/" + ServiceName + "/CurrentMember"
	GetMemberMethod               = "/" + ServiceName + "/GetMember"
	ListMembersMethod             = "/" + ServiceName + "/ListMembers"
	UpdateMemberRoleMethod        = "/" + ServiceName + "/UpdateMemberRole"
	RemoveMemberMethod            = "/" + ServiceName + "/RemoveMember"
	GetOrCreateConversationMethod = "/" + ServiceName + "/GetOrCreateConversation"
	CreateMessageMethod           = "/" + ServiceName + "/CreateMessage"
	UpdateMessageMethod           = "/" + ServiceName + "/UpdateMessage"
	RemoveMessageMethod           = "/" + ServiceName + "/RemoveMessage"
	ToggleReactionMethod          = "/" + ServiceName + "/ToggleReaction"
	GetMessagesMethod             = "/" + ServiceName + "/GetMessages"
	GetMessageMethod              = "/" + ServiceName + "/GetMessage"
	SearchMessagesMethod          = "/" + ServiceName + "/SearchMessages"
	GenerateUploadURLMethod       = "/" + ServiceName + "/GenerateUploadURL"
	SubscribeMethod               = "/" + ServiceName + "/Subscribe"
)

// PublicMethods can be called without a session token.
var PublicMethods = []string{RegisterMethod, LoginMethod}

type ChatServiceServer interface {
	Register(context.Context, *RegisterRequest) (*SessionResponse, error)
	Login(context.Context, *LoginRequest) (*SessionResponse, error)

	CreateWorkspace(context.Context, *CreateWorkspaceRequest) (*domain.Workspace, error)
	ListWorkspaces(context.Context, *Empty) (*WorkspacesResponse, error)
	GetWorkspace(context.Context, *WorkspaceRequest) (*domain.Workspace, error)
	GetWorkspaceInfo(context.Context, *WorkspaceRequest) (*domain.WorkspaceInfo, error)
	RenameWorkspace(context.Context, *RenameWorkspaceRequest) (*Empty, error)
	RemoveWorkspace(context.Context, *WorkspaceRequest) (*Empty, error)
	JoinWorkspace(context.Context, *JoinWorkspaceRequest) (*Empty, error)
	NewJoinCode(context.Context, *WorkspaceRequest) (*JoinCodeResponse, error)

	CreateChannel(context.Context, *CreateChannelRequest) (*domain.Channel, error)
	GetChannel(context.Context, *ChannelRequest) (*domain.Channel, error)
	ListChannels(context.Context, *WorkspaceRequest) (*ChannelsResponse, error)
	RenameChannel(context.Context, *RenameChannelRequest) (*domain.Channel, error)
	RemoveChannel(context.Context, *ChannelRequest) (*Empty, error)

	CurrentMember(context.Context, *WorkspaceRequest) (*domain.Member, error)
	GetMember(context.Context, *MemberRequest) (*domain.Member, error)
	ListMembers(context.Context, *WorkspaceRequest) (*MembersResponse, error)
	UpdateMemberRole(context.Context, *UpdateMemberRoleRequest) (*Empty, error)
	RemoveMember(context.Context, *MemberRequest) (*Empty, error)
	GetOrCreateConversation(context.Context, *ConversationRequest) (*domain.Conversation, error)

	CreateMessage(context.Context, *CreateMessageRequest) (*MessageIDResponse, error)
	UpdateMessage(context.Context, *UpdateMessageRequest) (*Empty, error)
	RemoveMessage(context.Context, *MessageRequest) (*Empty, error)
	ToggleReaction(context.Context, *ToggleReactionRequest) (*Empty, error)
	GetMessages(context.Context, *GetMessagesRequest) (*domain.Page, error)
	GetMessage(context.Context, *MessageRequest) (*domain.Message, error)
	SearchMessages(context.Context, *SearchMessagesRequest) (*MessagesResponse, error)
	GenerateUploadURL(context.Context, *Empty) (*UploadURLResponse, error)

	// Subscribe streams a fresh first page every time the feed changes.
	Subscribe(*GetMessagesRequest, grpc.ServerStreamingServer[domain.Page]) error
}

func RegisterChatServiceServer(s grpc.ServiceRegistrar, srv ChatServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// unary builds the descriptor of one method and routes it through the
// server interceptors like generated code does.
func unary[Req, Resp any](fullMethod string, call func(ChatServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: fullMethod[len(ServiceName)+2:],
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(ChatServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(ChatServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func subscribeHandler(srv any, stream grpc.ServerStream) error {
	in := new(GetMessagesRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(ChatServiceServer).Subscribe(in, &grpc.GenericServerStream[GetMessagesRequest, domain.Page]{ServerStream: stream})
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ChatServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(RegisterMethod, ChatServiceServer.Register),
		unary(LoginMethod, ChatServiceServer.Login),
		unary(CreateWorkspaceMethod, ChatServiceServer.CreateWorkspace),
		unary(ListWorkspacesMethod, ChatServiceServer.ListWorkspaces),
		unary(GetWorkspaceMethod, ChatServiceServer.GetWorkspace),
		unary(GetWorkspaceInfoMethod, ChatServiceServer.GetWorkspaceInfo),
		unary(RenameWorkspaceMethod, ChatServiceServer.RenameWorkspace),
		unary(RemoveWorkspaceMethod, ChatServiceServer.RemoveWorkspace),
		unary(JoinWorkspaceMethod, ChatServiceServer.JoinWorkspace),
		unary(NewJoinCodeMethod, ChatServiceServer.NewJoinCode),
		unary(CreateChannelMethod, ChatServiceServer.CreateChannel),
		unary(GetChannelMethod, ChatServiceServer.GetChannel),
		unary(ListChannelsMethod, ChatServiceServer.ListChannels),
		unary(RenameChannelMethod, ChatServiceServer.RenameChannel),
		unary(RemoveChannelMethod, ChatServiceServer.RemoveChannel),
		unary(CurrentMemberMethod, ChatServiceServer.CurrentMember),
		unary(GetMemberMethod, ChatServiceServer.GetMember),
		unary(ListMembersMethod, ChatServiceServer.ListMembers),
		unary(UpdateMemberRoleMethod, ChatServiceServer.UpdateMemberRole),
		unary(RemoveMemberMethod, ChatServiceServer.RemoveMember),
		unary(GetOrCreateConversationMethod, ChatServiceServer.GetOrCreateConversation),
		unary(CreateMessageMethod, ChatServiceServer.CreateMessage),
		unary(UpdateMessageMethod, ChatServiceServer.UpdateMessage),
		unary(RemoveMessageMethod, ChatServiceServer.RemoveMessage),
		unary(ToggleReactionMethod, ChatServiceServer.ToggleReaction),
		unary(GetMessagesMethod, ChatServiceServer.GetMessages),
		unary(GetMessageMethod, ChatServiceServer.GetMessage),
		unary(SearchMessagesMethod, ChatServiceServer.SearchMessages),
		unary(GenerateUploadURLMethod, ChatServiceServer.GenerateUploadURL),
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Subscribe",
			Handler:       subscribeHandler,
			ServerStreams: true,
		},
	},
	Metadata: "teamchat/chat.proto",
}
