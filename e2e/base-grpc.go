package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http/httptest"
	"strings"
	"team-chat/auth"
	"team-chat/client"
	"team-chat/domain/event"
	"team-chat/infrastructure/grpc/server"
	"team-chat/infrastructure/grpc/transport"
	"team-chat/infrastructure/httpserver"
	"team-chat/observability"
	"team-chat/repositories"
	"team-chat/runtime"
	"team-chat/runtime/workers"
	"team-chat/services"
	"team-chat/sink"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// BaseGrpcSuite boots the whole server in process: badger and bluge in a
// temp dir, the orchestrator, the gRPC service on a bufconn listener and
// the file endpoints on an httptest server.
type BaseGrpcSuite struct {
	suite.Suite
	Config Config
	Log    *slog.Logger

	db           *badger.DB
	blugeWriter  *bluge.Writer
	orchestrator *runtime.Orchestrator
	grpcServer   *grpc.Server
	listener     *bufconn.Listener
	files        *httptest.Server
	cancel       context.CancelFunc
}

// SetupSuite loads the environment configuration and starts the stack
func (s *BaseGrpcSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	s.Log = logs.GetLoggerFromString(s.Config.LogLevel)

	dir := s.T().TempDir()
	s.db, err = badger.Open(badger.DefaultOptions(dir + "/badger").WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)
	s.blugeWriter, err = bluge.OpenWriter(bluge.DefaultConfig(dir + "/bluge"))
	s.Require().NoError(err)

	moderator, err := runtime.LoadModerator(s.Log, '*')
	s.Require().NoError(err)

	telemetryChan := make(chan event.Event, 100)
	monitoring := observability.NewMonitoringManager(s.Log)
	s.orchestrator = runtime.NewOrchestrator(s.Log,
		workers.NewSupervisor(s.Log, telemetryChan, 100*time.Millisecond),
		runtime.NewRegistry(), monitoring, telemetryChan, 100,
		time.Second, time.Second, time.Minute)
	searchIndex := repositories.NewSearchIndex(s.blugeWriter, s.Log)
	s.orchestrator.RegisterSinks(sink.NewSearchSink(searchIndex, s.Log, 50, 20*time.Millisecond))

	// The upload url embeds the file server address, known before it starts.
	s.files = httptest.NewUnstartedServer(nil)
	users := repositories.NewUserRepository(s.db)
	members := repositories.NewMemberRepository(s.db)
	workspaces := repositories.NewWorkspaceRepository(s.db)
	uploads := services.NewUploadService(s.Log, repositories.NewFileRepository(s.db), monitoring,
		services.UploadConfig{
			BaseURL:  "http://" + s.files.Listener.Addr().String(),
			TokenTTL: time.Minute,
			MaxBytes: 1 << 20,
		})
	chat := services.NewChatService(s.Log,
		repositories.NewMessageRepository(s.db, s.Log), repositories.NewReactionRepository(s.db),
		members, workspaces, searchIndex, moderator, uploads, s.orchestrator, monitoring,
		services.ChatConfig{MaxBodyLength: 4000, MaxPageSize: 100})
	issuer := auth.NewTokenIssuer("e2e-secret", time.Hour)

	s.files.Config.Handler = httpserver.NewRouter(httpserver.NewFileHandler(s.Log, uploads))
	s.files.Start()

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go func() { _ = s.orchestrator.Start(ctx) }()

	interceptor := auth.NewInterceptor(issuer, transport.PublicMethods...)
	s.grpcServer = grpc.NewServer(
		grpc.ChainUnaryInterceptor(interceptor.Unary()),
		grpc.ChainStreamInterceptor(interceptor.Stream()),
	)
	transport.RegisterChatServiceServer(s.grpcServer, server.NewChatServer(s.Log, chat,
		services.NewWorkspaceService(s.Log, workspaces, members, users),
		services.NewAuthService(users, issuer), uploads))
	s.listener = bufconn.Listen(1024 * 1024)
	go func() { _ = s.grpcServer.Serve(s.listener) }()
}

func (s *BaseGrpcSuite) TearDownSuite() {
	s.grpcServer.Stop()
	s.cancel()
	s.orchestrator.Stop()
	s.files.Close()
	_ = s.blugeWriter.Close()
	_ = s.db.Close()
}

// GrpcConn opens a connection to the in-process server with logging,
// colours and JSON debugging
func (s *BaseGrpcSuite) GrpcConn(t *testing.T, name string) *grpc.ClientConn {
	// 1. Print a colorized header for the connection step in logs
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	// 2. Create the client with a Unary Interceptor for logging
	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return s.listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		transport.CallOptions(),
		grpc.WithUnaryInterceptor(func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			start := time.Now()
			err := invoker(ctx, method, req, reply, cc, opts...)

			logBuilder := strings.Builder{}
			fmt.Fprintf(&logBuilder, "GRPC %s [%s] in %v", method, status.Code(err), time.Since(start))

			// Log full JSON request/response bodies if E2E_DEBUG_JSON is enabled
			if s.Config.DebugJSON {
				fmt.Fprintln(&logBuilder, "\nREQUEST:")
				fmt.Fprintln(&logBuilder, indent(req))
				if err != nil {
					fmt.Fprintln(&logBuilder, "ERROR:", err)
				} else {
					fmt.Fprintln(&logBuilder, "RESPONSE:")
					fmt.Fprintln(&logBuilder, indent(reply))
				}
			}
			t.Log(logBuilder.String())
			return err
		}),
	)
	s.Require().NoError(err, "Failed to connect to the in-process server")
	return conn
}

// WithSession provides a client signed in with token within a contextual
// test step. An empty token gives an anonymous client.
func (s *BaseGrpcSuite) WithSession(name, token string, fn func(ctx context.Context, remote *client.Remote)) {
	conn := s.GrpcConn(s.T(), name)
	defer conn.Close()

	remote := client.NewRemote(s.Log, conn).WithToken(token)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fn(ctx, remote)
}

// SignUp registers a user and returns their session token.
func (s *BaseGrpcSuite) SignUp(name, email, password string) string {
	var token string
	s.WithSession("Register "+name, "", func(ctx context.Context, remote *client.Remote) {
		_, err := remote.Register(ctx, name, email, password)
		s.Require().NoError(err)
		token = remote.Token()
	})
	return token
}

func indent(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}
