package test

import (
	"context"
	"log/slog"
	"team-chat/domain"
	"team-chat/domain/event"
	"team-chat/mocks"
	"team-chat/moderation"
	"team-chat/observability"
	"team-chat/repositories"
	"team-chat/runtime"
	"team-chat/runtime/workers"
	"team-chat/services"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_Scenario(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	// Reduced to 16 Mo for testing (avoid 20 Go of storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	req.NoError(err)

	// 1. Create channel to wait for a signal at the end of process
	done := make(chan event.MessageCreated, 1)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	telemetryChan := make(chan event.Event, 10)
	monitoring := observability.NewMonitoringManager(log)
	supervisor := workers.NewSupervisor(log, telemetryChan, 200*time.Millisecond)
	orchestrator := runtime.NewOrchestrator(log, supervisor, runtime.NewRegistry(), monitoring,
		telemetryChan, 100, time.Second, 500*time.Millisecond, time.Minute)

	ctrl := gomock.NewController(t)
	mockSink := mocks.NewMockEventSink(ctrl)
	mockSink.EXPECT().
		Consume(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, e event.DomainEvent) {
			if created, ok := e.(event.MessageCreated); ok {
				done <- created // Signaling a message has been published
			}
		}).
		Return(nil).
		Times(1)
	orchestrator.RegisterSinks(mockSink)

	moderator, err := moderation.NewModerator([]string{"darn"}, '*', log)
	req.NoError(err)
	users := repositories.NewUserRepository(db)
	members := repositories.NewMemberRepository(db)
	workspaceRepository := repositories.NewWorkspaceRepository(db)
	uploads := services.NewUploadService(log, repositories.NewFileRepository(db), monitoring,
		services.UploadConfig{BaseURL: "http://files.local", TokenTTL: time.Minute, MaxBytes: 1024})
	chat := services.NewChatService(log,
		repositories.NewMessageRepository(db, log), repositories.NewReactionRepository(db),
		members, workspaceRepository, repositories.NewSearchIndex(writer, log), moderator, uploads,
		orchestrator, monitoring, services.ChatConfig{MaxBodyLength: 200, MaxPageSize: 50})
	workspaces := services.NewWorkspaceService(log, workspaceRepository, members, users)

	runCtx, cancel := context.WithCancel(ctx)
	go func() {
		err := orchestrator.Start(runCtx)
		req.NoError(err)
	}()

	// Clean everything at the end of the test
	t.Cleanup(func() {
		cancel()
		orchestrator.Stop()
		_ = writer.Close()
		_ = db.Close()
	})

	// Given a workspace with its general channel
	userID, err := users.CreateUser("alice@example.com", "Alice", "hash")
	req.NoError(err)
	workspace, err := workspaces.CreateWorkspace(ctx, userID, "Acme")
	req.NoError(err)
	channels, err := workspaces.ListChannels(ctx, userID, workspace.ID)
	req.NoError(err)
	general := channels[0]

	// And a live subscription on it
	subscription, err := chat.Subscribe(ctx, domain.GetMessagesCommand{
		UserID: userID,
		Query:  domain.Query{ChannelID: &general.ID},
	})
	req.NoError(err)
	defer subscription.Close()

	// When a message is posted
	id, err := chat.CreateMessage(ctx, domain.CreateMessageCommand{
		UserID:      userID,
		WorkspaceID: workspace.ID,
		ChannelID:   &general.ID,
		Body:        "darn this build",
	})
	req.NoError(err)

	// Then the permanent sink receives it censored and hydrated
	select {
	case created := <-done:
		req.Equal(id, created.Message.ID)
		req.Equal("**** this build", created.Message.Body)
		req.Equal("Alice", created.Message.AuthorName)
	case <-time.After(2 * time.Second):
		req.Fail("Timeout: message has never reached the sink")
	}

	// And the subscription is told, its snapshot holding the message
	select {
	case <-subscription.Changes():
	case <-time.After(2 * time.Second):
		req.Fail("Timeout: subscription was never signalled")
	}
	page, err := subscription.Snapshot()
	req.NoError(err)
	req.Len(page.Messages, 1)
	req.Equal(id, page.Messages[0].ID)
	req.Equal("Alice", page.Messages[0].AuthorName)
}
