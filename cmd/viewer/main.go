package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"team-chat/client"
	"team-chat/domain"
	"team-chat/ui"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Viewer terminated with error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	panelQuery := flag.String("panel", "", `side panel, e.g. "parentMessageId=<id>" or "profileMemberId=<id>"`)
	send := flag.String("send", "", "message to post before rendering")
	image := flag.String("image", "", "image file attached to the posted message")
	more := flag.Int("more", 0, "number of older pages to load")
	follow := flag.Bool("follow", false, "keep rendering the channel as it changes")
	createWorkspace := flag.String("create-workspace", "", "create a workspace and view it")
	requested := registerActionFlags(flag.CommandLine)
	flag.Parse()

	_ = godotenv.Load()
	config, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)
	loc, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone: %w", err)
	}
	values, err := url.ParseQuery(*panelQuery)
	if err != nil {
		return fmt.Errorf("invalid panel query: %w", err)
	}
	panel, err := client.PanelFromQuery(values)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	remote, err := client.Dial(logger, config.ServerAddr)
	if err != nil {
		return err
	}
	defer func() { _ = remote.Close() }()

	if _, err := remote.Login(ctx, config.Email, config.Password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	notifier := client.NewLogNotifier(logger, 0)
	renderer := ui.NewRenderer(os.Stdout, loc, config.Colours)
	actions := client.NewActions(logger, remote, remote, notifier)

	if *createWorkspace != "" {
		created, err := actions.CreateWorkspace(ctx, *createWorkspace)
		if err != nil {
			renderer.Toasts(notifier.Toasts())
			return err
		}
		config.Workspace = created.Name
	}
	workspace, err := pickWorkspace(ctx, remote, config.Workspace)
	if err != nil {
		return err
	}
	channels, err := remote.ListChannels(ctx, workspace.ID)
	if err != nil {
		return err
	}
	channel, ok := lo.Find(channels, func(c domain.Channel) bool { return c.Name == config.Channel })
	if !ok {
		return fmt.Errorf("channel %q not found in %s", config.Channel, workspace.Name)
	}

	if err := requested.apply(ctx, actions, remote.CurrentMember, workspace.ID); err != nil {
		return err
	}
	if requested.leave {
		renderer.Toasts(notifier.Toasts())
		return nil
	}

	if *send != "" || *image != "" {
		draft, err := buildDraft(workspace.ID, channel.ID, panel, *send, *image)
		if err != nil {
			return err
		}
		composer := client.NewComposer(logger, remote, client.NewHTTPUploader(config.UploadTimeout), notifier)
		// failures end up as toasts
		_, _ = composer.Submit(ctx, draft)
	}

	nav := client.NewNavigator(uuid.Nil)
	nav.Begin(channel.ID)
	feed := client.NewFeed(logger, remote, domain.Query{ChannelID: &channel.ID})
	if err := feed.Start(ctx); err != nil {
		nav.Rollback()
		return fmt.Errorf("loading #%s failed: %w", channel.Name, err)
	}
	nav.Commit()
	for range *more {
		if err := feed.LoadMore(ctx); err != nil {
			logger.Warn("Loading older messages failed", "error", err)
			break
		}
	}

	title := "#" + channel.Name
	renderer.Feed(title, feed.Results(), feed.Status())
	if err := renderPanel(ctx, logger, remote, renderer, panel); err != nil {
		notifier.Error("Failed to open the side panel")
	}
	renderer.Toasts(notifier.Toasts())

	if !*follow {
		return nil
	}
	err = feed.Follow(ctx, remote, func() {
		renderer.Feed(title, feed.Results(), feed.Status())
	})
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("subscription ended: %w", err)
	}
	return nil
}

func pickWorkspace(ctx context.Context, remote *client.Remote, name string) (domain.Workspace, error) {
	workspaces, err := remote.ListWorkspaces(ctx)
	if err != nil {
		return domain.Workspace{}, err
	}
	if len(workspaces) == 0 {
		return domain.Workspace{}, fmt.Errorf("no workspace joined yet")
	}
	if name == "" {
		return workspaces[0], nil
	}
	workspace, ok := lo.Find(workspaces, func(w domain.Workspace) bool { return w.Name == name })
	if !ok {
		return domain.Workspace{}, fmt.Errorf("workspace %q not found", name)
	}
	return workspace, nil
}

func buildDraft(workspaceID, channelID uuid.UUID, panel *client.Panel, body, imagePath string) (client.Draft, error) {
	draft := client.Draft{WorkspaceID: workspaceID, ChannelID: &channelID, Body: body}
	if parentID, ok := panel.ThreadID(); ok {
		draft.ParentID = &parentID
	}
	if imagePath == "" {
		return draft, nil
	}
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return client.Draft{}, fmt.Errorf("read image: %w", err)
	}
	draft.Image = &client.Attachment{ContentType: mimetype.Detect(data).String(), Data: data}
	return draft, nil
}

// renderPanel shows the open thread below the channel. Profiles have no
// terminal rendering beyond the member line.
func renderPanel(ctx context.Context, log *slog.Logger, remote *client.Remote, renderer *ui.Renderer, panel *client.Panel) error {
	if memberID, ok := panel.ProfileID(); ok {
		log.Info("Profile panel open", "member", memberID)
		return nil
	}
	parentID, ok := panel.ThreadID()
	if !ok {
		return nil
	}
	root, err := remote.GetMessage(ctx, parentID)
	if err != nil {
		return err
	}
	thread := client.NewFeed(log, remote, domain.Query{ParentID: &parentID})
	if err := thread.Start(ctx); err != nil {
		return err
	}
	renderer.Thread(root, thread.Results(), thread.Status())
	return nil
}
