package e2e

import (
	"context"
	"net/http"
	"team-chat/client"
	"team-chat/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

const password = "Sup3r-Secret!pw"

// pngHeader is enough for content sniffing to see a PNG.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type testWorkspaceChatSuite struct {
	BaseGrpcSuite
}

func TestWorkspaceChatSuite(t *testing.T) {
	suite.Run(t, &testWorkspaceChatSuite{})
}

func (s *testWorkspaceChatSuite) TestFullWorkspaceChatFlow() {
	var (
		aliceToken, bobToken string
		workspace            domain.Workspace
		general              domain.Channel
		rootID               uuid.UUID
	)

	// --- STEP 0: ACCOUNTS ---
	s.Run("Step 0: Alice and Bob sign up", func() {
		aliceToken = s.SignUp("Alice", "alice@example.com", password)
		bobToken = s.SignUp("Bob", "bob@example.com", password)
		s.Require().NotEmpty(aliceToken)
		s.Require().NotEmpty(bobToken)
	})

	// --- STEP 1: WORKSPACE ---
	s.Run("Step 1: Alice creates a workspace and Bob joins it", func() {
		s.WithSession("Alice creates Acme", aliceToken, func(ctx context.Context, remote *client.Remote) {
			notifier := client.NewLogNotifier(s.Log, 0)
			var err error
			workspace, err = client.NewActions(s.Log, remote, remote, notifier).CreateWorkspace(ctx, "Acme")
			s.Require().NoError(err)
			s.Require().Len(workspace.JoinCode, 6)
			s.Require().Equal("Workspace created", notifier.Toasts()[0].Message)

			channels, err := remote.ListChannels(ctx, workspace.ID)
			s.Require().NoError(err)
			general = channels[0]
		})
		s.WithSession("Bob joins with the code", bobToken, func(ctx context.Context, remote *client.Remote) {
			s.Require().NoError(remote.JoinWorkspace(ctx, workspace.ID, workspace.JoinCode))
			members, err := remote.ListMembers(ctx, workspace.ID)
			s.Require().NoError(err)
			s.Require().Len(members, 2)
		})
	})

	// --- STEP 2: LIVE FEED ---
	s.Run("Step 2: Bob sees Alice's message with its image pushed live", func() {
		s.WithSession("Bob follows #general", bobToken, func(ctx context.Context, bob *client.Remote) {
			feed := client.NewFeed(s.Log, bob, domain.Query{ChannelID: &general.ID})
			s.Require().NoError(feed.Start(ctx))
			s.Require().Empty(feed.Results())
			s.Require().Equal(client.Exhausted, feed.Status())

			subscription, err := bob.Subscribe(ctx, feed.Query(), client.BatchSize)
			s.Require().NoError(err)
			defer subscription.Close()

			s.WithSession("Alice posts with an image", aliceToken, func(ctx context.Context, alice *client.Remote) {
				composer := client.NewComposer(s.Log, alice, client.NewHTTPUploader(5*time.Second),
					client.NewLogNotifier(s.Log, 0))
				rootID, err = composer.Submit(ctx, client.Draft{
					WorkspaceID: workspace.ID,
					ChannelID:   &general.ID,
					Body:        "hello team",
					Image:       &client.Attachment{ContentType: "image/png", Data: pngHeader},
				})
				s.Require().NoError(err)
			})

			page := s.awaitPage(subscription, func(p domain.Page) bool {
				return lo.ContainsBy(p.Messages, func(m domain.Message) bool { return m.ID == rootID })
			})
			feed.Refresh(page)
			messages := feed.Results()
			s.Require().Len(messages, 1)
			s.Require().Equal("hello team", messages[0].Body)
			s.Require().Equal("Alice", messages[0].AuthorName)
			s.Require().NotEmpty(messages[0].Image)

			resp, err := http.Get(messages[0].Image)
			s.Require().NoError(err)
			defer resp.Body.Close()
			s.Require().Equal(http.StatusOK, resp.StatusCode)
			s.Require().Equal("image/png", resp.Header.Get("Content-Type"))
		})
	})

	// --- STEP 3: THREAD & REACTIONS ---
	s.Run("Step 3: A reply and reactions show on the root message", func() {
		s.WithSession("Bob replies and reacts", bobToken, func(ctx context.Context, bob *client.Remote) {
			_, err := bob.CreateMessage(ctx, client.OutgoingMessage{
				WorkspaceID: workspace.ID,
				ChannelID:   &general.ID,
				ParentID:    &rootID,
				Body:        "welcome!",
			})
			s.Require().NoError(err)
			s.Require().NoError(bob.ToggleReaction(ctx, rootID, "👍"))
		})
		s.WithSession("Alice reacts too", aliceToken, func(ctx context.Context, alice *client.Remote) {
			s.Require().NoError(alice.ToggleReaction(ctx, rootID, "👍"))

			root, err := alice.GetMessage(ctx, rootID)
			s.Require().NoError(err)
			s.Require().Equal(1, root.Thread.Count)
			s.Require().Equal("Bob", root.Thread.LastName)
			s.Require().Len(root.Reactions, 1)
			s.Require().Equal(2, root.Reactions[0].Count)

			thread := client.NewFeed(s.Log, alice, domain.Query{ParentID: &rootID})
			s.Require().NoError(thread.Start(ctx))
			s.Require().Equal("welcome!", thread.Results()[0].Body)
		})
		s.WithSession("Bob takes the reaction back", bobToken, func(ctx context.Context, bob *client.Remote) {
			s.Require().NoError(bob.ToggleReaction(ctx, rootID, "👍"))
			root, err := bob.GetMessage(ctx, rootID)
			s.Require().NoError(err)
			s.Require().Equal(1, root.Reactions[0].Count)
		})
	})

	// --- STEP 4: SEARCH ---
	s.Run("Step 4: The message is searchable once indexed", func() {
		s.WithSession("Alice searches", aliceToken, func(ctx context.Context, alice *client.Remote) {
			s.Require().Eventually(func() bool {
				found, err := alice.SearchMessages(ctx, workspace.ID, "hello")
				return err == nil && len(found) == 1 && found[0].ID == rootID
			}, s.Config.Wait, 20*time.Millisecond)
		})
	})

	// --- STEP 5: MEMBERSHIP ---
	s.Run("Step 5: The admin cannot be removed and Bob leaves", func() {
		s.WithSession("Alice tries to leave as admin", aliceToken, func(ctx context.Context, alice *client.Remote) {
			self, err := alice.CurrentMember(ctx, workspace.ID)
			s.Require().NoError(err)
			notifier := client.NewLogNotifier(s.Log, 0)
			err = client.NewActions(s.Log, alice, alice, notifier).RemoveMember(ctx, self.ID)
			s.Require().Error(err)
			s.Require().Equal("Admin cannot be removed", notifier.Toasts()[0].Message)
		})
		s.WithSession("Bob leaves", bobToken, func(ctx context.Context, bob *client.Remote) {
			self, err := bob.CurrentMember(ctx, workspace.ID)
			s.Require().NoError(err)
			s.Require().NoError(client.NewActions(s.Log, bob, bob, client.NewLogNotifier(s.Log, 0)).Leave(ctx, self.ID))
			workspaces, err := bob.ListWorkspaces(ctx)
			s.Require().NoError(err)
			s.Require().Empty(workspaces)
		})
	})
}

// awaitPage drains the subscription until a page matches.
func (s *testWorkspaceChatSuite) awaitPage(subscription client.Subscription, match func(domain.Page) bool) domain.Page {
	timeout := time.After(s.Config.Wait)
	for {
		select {
		case page, ok := <-subscription.Pages():
			s.Require().True(ok, "subscription closed: %v", subscription.Err())
			if match(page) {
				return page
			}
		case <-timeout:
			s.FailNow("no matching page pushed in time")
		}
	}
}
