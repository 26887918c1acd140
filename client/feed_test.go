package client_test

import (
	"context"
	"fmt"
	"log/slog"
	"team-chat/client"
	"team-chat/domain"
	"team-chat/mocks"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var base = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

// messages returns n messages newest first, the newest created at base+offset minutes.
func messages(n, offset int) []domain.Message {
	result := make([]domain.Message, n)
	for i := range result {
		result[i] = domain.Message{
			ID:        uuid.New(),
			Body:      fmt.Sprintf("message %d", offset-i),
			CreatedAt: base.Add(time.Duration(offset-i) * time.Minute),
		}
	}
	return result
}

func newFeed(t *testing.T) (*client.Feed, *mocks.MockPageFetcher, domain.Query) {
	fetcher := mocks.NewMockPageFetcher(gomock.NewController(t))
	channelID := uuid.New()
	query := domain.Query{ChannelID: &channelID}
	return client.NewFeed(logs.GetLoggerFromLevel(slog.LevelDebug), fetcher, query), fetcher, query
}

func TestFeed_Progression(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	feed, fetcher, query := newFeed(t)
	first, second := messages(30, 100), messages(5, 70)

	// Given a feed that has not loaded anything yet
	req.Equal(client.LoadingFirstPage, feed.Status())
	req.NoError(feed.LoadMore(ctx))
	req.Empty(feed.Results())

	// When the first page arrives with more behind it
	fetcher.EXPECT().GetMessages(ctx, query, "", client.BatchSize).
		Return(domain.Page{Messages: first, Cursor: "c1"}, nil)
	req.NoError(feed.Start(ctx))
	req.Equal(client.CanLoadMore, feed.Status())
	req.Len(feed.Results(), 30)

	// And the last page follows
	fetcher.EXPECT().GetMessages(ctx, query, "c1", client.BatchSize).
		Return(domain.Page{Messages: second, Cursor: "c2", IsDone: true}, nil)
	req.NoError(feed.LoadMore(ctx))

	// Then the feed is exhausted and keeps the delivered order
	req.Equal(client.Exhausted, feed.Status())
	results := feed.Results()
	req.Len(results, 35)
	req.Equal(first[0].ID, results[0].ID)
	req.Equal(second[4].ID, results[34].ID)

	// And loading more fetches nothing
	req.NoError(feed.LoadMore(ctx))
}

func TestFeed_LoadMoreWhileLoadingIsNoop(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	feed, fetcher, query := newFeed(t)

	fetcher.EXPECT().GetMessages(ctx, query, "", client.BatchSize).
		Return(domain.Page{Messages: messages(30, 100), Cursor: "c1"}, nil)
	req.NoError(feed.Start(ctx))

	// Given a slow second page
	release := make(chan struct{})
	started := make(chan struct{})
	fetcher.EXPECT().GetMessages(gomock.Any(), query, "c1", client.BatchSize).
		DoAndReturn(func(context.Context, domain.Query, string, int) (domain.Page, error) {
			close(started)
			<-release
			return domain.Page{Messages: messages(1, 60), IsDone: true}, nil
		}).Times(1)

	done := make(chan error, 1)
	go func() { done <- feed.LoadMore(ctx) }()
	<-started

	// When loading more again in the meantime
	req.Equal(client.LoadingMore, feed.Status())
	req.NoError(feed.LoadMore(ctx))

	// Then only one fetch happened
	close(release)
	req.NoError(<-done)
	req.Equal(client.Exhausted, feed.Status())
}

func TestFeed_LoadMoreFailureAllowsRetry(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	feed, fetcher, query := newFeed(t)

	fetcher.EXPECT().GetMessages(ctx, query, "", client.BatchSize).
		Return(domain.Page{Messages: messages(30, 100), Cursor: "c1"}, nil)
	req.NoError(feed.Start(ctx))

	fetcher.EXPECT().GetMessages(ctx, query, "c1", client.BatchSize).
		Return(domain.Page{}, fmt.Errorf("unavailable"))
	req.Error(feed.LoadMore(ctx))
	req.Equal(client.CanLoadMore, feed.Status())
	req.Len(feed.Results(), 30)
}

func ids(messages []domain.Message) []uuid.UUID {
	result := make([]uuid.UUID, len(messages))
	for i, m := range messages {
		result[i] = m.ID
	}
	return result
}

func TestFeed_RefreshKeepsOlderPages(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	feed, fetcher, query := newFeed(t)
	first, second := messages(3, 100), messages(3, 97)

	// Given a snapshot pushed before anything was fetched, then an older page
	feed.Refresh(domain.Page{Messages: first, Cursor: "c1"})
	req.Equal(client.CanLoadMore, feed.Status())

	fetcher.EXPECT().GetMessages(ctx, query, "c1", client.BatchSize).
		Return(domain.Page{Messages: second, Cursor: "c2"}, nil)
	req.NoError(feed.LoadMore(ctx))

	// When one message arrives and one of the first page is removed
	arrived := messages(1, 102)[0]
	feed.Refresh(domain.Page{Messages: []domain.Message{arrived, first[0], first[2]}, Cursor: "other"})

	// Then the removed one is gone and older pages are kept
	req.Equal([]uuid.UUID{arrived.ID, first[0].ID, first[2].ID,
		second[0].ID, second[1].ID, second[2].ID}, ids(feed.Results()))

	// When two more arrive and push the oldest past the snapshot
	newer := messages(2, 104)
	feed.Refresh(domain.Page{Messages: []domain.Message{newer[0], newer[1], arrived}, Cursor: "other"})

	// Then nothing falls between the snapshot and the next page
	req.Equal([]uuid.UUID{newer[0].ID, newer[1].ID, arrived.ID, first[0].ID, first[2].ID,
		second[0].ID, second[1].ID, second[2].ID}, ids(feed.Results()))
	req.Equal(client.CanLoadMore, feed.Status())
}

func TestFeed_RefreshWhileLoadingMoreKeepsPushedOut(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	feed, fetcher, query := newFeed(t)
	first, second := messages(3, 100), messages(3, 97)

	fetcher.EXPECT().GetMessages(ctx, query, "", client.BatchSize).
		Return(domain.Page{Messages: first, Cursor: "c1"}, nil)
	req.NoError(feed.Start(ctx))

	// Given the second page is still on its way
	release := make(chan struct{})
	started := make(chan struct{})
	fetcher.EXPECT().GetMessages(gomock.Any(), query, "c1", client.BatchSize).
		DoAndReturn(func(context.Context, domain.Query, string, int) (domain.Page, error) {
			close(started)
			<-release
			return domain.Page{Messages: second, Cursor: "c2"}, nil
		}).Times(1)
	done := make(chan error, 1)
	go func() { done <- feed.LoadMore(ctx) }()
	<-started

	// When a new message pushes the oldest one out of the first page
	arrived := messages(1, 101)[0]
	feed.Refresh(domain.Page{Messages: []domain.Message{arrived, first[0], first[1]}, Cursor: "other"})
	req.Equal(client.LoadingMore, feed.Status())
	close(release)
	req.NoError(<-done)

	// Then the pushed out message stays between the snapshot and the second page
	req.Equal([]uuid.UUID{arrived.ID, first[0].ID, first[1].ID, first[2].ID,
		second[0].ID, second[1].ID, second[2].ID}, ids(feed.Results()))
	req.Equal(client.CanLoadMore, feed.Status())
}

func TestFeed_Follow(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	feed, _, query := newFeed(t)
	subscriber := mocks.NewMockSubscriber(ctrl)
	subscription := mocks.NewMockSubscription(ctrl)

	pages := make(chan domain.Page, 2)
	pages <- domain.Page{Messages: messages(2, 10), IsDone: true}
	pages <- domain.Page{Messages: messages(3, 11), IsDone: true}
	close(pages)

	subscriber.EXPECT().Subscribe(gomock.Any(), query, client.BatchSize).Return(subscription, nil)
	subscription.EXPECT().Pages().Return((<-chan domain.Page)(pages)).AnyTimes()
	subscription.EXPECT().Err().Return(nil)
	subscription.EXPECT().Close()

	// When following until the server ends the stream
	var shown []int
	req.NoError(feed.Follow(context.Background(), subscriber, func() {
		shown = append(shown, len(feed.Results()))
	}))

	// Then every snapshot was shown and the latest one is kept
	req.Equal([]int{2, 3}, shown)
	req.Len(feed.Results(), 3)
	req.Equal(client.Exhausted, feed.Status())
}
