package client

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"team-chat/domain"

	"github.com/google/uuid"
)

// BatchSize is the number of messages requested per page.
const BatchSize = 30

type FeedStatus int

const (
	LoadingFirstPage FeedStatus = iota
	CanLoadMore
	LoadingMore
	Exhausted
)

func (s FeedStatus) String() string {
	switch s {
	case LoadingFirstPage:
		return "LoadingFirstPage"
	case CanLoadMore:
		return "CanLoadMore"
	case LoadingMore:
		return "LoadingMore"
	case Exhausted:
		return "Exhausted"
	default:
		return "Unknown"
	}
}

// Feed accumulates the pages of one cursor-paginated feed.
//
// Status moves LoadingFirstPage -> CanLoadMore <-> LoadingMore -> Exhausted,
// the feed is exhausted once the backend reports its last page. LoadMore
// outside CanLoadMore does nothing, which makes it safe to call on every scroll.
type Feed struct {
	log     *slog.Logger
	fetcher PageFetcher
	query   domain.Query

	mu     sync.RWMutex
	status FeedStatus
	pages  [][]domain.Message
	cursor string
}

func NewFeed(log *slog.Logger, fetcher PageFetcher, query domain.Query) *Feed {
	return &Feed{log: log, fetcher: fetcher, query: query, status: LoadingFirstPage}
}

func (f *Feed) Query() domain.Query {
	return f.query
}

func (f *Feed) Status() FeedStatus {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.status
}

// Results returns every loaded message, newest first as delivered.
// A message pushed down into a later page by new arrivals is listed once.
func (f *Feed) Results() []domain.Message {
	f.mu.RLock()
	defer f.mu.RUnlock()
	seen := make(map[uuid.UUID]struct{})
	var results []domain.Message
	for _, page := range f.pages {
		for _, m := range page {
			if _, ok := seen[m.ID]; ok {
				continue
			}
			seen[m.ID] = struct{}{}
			results = append(results, m)
		}
	}
	return results
}

// Start loads the first page. It does nothing once the first page is in.
func (f *Feed) Start(ctx context.Context) error {
	f.mu.Lock()
	if f.status != LoadingFirstPage || len(f.pages) > 0 {
		f.mu.Unlock()
		return nil
	}
	f.mu.Unlock()

	page, err := f.fetcher.GetMessages(ctx, f.query, "", BatchSize)
	if err != nil {
		return err
	}
	f.Refresh(page)
	return nil
}

// LoadMore requests the next batch. It is a no-op unless the status is
// CanLoadMore. On failure the feed goes back to CanLoadMore.
func (f *Feed) LoadMore(ctx context.Context) error {
	f.mu.Lock()
	if f.status != CanLoadMore {
		f.mu.Unlock()
		return nil
	}
	f.status = LoadingMore
	cursor := f.cursor
	f.mu.Unlock()

	page, err := f.fetcher.GetMessages(ctx, f.query, cursor, BatchSize)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.status = CanLoadMore
		f.log.Warn("Failed to load more messages", "cursor", cursor, "error", err)
		return err
	}
	f.pages = append(f.pages, page.Messages)
	f.cursor = page.Cursor
	f.status = statusAfter(page)
	return nil
}

// Refresh replaces the first page with a newer snapshot of it, as pushed
// by a subscription. Later pages are kept, and so are the messages the
// snapshot pushed out while a next page is pending. While only the first
// page is loaded and idle, the snapshot also decides whether more can be loaded.
func (f *Feed) Refresh(page domain.Page) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch {
	case len(f.pages) == 0:
		f.pages = [][]domain.Message{page.Messages}
	case len(page.Messages) == 0:
		f.pages[0] = page.Messages
	case len(f.pages) == 1 && f.status != LoadingMore:
		f.pages[0] = page.Messages
	default:
		// Pages after the first start from the old cursor
		f.pages[0] = slices.Concat(page.Messages, pushedOut(f.pages[0], page.Messages))
	}
	if len(f.pages) == 1 && f.status != LoadingMore {
		f.cursor = page.Cursor
		f.status = statusAfter(page)
	}
}

// Follow applies every snapshot pushed for the feed until ctx is done
// or the subscription ends, calling refreshed after each one when set.
// The subscription is always closed on return.
func (f *Feed) Follow(ctx context.Context, subscriber Subscriber, refreshed func()) error {
	subscription, err := subscriber.Subscribe(ctx, f.query, BatchSize)
	if err != nil {
		return err
	}
	defer subscription.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case page, ok := <-subscription.Pages():
			if !ok {
				return subscription.Err()
			}
			f.Refresh(page)
			if refreshed != nil {
				refreshed()
			}
		}
	}
}

// pushedOut returns the messages of the previous first page that new
// arrivals moved past the end of the snapshot. Later pages were fetched
// from the old cursor, so dropping them would leave a hole.
func pushedOut(previous, snapshot []domain.Message) []domain.Message {
	oldest := snapshot[len(snapshot)-1].CreatedAt
	in := make(map[uuid.UUID]struct{}, len(snapshot))
	for _, m := range snapshot {
		in[m.ID] = struct{}{}
	}
	var kept []domain.Message
	for _, m := range previous {
		if _, ok := in[m.ID]; ok || m.CreatedAt.After(oldest) {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}

func statusAfter(page domain.Page) FeedStatus {
	if page.IsDone {
		return Exhausted
	}
	return CanLoadMore
}
