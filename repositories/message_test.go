package repositories

import (
	"log/slog"
	"team-chat/domain"
	"team-chat/errors"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newDiskMessage(container domain.Container, member uuid.UUID, body string, at time.Time) DiskMessage {
	return DiskMessage{
		ID:          uuid.New(),
		WorkspaceID: uuid.New(),
		Container:   container,
		MemberID:    member,
		Body:        body,
		CreatedAt:   at,
	}
}

func Test_Store_And_Get_Message(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default())
	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	updatedAt := at.Add(time.Minute)
	message := newDiskMessage(domain.ChannelContainer(uuid.New()), uuid.New(), "hello", at)
	message.StorageID = "img-1"
	message.UpdatedAt = &updatedAt

	// Given a stored message
	req.NoError(repository.StoreMessage(message))

	// When reading it back
	fetched, err := repository.GetMessage(message.ID)

	// Then every field survives the encoding
	req.NoError(err)
	req.Equal(message, fetched)
}

func Test_Get_Unknown_Message(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default())

	_, err := repository.GetMessage(uuid.New())
	req.ErrorIs(err, errors.ErrMessageNotFound)
	req.ErrorIs(repository.UpdateMessage(DiskMessage{ID: uuid.New()}), errors.ErrMessageNotFound)
}

func Test_ListFeed_Newest_First_With_Cursor(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default())
	channel := domain.ChannelContainer(uuid.New())
	member := uuid.New()
	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	// Given five messages one minute apart
	var stored []DiskMessage
	for i := 0; i < 5; i++ {
		m := newDiskMessage(channel, member, "msg", at.Add(time.Duration(i)*time.Minute))
		req.NoError(repository.StoreMessage(m))
		stored = append(stored, m)
	}

	// When fetching by pages of two
	first, cursor, done, err := repository.ListFeed(domain.RootFeed(channel), "", 2)
	req.NoError(err)
	req.False(done)
	req.Equal([]uuid.UUID{stored[4].ID, stored[3].ID}, ids(first))

	second, cursor, done, err := repository.ListFeed(domain.RootFeed(channel), cursor, 2)
	req.NoError(err)
	req.False(done)
	req.Equal([]uuid.UUID{stored[2].ID, stored[1].ID}, ids(second))

	third, _, done, err := repository.ListFeed(domain.RootFeed(channel), cursor, 2)
	req.NoError(err)

	// Then the feed is exhausted after the last message
	req.True(done)
	req.Equal([]uuid.UUID{stored[0].ID}, ids(third))
}

func Test_ListFeed_Exact_Page_Is_Done(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default())
	channel := domain.ChannelContainer(uuid.New())
	at := time.Now().UTC()
	for i := 0; i < 2; i++ {
		req.NoError(repository.StoreMessage(newDiskMessage(channel, uuid.New(), "msg", at.Add(time.Duration(i)*time.Second))))
	}

	messages, _, done, err := repository.ListFeed(domain.RootFeed(channel), "", 2)
	req.NoError(err)
	req.Len(messages, 2)
	req.True(done)
}

func Test_ListFeed_Skips_Removed_And_Replies(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default())
	channel := domain.ChannelContainer(uuid.New())
	at := time.Now().UTC()

	root := newDiskMessage(channel, uuid.New(), "root", at)
	removed := newDiskMessage(channel, uuid.New(), "gone", at.Add(time.Second))
	reply := newDiskMessage(channel, uuid.New(), "reply", at.Add(2*time.Second))
	reply.ParentID = lo.ToPtr(root.ID)
	for _, m := range []DiskMessage{root, removed, reply} {
		req.NoError(repository.StoreMessage(m))
	}
	removed.Removed = true
	req.NoError(repository.UpdateMessage(removed))

	// When listing the root feed
	messages, _, done, err := repository.ListFeed(domain.RootFeed(channel), "", 10)
	req.NoError(err)

	// Then only the live root message is listed
	req.True(done)
	req.Equal([]uuid.UUID{root.ID}, ids(messages))

	// And the reply lives in the thread feed
	replies, _, _, err := repository.ListFeed(domain.ThreadFeed(root.ID), "", 10)
	req.NoError(err)
	req.Equal([]uuid.UUID{reply.ID}, ids(replies))
}

func Test_ListFeed_Rejects_Garbage_Cursor(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default())

	_, _, _, err := repository.ListFeed(domain.RootFeed(domain.ChannelContainer(uuid.New())), "not-a-cursor", 10)
	req.ErrorIs(err, errors.ErrInvalidCursor)
}

func Test_ThreadStats(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default())
	channel := domain.ChannelContainer(uuid.New())
	at := time.Now().UTC()
	root := newDiskMessage(channel, uuid.New(), "root", at)
	req.NoError(repository.StoreMessage(root))

	stats, err := repository.ThreadStats(root.ID)
	req.NoError(err)
	req.Zero(stats.Count)
	req.Nil(stats.LastReply)

	var replies []DiskMessage
	for i := 1; i <= 3; i++ {
		r := newDiskMessage(channel, uuid.New(), "reply", at.Add(time.Duration(i)*time.Minute))
		r.ParentID = lo.ToPtr(root.ID)
		req.NoError(repository.StoreMessage(r))
		replies = append(replies, r)
	}
	// The latest reply is removed
	replies[2].Removed = true
	req.NoError(repository.UpdateMessage(replies[2]))

	stats, err = repository.ThreadStats(root.ID)
	req.NoError(err)
	req.Equal(2, stats.Count)
	req.Equal(replies[1].ID, stats.LastReply.ID)
}

func ids(messages []DiskMessage) []uuid.UUID {
	return lo.Map(messages, func(m DiskMessage, _ int) uuid.UUID { return m.ID })
}
