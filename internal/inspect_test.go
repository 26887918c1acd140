package internal

import (
	"log/slog"
	"team-chat/domain"
	"team-chat/repositories"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestKeyType(t *testing.T) {
	req := require.New(t)
	req.Equal("MESSAGE", KeyType("message:42"))
	req.Equal("UPLOAD_TOKEN", KeyType("upload-token:abc"))
	req.Equal("UNKNOWN", KeyType("garbage"))
}

func TestMessageMapper(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	// Given a removed message with an image
	message := repositories.DiskMessage{
		ID:          uuid.New(),
		WorkspaceID: uuid.New(),
		Container:   domain.ChannelContainer(uuid.New()),
		MemberID:    uuid.New(),
		Body:        "hello",
		StorageID:   "img-1",
		CreatedAt:   time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		Removed:     true,
	}
	req.NoError(repositories.NewMessageRepository(db, slog.Default()).StoreMessage(message))

	var raw []byte
	req.NoError(db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("message:" + message.ID.String()))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	}))

	// When the inspector maps it
	row := MessageMapper("message:"+message.ID.String(), raw)

	// Then the row shows the feed and the flags
	req.Equal("MESSAGE", row.Type)
	req.Contains(row.Detail, string(message.Feed()))
	req.Contains(row.Detail, "hello [removed,image:img-1]")

	// And foreign records only get their family
	other := MessageMapper("user:alice@example.com", []byte("x"))
	req.Equal("USER", other.Type)
}
