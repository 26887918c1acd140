//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"team-chat/domain"
	"team-chat/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protowire"
)

type IMessageRepository interface {
	StoreMessage(message DiskMessage) error
	GetMessage(id uuid.UUID) (DiskMessage, error)
	UpdateMessage(message DiskMessage) error
	ListFeed(feed domain.FeedKey, cursor string, limit int) ([]DiskMessage, string, bool, error)
	ThreadStats(parentID uuid.UUID) (ThreadStats, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

// DiskMessage is a message as persisted, without any hydrated data.
type DiskMessage struct {
	ID          uuid.UUID
	WorkspaceID uuid.UUID
	Container   domain.Container
	ParentID    *uuid.UUID
	MemberID    uuid.UUID
	Body        string
	StorageID   string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	Removed     bool
}

func (m DiskMessage) Feed() domain.FeedKey {
	if m.ParentID != nil {
		return domain.ThreadFeed(*m.ParentID)
	}
	return domain.RootFeed(m.Container)
}

// ThreadStats describes the live replies of a root message.
type ThreadStats struct {
	Count     int
	LastReply *DiskMessage
}

func messageKey(id uuid.UUID) []byte {
	return []byte("message:" + id.String())
}

func feedPrefix(feed domain.FeedKey) string {
	return "feed:" + string(feed) + ":"
}

// StoreMessage persists the record under "message:{id}" and indexes it
// under "feed:{feed}:{timestamp_padded}:{id}".
// The uuid suffix keeps two messages created at the same nanosecond apart.
func (r MessageRepository) StoreMessage(message DiskMessage) error {
	data := encodeMessage(message)
	index := feedPrefix(message.Feed()) + tsKey(message.CreatedAt) + ":" + message.ID.String()
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(messageKey(message.ID), data); err != nil {
			return err
		}
		return txn.Set([]byte(index), message.ID[:])
	})
}

func (r MessageRepository) GetMessage(id uuid.UUID) (DiskMessage, error) {
	var message DiskMessage
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		message, err = getMessage(txn, id)
		return err
	})
	return message, err
}

// UpdateMessage overwrites the record. CreatedAt and the feed never change,
// so the index entry stays valid.
func (r MessageRepository) UpdateMessage(message DiskMessage) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(messageKey(message.ID)); err != nil {
			if err == badger.ErrKeyNotFound {
				return errors.ErrMessageNotFound
			}
			return err
		}
		return txn.Set(messageKey(message.ID), encodeMessage(message))
	})
}

// ListFeed walks a feed from newest to oldest, starting strictly after cursor.
// Removed messages are skipped and do not count toward limit.
// The returned cursor is opaque to callers; isDone reports that no older
// live message remains.
func (r MessageRepository) ListFeed(feed domain.FeedKey, cursor string, limit int) ([]DiskMessage, string, bool, error) {
	if limit <= 0 {
		return nil, cursor, false, nil
	}
	if cursor != "" && !validCursor(cursor) {
		return nil, "", false, errors.ErrInvalidCursor
	}
	var messages []DiskMessage
	var lastKey string
	isDone := true

	err := r.db.View(func(txn *badger.Txn) error {
		prefixStr := feedPrefix(feed)
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case "":
			// Start past the newest possible entry and walk back
			seekKey = append([]byte(prefixStr), []byte("9999999999999999999~")...)
		default:
			seekKey = append([]byte(prefixStr), []byte(cursor)...)
		}
		it.Seek(seekKey)
		if cursor != "" && it.ValidForPrefix(prefix) && bytes.Equal(it.Item().Key(), seekKey) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var id uuid.UUID
			err := item.Value(func(val []byte) error {
				var err error
				id, err = uuid.FromBytes(val)
				return err
			})
			if err != nil {
				return err
			}
			message, err := getMessage(txn, id)
			if err != nil {
				return err
			}
			if message.Removed {
				continue
			}
			if len(messages) == limit {
				isDone = false
				r.log.Debug(fmt.Sprintf("Maximum of %d message reached", limit))
				break
			}
			messages = append(messages, message)
			lastKey = string(item.KeyCopy(nil)[len(prefixStr):])
		}
		return nil
	})
	if err != nil {
		return nil, "", false, err
	}
	if lastKey == "" {
		lastKey = cursor
	}
	return messages, lastKey, isDone, nil
}

// ThreadStats counts live replies and finds the most recent one.
func (r MessageRepository) ThreadStats(parentID uuid.UUID) (ThreadStats, error) {
	var stats ThreadStats
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(feedPrefix(domain.ThreadFeed(parentID)))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(append(append([]byte{}, prefix...), 0xFF)); it.ValidForPrefix(prefix); it.Next() {
			var id uuid.UUID
			err := it.Item().Value(func(val []byte) error {
				var err error
				id, err = uuid.FromBytes(val)
				return err
			})
			if err != nil {
				return err
			}
			reply, err := getMessage(txn, id)
			if err != nil {
				return err
			}
			if reply.Removed {
				continue
			}
			if stats.LastReply == nil {
				stats.LastReply = &reply
			}
			stats.Count++
		}
		return nil
	})
	return stats, err
}

func getMessage(txn *badger.Txn, id uuid.UUID) (DiskMessage, error) {
	item, err := txn.Get(messageKey(id))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return DiskMessage{}, errors.ErrMessageNotFound
		}
		return DiskMessage{}, err
	}
	var message DiskMessage
	err = item.Value(func(val []byte) error {
		message, err = decodeMessage(val)
		return err
	})
	return message, err
}

// cursor is "{timestamp_padded}:{uuid}"
func validCursor(cursor string) bool {
	ts, id, ok := strings.Cut(cursor, ":")
	if !ok || len(ts) != 19 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

const (
	messageFieldID protowire.Number = iota + 1
	messageFieldWorkspace
	messageFieldContainerKind
	messageFieldContainerID
	messageFieldParent
	messageFieldMember
	messageFieldBody
	messageFieldStorage
	messageFieldCreatedAt
	messageFieldUpdatedAt
	messageFieldRemoved
)

func encodeMessage(m DiskMessage) []byte {
	var r record
	r.id(messageFieldID, m.ID)
	r.id(messageFieldWorkspace, m.WorkspaceID)
	r.str(messageFieldContainerKind, string(m.Container.Kind))
	r.id(messageFieldContainerID, m.Container.ID)
	if m.ParentID != nil {
		r.id(messageFieldParent, *m.ParentID)
	}
	r.id(messageFieldMember, m.MemberID)
	r.str(messageFieldBody, m.Body)
	r.str(messageFieldStorage, m.StorageID)
	r.time(messageFieldCreatedAt, m.CreatedAt)
	if m.UpdatedAt != nil {
		r.time(messageFieldUpdatedAt, *m.UpdatedAt)
	}
	r.bool(messageFieldRemoved, m.Removed)
	return r.b
}

// DecodeMessage reads the value stored under a "message:{id}" key.
func DecodeMessage(b []byte) (DiskMessage, error) {
	return decodeMessage(b)
}

func decodeMessage(b []byte) (DiskMessage, error) {
	f, err := decode(b)
	if err != nil {
		return DiskMessage{}, err
	}
	return DiskMessage{
		ID:          f.id(messageFieldID),
		WorkspaceID: f.id(messageFieldWorkspace),
		Container: domain.Container{
			Kind: domain.ContainerKind(f.str(messageFieldContainerKind)),
			ID:   f.id(messageFieldContainerID),
		},
		ParentID:  f.optionalID(messageFieldParent),
		MemberID:  f.id(messageFieldMember),
		Body:      f.str(messageFieldBody),
		StorageID: f.str(messageFieldStorage),
		CreatedAt: f.time(messageFieldCreatedAt),
		UpdatedAt: f.optionalTime(messageFieldUpdatedAt),
		Removed:   f.bool(messageFieldRemoved),
	}, nil
}
