//go:generate go run go.uber.org/mock/mockgen -source=reaction.go -destination=../mocks/mock_reaction_repository.go -package=mocks
package repositories

import (
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IReactionRepository interface {
	Toggle(messageID, memberID uuid.UUID, value string, at time.Time) (bool, error)
	ListByMessage(messageID uuid.UUID) ([]DiskReaction, error)
}

type ReactionRepository struct {
	db *badger.DB
}

func NewReactionRepository(db *badger.DB) ReactionRepository {
	return ReactionRepository{db: db}
}

type DiskReaction struct {
	MessageID uuid.UUID
	MemberID  uuid.UUID
	Value     string
	CreatedAt time.Time
}

// "reaction:{message_id}:{member_id}:{value}" holds the creation timestamp.
// One key per member and value makes duplicate reactions impossible.
func reactionKey(messageID, memberID uuid.UUID, value string) []byte {
	return []byte("reaction:" + messageID.String() + ":" + memberID.String() + ":" + value)
}

// Toggle adds the reaction of the member, or removes it if it already exists.
// It reports whether the reaction is now present.
func (r ReactionRepository) Toggle(messageID, memberID uuid.UUID, value string, at time.Time) (bool, error) {
	added := false
	err := r.db.Update(func(txn *badger.Txn) error {
		key := reactionKey(messageID, memberID, value)
		_, err := txn.Get(key)
		switch err {
		case nil:
			return txn.Delete(key)
		case badger.ErrKeyNotFound:
			added = true
			var rec record
			rec.time(1, at)
			return txn.Set(key, rec.b)
		default:
			return err
		}
	})
	return added, err
}

func (r ReactionRepository) ListByMessage(messageID uuid.UUID) ([]DiskReaction, error) {
	var reactions []DiskReaction
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte("reaction:" + messageID.String() + ":")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			parts := strings.SplitN(string(item.Key()[len(prefix):]), ":", 2)
			if len(parts) != 2 {
				continue
			}
			memberID, err := uuid.Parse(parts[0])
			if err != nil {
				return err
			}
			var createdAt time.Time
			err = item.Value(func(val []byte) error {
				f, err := decode(val)
				createdAt = f.time(1)
				return err
			})
			if err != nil {
				return err
			}
			reactions = append(reactions, DiskReaction{
				MessageID: messageID,
				MemberID:  memberID,
				Value:     parts[1],
				CreatedAt: createdAt,
			})
		}
		return nil
	})
	return lo.Filter(reactions, func(r DiskReaction, _ int) bool { return r.Value != "" }), err
}
