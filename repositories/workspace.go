//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=../mocks/mock_workspace_repository.go -package=mocks
package repositories

import (
	"sort"
	"team-chat/domain"
	"team-chat/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IWorkspaceRepository interface {
	CreateWorkspace(workspace domain.Workspace) error
	GetWorkspace(id uuid.UUID) (domain.Workspace, error)
	UpdateWorkspace(workspace domain.Workspace) error
	RemoveWorkspace(id uuid.UUID) error
	CreateChannel(channel domain.Channel) error
	GetChannel(id uuid.UUID) (domain.Channel, error)
	UpdateChannel(channel domain.Channel) error
	RemoveChannel(channel domain.Channel) error
	ListChannels(workspaceID uuid.UUID) ([]domain.Channel, error)
	GetOrCreateConversation(conversation domain.Conversation) (domain.Conversation, error)
	GetConversation(id uuid.UUID) (domain.Conversation, error)
}

// WorkspaceRepository stores workspaces with the channels and conversations they scope.
type WorkspaceRepository struct {
	db *badger.DB
}

func NewWorkspaceRepository(db *badger.DB) WorkspaceRepository {
	return WorkspaceRepository{db: db}
}

func workspaceKey(id uuid.UUID) []byte { return []byte("workspace:" + id.String()) }

func channelKey(id uuid.UUID) []byte { return []byte("channel:" + id.String()) }

func channelIndexKey(workspaceID, id uuid.UUID) []byte {
	return []byte("channel-ws:" + workspaceID.String() + ":" + id.String())
}

func conversationKey(id uuid.UUID) []byte { return []byte("conversation:" + id.String()) }

// The pair is ordered so that both members resolve to the same key.
func conversationPairKey(workspaceID, one, two uuid.UUID) []byte {
	a, b := one.String(), two.String()
	if b < a {
		a, b = b, a
	}
	return []byte("conversation-pair:" + workspaceID.String() + ":" + a + ":" + b)
}

func (r WorkspaceRepository) CreateWorkspace(workspace domain.Workspace) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(workspaceKey(workspace.ID), encodeWorkspace(workspace))
	})
}

func (r WorkspaceRepository) GetWorkspace(id uuid.UUID) (domain.Workspace, error) {
	var workspace domain.Workspace
	err := r.db.View(func(txn *badger.Txn) error {
		return getValue(txn, workspaceKey(id), errors.ErrWorkspaceNotFound, func(val []byte) error {
			var err error
			workspace, err = decodeWorkspace(val)
			return err
		})
	})
	return workspace, err
}

func (r WorkspaceRepository) UpdateWorkspace(workspace domain.Workspace) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if err := exists(txn, workspaceKey(workspace.ID), errors.ErrWorkspaceNotFound); err != nil {
			return err
		}
		return txn.Set(workspaceKey(workspace.ID), encodeWorkspace(workspace))
	})
}

// RemoveWorkspace drops the workspace and its channel index.
// Members are removed by the caller through the member repository.
func (r WorkspaceRepository) RemoveWorkspace(id uuid.UUID) error {
	channels, err := r.ListChannels(id)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		for _, c := range channels {
			if err := txn.Delete(channelKey(c.ID)); err != nil {
				return err
			}
			if err := txn.Delete(channelIndexKey(id, c.ID)); err != nil {
				return err
			}
		}
		return txn.Delete(workspaceKey(id))
	})
}

func (r WorkspaceRepository) CreateChannel(channel domain.Channel) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(channelKey(channel.ID), encodeChannel(channel)); err != nil {
			return err
		}
		return txn.Set(channelIndexKey(channel.WorkspaceID, channel.ID), nil)
	})
}

func (r WorkspaceRepository) GetChannel(id uuid.UUID) (domain.Channel, error) {
	var channel domain.Channel
	err := r.db.View(func(txn *badger.Txn) error {
		return getValue(txn, channelKey(id), errors.ErrChannelNotFound, func(val []byte) error {
			var err error
			channel, err = decodeChannel(val)
			return err
		})
	})
	return channel, err
}

func (r WorkspaceRepository) UpdateChannel(channel domain.Channel) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if err := exists(txn, channelKey(channel.ID), errors.ErrChannelNotFound); err != nil {
			return err
		}
		return txn.Set(channelKey(channel.ID), encodeChannel(channel))
	})
}

func (r WorkspaceRepository) RemoveChannel(channel domain.Channel) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(channelKey(channel.ID)); err != nil {
			return err
		}
		return txn.Delete(channelIndexKey(channel.WorkspaceID, channel.ID))
	})
}

// ListChannels returns the channels of a workspace, oldest first.
func (r WorkspaceRepository) ListChannels(workspaceID uuid.UUID) ([]domain.Channel, error) {
	var channels []domain.Channel
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte("channel-ws:" + workspaceID.String() + ":")
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			id, err := uuid.Parse(string(it.Item().Key()[len(prefix):]))
			if err != nil {
				return err
			}
			err = getValue(txn, channelKey(id), errors.ErrChannelNotFound, func(val []byte) error {
				channel, err := decodeChannel(val)
				channels = append(channels, channel)
				return err
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	sort.SliceStable(channels, func(i, j int) bool {
		return channels[i].CreatedAt.Before(channels[j].CreatedAt)
	})
	return channels, err
}

// GetOrCreateConversation returns the existing conversation between the two
// members of the given one, or stores the given one.
func (r WorkspaceRepository) GetOrCreateConversation(conversation domain.Conversation) (domain.Conversation, error) {
	result := conversation
	err := r.db.Update(func(txn *badger.Txn) error {
		pair := conversationPairKey(conversation.WorkspaceID, conversation.MemberOneID, conversation.MemberTwoID)
		item, err := txn.Get(pair)
		switch err {
		case nil:
			return item.Value(func(val []byte) error {
				id, err := uuid.FromBytes(val)
				if err != nil {
					return err
				}
				return getValue(txn, conversationKey(id), errors.ErrConversationNotFound, func(val []byte) error {
					result, err = decodeConversation(val)
					return err
				})
			})
		case badger.ErrKeyNotFound:
			if err := txn.Set(conversationKey(conversation.ID), encodeConversation(conversation)); err != nil {
				return err
			}
			return txn.Set(pair, conversation.ID[:])
		default:
			return err
		}
	})
	return result, err
}

func (r WorkspaceRepository) GetConversation(id uuid.UUID) (domain.Conversation, error) {
	var conversation domain.Conversation
	err := r.db.View(func(txn *badger.Txn) error {
		return getValue(txn, conversationKey(id), errors.ErrConversationNotFound, func(val []byte) error {
			var err error
			conversation, err = decodeConversation(val)
			return err
		})
	})
	return conversation, err
}

// getValue reads key and maps a missing key to notFound.
func getValue(txn *badger.Txn, key []byte, notFound error, fn func(val []byte) error) error {
	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return notFound
	}
	if err != nil {
		return err
	}
	return item.Value(fn)
}

func exists(txn *badger.Txn, key []byte, notFound error) error {
	_, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return notFound
	}
	return err
}

func encodeWorkspace(w domain.Workspace) []byte {
	var r record
	r.id(1, w.ID)
	r.str(2, w.Name)
	r.str(3, w.JoinCode)
	r.str(4, w.OwnerID)
	r.time(5, w.CreatedAt)
	return r.b
}

func decodeWorkspace(b []byte) (domain.Workspace, error) {
	f, err := decode(b)
	if err != nil {
		return domain.Workspace{}, err
	}
	return domain.Workspace{
		ID:        f.id(1),
		Name:      f.str(2),
		JoinCode:  f.str(3),
		OwnerID:   f.str(4),
		CreatedAt: f.time(5),
	}, nil
}

func encodeChannel(c domain.Channel) []byte {
	var r record
	r.id(1, c.ID)
	r.id(2, c.WorkspaceID)
	r.str(3, c.Name)
	r.time(4, c.CreatedAt)
	return r.b
}

func decodeChannel(b []byte) (domain.Channel, error) {
	f, err := decode(b)
	if err != nil {
		return domain.Channel{}, err
	}
	return domain.Channel{
		ID:          f.id(1),
		WorkspaceID: f.id(2),
		Name:        f.str(3),
		CreatedAt:   f.time(4),
	}, nil
}

func encodeConversation(c domain.Conversation) []byte {
	var r record
	r.id(1, c.ID)
	r.id(2, c.WorkspaceID)
	r.id(3, c.MemberOneID)
	r.id(4, c.MemberTwoID)
	return r.b
}

func decodeConversation(b []byte) (domain.Conversation, error) {
	f, err := decode(b)
	if err != nil {
		return domain.Conversation{}, err
	}
	return domain.Conversation{
		ID:          f.id(1),
		WorkspaceID: f.id(2),
		MemberOneID: f.id(3),
		MemberTwoID: f.id(4),
	}, nil
}
