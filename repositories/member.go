//go:generate go run go.uber.org/mock/mockgen -source=member.go -destination=../mocks/mock_member_repository.go -package=mocks
package repositories

import (
	"sort"
	"team-chat/domain"
	"team-chat/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IMemberRepository interface {
	CreateMember(member domain.Member) error
	GetMember(id uuid.UUID) (domain.Member, error)
	GetMemberByUser(workspaceID uuid.UUID, userID string) (domain.Member, error)
	ListMembers(workspaceID uuid.UUID) ([]domain.Member, error)
	ListWorkspaceIDs(userID string) ([]uuid.UUID, error)
	UpdateMember(member domain.Member) error
	RemoveMember(member domain.Member) error
}

// MemberRepository keeps three keys per member:
// "member:{id}" for the record,
// "member-ws:{workspace}:{user}" to resolve a user inside a workspace,
// "member-user:{user}:{workspace}" to list the workspaces of a user.
type MemberRepository struct {
	db *badger.DB
}

func NewMemberRepository(db *badger.DB) MemberRepository {
	return MemberRepository{db: db}
}

func memberKey(id uuid.UUID) []byte { return []byte("member:" + id.String()) }

func memberWorkspaceKey(workspaceID uuid.UUID, userID string) []byte {
	return []byte("member-ws:" + workspaceID.String() + ":" + userID)
}

func memberUserKey(userID string, workspaceID uuid.UUID) []byte {
	return []byte("member-user:" + userID + ":" + workspaceID.String())
}

func (r MemberRepository) CreateMember(member domain.Member) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(memberWorkspaceKey(member.WorkspaceID, member.UserID)); err == nil {
			return errors.ErrAlreadyMember
		}
		if err := txn.Set(memberKey(member.ID), encodeMember(member)); err != nil {
			return err
		}
		if err := txn.Set(memberWorkspaceKey(member.WorkspaceID, member.UserID), member.ID[:]); err != nil {
			return err
		}
		return txn.Set(memberUserKey(member.UserID, member.WorkspaceID), member.ID[:])
	})
}

func (r MemberRepository) GetMember(id uuid.UUID) (domain.Member, error) {
	var member domain.Member
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		member, err = getMember(txn, id)
		return err
	})
	return member, err
}

// GetMemberByUser returns ErrNotMember when the user never joined the workspace.
func (r MemberRepository) GetMemberByUser(workspaceID uuid.UUID, userID string) (domain.Member, error) {
	var member domain.Member
	err := r.db.View(func(txn *badger.Txn) error {
		return getValue(txn, memberWorkspaceKey(workspaceID, userID), errors.ErrNotMember, func(val []byte) error {
			id, err := uuid.FromBytes(val)
			if err != nil {
				return err
			}
			member, err = getMember(txn, id)
			return err
		})
	})
	return member, err
}

// ListMembers returns the members of a workspace, oldest first.
func (r MemberRepository) ListMembers(workspaceID uuid.UUID) ([]domain.Member, error) {
	var members []domain.Member
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte("member-ws:" + workspaceID.String() + ":")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				id, err := uuid.FromBytes(val)
				if err != nil {
					return err
				}
				member, err := getMember(txn, id)
				members = append(members, member)
				return err
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].JoinedAt.Before(members[j].JoinedAt)
	})
	return members, err
}

func (r MemberRepository) ListWorkspaceIDs(userID string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte("member-user:" + userID + ":")
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			id, err := uuid.Parse(string(it.Item().Key()[len(prefix):]))
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	return ids, err
}

func (r MemberRepository) UpdateMember(member domain.Member) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if err := exists(txn, memberKey(member.ID), errors.ErrMemberNotFound); err != nil {
			return err
		}
		return txn.Set(memberKey(member.ID), encodeMember(member))
	})
}

func (r MemberRepository) RemoveMember(member domain.Member) error {
	return r.db.Update(func(txn *badger.Txn) error {
		for _, key := range [][]byte{
			memberKey(member.ID),
			memberWorkspaceKey(member.WorkspaceID, member.UserID),
			memberUserKey(member.UserID, member.WorkspaceID),
		} {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

func getMember(txn *badger.Txn, id uuid.UUID) (domain.Member, error) {
	var member domain.Member
	err := getValue(txn, memberKey(id), errors.ErrMemberNotFound, func(val []byte) error {
		var err error
		member, err = decodeMember(val)
		return err
	})
	return member, err
}

func encodeMember(m domain.Member) []byte {
	var r record
	r.id(1, m.ID)
	r.id(2, m.WorkspaceID)
	r.str(3, m.UserID)
	r.str(4, string(m.Role))
	r.str(5, m.Name)
	r.str(6, m.Image)
	r.time(7, m.JoinedAt)
	return r.b
}

func decodeMember(b []byte) (domain.Member, error) {
	f, err := decode(b)
	if err != nil {
		return domain.Member{}, err
	}
	return domain.Member{
		ID:          f.id(1),
		WorkspaceID: f.id(2),
		UserID:      f.str(3),
		Role:        domain.Role(f.str(4)),
		Name:        f.str(5),
		Image:       f.str(6),
		JoinedAt:    f.time(7),
	}, nil
}
