//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"fmt"
	"team-chat/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IUserRepository interface {
	CreateUser(email, name, hashedPassword string) (string, error)
	GetUserByEmail(email string) (User, error)
	GetUserByID(id string) (User, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

// User is the repository-level representation of an account.
type User struct {
	ID           string
	Email        string
	Name         string
	Image        string
	PasswordHash string
	CreatedAt    time.Time
}

// CreateUser persists the user under "user:{email}" with a "user-id:{id}" pointer.
// It returns the newly generated User ID.
func (u UserRepository) CreateUser(email, name, hashedPassword string) (string, error) {
	newID := uuid.New().String()
	user := User{
		ID:           newID,
		Email:        email,
		Name:         name,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	err := u.db.Update(func(txn *badger.Txn) error {
		key := []byte("user:" + email)
		if _, err := txn.Get(key); err == nil {
			return errors.ErrUserAlreadyExists
		}
		if err := txn.Set(key, encodeUser(user)); err != nil {
			return fmt.Errorf("store user: %w", err)
		}
		return txn.Set([]byte("user-id:"+newID), []byte(email))
	})
	if err != nil {
		return "", err
	}
	return newID, nil
}

func (u UserRepository) GetUserByEmail(email string) (User, error) {
	var user User
	err := u.db.View(func(txn *badger.Txn) error {
		var err error
		user, err = getUser(txn, email)
		return err
	})
	return user, err
}

func (u UserRepository) GetUserByID(id string) (User, error) {
	var user User
	err := u.db.View(func(txn *badger.Txn) error {
		return getValue(txn, []byte("user-id:"+id), errors.ErrUserNotFound, func(val []byte) error {
			var err error
			user, err = getUser(txn, string(val))
			return err
		})
	})
	return user, err
}

func getUser(txn *badger.Txn, email string) (User, error) {
	var user User
	err := getValue(txn, []byte("user:"+email), errors.ErrUserNotFound, func(val []byte) error {
		var err error
		user, err = decodeUser(val)
		return err
	})
	return user, err
}

func encodeUser(u User) []byte {
	var r record
	r.str(1, u.ID)
	r.str(2, u.Email)
	r.str(3, u.Name)
	r.str(4, u.Image)
	r.str(5, u.PasswordHash)
	r.time(6, u.CreatedAt)
	return r.b
}

func decodeUser(b []byte) (User, error) {
	f, err := decode(b)
	if err != nil {
		return User{}, err
	}
	return User{
		ID:           f.str(1),
		Email:        f.str(2),
		Name:         f.str(3),
		Image:        f.str(4),
		PasswordHash: f.str(5),
		CreatedAt:    f.time(6),
	}, nil
}
