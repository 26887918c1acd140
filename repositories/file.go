//go:generate go run go.uber.org/mock/mockgen -source=file.go -destination=../mocks/mock_file_repository.go -package=mocks
package repositories

import (
	"team-chat/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type IFileRepository interface {
	SaveUploadToken(token, userID string, ttl time.Duration) error
	ConsumeUploadToken(token string) (string, error)
	StoreFile(file StoredFile) error
	GetFile(storageID string) (StoredFile, error)
}

type FileRepository struct {
	db *badger.DB
}

func NewFileRepository(db *badger.DB) FileRepository {
	return FileRepository{db: db}
}

type StoredFile struct {
	StorageID   string
	ContentType string
	OwnerID     string
	Data        []byte
	CreatedAt   time.Time
}

func uploadTokenKey(token string) []byte { return []byte("upload-token:" + token) }

func fileKey(storageID string) []byte { return []byte("file:" + storageID) }

// SaveUploadToken lets badger expire unused tokens on its own.
func (r FileRepository) SaveUploadToken(token, userID string, ttl time.Duration) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(uploadTokenKey(token), []byte(userID)).WithTTL(ttl))
	})
}

// ConsumeUploadToken deletes the token and returns the user it was issued to.
// A token is valid for a single upload.
func (r FileRepository) ConsumeUploadToken(token string) (string, error) {
	var userID string
	err := r.db.Update(func(txn *badger.Txn) error {
		err := getValue(txn, uploadTokenKey(token), errors.ErrUploadTokenInvalid, func(val []byte) error {
			userID = string(val)
			return nil
		})
		if err != nil {
			return err
		}
		return txn.Delete(uploadTokenKey(token))
	})
	return userID, err
}

func (r FileRepository) StoreFile(file StoredFile) error {
	var rec record
	rec.str(1, file.StorageID)
	rec.str(2, file.ContentType)
	rec.str(3, file.OwnerID)
	rec.time(4, file.CreatedAt)
	if len(file.Data) > 0 {
		rec.bytes(5, file.Data)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(fileKey(file.StorageID), rec.b)
	})
}

func (r FileRepository) GetFile(storageID string) (StoredFile, error) {
	var file StoredFile
	err := r.db.View(func(txn *badger.Txn) error {
		return getValue(txn, fileKey(storageID), errors.ErrFileNotFound, func(val []byte) error {
			f, err := decode(val)
			if err != nil {
				return err
			}
			file = StoredFile{
				StorageID:   f.str(1),
				ContentType: f.str(2),
				OwnerID:     f.str(3),
				CreatedAt:   f.time(4),
				Data:        append([]byte(nil), f.bytes[5]...),
			}
			return nil
		})
	})
	return file, err
}
