package repositories

import (
	"team-chat/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Upload_Token_Is_Single_Use(t *testing.T) {
	req := require.New(t)
	repository := NewFileRepository(openDB(t))
	req.NoError(repository.SaveUploadToken("token-1", "user-1", time.Minute))

	userID, err := repository.ConsumeUploadToken("token-1")
	req.NoError(err)
	req.Equal("user-1", userID)

	_, err = repository.ConsumeUploadToken("token-1")
	req.ErrorIs(err, errors.ErrUploadTokenInvalid)
}

func Test_Store_And_Get_File(t *testing.T) {
	req := require.New(t)
	repository := NewFileRepository(openDB(t))
	file := StoredFile{
		StorageID:   "abc",
		ContentType: "image/png",
		OwnerID:     "user-1",
		Data:        []byte{0x89, 'P', 'N', 'G'},
		CreatedAt:   time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}
	req.NoError(repository.StoreFile(file))

	fetched, err := repository.GetFile("abc")
	req.NoError(err)
	req.Equal(file, fetched)

	_, err = repository.GetFile("missing")
	req.ErrorIs(err, errors.ErrFileNotFound)
}
