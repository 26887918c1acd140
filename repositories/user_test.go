package repositories

import (
	"team-chat/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Create_And_Get_User(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openDB(t))

	id, err := repository.CreateUser("ada@example.com", "Ada", "hash")
	req.NoError(err)

	byEmail, err := repository.GetUserByEmail("ada@example.com")
	req.NoError(err)
	req.Equal(id, byEmail.ID)
	req.Equal("Ada", byEmail.Name)

	byID, err := repository.GetUserByID(id)
	req.NoError(err)
	req.Equal(byEmail, byID)

	_, err = repository.CreateUser("ada@example.com", "Other", "hash")
	req.ErrorIs(err, errors.ErrUserAlreadyExists)

	_, err = repository.GetUserByID("nope")
	req.ErrorIs(err, errors.ErrUserNotFound)
}
