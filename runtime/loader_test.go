package runtime

import (
	"log/slog"
	"team-chat/errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestWordListLoader_Load(t *testing.T) {
	req := require.New(t)
	fsys := fstest.MapFS{
		"words/en.txt":    {Data: []byte("# english\nBadger\r\nsnake\n\n")},
		"words/fr.txt":    {Data: []byte("blaireau\nbadger\n")},
		"words/README.md": {Data: []byte("ignored")},
	}

	list, err := NewWordListLoader(fsys).Load("words")

	req.NoError(err)
	req.Equal([]string{"badger", "blaireau", "snake"}, list.Words)
	req.Equal([]string{"en", "fr"}, list.Languages)
}

func TestWordListLoader_Empty(t *testing.T) {
	req := require.New(t)
	fsys := fstest.MapFS{"words/en.txt": {Data: []byte("# nothing yet\n")}}

	_, err := NewWordListLoader(fsys).Load("words")
	req.ErrorIs(err, errors.ErrEmptyWords)

	_, err = NewWordListLoader(fsys).Load("missing")
	req.Error(err)
}

func TestLoadModerator_Embedded(t *testing.T) {
	req := require.New(t)
	moderator, err := LoadModerator(slog.New(slog.DiscardHandler), '#')
	req.NoError(err)

	content, _ := moderator.Censor("all good here")
	req.Equal("all good here", content)
}
