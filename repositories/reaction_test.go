package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_Toggle_Reaction(t *testing.T) {
	req := require.New(t)
	repository := NewReactionRepository(openDB(t))
	messageID, alice, bob := uuid.New(), uuid.New(), uuid.New()
	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	// Given two members reacting with the same value and one with another
	added, err := repository.Toggle(messageID, alice, "👍", at)
	req.NoError(err)
	req.True(added)
	_, err = repository.Toggle(messageID, bob, "👍", at.Add(time.Second))
	req.NoError(err)
	_, err = repository.Toggle(messageID, alice, "🎉", at.Add(2*time.Second))
	req.NoError(err)

	reactions, err := repository.ListByMessage(messageID)
	req.NoError(err)
	req.Len(reactions, 3)

	// When alice toggles the same value again
	added, err = repository.Toggle(messageID, alice, "👍", at.Add(3*time.Second))
	req.NoError(err)

	// Then her reaction is gone and the others remain
	req.False(added)
	reactions, err = repository.ListByMessage(messageID)
	req.NoError(err)
	req.Len(reactions, 2)
	for _, r := range reactions {
		req.False(r.MemberID == alice && r.Value == "👍")
	}
}

func Test_Reactions_Are_Scoped_To_Message(t *testing.T) {
	req := require.New(t)
	repository := NewReactionRepository(openDB(t))
	member := uuid.New()
	_, err := repository.Toggle(uuid.New(), member, "👍", time.Now())
	req.NoError(err)

	reactions, err := repository.ListByMessage(uuid.New())
	req.NoError(err)
	req.Empty(reactions)
}
