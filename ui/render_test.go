package ui_test

import (
	"bytes"
	"strings"
	"team-chat/client"
	"team-chat/domain"
	"team-chat/ui"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Feed(t *testing.T) {
	req := require.New(t)
	now := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	alice := uuid.New()
	lastReply := now.Add(-10 * time.Minute)

	// Given two messages from yesterday close together and one from today, newest first
	messages := []domain.Message{
		{ID: uuid.New(), MemberID: alice, AuthorName: "Alice", Body: "today",
			CreatedAt: now.Add(-time.Hour),
			Thread:    domain.ThreadSummary{Count: 2, LastReplyAt: &lastReply, LastName: "Bob"}},
		{ID: uuid.New(), MemberID: alice, AuthorName: "Alice", Body: "second",
			CreatedAt: time.Date(2024, 5, 1, 9, 3, 0, 0, time.UTC),
			Reactions: []domain.ReactionAggregate{{Value: "👍", Count: 2}}},
		{ID: uuid.New(), MemberID: alice, AuthorName: "Alice", Body: "first",
			CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)},
	}

	// When rendering
	var out bytes.Buffer
	ui.NewRenderer(&out, time.UTC, false).WithClock(func() time.Time { return now }).
		Feed("general", messages, client.Exhausted)
	text := out.String()

	// Then days are labelled oldest first
	req.Less(strings.Index(text, "Yesterday"), strings.Index(text, "Today"))
	req.Less(strings.Index(text, "first"), strings.Index(text, "second"))

	// And the compact message repeats neither time nor author
	req.Contains(text, "09:00 AM")
	req.NotContains(text, "09:03 AM")
	req.Equal(2, strings.Count(text, "Alice"))

	// And reactions and the thread bar are shown
	req.Contains(text, "👍 2")
	req.Contains(text, "2 replies  Last reply 10 minutes ago by Bob")
}

func TestRenderer_EmptyAndLoading(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	r := ui.NewRenderer(&out, time.UTC, false)

	r.Feed("general", nil, client.LoadingFirstPage)
	req.Contains(out.String(), "Loading...")

	out.Reset()
	r.Feed("general", nil, client.Exhausted)
	req.Contains(out.String(), "No messages yet.")
}

func TestRenderer_Toasts(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	ui.NewRenderer(&out, time.UTC, false).Toasts([]client.Toast{
		{Level: client.ToastError, Message: "Failed to send message"},
	})
	req.Equal("[error] Failed to send message\n", out.String())
}

func TestAgo(t *testing.T) {
	req := require.New(t)
	req.Equal("less than a minute ago", ui.Ago(20*time.Second))
	req.Equal("1 minute ago", ui.Ago(time.Minute))
	req.Equal("about 3 hours ago", ui.Ago(3*time.Hour+5*time.Minute))
	req.Equal("2 days ago", ui.Ago(50*time.Hour))
}
