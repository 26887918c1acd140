package client

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"team-chat/errors"

	"github.com/google/uuid"
)

const sendFailedToast = "Failed to send message"

// Attachment is an image picked in the composer.
type Attachment struct {
	ContentType string
	Data        []byte
}

// Draft is what the user typed, addressed to a channel, a conversation or a thread.
type Draft struct {
	WorkspaceID    uuid.UUID
	ChannelID      *uuid.UUID
	ConversationID *uuid.UUID
	ParentID       *uuid.UUID
	Body           string
	Image          *Attachment
}

// Composer submits drafts. The editor stays disabled while a submission is
// in flight and a second Submit is refused instead of queued.
type Composer struct {
	log      *slog.Logger
	backend  MessageBackend
	uploader Uploader
	notifier Notifier
	inFlight atomic.Bool
}

func NewComposer(log *slog.Logger, backend MessageBackend, uploader Uploader, notifier Notifier) *Composer {
	return &Composer{log: log, backend: backend, uploader: uploader, notifier: notifier}
}

// Disabled reports whether the editor must refuse input.
func (c *Composer) Disabled() bool {
	return c.inFlight.Load()
}

// Submit uploads the image if any, then creates the message.
// A failed step stops the ones after it and ends in a toast.
func (c *Composer) Submit(ctx context.Context, draft Draft) (uuid.UUID, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return uuid.Nil, errors.ErrSubmitInFlight
	}
	defer c.inFlight.Store(false)

	id, err := c.submit(ctx, draft)
	if err != nil {
		c.log.Warn("Submit failed", "error", err)
		c.notifier.Error(sendFailedToast)
		return uuid.Nil, err
	}
	return id, nil
}

func (c *Composer) submit(ctx context.Context, draft Draft) (uuid.UUID, error) {
	message := OutgoingMessage{
		WorkspaceID:    draft.WorkspaceID,
		ChannelID:      draft.ChannelID,
		ConversationID: draft.ConversationID,
		ParentID:       draft.ParentID,
		Body:           draft.Body,
	}
	if draft.Image != nil {
		storageID, err := c.upload(ctx, *draft.Image)
		if err != nil {
			return uuid.Nil, err
		}
		message.Image = storageID
	}
	return c.backend.CreateMessage(ctx, message)
}

func (c *Composer) upload(ctx context.Context, image Attachment) (string, error) {
	url, err := c.backend.GenerateUploadURL(ctx)
	if err != nil {
		return "", fmt.Errorf("generate upload url: %w", err)
	}
	if strings.TrimSpace(url) == "" {
		return "", errors.ErrUploadURLNotFound
	}
	return c.uploader.Upload(ctx, url, image.ContentType, bytes.NewReader(image.Data))
}
