package client_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"team-chat/client"
	"team-chat/errors"
	"team-chat/mocks"
	"testing"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type composerFixture struct {
	composer *client.Composer
	backend  *mocks.MockMessageBackend
	uploader *mocks.MockUploader
	notifier *client.LogNotifier
}

func newComposer(t *testing.T) composerFixture {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	f := composerFixture{
		backend:  mocks.NewMockMessageBackend(ctrl),
		uploader: mocks.NewMockUploader(ctrl),
		notifier: client.NewLogNotifier(log, 5),
	}
	f.composer = client.NewComposer(log, f.backend, f.uploader, f.notifier)
	return f
}

func draft(image *client.Attachment) client.Draft {
	channelID := uuid.New()
	return client.Draft{WorkspaceID: uuid.New(), ChannelID: &channelID, Body: "hello", Image: image}
}

func TestComposer_SubmitWithImage(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newComposer(t)
	d := draft(&client.Attachment{ContentType: "image/png", Data: []byte("png")})
	id := uuid.New()

	// Given the upload succeeds
	gomock.InOrder(
		f.backend.EXPECT().GenerateUploadURL(ctx).Return("http://files/upload/t1", nil),
		f.uploader.EXPECT().Upload(ctx, "http://files/upload/t1", "image/png", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, body io.Reader) (string, error) {
				data, err := io.ReadAll(body)
				req.NoError(err)
				req.Equal("png", string(data))
				return "storage-1", nil
			}),
		// Then the message references the stored image
		f.backend.EXPECT().CreateMessage(ctx, client.OutgoingMessage{
			WorkspaceID: d.WorkspaceID,
			ChannelID:   d.ChannelID,
			Body:        "hello",
			Image:       "storage-1",
		}).Return(id, nil),
	)

	// When submitting
	got, err := f.composer.Submit(ctx, d)
	req.NoError(err)
	req.Equal(id, got)
	req.False(f.composer.Disabled())
	req.Empty(f.notifier.Toasts())
}

func TestComposer_UploadFailureSkipsCreate(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newComposer(t)

	// Given the upload answers with a non-OK status
	f.backend.EXPECT().GenerateUploadURL(ctx).Return("http://files/upload/t1", nil)
	f.uploader.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", fmt.Errorf("%w: status 415", errors.ErrUploadFailed))
	f.backend.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Times(0)

	// When submitting
	_, err := f.composer.Submit(ctx, draft(&client.Attachment{ContentType: "image/png", Data: []byte("x")}))

	// Then no message is created and a toast tells the user
	req.ErrorIs(err, errors.ErrUploadFailed)
	toasts := f.notifier.Toasts()
	req.Len(toasts, 1)
	req.Equal(client.ToastError, toasts[0].Level)
	req.Equal("Failed to send message", toasts[0].Message)
	req.False(f.composer.Disabled())
}

func TestComposer_EmptyUploadURL(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newComposer(t)

	f.backend.EXPECT().GenerateUploadURL(ctx).Return("", nil)
	f.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.backend.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Times(0)

	_, err := f.composer.Submit(ctx, draft(&client.Attachment{ContentType: "image/png"}))
	req.ErrorIs(err, errors.ErrUploadURLNotFound)
}

func TestComposer_RefusesReentry(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newComposer(t)

	// Given a submission stuck in flight
	release := make(chan struct{})
	started := make(chan struct{})
	f.backend.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, client.OutgoingMessage) (uuid.UUID, error) {
			close(started)
			<-release
			return uuid.New(), nil
		}).Times(1)

	done := make(chan error, 1)
	go func() {
		_, err := f.composer.Submit(ctx, draft(nil))
		done <- err
	}()
	<-started

	// When submitting again
	req.True(f.composer.Disabled())
	_, err := f.composer.Submit(ctx, draft(nil))

	// Then the second one is refused without reaching the backend
	req.ErrorIs(err, errors.ErrSubmitInFlight)
	close(release)
	req.NoError(<-done)
	req.False(f.composer.Disabled())
}

func TestComposer_CreateFailureBecomesToast(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newComposer(t)

	f.backend.EXPECT().CreateMessage(ctx, gomock.Any()).Return(uuid.Nil, fmt.Errorf("permission denied"))

	_, err := f.composer.Submit(ctx, draft(nil))
	req.Error(err)
	req.Equal("Failed to send message", f.notifier.Toasts()[0].Message)
}
