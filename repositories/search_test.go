package repositories

import (
	"context"
	"log/slog"
	"team-chat/domain"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_Search_Is_Scoped_To_Workspace(t *testing.T) {
	req := require.New(t)
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	req.NoError(err)
	defer writer.Close()
	index := NewSearchIndex(writer, slog.Default())

	workspace := uuid.New()
	channel := domain.ChannelContainer(uuid.New())
	deploy := newDiskMessage(channel, uuid.New(), "the deployment pipeline is broken again", time.Now())
	deploy.WorkspaceID = workspace
	lunch := newDiskMessage(channel, uuid.New(), "who wants lunch today", time.Now())
	lunch.WorkspaceID = workspace
	elsewhere := newDiskMessage(channel, uuid.New(), "our deployment is green", time.Now())

	for _, m := range []DiskMessage{deploy, lunch, elsewhere} {
		req.NoError(index.Index(m))
	}

	found, err := index.Search(context.Background(), SearchQuery{WorkspaceID: workspace, Terms: "deployment"})
	req.NoError(err)
	req.Equal([]uuid.UUID{deploy.ID}, found)

	// A removed message is no longer found
	req.NoError(index.Remove(deploy.ID))
	found, err = index.Search(context.Background(), SearchQuery{WorkspaceID: workspace, Terms: "deployment"})
	req.NoError(err)
	req.Empty(found)
}
