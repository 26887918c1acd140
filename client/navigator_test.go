package client_test

import (
	"team-chat/client"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNavigator_Commit(t *testing.T) {
	req := require.New(t)
	general, random := uuid.New(), uuid.New()
	nav := client.NewNavigator(general)

	// When the user clicks another channel
	nav.Begin(random)

	// Then it is highlighted before navigation completes
	req.Equal(client.NavTransitioning, nav.State())
	req.Equal(random, nav.Highlighted())
	req.Equal(general, nav.Current())

	// And becomes current once committed
	req.True(nav.Commit())
	req.Equal(client.NavIdle, nav.State())
	req.Equal(random, nav.Current())
	req.Equal(random, nav.Highlighted())
}

func TestNavigator_Rollback(t *testing.T) {
	req := require.New(t)
	general, random := uuid.New(), uuid.New()
	nav := client.NewNavigator(general)

	nav.Begin(random)
	req.True(nav.Rollback())

	req.Equal(general, nav.Highlighted())
	req.Equal(client.NavIdle, nav.State())

	// Settling twice is a no-op
	req.False(nav.Rollback())
	req.False(nav.Commit())
	req.Equal(general, nav.Current())
}

func TestNavigator_Retarget(t *testing.T) {
	req := require.New(t)
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	nav := client.NewNavigator(a)

	nav.Begin(b)
	nav.Begin(c)
	req.Equal(c, nav.Highlighted())
	req.True(nav.Commit())
	req.Equal(c, nav.Current())
}
