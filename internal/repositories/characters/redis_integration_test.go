//go:build integration

package characters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dnderr "github.com/KirkDiggler/signature-weapons/internal/errors"
	"github.com/KirkDiggler/signature-weapons/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)
	repo := NewRedis(client)
	ctx := context.Background()

	char := testutils.JotunWielder("owner-int")
	require.NoError(t, repo.Create(ctx, char))
	assert.True(t, dnderr.IsAlreadyExists(repo.Create(ctx, char)))

	got, err := repo.Get(ctx, char.ID)
	require.NoError(t, err)
	assert.Equal(t, char.Name, got.Name)
	assert.Equal(t, char.Modifier("str"), got.Modifier("str"))

	got.TempHitPoints = 9
	require.NoError(t, repo.Update(ctx, got))

	owned, err := repo.GetByOwner(ctx, "owner-int")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, 9, owned[0].TempHitPoints)

	require.NoError(t, repo.Delete(ctx, char.ID))
	_, err = repo.Get(ctx, char.ID)
	assert.True(t, dnderr.IsNotFound(err))
}
