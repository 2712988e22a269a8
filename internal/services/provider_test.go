package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/signature-weapons/internal/repositories/characters"
	"github.com/KirkDiggler/signature-weapons/internal/services"
	"github.com/KirkDiggler/signature-weapons/internal/services/attack"
	mockattack "github.com/KirkDiggler/signature-weapons/internal/services/attack/mock"
	"github.com/KirkDiggler/signature-weapons/internal/testutils"
)

func TestNewProvider_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := characters.NewInMemoryRepository()
	require.NoError(t, repo.Create(context.Background(), testutils.JotunWielder("user-1")))

	provider := services.NewProvider(&services.ProviderConfig{
		Poster:              mockattack.NewMockChatPoster(ctrl),
		CharacterRepository: repo,
	})

	require.NotNil(t, provider.AttackService)
	require.NotNil(t, provider.Catalog)
	assert.Nil(t, provider.DNDClient)

	menu, err := provider.AttackService.ListAttacks(context.Background(), &attack.ListAttacksInput{
		UserID:   "user-1",
		WeaponID: "jotun_spear",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, menu.Level)
}

func TestNewProvider_RequiresPoster(t *testing.T) {
	assert.Panics(t, func() {
		services.NewProvider(&services.ProviderConfig{})
	})
}
