package narrative_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/KirkDiggler/signature-weapons/internal/narrative"
	mocknarrative "github.com/KirkDiggler/signature-weapons/internal/narrative/mock"
)

func request() *narrative.Request {
	return &narrative.Request{
		AttackName: "Heavy Smash",
		Flavor:     "Raising the mace high overhead.",
		Outcome:    "normal hit",
	}
}

func TestFallback_Generated(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocknarrative.NewMockGenerator(ctrl)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("The mace sings.", nil)

	fb := narrative.NewFallback(gen, narrative.ProviderOpenAI, time.Second, nil)
	out := fb.Narrate(context.Background(), request())

	assert.True(t, out.Generated)
	assert.Equal(t, "The mace sings.", out.Text)
	assert.Nil(t, out.Failure)
}

func TestFallback_FailureUsesFlavor(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocknarrative.NewMockGenerator(ctrl)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", &narrative.Failure{
		Provider:   narrative.ProviderOpenAI,
		Kind:       narrative.KindRateLimited,
		StatusCode: 429,
		Err:        errors.New("slow down"),
	})

	core, logs := observer.New(zap.WarnLevel)
	fb := narrative.NewFallback(gen, narrative.ProviderOpenAI, time.Second, zap.New(core))
	out := fb.Narrate(context.Background(), request())

	assert.False(t, out.Generated)
	assert.Equal(t, "Raising the mace high overhead.", out.Text)
	require.NotNil(t, out.Failure)
	assert.Equal(t, narrative.KindRateLimited, out.Failure.Kind)

	entries := logs.FilterMessage("narrative generation failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "rate_limited", entries[0].ContextMap()["kind"])
	assert.EqualValues(t, 429, entries[0].ContextMap()["status"])
}

func TestFallback_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocknarrative.NewMockGenerator(ctrl)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ *narrative.Request) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})

	fb := narrative.NewFallback(gen, narrative.ProviderOpenAI, 20*time.Millisecond, nil)

	start := time.Now()
	out := fb.Narrate(context.Background(), request())

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, "Raising the mace high overhead.", out.Text)
	require.NotNil(t, out.Failure)
	assert.Equal(t, narrative.KindNetwork, out.Failure.Kind)
}

func TestFallback_Disabled(t *testing.T) {
	fb := narrative.NewFallback(nil, narrative.ProviderOpenAI, 0, nil)

	out := fb.Narrate(context.Background(), request())
	assert.False(t, fb.Enabled())
	assert.Equal(t, "Raising the mace high overhead.", out.Text)
	assert.Nil(t, out.Failure)
}

func TestFallback_MissingCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocknarrative.NewMockGenerator(ctrl)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", narrative.ErrMissingCredential)

	fb := narrative.NewFallback(gen, narrative.ProviderAnthropic, time.Second, nil)
	out := fb.Narrate(context.Background(), request())

	require.NotNil(t, out.Failure)
	assert.Equal(t, narrative.KindMissingCredential, out.Failure.Kind)
	assert.False(t, out.Failure.InvalidatesCredential())
}
