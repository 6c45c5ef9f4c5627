package provider_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/ai-customer-chat/internal/adapter/ai/provider"
	"github.com/fairyhunter13/ai-customer-chat/internal/adapter/ai/stub"
	"github.com/fairyhunter13/ai-customer-chat/internal/config"
	"github.com/fairyhunter13/ai-customer-chat/internal/domain"
)

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()
	r := provider.NewRegistry(config.Config{})

	for _, id := range []string{"MiniMax-M2.5", "GPT-3.5"} {
		p, err := r.Resolve(id)
		require.NoError(t, err, id)
		assert.NotNil(t, p)
	}
}

func TestRegistry_Resolve_UnknownModel(t *testing.T) {
	t.Parallel()
	r := provider.NewRegistry(config.Config{})

	_, err := r.Resolve("llama-9")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "llama-9")
}

func TestRegistry_Resolve_CaseSensitive(t *testing.T) {
	t.Parallel()
	r := provider.NewRegistry(config.Config{})

	_, err := r.Resolve("minimax-m2.5")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestRegistry_Catalog(t *testing.T) {
	t.Parallel()
	r := provider.NewRegistry(config.Config{})

	catalog := r.Catalog()
	require.Len(t, catalog, 2)
	assert.Equal(t, "MiniMax-M2.5", catalog[0].ID)
	assert.Equal(t, "GPT-3.5", catalog[1].ID)

	// mutating the returned slice must not leak into the registry
	catalog[0].ID = "changed"
	assert.Equal(t, "MiniMax-M2.5", r.Catalog()[0].ID)
}

func TestRegistryWith(t *testing.T) {
	t.Parallel()
	st := stub.New()
	r := provider.NewRegistryWith(map[string]domain.ChatProvider{"MiniMax-M2.5": st},
		[]domain.Model{{ID: "MiniMax-M2.5", Name: "MiniMax M2.5", Provider: "MiniMax"}})

	p, err := r.Resolve("MiniMax-M2.5")
	require.NoError(t, err)
	assert.Equal(t, st, p)

	_, err = r.Resolve("GPT-3.5")
	require.Error(t, err)
}
