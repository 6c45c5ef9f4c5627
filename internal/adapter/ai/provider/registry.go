package provider

import (
	"fmt"

	"github.com/fairyhunter13/ai-customer-chat/internal/config"
	"github.com/fairyhunter13/ai-customer-chat/internal/domain"
)

// Registry resolves public model IDs to their providers.
type Registry struct {
	providers map[string]domain.ChatProvider
	catalog   []domain.Model
}

// NewRegistry wires the two supported providers.
func NewRegistry(cfg config.Config) *Registry {
	return &Registry{
		providers: map[string]domain.ChatProvider{
			"MiniMax-M2.5": NewMiniMax(cfg),
			"GPT-3.5":      NewOpenAI(cfg),
		},
		catalog: []domain.Model{
			{ID: "MiniMax-M2.5", Name: "MiniMax M2.5", Provider: "MiniMax"},
			{ID: "GPT-3.5", Name: "GPT-3.5 Turbo", Provider: "OpenAI"},
		},
	}
}

// NewRegistryWith builds a registry from explicit providers, keyed by model
// ID. Used by tests and by dev mode to swap in the stub provider.
func NewRegistryWith(providers map[string]domain.ChatProvider, catalog []domain.Model) *Registry {
	return &Registry{providers: providers, catalog: catalog}
}

// Resolve returns the provider serving the given model ID. An unknown ID is a
// validation error; no outbound call has been made at that point.
func (r *Registry) Resolve(modelID string) (domain.ChatProvider, error) {
	p, ok := r.providers[modelID]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported model %q", domain.ErrInvalidArgument, modelID)
	}
	return p, nil
}

// Catalog lists the supported models for the /models route.
func (r *Registry) Catalog() []domain.Model {
	out := make([]domain.Model, len(r.catalog))
	copy(out, r.catalog)
	return out
}
