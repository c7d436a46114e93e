package data

import (
	"context"
	"fmt"
	"maps"
)

// CompositeProvider layers several providers into the one map a script sees
// as ctx. Each provider's keys are copied over the keys of the providers
// before it, so the runtime lists its static input data last to let it win
// over anything carried in the context.
type CompositeProvider struct {
	providers []Provider
}

// NewCompositeProvider layers providers in the given order. Nil entries are
// skipped.
func NewCompositeProvider(providers ...Provider) *CompositeProvider {
	return &CompositeProvider{providers: providers}
}

// GetData merges the data of every provider. The first failing provider aborts
// the merge and is identified by its position.
func (p *CompositeProvider) GetData(ctx context.Context) (map[string]any, error) {
	ctxData := make(map[string]any)
	for i, provider := range p.providers {
		if provider == nil {
			continue
		}
		layer, err := provider.GetData(ctx)
		if err != nil {
			return nil, fmt.Errorf("ctx layer %d: %w", i, err)
		}
		maps.Copy(ctxData, layer)
	}
	return ctxData, nil
}
