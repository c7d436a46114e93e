package data

import (
	"context"
	"maps"
)

// StaticProvider returns a fixed map, for data known before evaluation starts.
type StaticProvider struct {
	data map[string]any
}

// NewStaticProvider creates a provider that always returns a copy of data.
func NewStaticProvider(data map[string]any) *StaticProvider {
	if data == nil {
		data = make(map[string]any)
	}
	return &StaticProvider{data: data}
}

// GetData returns a copy of the static map regardless of ctx.
func (p *StaticProvider) GetData(context.Context) (map[string]any, error) {
	return maps.Clone(p.data), nil
}
