package data

import (
	"context"
	"errors"
	"fmt"
	"maps"
)

var (
	ErrEmptyContextKey = errors.New("context key is empty")
	ErrInvalidData     = errors.New("invalid input data")
)

// ContextProvider reads per-call data stored in the context under a key.
type ContextProvider struct {
	contextKey ContextKey
}

// NewContextProvider creates a provider that reads its data from the context
// value stored under contextKey.
func NewContextProvider(contextKey ContextKey) *ContextProvider {
	return &ContextProvider{contextKey: contextKey}
}

// GetData returns the map stored under the provider's key, or an empty map when
// nothing is stored.
func (p *ContextProvider) GetData(ctx context.Context) (map[string]any, error) {
	if p.contextKey == "" {
		return nil, ErrEmptyContextKey
	}

	v := ctx.Value(p.contextKey)
	if v == nil {
		return make(map[string]any), nil
	}
	stored, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected map[string]any, got %T", ErrInvalidData, v)
	}
	return maps.Clone(stored), nil
}

// AddDataToContext merges each map in items into the data stored under the
// provider's key. Items that are not maps are reported and skipped; the
// returned context carries whatever could be merged.
func (p *ContextProvider) AddDataToContext(ctx context.Context, items ...any) (context.Context, error) {
	if p.contextKey == "" {
		return ctx, ErrEmptyContextKey
	}

	toStore := make(map[string]any)
	if existing, ok := ctx.Value(p.contextKey).(map[string]any); ok {
		maps.Copy(toStore, existing)
	}

	var errz []error
	for i, item := range items {
		switch v := item.(type) {
		case nil:
		case map[string]any:
			maps.Copy(toStore, v)
		default:
			errz = append(errz, fmt.Errorf("%w: item %d has unsupported type %T", ErrInvalidData, i, item))
		}
	}

	return context.WithValue(ctx, p.contextKey, toStore), errors.Join(errz...)
}
