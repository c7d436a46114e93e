// Package data supplies the input data a scene script reads through the ctx
// global.
package data

import "context"

// Provider retrieves input data for one evaluation.
type Provider interface {
	// GetData returns the data map exposed to scripts. The returned map may be
	// modified by the caller.
	GetData(ctx context.Context) (map[string]any, error)
}

// ContextKey is the type of the keys data is stored under in a context.
type ContextKey string

const (
	// EvalData is the context key ContextProvider reads by default.
	EvalData ContextKey = "eval_data"
	// Global is the script global the merged input data is bound to.
	Global = "ctx"
)
