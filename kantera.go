// Package kantera evaluates scene scripts: small Starlark programs that build
// animated scene graphs, timelines and audio schedules out of the builtins in
// package builtins.
//
// A Runtime owns one binding table. Each call to Eval runs a script's forms in
// order against it:
//
//	rt, err := kantera.New(options.WithFontPath("fonts/Inter.ttf"))
//	if err != nil {
//		return err
//	}
//	result, err := rt.EvalString(ctx, `plain(rgb("#FF8000"))`)
package kantera

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goweiwen/kantera/builtins"
	"github.com/goweiwen/kantera/env"
	"github.com/goweiwen/kantera/internal/helpers"
	"github.com/goweiwen/kantera/loader"
	"github.com/goweiwen/kantera/machines/starlark"
	"github.com/goweiwen/kantera/options"
	"github.com/goweiwen/kantera/value"
)

var ErrUnbound = errors.New("name is not bound")

// Runtime binds the builtins into an environment and evaluates scripts
// against it. It is not safe for concurrent use.
type Runtime struct {
	id        string
	env       *env.Env
	evaluator *starlark.Evaluator

	logHandler slog.Handler
	logger     *slog.Logger
}

// New builds a runtime from opts. Every log record it emits carries a session
// id unique to the runtime.
func New(opts ...options.Option) (*Runtime, error) {
	cfg, err := options.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("error applying options: %w", err)
	}

	id := uuid.NewString()
	handler := cfg.GetHandler().WithAttrs([]slog.Attr{slog.String("session", id)})
	handler, logger := helpers.SetupLogger(handler, "kantera", "Runtime")

	e := env.New()
	assets := builtins.NewDiskAssets(cfg.GetAssetDir(), cfg.GetFontPath())
	builtins.New(handler, assets).Register(e)

	logger.Debug("runtime created",
		"bindings", e.Len(), "assetDir", cfg.GetAssetDir(), "fontPath", cfg.GetFontPath())
	return &Runtime{
		id:         id,
		env:        e,
		evaluator:  starlark.NewEvaluator(handler, e, cfg.GetDataProvider()),
		logHandler: handler,
		logger:     logger,
	}, nil
}

func (r *Runtime) String() string {
	return fmt.Sprintf("kantera.Runtime{ID: %s, Bindings: %d}", r.id, r.env.Len())
}

// ID is the session id attached to the runtime's logs.
func (r *Runtime) ID() string { return r.id }

// Insert binds name for every later evaluation, replacing any builtin of the
// same name.
func (r *Runtime) Insert(name string, v value.Value) {
	r.env.Insert(name, v)
}

// Get returns the value bound to name.
func (r *Runtime) Get(name string) (value.Value, bool) {
	return r.env.Get(name)
}

// Names returns every bound name, sorted.
func (r *Runtime) Names() []string {
	return r.env.Names()
}

// Call invokes the builtin bound to name directly from Go.
func (r *Runtime) Call(name string, args ...value.Value) (value.Value, error) {
	v, ok := r.env.Get(name)
	if !ok {
		return value.Value{}, fmt.Errorf("%w: %q", ErrUnbound, name)
	}
	fn, err := value.AsNative(v)
	if err != nil {
		return value.Value{}, fmt.Errorf("%s: %w", name, err)
	}
	return fn(args)
}

// Eval runs the script ldr supplies. A failing form does not stop later forms;
// the error joins each failure and the result still lists every form.
func (r *Runtime) Eval(ctx context.Context, ldr loader.Loader) (*starlark.Result, error) {
	r.logger.DebugContext(ctx, "evaluating", "loader", ldr)
	return r.evaluator.Eval(ctx, ldr)
}

// EvalString runs an inline script.
func (r *Runtime) EvalString(ctx context.Context, src string) (*starlark.Result, error) {
	ldr, err := loader.NewFromString(src)
	if err != nil {
		return nil, err
	}
	return r.Eval(ctx, ldr)
}
