// Package builtins implements the named primitives scene scripts call: numeric
// operators, stringify, color and path constructors, periodic wrappers and
// the scene-graph and audio factories.
//
// Every builtin takes a list of dynamic values and either dispatches on their
// runtime types or checks a fixed positional shape. Failures are returned as
// errors wrapping one of the value.Err kinds; nothing falls back to a default.
package builtins

import (
	"log/slog"

	"github.com/goweiwen/kantera/env"
	"github.com/goweiwen/kantera/internal/helpers"
	"github.com/goweiwen/kantera/value"
)

// Builtin is one named primitive.
type Builtin struct {
	Name string
	Fn   value.NativeFunc
}

// Registry owns the builtins and the collaborators some of them need.
type Registry struct {
	assets     Assets
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a registry. assets serves import_image and text_to_image.
func New(handler slog.Handler, assets Assets) *Registry {
	handler, logger := helpers.SetupLogger(handler, "kantera", "Builtins")
	return &Registry{
		assets:     assets,
		logHandler: handler,
		logger:     logger,
	}
}

// Builtins returns the primitive table in a stable order.
func (r *Registry) Builtins() []Builtin {
	return []Builtin{
		{"first", first},
		{"vec", vec},
		{"vec2", vec2},
		{"vec3", vec3},
		{"sym", sym},
		{"+", numeric(sum)},
		{"-", numeric(difference)},
		{"*", numeric(product)},
		{"/", numeric(quotient)},
		{"stringify", stringify},
		{"rgb", rgb},
		{"rgba", rgba},
		{"path", buildPath},
		{"cycle", cycle},
		{"sin", sine},
		{"plain", plain},
		{"frame", frame},
		{"sequence", sequence},
		{"composite", composite},
		{"transform", transform},
		{"image_render", imageRender},
		{"text_to_image", r.textToImage},
		{"import_image", r.importImage},
		{"note", note},
		{"sequencer", sequencer},
		{"test_audio", testAudio},
	}
}

// Register binds the constants and every builtin into e.
func (r *Registry) Register(e *env.Env) {
	e.Insert("true", value.NewBool(true))
	e.Insert("false", value.NewBool(false))
	for _, b := range r.Builtins() {
		e.Insert(b.Name, value.NewNative(r.traced(b)))
	}
	r.logger.Debug("builtins registered", "count", e.Len())
}

// traced logs each call and its failure at debug level.
func (r *Registry) traced(b Builtin) value.NativeFunc {
	logger := r.logger.With("builtin", b.Name)
	return func(args []value.Value) (value.Value, error) {
		out, err := b.Fn(args)
		if err != nil {
			logger.Debug("call failed", "argc", len(args), "error", err)
			return value.Value{}, err
		}
		logger.Debug("call", "argc", len(args), "result", out.Kind())
		return out, nil
	}
}
