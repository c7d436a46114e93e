package helpers

import (
	"log/slog"
	"os"
)

// SetupLogger builds the logger for one component of the runtime. A nil handler
// falls back to a text handler on stderr grouped under scope, and says so.
//
// Parameters:
//   - handler: the slog.Handler to use, or nil for the default
//   - scope: the top-level log group, e.g. "kantera"
//   - component: optional group for the component within the scope
//
// Returns the handler the component should pass to its children, and the
// component's own logger.
func SetupLogger(handler slog.Handler, scope string, component string) (slog.Handler, *slog.Logger) {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, nil).WithGroup(scope)
		slog.New(handler).Warn("Handler is nil, using the default logger configuration.")
	}

	if component == "" {
		return handler, slog.New(handler)
	}
	return handler, slog.New(handler.WithGroup(component))
}
