package options

import (
	"log/slog"
	"os"

	"github.com/goweiwen/kantera/data"
)

// DefaultConfig returns a config with the default handler and data provider.
func DefaultConfig() *Config {
	return &Config{
		handler:      DefaultHandler(),
		dataProvider: DefaultDataProvider(),
	}
}

// DefaultHandler logs text to stderr.
func DefaultHandler() slog.Handler {
	return slog.NewTextHandler(os.Stderr, nil)
}

// DefaultDataProvider reads input data stored in the context under
// data.EvalData.
func DefaultDataProvider() data.Provider {
	return data.NewContextProvider(data.EvalData)
}

// WithDefaults fills any unset handler or data provider.
func WithDefaults() Option {
	return func(c *Config) error {
		if c.handler == nil {
			c.handler = DefaultHandler()
		}
		if c.dataProvider == nil {
			c.dataProvider = DefaultDataProvider()
		}
		return nil
	}
}
