// Package loader supplies scene script source to the runtime.
package loader

import (
	"fmt"
	"io"
	"net/url"
)

// Loader provides script source and a URL naming where it came from. The URL
// becomes the file name in script error positions.
type Loader interface {
	GetReader() (io.ReadCloser, error)
	GetSourceURL() *url.URL
}

// ReadAll reads the whole script from l.
func ReadAll(l Loader) ([]byte, error) {
	r, err := l.GetReader()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptNotAvailable, err)
	}
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptNotAvailable, err)
	}
	return b, nil
}

// SourceName is the display name of l's source.
func SourceName(l Loader) string {
	u := l.GetSourceURL()
	if u == nil {
		return "<script>"
	}
	if u.Scheme == "file" {
		return u.Path
	}
	return u.String()
}
