package loader

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/goweiwen/kantera/internal/helpers"
)

// FromString serves an inline script.
type FromString struct {
	content   string
	sourceURL *url.URL
}

// NewFromString creates a loader for inline script source. Its source URL is
// derived from the content digest.
func NewFromString(content string) (*FromString, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is empty", ErrScriptNotAvailable)
	}

	u, err := url.Parse("string://inline/" + helpers.ShortID([]byte(content)))
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}
	return &FromString{content: content, sourceURL: u}, nil
}

func (l *FromString) String() string {
	return fmt.Sprintf("loader.FromString{Chars: %d}", len(l.content))
}

// GetReader returns a fresh reader over the script on every call.
func (l *FromString) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(l.content)), nil
}

// GetSourceURL returns the string:// URL naming the script.
func (l *FromString) GetSourceURL() *url.URL {
	return l.sourceURL
}
