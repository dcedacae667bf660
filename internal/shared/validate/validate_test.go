package validate

import (
	"testing"

	"github.com/reshetovitsme/rss-digest/internal/shared/errors"
	"github.com/stretchr/testify/assert"
)

func TestFeedURL(t *testing.T) {
	valid := []string{"https://example.com/rss", "http://localhost:8080/feed.xml", " https://example.com/atom "}
	for _, raw := range valid {
		assert.NoError(t, FeedURL(raw), raw)
	}

	invalid := []string{"", "example.com/rss", "ftp://example.com/rss", "https://", "not a url"}
	for _, raw := range invalid {
		assert.ErrorIs(t, FeedURL(raw), errors.ErrInvalidFeedURL, raw)
	}
}
