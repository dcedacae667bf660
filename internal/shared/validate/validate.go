// Package validate checks user-supplied settings shared by config loading and the web UI.
package validate

import (
	"net/url"
	"strings"

	"github.com/reshetovitsme/rss-digest/internal/shared/errors"
)

// FeedURL accepts absolute http and https URLs with a host.
func FeedURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.ErrInvalidFeedURL
	}
	return nil
}
