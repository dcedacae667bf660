package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/reshetovitsme/rss-digest/internal/modules/feed/domain"
	"github.com/reshetovitsme/rss-digest/internal/shared/text"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

const defaultPreviewLength = 500

// Fetcher downloads and parses RSS/Atom documents
type Fetcher struct {
	client        *http.Client
	parser        *gofeed.Parser
	userAgent     string
	previewLength int
}

// NewFetcher creates a feed fetcher. previewLength <= 0 selects the default of 500 characters.
func NewFetcher(timeout time.Duration, userAgent string, previewLength int) *Fetcher {
	if previewLength <= 0 {
		previewLength = defaultPreviewLength
	}
	return &Fetcher{
		client:        &http.Client{Timeout: timeout},
		parser:        gofeed.NewParser(),
		userAgent:     userAgent,
		previewLength: previewLength,
	}
}

// Fetch returns the entries of the feed at url in document order
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]domain.Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, oops.With("url", url, "context", "failed to build feed request").Wrap(err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, oops.With("url", url, "context", "failed to download feed").Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, oops.With("url", url, "status", resp.StatusCode).Errorf("unexpected status code: %d", resp.StatusCode)
	}

	feed, err := f.parser.Parse(resp.Body)
	if err != nil {
		return nil, oops.With("url", url, "context", "failed to parse feed").Wrap(err)
	}

	return lo.Map(feed.Items, func(item *gofeed.Item, _ int) domain.Entry {
		return f.toEntry(item)
	}), nil
}

func (f *Fetcher) toEntry(item *gofeed.Item) domain.Entry {
	content := item.Description
	if strings.TrimSpace(content) == "" {
		content = item.Content
	}
	return domain.Entry{
		Title:   strings.TrimSpace(item.Title),
		Link:    item.Link,
		Content: content,
		Preview: text.Truncate(text.Plain(content), f.previewLength),
	}
}
