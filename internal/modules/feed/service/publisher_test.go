package service

import (
	"testing"
	"time"

	digestDomain "github.com/reshetovitsme/rss-digest/internal/modules/digest/domain"
	feedDomain "github.com/reshetovitsme/rss-digest/internal/modules/feed/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish(t *testing.T) {
	refreshed := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	state := digestDomain.State{
		Config: digestDomain.FilterConfig{
			FeedURL:  "https://example.com/rss",
			Keywords: []string{"python", "go"},
		},
		Articles: []digestDomain.Article{
			{
				Entry:   feedDomain.Entry{Title: "Learning Python Basics", Link: "https://example.com/1", Preview: "Python..."},
				Summary: `<span style="background-color: yellow;">Python</span> basics.`,
			},
			{Entry: feedDomain.Entry{Title: "Unlinked"}},
		},
		RefreshedAt: refreshed,
	}

	feed := Publish(state, "http://localhost:8080")
	require.Len(t, feed.Items, 2)
	assert.Equal(t, "http://localhost:8080/rss", feed.Link.Href)
	assert.Contains(t, feed.Description, "python, go")
	assert.Equal(t, "https://example.com/1", feed.Items[0].Id)
	assert.Equal(t, "http://localhost:8080#1", feed.Items[1].Id)

	rss, err := feed.ToRss()
	require.NoError(t, err)
	assert.Contains(t, rss, "Learning Python Basics")
	assert.Contains(t, rss, "<link>http://localhost:8080/rss</link>")
}
