package domain

import (
	"strings"
	"time"

	feedDomain "github.com/reshetovitsme/rss-digest/internal/modules/feed/domain"
)

// FilterConfig is the feed and keyword selection a digest is computed with.
// It is replaced as a whole, never modified in place.
type FilterConfig struct {
	FeedURL         string        `json:"feed_url"`
	Keywords        []string      `json:"keywords"`
	RefreshInterval time.Duration `json:"refresh_interval"`
}

// KeywordsCSV renders the keywords the way they are typed into the form.
func (c FilterConfig) KeywordsCSV() string {
	return strings.Join(c.Keywords, ", ")
}

// Article is a matched feed entry with its highlighted summary
type Article struct {
	feedDomain.Entry
	Summary string `json:"summary"`
}

// State is one digest snapshot: the articles matched by the latest fetch.
type State struct {
	Config      FilterConfig `json:"config"`
	Articles    []Article    `json:"articles"`
	RefreshedAt time.Time    `json:"refreshed_at"`
	NextRefresh time.Time    `json:"next_refresh"`
}

// SecondsUntilRefresh is never negative.
func (s State) SecondsUntilRefresh(now time.Time) int {
	remaining := s.NextRefresh.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(remaining.Round(time.Second) / time.Second)
}

// Notice is a message shown to the user after an action
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}
