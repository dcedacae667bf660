package service

import (
	"fmt"

	"github.com/gorilla/feeds"
	digestDomain "github.com/reshetovitsme/rss-digest/internal/modules/digest/domain"
	"github.com/samber/lo"
)

// Publish republishes the matched articles of a digest as a feed
func Publish(state digestDomain.State, baseURL string) *feeds.Feed {
	feed := &feeds.Feed{
		Title:       "Filtered Articles",
		Link:        &feeds.Link{Href: fmt.Sprintf("%s/rss", baseURL)},
		Description: fmt.Sprintf("Entries of %s matching: %s", state.Config.FeedURL, state.Config.KeywordsCSV()),
		Created:     state.RefreshedAt,
		Updated:     state.RefreshedAt,
	}

	feed.Items = lo.Map(state.Articles, func(article digestDomain.Article, i int) *feeds.Item {
		return &feeds.Item{
			Title:       article.Title,
			Link:        &feeds.Link{Href: article.Link},
			Description: article.Preview,
			Content:     article.Summary,
			Created:     state.RefreshedAt,
			Id:          lo.Ternary(article.Link != "", article.Link, fmt.Sprintf("%s#%d", baseURL, i)),
		}
	})

	return feed
}
