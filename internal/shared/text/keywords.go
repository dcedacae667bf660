package text

import (
	"strings"

	"github.com/samber/lo"
)

// ParseKeywords splits a comma-separated keyword list.
func ParseKeywords(s string) []string {
	return NormalizeKeywords(strings.Split(s, ","))
}

// NormalizeKeywords trims, lowercases and de-duplicates keywords, keeping
// first-seen order and dropping empty ones.
func NormalizeKeywords(keywords []string) []string {
	cleaned := lo.FilterMap(keywords, func(keyword string, _ int) (string, bool) {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		return keyword, keyword != ""
	})
	return lo.Uniq(cleaned)
}
