package service

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"strings"
	"unicode/utf8"

	"github.com/reshetovitsme/rss-digest/internal/modules/digest/domain"
	"github.com/reshetovitsme/rss-digest/internal/shared/text"
	"github.com/samber/oops"
)

// telegramLimit is the Bot API maximum message length
const telegramLimit = 4096

var emailTemplate = template.Must(template.New("email").Parse(
	`<h2>Filtered Articles</h2>` +
		`{{range .}}<h3><a href="{{.Link}}">{{.Title}}</a></h3>` +
		`<p><strong>Summary:</strong> {{.Summary}}</p><hr>{{end}}`))

type emailArticle struct {
	Title   string
	Link    string
	Summary template.HTML
}

// RenderEmail builds the HTML digest body. Summaries are already escaped and
// highlighted, so they are inserted verbatim.
func RenderEmail(state domain.State) (string, error) {
	articles := make([]emailArticle, 0, len(state.Articles))
	for _, a := range state.Articles {
		articles = append(articles, emailArticle{
			Title:   a.Title,
			Link:    a.Link,
			Summary: template.HTML(a.Summary),
		})
	}

	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, articles); err != nil {
		return "", oops.With("articles", len(articles)).Wrap(err)
	}
	return buf.String(), nil
}

// RenderTelegram builds a digest in Telegram's HTML subset. Articles that do
// not fit the message limit are counted instead of included.
func RenderTelegram(state domain.State) string {
	var b strings.Builder
	b.WriteString("<b>Filtered Articles</b>\n")

	for i, a := range state.Articles {
		entry := fmt.Sprintf("\n<a href=\"%s\">%s</a>\n%s\n",
			html.EscapeString(a.Link), html.EscapeString(a.Title), html.EscapeString(text.Plain(a.Summary)))

		more := fmt.Sprintf("\n… and %d more", len(state.Articles)-i)
		if utf8.RuneCountInString(b.String())+utf8.RuneCountInString(entry)+utf8.RuneCountInString(more) > telegramLimit {
			b.WriteString(more)
			break
		}
		b.WriteString(entry)
	}
	return b.String()
}
