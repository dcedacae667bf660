package service

import (
	_ "embed"
	"html"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/v2"
	"github.com/reshetovitsme/rss-digest/internal/shared/text"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

const (
	DefaultSentences = 3
	highlightOpen    = `<span style="background-color: yellow;">`
	highlightClose   = `</span>`
)

//go:embed stopwords.txt
var stopwordList string

// Analyzer matches keywords against lemmatized text and renders summaries.
// It holds the loaded dictionary and is safe for concurrent use.
type Analyzer struct {
	lemmatizer *golem.Lemmatizer
	stopwords  map[string]struct{}
}

// New loads the English lemma dictionary. Call it once and share the result.
func New() (*Analyzer, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, oops.With("context", "failed to load lemma dictionary").Wrap(err)
	}

	stopwords := lo.SliceToMap(strings.Fields(stopwordList), func(word string) (string, struct{}) {
		return word, struct{}{}
	})

	return &Analyzer{lemmatizer: lemmatizer, stopwords: stopwords}, nil
}

// IsStopword reports whether a lowercase token is excluded from matching.
func (a *Analyzer) IsStopword(token string) bool {
	_, ok := a.stopwords[token]
	return ok
}

// Lemmas returns the base forms of the non-stop-word tokens of text, lowercased.
func (a *Analyzer) Lemmas(content string) []string {
	plain := strings.ToLower(text.Plain(content))
	if plain == "" {
		return nil
	}

	doc, err := prose.NewDocument(plain,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil
	}

	return lo.FilterMap(doc.Tokens(), func(tok prose.Token, _ int) (string, bool) {
		if !hasWordRune(tok.Text) || a.IsStopword(tok.Text) {
			return "", false
		}
		return a.lemmatizer.Lemma(tok.Text), true
	})
}

// Matches reports whether any keyword equals one of the lemmas of content.
// Keywords are compared literally, so a keyword containing a space never matches.
func (a *Analyzer) Matches(content string, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}
	lemmas := lo.Keyify(a.Lemmas(content))
	return lo.SomeBy(keywords, func(keyword string) bool {
		_, ok := lemmas[keyword]
		return ok
	})
}

// Summarize joins the first n sentences of content and highlights keywords.
// The result is escaped HTML. n <= 0 selects DefaultSentences.
func (a *Analyzer) Summarize(content string, keywords []string, n int) string {
	if n <= 0 {
		n = DefaultSentences
	}
	plain := text.Plain(content)
	if plain == "" {
		return ""
	}

	doc, err := prose.NewDocument(plain,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithTokenization(false),
	)
	if err != nil {
		return Highlight(html.EscapeString(plain), keywords)
	}

	sentences := lo.FilterMap(doc.Sentences(), func(s prose.Sentence, _ int) (string, bool) {
		trimmed := strings.TrimSpace(s.Text)
		return trimmed, trimmed != ""
	})
	if len(sentences) > n {
		sentences = sentences[:n]
	}

	return Highlight(html.EscapeString(strings.Join(sentences, " ")), keywords)
}

// Highlight wraps every case-insensitive whole-word occurrence of a keyword
// in a highlight span, keeping the matched text. Word boundaries are Unicode
// aware. Text without occurrences is returned unchanged.
func Highlight(fragment string, keywords []string) string {
	p := newKeywordPattern(keywords)
	if p == nil {
		return fragment
	}

	var b strings.Builder
	last, pos := 0, 0
	for pos < len(fragment) {
		loc := p.any.FindStringIndex(fragment[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		end := p.wholeWordAt(fragment, start)
		if end < 0 {
			_, size := utf8.DecodeRuneInString(fragment[start:])
			pos = start + size
			continue
		}
		b.WriteString(fragment[last:start])
		b.WriteString(highlightOpen)
		b.WriteString(fragment[start:end])
		b.WriteString(highlightClose)
		last, pos = end, end
	}
	if last == 0 {
		return fragment
	}
	b.WriteString(fragment[last:])
	return b.String()
}

// keywordPattern finds keyword candidates in one pass so spans inserted for
// one keyword are never rescanned for another.
type keywordPattern struct {
	any     *regexp.Regexp
	anchors []*regexp.Regexp // longest keyword first
}

func newKeywordPattern(keywords []string) *keywordPattern {
	quoted := lo.FilterMap(lo.Uniq(keywords), func(keyword string, _ int) (string, bool) {
		keyword = strings.TrimSpace(keyword)
		return regexp.QuoteMeta(html.EscapeString(keyword)), keyword != ""
	})
	if len(quoted) == 0 {
		return nil
	}
	sort.SliceStable(quoted, func(i, j int) bool { return len(quoted[i]) > len(quoted[j]) })

	anchors := lo.Map(quoted, func(q string, _ int) *regexp.Regexp {
		return regexp.MustCompile(`(?i)^(?:` + q + `)`)
	})
	return &keywordPattern{
		any:     regexp.MustCompile(`(?i)(?:` + strings.Join(quoted, "|") + `)`),
		anchors: anchors,
	}
}

// wholeWordAt returns the end of the longest keyword starting at start that
// is not glued to a neighbouring word character, or -1.
func (p *keywordPattern) wholeWordAt(s string, start int) int {
	if before, _ := utf8.DecodeLastRuneInString(s[:start]); start > 0 && isWordRune(before) {
		return -1
	}
	for _, re := range p.anchors {
		loc := re.FindStringIndex(s[start:])
		if loc == nil {
			continue
		}
		end := start + loc[1]
		if after, _ := utf8.DecodeRuneInString(s[end:]); end < len(s) && isWordRune(after) {
			continue
		}
		return end
	}
	return -1
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_'
}

func hasWordRune(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) >= 0
}
