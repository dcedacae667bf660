package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := New()
	require.NoError(t, err)
	return a
}

func TestAnalyzer_Matches(t *testing.T) {
	a := newTestAnalyzer(t)

	tests := []struct {
		name     string
		text     string
		keywords []string
		want     bool
	}{
		{"title keyword", "Learning Python Basics", []string{"python"}, true},
		{"case insensitive input", "PYTHON everywhere", []string{"python"}, true},
		{"inflected form reduced", "Three new languages announced", []string{"language"}, true},
		{"absent keyword", "Learning Rust Basics", []string{"python"}, false},
		{"substring is not a token", "Pythonic idioms explained", []string{"python"}, false},
		{"multi-word keyword never matches", "An introduction to data science", []string{"data science"}, false},
		{"stop word never matches", "The best of the year", []string{"the"}, false},
		{"html markup ignored", "<p>Intro to <b>python</b></p>", []string{"python"}, true},
		{"any keyword suffices", "Notes on golang", []string{"python", "golang"}, true},
		{"no keywords", "Learning Python Basics", nil, false},
		{"accented keyword", "Ein Artikel über Café Kultur", []string{"café"}, true},
		{"accented suffix is part of the word", "I love pythoné stuff", []string{"python"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, a.Matches(tc.text, tc.keywords))
		})
	}
}

func TestAnalyzer_Lemmas(t *testing.T) {
	a := newTestAnalyzer(t)

	lemmas := a.Lemmas("The languages, of course!")
	assert.Contains(t, lemmas, "language")
	assert.NotContains(t, lemmas, "the")
	assert.NotContains(t, lemmas, ",")
	assert.NotContains(t, lemmas, "!")
	assert.Empty(t, a.Lemmas(""))
}

func TestAnalyzer_IsStopword(t *testing.T) {
	a := newTestAnalyzer(t)
	assert.True(t, a.IsStopword("the"))
	assert.True(t, a.IsStopword("and"))
	assert.False(t, a.IsStopword("python"))
}

func TestAnalyzer_Summarize(t *testing.T) {
	a := newTestAnalyzer(t)

	content := "Python is popular. It runs everywhere. Teams like it. This fourth sentence is dropped."
	summary := a.Summarize(content, []string{"python"}, 0)

	assert.Contains(t, summary, `<span style="background-color: yellow;">Python</span> is popular.`)
	assert.Contains(t, summary, "Teams like it.")
	assert.NotContains(t, summary, "fourth")
}

func TestAnalyzer_SummarizeSentenceCount(t *testing.T) {
	a := newTestAnalyzer(t)

	summary := a.Summarize("First one here. Second one here. Third one here.", nil, 1)
	assert.Contains(t, summary, "First one here.")
	assert.NotContains(t, summary, "Second")
}

func TestAnalyzer_SummarizeEscapesMarkup(t *testing.T) {
	a := newTestAnalyzer(t)

	summary := a.Summarize("<p>Use &lt;script&gt; tags with python.</p>", []string{"python"}, 3)
	assert.NotContains(t, summary, "<script>")
	assert.Contains(t, summary, "&lt;script&gt;")
	assert.Contains(t, summary, highlightOpen+"python"+highlightClose)
	assert.Empty(t, a.Summarize("", []string{"python"}, 3))
}

func TestHighlight(t *testing.T) {
	got := Highlight("Python and python, but not pythonic.", []string{"python"})
	assert.Equal(t,
		highlightOpen+"Python"+highlightClose+" and "+highlightOpen+"python"+highlightClose+", but not pythonic.",
		got)
}

func TestHighlight_UnicodeWordBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		keywords []string
		want     string
	}{
		{"accented keyword", "Ein Artikel über Café Kultur", []string{"café"}, "Ein Artikel über " + highlightOpen + "Café" + highlightClose + " Kultur"},
		{"accented suffix", "I love pythoné stuff", []string{"python"}, "I love pythoné stuff"},
		{"accented prefix", "épython and python", []string{"python"}, "épython and " + highlightOpen + "python" + highlightClose},
		{"underscore joins words", "snake_python python_snake", []string{"python"}, "snake_python python_snake"},
		{"digits join words", "python3 python", []string{"python"}, "python3 " + highlightOpen + "python" + highlightClose},
		{"shorter keyword when longer is glued", "data sciences", []string{"data science", "data"}, highlightOpen + "data" + highlightClose + " sciences"},
		{"non-latin script", "Новости: Питон и питоны", []string{"питон"}, "Новости: " + highlightOpen + "Питон" + highlightClose + " и питоны"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Highlight(tc.input, tc.keywords))
		})
	}
}

func TestAnalyzer_SummarizeHighlightsAccentedKeyword(t *testing.T) {
	a := newTestAnalyzer(t)
	got := a.Summarize("Ein Artikel über Café Kultur", []string{"café"}, 3)
	assert.Equal(t, "Ein Artikel über "+highlightOpen+"Café"+highlightClose+" Kultur", got)
}

func TestHighlight_DoesNotRescanInsertedMarkup(t *testing.T) {
	got := Highlight("go fast", []string{"go", "background", "span"})
	assert.Equal(t, highlightOpen+"go"+highlightClose+" fast", got)
}

func TestHighlight_LongestKeywordFirst(t *testing.T) {
	got := Highlight("machine learning rocks", []string{"machine", "machine learning"})
	assert.Equal(t, highlightOpen+"machine learning"+highlightClose+" rocks", got)
}

func TestHighlight_IdentityWithoutOccurrences(t *testing.T) {
	inputs := []string{
		"",
		"Nothing to see here.",
		"Pythonic code & other <b>things</b>",
		strings.Repeat("lorem ipsum ", 50),
	}
	for _, in := range inputs {
		once := Highlight(in, []string{"python", "golang"})
		assert.Equal(t, in, once)
		assert.Equal(t, once, Highlight(once, []string{"python", "golang"}))
	}
	assert.Equal(t, "python", Highlight("python", nil))
	assert.Equal(t, "python", Highlight("python", []string{"  "}))
}
