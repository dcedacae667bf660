package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBot(t *testing.T, handler http.HandlerFunc) *bot.Bot {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	b, err := bot.New("123456:test-token", bot.WithSkipGetMe(), bot.WithServerURL(srv.URL))
	require.NoError(t, err)
	return b
}

func TestTelegram_Send(t *testing.T) {
	var path, chatID, text string
	b := newTestBot(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))
		chatID = r.FormValue("chat_id")
		text = r.FormValue("text")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"}}}`)
	})

	err := NewTelegram(b, 42).Send(context.Background(), "<b>Filtered Articles</b>")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "/sendMessage"), path)
	assert.Equal(t, "42", chatID)
	assert.Equal(t, "<b>Filtered Articles</b>", text)
}

func TestTelegram_Send_APIError(t *testing.T) {
	b := newTestBot(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`)
	})

	err := NewTelegram(b, 42).Send(context.Background(), "hello")
	assert.Error(t, err)
}
