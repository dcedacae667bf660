package di

import (
	"context"
	"testing"

	"github.com/reshetovitsme/rss-digest/internal/modules/digest/domain"
	digestService "github.com/reshetovitsme/rss-digest/internal/modules/digest/service"
	notifyService "github.com/reshetovitsme/rss-digest/internal/modules/notify/service"
	"github.com/reshetovitsme/rss-digest/internal/shared/config"
	httpServer "github.com/reshetovitsme/rss-digest/internal/transport/http"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		HTTPPort:         "8080",
		FeedURL:          "https://example.com/rss",
		Keywords:         []string{"python"},
		RefreshInterval:  30,
		SummarySentences: 3,
		PreviewLength:    500,
		FetchTimeout:     10,
		UserAgent:        "rss-digest/1.0",
		SMTPHost:         "smtp.gmail.com",
		SMTPPort:         587,
		SMTPTimeout:      15,
		SMTPTLSPolicy:    config.TLSPolicyMandatory,
		TelegramAPIURL:   "https://api.telegram.org",
	}
}

func TestSetup_ResolvesServices(t *testing.T) {
	injector := Setup(testConfig())

	server, err := do.Invoke[*httpServer.Server](injector)
	require.NoError(t, err)
	assert.NotNil(t, server)

	digest := do.MustInvoke[*digestService.Service](injector)
	assert.False(t, digest.TelegramEnabled())
	assert.Equal(t, domain.FilterConfig{
		FeedURL:         "https://example.com/rss",
		Keywords:        []string{"python"},
		RefreshInterval: 30_000_000_000,
	}, digest.Config())

	_, err = do.Invoke[*notifyService.Telegram](injector)
	assert.Error(t, err, "telegram must not be registered without a token")

	assert.NoError(t, Shutdown(context.Background(), injector))
}

func TestSetup_TelegramEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.TelegramBotToken = "123456:test-token"
	cfg.TelegramChatID = 42

	injector := Setup(cfg)
	digest := do.MustInvoke[*digestService.Service](injector)
	assert.True(t, digest.TelegramEnabled())
}
