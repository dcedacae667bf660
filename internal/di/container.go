package di

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-telegram/bot"
	analysisService "github.com/reshetovitsme/rss-digest/internal/modules/analysis/service"
	digestDomain "github.com/reshetovitsme/rss-digest/internal/modules/digest/domain"
	digestService "github.com/reshetovitsme/rss-digest/internal/modules/digest/service"
	feedService "github.com/reshetovitsme/rss-digest/internal/modules/feed/service"
	notifyService "github.com/reshetovitsme/rss-digest/internal/modules/notify/service"
	"github.com/reshetovitsme/rss-digest/internal/shared/config"
	httpServer "github.com/reshetovitsme/rss-digest/internal/transport/http"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container. cfg is registered
// as-is so the caller can configure logging before anything is built.
func Setup(cfg *config.Config) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)

	// The lemma dictionary is loaded once and shared
	do.Provide(injector, func(i do.Injector) (*analysisService.Analyzer, error) {
		analyzer, err := analysisService.New()
		if err != nil {
			return nil, oops.With("context", "failed to initialize analyzer").Wrap(err)
		}
		return analyzer, nil
	})

	do.Provide(injector, func(i do.Injector) (*feedService.Fetcher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return feedService.NewFetcher(cfg.FetchTimeoutDuration(), cfg.UserAgent, cfg.PreviewLength), nil
	})

	do.Provide(injector, func(i do.Injector) (*notifyService.Mailer, error) {
		cfg := do.MustInvoke[*config.Config](i)
		mailer := notifyService.NewMailer(cfg.SMTPTimeoutDuration(), cfg.SMTPTLSPolicy)
		mailer.SetLogger(slog.Default())
		return mailer, nil
	})

	// Telegram is optional and only registered when configured
	if cfg.TelegramEnabled() {
		do.Provide(injector, func(i do.Injector) (*notifyService.Telegram, error) {
			cfg := do.MustInvoke[*config.Config](i)
			b, err := bot.New(cfg.TelegramBotToken, bot.WithSkipGetMe(), bot.WithServerURL(cfg.TelegramAPIURL))
			if err != nil {
				return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
			}
			return notifyService.NewTelegram(b, cfg.TelegramChatID), nil
		})
	}

	do.Provide(injector, func(i do.Injector) (*digestService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		analyzer, err := do.Invoke[*analysisService.Analyzer](i)
		if err != nil {
			return nil, err
		}

		var messenger digestService.MessageSender
		if cfg.TelegramEnabled() {
			telegram, err := do.Invoke[*notifyService.Telegram](i)
			if err != nil {
				return nil, err
			}
			messenger = telegram
		}

		filter := digestDomain.FilterConfig{
			FeedURL:         cfg.FeedURL,
			Keywords:        cfg.Keywords,
			RefreshInterval: cfg.RefreshEvery(),
		}
		svc := digestService.New(filter, cfg.SummarySentences,
			do.MustInvoke[*feedService.Fetcher](i),
			analyzer,
			do.MustInvoke[*notifyService.Mailer](i),
			messenger,
		)
		svc.SetLogger(slog.Default())
		return svc, nil
	})

	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		digest, err := do.Invoke[*digestService.Service](i)
		if err != nil {
			return nil, err
		}
		server := httpServer.New(cfg, digest)
		server.SetLogger(slog.Default())
		return server, nil
	})

	return injector
}

// Shutdown gracefully shuts down all services
func Shutdown(ctx context.Context, injector do.Injector) error {
	var errs []error

	if server, err := do.Invoke[*httpServer.Server](injector); err == nil && server != nil {
		if err := server.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	if digest, err := do.Invoke[*digestService.Service](injector); err == nil && digest != nil {
		digest.Stop()
	}

	return errors.Join(errs...)
}
