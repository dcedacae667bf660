package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/reshetovitsme/rss-digest/internal/modules/digest/domain"
	feedDomain "github.com/reshetovitsme/rss-digest/internal/modules/feed/domain"
	notifyDomain "github.com/reshetovitsme/rss-digest/internal/modules/notify/domain"
	"github.com/reshetovitsme/rss-digest/internal/shared/errors"
	"github.com/reshetovitsme/rss-digest/internal/shared/text"
	"github.com/reshetovitsme/rss-digest/internal/shared/validate"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

const EmailSubject = "RSS Feed Analysis Results"

// FeedFetcher downloads the entries of a feed
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]feedDomain.Entry, error)
}

// TextAnalyzer decides relevance and renders summaries
type TextAnalyzer interface {
	Matches(content string, keywords []string) bool
	Summarize(content string, keywords []string, n int) string
}

// EmailSender delivers an HTML digest
type EmailSender interface {
	Send(ctx context.Context, creds notifyDomain.Credentials, subject, htmlBody string) error
}

// MessageSender posts a digest to a chat
type MessageSender interface {
	Send(ctx context.Context, message string) error
}

// Service owns the digest state and refreshes it on a timer
type Service struct {
	fetcher   FeedFetcher
	analyzer  TextAnalyzer
	mailer    EmailSender
	messenger MessageSender
	sentences int
	logger    *slog.Logger
	now       func() time.Time

	mu         sync.RWMutex
	config     domain.FilterConfig
	state      domain.State
	generation uint64
	started    uint64 // refreshes begun
	applied    uint64 // sequence of the refresh that produced state

	rearm  chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a digest service for the initial filter config. messenger may be nil.
func New(cfg domain.FilterConfig, sentences int, fetcher FeedFetcher, analyzer TextAnalyzer, mailer EmailSender, messenger MessageSender) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Service{
		fetcher:   fetcher,
		analyzer:  analyzer,
		mailer:    mailer,
		messenger: messenger,
		sentences: sentences,
		logger:    slog.Default(),
		now:       time.Now,
		config:    cfg,
		rearm:     make(chan struct{}, 1),
		ctx:       ctx,
		cancel:    cancel,
	}
	s.state = domain.State{Config: cfg, NextRefresh: s.now()}
	return s
}

// SetLogger sets the logger
func (s *Service) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Start fetches once and then refreshes whenever the interval elapses
func (s *Service) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.pollLoop(ctx)
}

// Stop stops the poll loop and waits for it to exit
func (s *Service) Stop() {
	s.cancel()
	s.wg.Wait()
}

// State returns the current digest snapshot
func (s *Service) State() domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Config returns the filter config in effect
func (s *Service) Config() domain.FilterConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// TelegramEnabled reports whether SendTelegram can deliver
func (s *Service) TelegramEnabled() bool {
	return s.messenger != nil
}

// Configure installs a new feed URL and keyword list and refreshes with it.
// The refresh interval is kept.
func (s *Service) Configure(ctx context.Context, feedURL, keywordsCSV string) (domain.State, error) {
	feedURL = strings.TrimSpace(feedURL)
	if err := validate.FeedURL(feedURL); err != nil {
		return s.State(), oops.With("feed_url", feedURL).Wrap(err)
	}

	s.mu.Lock()
	s.config = domain.FilterConfig{
		FeedURL:         feedURL,
		Keywords:        text.ParseKeywords(keywordsCSV),
		RefreshInterval: s.config.RefreshInterval,
	}
	s.generation++
	s.mu.Unlock()

	s.logger.Info("Filter settings updated", "feed_url", feedURL, "keywords", keywordsCSV)
	return s.Refresh(ctx), nil
}

// Refresh fetches the feed, keeps the matching entries and stores the resulting
// snapshot. A failed fetch yields a snapshot with no articles.
func (s *Service) Refresh(ctx context.Context) domain.State {
	s.mu.Lock()
	cfg, generation := s.config, s.generation
	s.started++
	seq := s.started
	s.mu.Unlock()

	entries, err := s.fetcher.Fetch(ctx, cfg.FeedURL)
	if err != nil {
		s.logger.Warn("Feed fetch failed", "feed_url", cfg.FeedURL, "error", err)
		entries = nil
	}

	articles := s.filter(entries, cfg.Keywords)
	now := s.now()
	state := domain.State{
		Config:      cfg,
		Articles:    articles,
		RefreshedAt: now,
		NextRefresh: now.Add(cfg.RefreshInterval),
	}

	s.mu.Lock()
	if generation != s.generation || seq < s.applied {
		// Settings changed or a later refresh already landed; the newer one wins.
		current := s.state
		s.mu.Unlock()
		return current
	}
	s.state = state
	s.applied = seq
	s.mu.Unlock()

	select {
	case s.rearm <- struct{}{}:
	default:
	}

	s.logger.Info("Feed refreshed", "feed_url", cfg.FeedURL, "entries", len(entries), "matched", len(articles))
	return state
}

func (s *Service) filter(entries []feedDomain.Entry, keywords []string) []domain.Article {
	return lo.FilterMap(entries, func(entry feedDomain.Entry, _ int) (domain.Article, bool) {
		if !s.analyzer.Matches(entry.Title+" "+entry.Content, keywords) {
			return domain.Article{}, false
		}
		return domain.Article{
			Entry:   entry,
			Summary: s.analyzer.Summarize(entry.Content, keywords, s.sentences),
		}, true
	})
}

// SendEmail mails the current digest. Validation problems and delivery
// failures come back as notices; nothing is retried.
func (s *Service) SendEmail(ctx context.Context, creds notifyDomain.Credentials) domain.Notice {
	state := s.State()

	if err := validateSend(strings.TrimSpace(creds.Recipient), state); err != nil {
		return warningFor(err)
	}

	body, err := RenderEmail(state)
	if err != nil {
		s.logger.Error("Failed to render digest email", "error", err)
		return domain.Notice{Kind: domain.NoticeKindError, Message: fmt.Sprintf("Failed to send email: %v", err)}
	}

	creds.Recipient = strings.TrimSpace(creds.Recipient)
	if err := s.mailer.Send(ctx, creds, EmailSubject, body); err != nil {
		s.logger.Error("Failed to send digest email", append(creds.LogAttrs(), "error", err)...)
		return domain.Notice{Kind: domain.NoticeKindError, Message: fmt.Sprintf("Failed to send email: %v", err)}
	}

	return domain.Notice{Kind: domain.NoticeKindSuccess, Message: "Email sent successfully!"}
}

// SendTelegram posts the current digest to the configured chat
func (s *Service) SendTelegram(ctx context.Context) domain.Notice {
	if s.messenger == nil {
		return warningFor(errors.ErrTelegramDisabled)
	}
	state := s.State()
	if len(state.Articles) == 0 {
		return warningFor(errors.ErrNoArticles)
	}

	if err := s.messenger.Send(ctx, RenderTelegram(state)); err != nil {
		s.logger.Error("Failed to send digest to telegram", "error", err)
		return domain.Notice{Kind: domain.NoticeKindError, Message: fmt.Sprintf("Failed to send to Telegram: %v", err)}
	}
	return domain.Notice{Kind: domain.NoticeKindSuccess, Message: "Digest posted to Telegram!"}
}

func validateSend(recipient string, state domain.State) error {
	if recipient == "" {
		return errors.ErrMissingRecipient
	}
	if len(state.Articles) == 0 {
		return errors.ErrNoArticles
	}
	return nil
}

func warningFor(err error) domain.Notice {
	message := err.Error()
	switch err {
	case errors.ErrMissingRecipient:
		message = "Please enter a client email address."
	case errors.ErrNoArticles:
		message = "No articles to send. Please refresh or adjust your search criteria."
	case errors.ErrTelegramDisabled:
		message = "Telegram delivery is not configured."
	}
	return domain.Notice{Kind: domain.NoticeKindWarning, Message: message}
}

func (s *Service) pollLoop(ctx context.Context) {
	defer s.wg.Done()

	s.Refresh(ctx)

	timer := time.NewTimer(s.untilNextRefresh())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.ctx.Done():
			return
		case <-timer.C:
			s.Refresh(ctx)
		case <-s.rearm:
		}
		timer.Reset(s.untilNextRefresh())
	}
}

func (s *Service) untilNextRefresh() time.Duration {
	wait := s.State().NextRefresh.Sub(s.now())
	return max(wait, 0)
}
