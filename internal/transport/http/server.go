package http

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/reshetovitsme/rss-digest/internal/modules/digest/domain"
	digestService "github.com/reshetovitsme/rss-digest/internal/modules/digest/service"
	feedService "github.com/reshetovitsme/rss-digest/internal/modules/feed/service"
	notifyDomain "github.com/reshetovitsme/rss-digest/internal/modules/notify/domain"
	"github.com/reshetovitsme/rss-digest/internal/shared/config"
	sloghttp "github.com/samber/slog-http"
	"golang.org/x/time/rate"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"safe": func(s string) template.HTML { return template.HTML(s) },
}).ParseFS(templateFS, "templates/*.html"))

// Server renders the digest web UI
type Server struct {
	cfg     *config.Config
	digest  *digestService.Service
	logger  *slog.Logger
	refresh *rate.Limiter
	send    *rate.Limiter
	server  *http.Server
	now     func() time.Time
}

type smtpForm struct {
	Host      string
	Port      int
	Username  string
	Recipient string
}

type pageView struct {
	State    domain.State
	Seconds  int
	Notice   *domain.Notice
	SMTP     smtpForm
	Telegram bool
}

// New creates a new HTTP server
func New(cfg *config.Config, digest *digestService.Service) *Server {
	return &Server{
		cfg:     cfg,
		digest:  digest,
		logger:  slog.Default(),
		refresh: newLimiter(cfg.ActionCooldownDuration()),
		send:    newLimiter(cfg.ActionCooldownDuration()),
		now:     time.Now,
	}
}

func newLimiter(cooldown time.Duration) *rate.Limiter {
	if cooldown <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(cooldown), 1)
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Handler returns the routes wrapped in logging and recovery middleware
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /articles", s.handleArticles)
	mux.HandleFunc("POST /settings", s.handleSettings)
	mux.HandleFunc("POST /refresh", s.handleRefresh)
	mux.HandleFunc("POST /send", s.handleSendEmail)
	mux.HandleFunc("POST /send/telegram", s.handleSendTelegram)
	mux.HandleFunc("GET /api/digest", s.handleDigestJSON)
	mux.HandleFunc("GET /rss", s.handleRSSFeed)
	mux.HandleFunc("GET /health", s.handleHealth)

	handler := sloghttp.Recovery(mux)
	return sloghttp.New(s.logger)(handler)
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: s.cfg.SMTPTimeoutDuration() + s.cfg.FetchTimeoutDuration() + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Web UI starting", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, nil, s.defaultSMTPForm())
}

func (s *Server) handleArticles(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "articles", s.view(nil, smtpForm{}))
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	if _, err := s.digest.Configure(r.Context(), r.PostFormValue("feed_url"), r.PostFormValue("keywords")); err != nil {
		s.logger.Warn("Rejected filter settings", "error", err)
		notice := domain.Notice{Kind: domain.NoticeKindWarning, Message: "Please enter a valid http(s) RSS feed URL."}
		s.renderPage(w, http.StatusBadRequest, &notice, s.defaultSMTPForm())
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if !s.refresh.Allow() {
		notice := domain.Notice{Kind: domain.NoticeKindWarning, Message: "Please wait a few seconds before refreshing again."}
		s.renderPage(w, http.StatusTooManyRequests, &notice, s.defaultSMTPForm())
		return
	}
	s.digest.Refresh(r.Context())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleSendEmail(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	form := smtpForm{
		Host:      strings.TrimSpace(r.PostFormValue("smtp_host")),
		Username:  strings.TrimSpace(r.PostFormValue("smtp_user")),
		Recipient: strings.TrimSpace(r.PostFormValue("recipient")),
	}
	port, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("smtp_port")))
	if err != nil || port <= 0 || port > 65535 {
		notice := domain.Notice{Kind: domain.NoticeKindWarning, Message: "Please enter a valid SMTP port."}
		s.renderPage(w, http.StatusBadRequest, &notice, form)
		return
	}
	form.Port = port

	if !s.send.Allow() {
		notice := domain.Notice{Kind: domain.NoticeKindWarning, Message: "Please wait a few seconds before sending again."}
		s.renderPage(w, http.StatusTooManyRequests, &notice, form)
		return
	}

	notice := s.digest.SendEmail(r.Context(), notifyDomain.Credentials{
		Host:      form.Host,
		Port:      form.Port,
		Username:  form.Username,
		Password:  r.PostFormValue("smtp_password"),
		Recipient: form.Recipient,
	})
	s.renderPage(w, http.StatusOK, &notice, form)
}

func (s *Server) handleSendTelegram(w http.ResponseWriter, r *http.Request) {
	if !s.send.Allow() {
		notice := domain.Notice{Kind: domain.NoticeKindWarning, Message: "Please wait a few seconds before sending again."}
		s.renderPage(w, http.StatusTooManyRequests, &notice, s.defaultSMTPForm())
		return
	}
	notice := s.digest.SendTelegram(r.Context())
	s.renderPage(w, http.StatusOK, &notice, s.defaultSMTPForm())
}

func (s *Server) handleDigestJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(s.digest.State()); err != nil {
		s.logger.Error("Error encoding digest", "error", err)
	}
}

func (s *Server) handleRSSFeed(w http.ResponseWriter, r *http.Request) {
	baseURL := fmt.Sprintf("%s://%s", getScheme(r), r.Host)

	rss, err := feedService.Publish(s.digest.State(), baseURL).ToRss()
	if err != nil {
		s.logger.Error("Error converting digest to RSS", "error", err)
		http.Error(w, "Failed to generate RSS", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(rss))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) defaultSMTPForm() smtpForm {
	return smtpForm{Host: s.cfg.SMTPHost, Port: s.cfg.SMTPPort}
}

func (s *Server) view(notice *domain.Notice, form smtpForm) pageView {
	state := s.digest.State()
	return pageView{
		State:    state,
		Seconds:  state.SecondsUntilRefresh(s.now()),
		Notice:   notice,
		SMTP:     form,
		Telegram: s.digest.TelegramEnabled(),
	}
}

func (s *Server) renderPage(w http.ResponseWriter, status int, notice *domain.Notice, form smtpForm) {
	s.render(w, status, "index", s.view(notice, form))
}

func (s *Server) render(w http.ResponseWriter, status int, name string, view pageView) {
	var buf strings.Builder
	if err := templates.ExecuteTemplate(&buf, name, view); err != nil {
		s.logger.Error("Error rendering page", "template", name, "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(buf.String()))
}

func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
