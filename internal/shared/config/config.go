package config

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/reshetovitsme/rss-digest/internal/shared/errors"
	"github.com/reshetovitsme/rss-digest/internal/shared/text"
	"github.com/reshetovitsme/rss-digest/internal/shared/validate"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

type Config struct {
	HTTPPort         string    `koanf:"http_port"`
	FeedURL          string    `koanf:"feed_url"`
	Keywords         []string  `koanf:"-"`
	RefreshInterval  int       `koanf:"refresh_interval"`
	SummarySentences int       `koanf:"summary_sentences"`
	PreviewLength    int       `koanf:"preview_length"`
	FetchTimeout     int       `koanf:"fetch_timeout"`
	UserAgent        string    `koanf:"user_agent"`
	SMTPHost         string    `koanf:"smtp_host"`
	SMTPPort         int       `koanf:"smtp_port"`
	SMTPTimeout      int       `koanf:"smtp_timeout"`
	SMTPTLSPolicy    TLSPolicy `koanf:"-"`
	ActionCooldown   int       `koanf:"action_cooldown"`
	TelegramBotToken string    `koanf:"telegram_bot_token"`
	TelegramChatID   int64     `koanf:"telegram_chat_id"`
	TelegramAPIURL   string    `koanf:"telegram_api_url"`
	LogLevel         string    `koanf:"log_level"`
	LogFile          string    `koanf:"log_file"`
	AppEnv           AppEnv    `koanf:"-"`
}

var configFiles = []string{
	"config.yaml",
	"config.yml",
	"config.json",
	"config.toml",
}

// Load reads the first config file found in the working directory, then
// applies environment overrides and defaults.
func Load() (*Config, error) {
	k := koanf.New(".")

	configFile, found := lo.Find(configFiles, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Environment variables override config file values
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	setDefaults(k)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	switch v := k.Get("keywords").(type) {
	case string:
		cfg.Keywords = text.ParseKeywords(v)
	case []interface{}:
		cfg.Keywords = text.NormalizeKeywords(lo.FilterMap(v, func(item interface{}, _ int) (string, bool) {
			s, ok := item.(string)
			return s, ok
		}))
	}

	cfg.AppEnv = AppEnvProduction
	if appEnv, err := ParseAppEnv(k.String("app_env")); err == nil {
		cfg.AppEnv = appEnv
	}

	policy, err := ParseTLSPolicy(k.String("smtp_tls_policy"))
	if err != nil {
		return nil, oops.With("smtp_tls_policy", k.String("smtp_tls_policy")).Wrapf(errors.ErrInvalidConfig, "%v", err)
	}
	cfg.SMTPTLSPolicy = policy

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(k *koanf.Koanf) {
	defaults := map[string]interface{}{
		"http_port":         "8080",
		"feed_url":          "https://example.com/rss",
		"keywords":          "python, data science, machine learning",
		"refresh_interval":  30,
		"summary_sentences": 3,
		"preview_length":    500,
		"fetch_timeout":     10,
		"user_agent":        "rss-digest/1.0",
		"smtp_host":         "smtp.gmail.com",
		"smtp_port":         587,
		"smtp_timeout":      15,
		"smtp_tls_policy":   TLSPolicyMandatory.String(),
		"action_cooldown":   5,
		"telegram_api_url":  "https://api.telegram.org",
		"log_level":         "info",
		"app_env":           AppEnvProduction.String(),
	}
	for key, value := range defaults {
		if !k.Exists(key) {
			k.Set(key, value)
		}
	}
}

// Validate checks values that would otherwise fail later at runtime.
func (c *Config) Validate() error {
	if c.RefreshInterval <= 0 {
		return oops.With("refresh_interval", c.RefreshInterval).Wrapf(errors.ErrInvalidConfig, "refresh interval must be positive")
	}
	if c.FetchTimeout <= 0 || c.SMTPTimeout <= 0 {
		return oops.With("fetch_timeout", c.FetchTimeout, "smtp_timeout", c.SMTPTimeout).Wrapf(errors.ErrInvalidConfig, "timeouts must be positive")
	}
	if c.ActionCooldown < 0 {
		return oops.With("action_cooldown", c.ActionCooldown).Wrapf(errors.ErrInvalidConfig, "action cooldown must not be negative")
	}
	if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
		return oops.With("smtp_port", c.SMTPPort).Wrapf(errors.ErrInvalidConfig, "smtp port out of range")
	}
	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port <= 0 || port > 65535 {
		return oops.With("http_port", c.HTTPPort).Wrapf(errors.ErrInvalidConfig, "http port out of range")
	}
	if err := validate.FeedURL(c.FeedURL); err != nil {
		return oops.With("feed_url", c.FeedURL).Wrap(err)
	}
	return nil
}

// Addr is the listen address of the web UI.
func (c *Config) Addr() string {
	return net.JoinHostPort("", c.HTTPPort)
}

func (c *Config) RefreshEvery() time.Duration {
	return time.Duration(c.RefreshInterval) * time.Second
}

func (c *Config) FetchTimeoutDuration() time.Duration {
	return time.Duration(c.FetchTimeout) * time.Second
}

func (c *Config) SMTPTimeoutDuration() time.Duration {
	return time.Duration(c.SMTPTimeout) * time.Second
}

func (c *Config) ActionCooldownDuration() time.Duration {
	return time.Duration(c.ActionCooldown) * time.Second
}

// TelegramEnabled reports whether a digest can be posted to Telegram.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != 0
}
