package errors

import "errors"

var (
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrInvalidFeedURL   = errors.New("feed url must be an absolute http(s) url")
	ErrMissingRecipient = errors.New("recipient email address is required")
	ErrNoArticles       = errors.New("no articles to send")
	ErrNoAuthMechanism  = errors.New("smtp server offers no supported auth mechanism")
	ErrTelegramDisabled = errors.New("telegram delivery is not configured")
)
