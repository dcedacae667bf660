package service

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/samber/oops"
)

// Telegram posts digests to a single chat
type Telegram struct {
	bot    *bot.Bot
	chatID int64
}

// NewTelegram creates a Telegram sender for chatID using an initialized bot
func NewTelegram(b *bot.Bot, chatID int64) *Telegram {
	return &Telegram{bot: b, chatID: chatID}
}

// Send posts text formatted with Telegram's HTML subset
func (t *Telegram) Send(ctx context.Context, text string) error {
	_, err := t.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    t.chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		return oops.With("chat_id", t.chatID, "context", "failed to send telegram message").Wrap(err)
	}
	return nil
}
