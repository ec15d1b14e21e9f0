package notification

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

// Mirror republishes broadcast notifications outside the websocket hub.
type Mirror interface {
	Publish(n *Notification) error
}

type nopMirror struct{}

func (nopMirror) Publish(*Notification) error { return nil }

// sender is the part of tgbotapi.BotAPI the mirror uses.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramMirror struct {
	bot    sender
	chatID int64
}

// NewMirror returns a Telegram mirror when token and chatID are set and a no-op otherwise.
func NewMirror(token string, chatID int64) Mirror {
	if token == "" || chatID == 0 {
		return nopMirror{}
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Warn().Err(err).Msg("telegram bot unavailable, notifications will not be mirrored")
		return nopMirror{}
	}
	log.Info().Str("bot", bot.Self.UserName).Int64("chat_id", chatID).Msg("mirroring broadcasts to telegram")
	return &TelegramMirror{bot: bot, chatID: chatID}
}

func (m *TelegramMirror) Publish(n *Notification) error {
	msg := tgbotapi.NewMessage(m.chatID, formatMessage(n))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if _, err := m.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

func formatMessage(n *Notification) string {
	icon := "📣"
	switch n.Type {
	case TypeMatch:
		icon = "🏏"
	case TypeAlert:
		icon = "⚠️"
	}
	return fmt.Sprintf("%s <b>%s</b>\n%s", icon, tgbotapi.EscapeText(tgbotapi.ModeHTML, n.Title), tgbotapi.EscapeText(tgbotapi.ModeHTML, n.Message))
}
