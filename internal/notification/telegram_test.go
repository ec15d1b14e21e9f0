package notification

import (
	"errors"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

func TestTelegramMirrorPublish(t *testing.T) {
	bot := &fakeSender{}
	m := &TelegramMirror{bot: bot, chatID: -100}

	if err := m.Publish(&Notification{Title: "<Final>", Message: "Kick-off & go", Type: TypeAlert}); err != nil {
		t.Fatal(err)
	}
	if len(bot.sent) != 1 {
		t.Fatalf("sent %d messages", len(bot.sent))
	}
	msg := bot.sent[0]
	if msg.ChatID != -100 || msg.ParseMode != tgbotapi.ModeHTML {
		t.Errorf("chat=%d mode=%q", msg.ChatID, msg.ParseMode)
	}
	if !strings.Contains(msg.Text, "<b>&lt;Final&gt;</b>") || !strings.Contains(msg.Text, "Kick-off &amp; go") {
		t.Errorf("text = %q", msg.Text)
	}
}

func TestTelegramMirrorError(t *testing.T) {
	m := &TelegramMirror{bot: &fakeSender{err: errors.New("forbidden")}, chatID: 1}
	if err := m.Publish(&Notification{Title: "t", Message: "m"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewMirrorWithoutConfig(t *testing.T) {
	if _, ok := NewMirror("", 0).(nopMirror); !ok {
		t.Error("expected no-op mirror")
	}
	if _, ok := NewMirror("token", 0).(nopMirror); !ok {
		t.Error("expected no-op mirror without chat id")
	}
}
