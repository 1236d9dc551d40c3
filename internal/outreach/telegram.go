package outreach

import (
	"context"
	"fmt"

	"gopkg.in/telebot.v3"

	"github.com/hiresync/scheduler/internal/scheduling"
	"github.com/hiresync/scheduler/pkg/errors"
	"github.com/hiresync/scheduler/pkg/logger"
)

type TelegramConfig struct {
	Token string `yaml:"token"`
}

// NewTelegram is the direct chat channel for parties that linked a
// telegram account. Send-only, no poller.
func NewTelegram(cfg TelegramConfig, log logger.Logger) (*TelegramNotifier, error) {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:   cfg.Token,
		Offline: false,
	})
	if err != nil {
		return nil, errors.WrapFail(err, "create telegram bot")
	}

	return &TelegramNotifier{
		bot: bot,
		log: log.With("telegram_notifier"),
	}, nil
}

type TelegramNotifier struct {
	bot *telebot.Bot
	log logger.Logger
}

func (t *TelegramNotifier) Send(_ context.Context, to scheduling.Person, msg scheduling.Message) error {
	if to.Chat == 0 {
		// Party has no linked chat, other channels cover them.
		t.log.Debugf("no telegram chat for %s, skipping %s", to.ID, msg.Kind)
		return nil
	}

	text := fmt.Sprintf("*%s*\n%s", msg.Subject, msg.Body)

	_, err := t.bot.Send(telebot.ChatID(to.Chat), text, &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
	return errors.WrapFail(err, "send telegram message")
}

var _ scheduling.Notifier = (*TelegramNotifier)(nil)
