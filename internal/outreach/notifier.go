package outreach

import (
	"context"

	"github.com/hiresync/scheduler/internal/scheduling"
	"github.com/hiresync/scheduler/pkg/errors"
	"github.com/hiresync/scheduler/pkg/logger"
)

type Config struct {
	Kafka    KafkaConfig    `yaml:"kafka"`
	Telegram TelegramConfig `yaml:"telegram"`
}

// New assembles the notifier stack from config: every configured
// channel gets the message, and delivery errors are collapsed. With no
// channels configured messages only hit the log.
func New(cfg Config, log logger.Logger) (scheduling.Notifier, error) {
	var channels []scheduling.Notifier

	if len(cfg.Kafka.Brokers) > 0 {
		channels = append(channels, NewKafka(cfg.Kafka, log))
	}

	if cfg.Telegram.Token != "" {
		tg, err := NewTelegram(cfg.Telegram, log)
		if err != nil {
			return nil, errors.WrapFail(err, "init telegram notifier")
		}
		channels = append(channels, tg)
	}

	if len(channels) == 0 {
		return logOnly{log: log.With("outreach")}, nil
	}

	return Fanout(channels...), nil
}

// Fanout delivers to every channel and reports the collapsed failures.
func Fanout(channels ...scheduling.Notifier) scheduling.Notifier {
	return fanout(channels)
}

type fanout []scheduling.Notifier

func (f fanout) Send(ctx context.Context, to scheduling.Person, msg scheduling.Message) error {
	var errs []error
	for _, ch := range f {
		err := ch.Send(ctx, to, msg)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Collapse(errs)
}

type logOnly struct {
	log logger.Logger
}

func (l logOnly) Send(_ context.Context, to scheduling.Person, msg scheduling.Message) error {
	l.log.Infof("would send %s for interview %s to %s", msg.Kind, msg.InterviewID, to.ID)
	return nil
}
