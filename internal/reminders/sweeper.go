package reminders

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/hiresync/scheduler/internal/scheduling"
	"github.com/hiresync/scheduler/pkg/errors"
	"github.com/hiresync/scheduler/pkg/logger"
)

type Config struct {
	// Schedule is a cron spec, e.g. "@every 1m".
	Schedule string `yaml:"schedule"`
}

type coordinator interface {
	DueReminders(ctx context.Context, now time.Time) ([]scheduling.DueReminder, error)
	SendReminder(ctx context.Context, due scheduling.DueReminder) error
}

// Sweeper drives reminder timing from outside the coordinator: each
// tick asks which reminders are due and dispatches them. Sends are
// idempotent, so an overlapping or repeated sweep is harmless.
type Sweeper struct {
	cron  *cron.Cron
	coord coordinator
	log   logger.Logger
	spec  string
	clock func() time.Time
}

func New(cfg Config, log logger.Logger, coord coordinator) *Sweeper {
	spec := cfg.Schedule
	if spec == "" {
		spec = "@every 1m"
	}

	return &Sweeper{
		cron:  cron.New(),
		coord: coord,
		log:   log.With("reminder_sweeper"),
		spec:  spec,
		clock: func() time.Time { return time.Now().UTC() },
	}
}

func (s *Sweeper) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() { s.Sweep(ctx) })
	if err != nil {
		return errors.WrapFail(err, "register sweep job")
	}

	s.cron.Start()
	return nil
}

func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Sweeper) Sweep(ctx context.Context) {
	due, err := s.coord.DueReminders(ctx, s.clock())
	if err != nil {
		s.log.Error(errors.WrapFail(err, "collect due reminders"))
		return
	}

	for _, d := range due {
		err := s.coord.SendReminder(ctx, d)
		if err != nil {
			s.log.Warn(errors.WrapFailf(err, "send %s reminder for interview %s", d.Window, d.Interview.ID))
		}
	}
}
