package scheduling

import (
	"context"
	"time"

	"github.com/hiresync/scheduler/pkg/errors"
)

// ReminderWindow identifies one of the two reminder leads. Each window
// fires at most once per interview, tracked by its own flag.
type ReminderWindow int

const (
	Reminder24h ReminderWindow = iota
	Reminder1h
)

func (w ReminderWindow) Lead() time.Duration {
	if w == Reminder1h {
		return time.Hour
	}
	return 24 * time.Hour
}

func (w ReminderWindow) String() string {
	if w == Reminder1h {
		return "1h"
	}
	return "24h"
}

type DueReminder struct {
	Interview Interview
	Window    ReminderWindow
}

// ReminderDue is the pure due predicate: the interview still has a
// binding time in the future, now is inside the window's lead, and the
// window's flag is not set yet. External schedulers drive the timing;
// the coordinator holds no timers.
func ReminderDue(i Interview, w ReminderWindow, now time.Time) bool {
	if !i.Status.Confirmed() || i.ScheduledAt == nil {
		return false
	}
	if !i.ScheduledAt.After(now) {
		return false
	}
	switch w {
	case Reminder24h:
		if i.Reminder24hSent {
			return false
		}
	case Reminder1h:
		if i.Reminder1hSent {
			return false
		}
	}
	return !now.Before(i.ScheduledAt.Add(-w.Lead()))
}

// DueReminders lists interviews due for a reminder at now. When both
// windows are due the narrower one wins; the wider flag is still set on
// send so it cannot fire later.
func (c *Coordinator) DueReminders(ctx context.Context, now time.Time) ([]DueReminder, error) {
	upcoming, err := c.repo.Select(ctx, func(i Interview) bool {
		return i.Status.Confirmed() && i.ScheduledAt != nil && i.ScheduledAt.After(now)
	})
	if err != nil {
		return nil, errors.WrapFail(err, "select upcoming interviews")
	}

	var due []DueReminder
	for _, i := range upcoming {
		if ReminderDue(i, Reminder1h, now) {
			due = append(due, DueReminder{Interview: i, Window: Reminder1h})
			continue
		}
		if ReminderDue(i, Reminder24h, now) {
			due = append(due, DueReminder{Interview: i, Window: Reminder24h})
		}
	}
	return due, nil
}

// MarkReminderSent sets the window's flag. Flags are monotonic: marking
// an already marked window is a no-op, so dispatch stays idempotent.
func (c *Coordinator) MarkReminderSent(ctx context.Context, id string, w ReminderWindow) error {
	_, err := c.repo.Update(ctx, id, func(i *Interview) error {
		switch w {
		case Reminder24h:
			if i.Reminder24hSent {
				return nil
			}
			i.Reminder24hSent = true
		case Reminder1h:
			if i.Reminder1hSent {
				return nil
			}
			i.Reminder1hSent = true
		}
		i.UpdatedAt = c.clock()
		return nil
	})
	return err
}

// SendReminder delivers one due reminder to both parties and marks the
// window. If nobody could be notified the flag stays unset and the next
// sweep retries.
func (c *Coordinator) SendReminder(ctx context.Context, due DueReminder) error {
	i := due.Interview

	// The record may have moved since the due check.
	fresh, err := c.repo.Get(ctx, i.ID)
	if err != nil {
		return errors.WrapFail(err, "get interview")
	}
	if fresh == nil || !ReminderDue(*fresh, due.Window, c.clock()) {
		return nil
	}
	i = *fresh

	cand, ivr, err := c.parties(ctx, &i)
	if err != nil {
		return err
	}

	left := i.ScheduledAt.Sub(c.clock()).Round(time.Minute)
	msg := reminder(i, left)

	notified := 0
	for _, p := range []*Person{cand, ivr} {
		err := c.notify.Send(ctx, *p, msg)
		if err != nil {
			c.log.Warn(errors.Wrapf(ErrNotificationFailed, "%s reminder to %s: %s", due.Window, p.ID, err))
			continue
		}
		notified++
	}

	if notified == 0 {
		return errors.Wrapf(ErrNotificationFailed, "%s reminder for interview %s", due.Window, i.ID)
	}

	// A later window implies earlier ones are moot.
	if due.Window == Reminder1h {
		err = c.MarkReminderSent(ctx, i.ID, Reminder24h)
		if err != nil {
			return err
		}
	}
	return c.MarkReminderSent(ctx, i.ID, due.Window)
}
