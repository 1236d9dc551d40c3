package calendar

import (
	"context"
	"time"

	"github.com/hiresync/scheduler/internal/scheduling"
	"github.com/hiresync/scheduler/pkg/logger"
)

type Config struct {
	DaysAhead    int `yaml:"days_ahead"`
	DayStartHour int `yaml:"day_start_hour"`
	DayEndHour   int `yaml:"day_end_hour"`
	MaxSlots     int `yaml:"max_slots"`
}

func (c Config) withDefaults() Config {
	if c.DaysAhead == 0 {
		c.DaysAhead = 14
	}
	if c.DayStartHour == 0 {
		c.DayStartHour = 9
	}
	if c.DayEndHour == 0 {
		c.DayEndHour = 18
	}
	if c.MaxSlots == 0 {
		c.MaxSlots = 20
	}
	return c
}

// NewSlotSource builds the default availability provider: hourly
// business-hour slots over the next days, weekends skipped.
//
// TODO: query the interviewer's actual calendar (Google Calendar /
// Outlook) and subtract busy intervals.
func NewSlotSource(cfg Config, log logger.Logger) *SlotSource {
	return &SlotSource{
		cfg:   cfg.withDefaults(),
		log:   log.With("calendar_slots"),
		clock: time.Now,
	}
}

type SlotSource struct {
	cfg   Config
	log   logger.Logger
	clock func() time.Time
}

// WithClock replaces the time source, for tests.
func (s *SlotSource) WithClock(clock func() time.Time) *SlotSource {
	s.clock = clock
	return s
}

func (s *SlotSource) GetAvailableSlots(
	_ context.Context,
	interviewerID string,
	durationMinutes int,
	preferred []time.Time,
) ([]time.Time, error) {
	now := s.clock()
	start := time.Date(now.Year(), now.Month(), now.Day(), s.cfg.DayStartHour, 0, 0, 0, now.Location())

	var out []time.Time
	for _, p := range preferred {
		if p.After(now) && s.fits(p, durationMinutes) {
			out = appendSlot(out, p)
		}
	}

	for day := 0; day < s.cfg.DaysAhead && len(out) < s.cfg.MaxSlots; day++ {
		date := start.AddDate(0, 0, day)
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			continue
		}

		for hour := s.cfg.DayStartHour; hour < s.cfg.DayEndHour && len(out) < s.cfg.MaxSlots; hour++ {
			slot := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
			if !slot.After(now) {
				continue
			}
			if s.fits(slot, durationMinutes) {
				out = appendSlot(out, slot)
			}
		}
	}

	s.log.Debugf("generated %d slots for interviewer %s", len(out), interviewerID)
	return out, nil
}

// fits reports whether a slot of the given duration ends within the
// working day.
func (s *SlotSource) fits(slot time.Time, durationMinutes int) bool {
	if slot.Hour() < s.cfg.DayStartHour {
		return false
	}
	end := slot.Add(time.Duration(durationMinutes) * time.Minute)
	dayEnd := time.Date(slot.Year(), slot.Month(), slot.Day(), s.cfg.DayEndHour, 0, 0, 0, slot.Location())
	return !end.After(dayEnd)
}

func appendSlot(slots []time.Time, t time.Time) []time.Time {
	for _, s := range slots {
		if s.Equal(t) {
			return slots
		}
	}
	return append(slots, t)
}

var _ scheduling.AvailabilityProvider = (*SlotSource)(nil)
