package calendar

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hiresync/scheduler/internal/scheduling"
	"github.com/hiresync/scheduler/pkg/errors"
	"github.com/hiresync/scheduler/pkg/logger"
)

// NewMeetProvisioner issues meet-style handles and tracks reservations
// so updates for unknown meetings fail loudly.
func NewMeetProvisioner(log logger.Logger) *MeetProvisioner {
	return &MeetProvisioner{
		reserved: make(map[string]time.Time),
		log:      log.With("calendar_meetings"),
	}
}

type MeetProvisioner struct {
	mu       sync.Mutex
	reserved map[string]time.Time
	log      logger.Logger
}

func (p *MeetProvisioner) Create(
	_ context.Context,
	title string,
	start time.Time,
	durationMinutes int,
	attendees []string,
) (scheduling.MeetingHandle, error) {
	if durationMinutes <= 0 {
		return scheduling.MeetingHandle{}, errors.Error("meeting duration must be positive")
	}
	if len(attendees) == 0 {
		return scheduling.MeetingHandle{}, errors.Error("meeting needs at least one attendee")
	}

	id := fmt.Sprintf("meet-%d", start.Unix())
	handle := scheduling.MeetingHandle{
		ID:   id,
		Link: "https://meet.google.com/" + id,
	}

	p.mu.Lock()
	p.reserved[id] = start
	p.mu.Unlock()

	p.log.Infof("reserved meeting %s (%q, %d min, %d attendees)", id, title, durationMinutes, len(attendees))
	return handle, nil
}

func (p *MeetProvisioner) Update(
	_ context.Context,
	meetingID string,
	newStart time.Time,
	durationMinutes int,
) error {
	if durationMinutes <= 0 {
		return errors.Error("meeting duration must be positive")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.reserved[meetingID]; !ok {
		return errors.Failf("find meeting %q to update", meetingID)
	}
	p.reserved[meetingID] = newStart

	p.log.Infof("moved meeting %s to %s", meetingID, newStart.Format(time.RFC3339))
	return nil
}

var _ scheduling.MeetingProvisioner = (*MeetProvisioner)(nil)
