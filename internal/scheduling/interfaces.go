package scheduling

import (
	"context"
	"time"
)

// Person is a party known to the directory: the target data the
// coordinator needs to compose and address notifications.
type Person struct {
	ID       string
	FullName string
	Email    string
	Phone    string
	Chat     int64
}

// Directory resolves party references. A nil Person with nil error
// means the reference does not exist.
type Directory interface {
	Candidate(ctx context.Context, id string) (*Person, error)
	Interviewer(ctx context.Context, id string) (*Person, error)
}

// AvailabilityProvider yields candidate time slots for an interviewer,
// chronological, possibly empty.
type AvailabilityProvider interface {
	GetAvailableSlots(ctx context.Context, interviewerID string, durationMinutes int, preferred []time.Time) ([]time.Time, error)
}

// MeetingProvisioner reserves a meeting for a confirmed time and moves
// an existing reservation on reschedule.
type MeetingProvisioner interface {
	Create(ctx context.Context, title string, start time.Time, durationMinutes int, attendees []string) (MeetingHandle, error)
	Update(ctx context.Context, meetingID string, newStart time.Time, durationMinutes int) error
}

type MessageKind string

const (
	KindApprovalRequest  MessageKind = "approval_request"
	KindSlotOptions      MessageKind = "slot_options"
	KindConfirmation     MessageKind = "confirmation"
	KindRescheduleNotice MessageKind = "reschedule_notice"
	KindCancelNotice     MessageKind = "cancel_notice"
	KindReminder         MessageKind = "reminder"
)

type Message struct {
	Kind        MessageKind `json:"kind"`
	InterviewID string      `json:"interview_id"`
	Subject     string      `json:"subject"`
	Body        string      `json:"body"`
}

// Notifier delivers a message to one party. Failures are best-effort:
// the coordinator logs them and never rolls back a transition.
type Notifier interface {
	Send(ctx context.Context, to Person, msg Message) error
}

// Repo persists interviews. Update applies mutate atomically per record:
// at most one writer at a time observes and changes a given interview,
// and a mutate error aborts the write entirely.
type Repo interface {
	Insert(ctx context.Context, i Interview) (id string, err error)
	Get(ctx context.Context, id string) (*Interview, error)
	Update(ctx context.Context, id string, mutate func(*Interview) error) (*Interview, error)
	Select(ctx context.Context, match func(Interview) bool) ([]Interview, error)
	Close(ctx context.Context) error
}
