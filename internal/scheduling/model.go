package scheduling

import (
	"time"
)

type Status string

const (
	// StatusPendingApproval is set when the interview has been created
	// and proposed slots are waiting for the interviewer.
	StatusPendingApproval Status = "pending_approval"

	// StatusSlotsApproved is set when the interviewer has narrowed the
	// proposed slots and the candidate may pick one.
	StatusSlotsApproved Status = "slots_approved"

	// StatusScheduled is set when the candidate has confirmed a slot
	// and a meeting has been provisioned.
	StatusScheduled Status = "scheduled"

	// StatusRescheduled keeps scheduled semantics but records that the
	// binding time has been moved at least once.
	StatusRescheduled Status = "rescheduled"

	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether no further transitions are allowed.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Confirmed reports whether the interview has a binding time.
func (s Status) Confirmed() bool {
	return s == StatusScheduled || s == StatusRescheduled
}

type Role int

const (
	RoleInterviewer Role = iota
	RoleCandidate
)

func (r Role) String() string {
	if r == RoleCandidate {
		return "candidate"
	}
	return "interviewer"
}

// MeetingHandle is the (id, link) pair issued by the meeting provisioner.
type MeetingHandle struct {
	ID   string `json:"meeting_id"   bson:"meeting_id"`
	Link string `json:"meeting_link" bson:"meeting_link"`
}

// Interview is one scheduling negotiation between one candidate and one
// interviewer for one job. Parties are immutable after creation; every
// other field changes only through coordinator transitions.
type Interview struct {
	ID            string `json:"id"             bson:"_id,omitempty"`
	CandidateID   string `json:"candidate_id"   bson:"candidate_id"`
	InterviewerID string `json:"interviewer_id" bson:"interviewer_id"`
	JobID         string `json:"job_id"         bson:"job_id"`

	Title    string `json:"title"            bson:"title"`
	Type     string `json:"interview_type"   bson:"interview_type"`
	Round    int    `json:"round_number"     bson:"round_number"`
	Duration int    `json:"duration_minutes" bson:"duration_minutes"`
	Timezone string `json:"timezone"         bson:"timezone"`
	Platform string `json:"meeting_platform" bson:"meeting_platform"`

	Status        Status      `json:"status"         bson:"status"`
	ProposedSlots []time.Time `json:"proposed_slots" bson:"proposed_slots"`
	ApprovedSlots []time.Time `json:"approved_slots" bson:"approved_slots"`

	InterviewerApproved bool `json:"interviewer_approved" bson:"interviewer_approved"`
	CandidateConfirmed  bool `json:"candidate_confirmed"  bson:"candidate_confirmed"`

	ScheduledAt *time.Time     `json:"scheduled_at" bson:"scheduled_at"`
	Meeting     *MeetingHandle `json:"meeting"      bson:"meeting"`

	// OriginalScheduledAt is set on the first reschedule only and keeps
	// the first-ever confirmed time.
	OriginalScheduledAt *time.Time `json:"original_scheduled_at" bson:"original_scheduled_at"`
	RescheduleCount     int        `json:"reschedule_count"      bson:"reschedule_count"`
	RescheduleReason    string     `json:"reschedule_reason"     bson:"reschedule_reason"`

	Reminder24hSent bool `json:"reminder_24h_sent" bson:"reminder_24h_sent"`
	Reminder1hSent  bool `json:"reminder_1h_sent"  bson:"reminder_1h_sent"`

	CancelledBy *Role `json:"cancelled_by" bson:"cancelled_by"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`

	// Version backs the optimistic concurrency check in the repo.
	Version int64 `json:"-" bson:"version"`
}

// Proposed reports whether t is a member of the proposed slot set.
func (i *Interview) Proposed(t time.Time) bool {
	return hasSlot(i.ProposedSlots, t)
}

// Approved reports whether t is a member of the approved slot set.
func (i *Interview) Approved(t time.Time) bool {
	return hasSlot(i.ApprovedSlots, t)
}

func hasSlot(slots []time.Time, t time.Time) bool {
	for _, s := range slots {
		if s.Equal(t) {
			return true
		}
	}
	return false
}
