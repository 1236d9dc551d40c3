package scheduling

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/hiresync/scheduler/pkg/errors"
	"github.com/hiresync/scheduler/pkg/logger"
)

// Coordinator owns the interview lifecycle. All state leaves through
// the repo's atomic updates; provider calls never hold record locks.
type Coordinator struct {
	repo   Repo
	dir    Directory
	avail  AvailabilityProvider
	meet   MeetingProvisioner
	notify Notifier
	log    logger.Logger
	clock  func() time.Time
}

func New(
	repo Repo,
	dir Directory,
	avail AvailabilityProvider,
	meet MeetingProvisioner,
	notify Notifier,
	log logger.Logger,
) *Coordinator {
	return &Coordinator{
		repo:   repo,
		dir:    dir,
		avail:  avail,
		meet:   meet,
		notify: notify,
		log:    log.With("scheduling"),
		clock:  func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source, for tests.
func (c *Coordinator) WithClock(clock func() time.Time) *Coordinator {
	c.clock = clock
	return c
}

type ProposeRequest struct {
	CandidateID   string
	InterviewerID string
	JobID         string

	Type            string
	Round           int
	DurationMinutes int
	Timezone        string
	Platform        string

	PreferredTimes []time.Time
}

func (r ProposeRequest) validate() error {
	if r.CandidateID == "" || r.InterviewerID == "" || r.JobID == "" {
		return errors.Error("candidate, interviewer and job references are required")
	}
	if r.DurationMinutes <= 0 {
		return errors.Error("duration must be positive")
	}
	return nil
}

// Propose creates the interview, collects proposed slots from the
// availability provider and asks the interviewer for approval. An empty
// slot set is not an error: the negotiation record is still created and
// callers react to emptiness.
func (c *Coordinator) Propose(ctx context.Context, req ProposeRequest) (*Interview, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	cand, err := c.dir.Candidate(ctx, req.CandidateID)
	if err != nil {
		return nil, errors.WrapFail(err, "resolve candidate")
	}
	if cand == nil {
		return nil, errors.Wrap(ErrNotFound, "candidate "+req.CandidateID)
	}

	ivr, err := c.dir.Interviewer(ctx, req.InterviewerID)
	if err != nil {
		return nil, errors.WrapFail(err, "resolve interviewer")
	}
	if ivr == nil {
		return nil, errors.Wrap(ErrNotFound, "interviewer "+req.InterviewerID)
	}

	slots, err := c.avail.GetAvailableSlots(ctx, req.InterviewerID, req.DurationMinutes, req.PreferredTimes)
	if err != nil {
		// The negotiation record must exist even without slots.
		c.log.Warn(errors.WrapFail(err, "get available slots"))
		slots = nil
	}

	now := c.clock()
	i := Interview{
		CandidateID:   req.CandidateID,
		InterviewerID: req.InterviewerID,
		JobID:         req.JobID,
		Title:         fmt.Sprintf("%s Interview - %s", titleCase(req.Type), cand.FullName),
		Type:          req.Type,
		Round:         req.Round,
		Duration:      req.DurationMinutes,
		Timezone:      req.Timezone,
		Platform:      req.Platform,
		Status:        StatusPendingApproval,
		ProposedSlots: slots,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	id, err := c.repo.Insert(ctx, i)
	if err != nil {
		return nil, errors.WrapFail(err, "insert interview")
	}
	i.ID = id

	if len(slots) == 0 {
		c.log.Warnf("interview %s created with no proposed slots", id)
	}

	c.send(ctx, *ivr, approvalRequest(i))

	return &i, nil
}

// ApproveSlots narrows the proposed slots to the ones the interviewer
// will honor. Only the assigned interviewer may approve, only from
// pending_approval, and only timestamps drawn from the proposed set.
func (c *Coordinator) ApproveSlots(ctx context.Context, id string, actorID string, slots []time.Time) (*Interview, error) {
	updated, err := c.repo.Update(ctx, id, func(i *Interview) error {
		if i.InterviewerID != actorID {
			return errors.Wrap(ErrForbidden, "only the assigned interviewer can approve slots")
		}
		if i.Status != StatusPendingApproval {
			return errors.Wrapf(ErrInvalidState, "can't approve slots in status %q", i.Status)
		}
		if len(slots) == 0 {
			return errors.Wrap(ErrInvalidSelection, "approved slots must not be empty")
		}
		for _, s := range slots {
			if !i.Proposed(s) {
				return errors.Wrapf(ErrInvalidSelection, "slot %s was never proposed", s.Format(time.RFC3339))
			}
		}

		i.ApprovedSlots = dedupeSlots(slots)
		i.InterviewerApproved = true
		i.Status = StatusSlotsApproved
		i.UpdatedAt = c.clock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	cand, err := c.dir.Candidate(ctx, updated.CandidateID)
	switch {
	case err != nil:
		c.log.Warn(errors.WrapFail(err, "resolve candidate for slot options"))
	case cand == nil:
		c.log.Warnf("candidate %s vanished, slot options not sent", updated.CandidateID)
	default:
		c.send(ctx, *cand, slotOptions(*updated))
	}

	return updated, nil
}

// ConfirmTime binds the interview to one approved slot. The meeting is
// provisioned before the local commit; if the commit then loses to a
// concurrent transition, the provisioner result is discarded and the
// caller observes the state error.
func (c *Coordinator) ConfirmTime(ctx context.Context, id string, actorID string, at time.Time) (*Interview, error) {
	i, err := c.repo.Get(ctx, id)
	if err != nil {
		return nil, errors.WrapFail(err, "get interview")
	}
	if i == nil {
		return nil, errors.Wrap(ErrNotFound, "interview "+id)
	}

	if i.CandidateID != actorID {
		return nil, errors.Wrap(ErrForbidden, "only the candidate can confirm a time")
	}
	if i.Status != StatusSlotsApproved {
		return nil, errors.Wrapf(ErrInvalidState, "can't confirm in status %q", i.Status)
	}
	if !i.Approved(at) {
		return nil, errors.Wrap(ErrInvalidSelection, "selected time not in approved slots")
	}

	cand, ivr, err := c.parties(ctx, i)
	if err != nil {
		return nil, err
	}

	handle, err := c.meet.Create(ctx, i.Title, at, i.Duration, []string{cand.Email, ivr.Email})
	if err != nil {
		return nil, errors.Wrap(ErrProvisioningFailed, err.Error())
	}

	updated, err := c.repo.Update(ctx, id, func(i *Interview) error {
		// The record may have moved while the meeting was provisioned.
		if i.Status != StatusSlotsApproved {
			return errors.Wrapf(ErrInvalidState, "can't confirm in status %q", i.Status)
		}
		if !i.Approved(at) {
			return errors.Wrap(ErrInvalidSelection, "selected time not in approved slots")
		}

		t := at
		h := handle
		i.ScheduledAt = &t
		i.Meeting = &h
		i.CandidateConfirmed = true
		i.Status = StatusScheduled
		i.UpdatedAt = c.clock()
		return nil
	})
	if err != nil {
		c.log.Warnf("discarding meeting %s for interview %s: %s", handle.ID, id, err)
		return nil, err
	}

	c.send(ctx, *cand, confirmation(*updated))
	c.send(ctx, *ivr, confirmation(*updated))

	return updated, nil
}

// Reschedule moves a confirmed interview to a new time. The local
// record is the source of truth: a failed provisioner update is logged
// for manual reconciliation and does not revert the change.
func (c *Coordinator) Reschedule(ctx context.Context, id string, newTime time.Time, reason string) (*Interview, error) {
	updated, err := c.repo.Update(ctx, id, func(i *Interview) error {
		if !i.Status.Confirmed() || i.ScheduledAt == nil {
			return errors.Wrapf(ErrInvalidState, "can't reschedule in status %q", i.Status)
		}

		if i.OriginalScheduledAt == nil {
			first := *i.ScheduledAt
			i.OriginalScheduledAt = &first
		}

		t := newTime
		i.ScheduledAt = &t
		i.RescheduleCount++
		i.RescheduleReason = reason
		i.Status = StatusRescheduled
		i.UpdatedAt = c.clock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated.Meeting != nil {
		err = c.meet.Update(ctx, updated.Meeting.ID, newTime, updated.Duration)
		if err != nil {
			c.log.Warnf("meeting %s not moved, manual reconciliation needed: %s", updated.Meeting.ID, err)
		}
	}

	cand, ivr, err := c.parties(ctx, updated)
	if err != nil {
		c.log.Warn(errors.WrapFail(err, "resolve parties for reschedule notice"))
		return updated, nil
	}
	c.send(ctx, *cand, rescheduleNotice(*updated))
	c.send(ctx, *ivr, rescheduleNotice(*updated))

	return updated, nil
}

// Cancel moves the interview to the terminal cancelled status from any
// non-terminal state and records which side cancelled.
func (c *Coordinator) Cancel(ctx context.Context, id string, side Role) error {
	updated, err := c.repo.Update(ctx, id, func(i *Interview) error {
		if i.Status.Terminal() {
			return errors.Wrapf(ErrInvalidState, "can't cancel in status %q", i.Status)
		}

		s := side
		i.Status = StatusCancelled
		i.CancelledBy = &s
		i.UpdatedAt = c.clock()
		return nil
	})
	if err != nil {
		return err
	}

	cand, ivr, err := c.parties(ctx, updated)
	if err != nil {
		c.log.Warn(errors.WrapFail(err, "resolve parties for cancel notice"))
		return nil
	}
	c.send(ctx, *cand, cancelNotice(*updated))
	c.send(ctx, *ivr, cancelNotice(*updated))

	return nil
}

// Complete marks a confirmed interview done. The completion signal
// comes from an external collaborator; the coordinator only accepts
// the transition.
func (c *Coordinator) Complete(ctx context.Context, id string) error {
	_, err := c.repo.Update(ctx, id, func(i *Interview) error {
		if !i.Status.Confirmed() {
			return errors.Wrapf(ErrInvalidState, "can't complete in status %q", i.Status)
		}

		i.Status = StatusCompleted
		i.UpdatedAt = c.clock()
		return nil
	})
	return err
}

func (c *Coordinator) Find(ctx context.Context, id string) (*Interview, error) {
	i, err := c.repo.Get(ctx, id)
	if err != nil {
		return nil, errors.WrapFail(err, "get interview")
	}
	if i == nil {
		return nil, errors.Wrap(ErrNotFound, "interview "+id)
	}
	return i, nil
}

type ListFilter struct {
	Status        Status
	InterviewerID string
	Offset        int
	Limit         int
}

func (c *Coordinator) List(ctx context.Context, f ListFilter) ([]Interview, error) {
	all, err := c.repo.Select(ctx, func(i Interview) bool {
		if f.Status != "" && i.Status != f.Status {
			return false
		}
		if f.InterviewerID != "" && i.InterviewerID != f.InterviewerID {
			return false
		}
		return true
	})
	if err != nil {
		return nil, errors.WrapFail(err, "select interviews")
	}

	if f.Offset >= len(all) {
		return nil, nil
	}
	all = all[f.Offset:]
	if f.Limit > 0 && f.Limit < len(all) {
		all = all[:f.Limit]
	}
	return all, nil
}

func (c *Coordinator) parties(ctx context.Context, i *Interview) (cand, ivr *Person, err error) {
	cand, err = c.dir.Candidate(ctx, i.CandidateID)
	if err != nil {
		return nil, nil, errors.WrapFail(err, "resolve candidate")
	}
	if cand == nil {
		return nil, nil, errors.Wrap(ErrNotFound, "candidate "+i.CandidateID)
	}

	ivr, err = c.dir.Interviewer(ctx, i.InterviewerID)
	if err != nil {
		return nil, nil, errors.WrapFail(err, "resolve interviewer")
	}
	if ivr == nil {
		return nil, nil, errors.Wrap(ErrNotFound, "interviewer "+i.InterviewerID)
	}
	return cand, ivr, nil
}

// send is fire-and-forget relative to the transition that triggered it.
func (c *Coordinator) send(ctx context.Context, to Person, msg Message) {
	err := c.notify.Send(ctx, to, msg)
	if err != nil {
		c.log.Warn(errors.Wrapf(ErrNotificationFailed, "%s to %s: %s", msg.Kind, to.ID, err))
	}
}

func dedupeSlots(slots []time.Time) []time.Time {
	out := make([]time.Time, 0, len(slots))
	for _, s := range slots {
		if !hasSlot(out, s) {
			out = append(out, s)
		}
	}
	return out
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
