package scheduling

import (
	"fmt"
	"strings"
	"time"
)

const slotTimeLayout = "Mon, 02 Jan 2006 15:04 MST"

func approvalRequest(i Interview) Message {
	return Message{
		Kind:        KindApprovalRequest,
		InterviewID: i.ID,
		Subject:     fmt.Sprintf("Approve time slots: %s", i.Title),
		Body: fmt.Sprintf(
			"You have been assigned %q (round %d, %d min). "+
				"Please approve the time slots you can honor.",
			i.Title, i.Round, i.Duration,
		),
	}
}

func slotOptions(i Interview) Message {
	lines := make([]string, 0, len(i.ApprovedSlots))
	for _, s := range i.ApprovedSlots {
		lines = append(lines, "- "+s.Format(slotTimeLayout))
	}

	return Message{
		Kind:        KindSlotOptions,
		InterviewID: i.ID,
		Subject:     fmt.Sprintf("Pick a time: %s", i.Title),
		Body: fmt.Sprintf(
			"The interviewer approved the following slots for %q (%d min):\n%s\n"+
				"Reply with interview reference %s to confirm one.",
			i.Title, i.Duration, strings.Join(lines, "\n"), i.ID,
		),
	}
}

func confirmation(i Interview) Message {
	link := ""
	if i.Meeting != nil {
		link = i.Meeting.Link
	}

	return Message{
		Kind:        KindConfirmation,
		InterviewID: i.ID,
		Subject:     fmt.Sprintf("Confirmed: %s", i.Title),
		Body: fmt.Sprintf(
			"%q is confirmed for %s. Join at %s.",
			i.Title, i.ScheduledAt.Format(slotTimeLayout), link,
		),
	}
}

func rescheduleNotice(i Interview) Message {
	body := fmt.Sprintf(
		"%q has been moved to %s.",
		i.Title, i.ScheduledAt.Format(slotTimeLayout),
	)
	if i.RescheduleReason != "" {
		body += " Reason: " + i.RescheduleReason
	}
	if i.Meeting != nil {
		body += " The meeting link is unchanged: " + i.Meeting.Link
	}

	return Message{
		Kind:        KindRescheduleNotice,
		InterviewID: i.ID,
		Subject:     fmt.Sprintf("Rescheduled: %s", i.Title),
		Body:        body,
	}
}

func cancelNotice(i Interview) Message {
	by := "the organizer"
	if i.CancelledBy != nil {
		by = "the " + i.CancelledBy.String()
	}

	return Message{
		Kind:        KindCancelNotice,
		InterviewID: i.ID,
		Subject:     fmt.Sprintf("Cancelled: %s", i.Title),
		Body:        fmt.Sprintf("%q has been cancelled by %s.", i.Title, by),
	}
}

func reminder(i Interview, left time.Duration) Message {
	link := ""
	if i.Meeting != nil {
		link = " Join at " + i.Meeting.Link + "."
	}

	return Message{
		Kind:        KindReminder,
		InterviewID: i.ID,
		Subject:     fmt.Sprintf("Reminder: %s", i.Title),
		Body: fmt.Sprintf(
			"%q starts in %s, at %s.%s",
			i.Title, left, i.ScheduledAt.Format(slotTimeLayout), link,
		),
	}
}
