package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	terminal := map[Status]bool{
		StatusPendingApproval: false,
		StatusSlotsApproved:   false,
		StatusScheduled:       false,
		StatusRescheduled:     false,
		StatusCompleted:       true,
		StatusCancelled:       true,
	}
	for s, want := range terminal {
		require.Equal(t, want, s.Terminal(), "Terminal(%s)", s)
	}

	confirmed := map[Status]bool{
		StatusPendingApproval: false,
		StatusSlotsApproved:   false,
		StatusScheduled:       true,
		StatusRescheduled:     true,
		StatusCompleted:       false,
		StatusCancelled:       false,
	}
	for s, want := range confirmed {
		require.Equal(t, want, s.Confirmed(), "Confirmed(%s)", s)
	}
}

func TestSlotMembership(t *testing.T) {
	t1 := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	i := Interview{
		ProposedSlots: []time.Time{t1, t2},
		ApprovedSlots: []time.Time{t1},
	}

	require.True(t, i.Proposed(t1))
	require.True(t, i.Proposed(t2))
	require.False(t, i.Proposed(t1.Add(time.Minute)))

	require.True(t, i.Approved(t1))
	require.False(t, i.Approved(t2))

	// Equal instants in different locations are the same slot.
	loc := time.FixedZone("UTC+2", 2*3600)
	require.True(t, i.Approved(t1.In(loc)))
}

func TestDedupeSlots(t *testing.T) {
	t1 := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	got := dedupeSlots([]time.Time{t1, t2, t1, t2, t1})
	require.Equal(t, []time.Time{t1, t2}, got)
}

func TestTitleCase(t *testing.T) {
	require.Equal(t, "Technical", titleCase("technical"))
	require.Equal(t, "Hr", titleCase("HR"))
	require.Equal(t, "", titleCase(""))
}
