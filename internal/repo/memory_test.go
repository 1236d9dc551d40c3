package repo

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hiresync/scheduler/internal/scheduling"
	"github.com/hiresync/scheduler/pkg/errors"
	"github.com/hiresync/scheduler/pkg/logger"
)

func TestMemoryRepo_InsertGet(t *testing.T) {
	m := NewMemory(logger.NewStub())
	ctx := context.Background()

	id, err := m.Insert(ctx, scheduling.Interview{CandidateID: "c1", Status: scheduling.StatusPendingApproval})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := m.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "c1", got.CandidateID)
	require.EqualValues(t, 1, got.Version)

	missing, err := m.Get(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestMemoryRepo_Update(t *testing.T) {
	m := NewMemory(logger.NewStub())
	ctx := context.Background()

	id, err := m.Insert(ctx, scheduling.Interview{Status: scheduling.StatusPendingApproval})
	require.NoError(t, err)

	t.Run("commits mutation and bumps version", func(t *testing.T) {
		got, err := m.Update(ctx, id, func(i *scheduling.Interview) error {
			i.Status = scheduling.StatusSlotsApproved
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, scheduling.StatusSlotsApproved, got.Status)
		require.EqualValues(t, 2, got.Version)
	})

	t.Run("mutation error leaves the record untouched", func(t *testing.T) {
		boom := errors.Error("boom")

		_, err := m.Update(ctx, id, func(i *scheduling.Interview) error {
			i.Status = scheduling.StatusCancelled
			return boom
		})
		require.ErrorIs(t, err, boom)

		got, err := m.Get(ctx, id)
		require.NoError(t, err)
		require.Equal(t, scheduling.StatusSlotsApproved, got.Status)
		require.EqualValues(t, 2, got.Version)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := m.Update(ctx, "nope", func(*scheduling.Interview) error { return nil })
		require.ErrorIs(t, err, scheduling.ErrNotFound)
	})
}

func TestMemoryRepo_UpdateIsolation(t *testing.T) {
	m := NewMemory(logger.NewStub())
	ctx := context.Background()

	id, err := m.Insert(ctx, scheduling.Interview{})
	require.NoError(t, err)

	const writers = 32

	errs := make(chan error, writers)

	var wg sync.WaitGroup
	wg.Add(writers)
	for w := 0; w < writers; w++ {
		go func() {
			defer wg.Done()
			_, err := m.Update(ctx, id, func(i *scheduling.Interview) error {
				i.RescheduleCount++
				return nil
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	got, err := m.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, writers, got.RescheduleCount)
	require.EqualValues(t, writers+1, got.Version)
}

func TestMemoryRepo_Select(t *testing.T) {
	m := NewMemory(logger.NewStub())
	ctx := context.Background()

	base := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	for n := 0; n < 3; n++ {
		status := scheduling.StatusPendingApproval
		if n == 2 {
			status = scheduling.StatusCancelled
		}
		_, err := m.Insert(ctx, scheduling.Interview{
			InterviewerID: "ivr-1",
			Status:        status,
			CreatedAt:     base.Add(time.Duration(n) * time.Minute),
		})
		require.NoError(t, err)
	}

	all, err := m.Select(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Chronological by creation time.
	for n := 1; n < len(all); n++ {
		require.False(t, all[n].CreatedAt.Before(all[n-1].CreatedAt))
	}

	pending, err := m.Select(ctx, func(i scheduling.Interview) bool {
		return i.Status == scheduling.StatusPendingApproval
	})
	require.NoError(t, err)
	require.Len(t, pending, 2)
}

func TestMemoryRepo_CopiesAreIsolated(t *testing.T) {
	m := NewMemory(logger.NewStub())
	ctx := context.Background()

	slot := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	id, err := m.Insert(ctx, scheduling.Interview{ProposedSlots: []time.Time{slot}})
	require.NoError(t, err)

	got, err := m.Get(ctx, id)
	require.NoError(t, err)

	// Mutating the returned copy must not leak into the store.
	got.ProposedSlots[0] = slot.Add(time.Hour)
	got.Status = scheduling.StatusCancelled

	fresh, err := m.Get(ctx, id)
	require.NoError(t, err)
	require.True(t, fresh.ProposedSlots[0].Equal(slot))
	require.NotEqual(t, scheduling.StatusCancelled, fresh.Status)
}
