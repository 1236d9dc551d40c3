package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hiresync/scheduler/internal/scheduling"
	"github.com/hiresync/scheduler/pkg/errors"
	"github.com/hiresync/scheduler/pkg/logger"
)

// NewMemory returns an in-process repo. Each record carries its own
// lock, so updates to one interview serialize while different
// interviews proceed in parallel.
func NewMemory(log logger.Logger) *memoryRepo {
	return &memoryRepo{
		items: make(map[string]*memoryRecord),
		log:   log.With("memory_repo"),
	}
}

type memoryRepo struct {
	mu    sync.RWMutex
	items map[string]*memoryRecord
	log   logger.Logger
}

type memoryRecord struct {
	mu  sync.Mutex
	val scheduling.Interview
}

func (m *memoryRepo) Insert(_ context.Context, i scheduling.Interview) (string, error) {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	i.Version = 1

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[i.ID]; ok {
		return "", errors.Errorf("duplicate interview id %q", i.ID)
	}
	m.items[i.ID] = &memoryRecord{val: cloneInterview(i)}

	return i.ID, nil
}

func (m *memoryRepo) Get(_ context.Context, id string) (*scheduling.Interview, error) {
	r := m.record(id)
	if r == nil {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := cloneInterview(r.val)
	return &i, nil
}

func (m *memoryRepo) Update(_ context.Context, id string, mutate func(*scheduling.Interview) error) (*scheduling.Interview, error) {
	r := m.record(id)
	if r == nil {
		return nil, errors.Wrap(scheduling.ErrNotFound, "interview "+id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// mutate works on a copy, so an error leaves the record untouched.
	i := cloneInterview(r.val)
	if err := mutate(&i); err != nil {
		return nil, err
	}
	i.Version++
	r.val = cloneInterview(i)

	return &i, nil
}

func (m *memoryRepo) Select(_ context.Context, match func(scheduling.Interview) bool) ([]scheduling.Interview, error) {
	m.mu.RLock()
	records := make([]*memoryRecord, 0, len(m.items))
	for _, r := range m.items {
		records = append(records, r)
	}
	m.mu.RUnlock()

	var out []scheduling.Interview
	for _, r := range records {
		r.mu.Lock()
		i := cloneInterview(r.val)
		r.mu.Unlock()

		if match == nil || match(i) {
			out = append(out, i)
		}
	}

	sort.Slice(out, func(a, b int) bool {
		if out[a].CreatedAt.Equal(out[b].CreatedAt) {
			return out[a].ID < out[b].ID
		}
		return out[a].CreatedAt.Before(out[b].CreatedAt)
	})
	return out, nil
}

func (m *memoryRepo) Close(context.Context) error {
	return nil
}

func (m *memoryRepo) record(id string) *memoryRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items[id]
}

func cloneInterview(i scheduling.Interview) scheduling.Interview {
	c := i

	c.ProposedSlots = append([]time.Time(nil), i.ProposedSlots...)
	c.ApprovedSlots = append([]time.Time(nil), i.ApprovedSlots...)

	if i.ScheduledAt != nil {
		t := *i.ScheduledAt
		c.ScheduledAt = &t
	}
	if i.OriginalScheduledAt != nil {
		t := *i.OriginalScheduledAt
		c.OriginalScheduledAt = &t
	}
	if i.Meeting != nil {
		h := *i.Meeting
		c.Meeting = &h
	}
	if i.CancelledBy != nil {
		r := *i.CancelledBy
		c.CancelledBy = &r
	}

	return c
}
