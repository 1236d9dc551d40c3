package api

import (
	"context"
	"time"

	"github.com/hiresync/scheduler/internal/scheduling"
)

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type coordinator interface {
	Propose(ctx context.Context, req scheduling.ProposeRequest) (*scheduling.Interview, error)
	ApproveSlots(ctx context.Context, id, actorID string, slots []time.Time) (*scheduling.Interview, error)
	ConfirmTime(ctx context.Context, id, actorID string, at time.Time) (*scheduling.Interview, error)
	Reschedule(ctx context.Context, id string, newTime time.Time, reason string) (*scheduling.Interview, error)
	Cancel(ctx context.Context, id string, side scheduling.Role) error
	Complete(ctx context.Context, id string) error
	Find(ctx context.Context, id string) (*scheduling.Interview, error)
	List(ctx context.Context, f scheduling.ListFilter) ([]scheduling.Interview, error)
}
