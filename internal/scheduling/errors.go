package scheduling

import "github.com/hiresync/scheduler/pkg/errors"

// Transition failures carry exactly one of these kinds; callers match
// them with errors.Is and must not coerce one into another.
var (
	// ErrNotFound means a referenced interview, candidate or interviewer
	// does not exist.
	ErrNotFound = errors.Error("not found")

	// ErrForbidden means the acting party does not own the attempted
	// approval or confirmation.
	ErrForbidden = errors.Error("forbidden")

	// ErrInvalidState means the current status disallows the transition.
	ErrInvalidState = errors.Error("invalid state")

	// ErrInvalidSelection means a chosen time is not a member of the
	// allowed slot set.
	ErrInvalidSelection = errors.Error("invalid selection")

	// ErrProvisioningFailed means external meeting creation or update
	// failed.
	ErrProvisioningFailed = errors.Error("provisioning failed")

	// ErrNotificationFailed marks best-effort delivery failures; it is
	// logged and never fails a transition.
	ErrNotificationFailed = errors.Error("notification failed")
)
