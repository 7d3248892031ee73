package location

import (
	"context"
	"errors"
	"time"

	"github.com/xw1nchester/shopbuddy-backend/internal/geo"
)

// Provider is the platform geolocation API.
type Provider interface {
	CurrentPosition(ctx context.Context, opts Options) (geo.Coordinates, error)
}

// Tracker is the idle -> requesting -> resolved|failed state machine around a
// single position request. A failed tracker can be requested again. There is
// no automatic retry.
//
// A Tracker belongs to one chat session and is not safe for concurrent use.
type Tracker struct {
	opts Options
	now  func() time.Time

	state      State
	coords     geo.Coordinates
	resolvedAt time.Time
	reason     Reason
}

func NewTracker(opts Options) *Tracker {
	return &Tracker{
		opts:  opts,
		now:   time.Now,
		state: StateIdle,
	}
}

func (t *Tracker) State() State {
	return t.state
}

// Coordinates returns the last resolved position.
func (t *Tracker) Coordinates() (geo.Coordinates, bool) {
	if t.state != StateResolved {
		return geo.Coordinates{}, false
	}
	return t.coords, true
}

// Reason returns why the last request failed.
func (t *Tracker) Reason() (Reason, bool) {
	if t.state != StateFailed {
		return "", false
	}
	return t.reason, true
}

// Request asks provider for the current position. The provider is passed per
// request because every request carries a fresh report from the client.
// A position resolved less than MaximumAge ago is returned without calling
// the provider.
func (t *Tracker) Request(ctx context.Context, provider Provider) (geo.Coordinates, error) {
	if t.state == StateResolved && t.now().Sub(t.resolvedAt) <= t.opts.MaximumAge {
		return t.coords, nil
	}

	t.state = StateRequesting

	if provider == nil {
		return geo.Coordinates{}, t.fail(ReasonUnsupported, ErrUnsupported)
	}

	if t.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.opts.Timeout)
		defer cancel()
	}

	coords, err := provider.CurrentPosition(ctx, t.opts)
	if err != nil {
		return geo.Coordinates{}, t.fail(classify(err), err)
	}

	t.state = StateResolved
	t.coords = coords
	t.resolvedAt = t.now()
	t.reason = ""

	return coords, nil
}

func (t *Tracker) fail(reason Reason, err error) error {
	t.state = StateFailed
	t.reason = reason

	return &Error{Reason: reason, Err: err}
}

func classify(err error) Reason {
	var posErr *PositionError

	switch {
	case errors.As(err, &posErr):
		return ReasonFromCode(posErr.Code)
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	case errors.Is(err, ErrUnsupported):
		return ReasonUnsupported
	default:
		return ReasonUnknown
	}
}
