package assistant

import (
	"github.com/xw1nchester/shopbuddy-backend/internal/apperror"
	"github.com/xw1nchester/shopbuddy-backend/internal/geo"
	"github.com/xw1nchester/shopbuddy-backend/internal/market/store"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message of a conversation. User turns are already masked.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// StoreContext grounds the assistant in a single store.
type StoreContext struct {
	Store        store.StoreRecord
	Distance     string
	UserLocation *geo.Coordinates
}

func NewStoreContext(resolved store.ResolvedStore) StoreContext {
	return StoreContext{
		Store:        resolved.Store,
		Distance:     resolved.FormattedDistance,
		UserLocation: resolved.UserLocation,
	}
}

// Outcome is the result of one relay round trip. It is one of Success,
// RateLimited, CreditsDepleted or Failure.
type Outcome interface {
	outcome()
}

type Success struct {
	Text string
}

// RateLimited means the gateway answered 429.
type RateLimited struct{}

// CreditsDepleted means the gateway answered 402.
type CreditsDepleted struct{}

// Failure covers every other error. Reason is safe to show to the client.
type Failure struct {
	Reason string
	Err    error
}

func (Success) outcome()         {}
func (RateLimited) outcome()     {}
func (CreditsDepleted) outcome() {}
func (Failure) outcome()         {}

// OutcomeError maps a non-success outcome to the error rendered to the
// client. It returns nil for Success.
func OutcomeError(o Outcome) error {
	switch o := o.(type) {
	case Success:
		return nil
	case RateLimited:
		return apperror.ErrRateLimited
	case CreditsDepleted:
		return apperror.ErrCreditsDepleted
	case Failure:
		return apperror.InternalError(o.Reason)
	default:
		return apperror.InternalError("")
	}
}
