// Package location tracks the acquisition of the user's position from the
// client platform's geolocation API.
package location

import (
	"errors"
	"fmt"
	"time"
)

type State int

const (
	StateIdle State = iota
	StateRequesting
	StateResolved
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRequesting:
		return "requesting"
	case StateResolved:
		return "resolved"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	for _, candidate := range []State{StateIdle, StateRequesting, StateResolved, StateFailed} {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}

	return fmt.Errorf("unknown location state %q", text)
}

// Reason explains why a position could not be acquired.
type Reason string

const (
	ReasonPermissionDenied    Reason = "permission_denied"
	ReasonPositionUnavailable Reason = "position_unavailable"
	ReasonTimeout             Reason = "timeout"
	ReasonUnsupported         Reason = "unsupported"
	ReasonUnknown             Reason = "unknown"
)

// Message is the text shown to the user.
func (r Reason) Message() string {
	switch r {
	case ReasonPermissionDenied:
		return "Location permission denied"
	case ReasonPositionUnavailable:
		return "Location information unavailable"
	case ReasonTimeout:
		return "Location request timed out"
	case ReasonUnsupported:
		return "Geolocation is not supported by your browser"
	default:
		return "Unable to retrieve your location"
	}
}

// Platform error codes as reported by the W3C Geolocation API.
const (
	CodePermissionDenied    = 1
	CodePositionUnavailable = 2
	CodeTimeout             = 3
)

func ReasonFromCode(code int) Reason {
	switch code {
	case CodePermissionDenied:
		return ReasonPermissionDenied
	case CodePositionUnavailable:
		return ReasonPositionUnavailable
	case CodeTimeout:
		return ReasonTimeout
	default:
		return ReasonUnknown
	}
}

// ErrUnsupported is returned by a provider when the platform has no
// geolocation capability.
var ErrUnsupported = errors.New("geolocation is not supported")

// PositionError carries a platform error code.
type PositionError struct {
	Code    int
	Message string
}

func (e *PositionError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("position error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("position error %d", e.Code)
}

// Error is returned by Tracker.Request when acquisition fails.
type Error struct {
	Reason Reason
	Err    error
}

func (e *Error) Error() string {
	return e.Reason.Message()
}

func (e *Error) Unwrap() error {
	return e.Err
}

type Options struct {
	HighAccuracy bool
	Timeout      time.Duration
	// MaximumAge is how old a previously resolved position may be and still
	// be returned without asking the provider again.
	MaximumAge time.Duration
}

func DefaultOptions() Options {
	return Options{
		HighAccuracy: true,
		Timeout:      10 * time.Second,
		MaximumAge:   5 * time.Minute,
	}
}
