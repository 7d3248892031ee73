// Package session holds the state of one chat: the resolved store, the
// location tracker and the transcript. A session is owned by the session
// service and is only mutated through it.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/xw1nchester/shopbuddy-backend/internal/assistant"
	"github.com/xw1nchester/shopbuddy-backend/internal/location"
	"github.com/xw1nchester/shopbuddy-backend/internal/market/store"
)

type Session struct {
	mu sync.Mutex

	ID        uuid.UUID
	Store     store.ResolvedStore
	Tracker   *location.Tracker
	History   []assistant.Turn
	Busy      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// LocationView describes the tracker state shown on the welcome screen.
type LocationView struct {
	Status  location.State  `json:"status"`
	Reason  location.Reason `json:"reason,omitempty"`
	Message string          `json:"message,omitempty"`
}

// View is a read-only snapshot of a session.
type View struct {
	ID       uuid.UUID           `json:"id"`
	Store    store.ResolvedStore `json:"nearestStore"`
	Location LocationView        `json:"location"`
	Messages []assistant.Turn    `json:"messages"`
	Busy     bool                `json:"busy"`
}

// Snapshot copies the session state. The caller must hold the lock.
func (s *Session) Snapshot() *View {
	view := &View{
		ID:       s.ID,
		Store:    s.Store,
		Location: LocationView{Status: s.Tracker.State()},
		Messages: append([]assistant.Turn(nil), s.History...),
		Busy:     s.Busy,
	}

	if reason, failed := s.Tracker.Reason(); failed {
		view.Location.Reason = reason
		view.Location.Message = reason.Message()
	}

	return view
}
