package sessionservice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/xw1nchester/shopbuddy-backend/internal/apperror"
	"github.com/xw1nchester/shopbuddy-backend/internal/assistant"
	"github.com/xw1nchester/shopbuddy-backend/internal/geo"
	"github.com/xw1nchester/shopbuddy-backend/internal/location"
	"github.com/xw1nchester/shopbuddy-backend/internal/market/store"
	"github.com/xw1nchester/shopbuddy-backend/internal/pii"
	"github.com/xw1nchester/shopbuddy-backend/internal/session"
	"go.uber.org/zap"
)

const (
	greetingFormat = "Hi there! 👋 I'm ShopBuddy, your personal support assistant. I noticed you're near %s!"
	helpPrompt     = "How can I help you today? You can ask about store hours, menu items, or get personalized recommendations!"
	FallbackReply  = "Sorry, I'm having trouble connecting right now. Please try again."
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mocksessionservice
type StoreService interface {
	FindNearest(ctx context.Context, user geo.Coordinates) (*store.ResolvedStore, error)
	DefaultStore(ctx context.Context) (*store.ResolvedStore, error)
}

type Relay interface {
	Reply(ctx context.Context, history []assistant.Turn, sc assistant.StoreContext) assistant.Outcome
}

type Config struct {
	Location location.Options
	IdleTTL  time.Duration
}

type service struct {
	storeService StoreService
	relay        Relay
	cfg          Config
	now          func() time.Time
	logger       *zap.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*session.Session
}

func New(storeService StoreService, relay Relay, cfg Config, logger *zap.Logger) *service {
	return &service{
		storeService: storeService,
		relay:        relay,
		cfg:          cfg,
		now:          time.Now,
		logger:       logger,
		sessions:     make(map[uuid.UUID]*session.Session),
	}
}

// Start opens a chat session for the position the client reported. When the
// position is unavailable the default store is used and the failure reason is
// kept so the client can offer a retry.
func (s *service) Start(ctx context.Context, report location.Report) (*session.View, error) {
	id := uuid.New()
	tracker := location.NewTracker(s.cfg.Location)

	resolved, err := s.resolve(ctx, id, tracker, report)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sess := &session.Session{
		ID:      id,
		Store:   *resolved,
		Tracker: tracker,
		History: []assistant.Turn{
			{Role: assistant.RoleAssistant, Content: fmt.Sprintf(greetingFormat, resolved.Store.Name)},
			{Role: assistant.RoleAssistant, Content: helpPrompt},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.purgeIdle(now)
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.logger.Info(
		"session started",
		zap.String("session", sess.ID.String()),
		zap.String("store", resolved.Store.ID),
		zap.String("location", tracker.State().String()),
	)

	sess.Lock()
	defer sess.Unlock()

	return sess.Snapshot(), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*session.View, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	return sess.Snapshot(), nil
}

func (s *service) End(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return apperror.ErrNotFound
	}

	delete(s.sessions, id)

	return nil
}

// RetryLocation re-requests the position. On success the resolved store is
// replaced as a whole; on failure the session keeps its current store.
func (s *service) RetryLocation(ctx context.Context, id uuid.UUID, report location.Report) (*session.View, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	coords, err := sess.Tracker.Request(ctx, report)
	if err == nil {
		resolved, err := s.storeService.FindNearest(ctx, coords)
		if err != nil {
			return nil, err
		}
		sess.Store = *resolved
	} else {
		s.logLocationFailure(sess.ID, err)
	}

	sess.UpdatedAt = s.now()

	return sess.Snapshot(), nil
}

// Send masks text, appends it to the transcript and asks the relay for a
// reply. Only one message per session may be in flight. A rate limit or
// depleted credits are returned as errors and leave the user turn in place;
// any other relay failure adds a fallback assistant turn.
func (s *service) Send(ctx context.Context, id uuid.UUID, text string) (*session.View, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	if sess.Busy {
		sess.Unlock()
		return nil, apperror.ErrConflict
	}

	sess.History = append(sess.History, assistant.Turn{Role: assistant.RoleUser, Content: pii.Mask(text)})
	sess.Busy = true
	sess.UpdatedAt = s.now()

	history := append([]assistant.Turn(nil), sess.History...)
	sc := assistant.NewStoreContext(sess.Store)
	sess.Unlock()

	outcome := s.relay.Reply(ctx, history, sc)

	sess.Lock()
	defer sess.Unlock()

	sess.Busy = false
	sess.UpdatedAt = s.now()

	switch o := outcome.(type) {
	case assistant.Success:
		sess.History = append(sess.History, assistant.Turn{Role: assistant.RoleAssistant, Content: o.Text})
	case assistant.Failure:
		s.logger.Warn(
			"relay failed, replying with fallback",
			zap.String("session", sess.ID.String()),
			zap.String("reason", o.Reason),
		)
		sess.History = append(sess.History, assistant.Turn{Role: assistant.RoleAssistant, Content: FallbackReply})
	default:
		return nil, assistant.OutcomeError(outcome)
	}

	return sess.Snapshot(), nil
}

func (s *service) resolve(
	ctx context.Context,
	id uuid.UUID,
	tracker *location.Tracker,
	report location.Report,
) (*store.ResolvedStore, error) {
	coords, err := tracker.Request(ctx, report)
	if err != nil {
		s.logLocationFailure(id, err)

		return s.storeService.DefaultStore(ctx)
	}

	return s.storeService.FindNearest(ctx, coords)
}

func (s *service) get(id uuid.UUID) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}

	return sess, nil
}

// purgeIdle drops sessions untouched for longer than IdleTTL. The caller must
// hold s.mu.
func (s *service) purgeIdle(now time.Time) {
	if s.cfg.IdleTTL <= 0 {
		return
	}

	for id, sess := range s.sessions {
		sess.Lock()
		idle := !sess.Busy && now.Sub(sess.UpdatedAt) > s.cfg.IdleTTL
		sess.Unlock()

		if idle {
			delete(s.sessions, id)
			s.logger.Debug("idle session purged", zap.String("session", id.String()))
		}
	}
}

func (s *service) logLocationFailure(id uuid.UUID, err error) {
	var locErr *location.Error
	if !errors.As(err, &locErr) {
		s.logger.Error("unexpected location error", zap.Error(err))
		return
	}

	s.logger.Info(
		"location unavailable",
		zap.String("session", id.String()),
		zap.String("reason", string(locErr.Reason)),
	)
}
