package sessionservice

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/shopbuddy-backend/internal/apperror"
	"github.com/xw1nchester/shopbuddy-backend/internal/assistant"
	"github.com/xw1nchester/shopbuddy-backend/internal/geo"
	"github.com/xw1nchester/shopbuddy-backend/internal/location"
	"github.com/xw1nchester/shopbuddy-backend/internal/market/store"
	storedb "github.com/xw1nchester/shopbuddy-backend/internal/market/store/db"
	mocksessionservice "github.com/xw1nchester/shopbuddy-backend/internal/session/service/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	Catalog = storedb.DefaultStores()

	JPNagar = geo.Coordinates{Latitude: 12.9063, Longitude: 77.5857}

	NearestStore = &store.ResolvedStore{
		Store:             Catalog[0],
		DistanceMeters:    0,
		FormattedDistance: "0m away",
		UserLocation:      &JPNagar,
	}
	DefaultStore = &store.ResolvedStore{
		Store:             Catalog[0],
		FormattedDistance: store.DistanceUnknown,
	}
)

type deps struct {
	stores *mocksessionservice.MockStoreService
	relay  *mocksessionservice.MockRelay
}

func newService(t *testing.T) (*service, deps) {
	ctrl := gomock.NewController(t)
	d := deps{
		stores: mocksessionservice.NewMockStoreService(ctrl),
		relay:  mocksessionservice.NewMockRelay(ctrl),
	}

	cfg := Config{Location: location.DefaultOptions(), IdleTTL: time.Hour}

	return New(d.stores, d.relay, cfg, zap.NewNop()), d
}

func startSession(t *testing.T, s *service, d deps) uuid.UUID {
	t.Helper()

	d.stores.EXPECT().FindNearest(gomock.Any(), JPNagar).Return(NearestStore, nil)

	view, err := s.Start(context.Background(), location.Report{Coordinates: &JPNagar})
	require.NoError(t, err)

	return view.ID
}

func TestStart(t *testing.T) {
	tests := []struct {
		name             string
		report           location.Report
		mockBehavior     func(d deps)
		expectedStatus   location.State
		expectedReason   location.Reason
		expectedDistance string
	}{
		{
			name:   "position reported",
			report: location.Report{Coordinates: &JPNagar},
			mockBehavior: func(d deps) {
				d.stores.EXPECT().FindNearest(gomock.Any(), JPNagar).Return(NearestStore, nil)
			},
			expectedStatus:   location.StateResolved,
			expectedDistance: "0m away",
		},
		{
			name:   "permission denied",
			report: location.Report{Error: &location.PositionError{Code: location.CodePermissionDenied}},
			mockBehavior: func(d deps) {
				d.stores.EXPECT().DefaultStore(gomock.Any()).Return(DefaultStore, nil)
			},
			expectedStatus:   location.StateFailed,
			expectedReason:   location.ReasonPermissionDenied,
			expectedDistance: store.DistanceUnknown,
		},
		{
			name:   "nothing reported",
			report: location.Report{},
			mockBehavior: func(d deps) {
				d.stores.EXPECT().DefaultStore(gomock.Any()).Return(DefaultStore, nil)
			},
			expectedStatus:   location.StateFailed,
			expectedReason:   location.ReasonUnsupported,
			expectedDistance: store.DistanceUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, d := newService(t)
			tt.mockBehavior(d)

			view, err := s.Start(context.Background(), tt.report)
			require.NoError(t, err)

			assert.NotEqual(t, uuid.Nil, view.ID)
			assert.Equal(t, tt.expectedStatus, view.Location.Status)
			assert.Equal(t, tt.expectedReason, view.Location.Reason)
			assert.Equal(t, tt.expectedDistance, view.Store.FormattedDistance)
			assert.False(t, view.Busy)

			require.Len(t, view.Messages, 2)
			assert.Equal(t, assistant.RoleAssistant, view.Messages[0].Role)
			assert.Contains(t, view.Messages[0].Content, "I noticed you're near Starbucks JP Nagar!")
			assert.Equal(t, helpPrompt, view.Messages[1].Content)
		})
	}
}

func TestStartPurgesIdleSessions(t *testing.T) {
	s, d := newService(t)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	staleID := startSession(t, s, d)

	now = now.Add(2 * time.Hour)
	freshID := startSession(t, s, d)

	_, err := s.Get(context.Background(), staleID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = s.Get(context.Background(), freshID)
	assert.NoError(t, err)
}

func TestSend(t *testing.T) {
	tests := []struct {
		name             string
		text             string
		outcome          assistant.Outcome
		expectedError    error
		expectedMessages []assistant.Turn
	}{
		{
			name:    "success",
			text:    "Is hot cocoa available?",
			outcome: assistant.Success{Text: "Yes, 10 left."},
			expectedMessages: []assistant.Turn{
				{Role: assistant.RoleUser, Content: "Is hot cocoa available?"},
				{Role: assistant.RoleAssistant, Content: "Yes, 10 left."},
			},
		},
		{
			name:    "user text is masked",
			text:    "Call me at 9876543210",
			outcome: assistant.Success{Text: "Sure."},
			expectedMessages: []assistant.Turn{
				{Role: assistant.RoleUser, Content: "Call me at +91-XXXXXXXXXX"},
				{Role: assistant.RoleAssistant, Content: "Sure."},
			},
		},
		{
			name:    "failure appends fallback",
			text:    "hello",
			outcome: assistant.Failure{Reason: "AI service is unreachable"},
			expectedMessages: []assistant.Turn{
				{Role: assistant.RoleUser, Content: "hello"},
				{Role: assistant.RoleAssistant, Content: FallbackReply},
			},
		},
		{
			name:          "rate limited",
			text:          "hello",
			outcome:       assistant.RateLimited{},
			expectedError: apperror.ErrRateLimited,
			expectedMessages: []assistant.Turn{
				{Role: assistant.RoleUser, Content: "hello"},
			},
		},
		{
			name:          "credits depleted",
			text:          "hello",
			outcome:       assistant.CreditsDepleted{},
			expectedError: apperror.ErrCreditsDepleted,
			expectedMessages: []assistant.Turn{
				{Role: assistant.RoleUser, Content: "hello"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, d := newService(t)
			id := startSession(t, s, d)

			d.relay.EXPECT().
				Reply(gomock.Any(), gomock.Len(3), assistant.NewStoreContext(*NearestStore)).
				Return(tt.outcome)

			view, err := s.Send(context.Background(), id, tt.text)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, view)

				view, err = s.Get(context.Background(), id)
				require.NoError(t, err)
			} else {
				require.NoError(t, err)
			}

			assert.False(t, view.Busy)
			assert.Equal(t, tt.expectedMessages, view.Messages[2:])
		})
	}
}

func TestSendWhileBusy(t *testing.T) {
	s, d := newService(t)
	id := startSession(t, s, d)

	d.relay.EXPECT().
		Reply(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, history []assistant.Turn, sc assistant.StoreContext) assistant.Outcome {
			view, err := s.Get(ctx, id)
			require.NoError(t, err)
			assert.True(t, view.Busy)

			_, err = s.Send(ctx, id, "second")
			assert.ErrorIs(t, err, apperror.ErrConflict)

			return assistant.Success{Text: "done"}
		})

	view, err := s.Send(context.Background(), id, "first")
	require.NoError(t, err)
	assert.Len(t, view.Messages, 4)
}

func TestSendUnknownSession(t *testing.T) {
	s, _ := newService(t)

	_, err := s.Send(context.Background(), uuid.New(), "hello")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestRetryLocation(t *testing.T) {
	s, d := newService(t)

	d.stores.EXPECT().DefaultStore(gomock.Any()).Return(DefaultStore, nil)

	view, err := s.Start(context.Background(), location.Report{
		Error: &location.PositionError{Code: location.CodeTimeout},
	})
	require.NoError(t, err)
	assert.Equal(t, location.ReasonTimeout, view.Location.Reason)

	view, err = s.RetryLocation(context.Background(), view.ID, location.Report{
		Error: &location.PositionError{Code: location.CodePositionUnavailable},
	})
	require.NoError(t, err)
	assert.Equal(t, location.StateFailed, view.Location.Status)
	assert.Equal(t, location.ReasonPositionUnavailable, view.Location.Reason)
	assert.Equal(t, store.DistanceUnknown, view.Store.FormattedDistance)

	d.stores.EXPECT().FindNearest(gomock.Any(), JPNagar).Return(NearestStore, nil)

	view, err = s.RetryLocation(context.Background(), view.ID, location.Report{Coordinates: &JPNagar})
	require.NoError(t, err)
	assert.Equal(t, location.StateResolved, view.Location.Status)
	assert.Empty(t, view.Location.Reason)
	assert.Equal(t, "0m away", view.Store.FormattedDistance)
	assert.Equal(t, &JPNagar, view.Store.UserLocation)
}

func TestEnd(t *testing.T) {
	s, d := newService(t)
	id := startSession(t, s, d)

	require.NoError(t, s.End(context.Background(), id))

	assert.ErrorIs(t, s.End(context.Background(), id), apperror.ErrNotFound)

	_, err := s.Get(context.Background(), id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
