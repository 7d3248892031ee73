package sessionhandler

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/xw1nchester/shopbuddy-backend/internal/apperror"
	"github.com/xw1nchester/shopbuddy-backend/internal/geo"
	"github.com/xw1nchester/shopbuddy-backend/internal/location"
	"github.com/xw1nchester/shopbuddy-backend/internal/session"
	mocksessionhandler "github.com/xw1nchester/shopbuddy-backend/internal/session/handler/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	SessionID = uuid.MustParse("6f1c2d3e-4b5a-4c7d-8e9f-0a1b2c3d4e5f")

	View = &session.View{
		ID:       SessionID,
		Location: session.LocationView{Status: location.StateResolved},
	}
)

type mockBehavior func(s *mocksessionhandler.MockService)

type testCase struct {
	name               string
	method             string
	target             string
	inputBody          string
	mockBehavior       mockBehavior
	expectedStatusCode int
	expectedBody       string
}

func runTests(t *testing.T, testTable []testCase) {
	t.Helper()

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			service := mocksessionhandler.NewMockService(c)
			tc.mockBehavior(service)

			router := chi.NewRouter()
			New(service, zap.NewNop()).Register(router)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(tc.method, tc.target, bytes.NewBufferString(tc.inputBody))

			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatusCode, w.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, w.Body.String())
			}
		})
	}
}

func TestHandler_startHandler(t *testing.T) {
	runTests(t, []testCase{
		{
			name:      "OK with coordinates",
			method:    http.MethodPost,
			target:    "/sessions",
			inputBody: `{"location":{"latitude":12.9063,"longitude":"77.5857"}}`,
			mockBehavior: func(s *mocksessionhandler.MockService) {
				s.EXPECT().Start(gomock.Any(), location.Report{
					Coordinates: &geo.Coordinates{Latitude: 12.9063, Longitude: 77.5857},
				}).Return(View, nil)
			},
			expectedStatusCode: 201,
		},
		{
			name:      "OK with location error",
			method:    http.MethodPost,
			target:    "/sessions",
			inputBody: `{"locationError":{"code":1}}`,
			mockBehavior: func(s *mocksessionhandler.MockService) {
				s.EXPECT().Start(gomock.Any(), location.Report{
					Error: &location.PositionError{Code: location.CodePermissionDenied},
				}).Return(View, nil)
			},
			expectedStatusCode: 201,
		},
		{
			name:   "OK with empty body",
			method: http.MethodPost,
			target: "/sessions",
			mockBehavior: func(s *mocksessionhandler.MockService) {
				s.EXPECT().Start(gomock.Any(), location.Report{}).Return(View, nil)
			},
			expectedStatusCode: 201,
		},
		{
			name:               "Invalid latitude",
			method:             http.MethodPost,
			target:             "/sessions",
			inputBody:          `{"location":{"latitude":120,"longitude":77.5}}`,
			mockBehavior:       func(s *mocksessionhandler.MockService) {},
			expectedStatusCode: 400,
			expectedBody:       `{"error":"field Latitude is not a valid latitude"}`,
		},
		{
			name:               "Malformed body",
			method:             http.MethodPost,
			target:             "/sessions",
			inputBody:          `{"location":`,
			mockBehavior:       func(s *mocksessionhandler.MockService) {},
			expectedStatusCode: 400,
			expectedBody:       `{"error":"failed to decode request body"}`,
		},
	})
}

func TestHandler_getHandler(t *testing.T) {
	runTests(t, []testCase{
		{
			name:   "OK",
			method: http.MethodGet,
			target: "/sessions/" + SessionID.String(),
			mockBehavior: func(s *mocksessionhandler.MockService) {
				s.EXPECT().Get(gomock.Any(), SessionID).Return(View, nil)
			},
			expectedStatusCode: 200,
		},
		{
			name:   "Not found",
			method: http.MethodGet,
			target: "/sessions/" + SessionID.String(),
			mockBehavior: func(s *mocksessionhandler.MockService) {
				s.EXPECT().Get(gomock.Any(), SessionID).Return(nil, apperror.ErrNotFound)
			},
			expectedStatusCode: 404,
			expectedBody:       `{"error":"not found"}`,
		},
		{
			name:               "Malformed id",
			method:             http.MethodGet,
			target:             "/sessions/not-a-uuid",
			mockBehavior:       func(s *mocksessionhandler.MockService) {},
			expectedStatusCode: 404,
		},
	})
}

func TestHandler_endHandler(t *testing.T) {
	runTests(t, []testCase{
		{
			name:   "OK",
			method: http.MethodDelete,
			target: "/sessions/" + SessionID.String(),
			mockBehavior: func(s *mocksessionhandler.MockService) {
				s.EXPECT().End(gomock.Any(), SessionID).Return(nil)
			},
			expectedStatusCode: 204,
		},
		{
			name:   "Not found",
			method: http.MethodDelete,
			target: "/sessions/" + SessionID.String(),
			mockBehavior: func(s *mocksessionhandler.MockService) {
				s.EXPECT().End(gomock.Any(), SessionID).Return(apperror.ErrNotFound)
			},
			expectedStatusCode: 404,
		},
	})
}

func TestHandler_retryLocationHandler(t *testing.T) {
	runTests(t, []testCase{
		{
			name:      "OK",
			method:    http.MethodPost,
			target:    "/sessions/" + SessionID.String() + "/location",
			inputBody: `{"locationError":{"code":3}}`,
			mockBehavior: func(s *mocksessionhandler.MockService) {
				s.EXPECT().RetryLocation(gomock.Any(), SessionID, location.Report{
					Error: &location.PositionError{Code: location.CodeTimeout},
				}).Return(View, nil)
			},
			expectedStatusCode: 200,
		},
	})
}

func TestHandler_sendMessageHandler(t *testing.T) {
	target := "/sessions/" + SessionID.String() + "/messages"

	runTests(t, []testCase{
		{
			name:      "OK",
			method:    http.MethodPost,
			target:    target,
			inputBody: `{"content":"is hot cocoa available?"}`,
			mockBehavior: func(s *mocksessionhandler.MockService) {
				s.EXPECT().Send(gomock.Any(), SessionID, "is hot cocoa available?").Return(View, nil)
			},
			expectedStatusCode: 200,
		},
		{
			name:               "Empty content",
			method:             http.MethodPost,
			target:             target,
			inputBody:          `{"content":""}`,
			mockBehavior:       func(s *mocksessionhandler.MockService) {},
			expectedStatusCode: 400,
			expectedBody:       `{"error":"field Content is a required field"}`,
		},
		{
			name:      "Busy",
			method:    http.MethodPost,
			target:    target,
			inputBody: `{"content":"again"}`,
			mockBehavior: func(s *mocksessionhandler.MockService) {
				s.EXPECT().Send(gomock.Any(), SessionID, "again").Return(nil, apperror.ErrConflict)
			},
			expectedStatusCode: 409,
		},
		{
			name:      "Rate limited",
			method:    http.MethodPost,
			target:    target,
			inputBody: `{"content":"hello"}`,
			mockBehavior: func(s *mocksessionhandler.MockService) {
				s.EXPECT().Send(gomock.Any(), SessionID, "hello").Return(nil, apperror.ErrRateLimited)
			},
			expectedStatusCode: 429,
			expectedBody:       `{"error":"Rate limit exceeded. Please try again in a moment.","code":"RATE_LIMITED"}`,
		},
		{
			name:      "Unexpected error",
			method:    http.MethodPost,
			target:    target,
			inputBody: `{"content":"hello"}`,
			mockBehavior: func(s *mocksessionhandler.MockService) {
				s.EXPECT().Send(gomock.Any(), SessionID, "hello").Return(nil, errors.New("unexpected error"))
			},
			expectedStatusCode: 500,
			expectedBody:       `{"error":"internal error","code":"INTERNAL_ERROR"}`,
		},
	})
}
