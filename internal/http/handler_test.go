package http_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpapi "activities-service/internal/http"
	"activities-service/internal/http/mocks"
	"activities-service/internal/model"
	"activities-service/internal/service"
)

var logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

func newRouter(t *testing.T, roster *mocks.RosterService, opts httpapi.Options) http.Handler {
	t.Helper()
	return httpapi.NewHandler(roster, logger, opts).Router()
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandler_SignUp(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		mockBehavior   func(rs *mocks.RosterService)
		expectedStatus int
		expectedBody   map[string]any
	}{
		{
			name:   "Success",
			target: "/activities/Programming%20Class/signup?email=new%40mergington.edu",
			mockBehavior: func(rs *mocks.RosterService) {
				rs.On("SignUp", mock.Anything, "Programming Class", "new@mergington.edu").
					Return(model.Confirmation{Message: "Signed up new@mergington.edu for Programming Class"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]any{"message": "Signed up new@mergington.edu for Programming Class"},
		},
		{
			name:   "Success: plus sign kept when encoded",
			target: "/activities/Chess%20Club/signup?email=test.student%2Babc%40mergington.edu",
			mockBehavior: func(rs *mocks.RosterService) {
				rs.On("SignUp", mock.Anything, "Chess Club", "test.student+abc@mergington.edu").
					Return(model.Confirmation{Message: "ok"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]any{"message": "ok"},
		},
		{
			name:   "Activity not found",
			target: "/activities/Nonexistent%20Club/signup?email=new%40mergington.edu",
			mockBehavior: func(rs *mocks.RosterService) {
				rs.On("SignUp", mock.Anything, "Nonexistent Club", "new@mergington.edu").
					Return(model.Confirmation{}, service.ErrNotFound(service.CodeActivityNotFound, "Activity not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   map[string]any{"detail": "Activity not found"},
		},
		{
			name:   "Already registered",
			target: "/activities/Programming%20Class/signup?email=emma%40mergington.edu",
			mockBehavior: func(rs *mocks.RosterService) {
				rs.On("SignUp", mock.Anything, "Programming Class", "emma@mergington.edu").
					Return(model.Confirmation{}, service.ErrDomain(service.CodeAlreadyRegistered, "Student already signed up for this activity"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]any{"detail": "Student already signed up for this activity"},
		},
		{
			name:   "Activity full",
			target: "/activities/Programming%20Class/signup?email=late%40mergington.edu",
			mockBehavior: func(rs *mocks.RosterService) {
				rs.On("SignUp", mock.Anything, "Programming Class", "late@mergington.edu").
					Return(model.Confirmation{}, service.ErrDomain(service.CodeCapacityExceeded, "Activity is full"))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   map[string]any{"detail": "Activity is full"},
		},
		{
			name:           "Missing email",
			target:         "/activities/Programming%20Class/signup",
			mockBehavior:   func(rs *mocks.RosterService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   map[string]any{"detail": "email is required"},
		},
		{
			name:   "Internal error is not leaked",
			target: "/activities/Programming%20Class/signup?email=new%40mergington.edu",
			mockBehavior: func(rs *mocks.RosterService) {
				rs.On("SignUp", mock.Anything, "Programming Class", "new@mergington.edu").
					Return(model.Confirmation{}, errors.New("something broke"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]any{"detail": "internal error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := mocks.NewRosterService(t)
			tt.mockBehavior(rs)

			req := httptest.NewRequest(http.MethodPost, tt.target, nil)
			w := httptest.NewRecorder()

			newRouter(t, rs, httpapi.Options{}).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedBody, decodeBody(t, w))
		})
	}
}

func TestHandler_Unregister(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		mockBehavior   func(rs *mocks.RosterService)
		expectedStatus int
		expectedBody   map[string]any
	}{
		{
			name:   "Success",
			target: "/activities/Programming%20Class/unregister?email=emma%40mergington.edu",
			mockBehavior: func(rs *mocks.RosterService) {
				rs.On("Unregister", mock.Anything, "Programming Class", "emma@mergington.edu").
					Return(model.Confirmation{Message: "Unregistered emma@mergington.edu from Programming Class"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]any{"message": "Unregistered emma@mergington.edu from Programming Class"},
		},
		{
			name:   "Not registered",
			target: "/activities/Programming%20Class/unregister?email=ghost%40mergington.edu",
			mockBehavior: func(rs *mocks.RosterService) {
				rs.On("Unregister", mock.Anything, "Programming Class", "ghost@mergington.edu").
					Return(model.Confirmation{}, service.ErrNotFound(service.CodeNotRegistered, "Participant not found for this activity"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   map[string]any{"detail": "Participant not found for this activity"},
		},
		{
			name:   "Activity not found",
			target: "/activities/Nope/unregister?email=ghost%40mergington.edu",
			mockBehavior: func(rs *mocks.RosterService) {
				rs.On("Unregister", mock.Anything, "Nope", "ghost@mergington.edu").
					Return(model.Confirmation{}, service.ErrNotFound(service.CodeActivityNotFound, "Activity not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   map[string]any{"detail": "Activity not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := mocks.NewRosterService(t)
			tt.mockBehavior(rs)

			req := httptest.NewRequest(http.MethodPost, tt.target, nil)
			w := httptest.NewRecorder()

			newRouter(t, rs, httpapi.Options{}).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, decodeBody(t, w))
		})
	}
}

func TestHandler_ListActivities(t *testing.T) {
	rs := mocks.NewRosterService(t)
	rs.On("ListActivities", mock.Anything).Return([]model.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Empty Club",
			Description:     "Nobody here yet",
			Schedule:        "Never",
			MaxParticipants: 1,
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	w := httptest.NewRecorder()
	newRouter(t, rs, httpapi.Options{}).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"Chess Club": {
			"description": "Learn strategies and compete in chess tournaments",
			"schedule": "Fridays, 3:30 PM - 5:00 PM",
			"max_participants": 12,
			"participants": ["michael@mergington.edu", "daniel@mergington.edu"]
		},
		"Empty Club": {
			"description": "Nobody here yet",
			"schedule": "Never",
			"max_participants": 1,
			"participants": []
		}
	}`, w.Body.String())
}

func TestHandler_RootRedirect(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	newRouter(t, mocks.NewRosterService(t), httpapi.Options{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/static/index.html", w.Header().Get("Location"))
}

func TestHandler_StaticAndHealth(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log('hi')"), 0o600))

	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	})
	router := newRouter(t, mocks.NewRosterService(t), httpapi.Options{StaticDir: dir, Metrics: metrics})

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{path: "/static/app.js", wantStatus: http.StatusOK, wantBody: "console.log('hi')"},
		{path: "/static/missing.js", wantStatus: http.StatusNotFound},
		{path: "/health", wantStatus: http.StatusOK, wantBody: `{"status":"ok"}`},
		{path: "/metrics", wantStatus: http.StatusOK, wantBody: "# metrics"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestHandler_ActivityNameDecoding(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		activity string
	}{
		{name: "Percent sign in name", target: "/activities/100%25%20Club/signup?email=a%40mergington.edu", activity: "100% Club"},
		{name: "Escape-like sequence in name", target: "/activities/A%2541/signup?email=a%40mergington.edu", activity: "A%41"},
		{name: "Encoded slash in name", target: "/activities/Arts%2FCrafts/signup?email=a%40mergington.edu", activity: "Arts/Crafts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := mocks.NewRosterService(t)
			rs.On("SignUp", mock.Anything, tt.activity, "a@mergington.edu").
				Return(model.Confirmation{Message: "ok"}, nil)

			req := httptest.NewRequest(http.MethodPost, tt.target, nil)
			w := httptest.NewRecorder()

			newRouter(t, rs, httpapi.Options{}).ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestHandler_CORSPreflight(t *testing.T) {
	router := newRouter(t, mocks.NewRosterService(t), httpapi.Options{
		AllowedOrigins: []string{"http://localhost:5173"},
	})

	req := httptest.NewRequest(http.MethodOptions, "/activities/Chess%20Club/signup", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
