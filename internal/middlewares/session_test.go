package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-auth-web/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCookie = SessionCookie{Name: "session", MaxAge: time.Hour, Secure: true}

func TestSessionMiddleware(t *testing.T) {
	existing := uuid.New()

	tests := []struct {
		name           string
		mockSetup      func(m *MockSessionTokener)
		expectedStatus int
		expectCookie   bool
		expectExisting bool
	}{
		{
			name: "ValidCookie",
			mockSetup: func(m *MockSessionTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("signed", nil)
				m.EXPECT().GetSessionID(gomock.Any(), "signed").Return(existing, nil)
			},
			expectedStatus: http.StatusOK,
			expectExisting: true,
		},
		{
			name: "NoCookie",
			mockSetup: func(m *MockSessionTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no cookie"))
				m.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("fresh", nil)
			},
			expectedStatus: http.StatusOK,
			expectCookie:   true,
		},
		{
			name: "ForgedCookie",
			mockSetup: func(m *MockSessionTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("forged", nil)
				m.EXPECT().GetSessionID(gomock.Any(), "forged").Return(uuid.Nil, errors.New("bad signature"))
				m.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("fresh", nil)
			},
			expectedStatus: http.StatusOK,
			expectCookie:   true,
		},
		{
			name: "SigningFails",
			mockSetup: func(m *MockSessionTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no cookie"))
				m.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tokener := NewMockSessionTokener(ctrl)
			tt.mockSetup(tokener)

			var gotID uuid.UUID
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotID = SessionIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rr := httptest.NewRecorder()
			SessionMiddleware(tokener, testCookie)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedStatus == http.StatusOK, nextCalled)

			cookies := rr.Result().Cookies()
			if tt.expectCookie {
				require.Len(t, cookies, 1)
				assert.Equal(t, "session", cookies[0].Name)
				assert.Equal(t, "fresh", cookies[0].Value)
				assert.Equal(t, 3600, cookies[0].MaxAge)
				assert.True(t, cookies[0].HttpOnly)
				assert.True(t, cookies[0].Secure)
				assert.NotEqual(t, uuid.Nil, gotID)
			} else {
				assert.Empty(t, cookies)
			}
			if tt.expectExisting {
				assert.Equal(t, existing, gotID)
			}
		})
	}
}

func TestGuestOnlyMiddleware(t *testing.T) {
	sessionID := uuid.New()

	tests := []struct {
		name             string
		session          *models.Session
		err              error
		expectedStatus   int
		expectNextCalled bool
	}{
		{"Guest", nil, nil, http.StatusOK, true},
		{"SessionWithoutToken", &models.Session{ID: sessionID, Name: "John"}, nil, http.StatusOK, true},
		{"Authenticated", &models.Session{ID: sessionID, Token: "tok"}, nil, http.StatusSeeOther, false},
		{"StoreError", nil, errors.New("redis down"), http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := NewMockSessionReader(ctrl)
			reader.EXPECT().Session(gomock.Any(), sessionID).Return(tt.session, tt.err)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/signup", nil)
			req = req.WithContext(WithSessionID(req.Context(), sessionID))
			rr := httptest.NewRecorder()

			GuestOnlyMiddleware(reader)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectedStatus == http.StatusSeeOther {
				assert.Equal(t, "/", rr.Header().Get("Location"))
			}
		})
	}
}

func TestClearSessionCookie(t *testing.T) {
	rr := httptest.NewRecorder()
	ClearSessionCookie(rr, testCookie)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestSessionIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, uuid.Nil, SessionIDFromContext(req.Context()))
}
