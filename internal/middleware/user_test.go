package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/hideapp/reminder-service/internal/middleware"
	"github.com/hideapp/reminder-service/internal/utils"
)

func TestRequireUser(t *testing.T) {
	userID := uuid.New()

	testCases := []struct {
		name     string
		header   string
		wantCode int
		wantNext bool
	}{
		{"valid uuid", userID.String(), http.StatusOK, true},
		{"missing header", "", http.StatusUnauthorized, false},
		{"malformed value", "not-a-uuid", http.StatusUnprocessableEntity, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			next := func(w http.ResponseWriter, r *http.Request) {
				called = true
				got, ok := utils.GetUserIDFromContext(r.Context())
				if !ok || got != userID {
					t.Errorf("expected user id %s in context, got %v (ok=%v)", userID, got, ok)
				}
			}

			req := httptest.NewRequest(http.MethodGet, "/reminder/", nil)
			if tc.header != "" {
				req.Header.Set(middleware.UserIDHeader, tc.header)
			}

			rec := httptest.NewRecorder()
			middleware.RequireUser(next)(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			if called != tc.wantNext {
				t.Fatalf("expected next called=%v, got %v", tc.wantNext, called)
			}
		})
	}
}
