package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brainjot/server/internal/token"
)

var testSecret = []byte("test-secret")

func TestAuth(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFrom(r.Context())
		if !ok {
			t.Error("Expected claims in context")
		}
		if claims.UserID != 123 {
			t.Errorf("Expected user ID 123, got %d", claims.UserID)
		}
		w.WriteHeader(http.StatusOK)
	})

	valid, err := token.Issue(testSecret, 123, "alice", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	forged, _ := token.Issue([]byte("other-secret"), 123, "alice", time.Hour)
	expired, _ := token.Issue(testSecret, 123, "alice", -time.Minute)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{
			name:           "Valid Token",
			header:         "Bearer " + valid,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing Header",
			header:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing Bearer Prefix",
			header:         valid,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Forged Token",
			header:         "Bearer " + forged,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Expired Token",
			header:         "Bearer " + expired,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			Auth(testSecret, nextHandler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v",
					rr.Code, tt.expectedStatus)
			}
		})
	}
}

func TestAuthRejectionMessages(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not run")
	})

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()
	Auth(testSecret, next).ServeHTTP(rr, req)
	if body := rr.Body.String(); body != "{\"message\":\"Access denied. No token provided.\"}\n" {
		t.Errorf("unexpected body for missing token: %s", body)
	}

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rr = httptest.NewRecorder()
	Auth(testSecret, next).ServeHTTP(rr, req)
	if body := rr.Body.String(); body != "{\"message\":\"Token is not valid.\"}\n" {
		t.Errorf("unexpected body for invalid token: %s", body)
	}
}

func TestLogging(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	Logging(nextHandler).ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("handler returned wrong status code: got %v want %v",
			rr.Code, http.StatusNotFound)
	}
}
