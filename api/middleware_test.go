package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequireAPIKey(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	cases := []struct {
		name       string
		configured string
		presented  string
		wantStatus int
	}{
		{"matching key passes", "sekrit", "sekrit", http.StatusOK},
		{"wrong key rejected", "sekrit", "wrong", http.StatusUnauthorized},
		{"missing key rejected", "sekrit", "", http.StatusUnauthorized},
		{"unconfigured key rejects all", "", "anything", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			guard := newAuthMiddleware(tc.configured).requireAPIKey(next)
			req := httptest.NewRequest(http.MethodPost, "/api/games/", nil)
			if tc.presented != "" {
				req.Header.Set(apiKeyHeader, tc.presented)
			}

			rec := httptest.NewRecorder()
			guard.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status %d, want %d", rec.Code, tc.wantStatus)
			}
		})
	}
}
