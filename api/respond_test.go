package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jabbate19/devcade-api/errs"
	"github.com/rs/zerolog"
)

func TestWriteErrorMapsApiErrStatus(t *testing.T) {
	t.Parallel()

	responder := NewResponder(zerolog.Nop())

	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", errs.NewNotFound("game"), http.StatusNotFound},
		{"validation", errs.NewMissingDirectoryError("publish"), http.StatusBadRequest},
		{"storage", errs.NewObjectPutError("a/a.zip", errors.New("reset")), http.StatusInternalServerError},
		{"unexpected error becomes 500", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			responder.WriteError(rec, tc.err)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status %d, want %d", rec.Code, tc.wantStatus)
			}

			var body map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("response not JSON: %v", err)
			}
			if body["status"] != "error" {
				t.Fatalf("body %v missing error status", body)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
				t.Fatalf("content type %q on error response", ct)
			}
		})
	}
}

func TestWriteJSONStatusSetsContentType(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewResponder(zerolog.Nop()).WriteJSONStatus(rec, http.StatusCreated, map[string]string{"ok": "yes"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d, want %d", rec.Code, http.StatusCreated)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content type %q", ct)
	}
}

func TestWriteJSONSetsContentType(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewResponder(zerolog.Nop()).WriteJSON(rec, map[string]string{"ok": "yes"})

	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content type %q", ct)
	}
}
