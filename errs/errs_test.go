package errs

import (
	"errors"
	"net/http"
	"testing"
)

func TestApiErrUnwrapsToSentinel(t *testing.T) {
	t.Parallel()

	err := NewNotFound("game")
	if !errors.Is(err, ErrNotFound) {
		t.Fatal("expected errors.Is to match ErrNotFound")
	}
	if !IsNotFound(err) {
		t.Fatal("expected IsNotFound")
	}
	if err.StatusCode != http.StatusNotFound {
		t.Fatalf("status %d, want 404", err.StatusCode)
	}
}

func TestValidationTaxonomyIsClientCaused(t *testing.T) {
	t.Parallel()

	cases := []*ApiErr{
		NewWrongContentTypeError("application/gzip", "application/zip"),
		NewUnreadableArchiveError(errors.New("bad header")),
		NewMissingDirectoryError("publish"),
		NewNotADirectoryError("publish"),
		NewNotAnImageError("banner", "text/plain"),
	}
	for _, err := range cases {
		if !IsValidationError(err) {
			t.Fatalf("%v not recognized as validation error", err)
		}
		if err.StatusCode < 400 || err.StatusCode >= 500 {
			t.Fatalf("%v carries status %d, want 4xx", err, err.StatusCode)
		}
	}
}

func TestStorageTaxonomyIsServerCaused(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	cases := []*ApiErr{
		NewObjectPutError("a/a.zip", cause),
		NewObjectGetError("a/banner", cause),
		NewObjectDeleteError("a/icon", cause),
	}
	for _, err := range cases {
		if !IsStorageError(err) {
			t.Fatalf("%v not recognized as storage error", err)
		}
		if err.StatusCode != http.StatusInternalServerError {
			t.Fatalf("%v carries status %d, want 500", err, err.StatusCode)
		}
		if err.Cause != cause {
			t.Fatal("expected transport cause preserved")
		}
	}
}

func TestNewDatabaseErrorClassification(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		cause      error
		wantStatus int
	}{
		{"duplicate key", errors.New(`duplicate key value violates unique constraint "game_pkey"`), http.StatusConflict},
		{"record not found", errors.New("record not found"), http.StatusNotFound},
		{"connection", errors.New("failed to connect to database: connection refused"), http.StatusServiceUnavailable},
		{"generic", errors.New("syntax error"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := NewDatabaseError("insert", "game", tc.cause)
			if err.StatusCode != tc.wantStatus {
				t.Fatalf("status %d, want %d", err.StatusCode, tc.wantStatus)
			}
		})
	}
}

func TestGetFullErrorIncludesCauseChain(t *testing.T) {
	t.Parallel()

	inner := NewObjectPutError("a/a.zip", errors.New("timeout"))
	outer := NewInternalErrorWithCause("publishing archive", inner)

	full := outer.GetFullError()
	if full == outer.Error() {
		t.Fatal("expected cause chain in full error")
	}
}
