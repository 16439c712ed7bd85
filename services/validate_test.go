package services

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/jabbate19/devcade-api/errs"
)

// writeZip builds a zip at a temp path containing the given entries. Names
// ending in "/" become directory entries.
func writeZip(t *testing.T, entries ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "game.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating zip file: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, name := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("adding entry %q: %v", name, err)
		}
		if name[len(name)-1] != '/' {
			if _, err := w.Write([]byte("content")); err != nil {
				t.Fatalf("writing entry %q: %v", name, err)
			}
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return path
}

func TestValidateArchive(t *testing.T) {
	t.Parallel()

	t.Run("accepts archive with publish directory", func(t *testing.T) {
		t.Parallel()
		up := Upload{Path: writeZip(t, "publish/", "publish/game.exe"), ContentType: "application/zip"}
		if err := ValidateArchive(up); err != nil {
			t.Fatalf("expected valid archive, got %v", err)
		}
	})

	t.Run("rejects wrong content type", func(t *testing.T) {
		t.Parallel()
		up := Upload{Path: writeZip(t, "publish/"), ContentType: "application/gzip"}
		err := ValidateArchive(up)
		if !errs.IsWrongContentTypeError(err) {
			t.Fatalf("expected wrong content type error, got %v", err)
		}
	})

	t.Run("rejects archive without publish directory", func(t *testing.T) {
		t.Parallel()
		up := Upload{Path: writeZip(t, "release/", "readme.txt"), ContentType: "application/zip"}
		err := ValidateArchive(up)
		if !errs.IsMissingDirectoryError(err) {
			t.Fatalf("expected missing directory error, got %v", err)
		}
	})

	t.Run("rejects publish entry that is a file", func(t *testing.T) {
		t.Parallel()
		up := Upload{Path: writeZip(t, "publish"), ContentType: "application/zip"}
		err := ValidateArchive(up)
		if !errs.IsNotADirectoryError(err) {
			t.Fatalf("expected not-a-directory error, got %v", err)
		}
	})

	t.Run("rejects bytes that are not a zip", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "notazip.zip")
		if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
			t.Fatal(err)
		}
		err := ValidateArchive(Upload{Path: path, ContentType: "application/zip"})
		if !errs.IsValidationError(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestValidateImage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		contentType string
		wantErr     bool
	}{
		{"png accepted", "image/png", false},
		{"jpeg accepted", "image/jpeg", false},
		{"media type parameters tolerated", "image/png; charset=binary", false},
		{"zip rejected", "application/zip", true},
		{"text rejected", "text/plain", true},
		{"empty rejected", "", true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateImage(SlotBanner, Upload{ContentType: tc.contentType})
			if tc.wantErr && !errs.IsNotAnImageError(err) {
				t.Fatalf("expected not-an-image error, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("expected image accepted, got %v", err)
			}
		})
	}
}
