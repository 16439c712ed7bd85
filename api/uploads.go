package api

import (
	"io"
	"net/http"
	"os"

	"github.com/jabbate19/devcade-api/errs"
	"github.com/jabbate19/devcade-api/services"
)

// maxUploadBytes bounds the in-memory portion of multipart parsing; larger
// parts spill to disk via the multipart reader itself.
const maxUploadBytes = 32 << 20

// spoolFormFile copies the named multipart part to a temp file so the
// validator and hasher can read it from a stable path. The caller removes the
// file when the request finishes.
func spoolFormFile(r *http.Request, field string) (services.Upload, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return services.Upload{}, errs.NewBadRequestError("missing " + field + " file")
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", "devcade-upload-*")
	if err != nil {
		return services.Upload{}, errs.NewInternalErrorWithCause("failed to spool upload", err)
	}

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return services.Upload{}, errs.NewInternalErrorWithCause("failed to spool upload", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return services.Upload{}, errs.NewInternalErrorWithCause("failed to spool upload", err)
	}

	return services.Upload{
		Path:        tmp.Name(),
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}

func removeUploads(uploads ...services.Upload) {
	for _, up := range uploads {
		if up.Path != "" {
			os.Remove(up.Path)
		}
	}
}
