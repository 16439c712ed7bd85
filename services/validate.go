package services

import (
	"archive/zip"
	"mime"
	"strings"

	"github.com/jabbate19/devcade-api/errs"
)

// archiveContentType is the only accepted declared type for game archives.
const archiveContentType = "application/zip"

// publishDir is the directory every game archive must contain. Its contents
// are not inspected here.
const publishDir = "publish"

// ValidateArchive confirms the upload is a zip archive containing a publish/
// directory entry. Structural check only; no side effects.
func ValidateArchive(up Upload) error {
	if up.ContentType != archiveContentType {
		return errs.NewWrongContentTypeError(up.ContentType, archiveContentType)
	}

	zr, err := zip.OpenReader(up.Path)
	if err != nil {
		return errs.NewUnreadableArchiveError(err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != publishDir && f.Name != publishDir+"/" {
			continue
		}
		if !f.FileInfo().IsDir() {
			return errs.NewNotADirectoryError(publishDir)
		}
		return nil
	}
	return errs.NewMissingDirectoryError(publishDir)
}

// ValidateImage confirms the upload's declared media type is in the image
// category. No extension or pixel-content validation.
func ValidateImage(slot string, up Upload) error {
	mediaType, _, err := mime.ParseMediaType(up.ContentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return errs.NewNotAnImageError(slot, up.ContentType)
	}
	return nil
}
