package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Object Storage Errors
var (
	ErrObjectPut    = errors.New("object storage put failed")
	ErrObjectGet    = errors.New("object storage get failed")
	ErrObjectDelete = errors.New("object storage delete failed")
)

func NewObjectPutError(key string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrObjectPut,
		Details:    fmt.Sprintf("Failed to store object %s", key),
		Cause:      cause,
	}
}

func NewObjectGetError(key string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrObjectGet,
		Details:    fmt.Sprintf("Failed to fetch object %s", key),
		Cause:      cause,
	}
}

func NewObjectDeleteError(key string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrObjectDelete,
		Details:    fmt.Sprintf("Failed to delete object %s", key),
		Cause:      cause,
	}
}

// Object Storage Error Type Checkers
func IsObjectPutError(err error) bool {
	return errors.Is(err, ErrObjectPut)
}

func IsObjectGetError(err error) bool {
	return errors.Is(err, ErrObjectGet)
}

func IsObjectDeleteError(err error) bool {
	return errors.Is(err, ErrObjectDelete)
}

// IsStorageError reports whether err came from the object storage layer.
func IsStorageError(err error) bool {
	return errors.Is(err, ErrObjectPut) ||
		errors.Is(err, ErrObjectGet) ||
		errors.Is(err, ErrObjectDelete)
}
