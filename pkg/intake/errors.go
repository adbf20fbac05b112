package intake

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// Validation errors, in the order the pipeline checks them
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrDangerousFilename    = errors.New("filename contains dangerous patterns")
	ErrInvalidFileType      = errors.New("file type not allowed")
	ErrBaseDirectoryInvalid = errors.New("upload directory is not available")
	ErrPathTraversal        = errors.New("path traversal attempt detected")
	ErrSymlinkDetected      = errors.New("symbolic link detected in upload path")

	// I/O errors - wrapped with context for debugging, never shown to callers
	ErrStorageFailure = errors.New("file upload failed due to server error")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrNotWritable   = fmt.Errorf("%w: not writable", ErrBaseDirectoryInvalid)
)

// Detailed storage errors. Each one wraps ErrStorageFailure.
var (
	ErrFailedToResolvePath     = fmt.Errorf("%w: failed to resolve path", ErrStorageFailure)
	ErrFailedToStatPath        = fmt.Errorf("%w: failed to stat path", ErrStorageFailure)
	ErrFailedToCreateDirectory = fmt.Errorf("%w: failed to create directory", ErrStorageFailure)
	ErrFailedToCreateFile      = fmt.Errorf("%w: failed to create file", ErrStorageFailure)
	ErrFailedToWriteFile       = fmt.Errorf("%w: failed to write file", ErrStorageFailure)
	ErrUnusableName            = fmt.Errorf("%w: name generator returned an unusable name", ErrStorageFailure)
)

// ErrorKind classifies why an upload was rejected.
// Kinds are listed in the order the pipeline checks them.
type ErrorKind int

const (
	KindTooLarge ErrorKind = iota + 1
	KindDangerousFilename
	KindInvalidFileType
	KindBaseDirectoryInvalid
	KindPathTraversal
	KindSymlinkDetected
	KindStorageFailure
)

var kindNames = map[ErrorKind]string{
	KindTooLarge:             "too_large",
	KindDangerousFilename:    "dangerous_filename",
	KindInvalidFileType:      "invalid_file_type",
	KindBaseDirectoryInvalid: "base_directory_invalid",
	KindPathTraversal:        "path_traversal",
	KindSymlinkDetected:      "symlink_detected",
	KindStorageFailure:       "storage_failure",
}

// String returns a stable snake_case code suitable for logs and API payloads.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Err returns the sentinel error for the kind.
// Unknown kinds map to ErrStorageFailure.
func (k ErrorKind) Err() error {
	switch k {
	case KindTooLarge:
		return ErrFileTooLarge
	case KindDangerousFilename:
		return ErrDangerousFilename
	case KindInvalidFileType:
		return ErrInvalidFileType
	case KindBaseDirectoryInvalid:
		return ErrBaseDirectoryInvalid
	case KindPathTraversal:
		return ErrPathTraversal
	case KindSymlinkDetected:
		return ErrSymlinkDetected
	default:
		return ErrStorageFailure
	}
}

// HTTPStatus maps the kind to the status code an HTTP layer should answer with.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindTooLarge:
		return http.StatusRequestEntityTooLarge
	case KindInvalidFileType:
		return http.StatusUnsupportedMediaType
	case KindBaseDirectoryInvalid, KindStorageFailure:
		return http.StatusInternalServerError
	case KindDangerousFilename, KindPathTraversal, KindSymlinkDetected:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// kindOf finds the kind whose sentinel err wraps.
// Anything unrecognised is a storage failure.
func kindOf(err error) ErrorKind {
	for _, k := range []ErrorKind{
		KindTooLarge,
		KindDangerousFilename,
		KindInvalidFileType,
		KindBaseDirectoryInvalid,
		KindPathTraversal,
		KindSymlinkDetected,
	} {
		if errors.Is(err, k.Err()) {
			return k
		}
	}
	return KindStorageFailure
}
