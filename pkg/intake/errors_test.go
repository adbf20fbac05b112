package intake_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/intake/pkg/intake"
)

func TestErrorKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind   intake.ErrorKind
		name   string
		err    error
		status int
	}{
		{intake.KindTooLarge, "too_large", intake.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{intake.KindDangerousFilename, "dangerous_filename", intake.ErrDangerousFilename, http.StatusBadRequest},
		{intake.KindInvalidFileType, "invalid_file_type", intake.ErrInvalidFileType, http.StatusUnsupportedMediaType},
		{intake.KindBaseDirectoryInvalid, "base_directory_invalid", intake.ErrBaseDirectoryInvalid, http.StatusInternalServerError},
		{intake.KindPathTraversal, "path_traversal", intake.ErrPathTraversal, http.StatusBadRequest},
		{intake.KindSymlinkDetected, "symlink_detected", intake.ErrSymlinkDetected, http.StatusBadRequest},
		{intake.KindStorageFailure, "storage_failure", intake.ErrStorageFailure, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.name, tt.kind.String())
			assert.Equal(t, tt.err, tt.kind.Err())
			assert.Equal(t, tt.status, tt.kind.HTTPStatus())
		})
	}

	var unknown intake.ErrorKind
	assert.Equal(t, "unknown", unknown.String())
	assert.Equal(t, intake.ErrStorageFailure, unknown.Err())
}

func TestDetailedErrorsWrapStorageFailure(t *testing.T) {
	t.Parallel()

	for _, err := range []error{
		intake.ErrFailedToResolvePath,
		intake.ErrFailedToStatPath,
		intake.ErrFailedToCreateDirectory,
		intake.ErrFailedToCreateFile,
		intake.ErrFailedToWriteFile,
		intake.ErrUnusableName,
	} {
		assert.True(t, errors.Is(err, intake.ErrStorageFailure), err.Error())
	}

	assert.ErrorIs(t, intake.ErrNotWritable, intake.ErrBaseDirectoryInvalid)
}

func TestRejection(t *testing.T) {
	t.Parallel()

	rej := &intake.Rejection{Kind: intake.KindSymlinkDetected, Message: "symbolic link detected in upload path"}
	assert.Equal(t, "symbolic link detected in upload path", rej.Error())
	assert.ErrorIs(t, rej, intake.ErrSymlinkDetected)
	assert.NotErrorIs(t, rej, intake.ErrPathTraversal)
}
