package intake_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intake/pkg/intake"
)

func TestCheckDirectory(t *testing.T) {
	t.Parallel()
	root := tempDir(t)

	t.Run("usable directory", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, intake.CheckDirectory(root))
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		err := intake.CheckDirectory(filepath.Join(root, "missing"))
		assert.ErrorIs(t, err, intake.ErrBaseDirectoryInvalid)
	})

	t.Run("regular file", func(t *testing.T) {
		t.Parallel()
		file := filepath.Join(root, "file")
		require.NoError(t, os.WriteFile(file, nil, 0o644))

		err := intake.CheckDirectory(file)
		assert.ErrorIs(t, err, intake.ErrBaseDirectoryInvalid)
	})

	t.Run("symlinked directory", func(t *testing.T) {
		t.Parallel()
		target := filepath.Join(root, "target")
		link := filepath.Join(root, "link")
		require.NoError(t, os.Mkdir(target, 0o755))
		require.NoError(t, os.Symlink(target, link))

		err := intake.CheckDirectory(link)
		assert.ErrorIs(t, err, intake.ErrSymlinkDetected)
	})

	t.Run("read-only directory", func(t *testing.T) {
		t.Parallel()
		if os.Geteuid() == 0 {
			t.Skip("root bypasses permission checks")
		}
		dir := filepath.Join(root, "readonly")
		require.NoError(t, os.Mkdir(dir, 0o555))
		t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

		err := intake.CheckDirectory(dir)
		assert.ErrorIs(t, err, intake.ErrNotWritable)
		assert.ErrorIs(t, err, intake.ErrBaseDirectoryInvalid)
	})
}

func TestIntake_Healthcheck(t *testing.T) {
	t.Parallel()

	in := intake.New(intake.WithBaseDir(tempDir(t)))
	assert.NoError(t, in.Healthcheck(context.Background()))

	broken := intake.New(intake.WithBaseDir(filepath.Join(tempDir(t), "gone")))
	assert.ErrorIs(t, broken.Healthcheck(context.Background()), intake.ErrBaseDirectoryInvalid)
}
