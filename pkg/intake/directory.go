package intake

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dmitrymomot/intake/pkg/logger"
)

// CheckDirectory verifies that dir can receive uploads: it resolves to an
// existing directory, no component of the given path is a symbolic link,
// and the process may create files in it.
//
// Example:
//
//	if err := intake.CheckDirectory("/srv/uploads"); err != nil {
//	    log.Fatal(err)
//	}
func CheckDirectory(dir string) error {
	resolved, err := ResolveBaseDir(dir)
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBaseDirectoryInvalid, err)
	}
	if err := CheckSymlinks(abs); err != nil {
		return err
	}

	return checkWritable(resolved)
}

// Healthcheck runs CheckDirectory against the configured base directory.
// Its signature fits health probes that take a context.
func (in *Intake) Healthcheck(ctx context.Context) error {
	if err := CheckDirectory(in.baseDir); err != nil {
		in.log.ErrorContext(ctx, "upload directory check failed", logger.Error(err))
		return err
	}
	return nil
}
