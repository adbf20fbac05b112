package intake

import (
	"io/fs"
	"log/slog"
)

// Option configures an Intake.
type Option func(*Intake)

// WithBaseDir sets the directory used when a Request leaves BaseDir empty.
func WithBaseDir(dir string) Option {
	return func(in *Intake) {
		in.baseDir = dir
	}
}

// WithMaxFileSize sets the payload size limit in bytes.
// Non-positive values are ignored.
func WithMaxFileSize(n int64) Option {
	return func(in *Intake) {
		if n > 0 {
			in.maxFileSize = n
		}
	}
}

// WithPrefix stores files under a trusted sub-directory of the base directory,
// e.g. WithPrefix("avatars") results in "{base}/avatars/{uuid}.png".
// Missing directories are created on write.
func WithPrefix(prefix string) Option {
	return func(in *Intake) {
		in.prefix = prefix
	}
}

// WithNameGenerator replaces the random UUID-based naming.
// Nil is ignored.
func WithNameGenerator(gen NameGenerator) Option {
	return func(in *Intake) {
		if gen != nil {
			in.newName = gen
		}
	}
}

// WithPermissions sets directory and file permissions for new entries.
// Zero values keep the defaults.
func WithPermissions(dirPerm, filePerm fs.FileMode) Option {
	return func(in *Intake) {
		if dirPerm != 0 {
			in.dirPerm = dirPerm
		}
		if filePerm != 0 {
			in.filePerm = filePerm
		}
	}
}

// WithConcurrency bounds how many uploads StoreAll runs at once.
// Non-positive values are ignored.
func WithConcurrency(n int) Option {
	return func(in *Intake) {
		if n > 0 {
			in.concurrency = n
		}
	}
}

// WithLogger sets the logger for pipeline decisions.
// Nil is ignored; the default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(in *Intake) {
		if l != nil {
			in.log = l
		}
	}
}
