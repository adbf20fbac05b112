package intake

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Default permissions for created directories and stored files.
const (
	DefaultDirPerm  fs.FileMode = 0o755
	DefaultFilePerm fs.FileMode = 0o644
)

// NameGenerator returns a fresh on-disk filename for a content class.
// It must never derive the name from client input.
type NameGenerator func(class ContentClass) string

// UUIDName is the default NameGenerator: a random (v4) UUID followed by the
// class extension, e.g. "5f1d7c1e-9a0b-4c55-8d1e-2b6f4a9e3c10.png".
func UUIDName(class ContentClass) string {
	return uuid.NewString() + class.Extension()
}

// Writer persists validated payloads. It holds no state besides permissions
// and is safe for concurrent use.
type Writer struct {
	dirPerm  fs.FileMode
	filePerm fs.FileMode
}

// NewWriter creates a Writer. Zero permissions fall back to the defaults.
func NewWriter(dirPerm, filePerm fs.FileMode) *Writer {
	if dirPerm == 0 {
		dirPerm = DefaultDirPerm
	}
	if filePerm == 0 {
		filePerm = DefaultFilePerm
	}
	return &Writer{dirPerm: dirPerm, filePerm: filePerm}
}

// Write creates any missing parent directories and writes payload to path in
// a single call. The file is created exclusively: an existing file or link at
// path is never overwritten or followed. A partial file is removed on failure.
func (w *Writer) Write(path string, payload []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), w.dirPerm); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, w.filePerm)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToCreateFile, err)
	}

	if _, err := f.Write(payload); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}

	return nil
}

// validName rejects generated names that would add path segments.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && !strings.Contains(name, "\x00")
}
