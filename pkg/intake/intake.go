package intake

import (
	"context"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"

	"github.com/dmitrymomot/intake/pkg/logger"
)

// Defaults applied by New.
const (
	DefaultMaxFileSize int64 = 5_242_880 // 5 MiB
	DefaultConcurrency       = 4
)

// Intake decides whether and where to persist untrusted uploads.
// It is immutable after New and safe for concurrent use; concurrent uploads
// never share state besides the filesystem.
type Intake struct {
	baseDir     string
	prefix      string
	maxFileSize int64
	dirPerm     fs.FileMode
	filePerm    fs.FileMode
	concurrency int
	newName     NameGenerator
	writer      *Writer
	log         *slog.Logger
}

// New creates an Intake. Without options it stores PNG and JPEG payloads of
// up to 5 MiB into the OS temp directory under random UUID names.
func New(opts ...Option) *Intake {
	in := &Intake{
		baseDir:     os.TempDir(),
		maxFileSize: DefaultMaxFileSize,
		dirPerm:     DefaultDirPerm,
		filePerm:    DefaultFilePerm,
		concurrency: DefaultConcurrency,
		newName:     UUIDName,
		log:         slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(in)
	}

	in.writer = NewWriter(in.dirPerm, in.filePerm)
	in.log = in.log.With(logger.Component("intake"))

	return in
}

// MaxFileSize returns the configured payload limit in bytes.
func (in *Intake) MaxFileSize() int64 {
	return in.maxFileSize
}

// BaseDir returns the directory used for requests without their own BaseDir.
func (in *Intake) BaseDir() string {
	return in.baseDir
}

// Store runs the upload pipeline for a single request:
//
//	size → filename → signature → base directory → path build →
//	containment → symlinks → write
//
// The first failing step decides the rejection; nothing touches the disk
// before every check has passed. Store never panics and never returns a
// third state: the outcome is either stored or rejected.
func (in *Intake) Store(ctx context.Context, req Request) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			in.log.ErrorContext(ctx, "upload aborted by panic",
				slog.Any("panic", r),
				logger.Filename(req.Filename),
			)
			out = in.reject(KindStorageFailure)
		}
	}()

	file, err := in.store(req)
	if err != nil {
		kind := kindOf(err)
		level := slog.LevelWarn
		if kind == KindStorageFailure || kind == KindBaseDirectoryInvalid {
			level = slog.LevelError
		}
		in.log.Log(ctx, level, "upload rejected",
			logger.ErrorKind(kind.String()),
			logger.Filename(req.Filename),
			logger.Size(int64(len(req.Payload))),
			logger.Error(err),
		)
		return in.reject(kind)
	}

	in.log.InfoContext(ctx, "upload stored",
		logger.Filename(req.Filename),
		logger.StoredPath(file.Path),
		logger.Size(file.Size),
		logger.ContentClass(file.Class.String()),
	)
	return storedOutcome(file)
}

func (in *Intake) store(req Request) (*StoredFile, error) {
	// Size first: cheapest check, no parsing of oversized payloads
	size := int64(len(req.Payload))
	if size > in.maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d bytes limit", ErrFileTooLarge, size, in.maxFileSize)
	}

	if IsDangerousFilename(req.Filename) {
		return nil, ErrDangerousFilename
	}

	class, err := Classify(req.Payload)
	if err != nil {
		return nil, err
	}

	baseDir := req.BaseDir
	if baseDir == "" {
		baseDir = in.baseDir
	}

	canonicalBase, err := ResolveBaseDir(baseDir)
	if err != nil {
		return nil, err
	}

	target, err := in.buildPath(baseDir, class)
	if err != nil {
		return nil, err
	}

	// Both guards run on the final path, after the random name is chosen
	if !IsContained(canonicalBase, target) {
		return nil, fmt.Errorf("%w: %s", ErrPathTraversal, target)
	}
	if err := CheckSymlinks(target); err != nil {
		return nil, err
	}

	if err := in.writer.Write(target, req.Payload); err != nil {
		return nil, err
	}

	sum := blake2b.Sum256(req.Payload)

	return &StoredFile{
		Path:     target,
		Size:     size,
		Class:    class,
		Checksum: hex.EncodeToString(sum[:]),
	}, nil
}

// buildPath joins the configured (not canonical) base directory, the prefix
// and a fresh name. Keeping the configured form lets CheckSymlinks see a base
// directory that is itself a link.
func (in *Intake) buildPath(baseDir string, class ContentClass) (string, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToResolvePath, err)
	}

	name := in.newName(class)
	if !validName(name) {
		return "", ErrUnusableName
	}

	return filepath.Join(abs, filepath.FromSlash(in.prefix), name), nil
}

func (in *Intake) reject(kind ErrorKind) Outcome {
	if kind == KindTooLarge {
		return Outcome{rejected: &Rejection{
			Kind:    kind,
			Message: fmt.Sprintf("file exceeds maximum size of %d bytes", in.maxFileSize),
		}}
	}
	return rejectedOutcome(kind)
}
