// Package intake stores untrusted image uploads on a shared filesystem.
//
// The package accepts a client-supplied byte payload and an attacker-controlled
// filename and decides whether and where to persist it. It guarantees that a
// stored file never exceeds the size budget, is a real PNG or JPEG, lives
// strictly inside the configured base directory, is never reached through a
// symbolic link, and never overwrites another upload.
//
// # Pipeline
//
// Intake.Store runs a fixed, linear sequence of checks. The first failing
// step produces the rejection; nothing is written before all checks pass:
//
//  1. Size: payload length against the configured maximum (default 5 MiB)
//  2. Filename: IsDangerousFilename rejects "..", "~", "//", "\", "%2e%2e"
//     and their Unicode look-alikes
//  3. Signature: Classify derives the ContentClass from magic bytes only
//  4. Base directory: ResolveBaseDir requires an existing directory
//  5. Path build: base + optional prefix + random UUID + class extension
//  6. Containment: IsContained compares canonical paths segment by segment
//  7. Symlinks: CheckSymlinks walks every ancestor and the target itself
//  8. Write: Writer creates missing directories and the file exclusively
//
// The original filename is used for logging only. It never becomes part of
// the stored path.
//
// # Usage
//
//	import "github.com/dmitrymomot/intake/pkg/intake"
//
//	in := intake.New(
//		intake.WithBaseDir("/srv/uploads"),
//		intake.WithPrefix("avatars"),
//		intake.WithLogger(log),
//	)
//
//	out := in.Store(ctx, intake.Request{
//		Filename: fh.Filename,
//		Payload:  data,
//	})
//	if rej, ok := out.Rejected(); ok {
//		http.Error(w, rej.Message, rej.Kind.HTTPStatus())
//		return
//	}
//	file, _ := out.Stored()
//	// file.Path, file.Size, file.Class, file.Checksum
//
// Loading settings from the environment:
//
//	var cfg intake.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	in := intake.NewFromConfig(cfg, intake.WithLogger(log))
//
// # Error Handling
//
// Outcome carries either a StoredFile or a Rejection. A Rejection has a
// stable ErrorKind and a client-safe message, and unwraps to the sentinel
// error of its kind:
//
//	if errors.Is(out.Err(), intake.ErrFileTooLarge) {
//		// 413
//	}
//
// Detailed causes (server paths, OS errors) are logged, never returned.
// Unexpected failures, including panics, become KindStorageFailure.
//
// # Concurrency
//
// An Intake is immutable after New and safe for concurrent use. Collisions
// are avoided by the random file name alone; no locks are taken. StoreAll
// runs a batch of independent uploads with bounded parallelism.
package intake
