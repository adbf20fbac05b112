package intake

// Request is a single upload handed over by the transport layer.
// BaseDir is trusted operator configuration; Filename and Payload are not.
type Request struct {
	BaseDir  string // Empty means the Intake's configured directory
	Filename string // Used for logging only, never for the stored path
	Payload  []byte
}

// StoredFile describes a payload that was persisted.
type StoredFile struct {
	Path     string // Absolute path inside the canonical base directory
	Size     int64
	Class    ContentClass
	Checksum string // Hex BLAKE2b-256 of the payload
}

// Rejection explains why an upload was not stored.
// Message is safe to show to clients; it never contains server paths.
type Rejection struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (r *Rejection) Error() string {
	return r.Message
}

// Unwrap exposes the sentinel error of the rejection kind,
// so errors.Is(rejection, intake.ErrFileTooLarge) works.
func (r *Rejection) Unwrap() error {
	return r.Kind.Err()
}

// Outcome is the result of exactly one upload: either stored or rejected.
type Outcome struct {
	stored   *StoredFile
	rejected *Rejection
}

// Stored returns the stored file and true when the upload succeeded.
func (o Outcome) Stored() (*StoredFile, bool) {
	return o.stored, o.stored != nil
}

// Rejected returns the rejection and true when the upload failed.
func (o Outcome) Rejected() (*Rejection, bool) {
	return o.rejected, o.rejected != nil
}

// OK reports whether the upload was stored.
func (o Outcome) OK() bool {
	return o.stored != nil
}

// Err returns the rejection as an error, or nil when the upload was stored.
func (o Outcome) Err() error {
	if o.rejected == nil {
		return nil
	}
	return o.rejected
}

func storedOutcome(f *StoredFile) Outcome {
	return Outcome{stored: f}
}

func rejectedOutcome(kind ErrorKind) Outcome {
	return Outcome{rejected: &Rejection{Kind: kind, Message: publicMessage(kind)}}
}

// publicMessage returns the client-facing text for a kind.
// Detailed causes go to the log, not here.
func publicMessage(kind ErrorKind) string {
	switch kind {
	case KindTooLarge:
		return ErrFileTooLarge.Error()
	case KindDangerousFilename:
		return ErrDangerousFilename.Error()
	case KindInvalidFileType:
		return "file type not allowed, only PNG and JPEG are supported"
	case KindBaseDirectoryInvalid:
		return ErrBaseDirectoryInvalid.Error()
	case KindPathTraversal:
		return ErrPathTraversal.Error()
	case KindSymlinkDetected:
		return ErrSymlinkDetected.Error()
	default:
		return ErrStorageFailure.Error()
	}
}
