package intake

import "bytes"

// ContentClass is the file type derived from payload bytes.
// It never depends on the client-declared filename or content type.
type ContentClass int

const (
	ClassPNG ContentClass = iota + 1
	ClassJPEG
)

var (
	pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	jpegSOI      = []byte{0xff, 0xd8} // start of image
	jpegEOI      = []byte{0xff, 0xd9} // end of image
)

// String returns the short class name.
func (c ContentClass) String() string {
	switch c {
	case ClassPNG:
		return "png"
	case ClassJPEG:
		return "jpeg"
	default:
		return "unknown"
	}
}

// Extension returns the canonical file extension including the dot.
func (c ContentClass) Extension() string {
	switch c {
	case ClassPNG:
		return ".png"
	case ClassJPEG:
		return ".jpg"
	default:
		return ""
	}
}

// MIMEType returns the IANA media type for the class.
func (c ContentClass) MIMEType() string {
	switch c {
	case ClassPNG:
		return "image/png"
	case ClassJPEG:
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}

// Classify inspects the payload signature and returns its content class.
// PNG needs the 8-byte magic prefix. JPEG needs both the start-of-image
// marker at the front and the end-of-image marker at the back.
//
// Example:
//
//	class, err := intake.Classify(data)
//	if errors.Is(err, intake.ErrInvalidFileType) {
//	    // reject
//	}
func Classify(payload []byte) (ContentClass, error) {
	if len(payload) >= len(pngSignature) && bytes.HasPrefix(payload, pngSignature) {
		return ClassPNG, nil
	}

	if len(payload) >= len(jpegSOI) &&
		bytes.HasPrefix(payload, jpegSOI) &&
		bytes.HasSuffix(payload, jpegEOI) {
		return ClassJPEG, nil
	}

	return 0, ErrInvalidFileType
}
