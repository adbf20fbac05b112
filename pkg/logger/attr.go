package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// Filename records a client-supplied filename under the key "filename".
// The value is untrusted; handlers quote or escape it.
func Filename(name string) slog.Attr {
	return slog.String("filename", name)
}

// Size records a byte length under the key "size".
func Size(n int64) slog.Attr {
	return slog.Int64("size", n)
}

// StoredPath records where a file was written under the key "stored_path".
func StoredPath(path string) slog.Attr {
	return slog.String("stored_path", path)
}

// ContentClass records the detected file type under the key "content_class".
func ContentClass(class string) slog.Attr {
	return slog.String("content_class", class)
}

// ErrorKind records a rejection classification under the key "error_kind".
func ErrorKind(kind string) slog.Attr {
	return slog.String("error_kind", kind)
}
