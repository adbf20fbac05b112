package config

import "errors"

var (
	// ErrNilPointer is returned when a nil pointer is provided to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrReadingFile is returned when an env or YAML file exists but cannot be read.
	ErrReadingFile = errors.New("failed to read config file")

	// ErrParsingFile is returned when a YAML file is not valid for the target struct.
	ErrParsingFile = errors.New("failed to parse config file")

	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
)
