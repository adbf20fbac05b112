package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// noDefaults names a struct tag nothing uses, so a parse pass with it
// applies set variables only and leaves YAML values alone.
const noDefaults = "envNoDefault"

// Option configures Load.
type Option func(*options)

type options struct {
	envFiles []string
	yamlFile string
	prefix   string
}

// WithEnvFiles loads the given .env files before reading the environment.
// Missing files are skipped; variables already set in the process win.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.envFiles = append(o.envFiles, paths...)
	}
}

// WithYAMLFile reads values from a YAML file. Values from the file override
// envDefault tags; variables set in the environment override the file.
// An empty path is ignored.
func WithYAMLFile(path string) Option {
	return func(o *options) {
		o.yamlFile = path
	}
}

// WithPrefix prepends prefix to every env tag, e.g. "APP_" turns
// UPLOAD_DIR into APP_UPLOAD_DIR.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// Load fills v from, in increasing precedence: envDefault tags, the YAML
// file, and environment variables (including those from .env files).
// Without options it loads ".env" from the working directory if present.
//
// Example:
//
//	var cfg intake.Config
//	if err := config.Load(&cfg, config.WithYAMLFile(path)); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if len(o.envFiles) == 0 {
		o.envFiles = []string{".env"}
	}

	if err := loadEnvFiles(o.envFiles); err != nil {
		return err
	}

	// Defaults and environment
	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	if o.yamlFile == "" {
		return nil
	}

	data, err := os.ReadFile(o.yamlFile)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadingFile, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrParsingFile, err)
	}

	// Re-apply explicitly set variables over the file
	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix, DefaultValueTagName: noDefaults}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func loadEnvFiles(paths []string) error {
	existing := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("%w: %v", ErrReadingFile, err)
		}
		existing = append(existing, p)
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("%w: %v", ErrReadingFile, err)
	}
	return nil
}
