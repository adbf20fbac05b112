package intake

import (
	"fmt"
	"io/fs"
	"strconv"
)

// Config holds intake settings loadable from the environment or a YAML file.
type Config struct {
	BaseDir     string `env:"UPLOAD_DIR" yaml:"base_dir"`                                      // BaseDir is where uploads are stored; empty means the OS temp dir.
	Prefix      string `env:"UPLOAD_PREFIX" yaml:"prefix"`                                     // Prefix is an optional sub-directory under BaseDir.
	MaxFileSize int64  `env:"UPLOAD_MAX_FILE_SIZE" envDefault:"5242880" yaml:"max_file_size"` // MaxFileSize is the payload limit in bytes.
	DirPerm     Perm   `env:"UPLOAD_DIR_PERM" envDefault:"0755" yaml:"dir_perm"`              // DirPerm applies to created directories.
	FilePerm    Perm   `env:"UPLOAD_FILE_PERM" envDefault:"0644" yaml:"file_perm"`            // FilePerm applies to stored files.
	Concurrency int    `env:"UPLOAD_CONCURRENCY" envDefault:"4" yaml:"concurrency"`           // Concurrency bounds StoreAll.
}

// Perm is a permission mode written in octal, e.g. "0755".
type Perm fs.FileMode

// UnmarshalText parses an octal permission string.
func (p *Perm) UnmarshalText(text []byte) error {
	v, err := strconv.ParseUint(string(text), 8, 32)
	if err != nil {
		return fmt.Errorf("%w: permission %q: %v", ErrInvalidConfig, text, err)
	}
	if v > 0o777 {
		return fmt.Errorf("%w: permission %q out of range", ErrInvalidConfig, text)
	}
	*p = Perm(v)
	return nil
}

// MarshalText renders the permission in octal.
func (p Perm) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%#o", uint32(p))), nil
}

// FileMode converts the permission to fs.FileMode.
func (p Perm) FileMode() fs.FileMode {
	return fs.FileMode(p)
}

// NewFromConfig creates an Intake from the provided Config.
// Only non-zero values from the config are applied.
func NewFromConfig(cfg Config, opts ...Option) *Intake {
	configOpts := make([]Option, 0, 5)

	if cfg.BaseDir != "" {
		configOpts = append(configOpts, WithBaseDir(cfg.BaseDir))
	}
	if cfg.Prefix != "" {
		configOpts = append(configOpts, WithPrefix(cfg.Prefix))
	}
	if cfg.MaxFileSize > 0 {
		configOpts = append(configOpts, WithMaxFileSize(cfg.MaxFileSize))
	}
	if cfg.DirPerm != 0 || cfg.FilePerm != 0 {
		configOpts = append(configOpts, WithPermissions(cfg.DirPerm.FileMode(), cfg.FilePerm.FileMode()))
	}
	if cfg.Concurrency > 0 {
		configOpts = append(configOpts, WithConcurrency(cfg.Concurrency))
	}

	// Append any additional options provided
	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
