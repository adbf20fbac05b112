// Package config loads typed configuration structs from .env files, an
// optional YAML file and process environment variables.
//
// Struct fields are described with caarlos0/env tags (env, envDefault,
// required) and yaml tags. Precedence, lowest first:
//
//  1. envDefault tag values
//  2. the YAML file given with WithYAMLFile
//  3. environment variables, including those loaded from .env files
//
// # Usage
//
//	type Config struct {
//		BaseDir string `env:"UPLOAD_DIR" yaml:"base_dir"`
//		MaxSize int64  `env:"UPLOAD_MAX_FILE_SIZE" envDefault:"5242880" yaml:"max_file_size"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithYAMLFile("intake.yaml")); err != nil {
//		log.Fatal(err)
//	}
//
// .env files never override variables that are already set in the process,
// matching godotenv.Load semantics.
package config
