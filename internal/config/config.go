// Package config loads command line defaults from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/ukaji3/gradebook-go/pkg/gradebook"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/parser"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/report"
)

// Environment variable names.
const (
	EnvMode           = "GRADEBOOK_MODE"
	EnvHeaderScanRows = "GRADEBOOK_HEADER_SCAN_ROWS"
	EnvInstitution    = "GRADEBOOK_INSTITUTION"
	EnvLogLevel       = "GRADEBOOK_LOG_LEVEL"
)

// Config holds settings shared by every command.
type Config struct {
	Mode           string `validate:"oneof=strict-pattern keyword-exclusion"`
	HeaderScanRows int    `validate:"min=1,max=100"`
	Institution    string `validate:"required,max=200"`
	LogLevel       string `validate:"oneof=debug info warn error"`
}

var validate = validator.New()

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Mode:           string(gradebook.ModeStrictPattern),
		HeaderScanRows: parser.DefaultHeaderScanRows,
		Institution:    report.DefaultInstitution,
		LogLevel:       "info",
	}
}

// Load reads the given .env files (".env" when none are named) into the process
// environment without overriding variables already set, then builds and validates
// a Config. Missing .env files are ignored.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the environment over the defaults. Empty variables are ignored.
func FromEnv() (Config, error) {
	cfg := Default()
	if v := env(EnvMode); v != "" {
		cfg.Mode = v
	}
	if v := env(EnvHeaderScanRows); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvHeaderScanRows, err)
		}
		cfg.HeaderScanRows = n
	}
	if v := env(EnvInstitution); v != "" {
		cfg.Institution = v
	}
	if v := env(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Options converts the configuration into load options.
func (c Config) Options() gradebook.Options {
	opts := gradebook.DefaultOptions()
	opts.Mode = gradebook.Mode(c.Mode)
	opts.HeaderScanRows = c.HeaderScanRows
	return opts
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
