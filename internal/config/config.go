// Package config resolves startup settings from the environment. Command
// line flags are applied on top by the cmd package, then Validate runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

const (
	defaultInterval = 10 * time.Second
	defaultLogLevel = "info"
)

// Environment variables read by LoadFromEnv.
const (
	EnvDB        = "CORDIALE_DB"
	EnvCatalog   = "CORDIALE_CATALOG"
	EnvInterval  = "CORDIALE_INTERVAL"
	EnvLogLevel  = "CORDIALE_LOG_LEVEL"
	EnvLogFile   = "CORDIALE_LOG_FILE"
	EnvEphemeral = "CORDIALE_EPHEMERAL"
)

// Config captures startup settings for the application.
type Config struct {
	// DBPath is the SQLite preference database. Empty means the default
	// per-user location.
	DBPath string
	// CatalogPath is an optional YAML offer catalog replacing the bundled one.
	CatalogPath string `validate:"omitempty,file"`
	// Interval is how long each offer stays before auto-advance.
	Interval time.Duration `validate:"gte=1s,lte=1h"`
	// LogLevel is a zerolog level name.
	LogLevel string `validate:"required,loglevel"`
	// LogFile receives log lines. Empty means the default location.
	LogFile string
	// Ephemeral keeps preferences in memory only.
	Ephemeral bool
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Interval: defaultInterval,
		LogLevel: defaultLogLevel,
	}
}

// LoadFromEnv loads configuration from environment variables over Default.
func LoadFromEnv() (Config, error) {
	cfg := Default()

	cfg.DBPath = strings.TrimSpace(os.Getenv(EnvDB))
	cfg.CatalogPath = strings.TrimSpace(os.Getenv(EnvCatalog))
	cfg.LogFile = strings.TrimSpace(os.Getenv(EnvLogFile))

	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	interval, err := readDuration(EnvInterval, cfg.Interval)
	if err != nil {
		return Config{}, err
	}
	cfg.Interval = interval

	ephemeral, err := readBool(EnvEphemeral, false)
	if err != nil {
		return Config{}, err
	}
	cfg.Ephemeral = ephemeral

	return cfg, nil
}

// Validate checks the configuration and reports every failing field.
func (c Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Value: fmt.Sprint(fe.Value())})
	}
	return out
}

// FieldError is one failed rule.
type FieldError struct {
	Field string
	Rule  string
	Value string
}

// ValidationError lists every invalid field of a Config.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s=%q fails %s", f.Field, f.Value, f.Rule))
	}
	return "invalid configuration: " + strings.Join(parts, "; ")
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator with the config rules registered.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
			level := fl.Field().String()
			if level == "" {
				return false
			}
			_, err := zerolog.ParseLevel(level)
			return err == nil
		})
		validateInst = v
	})
	return validateInst
}

func readDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid duration: %w", key, err)
	}
	return parsed, nil
}

func readBool(key string, fallback bool) (bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}

	parsed, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return parsed, nil
}
