package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Sentinel errors for configuration handling.
var (
	// ErrInvalidValue is returned for a malformed or out-of-range value.
	ErrInvalidValue = errors.New("config: invalid value")

	// ErrReadConfig is returned when a named config file cannot be read.
	ErrReadConfig = errors.New("config: cannot read config file")
)

// Config keys.
const (
	KeyCannibals     = "cannibals"
	KeyMissionaries  = "missionaries"
	KeyMaxIterations = "max_iterations"
	KeyFormat        = "format"
	KeyTrace         = "trace"
	KeyStepDelay     = "step_delay"
	KeyLogLevel      = "log_level"
)

// EnvPrefix prefixes environment overrides, e.g. RIVERCROSS_CANNIBALS.
const EnvPrefix = "RIVERCROSS"

// Defaults.
const (
	DefaultCannibals     = 3
	DefaultMissionaries  = 3
	DefaultMaxIterations = 30
	DefaultFormat        = FormatText
	DefaultLogLevel      = "info"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Params are the validated inputs of one run.
type Params struct {
	Cannibals     int
	Missionaries  int
	MaxIterations int
	Format        string
	Trace         bool
	StepDelay     time.Duration
	LogLevel      slog.Level
}

// DefaultParams returns the classic three-and-three puzzle with a cap of
// 30 iterations.
func DefaultParams() Params {
	return Params{
		Cannibals:     DefaultCannibals,
		Missionaries:  DefaultMissionaries,
		MaxIterations: DefaultMaxIterations,
		Format:        DefaultFormat,
		LogLevel:      slog.LevelInfo,
	}
}

// New returns a Viper instance with defaults and environment overrides.
// If file is non-empty it is read as YAML; a missing or malformed file is
// an error.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyCannibals, DefaultCannibals)
	v.SetDefault(KeyMissionaries, DefaultMissionaries)
	v.SetDefault(KeyMaxIterations, DefaultMaxIterations)
	v.SetDefault(KeyFormat, DefaultFormat)
	v.SetDefault(KeyTrace, false)
	v.SetDefault(KeyStepDelay, "0s")
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file == "" {
		return v, nil
	}
	v.SetConfigFile(file)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, file, err)
	}
	return v, nil
}

// Load reads and validates every key from v.
func Load(v *viper.Viper) (Params, error) {
	p, err := Parse(v.GetString(KeyCannibals), v.GetString(KeyMissionaries), v.GetString(KeyMaxIterations))
	if err != nil {
		return Params{}, err
	}

	p.Format = strings.ToLower(strings.TrimSpace(v.GetString(KeyFormat)))
	p.Trace, err = strconv.ParseBool(strings.TrimSpace(v.GetString(KeyTrace)))
	if err != nil {
		return Params{}, fmt.Errorf("%w: %s=%q is not a bool", ErrInvalidValue, KeyTrace, v.GetString(KeyTrace))
	}
	p.StepDelay, err = time.ParseDuration(strings.TrimSpace(v.GetString(KeyStepDelay)))
	if err != nil {
		return Params{}, fmt.Errorf("%w: %s=%q is not a duration", ErrInvalidValue, KeyStepDelay, v.GetString(KeyStepDelay))
	}
	if err := p.LogLevel.UnmarshalText([]byte(strings.TrimSpace(v.GetString(KeyLogLevel)))); err != nil {
		return Params{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, KeyLogLevel, v.GetString(KeyLogLevel))
	}

	return p, p.Validate()
}

// Parse converts the three search inputs from text. It is the entry point
// for free-form input such as text fields.
func Parse(cannibals, missionaries, maxIterations string) (Params, error) {
	p := DefaultParams()
	var err error
	if p.Cannibals, err = parseCount(KeyCannibals, cannibals); err != nil {
		return Params{}, err
	}
	if p.Missionaries, err = parseCount(KeyMissionaries, missionaries); err != nil {
		return Params{}, err
	}
	if p.MaxIterations, err = parseCount(KeyMaxIterations, maxIterations); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate checks ranges and enumerations.
func (p Params) Validate() error {
	switch {
	case p.Cannibals < 0:
		return fmt.Errorf("%w: %s must be non-negative, got %d", ErrInvalidValue, KeyCannibals, p.Cannibals)
	case p.Missionaries < 0:
		return fmt.Errorf("%w: %s must be non-negative, got %d", ErrInvalidValue, KeyMissionaries, p.Missionaries)
	case p.MaxIterations < 0:
		return fmt.Errorf("%w: %s must be non-negative, got %d", ErrInvalidValue, KeyMaxIterations, p.MaxIterations)
	case p.StepDelay < 0:
		return fmt.Errorf("%w: %s must be non-negative, got %s", ErrInvalidValue, KeyStepDelay, p.StepDelay)
	}
	if p.Format != FormatText && p.Format != FormatJSON {
		return fmt.Errorf("%w: %s must be %q or %q, got %q", ErrInvalidValue, KeyFormat, FormatText, FormatJSON, p.Format)
	}
	return nil
}

func parseCount(key, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a number", ErrInvalidValue, key, raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s must be non-negative, got %d", ErrInvalidValue, key, n)
	}
	return n, nil
}
