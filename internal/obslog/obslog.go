// Package obslog provides structured logging handler construction for
// the cmd/jsontree CLI, wired to log/slog and integrated with
// spf13/pflag and spf13/cobra for flag registration and shell
// completion. The jsontree library packages (value, jsonparse, jsonser)
// never log; this package exists solely for the CLI's process-level
// observability.
package obslog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Format selects the slog handler's output encoding.
type Format string

const (
	// FormatText emits human-readable key=value lines.
	FormatText Format = "text"
	// FormatJSON emits one JSON object per log line.
	FormatJSON Format = "json"
)

var (
	// ErrUnknownLevel indicates an unrecognized log level string.
	ErrUnknownLevel = errors.New("obslog: unknown log level")
	// ErrUnknownFormat indicates an unrecognized log format string.
	ErrUnknownFormat = errors.New("obslog: unknown log format")
)

// GetLevel parses a log level string, case-insensitively.
func GetLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
}

// GetFormat parses a log format string, case-insensitively.
func GetFormat(format string) (Format, error) {
	switch Format(strings.ToLower(format)) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// NewHandler builds a slog.Handler writing to w at the given level and format.
func NewHandler(w io.Writer, level slog.Level, format Format) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// Flags holds the CLI flag names used for log configuration, letting
// callers rename them while keeping NewConfig's sensible defaults.
type Flags struct {
	Level  string
	Format string
}

// Config holds the CLI flag values for log configuration, populated by
// pflag during argument parsing.
type Config struct {
	Level  string
	Format string
	Flags  Flags
}

// NewConfig returns a Config with the default flag names "--log-level"
// and "--log-format".
func NewConfig() *Config {
	return &Config{
		Flags: Flags{Level: "log-level", Format: "log-format"},
	}
}

// RegisterFlags adds the logging flags to flags, defaulting to info/text.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.Flags.Level, "info", "log level: debug, info, warn, error")
	flags.StringVar(&c.Format, c.Flags.Format, "text", "log format: text, json")
}

// RegisterCompletions registers shell completion for the logging flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	if err := cmd.RegisterFlagCompletionFunc(c.Flags.Level,
		cobra.FixedCompletions([]string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp)); err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Level, err)
	}
	if err := cmd.RegisterFlagCompletionFunc(c.Flags.Format,
		cobra.FixedCompletions([]string{"text", "json"}, cobra.ShellCompDirectiveNoFileComp)); err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Format, err)
	}
	return nil
}

// NewHandler builds a slog.Handler from c's parsed flag values, writing to w.
func (c *Config) NewHandler(w io.Writer) (slog.Handler, error) {
	level, err := GetLevel(c.Level)
	if err != nil {
		return nil, err
	}
	format, err := GetFormat(c.Format)
	if err != nil {
		return nil, err
	}
	return NewHandler(w, level, format), nil
}
