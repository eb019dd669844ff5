// SPDX-License-Identifier: MIT

// Package cli parses vecxify's command line and environment into a Config.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Commands understood by the binary.
const (
	CommandSelfCheck = "selfcheck"
	CommandEval      = "eval"
	CommandCalc      = "calc"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Config holds the resolved settings of one invocation. The tagged fields
// are read from the environment first; flags override them.
type Config struct {
	LogLevel  string `env:"VECXIFY_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"VECXIFY_LOG_FORMAT" envDefault:"text"`
	Seed      int64  `env:"VECXIFY_SEED" envDefault:"1"`

	Command string
	Args    []string
}

// ParseEnv fills the tagged fields of cfg from environ. A nil environ
// reads the process environment.
func ParseEnv(cfg *Config, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Parse processes command-line arguments layered over environ. It returns a
// populated Config, a boolean indicating if the program should exit cleanly,
// or an ExitError.
func Parse(args []string, output io.Writer, environ map[string]string) (*Config, bool, error) {
	var cfg Config
	if err := ParseEnv(&cfg, environ); err != nil {
		return nil, false, usageError("%v", err)
	}

	flagSet := flag.NewFlagSet("vecxify", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
vecxify - big integers, dense matrices and vectors from the command line.

Usage:
  vecxify [options] selfcheck
  vecxify [options] eval FILE.hcl
  vecxify [options] calc A OP B      (OP: add, sub, mul, mod, cmp)

Environment:
  VECXIFY_LOG_LEVEL, VECXIFY_LOG_FORMAT, VECXIFY_SEED set the option defaults.

Options:
`)
		flagSet.PrintDefaults()
	}

	flagSet.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flagSet.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log output format. Options: 'text' or 'json'.")
	flagSet.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for the randomized self-check.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, usageError("%v", err)
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if _, ok := levels[cfg.LogLevel]; !ok {
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	cfg.Command, cfg.Args = flagSet.Arg(0), flagSet.Args()[1:]
	switch cfg.Command {
	case CommandSelfCheck:
		if len(cfg.Args) != 0 {
			return nil, false, usageError("selfcheck takes no arguments")
		}
	case CommandEval:
		if len(cfg.Args) != 1 {
			return nil, false, usageError("eval expects exactly one FILE argument")
		}
	case CommandCalc:
		if len(cfg.Args) != 3 {
			return nil, false, usageError("calc expects A OP B")
		}
	default:
		return nil, false, usageError("unknown command %q", cfg.Command)
	}

	return &cfg, false, nil
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// NewLogger creates a slog.Logger for cfg writing to outW. It does not set
// the global logger.
func NewLogger(cfg *Config, outW io.Writer) *slog.Logger {
	level, ok := levels[cfg.LogLevel]
	if !ok {
		level = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
