package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/legacykeys/winkey/pkg/winkey"
)

// config is read from the environment; flags stay out of the way so keys can
// be passed as plain arguments.
type config struct {
	Output   string `env:"WINKEY_OUTPUT" envDefault:"text"`
	LogLevel string `env:"WINKEY_LOG_LEVEL" envDefault:"info"`
}

// verdict is the per-key result in both output modes.
type verdict struct {
	Key     string `json:"key"`
	Valid   bool   `json:"valid"`
	Release string `json:"release,omitempty"`
	Error   string `json:"error,omitempty"`
}

func main() {
	// The .env file is optional.
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "winkey: invalid environment: %v\n", err)
		os.Exit(2)
	}
	if cfg.Output != "text" && cfg.Output != "json" {
		fmt.Fprintf(os.Stderr, "winkey: WINKEY_OUTPUT must be \"text\" or \"json\", got %q\n", cfg.Output)
		os.Exit(2)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))

	allValid, err := run(cfg, os.Args[1:], os.Stdin, os.Stdout, log)
	if err != nil {
		log.Error("validation run failed", "error", err)
		os.Exit(2)
	}
	if !allValid {
		os.Exit(1)
	}
}

// run validates every key and writes one verdict per key to out. Keys come
// from args, or one per line from in when no args are given. It reports
// whether every key validated.
func run(cfg config, args []string, in io.Reader, out io.Writer, log *slog.Logger) (bool, error) {
	keys := args
	if len(keys) == 0 {
		log.Debug("no arguments, reading keys from stdin")
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			keys = append(keys, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return false, fmt.Errorf("reading keys: %w", err)
		}
	}

	enc := json.NewEncoder(out)
	allValid := true
	for _, k := range keys {
		key, err := winkey.Validate(k)
		v := verdict{Key: k, Valid: err == nil}
		if err != nil {
			allValid = false
			v.Error = err.Error()
			log.Debug("key rejected", "key", k, "reason", err)
		} else {
			v.Release = key.Release.String()
			log.Debug("key validated", "key", k, "release", key.Release)
		}

		if cfg.Output == "json" {
			if err := enc.Encode(v); err != nil {
				return false, fmt.Errorf("writing verdict: %w", err)
			}
			continue
		}
		if v.Valid {
			fmt.Fprintf(out, "%s\tvalid (%s)\n", v.Key, v.Release)
		} else {
			fmt.Fprintf(out, "%s\tinvalid: %s\n", v.Key, v.Error)
		}
	}
	return allValid, nil
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
