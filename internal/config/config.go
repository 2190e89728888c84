// Package config loads runtime settings from an optional .env file, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "BIGMONKEY_"

const (
	DefaultTPS    = 100
	DefaultLogDir = "logs"
	maxTPS        = 1000
)

type Config struct {
	TPS    int   // engine ticks per second
	Seed   int64 // 0 means seed from the clock
	Mute   bool
	Debug  bool
	LogDir string
}

// TickInterval is the time between two engine ticks.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// GetEnv returns the value of BIGMONKEY_<key>, or fallback if it is unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(envPrefix + key); ok {
		return value
	}
	return fallback
}

// Load reads .env from the working directory if there is one, then the
// environment, then args. name is the program name used in flag errors.
func Load(name string, args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return parse(name, args, os.Stderr)
}

func parse(name string, args []string, usage io.Writer) (Config, error) {
	base, err := fromEnv()
	if err != nil {
		return Config{}, err
	}

	set := flag.NewFlagSet(name, flag.ContinueOnError)
	set.SetOutput(usage)

	cfg := Config{}
	set.IntVar(&cfg.TPS, "tps", base.TPS, "engine ticks per second")
	set.Int64Var(&cfg.Seed, "seed", base.Seed, "random seed for item placement (0 = clock)")
	set.BoolVar(&cfg.Mute, "mute", base.Mute, "disable sound")
	set.BoolVar(&cfg.Debug, "debug", base.Debug, "debug logging")
	set.StringVar(&cfg.LogDir, "logdir", base.LogDir, "directory for log files")

	if err := set.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func fromEnv() (Config, error) {
	cfg := Config{
		TPS:    DefaultTPS,
		LogDir: GetEnv("LOG_DIR", DefaultLogDir),
	}

	var err error
	if v := GetEnv("TPS", ""); v != "" {
		if cfg.TPS, err = strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("%sTPS: %w", envPrefix, err)
		}
	}
	if v := GetEnv("SEED", ""); v != "" {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("%sSEED: %w", envPrefix, err)
		}
	}
	if v := GetEnv("MUTE", ""); v != "" {
		if cfg.Mute, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("%sMUTE: %w", envPrefix, err)
		}
	}
	if v := GetEnv("DEBUG", ""); v != "" {
		if cfg.Debug, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("%sDEBUG: %w", envPrefix, err)
		}
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.TPS < 1 || c.TPS > maxTPS {
		return fmt.Errorf("tps must be between 1 and %d, got %d", maxTPS, c.TPS)
	}
	if c.LogDir == "" {
		return errors.New("logdir must not be empty")
	}
	return nil
}
