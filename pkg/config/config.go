package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const maxDifficulty = 64

// Config is filled from defaults, then an optional YAML file named by
// CONFIG_FILE, then individual environment variables.
type Config struct {
	ListenAddr    string        `yaml:"listen_addr"`
	ServerAddr    string        `yaml:"server_addr"`
	PoWDifficulty int           `yaml:"pow_difficulty"`
	// QuotesFile empty means the built-in corpus.
	QuotesFile    string        `yaml:"quotes_file"`
	LogLevel      string        `yaml:"log_level"`
	ShutdownWait  time.Duration `yaml:"shutdown_wait"`
	MetricsAddr   string        `yaml:"metrics_addr"`
	MaxConns      int           `yaml:"max_conns"`
	ConnTimeout   time.Duration `yaml:"conn_timeout"`
	SolveTimeout  time.Duration `yaml:"solve_timeout"`
}

func Default() Config {
	return Config{
		ListenAddr:    ":4444",
		ServerAddr:    "127.0.0.1:4444",
		PoWDifficulty: 4,
		LogLevel:      "info",
		ShutdownWait:  5 * time.Second,
	}
}

func Parse() (Config, error) {
	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	str := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v := os.Getenv(key)
		if v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
		return nil
	}
	dur := func(key string, dst *time.Duration) error {
		v := os.Getenv(key)
		if v == "" {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = d
		return nil
	}

	str("LISTEN_ADDR", &c.ListenAddr)
	str("SERVER_ADDR", &c.ServerAddr)
	str("QUOTES_FILE", &c.QuotesFile)
	str("LOG_LEVEL", &c.LogLevel)
	str("METRICS_ADDR", &c.MetricsAddr)
	return errors.Join(
		num("POW_DIFFICULTY", &c.PoWDifficulty),
		num("MAX_CONNS", &c.MaxConns),
		dur("SHUTDOWN_WAIT", &c.ShutdownWait),
		dur("CONN_TIMEOUT", &c.ConnTimeout),
		dur("SOLVE_TIMEOUT", &c.SolveTimeout),
	)
}

func (c Config) Validate() error {
	var errs []error
	if c.PoWDifficulty < 0 || c.PoWDifficulty > maxDifficulty {
		errs = append(errs, fmt.Errorf("pow difficulty %d outside [0,%d]", c.PoWDifficulty, maxDifficulty))
	}
	if c.MaxConns < 0 {
		errs = append(errs, fmt.Errorf("max conns %d is negative", c.MaxConns))
	}
	if c.ShutdownWait < 0 || c.ConnTimeout < 0 || c.SolveTimeout < 0 {
		errs = append(errs, errors.New("durations must not be negative"))
	}
	return errors.Join(errs...)
}

// Difficulty is PoWDifficulty narrowed for the wire; call after Validate.
func (c Config) Difficulty() uint8 { return uint8(c.PoWDifficulty) }
