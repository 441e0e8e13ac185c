package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lorenzotomasdiez/prisoners-tourney/internal/strategy"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

const defaultRounds = 100

type Config struct {
	Rounds     int
	Seed       int64
	Verbose    bool
	LogLevel   string
	Counts     strategy.Counts
	OnePerKind bool
}

// Load reads the configuration from the environment. Strategy counts come
// from TOURNEY_<FLAG>, e.g. TOURNEY_TITFORTAT=3.
func Load() (*Config, error) {
	rounds, err := envInt("TOURNEY_ROUNDS", defaultRounds)
	if err != nil {
		return nil, err
	}

	seed, err := envInt64("TOURNEY_SEED", 0)
	if err != nil {
		return nil, err
	}

	verbose, err := envBool("TOURNEY_VERBOSE", false)
	if err != nil {
		return nil, err
	}

	onePerKind, err := envBool("TOURNEY_ONEPLAYER", false)
	if err != nil {
		return nil, err
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "warn"
	}

	counts := strategy.Counts{}
	for _, k := range strategy.Kinds() {
		n, err := envInt(CountEnvVar(k), 0)
		if err != nil {
			return nil, err
		}
		counts[k] = n
	}

	cfg := &Config{
		Rounds:     rounds,
		Seed:       seed,
		Verbose:    verbose,
		LogLevel:   logLevel,
		Counts:     counts,
		OnePerKind: onePerKind,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects negative round or strategy counts.
func (c *Config) Validate() error {
	if c.Rounds < 0 {
		return fmt.Errorf("config: %w: Rounds must be >= 0, got %d", ErrInvalidConfig, c.Rounds)
	}
	for _, k := range strategy.Kinds() {
		if n := c.Counts[k]; n < 0 {
			return fmt.Errorf("config: %w: %s count must be >= 0, got %d", ErrInvalidConfig, k.Flag(), n)
		}
	}
	return nil
}

// Players returns the total number of participants the config asks for.
func (c *Config) Players() int {
	total := 0
	for _, n := range c.Counts {
		total += n
	}
	if c.OnePerKind {
		total += len(strategy.Kinds())
	}
	return total
}

// CountEnvVar names the environment variable holding the count for k.
func CountEnvVar(k strategy.Kind) string {
	return "TOURNEY_" + strings.ToUpper(k.Flag())
}

// LoadDotEnv loads variables from a .env file without overriding ones
// already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: loading .env: %w", err)
	}
	return nil
}

func envInt(key string, defaultVal int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("config: %w: invalid %s value %q: %w", ErrInvalidConfig, key, s, err)
	}
	return v, nil
}

func envInt64(key string, defaultVal int64) (int64, error) {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %w: invalid %s value %q: %w", ErrInvalidConfig, key, s, err)
	}
	return v, nil
}

func envBool(key string, defaultVal bool) (bool, error) {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("config: %w: invalid %s value %q: %w", ErrInvalidConfig, key, s, err)
	}
	return v, nil
}
