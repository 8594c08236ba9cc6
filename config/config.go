package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	yaml "gopkg.in/yaml.v3"
)

const (
	FormatEpub = "epub"
	FormatText = "text"
)

type HTTP struct {
	BaseURL    string        `yaml:"baseURL"`
	UserAgent  string        `yaml:"userAgent"`
	Timeout    time.Duration `yaml:"timeout"`
	RetryCount int           `yaml:"retryCount"`
	RetryWait  time.Duration `yaml:"retryWait"`
}

type Config struct {
	OutputPath string `yaml:"output"`
	Format     string `yaml:"format"`
	FailFast   bool   `yaml:"failFast"`
	Language   string `yaml:"language"`
	Verbose    bool   `yaml:"verbose"`
	HTTP       HTTP   `yaml:"http"`
}

func Default() Config {
	return Config{
		OutputPath: ".",
		Format:     FormatEpub,
		Language:   "ja",
		HTTP: HTTP{
			BaseURL:    "https://syosetu.org",
			Timeout:    30 * time.Second,
			RetryCount: 3,
			RetryWait:  3 * time.Second,
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path (if path is
// not empty) and then with HAMELN_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadEnvFiles loads .env files into the process environment. Variables that
// are already set win.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// ApplyEnv overrides cfg with the HAMELN_* variables that are set.
func ApplyEnv(cfg *Config) error {
	if v, ok := lookup("HAMELN_OUTPUT"); ok {
		cfg.OutputPath = v
	}
	if v, ok := lookup("HAMELN_FORMAT"); ok {
		cfg.Format = v
	}
	if v, ok := lookup("HAMELN_LANG"); ok {
		cfg.Language = v
	}
	if v, ok := lookup("HAMELN_BASE_URL"); ok {
		cfg.HTTP.BaseURL = v
	}
	if v, ok := lookup("HAMELN_USER_AGENT"); ok {
		cfg.HTTP.UserAgent = v
	}

	var errs []error
	if v, ok := lookup("HAMELN_FAIL_FAST"); ok {
		b, err := strconv.ParseBool(v)
		errs = append(errs, envErr("HAMELN_FAIL_FAST", err))
		cfg.FailFast = b
	}
	if v, ok := lookup("HAMELN_VERBOSE"); ok {
		b, err := strconv.ParseBool(v)
		errs = append(errs, envErr("HAMELN_VERBOSE", err))
		cfg.Verbose = b
	}
	if v, ok := lookup("HAMELN_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		errs = append(errs, envErr("HAMELN_TIMEOUT", err))
		cfg.HTTP.Timeout = d
	}
	if v, ok := lookup("HAMELN_RETRY_COUNT"); ok {
		n, err := strconv.Atoi(v)
		errs = append(errs, envErr("HAMELN_RETRY_COUNT", err))
		cfg.HTTP.RetryCount = n
	}
	if v, ok := lookup("HAMELN_RETRY_WAIT"); ok {
		d, err := time.ParseDuration(v)
		errs = append(errs, envErr("HAMELN_RETRY_WAIT", err))
		cfg.HTTP.RetryWait = d
	}
	return errors.Join(errs...)
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func envErr(key string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("invalid %s: %w", key, err)
}

func (c Config) Validate() error {
	switch c.Format {
	case FormatEpub, FormatText:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return errors.New("output path is required")
	}
	if c.HTTP.RetryCount < 0 {
		return fmt.Errorf("retry count must not be negative: %v", c.HTTP.RetryCount)
	}
	if c.HTTP.Timeout < 0 || c.HTTP.RetryWait < 0 {
		return errors.New("durations must not be negative")
	}
	return nil
}
