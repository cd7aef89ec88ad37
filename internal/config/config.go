package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// ErrMissingCredentials is returned when a command needs the judge session
// but LEETCODE_SESSION or LEETCODE_CSRF_TOKEN is unset.
var ErrMissingCredentials = errors.New("LEETCODE_SESSION and LEETCODE_CSRF_TOKEN are required")

// Config contains runtime configuration values.
type Config struct {
	Session         string
	CSRFToken       string
	BaseURL         string
	SubmissionsFile string
	DSADir          string
	DesignBaseDir   string
	PageSize        int
	MaxPages        int
	PageDelay       time.Duration
	DetailDelay     time.Duration
	RequestTimeout  time.Duration
	DetailCachePath string
	ScheduleCron    string
	Overwrite       bool
	LogLevel        string
	LogFormat       string
}

const (
	defaultBaseURL         = "https://leetcode.com"
	defaultSubmissionsFile = "leetcode_submissions.json"
	defaultDSADir          = "dsa"
	defaultDesignBaseDir   = "system-design/system-design-examples"
	defaultPageSize        = 20
	defaultMaxPages        = 100
	defaultPageDelay       = 1500 * time.Millisecond
	defaultDetailDelay     = 500 * time.Millisecond
	defaultTimeout         = 30 * time.Second
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
)

// Load builds a Config from environment variables with sane defaults.
// Credentials are not checked here; commands that talk to the judge call
// RequireCredentials.
func Load() (*Config, error) {
	cfg := &Config{
		Session:         os.Getenv("LEETCODE_SESSION"),
		CSRFToken:       os.Getenv("LEETCODE_CSRF_TOKEN"),
		BaseURL:         getenvDefault("LEETCODE_BASE_URL", defaultBaseURL),
		SubmissionsFile: getenvDefault("SUBMISSIONS_FILE", defaultSubmissionsFile),
		DSADir:          getenvDefault("DSA_DIR", defaultDSADir),
		DesignBaseDir:   getenvDefault("DESIGN_BASE_DIR", defaultDesignBaseDir),
		PageSize:        parseIntDefault("SUBMISSIONS_PAGE_SIZE", defaultPageSize),
		MaxPages:        parseIntDefault("SUBMISSIONS_MAX_PAGES", defaultMaxPages),
		PageDelay:       parseDurationDefault("PAGE_DELAY", defaultPageDelay),
		DetailDelay:     parseDurationDefault("DETAIL_DELAY", defaultDetailDelay),
		RequestTimeout:  parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout),
		DetailCachePath: os.Getenv("DETAIL_CACHE_PATH"),
		ScheduleCron:    os.Getenv("SCHEDULE_CRON"),
		LogLevel:        getenvDefault("LOG_LEVEL", defaultLogLevel),
		LogFormat:       getenvDefault("LOG_FORMAT", defaultLogFormat),
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}

	if cfg.MaxPages <= 0 {
		cfg.MaxPages = defaultMaxPages
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	if cfg.PageDelay < 0 {
		cfg.PageDelay = 0
	}

	if cfg.DetailDelay < 0 {
		cfg.DetailDelay = 0
	}

	return cfg, nil
}

// RequireCredentials reports ErrMissingCredentials unless both judge tokens
// are present.
func (c *Config) RequireCredentials() error {
	if c.Session == "" || c.CSRFToken == "" {
		return ErrMissingCredentials
	}
	return nil
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseIntDefault(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
