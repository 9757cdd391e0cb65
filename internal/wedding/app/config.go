package app

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/pkg/jwtx"
)

// DefaultEnvFile is loaded when present; other env files must exist.
const DefaultEnvFile = ".env"

type Config struct {
	Addr         string `env:"WEDDING_ADDR"     envDefault:":8080"`
	DatabaseFile string `env:"WEDDING_DB_PATH"  envDefault:"wedding.db"`
	BaseURL      string `env:"WEDDING_BASE_URL" envDefault:"http://localhost:8080"`

	// SessionSecret signs admin session tokens. Required to serve.
	SessionSecret string        `env:"WEDDING_SESSION_SECRET"`
	SessionTTL    time.Duration `env:"WEDDING_SESSION_TTL"    envDefault:"24h"`
	Issuer        string        `env:"WEDDING_ISSUER"         envDefault:"wedding"`
	PepperFile    string        `env:"WEDDING_PASSWORD_PEPPER_FILE"`

	// RedisURL moves login attempt counters to Redis so several
	// instances share them. Counters stay in memory when empty.
	RedisURL         string        `env:"WEDDING_REDIS_URL"`
	LoginMaxAttempts int           `env:"WEDDING_LOGIN_MAX_ATTEMPTS" envDefault:"5"`
	LoginWindow      time.Duration `env:"WEDDING_LOGIN_WINDOW"       envDefault:"15m"`

	// ResendAPIKey enables real email delivery; without it emails are
	// only logged.
	ResendAPIKey string `env:"WEDDING_RESEND_API_KEY"`
	MailFrom     string `env:"WEDDING_MAIL_FROM" envDefault:"Wedding RSVP <onboarding@resend.dev>"`

	HousekeepingInterval time.Duration `env:"WEDDING_HOUSEKEEPING_INTERVAL" envDefault:"1h"`
	ShutdownGracePeriod  time.Duration `env:"WEDDING_SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`

	Env       string `env:"ENV"        envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// LoadConfig reads envFile into the process environment, then parses
// Config from it. Variables already set win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !(envFile == DefaultEnvFile && errors.Is(err, fs.ErrNotExist)) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks what serving needs beyond the database.
func (c Config) Validate() error {
	var errs []error
	if len(c.SessionSecret) < jwtx.MinSecretLength {
		errs = append(errs, fmt.Errorf("WEDDING_SESSION_SECRET must be at least %d bytes", jwtx.MinSecretLength))
	}
	if c.SessionTTL < domain.MinSessionTTL || c.SessionTTL > domain.MaxSessionTTL {
		errs = append(errs, fmt.Errorf("WEDDING_SESSION_TTL must be between %s and %s", domain.MinSessionTTL, domain.MaxSessionTTL))
	}
	if c.LoginMaxAttempts < 1 {
		errs = append(errs, errors.New("WEDDING_LOGIN_MAX_ATTEMPTS must be positive"))
	}
	if c.LoginWindow <= 0 {
		errs = append(errs, errors.New("WEDDING_LOGIN_WINDOW must be positive"))
	}
	return errors.Join(errs...)
}
