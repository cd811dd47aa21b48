package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	SessionKey    string
	SessionTTL    time.Duration
	ConfigFile    string
	AdminEmail    string
	AdminPassword string
}

// FileConfig is the optional YAML configuration file.
type FileConfig struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		URL  string `yaml:"url"`
		Type string `yaml:"type"`
	} `yaml:"database"`
	Session struct {
		Key string `yaml:"key"`
		TTL string `yaml:"ttl"`
	} `yaml:"session"`
	Admin struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"admin"`
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return fc, nil
}

// DefaultSessionTTL is how long a login stays valid when no TTL is configured.
const DefaultSessionTTL = 24 * time.Hour

// ParseFlags resolves the configuration. Each setting is taken from the
// first source that has it: CLI flag, environment, config file, default.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("quiz-admin", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.ConfigFile, "c", "", "Path to YAML config file")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionKey, "session-key", "", "Session signing key (prefer env)")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", 0, "Session lifetime, e.g. 12h")
	fs.StringVar(&cfg.AdminEmail, "admin-email", "", "Email of the admin to create at startup")
	fs.StringVar(&cfg.AdminPassword, "admin-password", "", "Password of the admin to create at startup (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		}
	}
	if cfg.SessionTTL == 0 {
		if ttlStr := os.Getenv("SESSION_TTL"); ttlStr != "" {
			ttl, err := time.ParseDuration(ttlStr)
			if err != nil {
				return Config{}, errors.New("invalid SESSION_TTL env variable")
			}
			cfg.SessionTTL = ttl
		}
	}
	setFromEnv(&cfg.DatabaseURL, "DATABASE_URL")
	setFromEnv(&cfg.DatabaseType, "DATABASE_TYPE")
	setFromEnv(&cfg.ConfigFile, "QUIZ_CONFIG")
	setFromEnv(&cfg.SessionKey, "SESSION_KEY")
	setFromEnv(&cfg.AdminEmail, "ADMIN_EMAIL")
	setFromEnv(&cfg.AdminPassword, "ADMIN_PASSWORD")

	// Then the config file
	if cfg.ConfigFile != "" {
		fc, err := LoadFile(cfg.ConfigFile)
		if err != nil {
			return Config{}, err
		}
		if cfg.Port == 0 {
			cfg.Port = fc.Server.Port
		}
		setDefault(&cfg.DatabaseURL, fc.Database.URL)
		setDefault(&cfg.DatabaseType, fc.Database.Type)
		setDefault(&cfg.SessionKey, fc.Session.Key)
		if cfg.SessionTTL == 0 && fc.Session.TTL != "" {
			ttl, err := time.ParseDuration(fc.Session.TTL)
			if err != nil {
				return Config{}, fmt.Errorf("invalid session.ttl in %s: %w", cfg.ConfigFile, err)
			}
			cfg.SessionTTL = ttl
		}
		setDefault(&cfg.AdminEmail, fc.Admin.Email)
		setDefault(&cfg.AdminPassword, fc.Admin.Password)
	}

	// Defaults
	if cfg.Port == 0 {
		cfg.Port = 3318
	}
	setDefault(&cfg.DatabaseType, "sqlite")
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("database type must be sqlite or postgres, got %q", cfg.DatabaseType)
	}

	// Secrets - MUST be provided
	if cfg.SessionKey == "" {
		return Config{}, errors.New("SESSION_KEY required")
	}
	if cfg.SessionTTL < 0 {
		return Config{}, fmt.Errorf("session TTL must be positive, got %s", cfg.SessionTTL)
	}

	if (cfg.AdminEmail == "") != (cfg.AdminPassword == "") {
		return Config{}, errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set together")
	}

	return cfg, nil
}

func setFromEnv(field *string, key string) {
	if *field == "" {
		*field = os.Getenv(key)
	}
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
