package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseDriver  string        `envconfig:"DATABASE_DRIVER"   default:"postgres"`
	DatabaseURL     string        `envconfig:"DATABASE_URL"      required:"true"`
	HTTPPort        string        `envconfig:"HTTP_PORT"         default:":8080"`
	GrpcPort        string        `envconfig:"GRPC_PORT"         default:":50051"` // grpc health endpoint
	LogLevel        string        `envconfig:"LOG_LEVEL"         default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT"        default:"json"`
	DefaultPageSize int           `envconfig:"DEFAULT_PAGE_SIZE" default:"12"`
	MaxPageSize     int           `envconfig:"MAX_PAGE_SIZE"     default:"100"`
	AutoMigrate     bool          `envconfig:"AUTO_MIGRATE"      default:"true"`
	SeedData        bool          `envconfig:"SEED_DATA"         default:"false"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT"  default:"10s"`
	OIDCIssuerURL   string        `envconfig:"OIDC_ISSUER_URL"`
	OIDCClientID    string        `envconfig:"OIDC_CLIENT_ID"`
}

var (
	config  Config
	loadErr error
	once    sync.Once
)

// LoadConfig reads an optional .env file and then the environment. It runs once per
// process; later calls return the first result.
func LoadConfig(logger *logrus.Logger) (*Config, error) {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		cfg, err := Process()
		if err != nil {
			loadErr = err
			return
		}
		config = *cfg

		logger.Infof("Configuration loaded: HTTP Port=%s, GRPC Port=%s, Driver=%s, LogLevel=%s",
			config.HTTPPort, config.GrpcPort, config.DatabaseDriver, config.LogLevel)
		if config.OIDCIssuerURL != "" {
			logger.Infof("Configuration loaded: bearer auth enabled for issuer %s", config.OIDCIssuerURL)
		}
	})
	if loadErr != nil {
		return nil, loadErr
	}
	return &config, nil
}

// Process builds a Config from the environment alone and validates it.
func Process() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration from environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("configuration error: DATABASE_URL must not be empty")
	}
	switch c.DatabaseDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("configuration error: unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("configuration error: unsupported LOG_FORMAT %q", c.LogFormat)
	}
	if c.DefaultPageSize <= 0 || c.MaxPageSize <= 0 {
		return fmt.Errorf("configuration error: page sizes must be positive")
	}
	if c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("configuration error: DEFAULT_PAGE_SIZE %d exceeds MAX_PAGE_SIZE %d", c.DefaultPageSize, c.MaxPageSize)
	}
	if c.OIDCIssuerURL != "" && c.OIDCClientID == "" {
		return fmt.Errorf("configuration error: OIDC_CLIENT_ID is required when OIDC_ISSUER_URL is set")
	}
	return nil
}
