package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
)

const (
	BackendDynamoDB = "dynamodb"
	BackendPostgres = "postgres"

	OptionsSourceStore  = "store"
	OptionsSourceStatic = "static"
)

// Config holds every setting the service reads from the environment.
// A .env file, when present, is loaded before parsing (see cmd/api).
type Config struct {
	Port      int    `env:"PORT" envDefault:"8080"`
	GinMode   string `env:"GIN_MODE" envDefault:"release"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"dynamodb"`
	OptionsSource  string `env:"OPTIONS_SOURCE" envDefault:"store"`

	AWS      AWSConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Email    EmailConfig
	Upload   UploadConfig

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

type AWSConfig struct {
	Region           string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
	QuotesTable      string `env:"AWS_DYNAMODB_TABLE_NAME" envDefault:"Quotes"`
	OptionsTable     string `env:"QUOTE_OPTIONS_TABLE" envDefault:"QuoteOptions"`
}

type PostgresConfig struct {
	DSN string `env:"POSTGRES_DSN"`
}

// RedisConfig enables the option cache when Addr is set.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"OPTIONS_CACHE_TTL" envDefault:"10m"`
}

type EmailConfig struct {
	Send        bool   `env:"SHOULD_SEND_EMAIL" envDefault:"false"`
	SourceEmail string `env:"SES_SOURCE_EMAIL"`
	AdminEmail  string `env:"ADMIN_EMAIL" envDefault:"info@arborlove.com"`
}

type UploadConfig struct {
	Bucket         string `env:"AWS_S3_BUCKET_NAME" envDefault:"localbucketarbolove"`
	Endpoint       string `env:"S3_ENDPOINT"`
	ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE" envDefault:"false"`
	MaxBytes       int64  `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	c.StorageBackend = strings.ToLower(strings.TrimSpace(c.StorageBackend))
	switch c.StorageBackend {
	case BackendDynamoDB:
	case BackendPostgres:
		if strings.TrimSpace(c.Postgres.DSN) == "" {
			errs = append(errs, errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported STORAGE_BACKEND %q", c.StorageBackend))
	}

	c.OptionsSource = strings.ToLower(strings.TrimSpace(c.OptionsSource))
	if c.OptionsSource != OptionsSourceStore && c.OptionsSource != OptionsSourceStatic {
		errs = append(errs, fmt.Errorf("unsupported OPTIONS_SOURCE %q", c.OptionsSource))
	}

	if c.Email.Send && strings.TrimSpace(c.Email.SourceEmail) == "" {
		errs = append(errs, errors.New("SES_SOURCE_EMAIL is required when SHOULD_SEND_EMAIL=true"))
	}
	if c.Port <= 0 {
		errs = append(errs, fmt.Errorf("invalid PORT %d", c.Port))
	}

	return errors.Join(errs...)
}
