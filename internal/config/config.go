package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `json:"server"`

	MongoDB MongoDBConfig `json:"mongodb"`

	// Access and refresh token settings
	Auth AuthConfig `json:"auth"`

	// Blob storage for avatars, thumbnails and video files
	Media MediaConfig `json:"media"`

	Cleanup CleanupConfig `json:"cleanup"`

	RateLimit RateLimitConfig `json:"rate_limit"`

	Metrics MetricsConfig `json:"metrics"`

	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Port            string        `json:"port"`
	Host            string        `json:"host"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	CORSOrigin      string        `json:"cors_origin"`
	MediaBaseURL    string        `json:"media_base_url"`
	Environment     string        `json:"environment"` // development, staging, production
}

type MongoDBConfig struct {
	URI      string        `json:"uri"`
	Host     string        `json:"host"`
	Port     string        `json:"port"`
	Username string        `json:"username"`
	Password string        `json:"-"`
	Database string        `json:"database"`
	Timeout  time.Duration `json:"timeout"` // per store call
}

type AuthConfig struct {
	AccessTokenSecret  string        `json:"-"`
	AccessTokenTTL     time.Duration `json:"access_token_ttl"`
	RefreshTokenSecret string        `json:"-"`
	RefreshTokenTTL    time.Duration `json:"refresh_token_ttl"`
	Issuer             string        `json:"issuer"`
	CookieSecure       bool          `json:"cookie_secure"`
}

const (
	MediaBackendGridFS = "gridfs"
	MediaBackendMinio  = "minio"
)

type MediaConfig struct {
	Backend       string `json:"backend"` // gridfs, minio
	MaxUploadSize int64  `json:"max_upload_size"`

	MinioEndpoint  string `json:"minio_endpoint"`
	MinioAccessKey string `json:"-"`
	MinioSecretKey string `json:"-"`
	MinioUseSSL    bool   `json:"minio_use_ssl"`
	MinioRegion    string `json:"minio_region"`
	MinioBucket    string `json:"minio_bucket"`
	MinioPublicURL string `json:"minio_public_url"`
}

// CleanupConfig sizes the media cleanup worker pool
type CleanupConfig struct {
	Workers    int           `json:"workers"`
	BufferSize int           `json:"buffer_size"`
	MaxRetries int           `json:"max_retries"`
	RetryDelay time.Duration `json:"retry_delay"`
}

type RateLimitConfig struct {
	Requests int           `json:"requests"`
	Window   time.Duration `json:"window"`
	Burst    int           `json:"burst"`
	TTL      time.Duration `json:"ttl"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `json:"level"`       // debug, info, warn, error
	Format     string `json:"format"`      // json, console
	OutputPath string `json:"output_path"` // stdout, stderr, or file path
}

// LoadConfig reads .env, an optional file named by UTUBE_CONFIG and the
// environment, in increasing order of precedence.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv("UTUBE_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetString("server.port"),
			Host:            v.GetString("server.host"),
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			WriteTimeout:    v.GetDuration("server.write_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
			CORSOrigin:      v.GetString("server.cors_origin"),
			MediaBaseURL:    v.GetString("media.base_url"),
			Environment:     v.GetString("server.environment"),
		},
		MongoDB: MongoDBConfig{
			URI:      v.GetString("mongo.uri"),
			Host:     v.GetString("mongo.host"),
			Port:     v.GetString("mongo.port"),
			Username: v.GetString("mongo.username"),
			Password: v.GetString("mongo.password"),
			Database: v.GetString("mongo.database"),
			Timeout:  v.GetDuration("mongo.timeout"),
		},
		Auth: AuthConfig{
			AccessTokenSecret:  v.GetString("access_token.secret"),
			AccessTokenTTL:     v.GetDuration("access_token.ttl"),
			RefreshTokenSecret: v.GetString("refresh_token.secret"),
			RefreshTokenTTL:    v.GetDuration("refresh_token.ttl"),
			Issuer:             v.GetString("auth.issuer"),
			CookieSecure:       v.GetBool("auth.cookie_secure"),
		},
		Media: MediaConfig{
			Backend:        strings.ToLower(v.GetString("media.backend")),
			MaxUploadSize:  v.GetInt64("media.max_upload_size"),
			MinioEndpoint:  v.GetString("minio.endpoint"),
			MinioAccessKey: v.GetString("minio.access_key"),
			MinioSecretKey: v.GetString("minio.secret_key"),
			MinioUseSSL:    v.GetBool("minio.use_ssl"),
			MinioRegion:    v.GetString("minio.region"),
			MinioBucket:    v.GetString("minio.bucket"),
			MinioPublicURL: v.GetString("minio.public_url"),
		},
		Cleanup: CleanupConfig{
			Workers:    v.GetInt("cleanup.workers"),
			BufferSize: v.GetInt("cleanup.buffer_size"),
			MaxRetries: v.GetInt("cleanup.max_retries"),
			RetryDelay: v.GetDuration("cleanup.retry_delay"),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("rate_limit.requests"),
			Window:   v.GetDuration("rate_limit.window"),
			Burst:    v.GetInt("rate_limit.burst"),
			TTL:      v.GetDuration("rate_limit.ttl"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("metrics.enabled"),
			Path:    v.GetString("metrics.path"),
		},
		Logging: LoggingConfig{
			Level:      v.GetString("log.level"),
			Format:     v.GetString("log.format"),
			OutputPath: v.GetString("log.output"),
		},
	}

	if cfg.Server.MediaBaseURL == "" {
		cfg.Server.MediaBaseURL = fmt.Sprintf("http://%s:%s/media", cfg.Server.Host, cfg.Server.Port)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("server.cors_origin", "*")
	v.SetDefault("server.environment", "development")
	v.SetDefault("media.base_url", "")

	v.SetDefault("mongo.uri", "")
	v.SetDefault("mongo.host", "localhost")
	v.SetDefault("mongo.port", "27017")
	v.SetDefault("mongo.username", "")
	v.SetDefault("mongo.password", "")
	v.SetDefault("mongo.database", "utube")
	v.SetDefault("mongo.timeout", 10*time.Second)

	v.SetDefault("access_token.secret", "")
	v.SetDefault("access_token.ttl", 15*time.Minute)
	v.SetDefault("refresh_token.secret", "")
	v.SetDefault("refresh_token.ttl", 10*24*time.Hour)
	v.SetDefault("auth.issuer", "utube")
	v.SetDefault("auth.cookie_secure", true)

	v.SetDefault("media.backend", MediaBackendGridFS)
	v.SetDefault("media.max_upload_size", int64(512<<20))
	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.access_key", "")
	v.SetDefault("minio.secret_key", "")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("minio.region", "us-east-1")
	v.SetDefault("minio.bucket", "utube-media")
	v.SetDefault("minio.public_url", "")

	v.SetDefault("cleanup.workers", 4)
	v.SetDefault("cleanup.buffer_size", 1000)
	v.SetDefault("cleanup.max_retries", 3)
	v.SetDefault("cleanup.retry_delay", 5*time.Second)

	v.SetDefault("rate_limit.requests", 10)
	v.SetDefault("rate_limit.window", time.Minute)
	v.SetDefault("rate_limit.burst", 5)
	v.SetDefault("rate_limit.ttl", 10*time.Minute)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "stdout")
}

// Validate reports settings the server cannot start without.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Auth.AccessTokenSecret == "" {
		errs = append(errs, errors.New("ACCESS_TOKEN_SECRET is required"))
	}
	if cfg.Auth.RefreshTokenSecret == "" {
		errs = append(errs, errors.New("REFRESH_TOKEN_SECRET is required"))
	}
	switch cfg.Media.Backend {
	case MediaBackendGridFS:
	case MediaBackendMinio:
		if cfg.Media.MinioAccessKey == "" || cfg.Media.MinioSecretKey == "" {
			errs = append(errs, errors.New("MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required for the minio backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown media backend %q", cfg.Media.Backend))
	}
	return errors.Join(errs...)
}

func (cfg *Config) GetMongoURI() string {
	if cfg.MongoDB.URI != "" {
		return cfg.MongoDB.URI
	}
	if cfg.MongoDB.Username != "" && cfg.MongoDB.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=admin",
			cfg.MongoDB.Username,
			cfg.MongoDB.Password,
			cfg.MongoDB.Host,
			cfg.MongoDB.Port,
			cfg.MongoDB.Database,
		)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s", cfg.MongoDB.Host, cfg.MongoDB.Port, cfg.MongoDB.Database)
}

// GetMediaURL builds the public URL of a GridFS file served by the media endpoint.
func (cfg *Config) GetMediaURL(fileID string) string {
	return strings.TrimRight(cfg.Server.MediaBaseURL, "/") + "/" + fileID
}
