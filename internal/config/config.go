package config

import (
	"fmt"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const placeholderJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	// Env is one of dev, staging, prod
	Env string `env:"APP_ENV" env-default:"dev"`

	Server      ServerConfig
	Database    DatabaseConfig
	JWT         JWTConfig
	Redis       RedisConfig
	RateLimit   RateLimitConfig
	GoogleOAuth GoogleOAuthConfig
	CORS        CORSConfig
	Media       MediaConfig
	Log         LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" env-default:"120s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"5s"`
	TrustedProxies  []string      `env:"TRUSTED_PROXIES" env-separator:","`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Host         string        `env:"DB_HOST" env-default:"localhost"`
	Port         string        `env:"DB_PORT" env-default:"5432"`
	User         string        `env:"DB_USER" env-default:"postgres"`
	Password     string        `env:"DB_PASSWORD"`
	Name         string        `env:"DB_NAME" env-default:"talenta"`
	SSLMode      string        `env:"DB_SSLMODE" env-default:"disable"`
	MaxConns     int32         `env:"DB_MAX_CONNS" env-default:"5"`
	MinConns     int32         `env:"DB_MIN_CONNS" env-default:"0"`
	MaxLifetime  time.Duration `env:"DB_MAX_LIFETIME" env-default:"1h"`
	ConnTimeout  time.Duration `env:"DB_CONN_TIMEOUT" env-default:"10s"`
	QueryTimeout time.Duration `env:"DB_QUERY_TIMEOUT" env-default:"30s"`
	AutoMigrate  bool          `env:"DB_AUTO_MIGRATE" env-default:"true"`
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	Secret          string        `env:"JWT_SECRET" env-default:"your-secret-key-change-in-production"`
	Issuer          string        `env:"JWT_ISSUER" env-default:"ums-talenta"`
	AccessTokenTTL  time.Duration `env:"JWT_ACCESS_TTL" env-default:"30m"`
	RefreshTokenTTL time.Duration `env:"JWT_REFRESH_TTL" env-default:"24h"`
}

// RedisConfig holds the redis connection used for token revocation and rate limits
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

// RateLimitConfig limits login/register attempts per client
type RateLimitConfig struct {
	AuthLimit  int           `env:"RATE_LIMIT_AUTH" env-default:"10"`
	AuthWindow time.Duration `env:"RATE_LIMIT_AUTH_WINDOW" env-default:"1m"`
	AuthBlock  time.Duration `env:"RATE_LIMIT_AUTH_BLOCK" env-default:"5m"`
}

// GoogleOAuthConfig holds Google OAuth configuration
type GoogleOAuthConfig struct {
	ClientID            string `env:"GOOGLE_CLIENT_ID"`
	ClientSecret        string `env:"GOOGLE_CLIENT_SECRET"`
	RedirectURL         string `env:"GOOGLE_REDIRECT_URL" env-default:"http://localhost:8080/api/auth/google/callback"`
	FrontendCallbackURL string `env:"GOOGLE_FRONTEND_CALLBACK_URL" env-default:"http://localhost:5173/auth/callback"`
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS" env-separator:"," env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS" env-separator:"," env-default:"*"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
}

// MediaConfig describes where uploaded profile photos live
type MediaConfig struct {
	Root           string `env:"MEDIA_ROOT" env-default:"./media"`
	URLPrefix      string `env:"MEDIA_URL" env-default:"/media/"`
	MaxUploadBytes int64  `env:"MEDIA_MAX_UPLOAD_BYTES" env-default:"2097152"`
}

// LogConfig selects the zap logger flavour: "dev" console or "prod" JSON
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"dev"`
}

// Production reports whether the JSON production encoder is selected
func (l LogConfig) Production() bool {
	return l.Format == "prod"
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file
	if err := godotenv.Load("../.env"); err != nil {
		// Try loading from current directory if not found in parent
		if err := godotenv.Load(".env"); err != nil {
			log.Printf("Warning: .env file not found: %v", err)
		}
	}

	var config Config
	if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.IsProduction() && c.JWT.Secret == placeholderJWTSecret {
		return fmt.Errorf("JWT_SECRET must be changed in production")
	}
	if c.JWT.AccessTokenTTL <= 0 || c.JWT.RefreshTokenTTL <= c.JWT.AccessTokenTTL {
		return fmt.Errorf("JWT_REFRESH_TTL must be longer than JWT_ACCESS_TTL")
	}
	switch c.Log.Format {
	case "", "dev", "prod":
	default:
		return fmt.Errorf("LOG_FORMAT must be dev or prod, got %q", c.Log.Format)
	}
	return nil
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&connect_timeout=%d",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
		int(c.Database.ConnTimeout.Seconds()),
	)
}

// IsProduction reports whether APP_ENV is prod
func (c *Config) IsProduction() bool {
	return c.Env == "prod"
}

// IsGoogleOAuthConfigured checks if Google OAuth is properly configured
func (c *Config) IsGoogleOAuthConfigured() bool {
	return c.GoogleOAuth.ClientID != "" && c.GoogleOAuth.ClientSecret != ""
}
