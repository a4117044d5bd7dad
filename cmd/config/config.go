package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Auth        AuthConfig
	Email       EmailConfig
	RateLimit   RateLimitConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret      string
	SessionExpTime time.Duration
	ResetExpTime   time.Duration
	OTPExpTime     time.Duration
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string

	// FrontendURL is embedded in emailed links (reset password, welcome).
	FrontendURL string

	// DevOTPFallback returns the OTP in the API response when dispatch
	// fails. Insecure; never enable in production.
	DevOTPFallback bool
}

type RateLimitConfig struct {
	API  LimitTier
	Auth LimitTier
	OTP  LimitTier
}

type LimitTier struct {
	Max    int
	Window time.Duration
}

// Load reads configuration from the environment once at startup. A .env
// file is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("PORT", "4000"),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			DSN:             getEnv("DATABASE_DSN", "expenzo:expenzo@tcp(localhost:3306)/expenzo?parseTime=true"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			SessionExpTime: getEnvDuration("SESSION_EXPIRATION", 24*time.Hour),
			ResetExpTime:   getEnvDuration("RESET_TOKEN_EXPIRATION", time.Hour),
			OTPExpTime:     getEnvDuration("OTP_EXPIRATION", 10*time.Minute),
		},
		Email: EmailConfig{
			Host:           getEnv("EMAIL_HOST", "smtp.gmail.com"),
			Port:           getEnvInt("EMAIL_PORT", 587),
			User:           getEnv("EMAIL_USER", ""),
			Password:       getEnv("EMAIL_PASSWORD", ""),
			From:           getEnv("EMAIL_FROM", "ExPeNzO <noreply@expenzo.com>"),
			FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:5173"),
			DevOTPFallback: getEnvBool("EMAIL_DEV_OTP_FALLBACK", false),
		},
		RateLimit: RateLimitConfig{
			API:  LimitTier{Max: getEnvInt("RATE_LIMIT_API_MAX", 100), Window: getEnvDuration("RATE_LIMIT_API_WINDOW", 15*time.Minute)},
			Auth: LimitTier{Max: getEnvInt("RATE_LIMIT_AUTH_MAX", 20), Window: getEnvDuration("RATE_LIMIT_AUTH_WINDOW", 15*time.Minute)},
			OTP:  LimitTier{Max: getEnvInt("RATE_LIMIT_OTP_MAX", 5), Window: getEnvDuration("RATE_LIMIT_OTP_WINDOW", 10*time.Minute)},
		},
	}
}

// GetDSN returns the MySQL connection string.
func (c *Config) GetDSN() string {
	return c.Database.DSN
}

// RedisEnabled reports whether a Redis host was configured. Without one the
// service runs with in-process rate-limit counters only.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
