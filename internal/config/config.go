package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Tracing   TracingConfig `mapstructure:"tracing"`
	Redis     RedisConfig
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Exams     []ExamPolicy    `mapstructure:"exams"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

// ExamPolicy is one exam's rules. New exams are configuration, not code.
type ExamPolicy struct {
	Code              string `mapstructure:"code"`
	Name              string `mapstructure:"name"`
	OutlineVersion    string `mapstructure:"outline_version"`
	TotalQuestions    int    `mapstructure:"total_questions"`
	TimeLimitMinutes  int    `mapstructure:"time_limit_minutes"`
	PassingPercentage int    `mapstructure:"passing_percentage"`
}

// DefaultExamPolicies covers the supported FINRA/NASAA exams. Used when the
// config file carries no exams section.
func DefaultExamPolicies() []ExamPolicy {
	return []ExamPolicy{
		{Code: "SIE", Name: "Securities Industry Essentials", OutlineVersion: "2024 outline", TotalQuestions: 75, TimeLimitMinutes: 105, PassingPercentage: 70},
		{Code: "SERIES_7", Name: "General Securities Representative", OutlineVersion: "2024 outline", TotalQuestions: 125, TimeLimitMinutes: 225, PassingPercentage: 72},
		{Code: "SERIES_57", Name: "Securities Trader", OutlineVersion: "2024 outline", TotalQuestions: 50, TimeLimitMinutes: 90, PassingPercentage: 70},
		{Code: "SERIES_65", Name: "Uniform Investment Adviser Law", OutlineVersion: "NASAA outline", TotalQuestions: 130, TimeLimitMinutes: 180, PassingPercentage: 73},
	}
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("EXAM_COACH")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// JWT
	viper.BindEnv("jwt.secret", "JWT_SECRET")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.JWT.ExpireTime = cfg.JWT.ExpireTime * time.Hour

	if cfg.Server.Mode == "release" && len(cfg.JWT.Secret) < 32 {
		return nil, fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.JWT.Secret))
	}

	if len(cfg.Exams) == 0 {
		cfg.Exams = DefaultExamPolicies()
	}

	return &cfg, nil
}
