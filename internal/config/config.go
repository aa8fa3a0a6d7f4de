package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Embedding EmbeddingConfig `mapstructure:"embedding"`
	Admin     AdminConfig     `mapstructure:"admin"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	MigrateOnly bool `mapstructure:"-"`
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

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// EmbeddingConfig 外部向量模型服务配置
type EmbeddingConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	APIKey     string `mapstructure:"api_key"`
	Model      string `mapstructure:"model"`
	Dimensions int    `mapstructure:"dimensions"`

	MaxRetries        int           `mapstructure:"max_retries"`
	RateLimitBackoff  time.Duration `mapstructure:"rate_limit_backoff"`
	TransientBackoff  time.Duration `mapstructure:"transient_backoff"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`

	BatchSize  int           `mapstructure:"batch_size"`
	BatchPause time.Duration `mapstructure:"batch_pause"`
}

type AdminConfig struct {
	Password string `mapstructure:"password"`
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("UNICOURSE")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Embedding provider
	viper.BindEnv("embedding.base_url", "EMBEDDING_BASE_URL")
	viper.BindEnv("embedding.api_key", "EMBEDDING_API_KEY")
	viper.BindEnv("embedding.model", "EMBEDDING_MODEL")

	// Admin
	viper.BindEnv("admin.password", "ADMIN_PASSWORD")
	viper.BindEnv("jwt.secret", "JWT_SECRET")

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
	cfg.Embedding.ApplyDefaults()

	if cfg.Embedding.APIKey == "" {
		return nil, fmt.Errorf("embedding api key is not configured")
	}

	if cfg.Server.Mode == "release" && len(cfg.JWT.Secret) < 32 {
		return nil, fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.JWT.Secret))
	}

	return &cfg, nil
}

// ApplyDefaults 补全向量服务的缺省参数，与线上 OpenAI embeddings 接口对齐
func (c *EmbeddingConfig) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.openai.com/v1"
	}
	if c.Model == "" {
		c.Model = "text-embedding-3-large"
	}
	if c.Dimensions <= 0 {
		c.Dimensions = 3072
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 3
	}
	if c.RateLimitBackoff <= 0 {
		c.RateLimitBackoff = time.Second
	}
	if c.TransientBackoff <= 0 {
		c.TransientBackoff = 500 * time.Millisecond
	}
	if c.RequestsPerMinute <= 0 {
		c.RequestsPerMinute = 60
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 5
	}
	if c.BatchPause <= 0 {
		c.BatchPause = 2 * time.Second
	}
}
