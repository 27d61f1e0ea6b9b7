package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Cache    CacheConfig    `yaml:"cache"`
	AI       AIConfig       `yaml:"ai"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	Migrate         bool          `yaml:"migrate"            env:"DATABASE_MIGRATE"            env-default:"true"`
}

// CacheConfig holds Redis settings for the analysis response cache.
type CacheConfig struct {
	Addr     string `yaml:"addr"     env:"CACHE_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"CACHE_PASSWORD"`
	DB       int    `yaml:"db"       env:"CACHE_DB"       env-default:"0"`
}

// AIConfig holds inference endpoint settings for classification and
// summarization.
type AIConfig struct {
	APIKey              string        `yaml:"api_key"              env:"AI_API_KEY"`
	Model               string        `yaml:"model"                env:"AI_MODEL"                env-default:"claude-3-5-haiku-latest"`
	MaxTokens           int64         `yaml:"max_tokens"           env:"AI_MAX_TOKENS"           env-default:"1024"`
	ClassifyTemperature float64       `yaml:"classify_temperature" env:"AI_CLASSIFY_TEMPERATURE" env-default:"0.3"`
	SummaryTemperature  float64       `yaml:"summary_temperature"  env:"AI_SUMMARY_TEMPERATURE"  env-default:"0.5"`
	Timeout             time.Duration `yaml:"timeout"              env:"AI_TIMEOUT"              env-default:"15s"`
}

// AnalysisConfig holds settings for the aggregated analysis view.
type AnalysisConfig struct {
	CacheTTL          time.Duration `yaml:"cache_ttl"           env:"ANALYSIS_CACHE_TTL"           env-default:"300s"`
	DefaultPeriodDays int           `yaml:"default_period_days" env:"ANALYSIS_DEFAULT_PERIOD_DAYS" env-default:"7"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,POST,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}
