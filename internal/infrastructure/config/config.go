package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Datasets  DatasetsConfig  `mapstructure:"datasets"`
	Session   SessionConfig   `mapstructure:"session"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	LogLevel  string          `mapstructure:"log_level"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env      string `mapstructure:"env"`
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	Version  string `mapstructure:"version"`
	Name     string `mapstructure:"name"`
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// DatasetsConfig 資料來源設定（Google Sheets 發布的 CSV 連結）
type DatasetsConfig struct {
	HeroURL      string        `mapstructure:"hero_url"`     // 成分（hero）總表
	ProfileURL   string        `mapstructure:"profile_url"`  // 肌膚類型定義表
	StrategyURL  string        `mapstructure:"strategy_url"` // 策略說明表
	PicksURL     string        `mapstructure:"picks_url"`    // 本週嚴選清單（可留空）
	SnapshotTTL  time.Duration `mapstructure:"snapshot_ttl"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
}

// SessionConfig 精靈流程狀態儲存設定
type SessionConfig struct {
	RedisAddr     string        `mapstructure:"redis_addr"` // 留空時改用內存儲存
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	TTL           time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// 加載 .env 文件（找不到時沿用環境變數）
	_ = godotenv.Load()

	// 設定預設值
	setDefaults()

	// 設定環境變數前綴
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 綁定環境變量
	viper.BindEnv("datasets.hero_url", "DATASET_HERO_URL")
	viper.BindEnv("datasets.profile_url", "DATASET_PROFILE_URL")
	viper.BindEnv("datasets.strategy_url", "DATASET_STRATEGY_URL")
	viper.BindEnv("datasets.picks_url", "DATASET_PICKS_URL")
	viper.BindEnv("datasets.snapshot_ttl", "DATASET_SNAPSHOT_TTL")
	viper.BindEnv("session.redis_addr", "SESSION_REDIS_ADDR")
	viper.BindEnv("session.redis_password", "SESSION_REDIS_PASSWORD")
	viper.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	viper.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	viper.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	viper.BindEnv("log_level", "LOG_LEVEL")

	// 設定設定檔名稱和路徑
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// 讀取設定檔
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 解析設定
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 驗證必要設定
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// setDefaults 設定預設值
func setDefaults() {
	// 應用程式設定
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "skincare-advisor")

	// 伺服器設定
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// 資料來源設定
	viper.SetDefault("datasets.hero_url", "")
	viper.SetDefault("datasets.profile_url", "")
	viper.SetDefault("datasets.strategy_url", "")
	viper.SetDefault("datasets.picks_url", "")
	viper.SetDefault("datasets.snapshot_ttl", "60s")
	viper.SetDefault("datasets.fetch_timeout", "15s")

	// 精靈流程狀態設定
	viper.SetDefault("session.redis_addr", "")
	viper.SetDefault("session.redis_db", 0)
	viper.SetDefault("session.ttl", "24h")

	// 限流設定
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "1m")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	// 驗證伺服器設定
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}

	// 驗證資料來源設定
	if config.Datasets.SnapshotTTL <= 0 {
		return fmt.Errorf("invalid snapshot ttl")
	}
	if config.Datasets.FetchTimeout <= 0 {
		return fmt.Errorf("invalid fetch timeout")
	}

	// 驗證精靈流程狀態設定
	if config.Session.TTL <= 0 {
		return fmt.Errorf("invalid session ttl")
	}

	return nil
}
