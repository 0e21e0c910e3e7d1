package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host     string
	Port     int
	LogLevel string
}

type AuthConfig struct {
	JWTSecret      string
	AccessTokenTTL int // minutes
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type QueueConfig struct {
	Concurrency      int
	ReminderLeadMins int // how long before the slot the reminder fires
}

type StorageConfig struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	PresignTTLMins  int
}

type Config struct {
	Server  ServerConfig
	Auth    AuthConfig
	Redis   RedisConfig
	Queue   QueueConfig
	Storage StorageConfig
}

var (
	instance *Config
	mu       sync.RWMutex
)

// Load reads .env (if present) and environment variables into the process
// config. Call once at startup before Get.
func Load() (*Config, error) {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 7070)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("ACCESS_TOKEN_TTL_MINUTES", 60*24)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("QUEUE_CONCURRENCY", 5)
	v.SetDefault("REMINDER_LEAD_MINUTES", 60)
	v.SetDefault("S3_REGION", "ap-southeast-1")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_ACCESS_KEY_ID", "")
	v.SetDefault("S3_SECRET_ACCESS_KEY", "")
	v.SetDefault("S3_PRESIGN_TTL_MINUTES", 15)

	cfg := &Config{
		Server: ServerConfig{
			Host:     v.GetString("SERVER_HOST"),
			Port:     v.GetInt("SERVER_PORT"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		Auth: AuthConfig{
			JWTSecret:      v.GetString("JWT_SECRET"),
			AccessTokenTTL: v.GetInt("ACCESS_TOKEN_TTL_MINUTES"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Queue: QueueConfig{
			Concurrency:      v.GetInt("QUEUE_CONCURRENCY"),
			ReminderLeadMins: v.GetInt("REMINDER_LEAD_MINUTES"),
		},
		Storage: StorageConfig{
			Region:          v.GetString("S3_REGION"),
			Bucket:          v.GetString("S3_BUCKET"),
			AccessKeyID:     v.GetString("S3_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("S3_SECRET_ACCESS_KEY"),
			PresignTTLMins:  v.GetInt("S3_PRESIGN_TTL_MINUTES"),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	mu.Lock()
	instance = cfg
	mu.Unlock()
	return cfg, nil
}

// Get returns the loaded config. Panics if Load has not run.
func Get() *Config {
	cfg, ok := GetSafe()
	if !ok {
		panic("config: Get called before Load")
	}
	return cfg
}

// GetSafe returns the loaded config and whether it is initialized.
func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return instance, instance != nil
}

// Set overrides the process config. Used by tests.
func Set(cfg *Config) {
	mu.Lock()
	instance = cfg
	mu.Unlock()
}
