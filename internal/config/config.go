package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"admin-console/internal/client"
	"admin-console/internal/events"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr       string
	DatabaseURL    string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	WorkerCount    int
	UserAPIURL     string
	ResolveAdminID bool
	SubmitTimeout  time.Duration
	NATSURL        string
	NATSSubject    string

	// 啟動時建立的管理員 (兩者皆設定才會建立)
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

var loadDotenv = func() error { return godotenv.Load() }

// Load 讀取 .env (若存在) 與環境變數
func Load() (*Config, error) {
	_ = loadDotenv()

	cfg := &Config{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		UserAPIURL:    getEnv("USER_API_URL", client.DefaultEndpoint),
		NATSURL:       os.Getenv("NATS_URL"),
		NATSSubject:   getEnv("NATS_SUBJECT", events.DefaultSubject),
		WorkerCount:   1,
		SubmitTimeout: 10 * time.Second,
		AdminName:     getEnv("ADMIN_NAME", "admin"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}
	redisDBStr := os.Getenv("REDIS_DB")
	if redisDBStr == "" {
		return nil, fmt.Errorf("環境變數 REDIS_DB 未設定")
	}
	redisDB, err := strconv.Atoi(redisDBStr)
	if err != nil {
		return nil, fmt.Errorf("無效的 REDIS_DB: %v", err)
	}
	cfg.RedisDB = redisDB

	if os.Getenv("JWT_SECRET") == "" {
		return nil, fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}

	if v := os.Getenv("WORKER_COUNT"); v != "" {
		c, err := strconv.Atoi(v)
		if err != nil || c <= 0 {
			return nil, fmt.Errorf("無效的 WORKER_COUNT: %q", v)
		}
		cfg.WorkerCount = c
	}
	if v := os.Getenv("RESOLVE_ADMIN_ID"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("無效的 RESOLVE_ADMIN_ID: %v", err)
		}
		cfg.ResolveAdminID = b
	}
	if v := os.Getenv("SUBMIT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("無效的 SUBMIT_TIMEOUT: %q", v)
		}
		cfg.SubmitTimeout = d
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
